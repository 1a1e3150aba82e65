package importer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

type progressCall struct {
	current, total int
	message        string
}

func TestImageProgressReportsEachPlaceholder(t *testing.T) {
	content := Placeholder("golden vineyard") + "\n<p>본문</p>\n" + Placeholder("cellar at dusk")

	var calls []progressCall
	record := func(current, total int, message string) {
		calls = append(calls, progressCall{current, total, message})
	}

	// The same wiring applyOne uses for image-mode generate.
	resolved, failed := ResolveImages(context.Background(), content, func(_ context.Context, prompt string) (string, error) {
		if prompt == "cellar at dusk" {
			return "", errors.New("provider unavailable")
		}
		return "https://cdn.example.com/a.png", nil
	}, imageProgress(record, "terroir.md"))

	if failed != 1 {
		t.Fatalf("failed = %d, want 1", failed)
	}
	if CountPlaceholders(resolved) != 0 {
		t.Errorf("placeholders remain: %q", resolved)
	}

	if len(calls) != 2 {
		t.Fatalf("progress calls = %d, want one per placeholder", len(calls))
	}
	for i, call := range calls {
		if call.current != i+1 || call.total != 2 {
			t.Errorf("call %d = %d/%d, want %d/2", i, call.current, call.total, i+1)
		}
		if !strings.HasPrefix(call.message, "terroir.md: ") {
			t.Errorf("message not scoped to the document: %q", call.message)
		}
		if !strings.Contains(call.message, fmt.Sprintf("%d/2", i+1)) {
			t.Errorf("message missing placeholder count: %q", call.message)
		}
	}
}

func TestImageProgressNilPassthrough(t *testing.T) {
	if imageProgress(nil, "doc.md") != nil {
		t.Fatal("nil progress must stay nil so resolution skips reporting")
	}
}
