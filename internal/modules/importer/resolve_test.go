package importer

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestResolveImagesSuccess(t *testing.T) {
	content := Placeholder("first prompt") + "\n<p>본문</p>\n" + Placeholder("second prompt")

	var prompts []string
	resolved, failed := ResolveImages(context.Background(), content, func(_ context.Context, prompt string) (string, error) {
		prompts = append(prompts, prompt)
		return "https://cdn.example.com/" + prompt[:5] + ".png", nil
	}, nil)

	if failed != 0 {
		t.Fatalf("failed = %d, want 0", failed)
	}
	if CountPlaceholders(resolved) != 0 {
		t.Errorf("placeholders remain: %q", resolved)
	}
	if len(prompts) != 2 || prompts[0] != "first prompt" || prompts[1] != "second prompt" {
		t.Errorf("prompts resolved out of order: %v", prompts)
	}
	if strings.Count(resolved, "<img ") != 2 {
		t.Errorf("expected two img tags: %q", resolved)
	}
}

func TestResolveImagesFailureWritesErrorMarker(t *testing.T) {
	content := Convert("```\n[IMAGE: HERO]\nPROMPT:\n\"a bottle in the sea\"\n```", "")

	resolved, failed := ResolveImages(context.Background(), content, func(context.Context, string) (string, error) {
		return "", errors.New("provider unavailable")
	}, nil)

	if failed != 1 {
		t.Errorf("failed = %d, want 1", failed)
	}
	if got := strings.Count(resolved, `class="ai-image-error"`); got != 1 {
		t.Errorf("error markers = %d, want 1 in %q", got, resolved)
	}
	if CountPlaceholders(resolved) != 0 {
		t.Errorf("placeholders must never survive resolution: %q", resolved)
	}
}

func TestResolveImagesPartialFailureContinues(t *testing.T) {
	content := Placeholder("one") + Placeholder("two") + Placeholder("three")

	calls := 0
	resolved, failed := ResolveImages(context.Background(), content, func(_ context.Context, prompt string) (string, error) {
		calls++
		if prompt == "two" {
			return "", errors.New("boom")
		}
		return "https://cdn.example.com/x.png", nil
	}, nil)

	if calls != 3 {
		t.Errorf("generator calls = %d, want 3 (one failure must not abort the batch)", calls)
	}
	if failed != 1 {
		t.Errorf("failed = %d, want 1", failed)
	}
	if CountPlaceholders(resolved) != 0 {
		t.Errorf("placeholders remain: %q", resolved)
	}
}

func TestResolveImagesProgress(t *testing.T) {
	content := Placeholder("a") + Placeholder("b")

	var seen [][2]int
	ResolveImages(context.Background(), content, func(context.Context, string) (string, error) {
		return "https://cdn.example.com/x.png", nil
	}, func(current, total int, _ string) {
		seen = append(seen, [2]int{current, total})
	})

	if len(seen) != 2 || seen[0] != [2]int{1, 2} || seen[1] != [2]int{2, 2} {
		t.Errorf("progress sequence = %v", seen)
	}
}

func TestResolveImagesEscapedPromptRoundTrip(t *testing.T) {
	want := `a "quoted" prompt`
	content := Placeholder(want)

	var got string
	ResolveImages(context.Background(), content, func(_ context.Context, prompt string) (string, error) {
		got = prompt
		return "https://cdn.example.com/x.png", nil
	}, nil)

	if got != want {
		t.Errorf("prompt round-trip = %q, want %q", got, want)
	}
}

func TestStripPlaceholders(t *testing.T) {
	content := "<p>before</p>" + Placeholder("x") + "<p>after</p>"
	got := StripPlaceholders(content)
	if got != "<p>before</p><p>after</p>" {
		t.Errorf("StripPlaceholders() = %q", got)
	}
}

func TestResolveImagesNoGenerator(t *testing.T) {
	resolved, failed := ResolveImages(context.Background(), Placeholder("x"), nil, nil)
	if failed != 1 || CountPlaceholders(resolved) != 0 {
		t.Errorf("nil generator: failed=%d content=%q", failed, resolved)
	}
}
