package campaign

import (
	"errors"
	"strings"
	"testing"
)

func TestRenderBodyMarkdown(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "heading and paragraph",
			in:   "## 새 뀌베 출시\n\n올해의 뀌베를 소개합니다.",
			want: []string{"<h2>새 뀌베 출시</h2>", "<p>올해의 뀌베를 소개합니다.</p>"},
		},
		{
			name: "gfm strikethrough and autolink",
			in:   "~~구형 빈티지~~ 자세한 내용은 https://maison-lumiere.com 에서.",
			want: []string{"<del>구형 빈티지</del>", `<a href="https://maison-lumiere.com"`},
		},
		{
			name: "gfm table",
			in:   "| 뀌베 | 빈티지 |\n| --- | --- |\n| 블랑 드 블랑 | 2015 |",
			want: []string{"<table>", "<th>뀌베</th>", "<td>블랑 드 블랑</td>"},
		},
		{
			name: "hard wrap",
			in:   "첫 줄\n둘째 줄",
			want: []string{"<br />"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RenderBodyMarkdown(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			for _, fragment := range tt.want {
				if !strings.Contains(got, fragment) {
					t.Errorf("output missing %q:\n%s", fragment, got)
				}
			}
		})
	}
}

func TestRenderBodyMarkdownEmpty(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\n"} {
		got, err := RenderBodyMarkdown(in)
		if err != nil {
			t.Fatal(err)
		}
		if got != "" {
			t.Errorf("RenderBodyMarkdown(%q) = %q, want empty", in, got)
		}
	}
}

func TestResolveBody(t *testing.T) {
	// Markdown wins over a raw HTML body when both are present.
	body, err := resolveBody("<p>ignored</p>", "**중요** 소식")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(body, "<strong>중요</strong>") {
		t.Errorf("markdown body not rendered: %q", body)
	}

	body, err = resolveBody("<p>그대로</p>", "")
	if err != nil || body != "<p>그대로</p>" {
		t.Errorf("resolveBody html passthrough = %q, %v", body, err)
	}

	if _, err := resolveBody("", "   "); !errors.Is(err, ErrNoBody) {
		t.Errorf("empty body error = %v, want ErrNoBody", err)
	}
}
