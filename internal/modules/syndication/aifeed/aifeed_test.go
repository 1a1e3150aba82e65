package aifeed

import (
	"strings"
	"testing"
)

func TestStripHTML(t *testing.T) {
	in := "<h2>셀러 이야기</h2><p>첫 문단입니다.</p><p>둘째 <strong>문단</strong>.</p><blockquote>인용문</blockquote>"
	got := stripHTML(in)

	for _, want := range []string{"셀러 이야기", "첫 문단입니다.", "둘째 문단.", "인용문"} {
		if !strings.Contains(got, want) {
			t.Errorf("stripHTML missing %q in %q", want, got)
		}
	}
	if strings.Contains(got, "<") {
		t.Errorf("tags survived: %q", got)
	}
	if !strings.Contains(got, "첫 문단입니다.\n\n둘째 문단.") {
		t.Errorf("paragraphs should stay separated: %q", got)
	}
}

func TestStripHTMLEntities(t *testing.T) {
	got := stripHTML(`<p>뀌베 &amp; 테루아 &#34;노트&#34;</p>`)
	if got != `뀌베 & 테루아 "노트"` {
		t.Errorf("stripHTML() = %q", got)
	}
}
