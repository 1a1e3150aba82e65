package importer

import (
	"strings"
	"testing"
)

func TestConvertMetadataTableAndBodyMarker(t *testing.T) {
	doc := "| **제목** | 바다의 시간 |\n| **slug** | ocean-time |\n## 본문\n본문 내용입니다."

	fields := ExtractFields(doc)
	if fields.Title != "바다의 시간" {
		t.Errorf("title = %q, want %q", fields.Title, "바다의 시간")
	}
	if fields.RawSlug != "ocean-time" {
		t.Errorf("slug = %q, want %q", fields.RawSlug, "ocean-time")
	}

	got := Convert(doc, "")
	want := "<p>본문 내용입니다.</p>"
	if got != want {
		t.Errorf("Convert() = %q, want %q", got, want)
	}
}

func TestConvertImageFence(t *testing.T) {
	doc := "```\n[IMAGE: HERO]\nPROMPT:\n\"a bottle in the sea\"\n```"

	got := Convert(doc, "")
	want := Placeholder("a bottle in the sea")
	if got != want {
		t.Errorf("Convert() = %q, want %q", got, want)
	}
	if CountPlaceholders(got) != 1 {
		t.Errorf("placeholders = %d, want 1", CountPlaceholders(got))
	}
}

func TestConvertHeadingsQuoteAndRule(t *testing.T) {
	doc := strings.Join([]string{
		"# 제목",
		"## 섹션",
		"### 소제목",
		"---",
		"> \"와인은 병에 담긴 시다\"",
		"일반 **굵은** 문장과 *기울임* 그리고 ***둘 다***.",
	}, "\n")

	got := Convert(doc, "")
	for _, want := range []string{
		"<h1>제목</h1>",
		"<h2>섹션</h2>",
		"<h3>소제목</h3>",
		"<hr />",
		"<blockquote>와인은 병에 담긴 시다</blockquote>",
		"<p>일반 <strong>굵은</strong> 문장과 <em>기울임</em> 그리고 <strong><em>둘 다</em></strong>.</p>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Convert() missing %q in:\n%s", want, got)
		}
	}
}

func TestConvertHeroPromptPrepended(t *testing.T) {
	got := Convert("첫 문단입니다.", "champagne flute at dawn")
	wantFirst := Placeholder("champagne flute at dawn")
	if !strings.HasPrefix(got, wantFirst) {
		t.Errorf("Convert() should start with hero placeholder, got:\n%s", got)
	}
	if !strings.Contains(got, "<p>첫 문단입니다.</p>") {
		t.Errorf("Convert() lost body paragraph:\n%s", got)
	}
}

func TestConvertUnterminatedFenceDegrades(t *testing.T) {
	doc := "```\n[IMAGE: FIGURE]\nPROMPT:\n무제"

	got := Convert(doc, "")
	if CountPlaceholders(got) != 0 {
		t.Errorf("unterminated fence must not produce a placeholder: %q", got)
	}
	if !strings.Contains(got, "무제") {
		t.Errorf("content after unterminated fence should survive as text: %q", got)
	}
}

func TestConvertNonImageFenceDropped(t *testing.T) {
	doc := "```\nfmt.Println(\"hello\")\n```\n문단."

	got := Convert(doc, "")
	if strings.Contains(got, "Println") {
		t.Errorf("non-image fence should be dropped: %q", got)
	}
	if !strings.Contains(got, "<p>문단.</p>") {
		t.Errorf("paragraph after fence missing: %q", got)
	}
}

func TestConvertPromptCleanup(t *testing.T) {
	doc := "```\n[IMAGE: SECTION]\nPROMPT:\n\"golden vineyard,\nsoft light\",\n```"

	got := Convert(doc, "")
	want := Placeholder("golden vineyard, soft light")
	if got != want {
		t.Errorf("Convert() = %q, want %q", got, want)
	}
}

func TestConvertCRLFInput(t *testing.T) {
	got := Convert("## 섹션\r\n문장.\r\n", "")
	if !strings.Contains(got, "<h2>섹션</h2>") || !strings.Contains(got, "<p>문장.</p>") {
		t.Errorf("CRLF input mishandled: %q", got)
	}
}

func TestPlaceholderEscapesPrompt(t *testing.T) {
	got := Placeholder(`a "quoted" <prompt>`)
	if strings.Contains(got, `data-prompt="a "quoted"`) {
		t.Errorf("prompt quotes must be escaped: %q", got)
	}
	if !strings.Contains(got, "&lt;prompt&gt;") {
		t.Errorf("prompt angle brackets must be escaped: %q", got)
	}
}
