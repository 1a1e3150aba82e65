package importer

import (
	"strings"
	"testing"
)

func TestAssemble(t *testing.T) {
	doc := `| **제목** | 바다의 시간 |
| **부제** | 해저 숙성 이야기 |
| **카테고리** | 메종 이야기 (Maison Stories) |
| **슬러그** | Ocean Time |
| **메타 설명** | 해저에서 숙성된 뀌베. |
## 본문
본문 내용입니다.`

	p := Assemble(doc, "ocean.md", editorialFixture())
	if p.Title != "바다의 시간" {
		t.Errorf("Title = %q", p.Title)
	}
	if p.Slug != "ocean-time" {
		t.Errorf("Slug = %q", p.Slug)
	}
	if p.Excerpt != "해저 숙성 이야기" {
		t.Errorf("Excerpt = %q, want subtitle", p.Excerpt)
	}
	if p.CategoryID != "cat-maison" || p.CategorySlug != "maison" {
		t.Errorf("category = (%q, %q)", p.CategoryID, p.CategorySlug)
	}
	if p.Content != "<p>본문 내용입니다.</p>" {
		t.Errorf("Content = %q", p.Content)
	}
	if p.Placeholders != 0 {
		t.Errorf("Placeholders = %d", p.Placeholders)
	}
}

func TestAssembleFallbacks(t *testing.T) {
	p := Assemble("그냥 본문 한 줄.", "cellar-notes.md", editorialFixture())
	if p.Title != "cellar-notes" {
		t.Errorf("Title fallback = %q, want file name stem", p.Title)
	}
	if p.Slug != "cellar-notes" {
		t.Errorf("Slug = %q, want slug derived from title", p.Slug)
	}
	if p.CategoryID != "" || p.CategorySlug != "journal" {
		t.Errorf("category fallback = (%q, %q)", p.CategoryID, p.CategorySlug)
	}
}

func TestAssembleExcerptFallsBackToMetaDescription(t *testing.T) {
	doc := "| 제목 | 테루아 산책 |\n| 메타 설명 | 석회암 언덕을 걷다. |\n내용."
	p := Assemble(doc, "walk.md", editorialFixture())
	if p.Excerpt != "석회암 언덕을 걷다." {
		t.Errorf("Excerpt = %q, want meta description", p.Excerpt)
	}
}

func TestAssembleHeroPlaceholderCounted(t *testing.T) {
	doc := "| 제목 | 시음 노트 |\n| 대표 이미지 | golden cellar |\n내용입니다."
	p := Assemble(doc, "note.md", editorialFixture())
	if p.Placeholders != 1 {
		t.Errorf("Placeholders = %d, want 1", p.Placeholders)
	}
	if !strings.HasPrefix(p.Content, placeholderOpen) {
		t.Errorf("hero placeholder should lead the content: %q", p.Content)
	}
}
