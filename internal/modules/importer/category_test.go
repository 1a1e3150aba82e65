package importer

import (
	"testing"

	"github.com/maison-lumiere/atelier/internal/models"
)

func editorialFixture() []models.CategoryModel {
	mk := func(id, name, nameEN, slug string) models.CategoryModel {
		c := models.CategoryModel{Name: name, NameEN: nameEN, Slug: slug}
		c.ID = id
		return c
	}
	return []models.CategoryModel{
		mk("cat-maison", "메종 이야기", "Maison Stories", "maison"),
		mk("cat-cuvee", "뀌베", "Cuvées", "cuvee"),
		mk("cat-terroir", "테루아", "Terroir", "terroir"),
		mk("cat-pairing", "페어링", "Pairing", "pairing"),
		mk("cat-journal", "저널", "Journal", "journal"),
	}
}

func TestResolveCategory(t *testing.T) {
	categories := editorialFixture()

	tests := []struct {
		text     string
		wantID   string
		wantSlug string
	}{
		{"메종 이야기 (Maison Stories)", "cat-maison", "maison"},
		{"메종 이야기", "cat-maison", "maison"},
		{"뀌베", "cat-cuvee", "cuvee"},
		{"퀴베 노트", "cat-cuvee", "cuvee"}, // spelling variant via keywords
		{"Terroir", "cat-terroir", "terroir"},
		{"떼루아 산책", "cat-terroir", "terroir"},
		{"pairing", "cat-pairing", "pairing"},
		{"미식 페어링", "cat-pairing", "pairing"},
		{"journal", "cat-journal", "journal"},
		{"소식", "cat-journal", "journal"},
		{"여행기", "", "journal"}, // no match falls back to default slug
		{"", "", "journal"},
	}
	for _, tt := range tests {
		id, slug := ResolveCategory(tt.text, categories, "journal")
		if id != tt.wantID || slug != tt.wantSlug {
			t.Errorf("ResolveCategory(%q) = (%q, %q), want (%q, %q)",
				tt.text, id, slug, tt.wantID, tt.wantSlug)
		}
	}
}

func TestResolveCategoryEmptySet(t *testing.T) {
	id, slug := ResolveCategory("메종", nil, "journal")
	if id != "" || slug != "journal" {
		t.Errorf("ResolveCategory with no categories = (%q, %q)", id, slug)
	}
}
