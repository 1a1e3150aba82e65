package importer

import (
	"strings"

	"github.com/maison-lumiere/atelier/internal/models"
)

// categoryKeywords maps each fixed editorial category slug to the terms a
// writer may plausibly put in the 카테고리 cell, in either language and with
// common spelling variants.
var categoryKeywords = map[string][]string{
	"maison":  {"메종", "maison", "하우스", "house"},
	"cuvee":   {"뀌베", "퀴베", "cuvee", "cuvée"},
	"terroir": {"테루아", "떼루아", "terroir"},
	"pairing": {"페어링", "pairing", "미식"},
	"journal": {"저널", "journal", "소식"},
}

// ResolveCategory matches free-form category text from an imported document
// against the known categories. Matching is case-insensitive substring in
// both directions, first against the category names and slug, then against
// the keyword table. No match returns the zero ID with defaultSlug so the
// caller can decide whether to fall back or leave the post uncategorised.
func ResolveCategory(text string, categories []models.CategoryModel, defaultSlug string) (id string, slug string) {
	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" {
		return "", defaultSlug
	}

	for i := range categories {
		c := &categories[i]
		for _, candidate := range []string{c.Name, c.NameEN, c.Slug} {
			candidate = strings.ToLower(strings.TrimSpace(candidate))
			if candidate == "" {
				continue
			}
			if strings.Contains(needle, candidate) || strings.Contains(candidate, needle) {
				return c.ID, c.Slug
			}
		}
	}

	for i := range categories {
		c := &categories[i]
		for _, kw := range categoryKeywords[c.Slug] {
			if strings.Contains(needle, kw) {
				return c.ID, c.Slug
			}
		}
	}

	return "", defaultSlug
}
