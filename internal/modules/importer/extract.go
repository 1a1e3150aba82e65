package importer

import (
	"regexp"
	"strings"
)

// ExtractedFields holds the metadata pulled from a brief's header table.
// Every field is optional; absence is an empty string, never an error.
type ExtractedFields struct {
	Title           string `json:"title"`
	Subtitle        string `json:"subtitle"`
	CategoryText    string `json:"category_text"`
	MetaTitle       string `json:"meta_title"`
	MetaDescription string `json:"meta_description"`
	RawSlug         string `json:"raw_slug"`
	HeroPrompt      string `json:"hero_prompt"`
}

// field labels accepted in briefs, Korean first.
var fieldLabels = map[string][]string{
	"title":            {"제목", "title"},
	"subtitle":         {"부제", "subtitle"},
	"category":         {"카테고리", "category"},
	"meta_title":       {"메타 제목", "meta title"},
	"meta_description": {"메타 설명", "meta description"},
	"slug":             {"슬러그", "slug"},
	"hero":             {"대표 이미지", "hero image"},
}

// ExtractField returns the first value for the given label from a table row
// of the shape `| **label** | value |` or `| label | value |`, trimmed.
// The label match is case-insensitive. Returns "" when absent.
func ExtractField(text, label string) string {
	pattern := regexp.MustCompile(
		`(?im)^\s*\|\s*(?:\*\*)?\s*` + regexp.QuoteMeta(label) + `\s*(?:\*\*)?\s*\|([^|]*)\|`,
	)
	m := pattern.FindStringSubmatch(text)
	if len(m) < 2 {
		return ""
	}
	return strings.TrimSpace(m[1])
}

func extractAny(text string, labels []string) string {
	for _, label := range labels {
		if v := ExtractField(text, label); v != "" {
			return v
		}
	}
	return ""
}

// ExtractFields pulls every known metadata field out of a brief.
func ExtractFields(text string) ExtractedFields {
	return ExtractedFields{
		Title:           extractAny(text, fieldLabels["title"]),
		Subtitle:        extractAny(text, fieldLabels["subtitle"]),
		CategoryText:    extractAny(text, fieldLabels["category"]),
		MetaTitle:       extractAny(text, fieldLabels["meta_title"]),
		MetaDescription: extractAny(text, fieldLabels["meta_description"]),
		RawSlug:         extractAny(text, fieldLabels["slug"]),
		HeroPrompt:      extractAny(text, fieldLabels["hero"]),
	}
}
