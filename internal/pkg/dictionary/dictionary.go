package dictionary

import "strings"

// Entry is one Korean/English term pair from the editorial vocabulary.
type Entry struct {
	Korean  string
	English string
}

// entries is the fixed champagne/editorial vocabulary. The table is
// intentionally closed: the brand glossary is curated by hand and the
// matcher must never invent pairings.
var entries = []Entry{
	{"샴페인", "champagne"},
	{"메종", "maison"},
	{"뀌베", "cuvee"},
	{"테루아", "terroir"},
	{"빈티지", "vintage"},
	{"셀러", "cellar"},
	{"도사주", "dosage"},
	{"페어링", "pairing"},
	{"떼루아", "terroir"},
	{"블랑 드 블랑", "blanc de blancs"},
	{"블랑 드 누아", "blanc de noirs"},
	{"로제", "rose"},
	{"피노 누아", "pinot noir"},
	{"샤르도네", "chardonnay"},
	{"뫼니에", "meunier"},
	{"랭스", "reims"},
	{"에페르네", "epernay"},
	{"저널", "journal"},
	{"미식", "gastronomy"},
	{"양조", "winemaking"},
}

// ToEnglish returns the English term for a Korean one, or "" when unknown.
func ToEnglish(korean string) string {
	k := strings.TrimSpace(korean)
	for _, e := range entries {
		if e.Korean == k {
			return e.English
		}
	}
	return ""
}

// ToKorean returns the Korean term for an English one (case-insensitive),
// or "" when unknown.
func ToKorean(english string) string {
	en := strings.ToLower(strings.TrimSpace(english))
	for _, e := range entries {
		if e.English == en {
			return e.Korean
		}
	}
	return ""
}

// Expand returns the query plus every counterpart term found in it, for
// bilingual search. The original query is always the first element.
func Expand(query string) []string {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil
	}
	terms := []string{q}
	lower := strings.ToLower(q)
	seen := map[string]bool{lower: true}

	add := func(term string) {
		key := strings.ToLower(term)
		if term != "" && !seen[key] {
			seen[key] = true
			terms = append(terms, term)
		}
	}

	for _, e := range entries {
		if strings.Contains(q, e.Korean) {
			add(e.English)
		}
		if strings.Contains(lower, e.English) {
			add(e.Korean)
		}
	}
	return terms
}
