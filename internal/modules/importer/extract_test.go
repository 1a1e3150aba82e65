package importer

import "testing"

func TestExtractField(t *testing.T) {
	doc := `| **제목** | 여명의 뀌베 |
| 부제 | 새벽의 첫 잔 |
| **Category** | 뀌베 |
| **메타 제목** | 여명의 뀌베 | Maison Lumière |
| 슬러그 | cuvee-aurore |`

	tests := []struct {
		label string
		want  string
	}{
		{"제목", "여명의 뀌베"},
		{"부제", "새벽의 첫 잔"},
		{"category", "뀌베"}, // case-insensitive
		{"슬러그", "cuvee-aurore"},
		{"대표 이미지", ""}, // absent field is empty, not an error
	}
	for _, tt := range tests {
		if got := ExtractField(doc, tt.label); got != tt.want {
			t.Errorf("ExtractField(%q) = %q, want %q", tt.label, got, tt.want)
		}
	}
}

func TestExtractFieldsBilingualLabels(t *testing.T) {
	doc := `| Title | The Tide Cellar |
| Subtitle | Notes from the chalk caves |
| Meta Description | A visit to the cellars. |
| Hero Image | chalk cellar lit by candles |`

	fields := ExtractFields(doc)
	if fields.Title != "The Tide Cellar" {
		t.Errorf("Title = %q", fields.Title)
	}
	if fields.Subtitle != "Notes from the chalk caves" {
		t.Errorf("Subtitle = %q", fields.Subtitle)
	}
	if fields.MetaDescription != "A visit to the cellars." {
		t.Errorf("MetaDescription = %q", fields.MetaDescription)
	}
	if fields.HeroPrompt != "chalk cellar lit by candles" {
		t.Errorf("HeroPrompt = %q", fields.HeroPrompt)
	}
}

func TestExtractFieldKoreanWinsOverEnglish(t *testing.T) {
	doc := "| 제목 | 한국어 제목 |\n| title | english title |"
	if got := ExtractFields(doc).Title; got != "한국어 제목" {
		t.Errorf("Title = %q, want Korean value first", got)
	}
}
