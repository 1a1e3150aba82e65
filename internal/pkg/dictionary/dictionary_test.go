package dictionary

import (
	"reflect"
	"testing"
)

func TestToEnglish(t *testing.T) {
	tests := []struct {
		korean string
		want   string
	}{
		{"샴페인", "champagne"},
		{"  테루아  ", "terroir"},
		{"떼루아", "terroir"},
		{"블랑 드 블랑", "blanc de blancs"},
		{"없는말", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ToEnglish(tt.korean); got != tt.want {
			t.Errorf("ToEnglish(%q) = %q, want %q", tt.korean, got, tt.want)
		}
	}
}

func TestToKorean(t *testing.T) {
	tests := []struct {
		english string
		want    string
	}{
		{"champagne", "샴페인"},
		{"CHAMPAGNE", "샴페인"},
		{"Pinot Noir", "피노 누아"},
		{"terroir", "테루아"}, // first entry wins over the variant spelling
		{"syrah", ""},
	}
	for _, tt := range tests {
		if got := ToKorean(tt.english); got != tt.want {
			t.Errorf("ToKorean(%q) = %q, want %q", tt.english, got, tt.want)
		}
	}
}

func TestExpand(t *testing.T) {
	tests := []struct {
		query string
		want  []string
	}{
		{"샴페인", []string{"샴페인", "champagne"}},
		{"vintage champagne", []string{"vintage champagne", "샴페인", "빈티지"}},
		{"샴페인 페어링", []string{"샴페인 페어링", "champagne", "pairing"}},
		{"오크통", []string{"오크통"}},
		{"", nil},
		{"   ", nil},
	}
	for _, tt := range tests {
		if got := Expand(tt.query); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Expand(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestExpandDeduplicates(t *testing.T) {
	// The original query must not be re-added as a counterpart term.
	got := Expand("champagne")
	if len(got) != 2 || got[0] != "champagne" || got[1] != "샴페인" {
		t.Fatalf("Expand(\"champagne\") = %v", got)
	}
}
