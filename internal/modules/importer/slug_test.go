package importer

import (
	"regexp"
	"testing"
	"time"
)

var fallbackSlugPattern = regexp.MustCompile(`^post-\d{8}-[a-z0-9]{6}$`)

func TestSanitizeSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ocean-time", "ocean-time"},
		{"Ocean Time", "ocean-time"},
		{"  Notes_from_the_cellar  ", "notes-from-the-cellar"},
		{"vintage--2012---release", "vintage-2012-release"},
		{"-leading-and-trailing-", "leading-and-trailing"},
		{"Cuvée & Terroir!", "cuve-terroir"},
	}
	for _, tt := range tests {
		if got := SanitizeSlug(tt.in); got != tt.want {
			t.Errorf("SanitizeSlug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSanitizeSlugIdempotent(t *testing.T) {
	for _, in := range []string{"Ocean Time", "vintage--2012", "페어링 가이드 A"} {
		once := SanitizeSlug(in)
		if fallbackSlugPattern.MatchString(once) {
			continue // generated slugs are random by design
		}
		if twice := SanitizeSlug(once); twice != once {
			t.Errorf("SanitizeSlug not idempotent: %q -> %q -> %q", in, once, twice)
		}
	}
}

func TestSanitizeSlugFallback(t *testing.T) {
	for _, in := range []string{"", "   ", "한국어만", "***", "— — —"} {
		got := SanitizeSlug(in)
		if !fallbackSlugPattern.MatchString(got) {
			t.Errorf("SanitizeSlug(%q) = %q, want fallback pattern", in, got)
		}
	}
}

func TestFallbackSlugDate(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	got := FallbackSlug(now)
	if !fallbackSlugPattern.MatchString(got) {
		t.Fatalf("FallbackSlug() = %q", got)
	}
	if got[:13] != "post-20260314" {
		t.Errorf("FallbackSlug() date part = %q, want post-20260314", got[:13])
	}
}
