package media

import (
	"net/url"
	"strings"
	"testing"
)

func TestOptimizedURL(t *testing.T) {
	got := OptimizedURL("https://cdn.example.com/media/2026/03/abc.png", OptimizeParams{
		Width: 800, Quality: 70, Format: "webp",
	})

	u, err := url.Parse(got)
	if err != nil {
		t.Fatal(err)
	}
	q := u.Query()
	if q.Get("w") != "800" || q.Get("q") != "70" || q.Get("f") != "webp" {
		t.Errorf("params = %v", q)
	}
}

func TestOptimizedURLClamps(t *testing.T) {
	got := OptimizedURL("https://cdn.example.com/a.png", OptimizeParams{
		Width: 99999, Quality: 500, Format: "bmp",
	})

	u, _ := url.Parse(got)
	q := u.Query()
	if q.Get("w") != "2560" {
		t.Errorf("width not capped: %s", q.Get("w"))
	}
	if q.Get("q") != "80" {
		t.Errorf("quality not defaulted: %s", q.Get("q"))
	}
	if q.Get("f") != "webp" {
		t.Errorf("format not defaulted: %s", q.Get("f"))
	}
}

func TestOptimizedURLInvalidSource(t *testing.T) {
	src := "not a url"
	if got := OptimizedURL(src, OptimizeParams{Width: 100}); got != src {
		t.Errorf("invalid source should pass through, got %q", got)
	}
}

func TestOptimizedURLZeroWidthOmitted(t *testing.T) {
	got := OptimizedURL("https://cdn.example.com/a.png", OptimizeParams{})
	if strings.Contains(got, "w=") {
		t.Errorf("zero width should not appear: %q", got)
	}
}

func TestObjectKeyShape(t *testing.T) {
	key := objectKey("Photo.JPG")
	if !strings.HasPrefix(key, "media/") {
		t.Errorf("key = %q", key)
	}
	if !strings.HasSuffix(key, ".jpg") {
		t.Errorf("extension should be lowercased: %q", key)
	}
	if strings.Contains(key, "Photo") {
		t.Errorf("original name must not leak into the key: %q", key)
	}
}
