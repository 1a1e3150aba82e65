package media

import (
	"net/url"
	"strconv"
)

const (
	maxOptimizeWidth  = 2560
	defaultQuality    = 80
	defaultFormatName = "webp"
)

var allowedFormats = map[string]bool{
	"webp": true,
	"avif": true,
	"jpeg": true,
	"png":  true,
}

// OptimizeParams are the delivery transform hints appended to a media URL.
// The CDN in front of the bucket interprets them; out-of-range values are
// clamped here so clients cannot request absurd variants.
type OptimizeParams struct {
	Width   int
	Quality int
	Format  string
}

// Clamp normalizes the parameters into their allowed ranges.
func (p OptimizeParams) Clamp() OptimizeParams {
	if p.Width < 0 {
		p.Width = 0
	}
	if p.Width > maxOptimizeWidth {
		p.Width = maxOptimizeWidth
	}
	if p.Quality <= 0 || p.Quality > 100 {
		p.Quality = defaultQuality
	}
	if !allowedFormats[p.Format] {
		p.Format = defaultFormatName
	}
	return p
}

// OptimizedURL appends transform query parameters to a media URL. Invalid
// source URLs come back unchanged rather than erroring the page render.
func OptimizedURL(src string, params OptimizeParams) string {
	u, err := url.Parse(src)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return src
	}

	params = params.Clamp()
	q := u.Query()
	if params.Width > 0 {
		q.Set("w", strconv.Itoa(params.Width))
	}
	q.Set("q", strconv.Itoa(params.Quality))
	q.Set("f", params.Format)
	u.RawQuery = q.Encode()
	return u.String()
}
