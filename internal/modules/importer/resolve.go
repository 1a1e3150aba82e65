package importer

import (
	"context"
	"fmt"
	"html"
	"regexp"
	"strings"
)

var placeholderPattern = regexp.MustCompile(
	`<div class="ai-image-placeholder" data-prompt="([^"]*)">[^<]*</div>`)

// ImageGenerator produces a hosted image URL for a prompt.
type ImageGenerator func(ctx context.Context, prompt string) (string, error)

// ProgressFunc receives (current, total, message) as placeholders resolve.
type ProgressFunc func(current, total int, message string)

// CountPlaceholders reports how many unresolved image placeholders remain.
func CountPlaceholders(content string) int {
	return len(placeholderPattern.FindAllString(content, -1))
}

// ResolveImages replaces every image placeholder in document order. Each
// placeholder is generated sequentially; a failed generation substitutes a
// visible error marker and the batch continues, so the returned content never
// contains a placeholder regardless of how many generations failed. The
// returned failed count tells the caller how many markers were written.
func ResolveImages(ctx context.Context, content string, generate ImageGenerator, progress ProgressFunc) (resolved string, failed int) {
	matches := placeholderPattern.FindAllStringSubmatch(content, -1)
	total := len(matches)
	if total == 0 {
		return content, 0
	}

	for i, m := range matches {
		marker := m[0]
		prompt := html.UnescapeString(m[1])
		if progress != nil {
			progress(i+1, total, fmt.Sprintf("이미지 생성 중 %d/%d (generating image)", i+1, total))
		}

		replacement := errorMarker
		if generate != nil {
			url, err := generate(ctx, prompt)
			if err == nil && strings.TrimSpace(url) != "" {
				replacement = fmt.Sprintf(`<img src="%s" alt="%s" loading="lazy" />`,
					html.EscapeString(url), html.EscapeString(prompt))
			} else {
				failed++
			}
		} else {
			failed++
		}
		content = strings.Replace(content, marker, replacement, 1)
	}

	return content, failed
}

// StripPlaceholders removes every placeholder without generating anything,
// for imports that opt out of image generation.
func StripPlaceholders(content string) string {
	return placeholderPattern.ReplaceAllString(content, "")
}
