package importer

import (
	"crypto/rand"
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	slugSeparatorPattern = regexp.MustCompile(`[\s_]+`)
	slugInvalidPattern   = regexp.MustCompile(`[^a-z0-9-]+`)
	slugHyphenRun        = regexp.MustCompile(`-{2,}`)
)

const slugRandomAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// SanitizeSlug lowercases the input, strips everything outside [a-z0-9-]
// (including all non-Latin scripts), collapses hyphen runs and trims
// leading/trailing hyphens. An empty result falls back to a generated
// `post-<YYYYMMDD>-<6 chars>` slug. Idempotent on already-clean slugs.
func SanitizeSlug(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = slugSeparatorPattern.ReplaceAllString(s, "-")
	s = slugInvalidPattern.ReplaceAllString(s, "")
	s = slugHyphenRun.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return FallbackSlug(time.Now())
	}
	return s
}

// FallbackSlug generates `post-<YYYYMMDD>-<6 random chars>`.
func FallbackSlug(now time.Time) string {
	return fmt.Sprintf("post-%s-%s", now.Format("20060102"), randomSlugSuffix(6))
}

func randomSlugSuffix(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing is effectively unheard of; degrade to a
		// constant rather than propagating an error for a slug suffix.
		return strings.Repeat("x", n)
	}
	out := make([]byte, n)
	for i, b := range buf {
		out[i] = slugRandomAlphabet[int(b)%len(slugRandomAlphabet)]
	}
	return string(out)
}
