package importer

import (
	"html"
	"regexp"
	"strings"
)

// Placeholder markup emitted for not-yet-generated images. The prompt rides
// along in a data attribute so the resolver can find it later.
const (
	placeholderOpen  = `<div class="ai-image-placeholder" data-prompt="`
	placeholderLabel = `이미지 생성 중... (generating image)`
	errorMarker      = `<div class="ai-image-error">이미지를 생성하지 못했습니다 (image generation failed)</div>`
)

var (
	boldItalicPattern  = regexp.MustCompile(`\*\*\*([^*]+)\*\*\*`)
	boldPattern        = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicPattern      = regexp.MustCompile(`\*([^*]+)\*`)
	imageDirectiveLine = regexp.MustCompile(`^\[IMAGE:\s*[^\]]+\]$`)
	separatorRowChars  = regexp.MustCompile(`^[\s|:-]+$`)
)

// bodyMarkers are heading texts that act as section markers in the brief
// template ("body starts here") and are structural, not content.
var bodyMarkers = map[string]bool{"본문": true, "body": true, "content": true}

// Placeholder builds one image placeholder element for the given prompt.
func Placeholder(prompt string) string {
	return placeholderOpen + html.EscapeString(prompt) + `">` + placeholderLabel + `</div>`
}

// NormalizeNewlines converts CRLF input to LF before parsing.
func NormalizeNewlines(text string) string {
	return strings.ReplaceAll(text, "\r\n", "\n")
}

// Convert transforms a brief's restricted markdown dialect into HTML.
// The conversion is line-oriented and single-pass; malformed input (such
// as an unterminated fence) degrades to literal text instead of failing.
// A non-empty heroPrompt is prepended as one placeholder before all
// other content.
func Convert(doc, heroPrompt string) string {
	lines := strings.Split(NormalizeNewlines(doc), "\n")

	var out []string
	if strings.TrimSpace(heroPrompt) != "" {
		out = append(out, Placeholder(strings.TrimSpace(heroPrompt)))
	}

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") {
			block, next, closed := collectFence(lines, i)
			if !closed {
				// unterminated fence: leave everything literal
				if trimmed != "" {
					out = append(out, paragraph(trimmed))
				}
				continue
			}
			i = next
			if fragment := convertFence(block); fragment != "" {
				out = append(out, fragment)
			}
			continue
		}

		switch {
		case trimmed == "":
			continue
		case trimmed == "---":
			out = append(out, "<hr />")
		case strings.HasPrefix(trimmed, "### "):
			out = appendHeading(out, "h3", strings.TrimPrefix(trimmed, "### "))
		case strings.HasPrefix(trimmed, "## "):
			out = appendHeading(out, "h2", strings.TrimPrefix(trimmed, "## "))
		case strings.HasPrefix(trimmed, "# "):
			out = appendHeading(out, "h1", strings.TrimPrefix(trimmed, "# "))
		case strings.HasPrefix(trimmed, "> "):
			quote := strings.Trim(strings.TrimPrefix(trimmed, "> "), `"“”`)
			out = append(out, "<blockquote>"+inline(quote)+"</blockquote>")
		case strings.HasPrefix(trimmed, "|"):
			// metadata table row, already consumed by the extractor
			continue
		case separatorRowChars.MatchString(trimmed):
			continue
		case strings.HasPrefix(trimmed, "<"):
			out = append(out, trimmed)
		default:
			out = append(out, paragraph(trimmed))
		}
	}

	return strings.Join(out, "\n")
}

// collectFence gathers the lines between a fence opener at start and its
// closing fence. Returns the inner lines, the index of the closing fence,
// and whether a closing fence was found.
func collectFence(lines []string, start int) ([]string, int, bool) {
	for j := start + 1; j < len(lines); j++ {
		if strings.HasPrefix(strings.TrimSpace(lines[j]), "```") {
			return lines[start+1 : j], j, true
		}
	}
	return nil, start, false
}

// convertFence turns a fenced block into a placeholder when it matches the
// image-directive grammar, and drops it otherwise.
func convertFence(block []string) string {
	directiveSeen := false
	promptStart := -1

	for idx, line := range block {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if !directiveSeen {
			if imageDirectiveLine.MatchString(trimmed) {
				directiveSeen = true
				continue
			}
			return "" // not an image directive: drop the block
		}
		if strings.HasPrefix(trimmed, "PROMPT:") {
			promptStart = idx
			break
		}
	}

	if !directiveSeen || promptStart < 0 {
		return ""
	}

	parts := []string{strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(block[promptStart]), "PROMPT:"))}
	for _, line := range block[promptStart+1:] {
		parts = append(parts, strings.TrimSpace(line))
	}
	prompt := cleanPrompt(strings.Join(parts, " "))
	if prompt == "" {
		return ""
	}
	return Placeholder(prompt)
}

// cleanPrompt collapses newlines/whitespace, strips a trailing comma and
// surrounding quotes.
func cleanPrompt(raw string) string {
	p := strings.Join(strings.Fields(raw), " ")
	p = strings.TrimSuffix(p, ",")
	p = strings.Trim(p, `"'“”`)
	return strings.TrimSpace(p)
}

func appendHeading(out []string, tag, text string) []string {
	text = strings.TrimSpace(text)
	if bodyMarkers[strings.ToLower(text)] {
		return out
	}
	return append(out, "<"+tag+">"+inline(text)+"</"+tag+">")
}

func paragraph(text string) string {
	return "<p>" + inline(text) + "</p>"
}

// inline applies emphasis markers, most specific first so nested markers
// are not double-processed.
func inline(text string) string {
	text = boldItalicPattern.ReplaceAllString(text, "<strong><em>$1</em></strong>")
	text = boldPattern.ReplaceAllString(text, "<strong>$1</strong>")
	text = italicPattern.ReplaceAllString(text, "<em>$1</em>")
	return text
}
