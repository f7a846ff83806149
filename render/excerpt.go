package render

import "strings"

// Excerpt prunes a body to at most limit runes, cutting back to the last word
// boundary and appending an ellipsis when anything was dropped. Bodies are
// treated as plain text; rich-markup rendering is out of scope.
func Excerpt(body string, limit int) string {
	text := strings.Join(strings.Fields(body), " ")
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}

	cut := string(runes[:limit])
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		cut = cut[:idx]
	}
	return cut + "…"
}

// Paragraphs splits a plain-text body on blank lines.
func Paragraphs(body string) []string {
	var out []string
	for _, block := range strings.Split(body, "\n\n") {
		block = strings.TrimSpace(block)
		if block != "" {
			out = append(out, block)
		}
	}
	return out
}
