package badwords

import "strings"

// Heart is the replacement symbol for filtered content.
const Heart = "❤️"

// Sanitize runs condolence text through the banned-word filter.
//
// Words are checked in list order against the current text; a hit replaces
// the ENTIRE text with the heart symbol repeated once per occurrence of
// that word. Later words are then checked against the already-replaced
// text, so they normally no longer match. Whole-text replacement is the
// shipped product behavior, kept as-is pending product review.
func Sanitize(content string, words []string) string {
	for _, word := range words {
		if word == "" {
			continue
		}
		if strings.Contains(content, word) {
			content = strings.Repeat(Heart, strings.Count(content, word))
		}
	}
	return content
}
