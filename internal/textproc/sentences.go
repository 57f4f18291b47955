package textproc

import "strings"

// SplitSentences splits text into sentences on terminator-plus-space
// boundaries. Trailing terminators without a following space stay attached
// to the last sentence. Empty or whitespace-only input yields nil.
func SplitSentences(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	text = strings.ReplaceAll(text, "! ", "!|")
	text = strings.ReplaceAll(text, "? ", "?|")
	text = strings.ReplaceAll(text, ". ", ".|")

	parts := strings.Split(text, "|")
	var sentences []string
	for _, s := range parts {
		s = strings.TrimSpace(s)
		if s != "" {
			sentences = append(sentences, s)
		}
	}

	return sentences
}
