// Package textproc provides the text utilities behind phrase extraction:
// sentence splitting and stop-word based phrase partitioning.
package textproc

import (
	"regexp"
	"strings"
)

// tokenPattern matches word tokens (letters and digits, with internal
// apostrophes or hyphens) or single punctuation marks.
var tokenPattern = regexp.MustCompile(`[\pL\pN]+(?:['-][\pL\pN]+)*|[^\pL\pN\s]`)

// ExtractPhrases splits each input phrase into tokens and partitions the
// tokens into runs separated by stop-words and separator punctuation. Each
// run is emitted as a space-joined phrase with the original casing kept.
// Runs from all inputs are concatenated in input order. Inputs consisting
// only of stop-words or punctuation contribute nothing.
func ExtractPhrases(phrases []string) []string {
	var out []string

	for _, phrase := range phrases {
		tokens := tokenPattern.FindAllString(phrase, -1)

		var run []string
		for _, token := range tokens {
			if isStopToken(token) {
				if len(run) > 0 {
					out = append(out, strings.Join(run, " "))
					run = nil
				}
				continue
			}
			run = append(run, token)
		}

		if len(run) > 0 {
			out = append(out, strings.Join(run, " "))
		}
	}

	return out
}
