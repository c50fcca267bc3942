package subtitles

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// DefaultMaxWords is the cue word limit used when none is configured.
const DefaultMaxWords = 12

// Split breaks text into cue-sized segments of at most maxWords words.
// Text within the limit is returned whole; longer text is chunked in order
// with only the final chunk allowed to be shorter. Text without words yields
// no segments.
func Split(text string, maxWords int) []string {
	if maxWords <= 0 {
		maxWords = DefaultMaxWords
	}
	normalized := strings.TrimSpace(norm.NFC.String(text))
	words := strings.Fields(normalized)
	if len(words) == 0 {
		return nil
	}
	if len(words) <= maxWords {
		return []string{normalized}
	}

	segments := make([]string, 0, (len(words)+maxWords-1)/maxWords)
	for len(words) > 0 {
		n := min(maxWords, len(words))
		segments = append(segments, strings.Join(words[:n], " "))
		words = words[n:]
	}
	return segments
}

// WordCount counts whitespace-separated words.
func WordCount(text string) int {
	return len(strings.Fields(text))
}
