// Package lexical computes rule-based speech metrics from normalized
// tokens: speaking rate, filler-word rate, vocabulary diversity, and a
// naive grammar-error count.
package lexical

import (
	"fmt"
	"strings"
)

// fillerPhrases lists disfluencies counted against clarity. Multi-word
// phrases match as consecutive tokens. Longest phrases are tried first so
// "you know" never double-counts as a stray "know".
var fillerPhrases = [][]string{
	{"at", "the", "end", "of", "the", "day"},
	{"you", "know"},
	{"i", "mean"},
	{"sort", "of"},
	{"kind", "of"},
	{"and", "then"},
	{"um"},
	{"uh"},
	{"like"},
	{"so"},
	{"actually"},
	{"basically"},
	{"right"},
	{"well"},
	{"kinda"},
	{"okay"},
	{"hmm"},
	{"ah"},
	{"literally"},
}

// WordsPerMinute computes the speaking rate. A zero word count yields zero
// WPM; a non-positive (or NaN) duration is the caller's error because WPM
// feeds several criteria.
func WordsPerMinute(wordCount int, durationMinutes float64) (float64, error) {
	if !(durationMinutes > 0) {
		return 0, fmt.Errorf("%w: %v minutes", ErrInvalidDuration, durationMinutes)
	}
	if wordCount == 0 {
		return 0, nil
	}
	return float64(wordCount) / durationMinutes, nil
}

// FillerCount counts filler occurrences in the token sequence. Phrases are
// matched greedily, longest first, and consume their tokens, so overlapping
// fillers count once.
func FillerCount(tokens []string) int {
	count := 0
	for i := 0; i < len(tokens); {
		matched := 0
		for _, phrase := range fillerPhrases {
			if matchesAt(tokens, i, phrase) {
				matched = len(phrase)
				break
			}
		}
		if matched > 0 {
			count++
			i += matched
			continue
		}
		i++
	}
	return count
}

func matchesAt(tokens []string, i int, phrase []string) bool {
	if i+len(phrase) > len(tokens) {
		return false
	}
	for j, p := range phrase {
		if tokens[i+j] != p {
			return false
		}
	}
	return true
}

// FillerRate returns fillers per word in [0,1]. The empty transcript is a
// valid zero, never a division by zero.
func FillerRate(tokens []string) float64 {
	if len(tokens) == 0 {
		return 0
	}
	return float64(FillerCount(tokens)) / float64(len(tokens))
}

// TypeTokenRatio returns distinct words over total words, the vocabulary
// diversity measure. Empty input yields 0.
func TypeTokenRatio(tokens []string) float64 {
	if len(tokens) == 0 {
		return 0
	}
	seen := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		seen[tok] = struct{}{}
	}
	return float64(len(seen)) / float64(len(tokens))
}

// ErrorsPer100Words converts a raw error count into a length-independent
// rate so tier bounds do not depend on transcript length.
func ErrorsPer100Words(errorCount, wordCount int) float64 {
	if wordCount == 0 {
		return 0
	}
	return float64(errorCount) / float64(wordCount) * 100
}

// Fillers exposes the filler phrase list as display strings, for docs and
// test tooling.
func Fillers() []string {
	out := make([]string, len(fillerPhrases))
	for i, p := range fillerPhrases {
		out[i] = strings.Join(p, " ")
	}
	return out
}
