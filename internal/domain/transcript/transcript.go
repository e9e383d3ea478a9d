// Package transcript normalizes raw transcript text into the token
// sequence every rule-based criterion consumes.
package transcript

import (
	"strings"
	"unicode"
)

// Normalized is the cleaned view of a raw transcript.
type Normalized struct {
	Tokens    []string
	WordCount int
}

// Normalize lowercases the input, strips punctuation, and splits it into
// word tokens. Digits stay part of tokens so ages and years survive
// ("I am 12 years old"). Empty or whitespace-only input yields a zero
// word count and an empty token slice; that is a valid result, not an
// error, and downstream metrics must handle it explicitly.
func Normalize(raw string) Normalized {
	tokens := make([]string, 0, len(raw)/5)
	var b strings.Builder
	flush := func() {
		if b.Len() > 0 {
			tokens = append(tokens, b.String())
			b.Reset()
		}
	}
	for _, r := range raw {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToLower(r))
		case r == '\'':
			// Keep contractions as one token: "don't", "it's".
			if b.Len() > 0 {
				b.WriteRune(r)
			}
		default:
			flush()
		}
	}
	flush()
	// Trim trailing apostrophes left by closing quotes.
	for i, tok := range tokens {
		tokens[i] = strings.TrimRight(tok, "'")
	}
	return Normalized{Tokens: tokens, WordCount: len(tokens)}
}

// DistinctCount returns the number of distinct tokens.
func (n Normalized) DistinctCount() int {
	seen := make(map[string]struct{}, len(n.Tokens))
	for _, tok := range n.Tokens {
		seen[tok] = struct{}{}
	}
	return len(seen)
}
