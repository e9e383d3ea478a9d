// Package keywords checks normalized tokens for rubric-defined required
// concepts and yields a presence ratio.
package keywords

import (
	"strings"
)

// Present reports whether any synonym of the group occurs in the tokens.
// Multi-word synonyms ("fun fact") match as consecutive tokens. There is
// no partial credit inside a group.
func Present(tokens []string, group []string) bool {
	for _, synonym := range group {
		parts := strings.Fields(strings.ToLower(synonym))
		if len(parts) == 0 {
			continue
		}
		if containsPhrase(tokens, parts) {
			return true
		}
	}
	return false
}

func containsPhrase(tokens, phrase []string) bool {
	for i := 0; i+len(phrase) <= len(tokens); i++ {
		match := true
		for j, p := range phrase {
			if tokens[i+j] != p {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// PresenceRatio returns groups-found over groups-required in [0,1].
// No groups or no tokens yields 0.
func PresenceRatio(tokens []string, groups [][]string) float64 {
	if len(groups) == 0 {
		return 0
	}
	found := 0
	for _, group := range groups {
		if Present(tokens, group) {
			found++
		}
	}
	return float64(found) / float64(len(groups))
}

// Found lists the first matching synonym of every present group, for
// feedback text.
func Found(tokens []string, groups [][]string) []string {
	var out []string
	for _, group := range groups {
		for _, synonym := range group {
			parts := strings.Fields(strings.ToLower(synonym))
			if len(parts) > 0 && containsPhrase(tokens, parts) {
				out = append(out, synonym)
				break
			}
		}
	}
	return out
}
