// Package rubric defines the weighted criteria a transcript is scored
// against. A Rubric is built once at process start, validated, and treated
// as immutable for the process lifetime.
package rubric

import (
	"fmt"
	"strings"
)

// Kind selects the scoring strategy of a criterion. The set is closed:
// anything else fails validation at load time.
type Kind string

const (
	// KindRule maps a lexical metric through ordered tiers.
	KindRule Kind = "rule"
	// KindSemantic compares the transcript against ideal text by embedding
	// similarity.
	KindSemantic Kind = "semantic"
)

// Metric names the raw measurement a rule criterion consumes.
type Metric string

const (
	MetricSpeechRate      Metric = "speech_rate"
	MetricFillerRate      Metric = "filler_rate"
	MetricTypeTokenRatio  Metric = "type_token_ratio"
	MetricGrammarErrors   Metric = "grammar_errors_per_100"
	MetricKeywordPresence Metric = "keyword_presence"
)

// Tier maps a half-open metric interval [Low, High) to a normalized score.
// Tiers of a criterion are ordered, contiguous, and non-overlapping; values
// outside the covered range clamp to the nearest boundary tier.
type Tier struct {
	Low   float64 `koanf:"low" json:"low"`
	High  float64 `koanf:"high" json:"high"`
	Score float64 `koanf:"score" json:"score"`
	Label string  `koanf:"label" json:"label"`
}

// Contains reports whether v falls inside [Low, High).
func (t Tier) Contains(v float64) bool {
	return v >= t.Low && v < t.High
}

// Remap is an optional linear transform applied to clamped similarity
// before use: score = Scale*similarity + Offset, re-clamped to [0,1].
type Remap struct {
	Scale  float64 `koanf:"scale" json:"scale"`
	Offset float64 `koanf:"offset" json:"offset"`
}

// Criterion is one weighted axis of the rubric. Rule criteria carry a
// metric selector and tiers (keyword criteria additionally carry synonym
// groups); semantic criteria carry the ideal response text.
type Criterion struct {
	ID          string `koanf:"id" json:"id"`
	DisplayName string `koanf:"display_name" json:"display_name"`
	Weight      float64 `koanf:"weight" json:"weight"`
	Kind        Kind    `koanf:"kind" json:"kind"`

	// Rule criteria
	Metric Metric `koanf:"metric" json:"metric,omitempty"`
	Tiers  []Tier `koanf:"tiers" json:"tiers,omitempty"`

	// Keyword criteria: each group is a set of synonyms; a group counts as
	// present when any member occurs in the transcript.
	KeywordGroups [][]string `koanf:"keyword_groups" json:"keyword_groups,omitempty"`

	// Semantic criteria
	IdealText string `koanf:"ideal_text" json:"ideal_text,omitempty"`
	Remap     *Remap `koanf:"remap" json:"remap,omitempty"`
}

// TierFor resolves the tier whose interval contains v. Values below the
// first tier resolve to the first tier, values at or above the last tier's
// high bound resolve to the last tier. Tier exhaustiveness is a loading
// invariant, so lookup never fails on a validated criterion.
func (c Criterion) TierFor(v float64) Tier {
	if len(c.Tiers) == 0 {
		return Tier{}
	}
	if v < c.Tiers[0].Low {
		return c.Tiers[0]
	}
	for _, t := range c.Tiers {
		if t.Contains(v) {
			return t
		}
	}
	return c.Tiers[len(c.Tiers)-1]
}

// Rubric is an ordered set of criteria.
type Rubric struct {
	Name     string      `koanf:"name" json:"name"`
	Criteria []Criterion `koanf:"criteria" json:"criteria"`
}

// TotalWeight sums all criterion weights.
func (r *Rubric) TotalWeight() float64 {
	total := 0.0
	for _, c := range r.Criteria {
		total += c.Weight
	}
	return total
}

// Validate checks every loading-time invariant. A rubric that fails
// validation must never reach the scoring engine.
func (r *Rubric) Validate() error {
	if len(r.Criteria) == 0 {
		return fmt.Errorf("%w: rubric has no criteria", ErrMisconfigured)
	}
	seen := make(map[string]struct{}, len(r.Criteria))
	for i, c := range r.Criteria {
		if strings.TrimSpace(c.ID) == "" {
			return fmt.Errorf("%w: criterion %d has empty id", ErrMisconfigured, i)
		}
		if _, dup := seen[c.ID]; dup {
			return fmt.Errorf("%w: duplicate criterion id %q", ErrMisconfigured, c.ID)
		}
		seen[c.ID] = struct{}{}
		if c.Weight <= 0 {
			return fmt.Errorf("%w: criterion %q weight must be positive", ErrMisconfigured, c.ID)
		}
		switch c.Kind {
		case KindRule:
			if err := validateRule(c); err != nil {
				return err
			}
		case KindSemantic:
			if strings.TrimSpace(c.IdealText) == "" {
				return fmt.Errorf("%w: semantic criterion %q has no ideal_text", ErrMisconfigured, c.ID)
			}
			// Similarity tiers are optional, but when present they follow
			// the same interval rules as rule tiers.
			if len(c.Tiers) > 0 {
				if err := validateTiers(c); err != nil {
					return err
				}
			}
		default:
			return fmt.Errorf("%w: criterion %q has unknown kind %q", ErrMisconfigured, c.ID, c.Kind)
		}
	}
	return nil
}

func validateRule(c Criterion) error {
	switch c.Metric {
	case MetricSpeechRate, MetricFillerRate, MetricTypeTokenRatio, MetricGrammarErrors:
		// Token-derived metrics need no extra data.
	case MetricKeywordPresence:
		if len(c.KeywordGroups) == 0 {
			return fmt.Errorf("%w: keyword criterion %q has no keyword_groups", ErrMisconfigured, c.ID)
		}
		for gi, group := range c.KeywordGroups {
			if len(group) == 0 {
				return fmt.Errorf("%w: keyword criterion %q group %d is empty", ErrMisconfigured, c.ID, gi)
			}
			for _, kw := range group {
				if strings.TrimSpace(kw) == "" {
					return fmt.Errorf("%w: keyword criterion %q group %d contains a blank keyword", ErrMisconfigured, c.ID, gi)
				}
			}
		}
	default:
		return fmt.Errorf("%w: criterion %q has unknown metric %q", ErrMisconfigured, c.ID, c.Metric)
	}

	if len(c.Tiers) == 0 {
		return fmt.Errorf("%w: rule criterion %q has no tiers", ErrMisconfigured, c.ID)
	}
	return validateTiers(c)
}

func validateTiers(c Criterion) error {
	for i, t := range c.Tiers {
		if t.Low >= t.High {
			return fmt.Errorf("%w: criterion %q tier %d has low >= high", ErrMisconfigured, c.ID, i)
		}
		if t.Score < 0 || t.Score > 1 {
			return fmt.Errorf("%w: criterion %q tier %d score outside [0,1]", ErrMisconfigured, c.ID, i)
		}
		if i > 0 && c.Tiers[i-1].High != t.Low {
			return fmt.Errorf("%w: criterion %q tiers %d and %d are not contiguous", ErrMisconfigured, c.ID, i-1, i)
		}
	}
	return nil
}
