// Package scoring computes a weighted rubric score for a spoken transcript.
// It combines lexical metrics, keyword coverage and semantic similarity into
// a single report with per-criterion feedback.
package scoring

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/chaithu10000/Nirmaan-AI-Scorer/internal/domain/keywords"
	"github.com/chaithu10000/Nirmaan-AI-Scorer/internal/domain/lexical"
	"github.com/chaithu10000/Nirmaan-AI-Scorer/internal/domain/model"
	"github.com/chaithu10000/Nirmaan-AI-Scorer/internal/domain/semantic"
	"github.com/chaithu10000/Nirmaan-AI-Scorer/internal/domain/transcript"
	"github.com/chaithu10000/Nirmaan-AI-Scorer/internal/rubric"
)

// Default engine configuration constants.
const (
	defaultNeutralScore = 0.5
	defaultEmbedTimeout = 2 * time.Second
	maxScoreValue       = 100
)

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithEmbedder sets the embedding capability used for semantic criteria.
func WithEmbedder(e semantic.Embedder) Option {
	return func(s *Engine) {
		if e != nil {
			s.embedder = e
		}
	}
}

// WithDetector sets the grammar error detector.
func WithDetector(d lexical.Detector) Option {
	return func(s *Engine) {
		if d != nil {
			s.detector = d
		}
	}
}

// WithNeutralScore sets the fallback normalized score used when semantic
// similarity is unavailable.
func WithNeutralScore(v float64) Option {
	return func(s *Engine) {
		if v >= 0 && v <= 1 {
			s.neutralScore = v
		}
	}
}

// WithEmbedTimeout bounds each semantic criterion's embedding calls.
func WithEmbedTimeout(d time.Duration) Option {
	return func(s *Engine) {
		if d > 0 {
			s.embedTimeout = d
		}
	}
}

// WithPrecision sets the number of decimal places kept on the overall score.
func WithPrecision(p int) Option {
	return func(s *Engine) {
		if p >= 0 {
			s.precision = p
		}
	}
}

// Engine scores transcripts against a fixed rubric. It is safe for
// concurrent use; all mutable state lives in the per-call report.
type Engine struct {
	rubric       *rubric.Rubric
	embedder     semantic.Embedder
	detector     lexical.Detector
	neutralScore float64
	embedTimeout time.Duration
	precision    int
}

// NewEngine creates a scoring engine for the given rubric with options.
func NewEngine(r *rubric.Rubric, opts ...Option) *Engine {
	s := &Engine{
		rubric:       r,
		detector:     lexical.NewSignatureDetector(),
		neutralScore: defaultNeutralScore,
		embedTimeout: defaultEmbedTimeout,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Rubric returns the rubric the engine scores against.
func (s *Engine) Rubric() *rubric.Rubric {
	return s.rubric
}

// Score evaluates a raw transcript spoken over durationMinutes and returns
// the full report. The duration must be positive; everything else about the
// transcript, including emptiness, is handled gracefully. Embedding
// failures degrade the affected criteria to the neutral score instead of
// failing the whole report.
func (s *Engine) Score(ctx context.Context, raw string, durationMinutes float64) (model.ScoreReport, error) {
	norm := transcript.Normalize(raw)

	wpm, err := lexical.WordsPerMinute(norm.WordCount, durationMinutes)
	if err != nil {
		return model.ScoreReport{}, err
	}

	report := model.ScoreReport{
		WordCount: norm.WordCount,
		Criteria:  make([]model.CriterionResult, 0, len(s.rubric.Criteria)),
	}

	var weightedSum, totalWeight float64
	for _, c := range s.rubric.Criteria {
		var res model.CriterionResult
		switch c.Kind {
		case rubric.KindSemantic:
			res = s.scoreSemantic(ctx, c, raw)
		default:
			res = s.scoreRule(c, norm, wpm)
		}

		if res.Degraded {
			report.Degraded = true
		}
		weightedSum += res.NormalizedScore * res.Weight
		totalWeight += res.Weight
		report.Criteria = append(report.Criteria, res)
	}

	if totalWeight > 0 {
		report.OverallScore = s.round(maxScoreValue * weightedSum / totalWeight)
	}

	return report, nil
}

// scoreRule measures the criterion's metric on the normalized transcript
// and maps it through the criterion's tier table.
func (s *Engine) scoreRule(c rubric.Criterion, norm transcript.Normalized, wpm float64) model.CriterionResult {
	var (
		raw      float64
		feedback string
	)

	switch c.Metric {
	case rubric.MetricSpeechRate:
		raw = wpm
		feedback = speechRateFeedback(wpm)
	case rubric.MetricFillerRate:
		raw = lexical.FillerRate(norm.Tokens)
		feedback = fillerFeedback(raw, lexical.FillerCount(norm.Tokens))
	case rubric.MetricTypeTokenRatio:
		raw = lexical.TypeTokenRatio(norm.Tokens)
		feedback = vocabularyFeedback(raw)
	case rubric.MetricGrammarErrors:
		errs := s.detector.Count(norm.Tokens)
		raw = lexical.ErrorsPer100Words(errs, norm.WordCount)
		feedback = grammarFeedback(errs, raw)
	case rubric.MetricKeywordPresence:
		raw = keywords.PresenceRatio(norm.Tokens, c.KeywordGroups)
		feedback = keywordFeedback(norm.Tokens, c.KeywordGroups, raw)
	}

	tier := c.TierFor(raw)

	return model.CriterionResult{
		CriterionID:     c.ID,
		DisplayName:     c.DisplayName,
		RawMetric:       raw,
		NormalizedScore: tier.Score,
		Weight:          c.Weight,
		Feedback:        feedback,
	}
}

// scoreSemantic compares the raw transcript against the criterion's ideal
// text under the engine's embed timeout. Remap, when configured, rescales
// the raw similarity before tier lookup.
func (s *Engine) scoreSemantic(ctx context.Context, c rubric.Criterion, raw string) model.CriterionResult {
	res := model.CriterionResult{
		CriterionID: c.ID,
		DisplayName: c.DisplayName,
		Weight:      c.Weight,
	}

	embedCtx, cancel := context.WithTimeout(ctx, s.embedTimeout)
	defer cancel()

	sim, err := semantic.Similarity(embedCtx, s.embedder, raw, c.IdealText)
	if err != nil {
		res.RawMetric = s.neutralScore
		res.NormalizedScore = s.neutralScore
		res.Feedback = "Semantic similarity unavailable, neutral score applied."
		res.Degraded = true
		return res
	}

	adjusted := sim
	if c.Remap != nil {
		adjusted = semantic.ClampUnit(sim*c.Remap.Scale + c.Remap.Offset)
	}

	res.RawMetric = sim
	// Tiers are optional for semantic criteria; without them the adjusted
	// similarity is the normalized score.
	if len(c.Tiers) > 0 {
		res.NormalizedScore = c.TierFor(adjusted).Score
	} else {
		res.NormalizedScore = adjusted
	}
	res.Feedback = semanticFeedback(adjusted)
	return res
}

func (s *Engine) round(v float64) float64 {
	factor := math.Pow(10, float64(s.precision))
	return math.Round(v*factor) / factor
}

func speechRateFeedback(wpm float64) string {
	switch {
	case wpm == 0:
		return "No speech detected."
	case wpm < 80:
		return fmt.Sprintf("Speech rate too slow: %.0f WPM. Aim for 100-150 WPM.", wpm)
	case wpm < 100:
		return fmt.Sprintf("Speech rate slightly slow: %.0f WPM.", wpm)
	case wpm < 150:
		return fmt.Sprintf("Good speech rate: %.0f WPM.", wpm)
	case wpm < 180:
		return fmt.Sprintf("Speech rate slightly fast: %.0f WPM.", wpm)
	default:
		return fmt.Sprintf("Speech rate too fast: %.0f WPM. Aim for 100-150 WPM.", wpm)
	}
}

func fillerFeedback(rate float64, count int) string {
	switch {
	case count == 0:
		return "No filler words detected."
	case rate < 0.03:
		return fmt.Sprintf("Minor filler word usage: %d detected.", count)
	case rate < 0.10:
		return fmt.Sprintf("Noticeable filler words: %d detected. Try pausing instead.", count)
	default:
		return fmt.Sprintf("Heavy filler word usage: %d detected. Try pausing instead.", count)
	}
}

func vocabularyFeedback(ttr float64) string {
	switch {
	case ttr >= 0.7:
		return fmt.Sprintf("Rich vocabulary (TTR: %.2f).", ttr)
	case ttr >= 0.5:
		return fmt.Sprintf("Good vocabulary (TTR: %.2f).", ttr)
	case ttr > 0:
		return fmt.Sprintf("Repetitive vocabulary (TTR: %.2f). Vary your word choice.", ttr)
	default:
		return "Not enough words to assess vocabulary."
	}
}

func grammarFeedback(errs int, per100 float64) string {
	switch {
	case errs == 0:
		return "No grammar issues detected."
	case per100 < 3:
		return fmt.Sprintf("Minor grammar issues: %d detected.", errs)
	default:
		return fmt.Sprintf("Several grammar issues: %d detected (%.1f per 100 words).", errs, per100)
	}
}

func keywordFeedback(tokens []string, groups [][]string, ratio float64) string {
	if len(groups) == 0 {
		return "No expected topics configured."
	}
	found := keywords.Found(tokens, groups)
	covered := len(found)
	switch {
	case ratio >= 1:
		return fmt.Sprintf("All %d expected topics covered.", len(groups))
	case covered == 0:
		return fmt.Sprintf("None of the %d expected topics covered.", len(groups))
	default:
		return fmt.Sprintf("Covered %d of %d expected topics (%v). Address the missing ones.", covered, len(groups), found)
	}
}

func semanticFeedback(sim float64) string {
	switch {
	case sim >= 0.8:
		return fmt.Sprintf("Response closely matches the expected structure (similarity: %.2f).", sim)
	case sim >= 0.5:
		return fmt.Sprintf("Response partially matches the expected structure (similarity: %.2f).", sim)
	default:
		return fmt.Sprintf("Response diverges from the expected structure (similarity: %.2f).", sim)
	}
}
