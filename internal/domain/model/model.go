// Package model contains domain models passed between layers.
package model

// CriterionResult is the outcome for one criterion of one scoring request.
// Fields mirror the response schema for POST /score.
type CriterionResult struct {
	CriterionID     string  `json:"id"`
	DisplayName     string  `json:"display_name"`
	RawMetric       float64 `json:"raw_metric"`
	NormalizedScore float64 `json:"normalized_score"` // in [0,1] before weighting
	Weight          float64 `json:"weight"`
	Feedback        string  `json:"feedback"`
	Degraded        bool    `json:"degraded,omitempty"` // semantic fallback was used
}

// ServiceStats is a point-in-time snapshot of service counters, served
// as the GET /stats response body.
type ServiceStats struct {
	Started       bool   `json:"started"`
	TotalScored   int64  `json:"total_scored"`
	TotalDegraded int64  `json:"total_degraded"`
	TotalEmpty    int64  `json:"total_empty"`
	RubricName    string `json:"rubric,omitempty"`
	CriteriaCount int    `json:"criteria,omitempty"`
}

// ScoreReport is the sole output of a scoring request. Criterion order
// matches rubric order one-to-one.
type ScoreReport struct {
	OverallScore float64           `json:"overall_score"` // in [0,100]
	WordCount    int               `json:"word_count"`
	Degraded     bool              `json:"degraded"` // any criterion fell back
	Criteria     []CriterionResult `json:"criteria"`
}
