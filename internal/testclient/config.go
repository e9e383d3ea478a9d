package testclient

import "time"

// Config holds configuration for the transcript test
type Config struct {
	BaseURL        string        // Base URL of the service
	NumTranscripts int           // Number of transcripts to generate
	Workers        int           // Number of concurrent workers
	Timeout        time.Duration // HTTP request timeout
	OutputFile     string        // Output file for transcripts
	LogFile        string        // Log file for test output
	Verbose        bool          // Enable verbose logging
}

// Transcript represents a generated transcript to be scored
type Transcript struct {
	ID              string  `json:"id"`
	Text            string  `json:"text"`
	DurationMinutes float64 `json:"duration_minutes"`
	Quality         string  `json:"quality"`
}

// ScoreRequest mirrors the request schema for POST /score
type ScoreRequest struct {
	Transcript      string  `json:"transcript"`
	DurationMinutes float64 `json:"duration_minutes"`
}

// CriterionResult mirrors one scored criterion in the response
type CriterionResult struct {
	CriterionID     string  `json:"id"`
	DisplayName     string  `json:"display_name"`
	RawMetric       float64 `json:"raw_metric"`
	NormalizedScore float64 `json:"normalized_score"`
	Weight          float64 `json:"weight"`
	Feedback        string  `json:"feedback"`
	Degraded        bool    `json:"degraded,omitempty"`
}

// ScoreReport mirrors the response from POST /score
type ScoreReport struct {
	OverallScore float64           `json:"overall_score"`
	WordCount    int               `json:"word_count"`
	Degraded     bool              `json:"degraded"`
	Criteria     []CriterionResult `json:"criteria"`
}

// Result pairs a transcript with its report and request latency
type Result struct {
	Transcript Transcript
	Report     ScoreReport
	Latency    time.Duration
	Err        error
}

// Stats holds test statistics
type Stats struct {
	TranscriptsGenerated int
	RequestsSubmitted    int
	RequestsSuccessful   int
	RequestsFailed       int
	ReportsDegraded      int
	VerificationFailures int
	StartTime            time.Time
	EndTime              time.Time
	Duration             time.Duration
}
