// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"sync"
	"time"

	"github.com/chaithu10000/Nirmaan-AI-Scorer/internal/adapters/embedding"
	"github.com/chaithu10000/Nirmaan-AI-Scorer/internal/domain/model"
	"github.com/chaithu10000/Nirmaan-AI-Scorer/internal/domain/scoring"
	"github.com/chaithu10000/Nirmaan-AI-Scorer/internal/domain/semantic"
	"github.com/chaithu10000/Nirmaan-AI-Scorer/internal/rubric"
	"github.com/chaithu10000/Nirmaan-AI-Scorer/pkg/logger"
	"github.com/chaithu10000/Nirmaan-AI-Scorer/pkg/metrics"
)

// Service implements the API dependencies for the transcript scorer.
type Service struct {
	mu sync.RWMutex

	// Core components
	rubric   *rubric.Rubric
	embedder semantic.Embedder
	engine   *scoring.Engine

	// Configuration
	neutralScore float64
	embedTimeout time.Duration
	precision    int

	// State
	started       bool
	totalScored   int64
	totalDegraded int64
	totalEmpty    int64

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRubric sets the rubric to score against.
func WithRubric(r *rubric.Rubric) Option {
	return func(s *Service) {
		if r != nil {
			s.rubric = r
		}
	}
}

// WithEmbedder sets the embedding capability for semantic criteria.
func WithEmbedder(e semantic.Embedder) Option {
	return func(s *Service) {
		if e != nil {
			s.embedder = e
		}
	}
}

// WithNeutralSemanticScore sets the fallback score applied when semantic
// similarity is unavailable.
func WithNeutralSemanticScore(v float64) Option {
	return func(s *Service) {
		if v >= 0 && v <= 1 {
			s.neutralScore = v
		}
	}
}

// WithEmbedTimeout bounds each semantic criterion's embedding calls.
func WithEmbedTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.embedTimeout = d
		}
	}
}

// WithPrecision sets the decimal places kept on the overall score.
func WithPrecision(p int) Option {
	return func(s *Service) {
		if p >= 0 {
			s.precision = p
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		neutralScore: 0.5,
		embedTimeout: 2 * time.Second,
		logger:       nil, // Will be replaced when service starts
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes the scoring engine and its dependencies.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting scoring service...")

	if s.rubric == nil {
		s.rubric = rubric.Default()
		s.logger.Info(ctx, "using built-in rubric")
	}
	if err := s.rubric.Validate(); err != nil {
		return err
	}
	if s.embedder == nil {
		s.embedder = embedding.NewHashEmbedder()
		s.logger.Info(ctx, "using local hash embedder")
	}

	s.engine = scoring.NewEngine(s.rubric,
		scoring.WithEmbedder(s.embedder),
		scoring.WithNeutralScore(s.neutralScore),
		scoring.WithEmbedTimeout(s.embedTimeout),
		scoring.WithPrecision(s.precision),
	)

	metrics.UpdateRubricCriteria(len(s.rubric.Criteria))

	s.started = true
	s.logger.Info(ctx, "scoring service started",
		logger.String("rubric", s.rubric.Name),
		logger.Int("criteria", len(s.rubric.Criteria)),
	)

	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.logger.Info(context.Background(), "stopping scoring service...")
	s.started = false
	s.logger.Info(context.Background(), "scoring service stopped")
}

// Score evaluates a transcript and returns the full report.
func (s *Service) Score(ctx context.Context, transcript string, durationMinutes float64) (model.ScoreReport, error) {
	s.mu.RLock()
	engine := s.engine
	started := s.started
	s.mu.RUnlock()

	if !started {
		return model.ScoreReport{}, ErrNotStarted
	}

	metrics.RecordScoringRequest()
	start := time.Now()

	report, err := engine.Score(ctx, transcript, durationMinutes)
	metrics.RecordScoringLatency(float64(time.Since(start).Milliseconds()))
	if err != nil {
		metrics.RecordScoringError()
		return model.ScoreReport{}, err
	}

	metrics.RecordOverallScore(report.OverallScore)
	s.mu.Lock()
	s.totalScored++
	if report.Degraded {
		s.totalDegraded++
		metrics.RecordDegradedReport()
	}
	if report.WordCount == 0 {
		s.totalEmpty++
		metrics.RecordEmptyTranscript()
	}
	s.mu.Unlock()

	s.logger.Debug(ctx, "transcript scored",
		logger.Float64("overallScore", report.OverallScore),
		logger.Int("wordCount", report.WordCount),
		logger.Bool("degraded", report.Degraded),
	)

	return report, nil
}

// Rubric returns the rubric the service scores against.
func (s *Service) Rubric() *rubric.Rubric {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rubric
}

// GetStats returns a snapshot of the service counters for monitoring.
func (s *Service) GetStats() model.ServiceStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := model.ServiceStats{
		Started:       s.started,
		TotalScored:   s.totalScored,
		TotalDegraded: s.totalDegraded,
		TotalEmpty:    s.totalEmpty,
	}

	if s.started {
		stats.RubricName = s.rubric.Name
		stats.CriteriaCount = len(s.rubric.Criteria)
		metrics.UpdateRubricCriteria(len(s.rubric.Criteria))
	}

	return stats
}
