package usecase

import (
	"context"
	"errors"
	"time"

	candidateDomain "github.com/allisson/resumevault/internal/candidate/domain"
	"github.com/allisson/resumevault/internal/metrics"
)

// candidateUseCaseWithMetrics decorates CandidateUseCase with metrics instrumentation.
type candidateUseCaseWithMetrics struct {
	next    CandidateUseCase
	metrics metrics.BusinessMetrics
}

// NewCandidateUseCaseWithMetrics wraps a CandidateUseCase with metrics recording.
func NewCandidateUseCaseWithMetrics(useCase CandidateUseCase, m metrics.BusinessMetrics) CandidateUseCase {
	return &candidateUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Analyze records metrics for resume analysis.
func (c *candidateUseCaseWithMetrics) Analyze(
	ctx context.Context,
	url string,
) (*candidateDomain.StoredCandidate, error) {
	start := time.Now()
	stored, err := c.next.Analyze(ctx, url)
	c.record(ctx, "analyze", start, err)
	return stored, err
}

// SearchByName records metrics for name searches. An empty result counts as success.
func (c *candidateUseCaseWithMetrics) SearchByName(
	ctx context.Context,
	term string,
) ([]*candidateDomain.Candidate, error) {
	start := time.Now()
	candidates, err := c.next.SearchByName(ctx, term)

	recorded := err
	if errors.Is(err, candidateDomain.ErrNoMatchingCandidates) {
		recorded = nil
	}
	c.record(ctx, "search", start, recorded)
	return candidates, err
}

func (c *candidateUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "candidates", operation, status)
	c.metrics.RecordDuration(ctx, "candidates", operation, time.Since(start), status)
}
