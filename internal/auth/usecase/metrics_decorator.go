package usecase

import (
	"context"
	"time"

	authDomain "github.com/allisson/resumevault/internal/auth/domain"
	"github.com/allisson/resumevault/internal/metrics"
)

// tokenUseCaseWithMetrics decorates TokenUseCase with metrics instrumentation.
type tokenUseCaseWithMetrics struct {
	next    TokenUseCase
	metrics metrics.BusinessMetrics
}

// NewTokenUseCaseWithMetrics wraps a TokenUseCase with metrics recording.
func NewTokenUseCaseWithMetrics(useCase TokenUseCase, m metrics.BusinessMetrics) TokenUseCase {
	return &tokenUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Issue records metrics for login operations.
func (t *tokenUseCaseWithMetrics) Issue(
	ctx context.Context,
	issueTokenInput *authDomain.IssueTokenInput,
) (*authDomain.IssueTokenOutput, error) {
	start := time.Now()
	output, err := t.next.Issue(ctx, issueTokenInput)
	t.record(ctx, "login", start, err)
	return output, err
}

// Authenticate records metrics for bearer token verification.
func (t *tokenUseCaseWithMetrics) Authenticate(
	ctx context.Context,
	plainToken string,
) (*authDomain.Token, error) {
	start := time.Now()
	token, err := t.next.Authenticate(ctx, plainToken)
	t.record(ctx, "token_authenticate", start, err)
	return token, err
}

func (t *tokenUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "auth", operation, status)
	t.metrics.RecordDuration(ctx, "auth", operation, time.Since(start), status)
}
