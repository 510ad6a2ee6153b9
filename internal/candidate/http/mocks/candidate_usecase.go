// Package mocks provides mock implementations for testing candidate handlers and decorators.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	candidateDomain "github.com/allisson/resumevault/internal/candidate/domain"
)

// MockCandidateUseCase is a mock implementation of CandidateUseCase for testing.
type MockCandidateUseCase struct {
	mock.Mock
}

// Analyze mocks the Analyze method of CandidateUseCase.
func (m *MockCandidateUseCase) Analyze(ctx context.Context, url string) (*candidateDomain.StoredCandidate, error) {
	args := m.Called(ctx, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*candidateDomain.StoredCandidate), args.Error(1)
}

// SearchByName mocks the SearchByName method of CandidateUseCase.
func (m *MockCandidateUseCase) SearchByName(ctx context.Context, term string) ([]*candidateDomain.Candidate, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*candidateDomain.Candidate), args.Error(1)
}
