package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	candidateDomain "github.com/allisson/resumevault/internal/candidate/domain"
	candidateService "github.com/allisson/resumevault/internal/candidate/service"
	"github.com/allisson/resumevault/internal/database"
	"github.com/allisson/resumevault/internal/metrics"
)

// candidateUseCase implements CandidateUseCase.
type candidateUseCase struct {
	txManager        database.TxManager
	candidateRepo    CandidateRepository
	recordCodec      candidateService.RecordCodec
	documentFetcher  DocumentFetcher
	textExtractor    TextExtractor
	profileExtractor ProfileExtractor
	businessMetrics  metrics.BusinessMetrics
	logger           *slog.Logger
}

func (c *candidateUseCase) Analyze(ctx context.Context, url string) (*candidateDomain.StoredCandidate, error) {
	document, err := c.documentFetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	text, err := c.textExtractor.ExtractText(ctx, document)
	if err != nil {
		return nil, err
	}

	candidate, err := c.profileExtractor.Extract(ctx, text)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(candidate.Name) == "" || strings.TrimSpace(candidate.Email) == "" {
		return nil, candidateDomain.ErrMissingIdentity
	}

	candidate.ID = uuid.Must(uuid.NewV7())
	candidate.CreatedAt = time.Now().UTC()

	stored, err := c.recordCodec.ToStorage(candidate)
	if err != nil {
		return nil, err
	}

	err = c.txManager.WithTx(ctx, func(txCtx context.Context) error {
		return c.candidateRepo.Create(txCtx, stored)
	})
	if err != nil {
		return nil, err
	}

	c.logger.Info("candidate stored", slog.String("candidate_id", stored.ID.String()))

	return stored, nil
}

func (c *candidateUseCase) SearchByName(ctx context.Context, term string) ([]*candidateDomain.Candidate, error) {
	// Blank terms are rejected, but a usable term is matched verbatim,
	// surrounding spaces included.
	if strings.TrimSpace(term) == "" {
		return nil, candidateDomain.ErrSearchTermRequired
	}

	stored, err := c.candidateRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	decoded, dropped, err := c.recordCodec.FromStorageBatch(ctx, stored)
	if err != nil {
		return nil, err
	}

	if len(dropped) > 0 {
		for _, id := range dropped {
			c.logger.Error("candidate record failed integrity check",
				slog.String("candidate_id", id.String()))
		}
		c.businessMetrics.RecordDroppedRecords(ctx, "candidates", "integrity", len(dropped))
	}

	needle := strings.ToLower(term)
	matches := make([]*candidateDomain.Candidate, 0)
	for _, candidate := range decoded {
		if strings.Contains(strings.ToLower(candidate.Name), needle) {
			matches = append(matches, candidate)
		}
	}

	if len(matches) == 0 {
		return nil, candidateDomain.ErrNoMatchingCandidates
	}

	return matches, nil
}

// NewCandidateUseCase creates a new CandidateUseCase.
func NewCandidateUseCase(
	txManager database.TxManager,
	candidateRepo CandidateRepository,
	recordCodec candidateService.RecordCodec,
	documentFetcher DocumentFetcher,
	textExtractor TextExtractor,
	profileExtractor ProfileExtractor,
	businessMetrics metrics.BusinessMetrics,
	logger *slog.Logger,
) CandidateUseCase {
	return &candidateUseCase{
		txManager:        txManager,
		candidateRepo:    candidateRepo,
		recordCodec:      recordCodec,
		documentFetcher:  documentFetcher,
		textExtractor:    textExtractor,
		profileExtractor: profileExtractor,
		businessMetrics:  businessMetrics,
		logger:           logger,
	}
}
