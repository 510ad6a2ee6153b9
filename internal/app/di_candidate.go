package app

import (
	"fmt"
	"log/slog"

	candidateHTTP "github.com/allisson/resumevault/internal/candidate/http"
	candidateRepository "github.com/allisson/resumevault/internal/candidate/repository"
	candidateService "github.com/allisson/resumevault/internal/candidate/service"
	candidateUseCase "github.com/allisson/resumevault/internal/candidate/usecase"
	"github.com/allisson/resumevault/internal/extraction"
)

// RecordCodec returns the codec that encrypts candidates for storage.
func (c *Container) RecordCodec() (candidateService.RecordCodec, error) {
	var err error
	c.recordCodecInit.Do(func() {
		c.recordCodec, err = c.initRecordCodec()
		if err != nil {
			c.initErrors["recordCodec"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["recordCodec"]; exists {
		return nil, storedErr
	}
	return c.recordCodec, nil
}

// CandidateRepository returns the candidate repository based on database driver.
func (c *Container) CandidateRepository() (candidateUseCase.CandidateRepository, error) {
	var err error
	c.candidateRepositoryInit.Do(func() {
		c.candidateRepository, err = c.initCandidateRepository()
		if err != nil {
			c.initErrors["candidateRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["candidateRepository"]; exists {
		return nil, storedErr
	}
	return c.candidateRepository, nil
}

// DocumentFetcher returns the resume downloader.
func (c *Container) DocumentFetcher() candidateUseCase.DocumentFetcher {
	c.documentFetcherInit.Do(func() {
		c.documentFetcher = extraction.NewPDFFetcher(extraction.PDFFetcherConfig{
			Timeout:    c.config.DocumentFetchTimeout,
			MaxRetries: c.config.DocumentFetchMaxRetries,
			MaxBytes:   c.config.DocumentMaxBytes,

			AllowPrivateNetworks: c.config.DocumentAllowPrivateNetworks,
		}, c.Logger())
	})
	return c.documentFetcher
}

// TextExtractor returns the PDF text extractor.
func (c *Container) TextExtractor() candidateUseCase.TextExtractor {
	c.textExtractorInit.Do(func() {
		c.textExtractor = extraction.NewPDFTextExtractor()
	})
	return c.textExtractor
}

// ProfileExtractor returns the generative model profile extractor.
func (c *Container) ProfileExtractor() (candidateUseCase.ProfileExtractor, error) {
	var err error
	c.profileExtractorInit.Do(func() {
		c.profileExtractor, err = c.initProfileExtractor()
		if err != nil {
			c.initErrors["profileExtractor"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["profileExtractor"]; exists {
		return nil, storedErr
	}
	return c.profileExtractor, nil
}

// CandidateUseCase returns the candidate use case.
func (c *Container) CandidateUseCase() (candidateUseCase.CandidateUseCase, error) {
	var err error
	c.candidateUseCaseInit.Do(func() {
		c.candidateUseCase, err = c.initCandidateUseCase()
		if err != nil {
			c.initErrors["candidateUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["candidateUseCase"]; exists {
		return nil, storedErr
	}
	return c.candidateUseCase, nil
}

// CandidateHandler returns the HTTP handler for resume analysis and search.
func (c *Container) CandidateHandler() (*candidateHTTP.CandidateHandler, error) {
	var err error
	c.candidateHandlerInit.Do(func() {
		c.candidateHandler, err = c.initCandidateHandler()
		if err != nil {
			c.initErrors["candidateHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["candidateHandler"]; exists {
		return nil, storedErr
	}
	return c.candidateHandler, nil
}

// initRecordCodec creates the record codec on top of the field cipher.
func (c *Container) initRecordCodec() (candidateService.RecordCodec, error) {
	fieldCipher, err := c.FieldCipher()
	if err != nil {
		return nil, fmt.Errorf("failed to get field cipher for record codec: %w", err)
	}
	return candidateService.NewRecordCodec(fieldCipher), nil
}

// initCandidateRepository creates the candidate repository based on the database driver.
func (c *Container) initCandidateRepository() (candidateUseCase.CandidateRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for candidate repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return candidateRepository.NewMySQLCandidateRepository(db), nil
	case "postgres":
		return candidateRepository.NewPostgreSQLCandidateRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initProfileExtractor creates the profile extractor. Without an API key every
// extraction fails with a 503 and a warning is logged once at startup.
func (c *Container) initProfileExtractor() (candidateUseCase.ProfileExtractor, error) {
	if err := c.config.Validate(); err != nil {
		return nil, err
	}
	logger := c.Logger()

	var generator extraction.Generator = extraction.DisabledGenerator{}
	if c.config.GeminiAPIKey == "" {
		logger.Warn("GEMINI_API_KEY is not set, resume analysis is disabled")
	} else {
		gemini, err := extraction.NewGeminiGenerator(c.ctx, c.config.GeminiAPIKey, c.config.GeminiModel)
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini generator: %w", err)
		}
		generator = gemini
		logger.Info("profile extractor configured", slog.String("model", c.config.GeminiModel))
	}

	return extraction.NewProfileExtractor(generator, extraction.ProfileExtractorConfig{
		Timeout:         c.config.GeminiTimeout,
		BreakerFailures: uint(c.config.ExtractorBreakerFailures), //nolint:gosec // checked by Config.Validate
		BreakerCooldown: c.config.ExtractorBreakerCooldown,
	}, logger), nil
}

// initCandidateUseCase creates the candidate use case, wrapped with metrics when enabled.
func (c *Container) initCandidateUseCase() (candidateUseCase.CandidateUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for candidate use case: %w", err)
	}

	repository, err := c.CandidateRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get candidate repository for candidate use case: %w", err)
	}

	recordCodec, err := c.RecordCodec()
	if err != nil {
		return nil, fmt.Errorf("failed to get record codec for candidate use case: %w", err)
	}

	profileExtractor, err := c.ProfileExtractor()
	if err != nil {
		return nil, fmt.Errorf("failed to get profile extractor for candidate use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for candidate use case: %w", err)
	}

	baseUseCase := candidateUseCase.NewCandidateUseCase(
		txManager,
		repository,
		recordCodec,
		c.DocumentFetcher(),
		c.TextExtractor(),
		profileExtractor,
		businessMetrics,
		c.Logger(),
	)

	if c.config.MetricsEnabled {
		return candidateUseCase.NewCandidateUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initCandidateHandler creates the candidate handler.
func (c *Container) initCandidateHandler() (*candidateHTTP.CandidateHandler, error) {
	useCase, err := c.CandidateUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get candidate use case for candidate handler: %w", err)
	}
	return candidateHTTP.NewCandidateHandler(useCase, c.Logger()), nil
}
