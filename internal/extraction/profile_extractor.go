package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/failsafe-go/failsafe-go/circuitbreaker"

	candidateDomain "github.com/allisson/resumevault/internal/candidate/domain"
)

const profilePrompt = `Analyze the following resume text and extract the information in strictly JSON format with these fields only:
- name (string): The candidate's full name
- email (string): The candidate's email address
- education: object containing
  - degree (string): Highest degree obtained
  - branch (string): Field of study
  - institution (string): University or college name
  - year (number): Year of completion
- experience: object containing
  - job_title (string): Current or most recent job title
  - company (string): Company name
  - start_date (string): Start date in YYYY-MM format
  - end_date (string): End date in YYYY-MM format or "present"
- skills (array): List of technical and professional skills
- summary (string): A brief professional summary of the candidate

Resume text:
`

// ProfileExtractorConfig configures ProfileExtractor.
type ProfileExtractorConfig struct {
	// Timeout bounds a single model call.
	Timeout time.Duration
	// BreakerFailures is the number of consecutive failures that opens the breaker.
	BreakerFailures uint
	// BreakerCooldown is how long the breaker stays open before a trial call.
	BreakerCooldown time.Duration
}

// ProfileExtractor asks a generative model for a structured candidate.
// Model failures feed a circuit breaker; while it is open calls fail fast
// with ErrExtractorUnavailable.
type ProfileExtractor struct {
	generator Generator
	breaker   circuitbreaker.CircuitBreaker[any]
	timeout   time.Duration
	logger    *slog.Logger
}

// extractedProfile is the JSON object the model is asked to return.
type extractedProfile struct {
	Name       string                     `json:"name"`
	Email      string                     `json:"email"`
	Education  candidateDomain.Education  `json:"education"`
	Experience candidateDomain.Experience `json:"experience"`
	Skills     []string                   `json:"skills"`
	Summary    string                     `json:"summary"`
}

// NewProfileExtractor creates a ProfileExtractor around generator.
func NewProfileExtractor(generator Generator, cfg ProfileExtractorConfig, logger *slog.Logger) *ProfileExtractor {
	breaker := circuitbreaker.NewBuilder[any]().
		WithFailureThreshold(cfg.BreakerFailures).
		WithDelay(cfg.BreakerCooldown).
		WithSuccessThreshold(1).
		OnStateChanged(func(e circuitbreaker.StateChangedEvent) {
			logger.Warn("circuit breaker state changed",
				slog.String("component", "profile_extractor"),
				slog.String("from", e.OldState.String()),
				slog.String("to", e.NewState.String()),
			)
		}).
		Build()

	return &ProfileExtractor{
		generator: generator,
		breaker:   breaker,
		timeout:   cfg.Timeout,
		logger:    logger,
	}
}

// generation is the outcome of one model call.
type generation struct {
	text string
	err  error
}

// Extract returns a candidate with Name, Email and Profile populated from the
// model response. Presence of name and email is checked by the caller.
//
// The model call is detached from ctx cancellation and bounded by the
// configured timeout instead. When ctx ends first Extract returns ctx.Err()
// and the call finishes in the background; the breaker only ever records the
// model's own outcome.
func (p *ProfileExtractor) Extract(ctx context.Context, resumeText string) (*candidateDomain.Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !p.breaker.TryAcquirePermit() {
		return nil, fmt.Errorf("%w: %v", ErrExtractorUnavailable, circuitbreaker.ErrOpen)
	}

	done := make(chan generation, 1)
	go func() {
		done <- p.generate(context.WithoutCancel(ctx), profilePrompt+resumeText)
	}()

	var result generation
	select {
	case <-ctx.Done():
		p.logger.Debug("profile extraction abandoned by caller", slog.Any("error", ctx.Err()))
		return nil, ctx.Err()
	case result = <-done:
	}

	if result.err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExtractorUnavailable, result.err)
	}
	raw := result.text

	var profile extractedProfile
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &profile); err != nil {
		p.logger.Warn("model returned malformed profile", slog.Any("error", err))
		return nil, fmt.Errorf("%w: %v", ErrMalformedProfile, err)
	}

	return &candidateDomain.Candidate{
		Name:  strings.TrimSpace(profile.Name),
		Email: strings.TrimSpace(profile.Email),
		Profile: candidateDomain.Profile{
			Education:  profile.Education,
			Experience: profile.Experience,
			Skills:     profile.Skills,
			Summary:    profile.Summary,
		},
	}, nil
}

// generate runs one model call and records its outcome on the breaker.
func (p *ProfileExtractor) generate(ctx context.Context, prompt string) generation {
	callCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	text, err := p.generator.GenerateContent(callCtx, prompt)
	if err != nil {
		p.breaker.RecordError(err)
		p.logger.Error("profile extraction failed", slog.Any("error", err))
		return generation{err: err}
	}
	p.breaker.RecordSuccess()
	return generation{text: text}
}

// stripCodeFence removes a surrounding markdown code fence such as ```json ... ```.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	} else {
		s = strings.TrimPrefix(s, "json")
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
