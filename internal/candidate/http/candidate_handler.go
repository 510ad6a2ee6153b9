// Package http provides HTTP handlers for resume analysis and candidate search.
// Both routes sit behind the bearer token gate.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/resumevault/internal/candidate/http/dto"
	candidatesUseCase "github.com/allisson/resumevault/internal/candidate/usecase"
	"github.com/allisson/resumevault/internal/httputil"
	customValidation "github.com/allisson/resumevault/internal/validation"
)

// CandidateHandler handles HTTP requests for candidate operations.
type CandidateHandler struct {
	candidateUseCase candidatesUseCase.CandidateUseCase
	logger           *slog.Logger
}

// NewCandidateHandler creates a new candidate handler with required dependencies.
func NewCandidateHandler(
	candidateUseCase candidatesUseCase.CandidateUseCase,
	logger *slog.Logger,
) *CandidateHandler {
	return &CandidateHandler{
		candidateUseCase: candidateUseCase,
		logger:           logger,
	}
}

// AnalyzeHandler downloads, extracts and stores the resume at the posted URL.
// POST /api/resume/analyze - Requires a bearer token.
// Returns 201 Created with the record ID, hex ciphertext for name and email,
// and the plaintext profile.
func (h *CandidateHandler) AnalyzeHandler(c *gin.Context) {
	var req dto.AnalyzeResumeRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	stored, err := h.candidateUseCase.Analyze(c.Request.Context(), req.URL)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapStoredCandidateToAnalyzeResponse(stored))
}

// SearchByNameHandler returns decrypted candidates whose name contains the posted term.
// POST /api/search/name - Requires a bearer token.
// Returns 200 OK with an array, 400 for an empty term, 404 when nothing matches.
func (h *CandidateHandler) SearchByNameHandler(c *gin.Context) {
	var req dto.SearchByNameRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	candidates, err := h.candidateUseCase.SearchByName(c.Request.Context(), req.Name)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapCandidatesToResponse(candidates))
}
