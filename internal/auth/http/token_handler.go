package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/resumevault/internal/auth/domain"
	"github.com/allisson/resumevault/internal/auth/http/dto"
	authUseCase "github.com/allisson/resumevault/internal/auth/usecase"
	"github.com/allisson/resumevault/internal/httputil"
	customValidation "github.com/allisson/resumevault/internal/validation"
)

// TokenHandler handles the login endpoint.
type TokenHandler struct {
	tokenUseCase authUseCase.TokenUseCase
	logger       *slog.Logger
}

// NewTokenHandler creates a new token handler with required dependencies.
func NewTokenHandler(
	tokenUseCase authUseCase.TokenUseCase,
	logger *slog.Logger,
) *TokenHandler {
	return &TokenHandler{
		tokenUseCase: tokenUseCase,
		logger:       logger,
	}
}

// LoginHandler exchanges a username and password for a bearer token.
// POST /api/auth/login - no authentication required.
// Returns 200 OK with the token and its expiry, 400 on a missing field, 401 on a mismatch.
func (h *TokenHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	output, err := h.tokenUseCase.Issue(c.Request.Context(), &authDomain.IssueTokenInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.logger.Info("login succeeded", slog.String("subject", req.Username))

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     output.PlainToken,
		ExpiresAt: output.ExpiresAt,
	})
}
