package httputil

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/resumevault/internal/errors"
)

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func TestHandleErrorGin(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedErr  string
	}{
		{"not found", apperrors.Wrap(apperrors.ErrNotFound, "no candidates"), http.StatusNotFound, "not_found"},
		{"invalid input", apperrors.Wrap(apperrors.ErrInvalidInput, "not a pdf"), http.StatusUnprocessableEntity, "invalid_input"},
		{"unauthorized", apperrors.Wrap(apperrors.ErrUnauthorized, "token expired"), http.StatusUnauthorized, "unauthorized"},
		{"forbidden", apperrors.ErrForbidden, http.StatusForbidden, "forbidden"},
		{"unavailable", apperrors.Wrap(apperrors.ErrUnavailable, "breaker open"), http.StatusServiceUnavailable, "service_unavailable"},
		{"internal", errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext()
			HandleErrorGin(c, tt.err, logger)

			assert.Equal(t, tt.expectedCode, w.Code)
			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedErr, resp.Error)
		})
	}
}

func TestHandleErrorGin_UniformUnauthorized(t *testing.T) {
	c1, w1 := newTestContext()
	HandleErrorGin(c1, apperrors.Wrap(apperrors.ErrUnauthorized, "token expired"), nil)

	c2, w2 := newTestContext()
	HandleErrorGin(c2, apperrors.Wrap(apperrors.ErrUnauthorized, "signature invalid"), nil)

	assert.Equal(t, w1.Body.String(), w2.Body.String())
	assert.NotContains(t, w1.Body.String(), "expired")
}

func TestHandleErrorGin_InternalDetailsHidden(t *testing.T) {
	c, w := newTestContext()
	HandleErrorGin(c, errors.New("pq: connection refused"), nil)
	assert.NotContains(t, w.Body.String(), "pq:")
}

func TestHandleErrorGin_NilError(t *testing.T) {
	c, w := newTestContext()
	HandleErrorGin(c, nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestHandleValidationErrorGin(t *testing.T) {
	c, w := newTestContext()
	HandleValidationErrorGin(c, errors.New("name: cannot be blank."), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "validation_error", resp.Error)
}

func TestHandleBadRequestGin(t *testing.T) {
	c, w := newTestContext()
	HandleBadRequestGin(c, errors.New("bad json"), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "bad_request")
}
