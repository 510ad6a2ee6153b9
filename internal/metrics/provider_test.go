package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider_RegistriesAreIsolated(t *testing.T) {
	first, err := NewProvider("resumevault")
	require.NoError(t, err)
	second, err := NewProvider("resumevault")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, first.Shutdown(context.Background()))
		assert.NoError(t, second.Shutdown(context.Background()))
	}()

	bm, err := NewBusinessMetrics(first.MeterProvider(), "resumevault")
	require.NoError(t, err)
	bm.RecordDroppedRecords(context.Background(), "candidates", "integrity", 2)

	assertMetricLine(t, scrape(t, first), `resumevault_dropped_records_total`, `reason="integrity"`, `2`)
	assert.NotContains(t, scrape(t, second), "resumevault_dropped_records_total")
}

func TestProvider_HandlerNegotiatesOpenMetrics(t *testing.T) {
	provider, err := NewProvider("resumevault")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "resumevault")
	require.NoError(t, err)
	bm.RecordOperation(context.Background(), "candidates", "search", "success")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	req.Header.Set("Accept", "application/openmetrics-text; version=1.0.0")
	provider.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/openmetrics-text")
	assert.Contains(t, w.Body.String(), "resumevault_operations")
	assert.Contains(t, w.Body.String(), "# EOF")

	w = httptest.NewRecorder()
	provider.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	assert.NotContains(t, w.Body.String(), "# EOF")
}

func TestProvider_Shutdown(t *testing.T) {
	t.Run("recording after shutdown is a no-op", func(t *testing.T) {
		provider, err := NewProvider("resumevault")
		require.NoError(t, err)

		bm, err := NewBusinessMetrics(provider.MeterProvider(), "resumevault")
		require.NoError(t, err)

		require.NoError(t, provider.Shutdown(context.Background()))
		assert.NotPanics(t, func() {
			bm.RecordOperation(context.Background(), "auth", "login", "success")
		})
	})

	t.Run("zero provider", func(t *testing.T) {
		assert.NoError(t, (&Provider{}).Shutdown(context.Background()))
	})
}
