package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/resumevault/internal/auth/domain"
	"github.com/allisson/resumevault/internal/config"
	"github.com/allisson/resumevault/internal/metrics"
)

func validConfig() *config.Config {
	return &config.Config{
		LogLevel:                 "info",
		DBDriver:                 "postgres",
		ServerHost:               "localhost",
		ServerPort:               8080,
		EncryptionKey:            "12345678901234567890123456789012",
		FieldCipherAlgorithm:     "aes-gcm",
		SigningSecret:            "signing-secret",
		AuthUsername:             "naval.ravikant",
		AuthPassword:             "05111974",
		AuthTokenExpiration:      time.Hour,
		GeminiTimeout:            time.Second,
		ExtractorBreakerFailures: 3,
		ExtractorBreakerCooldown: time.Second,
		DocumentFetchTimeout:     time.Second,
		DocumentMaxBytes:         1 << 20,
		MetricsNamespace:         "test_app",
		MetricsPort:              8081,
	}
}

func TestNewContainer(t *testing.T) {
	cfg := validConfig()
	container := NewContainer(cfg)

	require.NotNil(t, container)
	assert.Same(t, cfg, container.Config())
}

func TestContainerLogger(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "invalid"} {
		container := NewContainer(&config.Config{LogLevel: level})

		logger := container.Logger()
		require.NotNil(t, logger, level)
		assert.Same(t, logger, container.Logger(), "logger should be a singleton")
	}
}

func TestContainerInitializationErrors(t *testing.T) {
	container := NewContainer(&config.Config{
		DBDriver:           "invalid_driver",
		DBConnectionString: "",
	})

	_, err := container.DB()
	assert.Error(t, err)

	_, err = container.DB()
	assert.Error(t, err, "the stored error should be returned on the second call")
}

func TestContainerLazyInitialization(t *testing.T) {
	container := NewContainer(&config.Config{LogLevel: "info"})

	assert.Nil(t, container.logger)
	assert.Nil(t, container.fieldCipher)

	require.NotNil(t, container.Logger())
	assert.NotNil(t, container.logger)
}

func TestContainer_KeyMaterialAndFieldCipher(t *testing.T) {
	container := NewContainer(validConfig())

	km, err := container.KeyMaterial()
	require.NoError(t, err)
	assert.Equal(t, []byte("12345678901234567890123456789012"), km.CipherKey())

	fieldCipher, err := container.FieldCipher()
	require.NoError(t, err)

	field, err := fieldCipher.Encrypt("Raj Shamani")
	require.NoError(t, err)
	plaintext, err := fieldCipher.Decrypt(field)
	require.NoError(t, err)
	assert.Equal(t, "Raj Shamani", plaintext)

	assert.NoError(t, container.Shutdown(context.Background()))
}

func TestContainer_FieldCipherErrors(t *testing.T) {
	t.Run("missing key", func(t *testing.T) {
		cfg := validConfig()
		cfg.EncryptionKey = ""

		_, err := NewContainer(cfg).FieldCipher()
		assert.ErrorIs(t, err, config.ErrEncryptionKeyNotSet)
	})

	t.Run("unknown algorithm", func(t *testing.T) {
		cfg := validConfig()
		cfg.FieldCipherAlgorithm = "rot13"

		_, err := NewContainer(cfg).FieldCipher()
		assert.Error(t, err)
	})
}

func TestContainer_TokenUseCase(t *testing.T) {
	for _, metricsEnabled := range []bool{false, true} {
		cfg := validConfig()
		cfg.MetricsEnabled = metricsEnabled
		container := NewContainer(cfg)

		tokenUseCase, err := container.TokenUseCase()
		require.NoError(t, err)

		output, err := tokenUseCase.Issue(context.Background(), &authDomain.IssueTokenInput{
			Username: "naval.ravikant",
			Password: "05111974",
		})
		require.NoError(t, err)

		token, err := tokenUseCase.Authenticate(context.Background(), output.PlainToken)
		require.NoError(t, err)
		assert.Equal(t, "naval.ravikant", token.Subject)

		_, err = tokenUseCase.Issue(context.Background(), &authDomain.IssueTokenInput{
			Username: "naval.ravikant",
			Password: "wrong",
		})
		assert.ErrorIs(t, err, authDomain.ErrInvalidCredentials)

		handler, err := container.TokenHandler()
		require.NoError(t, err)
		assert.NotNil(t, handler)

		assert.NoError(t, container.Shutdown(context.Background()))
	}
}

func TestContainer_ProfileExtractorWithoutAPIKey(t *testing.T) {
	container := NewContainer(validConfig())

	extractor, err := container.ProfileExtractor()
	require.NoError(t, err)

	_, err = extractor.Extract(context.Background(), "resume text")
	assert.Error(t, err)
}

func TestContainer_ExtractionCollaborators(t *testing.T) {
	container := NewContainer(validConfig())

	assert.NotNil(t, container.DocumentFetcher())
	assert.Same(t, container.DocumentFetcher(), container.DocumentFetcher())
	assert.NotNil(t, container.TextExtractor())
}

func TestContainer_MetricsDisabled(t *testing.T) {
	container := NewContainer(validConfig())

	provider, err := container.MetricsProvider()
	require.NoError(t, err)
	assert.Nil(t, provider)

	server, err := container.MetricsServer()
	require.NoError(t, err)
	assert.Nil(t, server)

	businessMetrics, err := container.BusinessMetrics()
	require.NoError(t, err)
	assert.IsType(t, &metrics.NoOpBusinessMetrics{}, businessMetrics)
}

func TestContainer_MetricsEnabled(t *testing.T) {
	cfg := validConfig()
	cfg.MetricsEnabled = true
	container := NewContainer(cfg)

	provider, err := container.MetricsProvider()
	require.NoError(t, err)
	require.NotNil(t, provider)

	server, err := container.MetricsServer()
	require.NoError(t, err)
	assert.NotNil(t, server)

	assert.NoError(t, container.Shutdown(context.Background()))
}

func TestContainer_CandidateRepositoryUnsupportedDriver(t *testing.T) {
	cfg := validConfig()
	cfg.DBDriver = "sqlite"

	_, err := NewContainer(cfg).CandidateRepository()
	assert.Error(t, err)
}

func TestContainerShutdown(t *testing.T) {
	container := NewContainer(&config.Config{LogLevel: "info"})

	assert.NoError(t, container.Shutdown(context.TODO()))
	assert.ErrorIs(t, container.ctx.Err(), context.Canceled)
}
