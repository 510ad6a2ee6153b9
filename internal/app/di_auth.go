package app

import (
	"fmt"

	authHTTP "github.com/allisson/resumevault/internal/auth/http"
	authService "github.com/allisson/resumevault/internal/auth/service"
	authUseCase "github.com/allisson/resumevault/internal/auth/usecase"
)

// CredentialService returns the service holding the configured login credentials.
func (c *Container) CredentialService() (authService.CredentialService, error) {
	var err error
	c.credentialServiceInit.Do(func() {
		c.credentialService, err = c.initCredentialService()
		if err != nil {
			c.initErrors["credentialService"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["credentialService"]; exists {
		return nil, storedErr
	}
	return c.credentialService, nil
}

// TokenService returns the bearer token service.
func (c *Container) TokenService() (authService.TokenService, error) {
	var err error
	c.tokenServiceInit.Do(func() {
		c.tokenService, err = c.initTokenService()
		if err != nil {
			c.initErrors["tokenService"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tokenService"]; exists {
		return nil, storedErr
	}
	return c.tokenService, nil
}

// TokenUseCase returns the token use case.
func (c *Container) TokenUseCase() (authUseCase.TokenUseCase, error) {
	var err error
	c.tokenUseCaseInit.Do(func() {
		c.tokenUseCase, err = c.initTokenUseCase()
		if err != nil {
			c.initErrors["tokenUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tokenUseCase"]; exists {
		return nil, storedErr
	}
	return c.tokenUseCase, nil
}

// TokenHandler returns the HTTP handler for the login endpoint.
func (c *Container) TokenHandler() (*authHTTP.TokenHandler, error) {
	var err error
	c.tokenHandlerInit.Do(func() {
		c.tokenHandler, err = c.initTokenHandler()
		if err != nil {
			c.initErrors["tokenHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tokenHandler"]; exists {
		return nil, storedErr
	}
	return c.tokenHandler, nil
}

// initCredentialService hashes the configured password.
func (c *Container) initCredentialService() (authService.CredentialService, error) {
	if err := c.config.Validate(); err != nil {
		return nil, err
	}
	credentialService, err := authService.NewCredentialService(c.config.AuthUsername, c.config.AuthPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to create credential service: %w", err)
	}
	return credentialService, nil
}

// initTokenService creates the token service keyed with the signing secret.
func (c *Container) initTokenService() (authService.TokenService, error) {
	km, err := c.KeyMaterial()
	if err != nil {
		return nil, fmt.Errorf("failed to get key material for token service: %w", err)
	}
	return authService.NewTokenService(km, c.config.AuthTokenExpiration, c.Clock()), nil
}

// initTokenUseCase creates the token use case, wrapped with metrics when enabled.
func (c *Container) initTokenUseCase() (authUseCase.TokenUseCase, error) {
	credentialService, err := c.CredentialService()
	if err != nil {
		return nil, fmt.Errorf("failed to get credential service for token use case: %w", err)
	}

	tokenService, err := c.TokenService()
	if err != nil {
		return nil, fmt.Errorf("failed to get token service for token use case: %w", err)
	}

	baseUseCase := authUseCase.NewTokenUseCase(credentialService, tokenService)

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for token use case: %w", err)
		}
		return authUseCase.NewTokenUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initTokenHandler creates the login handler.
func (c *Container) initTokenHandler() (*authHTTP.TokenHandler, error) {
	tokenUseCase, err := c.TokenUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get token use case for token handler: %w", err)
	}
	return authHTTP.NewTokenHandler(tokenUseCase, c.Logger()), nil
}
