package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/engine"
)

// HTTPStatus maps engine and config errors to response status codes.
// Provider failures are upstream problems, not client mistakes.
func HTTPStatus(err error) int {
	var (
		configErr   *config.ConfigError
		emptyErr    *engine.EmptyInputError
		providerErr *engine.ProviderError
	)
	switch {
	case errors.As(err, &configErr), errors.As(err, &emptyErr):
		return http.StatusBadRequest
	case errors.As(err, &providerErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
