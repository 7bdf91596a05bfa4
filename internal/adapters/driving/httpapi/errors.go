// Package httpapi provides a JSON HTTP API for mathgen built on echo.
// Handlers call the generation service in-process.
package httpapi

import "errors"

// ErrMissingGenerationService is returned when the generation service is not provided.
var ErrMissingGenerationService = errors.New("httpapi: generation service is required")
