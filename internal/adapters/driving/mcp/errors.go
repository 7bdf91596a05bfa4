// Package mcp provides an MCP (Model Context Protocol) server adapter for mathgen.
// It lets AI assistants generate problem sets and browse the module library.
package mcp

import "errors"

// ErrMissingGenerationService is returned when the generation service is not provided.
var ErrMissingGenerationService = errors.New("mcp: generation service is required")
