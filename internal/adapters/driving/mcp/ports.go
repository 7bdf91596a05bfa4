package mcp

import (
	"github.com/custodia-labs/mathgen/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
type Ports struct {
	// Generation produces problem sets and lists modules.
	Generation driving.GenerationService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Generation == nil {
		return ErrMissingGenerationService
	}
	return nil
}
