package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/mathgen/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for mathgen resources.
	uriScheme = "mathgen://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "modules",
		Name:        "modules",
		Description: "All problem generator modules grouped by category",
		MIMEType:    "application/json",
	}, s.handleModulesResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "entropy",
		Name:        "entropy",
		Description: "Entropy ranges of the easy, medium and hard difficulty levels",
		MIMEType:    "application/json",
	}, s.handleEntropyResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "generations/{generationId}",
		Name:        "generation",
		Description: "A saved generation with its items",
		MIMEType:    "application/json",
	}, s.handleGenerationResource)
}

// handleModulesResource returns module names grouped by category.
func (s *Server) handleModulesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	names, err := s.ports.Generation.ListModules(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing modules: %w", err)
	}

	categories := make(map[string][]string)
	for _, name := range names {
		category := domain.ModuleCategory(name)
		categories[category] = append(categories[category], name)
	}

	return jsonResource(req.Params.URI, categories)
}

// handleEntropyResource returns the difficulty level table.
func (s *Server) handleEntropyResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	return jsonResource(req.Params.URI, s.ports.Generation.EntropyLevels())
}

// handleGenerationResource returns a stored generation.
func (s *Server) handleGenerationResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// mathgen://generations/{generationId}
	id := extractGenerationID(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	gen, err := s.ports.Generation.GetGeneration(ctx, id)
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrStorageUnavailable) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting generation: %w", err)
	}

	return jsonResource(req.Params.URI, gen)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractGenerationID extracts the ID from a URI like mathgen://generations/{generationId}.
func extractGenerationID(uri string) string {
	const prefix = uriScheme + "generations/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
