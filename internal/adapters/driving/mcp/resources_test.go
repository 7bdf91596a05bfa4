package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/mathgen/internal/core/domain"
)

func TestExtractGenerationID(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{
			name:     "valid generation URI",
			uri:      "mathgen://generations/gen-123",
			expected: "gen-123",
		},
		{
			name:     "invalid prefix",
			uri:      "file://generations/gen-123",
			expected: "",
		},
		{
			name:     "nested path",
			uri:      "mathgen://generations/gen-123/items",
			expected: "",
		},
		{
			name:     "empty URI",
			uri:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractGenerationID(tt.uri))
		})
	}
}

// Helper to create a ReadResourceRequest with the given URI.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestServer_handleModulesResource(t *testing.T) {
	ctx := context.Background()

	t.Run("groups modules by category", func(t *testing.T) {
		svc := &mockGenerationService{
			modules: []string{"algebra__linear_1d", "numbers__gcd", "numbers__lcm"},
		}
		server := newTestServer(t, svc)

		result, err := server.handleModulesResource(ctx, makeReadResourceRequest("mathgen://modules"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)
		assert.JSONEq(t, `{
			"algebra": ["algebra__linear_1d"],
			"numbers": ["numbers__gcd", "numbers__lcm"]
		}`, result.Contents[0].Text)
	})

	t.Run("returns error on list failure", func(t *testing.T) {
		server := newTestServer(t, &mockGenerationService{err: errors.New("boom")})

		_, err := server.handleModulesResource(ctx, makeReadResourceRequest("mathgen://modules"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "listing modules")
	})
}

func TestServer_handleEntropyResource(t *testing.T) {
	server := newTestServer(t, &mockGenerationService{})

	result, err := server.handleEntropyResource(context.Background(), makeReadResourceRequest("mathgen://entropy"))

	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	assert.Contains(t, result.Contents[0].Text, `"difficulty": "easy"`)
}

func TestServer_handleGenerationResource(t *testing.T) {
	ctx := context.Background()
	svc := &mockGenerationService{
		stored: map[string]*domain.Generation{
			"gen-1": {
				ID:     "gen-1",
				Label:  "medium",
				Result: domain.SamplingResult{Items: []domain.Problem{{Question: "What is 6 times 7?", Answer: "42"}}},
			},
		},
	}
	server := newTestServer(t, svc)

	t.Run("returns stored generation", func(t *testing.T) {
		result, err := server.handleGenerationResource(ctx, makeReadResourceRequest("mathgen://generations/gen-1"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Contains(t, result.Contents[0].Text, "What is 6 times 7?")
	})

	t.Run("unknown generation is not found", func(t *testing.T) {
		_, err := server.handleGenerationResource(ctx, makeReadResourceRequest("mathgen://generations/nope"))

		require.Error(t, err)
	})

	t.Run("malformed URI is not found", func(t *testing.T) {
		_, err := server.handleGenerationResource(ctx, makeReadResourceRequest("mathgen://generations/"))

		require.Error(t, err)
	})

	t.Run("storage disabled is not found", func(t *testing.T) {
		disabled := newTestServer(t, &mockGenerationService{})

		_, err := disabled.handleGenerationResource(ctx, makeReadResourceRequest("mathgen://generations/gen-1"))

		require.Error(t, err)
	})
}
