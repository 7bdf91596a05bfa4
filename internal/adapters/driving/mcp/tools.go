package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/mathgen/internal/core/domain"
	"github.com/custodia-labs/mathgen/internal/logger"
)

const (
	defaultToolCount = 10
	maxToolCount     = 1000
)

// GenerateInput is the input schema for the generate tool.
type GenerateInput struct {
	Filter       string `json:"filter,omitempty" jsonschema:"regular expression matched against the start of module names"`
	Difficulty   string `json:"difficulty,omitempty" jsonschema:"easy, medium, hard or mixed (default easy)"`
	Count        int    `json:"count,omitempty" jsonschema:"number of problems to generate (default 10, max 1000)"`
	EntropyRange string `json:"entropy_range,omitempty" jsonschema:"custom entropy range as min,max within 0-10; overrides difficulty"`
	Seed         int64  `json:"seed,omitempty" jsonschema:"random seed for reproducible output; 0 picks one"`
}

// GenerateOutput is the output schema for the generate tool.
type GenerateOutput struct {
	ID         string          `json:"id"`
	Difficulty string          `json:"difficulty"`
	MinEntropy float64         `json:"min_entropy"`
	MaxEntropy float64         `json:"max_entropy"`
	Items      []ProblemOutput `json:"items"`
	Generated  int             `json:"generated"`
	Dropped    int             `json:"dropped"`
	Requested  int             `json:"requested"`
	Seed       int64           `json:"seed"`
}

// ProblemOutput is one generated question and answer.
type ProblemOutput struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ListModulesInput is the input schema for the list_modules tool.
type ListModulesInput struct {
	Category string `json:"category,omitempty" jsonschema:"only list modules in this category, e.g. algebra"`
}

// ListModulesOutput is the output schema for the list_modules tool.
type ListModulesOutput struct {
	Modules []string `json:"modules"`
	Count   int      `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "generate",
		Description: "Generate math problems with answers at a chosen difficulty",
	}, s.handleGenerate)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_modules",
		Description: "List the problem generator modules that can be used as filters",
	}, s.handleListModules)
}

// handleGenerate handles the generate tool invocation.
func (s *Server) handleGenerate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GenerateInput,
) (*mcp.CallToolResult, GenerateOutput, error) {
	count := input.Count
	if count <= 0 {
		count = defaultToolCount
	}
	if count > maxToolCount {
		return nil, GenerateOutput{}, fmt.Errorf("count %d exceeds maximum of %d", count, maxToolCount)
	}

	req := domain.GenerateRequest{
		Filter:       input.Filter,
		Difficulty:   domain.Difficulty(input.Difficulty),
		Count:        count,
		EntropyRange: input.EntropyRange,
		Seed:         input.Seed,
	}

	gen, err := s.ports.Generation.Generate(ctx, req)
	if gen == nil {
		return nil, GenerateOutput{}, err
	}
	if err != nil {
		logger.Warn("Generation %s not saved: %v", gen.ID, err)
	}

	output := GenerateOutput{
		ID:         gen.ID,
		Difficulty: gen.Label,
		MinEntropy: gen.Range.Min,
		MaxEntropy: gen.Range.Max,
		Items:      make([]ProblemOutput, len(gen.Result.Items)),
		Generated:  gen.Result.Generated,
		Dropped:    gen.Result.Dropped,
		Requested:  gen.Result.Requested,
		Seed:       gen.Seed,
	}
	for i, item := range gen.Result.Items {
		output.Items[i] = ProblemOutput{Question: item.Question, Answer: item.Answer}
	}

	return nil, output, nil
}

// handleListModules handles the list_modules tool invocation.
func (s *Server) handleListModules(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListModulesInput,
) (*mcp.CallToolResult, ListModulesOutput, error) {
	names, err := s.ports.Generation.ListModules(ctx)
	if err != nil {
		return nil, ListModulesOutput{}, err
	}

	modules := make([]string, 0, len(names))
	for _, name := range names {
		if input.Category != "" && domain.ModuleCategory(name) != input.Category {
			continue
		}
		modules = append(modules, name)
	}

	return nil, ListModulesOutput{Modules: modules, Count: len(modules)}, nil
}
