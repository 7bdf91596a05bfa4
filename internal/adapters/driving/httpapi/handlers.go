package httpapi

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/custodia-labs/mathgen/internal/core/domain"
	"github.com/custodia-labs/mathgen/internal/logger"
)

// defaultCount is the item count when the request omits one.
const defaultCount = 1

// GenerateResponse is the body of GET /generate.
type GenerateResponse struct {
	ID           string              `json:"id"`
	Difficulty   string              `json:"difficulty"`
	EntropyRange domain.EntropyRange `json:"entropy_range"`
	Items        []domain.Problem    `json:"items"`
	Generated    int                 `json:"generated"`
	Dropped      int                 `json:"dropped"`
	Requested    int                 `json:"requested"`
	Seed         int64               `json:"seed"`
}

// ModulesResponse is the body of GET /modules.
type ModulesResponse struct {
	Modules []string `json:"modules"`
	Count   int      `json:"count"`
}

// EntropyResponse is the body of GET /entropy.
type EntropyResponse struct {
	Scale  domain.EntropyRange `json:"scale"`
	Levels []domain.LevelRange `json:"levels"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Samples []string `json:"samples,omitempty"`
}

func (s *Server) handleGenerate(c echo.Context) error {
	req := domain.GenerateRequest{
		Filter:       c.QueryParam("filter"),
		Difficulty:   domain.Difficulty(c.QueryParam("difficulty")),
		EntropyRange: c.QueryParam("entropy_range"),
		Count:        defaultCount,
	}
	if err := echo.QueryParamsBinder(c).
		Int("count", &req.Count).
		Int64("seed", &req.Seed).
		BindError(); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	if err := domain.ValidateCount(req.Count); err != nil {
		return writeError(c, err)
	}

	gen, err := s.generation.Generate(c.Request().Context(), req)
	if gen == nil {
		return writeError(c, err)
	}
	if err != nil {
		logger.Warn("Generation %s not saved: %v", gen.ID, err)
	}

	items := gen.Result.Items
	if items == nil {
		items = []domain.Problem{}
	}
	return c.JSON(http.StatusOK, GenerateResponse{
		ID:           gen.ID,
		Difficulty:   gen.Label,
		EntropyRange: gen.Range,
		Items:        items,
		Generated:    gen.Result.Generated,
		Dropped:      gen.Result.Dropped,
		Requested:    gen.Result.Requested,
		Seed:         gen.Seed,
	})
}

func (s *Server) handleModules(c echo.Context) error {
	names, err := s.generation.ListModules(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, ModulesResponse{Modules: names, Count: len(names)})
}

func (s *Server) handleEntropy(c echo.Context) error {
	return c.JSON(http.StatusOK, EntropyResponse{
		Scale:  domain.CanonicalRange,
		Levels: s.generation.EntropyLevels(),
	})
}

// writeError maps err to a status code and JSON body.
func writeError(c echo.Context, err error) error {
	body := ErrorResponse{Error: err.Error()}

	var empty *domain.EmptyRegistryError
	switch {
	case errors.As(err, &empty):
		body.Samples = empty.Samples
		return c.JSON(http.StatusNotFound, body)
	case errors.Is(err, domain.ErrNotFound):
		return c.JSON(http.StatusNotFound, body)
	case errors.Is(err, domain.ErrInvalidConfig), errors.Is(err, domain.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, body)
	default:
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, body)
	}
}
