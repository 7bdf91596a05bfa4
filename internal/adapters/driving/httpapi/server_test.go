package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/mathgen/internal/core/domain"
)

func newTestServer(t *testing.T, svc *mockGenerationService, opts Options) *Server {
	t.Helper()
	s, err := NewServer(svc, opts)
	require.NoError(t, err)
	return s
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestNewServer_RequiresGenerationService(t *testing.T) {
	s, err := NewServer(nil, Options{})

	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrMissingGenerationService)
}

func TestGenerate_DefaultsCountToOne(t *testing.T) {
	svc := &mockGenerationService{generation: sampleGeneration()}
	s := newTestServer(t, svc, Options{})

	rec := get(t, s, "/generate")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, svc.lastRequest.Count)
	assert.Empty(t, svc.lastRequest.Filter)
}

func TestGenerate_PassesQueryParameters(t *testing.T) {
	svc := &mockGenerationService{generation: sampleGeneration()}
	s := newTestServer(t, svc, Options{})

	rec := get(t, s, "/generate?filter=algebra&difficulty=hard&count=5&entropy_range=2.5,5.0&seed=7")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.GenerateRequest{
		Filter:       "algebra",
		Difficulty:   domain.DifficultyHard,
		Count:        5,
		EntropyRange: "2.5,5.0",
		Seed:         7,
	}, svc.lastRequest)
}

func TestGenerate_ResponseBody(t *testing.T) {
	svc := &mockGenerationService{generation: sampleGeneration()}
	s := newTestServer(t, svc, Options{})

	rec := get(t, s, "/generate")

	require.Equal(t, http.StatusOK, rec.Code)
	var body GenerateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "gen-1", body.ID)
	assert.Equal(t, "easy", body.Difficulty)
	assert.Equal(t, int64(42), body.Seed)
	assert.Equal(t, 1, body.Generated)
	assert.Equal(t, 1, body.Requested)
	require.Len(t, body.Items, 1)
	assert.Equal(t, "What is 2 + 3?", body.Items[0].Question)
	assert.Equal(t, "5", body.Items[0].Answer)
}

func TestGenerate_EmptyItemsEncodeAsArray(t *testing.T) {
	gen := sampleGeneration()
	gen.Result = domain.SamplingResult{Requested: 3, Dropped: 300, Attempts: 300}
	s := newTestServer(t, &mockGenerationService{generation: gen}, Options{})

	rec := get(t, s, "/generate?count=3")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"items":[]`)
}

func TestGenerate_InvalidCount(t *testing.T) {
	svc := &mockGenerationService{generation: sampleGeneration()}
	s := newTestServer(t, svc, Options{})

	rec := get(t, s, "/generate?count=lots")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, svc.calls)
}

func TestGenerate_CountOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"zero", "/generate?count=0"},
		{"negative", "/generate?count=-4"},
		{"above maximum", "/generate?count=184467440737095516"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockGenerationService{generation: sampleGeneration()}
			s := newTestServer(t, svc, Options{})

			rec := get(t, s, tt.query)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Zero(t, svc.calls)

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Contains(t, body.Error, "count")
		})
	}
}

func TestGenerate_ErrorStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{
			name:   "config error",
			err:    &domain.ConfigError{Field: "entropy_range", Value: "5,3", Reason: "min < max"},
			status: http.StatusBadRequest,
		},
		{
			name:   "empty registry",
			err:    &domain.EmptyRegistryError{Filter: "zzz", Samples: []string{"algebra__linear_1d"}},
			status: http.StatusNotFound,
		},
		{
			name:   "internal",
			err:    errors.New("boom"),
			status: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, &mockGenerationService{generateErr: tt.err}, Options{})

			rec := get(t, s, "/generate")

			assert.Equal(t, tt.status, rec.Code)
			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.err.Error(), body.Error)
		})
	}
}

func TestGenerate_EmptyRegistryIncludesSamples(t *testing.T) {
	err := &domain.EmptyRegistryError{Filter: "zzz", Samples: []string{"algebra__linear_1d", "numbers__gcd"}}
	s := newTestServer(t, &mockGenerationService{generateErr: err}, Options{})

	rec := get(t, s, "/generate?filter=zzz")

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"algebra__linear_1d", "numbers__gcd"}, body.Samples)
}

func TestGenerate_StorageFailureStillReturnsItems(t *testing.T) {
	svc := &mockGenerationService{
		generation:  sampleGeneration(),
		generateErr: errors.New("saving generation: disk full"),
	}
	s := newTestServer(t, svc, Options{})

	rec := get(t, s, "/generate")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "What is 2 + 3?")
}

func TestModules(t *testing.T) {
	svc := &mockGenerationService{modules: []string{"algebra__linear_1d", "numbers__gcd"}}
	s := newTestServer(t, svc, Options{})

	rec := get(t, s, "/modules")

	require.Equal(t, http.StatusOK, rec.Code)
	var body ModulesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Count)
	assert.Equal(t, svc.modules, body.Modules)
}

func TestModules_Error(t *testing.T) {
	s := newTestServer(t, &mockGenerationService{modulesErr: errors.New("boom")}, Options{})

	rec := get(t, s, "/modules")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestEntropy(t *testing.T) {
	s := newTestServer(t, &mockGenerationService{}, Options{})

	rec := get(t, s, "/entropy")

	require.Equal(t, http.StatusOK, rec.Code)
	var body EntropyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, domain.CanonicalRange, body.Scale)
	require.Len(t, body.Levels, 3)
	assert.Equal(t, domain.DifficultyEasy, body.Levels[0].Difficulty)
}

func TestRateLimit(t *testing.T) {
	svc := &mockGenerationService{modules: []string{"numbers__gcd"}}
	s := newTestServer(t, svc, Options{RateLimit: 1, Burst: 1})

	first := get(t, s, "/modules")
	second := get(t, s, "/modules")

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestRateLimit_DisabledByDefault(t *testing.T) {
	svc := &mockGenerationService{modules: []string{"numbers__gcd"}}
	s := newTestServer(t, svc, Options{})

	for range 5 {
		assert.Equal(t, http.StatusOK, get(t, s, "/modules").Code)
	}
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	s := newTestServer(t, &mockGenerationService{}, Options{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- s.Run(ctx, "127.0.0.1:0")
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
