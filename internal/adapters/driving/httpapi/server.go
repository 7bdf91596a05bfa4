package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/mathgen/internal/core/ports/driving"
	"github.com/custodia-labs/mathgen/internal/logger"
)

// shutdownTimeout bounds graceful shutdown of in-flight requests.
const shutdownTimeout = 10 * time.Second

// Options configures the HTTP server.
type Options struct {
	// RateLimit is the sustained requests per second allowed per client IP.
	// Zero or less disables rate limiting.
	RateLimit float64

	// Burst is the number of requests a client may make at once.
	Burst int

	// LimiterExpiry is how long an idle client's limiter is kept.
	// Defaults to three minutes.
	LimiterExpiry time.Duration
}

// Server is the mathgen HTTP API.
type Server struct {
	echo       *echo.Echo
	generation driving.GenerationService
}

// NewServer creates an HTTP API server backed by generation.
func NewServer(generation driving.GenerationService, opts Options) (*Server, error) {
	if generation == nil {
		return nil, ErrMissingGenerationService
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetOutput(logger.Writer())
	if logger.IsVerbose() {
		e.Logger.SetLevel(log.DEBUG)
	} else {
		e.Logger.SetLevel(log.WARN)
	}

	e.Use(middleware.Recover())
	e.Use(logRequests)
	if opts.RateLimit > 0 {
		e.Use(rateLimiter(opts))
	}

	s := &Server{
		echo:       e,
		generation: generation,
	}
	s.registerRoutes()

	return s, nil
}

func (s *Server) registerRoutes() {
	s.echo.GET("/generate", s.handleGenerate)
	s.echo.GET("/modules", s.handleModules)
	s.echo.GET("/entropy", s.handleEntropy)
}

// Handler returns the server as an http.Handler.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Run serves on addr until ctx is cancelled or the listener fails.
func (s *Server) Run(ctx context.Context, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.echo.Start(addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.echo.Shutdown(shutdownCtx)
	}
}

func rateLimiter(opts Options) echo.MiddlewareFunc {
	expiry := opts.LimiterExpiry
	if expiry <= 0 {
		expiry = 3 * time.Minute
	}
	burst := opts.Burst
	if burst < 1 {
		burst = 1
	}

	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(opts.RateLimit),
		Burst:     burst,
		ExpiresIn: expiry,
	})
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
	})
}

// logRequests logs each request and its response status.
func logRequests(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		logger.Debug("%s %s -> %d in %v",
			c.Request().Method, c.Request().URL, c.Response().Status, time.Since(start))
		return err
	}
}
