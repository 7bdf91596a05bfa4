package services

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/custodia-labs/mathgen/internal/core/domain"
	"github.com/custodia-labs/mathgen/internal/logger"
)

// AttemptsPerItem bounds the sampling loop: a request for n items makes at
// most n*AttemptsPerItem generator calls.
const AttemptsPerItem = 100

// maxPrealloc caps the initial capacity of the item slice.
const maxPrealloc = 1024

// SamplerOption configures a Sampler.
type SamplerOption func(*Sampler)

// WithObserver attaches a diagnostic observer. Nil observers are ignored.
func WithObserver(o domain.SampleObserver) SamplerOption {
	return func(s *Sampler) {
		if o != nil {
			s.observers = append(s.observers, o)
		}
	}
}

// Sampler draws generators uniformly at random, with replacement, until it
// has enough items or runs out of attempts.
// A Sampler is not safe for concurrent use; build one per invocation.
type Sampler struct {
	rng       *rand.Rand
	observers []domain.SampleObserver
}

// NewSampler creates a sampler drawing from rng.
func NewSampler(rng *rand.Rand, opts ...SamplerOption) *Sampler {
	s := &Sampler{rng: rng}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sample runs the bounded retry loop.
//
// Generator failures are counted as drops and never returned. Returning
// fewer items than targetCount is not an error; check
// SamplingResult.UnderGenerated. The only errors are an invalid targetCount
// and context cancellation, which comes with the partial result.
func (s *Sampler) Sample(
	ctx context.Context,
	registry *Registry,
	targetCount int,
	transform domain.EntropyTransform,
) (domain.SamplingResult, error) {
	result := domain.SamplingResult{Requested: targetCount}
	if err := domain.ValidateCount(targetCount); err != nil {
		return result, err
	}
	if registry == nil || registry.Len() == 0 {
		return result, &domain.EmptyRegistryError{}
	}

	budget := targetCount * AttemptsPerItem
	result.Items = make([]domain.Problem, 0, min(targetCount, maxPrealloc))
	entropy := transform(domain.CanonicalRange)

	logger.Debug("Sampling %d items from %d modules (budget %d attempts)",
		targetCount, registry.Len(), budget)

	for result.Attempts < budget && result.Generated < targetCount {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		entry := registry.Entry(s.rng.Intn(registry.Len()))
		outcome := invoke(entry)
		result.Attempts++

		if outcome.Dropped() {
			result.Dropped++
			for _, o := range s.observers {
				o.OnDrop(outcome.Module, outcome.Err)
			}
			continue
		}

		result.Items = append(result.Items, outcome.Problem)
		result.Generated++
		for _, o := range s.observers {
			o.OnSample(result.Generated, outcome.Module, entropy)
		}
	}

	if result.UnderGenerated() {
		logger.Warn("Only generated %d out of %d requested (%d dropped)",
			result.Generated, targetCount, result.Dropped)
	} else {
		logger.Debug("Generated %d items in %d attempts (%d dropped)",
			result.Generated, result.Attempts, result.Dropped)
	}

	return result, nil
}

// invoke calls the entry's generator and converts both returned errors and
// panics into a dropped Outcome.
func invoke(entry domain.ModuleEntry) (outcome domain.Outcome) {
	outcome.Module = entry.Name
	defer func() {
		if r := recover(); r != nil {
			outcome.Problem = domain.Problem{}
			outcome.Err = &domain.GenerationError{
				Module: entry.Name,
				Err:    fmt.Errorf("%w: %v", domain.ErrGeneratorPanic, r),
			}
		}
	}()

	p, err := entry.Generate()
	if err != nil {
		outcome.Err = &domain.GenerationError{Module: entry.Name, Err: err}
		return outcome
	}
	outcome.Problem = p
	return outcome
}
