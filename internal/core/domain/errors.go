package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidConfig indicates an invocation was configured incorrectly.
	// Every ConfigError unwraps to it.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrEmptyRegistry indicates the module filter matched nothing.
	ErrEmptyRegistry = errors.New("no modules matched filter")

	// ErrGeneratorPanic indicates a generator panicked instead of returning an error.
	// The sampler recovers it and records the attempt as a drop.
	ErrGeneratorPanic = errors.New("generator panicked")

	// ErrStorageUnavailable indicates no generation store is configured.
	// History features are disabled without one.
	ErrStorageUnavailable = errors.New("generation storage unavailable")
)

// ConfigError reports a fatal configuration problem such as a malformed
// entropy range or an unknown difficulty.
type ConfigError struct {
	// Field names the offending setting, e.g. "entropy_range".
	Field string

	// Value is the rejected input as given.
	Value string

	// Reason explains what was wrong.
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// Unwrap allows errors.Is(err, ErrInvalidConfig).
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// MaxRegistrySamples is how many module names an EmptyRegistryError carries.
const MaxRegistrySamples = 10

// EmptyRegistryError reports that a filter matched no module.
// Samples holds the lexicographically smallest unfiltered names as a hint.
type EmptyRegistryError struct {
	Filter  string
	Samples []string
}

func (e *EmptyRegistryError) Error() string {
	return fmt.Sprintf("no modules matched filter %q. Sample modules: %s",
		e.Filter, strings.Join(e.Samples, ", "))
}

// Is reports whether target is ErrEmptyRegistry.
func (e *EmptyRegistryError) Is(target error) bool {
	return target == ErrEmptyRegistry
}

// GenerationError wraps a failed generator invocation.
// It never aborts sampling; it is only reported to observers.
type GenerationError struct {
	Module string
	Err    error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("module %s: %v", e.Module, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
