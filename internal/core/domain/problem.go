package domain

import "fmt"

// MaxCount is the largest number of items a single invocation may request.
const MaxCount = 100_000

// ValidateCount checks 0 < n <= MaxCount.
func ValidateCount(n int) error {
	if n <= 0 {
		return &ConfigError{Field: "count", Value: fmt.Sprint(n), Reason: "must be a positive integer"}
	}
	if n > MaxCount {
		return &ConfigError{Field: "count", Value: fmt.Sprint(n), Reason: fmt.Sprintf("must not exceed %d", MaxCount)}
	}
	return nil
}

// Problem is one generated question/answer item.
// The core does not interpret its content.
type Problem struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

// Outcome is the result of one fallible generator call.
// A non-nil Err means the attempt is a drop.
type Outcome struct {
	Module  string
	Problem Problem
	Err     error
}

// Dropped returns true if the call failed.
func (o Outcome) Dropped() bool {
	return o.Err != nil
}

// SamplingResult is the outcome of one sampling loop.
type SamplingResult struct {
	// Items are the generated problems in generation order.
	Items []Problem `json:"items" yaml:"items"`

	// Requested is the target item count.
	Requested int `json:"requested" yaml:"requested"`

	// Generated is the number of successful attempts.
	Generated int `json:"generated" yaml:"generated"`

	// Dropped is the number of failed attempts.
	Dropped int `json:"dropped" yaml:"dropped"`

	// Attempts is Generated + Dropped.
	Attempts int `json:"attempts" yaml:"attempts"`
}

// UnderGenerated returns true if fewer items than requested were produced.
// This is a soft failure, not an error.
func (r SamplingResult) UnderGenerated() bool {
	return r.Generated < r.Requested
}

// SampleObserver receives per-attempt diagnostics from the sampling loop.
// It never influences sampling.
type SampleObserver interface {
	// OnSample is called after each successful attempt with the 1-based item
	// index and the difficulty transform applied to CanonicalRange.
	OnSample(index int, module string, entropy EntropyRange)

	// OnDrop is called after each failed attempt.
	OnDrop(module string, err error)
}
