package domain

import "time"

// GenerateRequest configures a single generation invocation.
type GenerateRequest struct {
	// Filter restricts modules by a prefix-anchored regular expression.
	// Empty matches every module.
	Filter string `json:"filter" yaml:"filter"`

	// Count is the number of items to generate.
	Count int `json:"count" yaml:"count"`

	// Difficulty selects the entropy sub-range when EntropyRange is empty.
	Difficulty Difficulty `json:"difficulty" yaml:"difficulty"`

	// EntropyRange is an optional "min,max" string that overrides Difficulty.
	EntropyRange string `json:"entropy_range,omitempty" yaml:"entropy_range,omitempty"`

	// Seed makes sampling reproducible. Zero draws a fresh seed.
	Seed int64 `json:"seed,omitempty" yaml:"seed,omitempty"`
}

// Generation is the result of one invocation of the generation service.
type Generation struct {
	// ID uniquely identifies the generation.
	ID string `json:"id" yaml:"id"`

	// Request is the request as received.
	Request GenerateRequest `json:"request" yaml:"request"`

	// Label is the difficulty name or "custom (min-max)".
	Label string `json:"difficulty" yaml:"difficulty"`

	// Range is the resolved transform applied to CanonicalRange.
	Range EntropyRange `json:"entropy_range" yaml:"entropy_range"`

	// Seed is the seed actually used; replaying it reproduces the items.
	Seed int64 `json:"seed" yaml:"seed"`

	// Result holds the items and counters.
	Result SamplingResult `json:"result" yaml:"result"`

	// CreatedAt is when the generation completed.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// Summary returns the listing view of g.
func (g *Generation) Summary() GenerationSummary {
	return GenerationSummary{
		ID:        g.ID,
		Label:     g.Label,
		Filter:    g.Request.Filter,
		Requested: g.Result.Requested,
		Generated: g.Result.Generated,
		Dropped:   g.Result.Dropped,
		Seed:      g.Seed,
		CreatedAt: g.CreatedAt,
	}
}

// GenerationSummary is a stored generation without its items.
type GenerationSummary struct {
	ID        string    `json:"id" yaml:"id"`
	Label     string    `json:"difficulty" yaml:"difficulty"`
	Filter    string    `json:"filter" yaml:"filter"`
	Requested int       `json:"requested" yaml:"requested"`
	Generated int       `json:"generated" yaml:"generated"`
	Dropped   int       `json:"dropped" yaml:"dropped"`
	Seed      int64     `json:"seed" yaml:"seed"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}
