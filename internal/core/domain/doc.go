// Package domain defines the core business entities for mathgen.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - EntropyRange: A (min, max) complexity interval within [0, 10]
//   - EntropyTransform: Maps a base range onto a difficulty sub-range
//   - Difficulty: The easy/medium/hard/mixed label
//   - ModuleTree: The nested category -> generator hierarchy
//   - Problem: One question/answer item
//   - Generation: The outcome of a single sampling invocation
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
