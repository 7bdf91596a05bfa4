// Package file provides file-based configuration for mathgen.
//
// Adapters:
//   - ConfigStore: TOML configuration with MATHGEN_* environment overrides
package file
