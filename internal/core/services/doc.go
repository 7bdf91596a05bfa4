// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The sampling engine lives here: entropy resolution (entropy.go),
// registry construction (registry.go), the bounded sampling loop
// (sampler.go) and the orchestrating GenerationService (generation.go).
package services
