// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - ModuleLibrary: Supplies the nested tree of problem generators
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - GenerationStore: Persists finished generations. Without it, history is disabled.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or module library package
package driven
