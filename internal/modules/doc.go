// Package modules provides the built-in problem generator library.
//
// The library implements driven.ModuleLibrary. Every call to Modules builds
// a fresh tree whose generators close over the difficulty transform and the
// random source they were given, so a fixed seed reproduces the same items.
// Generators draw an entropy from transform(TrainEntropy) and use it to size
// operands, coefficients and term counts.
package modules
