// Package cli defines the Cobra command for the fieldstrip CLI. The root
// command takes a single directory argument and delegates the rewrite to
// internal/rewrite; this package only wires config, logging and arguments.
package cli
