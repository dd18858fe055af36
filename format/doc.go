// Package format names the output formats of the level encoder.
//
// The compact format is the fixed column text consumed by solvers; JSON and
// YAML carry the same records in structured form for inspection.
package format
