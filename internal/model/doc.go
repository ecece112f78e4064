// Package model defines the schedule entities shared by every other package.
//
// This package contains type definitions and pure helpers only. The store,
// the configuration sources and the views all import model; model imports
// nothing internal.
//
// Key constraints:
//   - Every entity carries a mandatory, non-zero ID
//   - Event relations are explicit: a category set, an optional room and an
//     optional stream, each referenced by ID
//   - No float types anywhere - use int64 for numbers
//   - All JSON/YAML tags use snake_case
package model
