// Package source loads a raw model.Schedule from a configuration file.
//
// Supported formats, chosen by file extension:
//   - .yaml, .yml, .json: YAML decoding with unknown fields rejected
//   - .cue: CUE evaluation, unified with the embedded #Schedule schema
//   - .db, .sqlite, .sqlite3: a read-only SQLite export
//
// Loaders only parse. Identity and reference checks happen when the
// schedule is handed to store.New.
package source
