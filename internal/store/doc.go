// Package store provides the in-memory Entity Store for schedule data.
//
// A Store owns one ordered index per entity type:
//   - Events: every scheduled item, flattened from the configuration slots
//   - Categories, Rooms, Streams: the catalogues events refer to
//
// # Guarantees
//
// Built once: New validates the whole schedule (non-zero ids, unique ids
// per type, every event reference resolves) and either returns a complete
// store or no store at all.
//
// Insertion order: each index iterates in the order entities appeared in
// the configuration. This is the canonical order for every "all" query.
//
// Immutable: no method inserts, updates or deletes. Values handed out are
// copies, so callers cannot reach store-owned memory. Concurrent reads need
// no locking.
package store
