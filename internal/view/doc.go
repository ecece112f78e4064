// Package view provides the query façades consumed by the schedule widget:
// CategoryView, RoomView, StreamView and EventView.
//
// Each façade wraps one injected *store.Store and adds point lookups,
// full-collection listings, and one or two derived views (event counts,
// relational filters). Derived views are recomputed on every call.
//
// # Containment
//
// No façade method returns an error or panics. Internal helpers return
// explicit (value, error) results; a single boundary converts any error to
// the operation's default value (zero value and false, or an empty non-nil
// slice) and reports it once to the zap logger:
//
//   - InvalidArgument (zero id on a relational query): Warn, store untouched
//   - NotFound: Debug only, it is an expected outcome
//   - StoreUnavailable (nil store), Internal (broken invariant, recovered
//     panic): Error
package view
