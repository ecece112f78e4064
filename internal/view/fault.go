package view

import (
	"errors"
	"fmt"

	"github.com/roach88/schedview/internal/model"
)

// FaultKind categorizes a contained failure.
type FaultKind string

const (
	// KindStoreUnavailable indicates the façade has no store.
	KindStoreUnavailable FaultKind = "STORE_UNAVAILABLE"

	// KindNotFound indicates the requested id has no entity.
	KindNotFound FaultKind = "NOT_FOUND"

	// KindInvalidArgument indicates a zero id was passed to a relational query.
	KindInvalidArgument FaultKind = "INVALID_ARGUMENT"

	// KindInternal indicates a broken store invariant or a recovered panic.
	KindInternal FaultKind = "INTERNAL"
)

// ErrStoreUnavailable is wrapped by StoreUnavailable faults.
var ErrStoreUnavailable = errors.New("entity store not initialized")

// Fault is a failure caught at the façade boundary.
type Fault struct {
	Kind    FaultKind
	Op      string     // Façade operation, e.g. "CategoryView.Category"
	Entity  model.Kind // Collection involved, if any
	ID      model.ID   // Offending identifier, zero if none
	Message string
	Err     error // Underlying error (optional)
}

func (f *Fault) Error() string {
	var msg string
	if f.Op != "" {
		msg = fmt.Sprintf("%s: %s: %s", f.Kind, f.Op, f.Message)
	} else {
		msg = fmt.Sprintf("%s: %s", f.Kind, f.Message)
	}
	if !f.ID.IsZero() {
		msg += fmt.Sprintf(" (id=%s)", f.ID)
	}
	if f.Err != nil {
		msg += ": " + f.Err.Error()
	}
	return msg
}

func (f *Fault) Unwrap() error {
	return f.Err
}

// IsKind reports whether err is a Fault of the given kind.
// Uses errors.As to handle wrapped errors.
func IsKind(err error, kind FaultKind) bool {
	var f *Fault
	if errors.As(err, &f) {
		return f.Kind == kind
	}
	return false
}

func notFound(entity model.Kind, id model.ID) *Fault {
	return &Fault{
		Kind:    KindNotFound,
		Entity:  entity,
		ID:      id,
		Message: fmt.Sprintf("no %s with this id", entity),
	}
}

func invalidArgument(entity model.Kind) *Fault {
	return &Fault{
		Kind:    KindInvalidArgument,
		Entity:  entity,
		Message: fmt.Sprintf("%s id is required", entity),
	}
}

func storeUnavailable() *Fault {
	return &Fault{
		Kind:    KindStoreUnavailable,
		Message: "store is nil",
		Err:     ErrStoreUnavailable,
	}
}

// brokenReference reports an event relation that does not resolve. New
// rejects such schedules, so this only fires if that invariant is broken.
func brokenReference(entity model.Kind, eventID, ref model.ID) *Fault {
	return &Fault{
		Kind:    KindInternal,
		Entity:  entity,
		ID:      eventID,
		Message: fmt.Sprintf("event references missing %s %s", entity, ref),
	}
}
