package store

import (
	"errors"
	"fmt"

	"github.com/roach88/schedview/internal/model"
)

// Sentinel errors returned (wrapped) by New.
var (
	ErrMissingID         = errors.New("missing id")
	ErrDuplicateID       = errors.New("duplicate id")
	ErrDanglingReference = errors.New("dangling reference")
)

// ValidationError describes one problem found while building a store.
// New joins every ValidationError it finds so all problems surface at once.
type ValidationError struct {
	Kind     model.Kind // Collection the offending entity belongs to
	Position int        // Zero-based position in that collection
	ID       model.ID   // Offending entity id (zero for ErrMissingID)
	Ref      model.ID   // Unresolved id, for ErrDanglingReference
	RefKind  model.Kind // Collection Ref was looked up in
	Err      error      // One of the sentinel errors above
}

func (e *ValidationError) Error() string {
	switch {
	case errors.Is(e.Err, ErrMissingID):
		return fmt.Sprintf("%s #%d: %v", e.Kind, e.Position, e.Err)
	case errors.Is(e.Err, ErrDanglingReference):
		return fmt.Sprintf("%s %s: %v to %s %s", e.Kind, e.ID, e.Err, e.RefKind, e.Ref)
	default:
		return fmt.Sprintf("%s %s: %v", e.Kind, e.ID, e.Err)
	}
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
