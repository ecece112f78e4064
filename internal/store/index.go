package store

import (
	"iter"

	"github.com/roach88/schedview/internal/model"
)

// Index is a read-only ordered mapping id -> entity.
// Iteration order is insertion order. Every read hands out a copy, so
// callers cannot reach the stored values.
type Index[T any] struct {
	order []model.ID
	byID  map[model.ID]T
	clone func(T) T // Deep copy for entities holding slices or pointers; nil copies by value
}

func newIndex[T any](capacity int, clone func(T) T) *Index[T] {
	return &Index[T]{
		order: make([]model.ID, 0, capacity),
		byID:  make(map[model.ID]T, capacity),
		clone: clone,
	}
}

func (ix *Index[T]) read(v T) T {
	if ix.clone == nil {
		return v
	}
	return ix.clone(v)
}

// put appends v under id. Returns false if id is already present.
func (ix *Index[T]) put(id model.ID, v T) bool {
	if _, exists := ix.byID[id]; exists {
		return false
	}
	ix.order = append(ix.order, id)
	ix.byID[id] = v
	return true
}

// Get returns the entity stored under id.
func (ix *Index[T]) Get(id model.ID) (T, bool) {
	v, ok := ix.byID[id]
	if !ok {
		return v, false
	}
	return ix.read(v), true
}

// Has reports whether id is present.
func (ix *Index[T]) Has(id model.ID) bool {
	_, ok := ix.byID[id]
	return ok
}

// Len returns the number of entities.
func (ix *Index[T]) Len() int {
	return len(ix.order)
}

// Keys returns the ids in insertion order.
func (ix *Index[T]) Keys() []model.ID {
	return append([]model.ID{}, ix.order...)
}

// Values returns the entities in insertion order.
// Returns an empty slice (not nil) for an empty index.
func (ix *Index[T]) Values() []T {
	out := make([]T, 0, len(ix.order))
	for _, id := range ix.order {
		out = append(out, ix.read(ix.byID[id]))
	}
	return out
}

// All iterates id/entity pairs in insertion order.
func (ix *Index[T]) All() iter.Seq2[model.ID, T] {
	return func(yield func(model.ID, T) bool) {
		for _, id := range ix.order {
			if !yield(id, ix.read(ix.byID[id])) {
				return
			}
		}
	}
}
