package view

import (
	"go.uber.org/zap"

	"github.com/roach88/schedview/internal/store"
)

// Views bundles the façades built over one store.
type Views struct {
	Categories *CategoryView
	Rooms      *RoomView
	Streams    *StreamView
	Events     *EventView
}

// New builds every façade over the same store and logger.
// st may be nil; every operation then returns its default value and
// reports StoreUnavailable.
func New(st *store.Store, logger *zap.Logger) *Views {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Views{
		Categories: NewCategoryView(st, logger),
		Rooms:      NewRoomView(st, logger),
		Streams:    NewStreamView(st, logger),
		Events:     NewEventView(st, logger),
	}
}
