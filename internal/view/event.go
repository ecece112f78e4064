package view

import (
	"go.uber.org/zap"

	"github.com/roach88/schedview/internal/model"
	"github.com/roach88/schedview/internal/store"
)

// EventView answers event lookups and the category/room -> events relations.
type EventView struct {
	b boundary
}

// NewEventView creates an event façade over st.
// A nil logger discards fault reports.
func NewEventView(st *store.Store, logger *zap.Logger) *EventView {
	return &EventView{b: newBoundary(st, logger, "event_view")}
}

// Event returns the event with the given id.
func (v *EventView) Event(id model.ID) (model.Event, bool) {
	c := call{op: "EventView.Event", entity: model.KindEvent, id: id}
	return run(&v.b, c, func(st *store.Store) (model.Event, error) {
		return lookupEvent(st, id)
	})
}

// AllEvents returns every event in store order.
func (v *EventView) AllEvents() []model.Event {
	c := call{op: "EventView.AllEvents"}
	return many(&v.b, c, func(st *store.Store) ([]model.Event, error) {
		return st.AllEvents(), nil
	})
}

// EventsByCategory returns the events tagged with the given category, in
// store order. A zero id yields an empty slice.
func (v *EventView) EventsByCategory(categoryID model.ID) []model.Event {
	c := call{op: "EventView.EventsByCategory", entity: model.KindCategory, id: categoryID, requireID: true}
	return many(&v.b, c, func(st *store.Store) ([]model.Event, error) {
		return filterEvents(st, func(ev model.Event) bool {
			return ev.HasCategory(categoryID)
		}), nil
	})
}

// EventsByRoom returns the events held in the given room, in store order.
// A zero id yields an empty slice.
func (v *EventView) EventsByRoom(roomID model.ID) []model.Event {
	c := call{op: "EventView.EventsByRoom", entity: model.KindRoom, id: roomID, requireID: true}
	return many(&v.b, c, func(st *store.Store) ([]model.Event, error) {
		return filterEvents(st, func(ev model.Event) bool {
			id, ok := ev.RoomID()
			return ok && id == roomID
		}), nil
	})
}
