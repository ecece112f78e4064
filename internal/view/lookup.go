package view

import (
	"github.com/roach88/schedview/internal/model"
	"github.com/roach88/schedview/internal/store"
)

// Lookup helpers shared by the façades. They return explicit results and
// never log; the boundary decides what to do with an error.

func lookupEvent(st *store.Store, id model.ID) (model.Event, error) {
	ev, ok := st.Event(id)
	if !ok {
		return model.Event{}, notFound(model.KindEvent, id)
	}
	return ev, nil
}

func lookupCategory(st *store.Store, id model.ID) (model.Category, error) {
	c, ok := st.Category(id)
	if !ok {
		return model.Category{}, notFound(model.KindCategory, id)
	}
	return c, nil
}

func lookupRoom(st *store.Store, id model.ID) (model.Room, error) {
	r, ok := st.Room(id)
	if !ok {
		return model.Room{}, notFound(model.KindRoom, id)
	}
	return r, nil
}

func lookupStream(st *store.Store, id model.ID) (model.Stream, error) {
	s, ok := st.Stream(id)
	if !ok {
		return model.Stream{}, notFound(model.KindStream, id)
	}
	return s, nil
}

// filterEvents returns the events matching keep, in store order.
func filterEvents(st *store.Store, keep func(model.Event) bool) []model.Event {
	out := []model.Event{}
	for _, ev := range st.AllEvents() {
		if keep(ev) {
			out = append(out, ev)
		}
	}
	return out
}
