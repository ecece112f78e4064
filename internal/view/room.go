package view

import (
	"go.uber.org/zap"

	"github.com/roach88/schedview/internal/model"
	"github.com/roach88/schedview/internal/store"
)

// RoomView answers room lookups and the event -> room relation.
type RoomView struct {
	b boundary
}

// NewRoomView creates a room façade over st.
// A nil logger discards fault reports.
func NewRoomView(st *store.Store, logger *zap.Logger) *RoomView {
	return &RoomView{b: newBoundary(st, logger, "room_view")}
}

// Room returns the room with the given id.
func (v *RoomView) Room(id model.ID) (model.Room, bool) {
	c := call{op: "RoomView.Room", entity: model.KindRoom, id: id}
	return run(&v.b, c, func(st *store.Store) (model.Room, error) {
		return lookupRoom(st, id)
	})
}

// AllRooms returns every room in store order.
func (v *RoomView) AllRooms() []model.Room {
	c := call{op: "RoomView.AllRooms"}
	return many(&v.b, c, func(st *store.Store) ([]model.Room, error) {
		return st.Rooms().Values(), nil
	})
}

// RoomsByEvent returns the room of the given event as a slice of zero or
// one element. A zero id, an unknown event, or an event without a room all
// yield an empty slice.
func (v *RoomView) RoomsByEvent(eventID model.ID) []model.Room {
	c := call{op: "RoomView.RoomsByEvent", entity: model.KindEvent, id: eventID, requireID: true}
	return many(&v.b, c, func(st *store.Store) ([]model.Room, error) {
		ev, err := lookupEvent(st, eventID)
		if err != nil {
			return nil, err
		}
		roomID, ok := ev.RoomID()
		if !ok {
			return []model.Room{}, nil
		}
		room, ok := st.Room(roomID)
		if !ok {
			return nil, brokenReference(model.KindRoom, eventID, roomID)
		}
		return []model.Room{room}, nil
	})
}
