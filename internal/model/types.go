package model

import "strconv"

// ID identifies an entity within its own collection.
// The zero value means "no identifier" and is never a valid key.
type ID int64

// IsZero reports whether id is the "no identifier" value.
func (id ID) IsZero() bool {
	return id == 0
}

// String returns the decimal form of the identifier.
func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// Kind names an entity collection.
type Kind string

const (
	KindEvent    Kind = "event"
	KindCategory Kind = "category"
	KindRoom     Kind = "room"
	KindStream   Kind = "stream"
)

// Event is a single scheduled item.
type Event struct {
	ID          ID       `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Slot        string   `json:"slot,omitempty" yaml:"slot,omitempty"`   // Label of the time slot the event belongs to
	Start       string   `json:"start,omitempty" yaml:"start,omitempty"` // Opaque, e.g. "09:30"
	End         string   `json:"end,omitempty" yaml:"end,omitempty"`
	Speakers    []string `json:"speakers,omitempty" yaml:"speakers,omitempty"`

	// Relations. Categories may be empty or hold several ids; Room and
	// Stream are nil when the event has no such reference.
	Categories []ID `json:"categories,omitempty" yaml:"categories,omitempty"`
	Room       *ID  `json:"room,omitempty" yaml:"room,omitempty"`
	Stream     *ID  `json:"stream,omitempty" yaml:"stream,omitempty"`
}

// HasCategory reports whether the event references category id.
func (e Event) HasCategory(id ID) bool {
	for _, c := range e.Categories {
		if c == id {
			return true
		}
	}
	return false
}

// RoomID returns the referenced room, if any.
func (e Event) RoomID() (ID, bool) {
	if e.Room == nil {
		return 0, false
	}
	return *e.Room, true
}

// StreamID returns the referenced stream, if any.
func (e Event) StreamID() (ID, bool) {
	if e.Stream == nil {
		return 0, false
	}
	return *e.Stream, true
}

// Clone returns a deep copy so callers can never alias store-owned slices.
func (e Event) Clone() Event {
	out := e
	if e.Speakers != nil {
		out.Speakers = append([]string(nil), e.Speakers...)
	}
	if e.Categories != nil {
		out.Categories = append([]ID(nil), e.Categories...)
	}
	if e.Room != nil {
		r := *e.Room
		out.Room = &r
	}
	if e.Stream != nil {
		s := *e.Stream
		out.Stream = &s
	}
	return out
}

// Category groups events by topic. An event may belong to several.
type Category struct {
	ID    ID     `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Color string `json:"color,omitempty" yaml:"color,omitempty"`
}

// Room is the physical location of an event.
type Room struct {
	ID       ID     `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Floor    string `json:"floor,omitempty" yaml:"floor,omitempty"`
	Capacity int64  `json:"capacity,omitempty" yaml:"capacity,omitempty"`
}

// Stream is a track of related events. An event belongs to at most one.
type Stream struct {
	ID    ID     `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Color string `json:"color,omitempty" yaml:"color,omitempty"`
}

// CategoryCount is a category augmented with the number of events that
// reference it. Category is a copy; the stored value is never modified.
type CategoryCount struct {
	Category
	EventCount int `json:"event_count" yaml:"event_count"`
}

// StreamCount is a stream augmented with the number of events in it.
type StreamCount struct {
	Stream
	EventCount int `json:"event_count" yaml:"event_count"`
}

// Ref returns a pointer to id, for building optional relations.
func Ref(id ID) *ID {
	return &id
}
