package store

import (
	"errors"
	"fmt"

	"github.com/roach88/schedview/internal/model"
)

// Store is the immutable, indexed snapshot of one schedule.
type Store struct {
	name       string
	loadID     string
	events     *Index[model.Event]
	categories *Index[model.Category]
	rooms      *Index[model.Room]
	streams    *Index[model.Stream]
}

// Option configures New.
type Option func(*options)

type options struct {
	ids LoadIDGenerator
}

// WithLoadIDGenerator overrides the UUIDv7 load id generator (for testing).
func WithLoadIDGenerator(g LoadIDGenerator) Option {
	return func(o *options) { o.ids = g }
}

// New builds a store from a raw schedule.
//
// Catalogues are indexed first, then the slot items are flattened into
// events and their references checked against the catalogues. Text fields
// are NFC normalized and repeated category references collapsed. Every
// validation problem is collected; if any exist New returns nil and the
// joined errors (each a *ValidationError).
func New(s model.Schedule, opts ...Option) (*Store, error) {
	o := options{ids: UUIDv7Generator{}}
	for _, opt := range opts {
		opt(&o)
	}

	var errs []error
	st := &Store{name: model.NormalizeText(s.Name)}

	st.categories = buildIndex(model.KindCategory, s.Categories,
		func(c model.Category) model.ID { return c.ID }, normalizeCategory, nil, &errs)
	st.rooms = buildIndex(model.KindRoom, s.Rooms,
		func(r model.Room) model.ID { return r.ID }, normalizeRoom, nil, &errs)
	st.streams = buildIndex(model.KindStream, s.Streams,
		func(r model.Stream) model.ID { return r.ID }, normalizeStream, nil, &errs)
	st.events = buildIndex(model.KindEvent, s.Events(),
		func(e model.Event) model.ID { return e.ID }, normalizeEvent, model.Event.Clone, &errs)

	errs = append(errs, st.checkReferences()...)
	if len(errs) > 0 {
		return nil, fmt.Errorf("build store: %w", errors.Join(errs...))
	}

	st.loadID = o.ids.Generate()
	return st, nil
}

func buildIndex[T any](kind model.Kind, items []T, idOf func(T) model.ID, normalize, clone func(T) T, errs *[]error) *Index[T] {
	ix := newIndex(len(items), clone)
	for i, item := range items {
		id := idOf(item)
		if id.IsZero() {
			*errs = append(*errs, &ValidationError{Kind: kind, Position: i, Err: ErrMissingID})
			continue
		}
		if !ix.put(id, normalize(item)) {
			*errs = append(*errs, &ValidationError{Kind: kind, Position: i, ID: id, Err: ErrDuplicateID})
		}
	}
	return ix
}

// checkReferences verifies that every event relation resolves.
func (s *Store) checkReferences() []error {
	var errs []error
	dangling := func(ev model.Event, kind model.Kind, ref model.ID) {
		errs = append(errs, &ValidationError{
			Kind:    model.KindEvent,
			ID:      ev.ID,
			Ref:     ref,
			RefKind: kind,
			Err:     ErrDanglingReference,
		})
	}

	for _, ev := range s.events.All() {
		for _, c := range ev.Categories {
			if !s.categories.Has(c) {
				dangling(ev, model.KindCategory, c)
			}
		}
		if id, ok := ev.RoomID(); ok && !s.rooms.Has(id) {
			dangling(ev, model.KindRoom, id)
		}
		if id, ok := ev.StreamID(); ok && !s.streams.Has(id) {
			dangling(ev, model.KindStream, id)
		}
	}
	return errs
}

// Name returns the schedule name from the configuration.
func (s *Store) Name() string {
	return s.name
}

// LoadID returns the identifier assigned when the store was built.
func (s *Store) LoadID() string {
	return s.loadID
}

// Event returns the event with the given id.
func (s *Store) Event(id model.ID) (model.Event, bool) {
	return s.events.Get(id)
}

// Category returns the category with the given id.
func (s *Store) Category(id model.ID) (model.Category, bool) {
	return s.categories.Get(id)
}

// Room returns the room with the given id.
func (s *Store) Room(id model.ID) (model.Room, bool) {
	return s.rooms.Get(id)
}

// Stream returns the stream with the given id.
func (s *Store) Stream(id model.ID) (model.Stream, bool) {
	return s.streams.Get(id)
}

// Events returns the event index. Every event it hands out is a deep copy.
func (s *Store) Events() *Index[model.Event] {
	return s.events
}

// Categories returns the category index.
func (s *Store) Categories() *Index[model.Category] {
	return s.categories
}

// Rooms returns the room index.
func (s *Store) Rooms() *Index[model.Room] {
	return s.rooms
}

// Streams returns the stream index.
func (s *Store) Streams() *Index[model.Stream] {
	return s.streams
}

// AllEvents returns every event in insertion order.
// Returns an empty slice (not nil) if the schedule has no events.
func (s *Store) AllEvents() []model.Event {
	return s.events.Values()
}

// Fingerprint returns a content hash of the snapshot. Stores built from
// equivalent configurations, whatever their source format, share it.
func (s *Store) Fingerprint() (string, error) {
	return model.Fingerprint(s.events.Values(), s.categories.Values(), s.rooms.Values(), s.streams.Values())
}

func normalizeEvent(e model.Event) model.Event {
	e = e.Clone()
	e.Title = model.NormalizeText(e.Title)
	e.Description = model.NormalizeText(e.Description)
	e.Slot = model.NormalizeText(e.Slot)
	for i, sp := range e.Speakers {
		e.Speakers[i] = model.NormalizeText(sp)
	}
	e.Categories = dedupeIDs(e.Categories)
	return e
}

// dedupeIDs drops repeated ids, keeping first occurrences in order. An
// event's categories are a set; a repeat must not count twice.
func dedupeIDs(ids []model.ID) []model.ID {
	if len(ids) < 2 {
		return ids
	}
	seen := make(map[model.ID]struct{}, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func normalizeCategory(c model.Category) model.Category {
	c.Name = model.NormalizeText(c.Name)
	return c
}

func normalizeRoom(r model.Room) model.Room {
	r.Name = model.NormalizeText(r.Name)
	r.Floor = model.NormalizeText(r.Floor)
	return r
}

func normalizeStream(s model.Stream) model.Stream {
	s.Name = model.NormalizeText(s.Name)
	return s
}
