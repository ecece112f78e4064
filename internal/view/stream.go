package view

import (
	"go.uber.org/zap"

	"github.com/roach88/schedview/internal/model"
	"github.com/roach88/schedview/internal/store"
)

// StreamView answers stream lookups, per-stream event counts and the
// stream -> events relation.
type StreamView struct {
	b boundary
}

// NewStreamView creates a stream façade over st.
// A nil logger discards fault reports.
func NewStreamView(st *store.Store, logger *zap.Logger) *StreamView {
	return &StreamView{b: newBoundary(st, logger, "stream_view")}
}

// Stream returns the stream with the given id.
func (v *StreamView) Stream(id model.ID) (model.Stream, bool) {
	c := call{op: "StreamView.Stream", entity: model.KindStream, id: id}
	return run(&v.b, c, func(st *store.Store) (model.Stream, error) {
		return lookupStream(st, id)
	})
}

// AllStreams returns every stream in store order.
func (v *StreamView) AllStreams() []model.Stream {
	c := call{op: "StreamView.AllStreams"}
	return many(&v.b, c, func(st *store.Store) ([]model.Stream, error) {
		return st.Streams().Values(), nil
	})
}

// StreamsWithEventCounts returns every stream, in store order, with the
// number of events in it. An event adds to at most one stream.
func (v *StreamView) StreamsWithEventCounts() []model.StreamCount {
	c := call{op: "StreamView.StreamsWithEventCounts"}
	return many(&v.b, c, func(st *store.Store) ([]model.StreamCount, error) {
		counts := make(map[model.ID]int, st.Streams().Len())
		for _, ev := range st.Events().All() {
			if id, ok := ev.StreamID(); ok {
				counts[id]++
			}
		}

		out := make([]model.StreamCount, 0, st.Streams().Len())
		for id, s := range st.Streams().All() {
			out = append(out, model.StreamCount{Stream: s, EventCount: counts[id]})
		}
		return out, nil
	})
}

// EventsByStream returns the events of the given stream in store order.
// A zero id yields an empty slice without consulting the store.
func (v *StreamView) EventsByStream(streamID model.ID) []model.Event {
	c := call{op: "StreamView.EventsByStream", entity: model.KindStream, id: streamID, requireID: true}
	return many(&v.b, c, func(st *store.Store) ([]model.Event, error) {
		return filterEvents(st, func(ev model.Event) bool {
			id, ok := ev.StreamID()
			return ok && id == streamID
		}), nil
	})
}
