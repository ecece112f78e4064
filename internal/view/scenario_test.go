package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/schedview/internal/model"
	"github.com/roach88/schedview/internal/testutil"
)

// Two events sharing category 5 and stream 9; event 2 also in category 6;
// neither has a room.
func TestScenario_TwoEvents(t *testing.T) {
	v, logs := newTestViews(t, testutil.ScenarioSchedule())

	cats := categoryCounts(v.Categories.CategoriesWithEventCounts())
	assert.Equal(t, 2, cats[5])
	assert.Equal(t, 1, cats[6])

	streams := streamCounts(v.Streams.StreamsWithEventCounts())
	assert.Equal(t, 2, streams[9])

	events := v.Streams.EventsByStream(9)
	require.Len(t, events, 2)
	assert.Equal(t, []model.ID{1, 2}, eventIDs(events))

	rooms := v.Rooms.RoomsByEvent(1)
	assert.NotNil(t, rooms)
	assert.Empty(t, rooms)

	assert.Zero(t, logs.Len(), "successful queries must not log")
}
