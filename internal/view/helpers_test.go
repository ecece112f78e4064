package view

import (
	"testing"

	"go.uber.org/zap/zaptest/observer"

	"github.com/roach88/schedview/internal/model"
	"github.com/roach88/schedview/internal/store"
	"github.com/roach88/schedview/internal/testutil"
)

// newTestViews builds all façades over s with an observed logger.
func newTestViews(t *testing.T, s model.Schedule) (*Views, *observer.ObservedLogs) {
	t.Helper()
	st, err := store.New(s, store.WithLoadIDGenerator(testutil.NewFixedLoadIDGenerator("")))
	if err != nil {
		t.Fatalf("store.New() failed: %v", err)
	}
	logger, logs := testutil.ObservedLogger()
	return New(st, logger), logs
}

func eventIDs(events []model.Event) []model.ID {
	ids := make([]model.ID, len(events))
	for i, ev := range events {
		ids[i] = ev.ID
	}
	return ids
}

func categoryCounts(rows []model.CategoryCount) map[model.ID]int {
	out := make(map[model.ID]int, len(rows))
	for _, r := range rows {
		out[r.ID] = r.EventCount
	}
	return out
}

func streamCounts(rows []model.StreamCount) map[model.ID]int {
	out := make(map[model.ID]int, len(rows))
	for _, r := range rows {
		out[r.ID] = r.EventCount
	}
	return out
}
