package store

import (
	"testing"

	"github.com/roach88/schedview/internal/model"
	"github.com/roach88/schedview/internal/testutil"
)

// createTestStore builds a store with a fixed load id, failing the test on error.
func createTestStore(t *testing.T, s model.Schedule) *Store {
	t.Helper()
	st, err := New(s, WithLoadIDGenerator(testutil.NewFixedLoadIDGenerator("")))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return st
}

func emptySchedule() model.Schedule {
	return model.Schedule{}
}
