package source

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/schedview/internal/model"
	"github.com/roach88/schedview/internal/testutil"
)

// writeExport creates a SQLite export of s in a temp dir and returns its path.
func writeExport(t *testing.T, s model.Schedule) string {
	t.Helper()

	schema, err := os.ReadFile(filepath.Join("testdata", "export_schema.sql"))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "export.db")
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(string(schema))
	require.NoError(t, err)

	exec := func(query string, args ...any) {
		t.Helper()
		_, err := db.Exec(query, args...)
		require.NoError(t, err)
	}

	exec(`INSERT INTO meta (key, value) VALUES ('name', ?)`, s.Name)
	for _, c := range s.Categories {
		exec(`INSERT INTO categories (id, name, color) VALUES (?, ?, NULLIF(?, ''))`, c.ID, c.Name, c.Color)
	}
	for _, r := range s.Rooms {
		exec(`INSERT INTO rooms (id, name, floor, capacity) VALUES (?, ?, NULLIF(?, ''), NULLIF(?, 0))`, r.ID, r.Name, r.Floor, r.Capacity)
	}
	for _, st := range s.Streams {
		exec(`INSERT INTO streams (id, name, color) VALUES (?, ?, NULLIF(?, ''))`, st.ID, st.Name, st.Color)
	}
	for seq, slot := range s.Slots {
		exec(`INSERT INTO slots (seq, label, starts_at, ends_at) VALUES (?, ?, ?, ?)`, seq+1, slot.Label, slot.Start, slot.End)
		for pos, ev := range slot.Items {
			var room, stream sql.NullInt64
			if id, ok := ev.RoomID(); ok {
				room = sql.NullInt64{Int64: int64(id), Valid: true}
			}
			if id, ok := ev.StreamID(); ok {
				stream = sql.NullInt64{Int64: int64(id), Valid: true}
			}
			exec(`INSERT INTO events (id, slot_seq, position, title, description, starts_at, ends_at, room_id, stream_id)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				ev.ID, seq+1, pos, ev.Title, ev.Description, ev.Start, ev.End, room, stream)
			for i, c := range ev.Categories {
				exec(`INSERT INTO event_categories (event_id, category_id, position) VALUES (?, ?, ?)`, ev.ID, c, i)
			}
			for i, sp := range ev.Speakers {
				exec(`INSERT INTO event_speakers (event_id, position, name) VALUES (?, ?, ?)`, ev.ID, i, sp)
			}
		}
	}
	return path
}

func TestLoadSQLite_Scenario(t *testing.T) {
	path := writeExport(t, testutil.ScenarioSchedule())

	s, err := LoadSQLite(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "scenario", s.Name)
	events := s.Events()
	require.Len(t, events, 2)
	assert.Equal(t, []model.ID{5, 6}, events[1].Categories)
	assert.Nil(t, events[0].Room)
	require.NotNil(t, events[0].Stream)
	assert.Equal(t, model.ID(9), *events[0].Stream)
}

func TestLoadSQLite_DoesNotModifyFile(t *testing.T) {
	path := writeExport(t, testutil.ConferenceSchedule())
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = LoadSQLite(context.Background(), path)
	require.NoError(t, err)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestLoadSQLite_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.db")

	_, err := LoadSQLite(context.Background(), path)

	var le *LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, ErrCodeNotFound, le.Code)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "loader must not create the database")
}

func TestLoadSQLite_WrongLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "other.db")
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE unrelated (x INTEGER)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = LoadSQLite(context.Background(), path)

	var le *LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, ErrCodeLoadFailed, le.Code)
}
