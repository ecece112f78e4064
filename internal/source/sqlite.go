package source

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/roach88/schedview/internal/model"
)

// LoadSQLite reads a schedule from a SQLite export, opened read-only.
//
// Expected tables (see testdata/export_schema.sql):
//   - categories, rooms, streams: catalogue rows, rowid order
//   - slots: seq, label, starts_at, ends_at
//   - events: one row per slot item, ordered by (slot_seq, position)
//   - event_categories, event_speakers: ordered by position
//
// The database is never written; a missing file is an error rather than
// an empty database.
func LoadSQLite(ctx context.Context, path string) (model.Schedule, error) {
	if _, err := os.Stat(path); err != nil {
		return model.Schedule{}, &LoadError{Code: ErrCodeNotFound, Message: "sqlite export not found", Path: path, Err: err}
	}

	dsn := (&url.URL{Scheme: "file", Opaque: path, RawQuery: "mode=ro"}).String()
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return model.Schedule{}, &LoadError{Code: ErrCodeLoadFailed, Message: "failed to open database", Path: path, Err: err}
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return model.Schedule{}, &LoadError{Code: ErrCodeLoadFailed, Message: "failed to connect to database", Path: path, Err: err}
	}
	db.SetMaxOpenConns(1)

	r := &exportReader{db: db}
	s, err := r.read(ctx)
	if err != nil {
		return model.Schedule{}, &LoadError{Code: ErrCodeLoadFailed, Message: "failed to read sqlite export", Path: path, Err: err}
	}
	return s, nil
}

type exportReader struct {
	db *sql.DB
}

func (r *exportReader) read(ctx context.Context) (model.Schedule, error) {
	var s model.Schedule

	if err := r.db.QueryRowContext(ctx, `SELECT COALESCE((SELECT value FROM meta WHERE key = 'name'), '')`).Scan(&s.Name); err != nil {
		return s, fmt.Errorf("query meta: %w", err)
	}

	var err error
	if s.Categories, err = r.readCategories(ctx); err != nil {
		return s, err
	}
	if s.Rooms, err = r.readRooms(ctx); err != nil {
		return s, err
	}
	if s.Streams, err = r.readStreams(ctx); err != nil {
		return s, err
	}
	if s.Slots, err = r.readSlots(ctx); err != nil {
		return s, err
	}
	return s, nil
}

func (r *exportReader) readCategories(ctx context.Context) ([]model.Category, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, COALESCE(color, '')
		FROM categories
		ORDER BY rowid ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var out []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Color); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return out, nil
}

func (r *exportReader) readRooms(ctx context.Context) ([]model.Room, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, COALESCE(floor, ''), COALESCE(capacity, 0)
		FROM rooms
		ORDER BY rowid ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query rooms: %w", err)
	}
	defer rows.Close()

	var out []model.Room
	for rows.Next() {
		var rm model.Room
		if err := rows.Scan(&rm.ID, &rm.Name, &rm.Floor, &rm.Capacity); err != nil {
			return nil, fmt.Errorf("scan room: %w", err)
		}
		out = append(out, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rooms: %w", err)
	}
	return out, nil
}

func (r *exportReader) readStreams(ctx context.Context) ([]model.Stream, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, COALESCE(color, '')
		FROM streams
		ORDER BY rowid ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query streams: %w", err)
	}
	defer rows.Close()

	var out []model.Stream
	for rows.Next() {
		var st model.Stream
		if err := rows.Scan(&st.ID, &st.Name, &st.Color); err != nil {
			return nil, fmt.Errorf("scan stream: %w", err)
		}
		out = append(out, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate streams: %w", err)
	}
	return out, nil
}

// readSlots reads slots and attaches their events, categories and speakers.
func (r *exportReader) readSlots(ctx context.Context) ([]model.Slot, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT seq, COALESCE(label, ''), COALESCE(starts_at, ''), COALESCE(ends_at, '')
		FROM slots
		ORDER BY seq ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query slots: %w", err)
	}
	defer rows.Close()

	var slots []model.Slot
	slotIndex := make(map[int64]int)
	for rows.Next() {
		var seq int64
		var sl model.Slot
		if err := rows.Scan(&seq, &sl.Label, &sl.Start, &sl.End); err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		slotIndex[seq] = len(slots)
		slots = append(slots, sl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate slots: %w", err)
	}
	rows.Close()

	categories, err := r.readIDLists(ctx, `
		SELECT event_id, category_id FROM event_categories
		ORDER BY event_id ASC, position ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query event categories: %w", err)
	}
	speakers, err := r.readSpeakers(ctx)
	if err != nil {
		return nil, err
	}

	evRows, err := r.db.QueryContext(ctx, `
		SELECT id, slot_seq, title, COALESCE(description, ''), COALESCE(starts_at, ''), COALESCE(ends_at, ''),
		       room_id, stream_id
		FROM events
		ORDER BY slot_seq ASC, position ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer evRows.Close()

	for evRows.Next() {
		var ev model.Event
		var slotSeq int64
		var room, stream sql.NullInt64
		if err := evRows.Scan(&ev.ID, &slotSeq, &ev.Title, &ev.Description, &ev.Start, &ev.End, &room, &stream); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		if room.Valid {
			ev.Room = model.Ref(model.ID(room.Int64))
		}
		if stream.Valid {
			ev.Stream = model.Ref(model.ID(stream.Int64))
		}
		ev.Categories = categories[ev.ID]
		ev.Speakers = speakers[ev.ID]

		i, ok := slotIndex[slotSeq]
		if !ok {
			return nil, fmt.Errorf("event %s references missing slot %d", ev.ID, slotSeq)
		}
		slots[i].Items = append(slots[i].Items, ev)
	}
	if err := evRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return slots, nil
}

func (r *exportReader) readIDLists(ctx context.Context, query string) (map[model.ID][]model.ID, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[model.ID][]model.ID)
	for rows.Next() {
		var owner, id model.ID
		if err := rows.Scan(&owner, &id); err != nil {
			return nil, err
		}
		out[owner] = append(out[owner], id)
	}
	return out, rows.Err()
}

func (r *exportReader) readSpeakers(ctx context.Context) (map[model.ID][]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT event_id, name FROM event_speakers
		ORDER BY event_id ASC, position ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query event speakers: %w", err)
	}
	defer rows.Close()

	out := make(map[model.ID][]string)
	for rows.Next() {
		var owner model.ID
		var name string
		if err := rows.Scan(&owner, &name); err != nil {
			return nil, fmt.Errorf("scan event speaker: %w", err)
		}
		out[owner] = append(out[owner], name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate event speakers: %w", err)
	}
	return out, nil
}
