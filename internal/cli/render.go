package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/roach88/schedview/internal/model"
)

// The list types below marshal to JSON as plain arrays and render as
// aligned tables in text mode.

type categoryList []model.Category

func (l categoryList) RenderText(w io.Writer) error {
	rows := [][]string{{"ID", "NAME", "COLOR"}}
	for _, c := range l {
		rows = append(rows, []string{c.ID.String(), c.Name, dash(c.Color)})
	}
	return writeTable(w, rows)
}

type categoryCountList []model.CategoryCount

func (l categoryCountList) RenderText(w io.Writer) error {
	rows := [][]string{{"ID", "NAME", "COLOR", "EVENTS"}}
	for _, c := range l {
		rows = append(rows, []string{c.ID.String(), c.Name, dash(c.Color), strconv.Itoa(c.EventCount)})
	}
	return writeTable(w, rows)
}

type roomList []model.Room

func (l roomList) RenderText(w io.Writer) error {
	rows := [][]string{{"ID", "NAME", "FLOOR", "CAPACITY"}}
	for _, r := range l {
		rows = append(rows, []string{r.ID.String(), r.Name, dash(r.Floor), strconv.FormatInt(r.Capacity, 10)})
	}
	return writeTable(w, rows)
}

type streamList []model.Stream

func (l streamList) RenderText(w io.Writer) error {
	rows := [][]string{{"ID", "NAME", "COLOR"}}
	for _, s := range l {
		rows = append(rows, []string{s.ID.String(), s.Name, dash(s.Color)})
	}
	return writeTable(w, rows)
}

type streamCountList []model.StreamCount

func (l streamCountList) RenderText(w io.Writer) error {
	rows := [][]string{{"ID", "NAME", "COLOR", "EVENTS"}}
	for _, s := range l {
		rows = append(rows, []string{s.ID.String(), s.Name, dash(s.Color), strconv.Itoa(s.EventCount)})
	}
	return writeTable(w, rows)
}

type eventList []model.Event

func (l eventList) RenderText(w io.Writer) error {
	rows := [][]string{{"ID", "SLOT", "TIME", "TITLE", "ROOM", "STREAM", "CATEGORIES"}}
	for _, e := range l {
		rows = append(rows, []string{
			e.ID.String(),
			dash(e.Slot),
			timeRange(e.Start, e.End),
			e.Title,
			optionalID(e.Room),
			optionalID(e.Stream),
			joinIDs(e.Categories),
		})
	}
	return writeTable(w, rows)
}

// eventDetail renders one event with its references resolved to names.
type eventDetail struct {
	model.Event
	RoomName      string   `json:"room_name,omitempty"`
	StreamName    string   `json:"stream_name,omitempty"`
	CategoryNames []string `json:"category_names,omitempty"`
}

func (d eventDetail) RenderText(w io.Writer) error {
	rows := [][]string{
		{"ID", d.ID.String()},
		{"TITLE", d.Title},
		{"SLOT", dash(d.Slot)},
		{"TIME", timeRange(d.Start, d.End)},
		{"ROOM", named(d.Room, d.RoomName)},
		{"STREAM", named(d.Stream, d.StreamName)},
		{"CATEGORIES", dash(strings.Join(d.CategoryNames, ", "))},
		{"SPEAKERS", dash(strings.Join(d.Speakers, ", "))},
	}
	if d.Description != "" {
		rows = append(rows, []string{"DESCRIPTION", d.Description})
	}
	return writeTable(w, rows)
}

// ValidateResult is the payload of the validate command.
type ValidateResult struct {
	Valid       bool   `json:"valid"`
	Name        string `json:"name"`
	LoadID      string `json:"load_id"`
	Events      int    `json:"events"`
	Categories  int    `json:"categories"`
	Rooms       int    `json:"rooms"`
	Streams     int    `json:"streams"`
	Fingerprint string `json:"fingerprint"`
}

func (r ValidateResult) RenderText(w io.Writer) error {
	fmt.Fprintf(w, "✓ Schedule %q is valid\n", r.Name)
	return writeTable(w, [][]string{
		{"events", strconv.Itoa(r.Events)},
		{"categories", strconv.Itoa(r.Categories)},
		{"rooms", strconv.Itoa(r.Rooms)},
		{"streams", strconv.Itoa(r.Streams)},
		{"fingerprint", r.Fingerprint},
	})
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func timeRange(start, end string) string {
	switch {
	case start == "" && end == "":
		return "-"
	case end == "":
		return start
	default:
		return start + "-" + end
	}
}

func optionalID(id *model.ID) string {
	if id == nil {
		return "-"
	}
	return id.String()
}

func named(id *model.ID, name string) string {
	if id == nil {
		return "-"
	}
	if name == "" {
		return id.String()
	}
	return fmt.Sprintf("%s (%s)", name, id.String())
}

func joinIDs(ids []model.ID) string {
	if len(ids) == 0 {
		return "-"
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.String()
	}
	return strings.Join(parts, ",")
}
