package model

// Schedule is the raw configuration a store is built from: the entity
// catalogues plus a nested list of time slots, each holding its items.
type Schedule struct {
	Name       string     `json:"name,omitempty" yaml:"name,omitempty"`
	Categories []Category `json:"categories,omitempty" yaml:"categories,omitempty"`
	Rooms      []Room     `json:"rooms,omitempty" yaml:"rooms,omitempty"`
	Streams    []Stream   `json:"streams,omitempty" yaml:"streams,omitempty"`
	Slots      []Slot     `json:"slots,omitempty" yaml:"slots,omitempty"`
}

// Slot is one time slot of the schedule.
type Slot struct {
	Label string  `json:"label,omitempty" yaml:"label,omitempty"`
	Start string  `json:"start,omitempty" yaml:"start,omitempty"`
	End   string  `json:"end,omitempty" yaml:"end,omitempty"`
	Items []Event `json:"items,omitempty" yaml:"items,omitempty"`
}

// Events flattens the slots into a single event list, slot order first and
// item order second. Items without their own label or times inherit the
// slot's values.
func (s Schedule) Events() []Event {
	var n int
	for _, slot := range s.Slots {
		n += len(slot.Items)
	}

	events := make([]Event, 0, n)
	for _, slot := range s.Slots {
		for _, item := range slot.Items {
			ev := item.Clone()
			if ev.Slot == "" {
				ev.Slot = slot.Label
			}
			if ev.Start == "" {
				ev.Start = slot.Start
			}
			if ev.End == "" {
				ev.End = slot.End
			}
			events = append(events, ev)
		}
	}
	return events
}
