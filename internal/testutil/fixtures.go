// Package testutil holds fixtures shared by the package tests.
package testutil

import "github.com/roach88/schedview/internal/model"

// ScenarioSchedule is the minimal two-event dataset:
//
//	event 1: categories [5],   stream 9, no room
//	event 2: categories [5 6], stream 9, no room
func ScenarioSchedule() model.Schedule {
	return model.Schedule{
		Name: "scenario",
		Categories: []model.Category{
			{ID: 5, Name: "Keynote"},
			{ID: 6, Name: "Workshop"},
		},
		Streams: []model.Stream{
			{ID: 9, Name: "Main"},
		},
		Slots: []model.Slot{
			{Label: "Morning", Start: "09:00", End: "10:00", Items: []model.Event{
				{ID: 1, Title: "Opening", Categories: []model.ID{5}, Stream: model.Ref(9)},
				{ID: 2, Title: "Hands-on", Categories: []model.ID{5, 6}, Stream: model.Ref(9)},
			}},
		},
	}
}

// ConferenceSchedule is a richer dataset covering every relation shape:
// uncategorised events, events without room or stream, unused catalogue
// entries, and several slots.
func ConferenceSchedule() model.Schedule {
	return model.Schedule{
		Name: "GopherConf",
		Categories: []model.Category{
			{ID: 10, Name: "Talk", Color: "#1e88e5"},
			{ID: 11, Name: "Workshop", Color: "#43a047"},
			{ID: 12, Name: "Social", Color: "#fb8c00"},
			{ID: 13, Name: "Unused"},
		},
		Rooms: []model.Room{
			{ID: 20, Name: "Main Hall", Floor: "G", Capacity: 400},
			{ID: 21, Name: "Lab", Floor: "1", Capacity: 40},
			{ID: 22, Name: "Closet"},
		},
		Streams: []model.Stream{
			{ID: 30, Name: "Core"},
			{ID: 31, Name: "Tooling"},
			{ID: 32, Name: "Empty"},
		},
		Slots: []model.Slot{
			{Label: "Opening", Start: "09:00", End: "09:30", Items: []model.Event{
				{ID: 100, Title: "Welcome", Categories: []model.ID{10}, Room: model.Ref(20), Stream: model.Ref(30)},
			}},
			{Label: "Block A", Start: "09:30", End: "11:00", Items: []model.Event{
				{ID: 101, Title: "Generics in Practice", Categories: []model.ID{10}, Room: model.Ref(20), Stream: model.Ref(30), Speakers: []string{"Ada"}},
				{ID: 102, Title: "Profiling Lab", Categories: []model.ID{11, 10}, Room: model.Ref(21), Stream: model.Ref(31), Speakers: []string{"Grace", "Ken"}},
			}},
			{Label: "Lunch", Start: "12:00", End: "13:00", Items: []model.Event{
				{ID: 103, Title: "Lunch", Categories: []model.ID{12}},
				{ID: 104, Title: "Hallway Track"},
			}},
			{Label: "Block B", Start: "13:00", End: "14:30", Items: []model.Event{
				{ID: 105, Title: "Linters Deep Dive", Categories: []model.ID{10}, Room: model.Ref(21), Stream: model.Ref(31)},
				{ID: 106, Title: "Fuzzing Workshop", Categories: []model.ID{11}, Stream: model.Ref(31)},
			}},
		},
	}
}
