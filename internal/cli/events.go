package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/schedview/internal/model"
)

// eventFilter names one relational filter of the events command.
type eventFilter struct {
	flag string
	kind model.Kind
	arg  string
}

// NewEventsCommand creates the events command.
func NewEventsCommand(rootOpts *RootOptions) *cobra.Command {
	filters := []*eventFilter{
		{flag: "stream", kind: model.KindStream},
		{flag: "category", kind: model.KindCategory},
		{flag: "room", kind: model.KindRoom},
	}

	cmd := &cobra.Command{
		Use:   "events",
		Short: "List events",
		Long: `List events in schedule order: by slot, then by position within the slot.

At most one of --stream, --category or --room narrows the list to the events
referencing that entity.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(rootOpts, cmd)
			if err != nil {
				return err
			}
			defer a.close()

			for _, f := range filters {
				if cmd.Flags().Changed(f.flag) {
					return runFilteredEvents(a, f)
				}
			}
			return a.formatter.Success(eventList(a.views.Events.AllEvents()))
		},
	}

	for _, f := range filters {
		cmd.Flags().StringVar(&f.arg, f.flag, "", "only events referencing this "+f.flag+" id")
	}
	cmd.MarkFlagsMutuallyExclusive("stream", "category", "room")

	return cmd
}

func runFilteredEvents(a *app, f *eventFilter) error {
	id, err := parseID(a.formatter, f.flag, f.arg)
	if err != nil {
		return err
	}

	var (
		exists bool
		events []model.Event
	)
	switch f.kind {
	case model.KindStream:
		_, exists = a.views.Streams.Stream(id)
		events = a.views.Streams.EventsByStream(id)
	case model.KindCategory:
		_, exists = a.views.Categories.Category(id)
		events = a.views.Events.EventsByCategory(id)
	case model.KindRoom:
		_, exists = a.views.Rooms.Room(id)
		events = a.views.Events.EventsByRoom(id)
	}
	if !exists {
		return outputNotFound(a.formatter, f.kind, id)
	}
	return a.formatter.Success(eventList(events))
}

// NewEventCommand creates the event command.
func NewEventCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "event <id>",
		Short: "Show one event",
		Long: `Show one event with its room, stream and category references resolved
to names.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(rootOpts, cmd)
			if err != nil {
				return err
			}
			defer a.close()

			id, err := parseID(a.formatter, "event", args[0])
			if err != nil {
				return err
			}
			e, ok := a.views.Events.Event(id)
			if !ok {
				return outputNotFound(a.formatter, model.KindEvent, id)
			}
			return a.formatter.Success(resolveEvent(a, e))
		},
	}

	return cmd
}

// resolveEvent looks up the names of e's references. Lookups go through the
// façades, so a reference that cannot be resolved is left unnamed.
func resolveEvent(a *app, e model.Event) eventDetail {
	d := eventDetail{Event: e}
	if id, ok := e.RoomID(); ok {
		if r, found := a.views.Rooms.Room(id); found {
			d.RoomName = r.Name
		}
	}
	if id, ok := e.StreamID(); ok {
		if s, found := a.views.Streams.Stream(id); found {
			d.StreamName = s.Name
		}
	}
	for _, id := range e.Categories {
		if c, found := a.views.Categories.Category(id); found {
			d.CategoryNames = append(d.CategoryNames, c.Name)
		}
	}
	return d
}
