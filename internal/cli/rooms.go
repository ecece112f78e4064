package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/schedview/internal/model"
)

// NewRoomsCommand creates the rooms command.
func NewRoomsCommand(rootOpts *RootOptions) *cobra.Command {
	var eventArg string

	cmd := &cobra.Command{
		Use:   "rooms",
		Short: "List rooms",
		Long: `List every room in schedule order.

With --event, list the room the event takes place in. The result holds at
most one room and is empty when the event has no room.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(rootOpts, cmd)
			if err != nil {
				return err
			}
			defer a.close()

			if !cmd.Flags().Changed("event") {
				return a.formatter.Success(roomList(a.views.Rooms.AllRooms()))
			}

			eventID, err := parseID(a.formatter, "event", eventArg)
			if err != nil {
				return err
			}
			if _, ok := a.views.Events.Event(eventID); !ok {
				return outputNotFound(a.formatter, model.KindEvent, eventID)
			}
			return a.formatter.Success(roomList(a.views.Rooms.RoomsByEvent(eventID)))
		},
	}

	cmd.Flags().StringVar(&eventArg, "event", "", "only the room of this event id")

	return cmd
}

// NewRoomCommand creates the room command.
func NewRoomCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "room <id>",
		Short:         "Show one room",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(rootOpts, cmd)
			if err != nil {
				return err
			}
			defer a.close()

			id, err := parseID(a.formatter, "room", args[0])
			if err != nil {
				return err
			}
			r, ok := a.views.Rooms.Room(id)
			if !ok {
				return outputNotFound(a.formatter, model.KindRoom, id)
			}
			return outputEntity(a.formatter, r, roomList{r})
		},
	}

	return cmd
}
