package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/schedview/internal/model"
)

// NewStreamsCommand creates the streams command.
func NewStreamsCommand(rootOpts *RootOptions) *cobra.Command {
	var counts bool

	cmd := &cobra.Command{
		Use:   "streams",
		Short: "List streams",
		Long: `List every stream in schedule order.

With --counts each stream carries the number of events assigned to it.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(rootOpts, cmd)
			if err != nil {
				return err
			}
			defer a.close()

			if counts {
				return a.formatter.Success(streamCountList(a.views.Streams.StreamsWithEventCounts()))
			}
			return a.formatter.Success(streamList(a.views.Streams.AllStreams()))
		},
	}

	cmd.Flags().BoolVar(&counts, "counts", false, "include per-stream event counts")

	return cmd
}

// NewStreamCommand creates the stream command.
func NewStreamCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "stream <id>",
		Short:         "Show one stream",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(rootOpts, cmd)
			if err != nil {
				return err
			}
			defer a.close()

			id, err := parseID(a.formatter, "stream", args[0])
			if err != nil {
				return err
			}
			s, ok := a.views.Streams.Stream(id)
			if !ok {
				return outputNotFound(a.formatter, model.KindStream, id)
			}
			return outputEntity(a.formatter, s, streamList{s})
		},
	}

	return cmd
}
