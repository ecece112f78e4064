package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/schedview/internal/source"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Load the schedule and check it builds",
		Long: `Load the schedule file, build the entity store and report its size.

Every id must be non-zero and unique within its collection, and every event
reference must name an existing category, room or stream. All problems are
reported at once. On success the snapshot fingerprint is printed; two files
describing the same schedule share a fingerprint.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, cmd *cobra.Command) error {
	a, err := openApp(opts, cmd)
	if err != nil {
		return err
	}
	defer a.close()

	fingerprint, err := a.store.Fingerprint()
	if err != nil {
		return outputCommandError(a.formatter, source.ErrCodeGeneric, err.Error(), nil)
	}

	return a.formatter.Success(ValidateResult{
		Valid:       true,
		Name:        a.store.Name(),
		LoadID:      a.store.LoadID(),
		Events:      a.store.Events().Len(),
		Categories:  a.store.Categories().Len(),
		Rooms:       a.store.Rooms().Len(),
		Streams:     a.store.Streams().Len(),
		Fingerprint: fingerprint,
	})
}
