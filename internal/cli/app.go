package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/roach88/schedview/internal/model"
	"github.com/roach88/schedview/internal/source"
	"github.com/roach88/schedview/internal/store"
	"github.com/roach88/schedview/internal/view"
)

// app is the state shared by every query command: the loaded store,
// the façades over it and the output formatter.
type app struct {
	store     *store.Store
	views     *view.Views
	formatter *OutputFormatter
	logger    *zap.Logger
}

// newFormatter builds the formatter for cmd from the global flags.
func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:  opts.Format,
		Writer:  cmd.OutOrStdout(),
		Verbose: opts.Verbose,
	}
}

// buildLogger returns opts.Logger when set, otherwise a JSON logger on
// stderr so stdout stays machine-readable.
func buildLogger(opts *RootOptions) (*zap.Logger, error) {
	if opts.Logger != nil {
		return opts.Logger, nil
	}
	config := zap.NewProductionConfig()
	if opts.Verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// openApp loads the schedule named by --config and builds the store and
// views. Load and validation failures are written through the formatter
// and returned as command errors.
func openApp(opts *RootOptions, cmd *cobra.Command) (*app, error) {
	formatter := newFormatter(opts, cmd)

	logger, err := buildLogger(opts)
	if err != nil {
		return nil, outputCommandError(formatter, source.ErrCodeGeneric, err.Error(), nil)
	}

	sched, err := source.LoadFile(cmd.Context(), opts.Config)
	if err != nil {
		var loadErr *source.LoadError
		if errors.As(err, &loadErr) {
			return nil, outputCommandError(formatter, loadErr.Code, loadErr.Error(), nil)
		}
		return nil, outputCommandError(formatter, source.ErrCodeGeneric, err.Error(), nil)
	}

	var storeOpts []store.Option
	if opts.LoadIDs != nil {
		storeOpts = append(storeOpts, store.WithLoadIDGenerator(opts.LoadIDs))
	}
	st, err := store.New(sched, storeOpts...)
	if err != nil {
		return nil, outputCommandError(formatter, ErrCodeInvalidSchedule, "invalid schedule", validationDetails(err))
	}

	logger.Debug("schedule loaded",
		zap.String("path", opts.Config),
		zap.String("schedule", st.Name()),
		zap.String("load_id", st.LoadID()),
		zap.Int("events", st.Events().Len()),
	)

	return &app{
		store:     st,
		views:     view.New(st, logger),
		formatter: formatter,
		logger:    logger,
	}, nil
}

// close flushes the logger.
func (a *app) close() {
	_ = a.logger.Sync()
}

// validationDetails flattens a joined store.New error into one message per
// problem.
func validationDetails(err error) []string {
	var details []string
	var walk func(error)
	walk = func(e error) {
		if joined, ok := e.(interface{ Unwrap() []error }); ok {
			for _, inner := range joined.Unwrap() {
				walk(inner)
			}
			return
		}
		if verr, ok := e.(*store.ValidationError); ok {
			details = append(details, verr.Error())
			return
		}
		if wrapped := errors.Unwrap(e); wrapped != nil {
			walk(wrapped)
			return
		}
		details = append(details, e.Error())
	}
	walk(err)
	return details
}

// parseID parses a positive entity id argument.
func parseID(formatter *OutputFormatter, name, arg string) (model.ID, error) {
	n, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || n <= 0 {
		return 0, outputCommandError(formatter, ErrCodeInvalidID,
			fmt.Sprintf("invalid %s id %q: must be a positive integer", name, arg), nil)
	}
	return model.ID(n), nil
}

// outputCommandError reports a command-level error (exit code 2).
func outputCommandError(formatter *OutputFormatter, code, message string, details interface{}) error {
	_ = formatter.Error(code, message, details)
	return NewExitError(ExitCommandError, fmt.Sprintf("%s: %s", code, message))
}

// outputNotFound reports a missing entity (exit code 1).
func outputNotFound(formatter *OutputFormatter, kind model.Kind, id model.ID) error {
	message := fmt.Sprintf("%s %d not found", kind, id)
	_ = formatter.Error(ErrCodeEntityNotFound, message, nil)
	return NewExitError(ExitFailure, fmt.Sprintf("%s: %s", ErrCodeEntityNotFound, message))
}
