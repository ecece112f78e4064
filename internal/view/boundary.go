package view

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/roach88/schedview/internal/model"
	"github.com/roach88/schedview/internal/store"
)

// boundary is the one place where errors become default values.
// Every façade embeds one.
type boundary struct {
	store     *store.Store
	logger    *zap.Logger
	component string
}

func newBoundary(st *store.Store, logger *zap.Logger, component string) boundary {
	if logger == nil {
		logger = zap.NewNop()
	}
	return boundary{store: st, logger: logger, component: component}
}

// call describes one façade invocation.
type call struct {
	op        string
	entity    model.Kind // Collection the id argument refers to
	id        model.ID
	requireID bool // Reject a zero id before touching the store
}

// run executes fn under the containment policy. On any failure it reports
// the fault and returns the zero T and false.
func run[T any](b *boundary, c call, fn func(*store.Store) (T, error)) (result T, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			result, ok = zero, false
			b.report(c, &Fault{
				Kind:    KindInternal,
				Message: "recovered panic",
				Err:     fmt.Errorf("%v", r),
			})
		}
	}()

	if c.requireID && c.id.IsZero() {
		b.report(c, invalidArgument(c.entity))
		return result, false
	}

	if b.store == nil {
		b.report(c, storeUnavailable())
		return result, false
	}

	v, err := fn(b.store)
	if err != nil {
		b.report(c, err)
		return result, false
	}
	return v, true
}

// many runs a collection operation; the default is an empty, non-nil slice.
func many[T any](b *boundary, c call, fn func(*store.Store) ([]T, error)) []T {
	v, ok := run(b, c, fn)
	if !ok || v == nil {
		return []T{}
	}
	return v
}

// report emits exactly one log entry for a contained error.
func (b *boundary) report(c call, err error) {
	var f *Fault
	if !errors.As(err, &f) {
		f = &Fault{Kind: KindInternal, Message: "unexpected error", Err: err}
	}
	if f.Op == "" {
		f.Op = c.op
	}
	if f.ID.IsZero() {
		f.ID = c.id
	}
	if f.Entity == "" {
		f.Entity = c.entity
	}

	fields := []zap.Field{
		zap.String("component", b.component),
		zap.String("kind", string(f.Kind)),
		zap.String("op", f.Op),
		zap.Int64("id", int64(f.ID)),
	}
	if f.Entity != "" {
		fields = append(fields, zap.String("entity", string(f.Entity)))
	}
	if b.store != nil {
		fields = append(fields, zap.String("load_id", b.store.LoadID()))
	}
	if f.Err != nil {
		fields = append(fields, zap.Error(f.Err))
	}

	switch f.Kind {
	case KindNotFound:
		b.logger.Debug(f.Message, fields...)
	case KindInvalidArgument:
		b.logger.Warn(f.Message, fields...)
	default:
		b.logger.Error(f.Message, fields...)
	}
}
