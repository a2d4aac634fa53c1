package search

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// Option configures an Engine via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by NewEngine.
type Option func(*Options)

// Options holds the engine configuration.
type Options struct {
	// Ctx allows cancellation; checked once per iteration.
	Ctx context.Context

	// Logger receives a debug record per step and an info record per run.
	Logger *slog.Logger

	// RecordSteps enables the step log. Disabling it skips the per-step
	// frontier and explored snapshots.
	RecordSteps bool

	// MaxSteps, if > 0, aborts the run with ErrStepLimit after that many
	// iterations. 0 means no limit.
	MaxSteps int

	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - a logger that discards everything
//   - step recording enabled
//   - no step limit
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		RecordSteps: true,
		MaxSteps:    0,
	}
}

// WithContext sets a context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger sets the engine logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithStepLog turns step recording on or off.
func WithStepLog(enabled bool) Option {
	return func(o *Options) {
		o.RecordSteps = enabled
	}
}

// WithMaxSteps limits the number of loop iterations.
//
//	n > 0: abort after n iterations
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}
