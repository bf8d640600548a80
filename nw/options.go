package nw

import (
	"context"
	"fmt"
	"log/slog"
)

// Option configures enumeration, reconstruction and orchestration.
// Use with Enumerate, Reconstruct and Align.
type Option func(*Options)

// Options holds the tunables shared by the enumerator and the engine.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// It is checked every time a cell is taken off the work-list.
	Ctx context.Context

	// MaxPaths caps the number of trace paths. 0 means no cap.
	// Finding path MaxPaths+1 stops enumeration with ErrPathLimit. The
	// paths returned are the first MaxPaths in output order, whatever the
	// Parallelism.
	MaxPaths int

	// Parallelism is the number of sub-trees explored concurrently. The
	// output order does not depend on it.
	// 0 or 1 means sequential.
	Parallelism int

	// GapSymbol is placed opposite symbols with no counterpart. It must not
	// occur in either input sequence, or AlignedPair.Ungapped and
	// AlignedPair.Score cannot tell gaps from symbols.
	GapSymbol rune

	// OnPath, if non-nil, is called for each completed trace path, in output
	// order. Returning an error aborts enumeration with that error; the paths
	// before the rejected one are returned. With Parallelism > 1 it runs once
	// the workers have finished.
	OnPath func(TracePath) error

	// Logger receives debug records for each pipeline stage. Defaults to a
	// discarding logger.
	Logger *slog.Logger
}

// DefaultOptions returns Options with:
//   - Background context
//   - no path cap
//   - sequential enumeration
//   - '-' as gap symbol
//   - no OnPath hook
//   - a discarding logger
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		MaxPaths:    0,
		Parallelism: 0,
		GapSymbol:   DefaultGapSymbol,
		OnPath:      nil,
		Logger:      slog.New(slog.DiscardHandler),
	}
}

// WithContext sets the context used for cancellation.
// A nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxPaths caps the number of enumerated paths; 0 removes the cap.
func WithMaxPaths(n int) Option {
	return func(o *Options) {
		o.MaxPaths = n
	}
}

// WithParallelism explores up to n independent sub-trees at once.
func WithParallelism(n int) Option {
	return func(o *Options) {
		o.Parallelism = n
	}
}

// WithGapSymbol replaces the default '-' gap symbol.
// r must not occur in the sequences being aligned.
func WithGapSymbol(r rune) Option {
	return func(o *Options) {
		o.GapSymbol = r
	}
}

// WithOnPath installs fn as a hook called once per completed trace path.
func WithOnPath(fn func(TracePath) error) Option {
	return func(o *Options) {
		o.OnPath = fn
	}
}

// WithLogger routes stage timings to l. A nil logger has no effect.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// gatherOptions applies opts over the defaults and rejects nonsensical values.
func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.MaxPaths < 0 {
		return o, fmt.Errorf("%w: MaxPaths=%d must be >= 0", ErrBadOption, o.MaxPaths)
	}
	if o.Parallelism < 0 {
		return o, fmt.Errorf("%w: Parallelism=%d must be >= 0", ErrBadOption, o.Parallelism)
	}

	return o, nil
}
