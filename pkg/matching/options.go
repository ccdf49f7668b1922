package matching

import (
	"runtime"

	"github.com/rs/zerolog"

	"github.com/CERNDocumentServer/cds-beard/pkg/errors"
)

// options configures a matcher.
type options struct {
	workers int
	logger  *zerolog.Logger
}

func defaultOptions() *options {
	return &options{
		workers: 1,
	}
}

// Option is a function that configures a Matcher.
type Option func(*options) error

func (o *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// newOptions returns matcher options with default values.
func newOptions(opts ...Option) (*options, error) {
	return defaultOptions().apply(opts...)
}

// WithWorkers sets how many subproblems are solved concurrently.
// Subproblems share no items, so they need no coordination beyond result
// collection. The default of 1 solves sequentially.
func WithWorkers(n int) Option {
	return func(o *options) error {
		if n < 1 {
			return &errors.ValidationError{
				Field:   "workers",
				Value:   n,
				Message: "must be at least 1",
			}
		}
		o.workers = n
		return nil
	}
}

// WithParallelism solves subproblems using one worker per CPU.
func WithParallelism() Option {
	return WithWorkers(runtime.GOMAXPROCS(0))
}

// WithLogger sets the logger used for run progress. By default the matcher
// logs through the logger carried by the context.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) error {
		if logger == nil {
			return &errors.ValidationError{
				Field:   "logger",
				Message: "cannot be nil",
			}
		}
		o.logger = logger
		return nil
	}
}
