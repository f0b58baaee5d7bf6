package palette

import (
	"log/slog"

	"github.com/viant/colorvp/logger"
	"github.com/viant/colorvp/vptree"
)

type options struct {
	logger *slog.Logger
	seed   uint64
}

// Option configures a Palette.
type Option func(*options)

// WithLogger sets the logger used to report palette construction.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithSeed overrides the seed of the underlying vantage-point tree.
func WithSeed(seed uint64) Option {
	return func(o *options) { o.seed = seed }
}

func newOptions(opts []Option) *options {
	o := &options{logger: logger.Nop(), seed: vptree.DefaultSeed}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
