package shipping

import (
	"io"
	"log"
	"os"
)

// Option configures where a construct prints and how it names types.
type Option func(*config)

type config struct {
	out    io.Writer
	logger *log.Logger
	names  *TypeNames
}

// WithOutput sets the stream labels and listings are written to.
// nil restores the default (os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(c *config) { c.out = w }
}

// WithLogger attaches a diagnostics logger. nil disables diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithTypeNames selects the registry used to render type names.
// nil restores the built-in names.
func WithTypeNames(n *TypeNames) Option {
	return func(c *config) { c.names = n }
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// The zero config prints to os.Stdout with the built-in names, so constructs
// work from their zero value.

func (c *config) writer() io.Writer {
	if c.out == nil {
		return os.Stdout
	}
	return c.out
}

func (c *config) typeNames() *TypeNames {
	if c.names == nil {
		return builtinNames
	}
	return c.names
}

func (c *config) logf(format string, args ...any) {
	if c.logger != nil {
		c.logger.Printf(format, args...)
	}
}
