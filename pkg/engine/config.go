package engine

import (
	"runtime"

	"github.com/cockroachdb/errors"
	"github.com/wildfunctions/exprtree/pkg/pool"
)

// Config holds all parameters for a sampling run.
type Config struct {
	Pool       string
	Samples    int
	MaxDepth   int
	Seed       int64
	Workers    int
	BufSize    int    // capacity of the bounded rendering buffer, NUL included
	Format     string // "text", "json" or "pretty"
	Verbose    bool
	CheckLeaks bool
	Logger     Logger `json:"-"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Pool:       "moderate",
		Samples:    100,
		MaxDepth:   4,
		Seed:       0, // 0 = random
		Workers:    runtime.NumCPU(),
		BufSize:    64,
		Format:     "text",
		Verbose:    false,
		CheckLeaks: true,
		Logger:     DefaultLogger{},
	}
}

var formats = []string{"text", "json", "pretty"}

// Validate checks that the config describes a runnable sampling job.
func (c Config) Validate() error {
	switch {
	case c.Samples <= 0:
		return errors.Newf("samples must be positive, got %d", c.Samples)
	case c.MaxDepth <= 0:
		return errors.Newf("max depth must be positive, got %d", c.MaxDepth)
	case c.MaxDepth > 20:
		return errors.Newf("max depth %d exceeds the limit of 20", c.MaxDepth)
	case c.Workers <= 0:
		return errors.Newf("workers must be positive, got %d", c.Workers)
	case c.BufSize < 0:
		return errors.Newf("buffer size must not be negative, got %d", c.BufSize)
	}
	found := false
	for _, f := range formats {
		found = found || f == c.Format
	}
	if !found {
		return errors.Newf("unknown format %q (available: %v)", c.Format, formats)
	}
	if _, err := pool.Get(c.Pool); err != nil {
		return errors.Wrapf(err, "available pools: %v", pool.Names())
	}
	return nil
}
