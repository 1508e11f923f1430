package sources

import (
	"fmt"
	"log/slog"
)

// MatchMode selects how a newly converted source is matched against the
// sources already collected.
type MatchMode int

const (
	// MatchStrict matches on page and doc id. A source without a doc id only
	// matches other sources without one.
	MatchStrict MatchMode = iota

	// MatchLegacy matches on page and doc id when the new source has a doc
	// id, and on page alone when it does not. A source lacking a doc id can
	// then fold into a source of any document that shares its page.
	MatchLegacy
)

// String returns the mode name used in configuration.
func (m MatchMode) String() string {
	switch m {
	case MatchStrict:
		return "strict"
	case MatchLegacy:
		return "legacy"
	default:
		return fmt.Sprintf("MatchMode(%d)", int(m))
	}
}

// ParseMatchMode converts a configuration value to a MatchMode.
func ParseMatchMode(s string) (MatchMode, error) {
	switch s {
	case "", "strict":
		return MatchStrict, nil
	case "legacy":
		return MatchLegacy, nil
	default:
		return MatchStrict, fmt.Errorf("unknown match mode %q (want strict or legacy)", s)
	}
}

// options holds aggregation configuration.
type options struct {
	match  MatchMode
	logger *slog.Logger
}

// defaultOptions returns the default aggregation options.
func defaultOptions() options {
	return options{
		match:  MatchStrict,
		logger: nil, // nil means slog.Default() at call time
	}
}

func (o options) log() *slog.Logger {
	if o.logger != nil {
		return o.logger
	}
	return slog.Default()
}

// Option configures an Aggregator.
type Option func(*options)

// WithMatchMode sets the match policy.
func WithMatchMode(m MatchMode) Option {
	return func(o *options) {
		o.match = m
	}
}

// WithLogger sets the logger that receives warnings. A nil logger restores
// the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
