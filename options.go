package pamflet

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Option configures tokenizing and parsing.
type Option func(*config)

type config struct {
	ids       IDGenerator
	separator Separator
	log       *zap.Logger
}

func newConfig(opts []Option) config {
	cfg := config{
		separator: SeparatorEither,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.ids == nil {
		cfg.ids = DefaultIDGenerator()
	}
	if cfg.log == nil {
		cfg.log = zap.NewNop()
	}
	return cfg
}

// WithIDGenerator sets the generator used for element IDs.
func WithIDGenerator(ids IDGenerator) Option {
	return func(cfg *config) {
		cfg.ids = ids
	}
}

// WithSeparator selects which character ends a property name.
func WithSeparator(sep Separator) Option {
	return func(cfg *config) {
		cfg.separator = sep
	}
}

// WithLogger sets the logger for debug output. A nil logger disables logging.
func WithLogger(log *zap.Logger) Option {
	return func(cfg *config) {
		cfg.log = log
	}
}

// Separator is the property name/value separator of a pamflet dialect.
type Separator uint8

const (
	// SeparatorEither ends a property name at the first ':' or '='.
	SeparatorEither Separator = iota
	// SeparatorColon only accepts `.name: value`.
	SeparatorColon
	// SeparatorEquals only accepts the older `.name = value` form.
	SeparatorEquals
)

func (s Separator) accepts(r rune) bool {
	switch s {
	case SeparatorColon:
		return r == ':'
	case SeparatorEquals:
		return r == '='
	default:
		return r == ':' || r == '='
	}
}

func (s Separator) String() string {
	switch s {
	case SeparatorColon:
		return "colon"
	case SeparatorEquals:
		return "equals"
	default:
		return "either"
	}
}

// ParseSeparator maps a dialect name to a Separator.
func ParseSeparator(name string) (Separator, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "either", "any", "auto":
		return SeparatorEither, nil
	case "colon", ":":
		return SeparatorColon, nil
	case "equals", "=":
		return SeparatorEquals, nil
	default:
		return SeparatorEither, fmt.Errorf("unknown separator %q: expected either|colon|equals", name)
	}
}
