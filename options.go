package fluentval

import (
	"sync"

	"go.uber.org/zap"

	"github.com/reoring/fluentval/shadow"
)

// Option configures validators and suites.
type Option func(*settings)

type settings struct {
	cache       *shadow.Cache
	logger      *zap.Logger
	qualified   bool
	concurrency int
}

var defaultCache = sync.OnceValue(func() *shadow.Cache { return shadow.NewCache() })

// DefaultCache returns the process-wide shadow cache used when no WithCache option
// is given.
func DefaultCache() *shadow.Cache { return defaultCache() }

func newSettings(opts []Option) *settings {
	s := &settings{logger: zap.NewNop()}
	for _, o := range opts {
		if o != nil {
			o(s)
		}
	}
	if s.cache == nil {
		s.cache = DefaultCache()
	}
	return s
}

// WithCache sets the shadow cache used to derive identifiers.
func WithCache(c *shadow.Cache) Option {
	return func(s *settings) { s.cache = c }
}

// WithLogger sets the logger. Unresolvable accessors and suite runs are logged at
// debug level.
func WithLogger(l *zap.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithQualifiedPaths makes nested validators prefix derived identifiers with the
// path of the value they validate ("address.city", "items.2.sku"). By default
// identifiers inside ForType and ForEach are relative to the nested value.
// Explicit identifiers are never rewritten.
func WithQualifiedPaths() Option {
	return func(s *settings) { s.qualified = true }
}

// WithConcurrency bounds the number of rule functions Suite.ValidateAsync runs at
// once. n <= 0 means no limit.
func WithConcurrency(n int) Option {
	return func(s *settings) { s.concurrency = n }
}
