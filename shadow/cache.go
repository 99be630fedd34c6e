package shadow

import (
	"reflect"
	"sync"

	"go.uber.org/zap"
)

const _defaultMaxDepth = 32

type settings struct {
	maxDepth int
	zeroFill bool
	keyFunc  func(reflect.StructField) string
}

// Option configures a Cache.
type Option func(*Cache)

// WithLogger sets the logger used for shadow construction events.
func WithLogger(l *zap.Logger) Option {
	return func(c *Cache) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMaxDepth bounds how deep the shadow walk descends into nested values.
func WithMaxDepth(n int) Option {
	return func(c *Cache) {
		if n > 0 {
			c.cfg.maxDepth = n
		}
	}
}

// WithZeroFill makes the walk continue below pointers that were nil in the first
// model, so that accessors navigating through them still resolve. Without it a nil
// pointer is a leaf: only the pointer and its pointee resolve to its path.
func WithZeroFill(enabled bool) Option {
	return func(c *Cache) { c.cfg.zeroFill = enabled }
}

// WithKeyFunc replaces ResolveStructKey as the rule naming path segments.
func WithKeyFunc(fn func(reflect.StructField) string) Option {
	return func(c *Cache) {
		if fn != nil {
			c.cfg.keyFunc = fn
		}
	}
}

// Cache memoizes one Shadow per concrete model type. The shadow for a type is built
// from the first model loaded for it and reused afterwards. A Cache is safe for
// concurrent use; concurrent first loads of a type converge on a single Shadow.
type Cache struct {
	mu      sync.RWMutex
	shadows map[reflect.Type]*Shadow
	logger  *zap.Logger
	cfg     settings
}

// NewCache returns an empty Cache.
func NewCache(opts ...Option) *Cache {
	c := &Cache{
		shadows: map[reflect.Type]*Shadow{},
		logger:  zap.NewNop(),
		cfg: settings{
			maxDepth: _defaultMaxDepth,
			keyFunc:  ResolveStructKey,
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Load returns the shadow for the pointee type of model, building it from model on
// first use. model must be a pointer; a nil pointer builds the shadow from the zero
// value. Load returns nil when model is not a pointer.
func (c *Cache) Load(model any) *Shadow {
	rv := reflect.ValueOf(model)
	if !rv.IsValid() || rv.Kind() != reflect.Pointer {
		return nil
	}
	t := rv.Type().Elem()

	c.mu.RLock()
	s, ok := c.shadows[t]
	c.mu.RUnlock()
	if ok {
		return s
	}

	built, err := newShadow(t, model, c.cfg)
	if err != nil {
		c.logger.Warn("shadow clone failed, using zero value",
			zap.Stringer("type", t), zap.Error(err))
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if s, ok := c.shadows[t]; ok {
		return s
	}
	c.shadows[t] = built
	c.logger.Debug("shadow built", zap.Stringer("type", t), zap.Int("paths", built.Len()))
	return built
}

// Len reports the number of cached types.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.shadows)
}

// Reset drops every cached shadow.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.shadows = map[reflect.Type]*Shadow{}
}

// Build returns an uncached shadow for model, configured like a Cache built with opts.
func Build(model any, opts ...Option) *Shadow {
	rv := reflect.ValueOf(model)
	if !rv.IsValid() || rv.Kind() != reflect.Pointer {
		return nil
	}
	c := NewCache(opts...)
	s, err := newShadow(rv.Type().Elem(), model, c.cfg)
	if err != nil {
		c.logger.Warn("shadow clone failed, using zero value",
			zap.Stringer("type", rv.Type().Elem()), zap.Error(err))
	}
	return s
}
