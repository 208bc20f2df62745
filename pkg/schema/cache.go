package schema

import (
	"fmt"
	"io"
	"log/slog"
	"reflect"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"
)

// Cache memoizes structural schemas keyed by argument type identity.
//
// The zero value is not usable; create one with NewCache. A Cache is safe for
// concurrent use: the lock spans the whole check-compute-insert sequence, so
// the generation routine runs at most once per type even under concurrent
// callers. Cached schema references are shared and must be treated as
// immutable by callers.
type Cache struct {
	mu      sync.Mutex
	schemas map[reflect.Type]*openapi3.SchemaRef
	gen     *openapi3gen.Generator
	logger  *slog.Logger
	metrics *cacheMetrics
}

// Option defines a functional option for configuring the Cache.
type Option func(*Cache)

// WithLogger sets a structured logger for cache diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Cache) {
		c.logger = logger
	}
}

// NewCache creates an empty schema cache.
func NewCache(opts ...Option) *Cache {
	c := &Cache{
		schemas: make(map[reflect.Type]*openapi3.SchemaRef),
		gen:     openapi3gen.NewGenerator(openapi3gen.UseAllExportedFields()),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// For returns the shared schema for type T, generating and storing it on the
// first request for T against this cache.
//
// Schema generation is assumed total for well-formed argument types; a type
// that cannot be described is a build-time defect, so For panics rather than
// returning an error.
func For[T any](c *Cache) *openapi3.SchemaRef {
	t := reflect.TypeOf((*T)(nil)).Elem()

	c.mu.Lock()
	defer c.mu.Unlock()

	if ref, ok := c.schemas[t]; ok {
		c.metrics.hit()
		return ref
	}
	c.metrics.miss()

	var v T
	ref, err := c.gen.NewSchemaRefForValue(&v, nil)
	if err != nil {
		panic(fmt.Sprintf("schema: cannot describe type %s: %v", t, err))
	}
	c.schemas[t] = ref
	c.logger.Debug("schema generated", "type", t.String())
	return ref
}

// Len reports how many distinct types have schemas in the cache.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.schemas)
}
