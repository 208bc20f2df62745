// Package schema provides a memoized store of structural schemas for pathway
// argument types.
//
// Generating a schema for a Go type is comparatively expensive and the same
// argument types recur across contract types, so the Cache computes each schema
// at most once and hands out a shared, immutable handle afterwards. Schemas are
// OpenAPI 3 schema references produced by reflection (openapi3gen), suitable
// for exposing an updatable pathway's argument shape to external callers.
//
// A Cache is an explicit dependency owned by the compilation session, not
// process-global state:
//
//	cache := schema.NewCache()
//	ref := schema.For[PaymentArgs](cache)
//
// Concurrent lookups for the same type observe the identical handle; the
// generation routine runs once per type per cache.
package schema
