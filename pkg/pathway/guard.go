package pathway

import (
	"fmt"

	"github.com/aretw0/covenant/pkg/domain"
)

// GuardPolicy controls how often a guard body is re-evaluated by the consuming
// compiler.
type GuardPolicy int

const (
	// GuardFresh re-invokes the body on every evaluation.
	GuardFresh GuardPolicy = iota
	// GuardCached marks the clause as memoizable per contract instance. This
	// framework only tags the policy; the memoization store belongs to the
	// compiler, which owns instance lifetimes.
	GuardCached
)

func (p GuardPolicy) String() string {
	switch p {
	case GuardFresh:
		return "fresh"
	case GuardCached:
		return "cached"
	default:
		return "unknown"
	}
}

// GuardFunc computes the spending clause of a guard for a contract instance.
type GuardFunc[C any] func(c C, ctx domain.Context) domain.Clause

// Guard is a named unlocking-condition predicate with a caching policy.
// Guards are stateless value descriptors: every pathway referencing a guard
// carries its own copy.
type Guard[C any] struct {
	name   string
	policy GuardPolicy
	body   GuardFunc[C]
}

// NewGuard declares a fresh guard: the body runs on every evaluation.
func NewGuard[C any](name string, body GuardFunc[C]) Guard[C] {
	if body == nil {
		panic(fmt.Sprintf("pathway: guard %q declared without a body", name))
	}
	return Guard[C]{name: name, policy: GuardFresh, body: body}
}

// NewCachedGuard declares a guard whose clause the compiler may compute once
// per contract instance and reuse.
func NewCachedGuard[C any](name string, body GuardFunc[C]) Guard[C] {
	g := NewGuard(name, body)
	g.policy = GuardCached
	return g
}

// Name returns the guard's stable identifier.
func (g Guard[C]) Name() string { return g.name }

// Policy returns the guard's caching policy tag.
func (g Guard[C]) Policy() GuardPolicy { return g.policy }

// Implemented reports whether the guard carries a body. Zero-value guards
// (the absent form) do not.
func (g Guard[C]) Implemented() bool { return g.body != nil }

// Clause evaluates the guard body against a contract instance.
//
// Invoking a zero-value Guard is a framework contract violation and panics;
// constructed guards always carry a body.
func (g Guard[C]) Clause(c C, ctx domain.Context) domain.Clause {
	if g.body == nil {
		panic(fmt.Sprintf("pathway: guard %q invoked without a body", g.name))
	}
	return g.body(c, ctx)
}
