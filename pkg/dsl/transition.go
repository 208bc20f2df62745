package dsl

import (
	"github.com/aretw0/covenant/pkg/pathway"
	"github.com/aretw0/covenant/pkg/registry"
)

// TransitionBuilder provides a fluent API for configuring one transition
// declaration.
type TransitionBuilder[C, S any] struct {
	name    string
	guards  []pathway.Guard[C]
	gates   []pathway.CompileGate[C]
	body    pathway.TransitionBody[C]
	absent  bool
	builder *Builder[C, S]
}

// GuardedBy attaches guards, in order.
func (t *TransitionBuilder[C, S]) GuardedBy(guards ...pathway.Guard[C]) *TransitionBuilder[C, S] {
	t.guards = append(t.guards, guards...)
	return t
}

// CompileIf attaches compile gates, in order.
func (t *TransitionBuilder[C, S]) CompileIf(gates ...pathway.CompileGate[C]) *TransitionBuilder[C, S] {
	t.gates = append(t.gates, gates...)
	return t
}

// Do sets the pathway body and returns to the contract builder.
func (t *TransitionBuilder[C, S]) Do(body pathway.TransitionBody[C]) *Builder[C, S] {
	t.body = body
	return t.builder
}

// Absent marks the pathway as declared but unimplemented: its registry
// factory yields absent, and the compiler skips it.
func (t *TransitionBuilder[C, S]) Absent() *Builder[C, S] {
	t.absent = true
	return t.builder
}

// validate rejects configurations the registry cannot represent: guards or
// gates attached to a pathway that has no body would be silently dead.
func (t *TransitionBuilder[C, S]) validate() error {
	if t.body == nil && (len(t.guards) > 0 || len(t.gates) > 0) {
		return &registry.ValidationError{
			Flavor: "transition",
			Name:   t.name,
			Reason: "guards or gates attached to an unimplemented pathway",
		}
	}
	return nil
}

func (t *TransitionBuilder[C, S]) register(rb *registry.Builder[C, S]) {
	if t.body == nil {
		rb.AddAbsentTransition(t.name)
		return
	}
	var opts []pathway.Option[C]
	if len(t.guards) > 0 {
		opts = append(opts, pathway.GuardedBy(t.guards...))
	}
	if len(t.gates) > 0 {
		opts = append(opts, pathway.CompileIf(t.gates...))
	}
	rb.AddTransition(pathway.NewTransition(t.name, t.body, opts...))
}
