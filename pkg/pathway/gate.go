package pathway

import (
	"fmt"

	"github.com/aretw0/covenant/pkg/domain"
)

// GatePolicy mirrors GuardPolicy for compile gates. Only the fresh policy
// exists today; the type is kept so future caching variants slot in without
// changing the CompileGate shape.
type GatePolicy int

const (
	// GateFresh re-evaluates the gate whenever the compiler decides static
	// inclusion of the owning pathway.
	GateFresh GatePolicy = iota
)

func (p GatePolicy) String() string {
	if p == GateFresh {
		return "fresh"
	}
	return "unknown"
}

// GateFunc decides, at contract-compile time, whether the owning pathway
// should be included.
type GateFunc[C any] func(c C, ctx domain.Context) domain.GateDecision

// CompileGate is a named compile-time inclusion predicate.
type CompileGate[C any] struct {
	name   string
	policy GatePolicy
	body   GateFunc[C]
}

// NewGate declares a compile gate.
func NewGate[C any](name string, body GateFunc[C]) CompileGate[C] {
	if body == nil {
		panic(fmt.Sprintf("pathway: compile gate %q declared without a body", name))
	}
	return CompileGate[C]{name: name, policy: GateFresh, body: body}
}

// Name returns the gate's stable identifier.
func (g CompileGate[C]) Name() string { return g.name }

// Policy returns the gate's evaluation policy tag.
func (g CompileGate[C]) Policy() GatePolicy { return g.policy }

// Decide evaluates the gate body against a contract instance.
//
// Invoking a zero-value CompileGate is a framework contract violation and
// panics.
func (g CompileGate[C]) Decide(c C, ctx domain.Context) domain.GateDecision {
	if g.body == nil {
		panic(fmt.Sprintf("pathway: compile gate %q invoked without a body", g.name))
	}
	return g.body(c, ctx)
}
