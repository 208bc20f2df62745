package domain

// Context is the compile-time environment handed to every pathway, guard and
// gate body. It is owned by the external compilation engine; this framework
// forwards it verbatim and never inspects it.
type Context any

// Clause is the spending condition produced by a guard body: a boolean or
// threshold composition over elementary spending predicates. Its structure is
// owned by the downstream script layer; this framework only carries values of
// this type from guard bodies to the compiler.
type Clause any

// GateDecision is the verdict of a compile gate about the static inclusion of
// its owning pathway. The combination semantics across multiple gates are owned
// by the external compiler; this framework only transports single decisions.
type GateDecision int

const (
	// GateInclude admits the pathway into the compiled contract.
	GateInclude GateDecision = iota
	// GateExclude removes the pathway from the compiled contract.
	GateExclude
	// GateDefer leaves the decision to the remaining gates or to the compiler.
	GateDefer
)

func (d GateDecision) String() string {
	switch d {
	case GateInclude:
		return "include"
	case GateExclude:
		return "exclude"
	case GateDefer:
		return "defer"
	default:
		return "unknown"
	}
}
