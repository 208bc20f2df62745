package covenant

import (
	"github.com/aretw0/covenant/pkg/domain"
	"github.com/aretw0/covenant/pkg/registry"
)

// Contract is the capability set a programmable contract type implements: it
// fixes one shared argument envelope S for all of its updatable pathways and
// exposes its pathway registry.
//
// C is the contract type itself (conventionally a pointer type). The registry
// returned by Pathways must be stable: every compilation pass that re-reads it
// observes the same declarations in the same order.
type Contract[C, S any] interface {
	Pathways() *registry.Registry[C, S]
}

// Aliases for the collaborator types defined in pkg/domain, so contract
// authors can depend on the root package alone.
type (
	// Context is the opaque compile-time environment forwarded into every
	// pathway, guard and gate body.
	Context = domain.Context
	// Clause is the spending condition produced by a guard body.
	Clause = domain.Clause
	// Template is a transaction template emitted by a pathway body.
	Template = domain.Template
	// TemplateSeq is the lazy, finite sequence of templates produced by one
	// body invocation.
	TemplateSeq = domain.TemplateSeq
	// GateDecision is a compile gate's static inclusion verdict.
	GateDecision = domain.GateDecision
)

const (
	// GateInclude admits the pathway into the compiled contract.
	GateInclude = domain.GateInclude
	// GateExclude removes the pathway from the compiled contract.
	GateExclude = domain.GateExclude
	// GateDefer leaves the decision to the remaining gates or the compiler.
	GateDefer = domain.GateDefer
)

// Templates builds a TemplateSeq over a fixed set of templates.
func Templates(tmpls ...Template) TemplateSeq {
	return domain.Templates(tmpls...)
}

// NoTemplates is the empty template sequence.
func NoTemplates() TemplateSeq {
	return domain.NoTemplates()
}
