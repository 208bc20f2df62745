package pathway

import (
	"fmt"

	"github.com/aretw0/covenant/pkg/domain"
	"github.com/aretw0/covenant/pkg/schema"
)

// TransitionBody computes the effect of a transition pathway: a lazy, finite
// sequence of transaction templates. Each invocation yields a fresh sequence.
type TransitionBody[C any] func(c C, ctx domain.Context) (domain.TemplateSeq, error)

// Transition is a named "then" pathway: a state transition producing new
// transaction templates without external runtime arguments.
type Transition[C any] struct {
	name   string
	guards []Guard[C]
	gates  []CompileGate[C]
	body   TransitionBody[C]
}

// config collects the attachments shared by transition and updatable
// declarations.
type config[C any] struct {
	guards []Guard[C]
	gates  []CompileGate[C]
	cache  *schema.Cache
}

// Option defines a functional option attaching guards, gates or schema
// exposure to a pathway declaration.
type Option[C any] func(*config[C])

// GuardedBy attaches guards, in order. All attached guards must be satisfied
// for the pathway to be usable; an empty guard list means unconditionally
// usable.
func GuardedBy[C any](guards ...Guard[C]) Option[C] {
	return func(cfg *config[C]) {
		cfg.guards = append(cfg.guards, guards...)
	}
}

// CompileIf attaches compile gates, in order. An empty gate list means the
// pathway is always included.
func CompileIf[C any](gates ...CompileGate[C]) Option[C] {
	return func(cfg *config[C]) {
		cfg.gates = append(cfg.gates, gates...)
	}
}

// ExposeSchema opts an updatable pathway into external exposure: its argument
// schema is resolved through the given cache at declaration time. Only
// meaningful for updatable declarations; transitions ignore it.
func ExposeSchema[C any](cache *schema.Cache) Option[C] {
	return func(cfg *config[C]) {
		cfg.cache = cache
	}
}

// NewTransition declares a transition pathway. The body is required; declaring
// a pathway without one is an authoring error (absent pathways are declared at
// the registry level instead).
func NewTransition[C any](name string, body TransitionBody[C], opts ...Option[C]) Transition[C] {
	if body == nil {
		panic(fmt.Sprintf("pathway: transition %q declared without a body", name))
	}
	var cfg config[C]
	for _, opt := range opts {
		opt(&cfg)
	}
	return Transition[C]{
		name:   name,
		guards: cfg.guards,
		gates:  cfg.gates,
		body:   body,
	}
}

// Name returns the pathway's stable identifier.
func (t Transition[C]) Name() string { return t.name }

// Guards returns the attached guards in declaration order.
func (t Transition[C]) Guards() []Guard[C] { return t.guards }

// Gates returns the attached compile gates in declaration order.
func (t Transition[C]) Gates() []CompileGate[C] { return t.gates }

// Implemented reports whether the declaration carries a body. Zero-value
// transitions (the absent form) do not.
func (t Transition[C]) Implemented() bool { return t.body != nil }

// Call invokes the pathway body.
//
// Invoking a zero-value Transition is a framework contract violation: the
// registry factory for an unimplemented pathway reports it absent, so a
// correct compiler never reaches this path. Call panics rather than returning
// an error to make the violation immediate and irrecoverable.
func (t Transition[C]) Call(c C, ctx domain.Context) (domain.TemplateSeq, error) {
	if t.body == nil {
		panic(fmt.Sprintf("pathway: transition %q invoked without a body", t.name))
	}
	return t.body(c, ctx)
}
