package pathway

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/aretw0/covenant/pkg/domain"
	"github.com/aretw0/covenant/pkg/schema"
)

// UpdatableBody computes the effect of an updatable pathway from a contract
// instance and the pathway's typed argument.
type UpdatableBody[C, A any] func(c C, ctx domain.Context, arg A) (domain.TemplateSeq, error)

// CoerceFunc translates the contract's shared argument envelope S into a
// pathway's typed argument A. Every updatable declaration names its coercion
// explicitly; there is no implicit default.
type CoerceFunc[S, A any] func(args S) (A, error)

// Updatable is a declared "finish-or" pathway: a state-gated action taking an
// externally supplied runtime argument.
//
// All updatable pathways of one contract type share the envelope type S; each
// declaration narrows the envelope to its own argument type through its
// coercion function. The per-pathway argument type is erased behind this
// interface so a registry can hold updatables with different argument shapes.
type Updatable[C, S any] interface {
	// Name returns the pathway's stable identifier.
	Name() string
	// Guards returns the attached guards in declaration order.
	Guards() []Guard[C]
	// Gates returns the attached compile gates in declaration order.
	Gates() []CompileGate[C]
	// Schema returns the shared structural schema of the argument type, or
	// nil when the pathway has not opted into external exposure.
	Schema() *openapi3.SchemaRef
	// CheckArgs runs the coercion against an envelope and reports the typed
	// failure without invoking the body. Useful to argument sources that
	// validate before dispatch.
	CheckArgs(args S) error
	// Call coerces the envelope and invokes the body. A coercion failure is
	// returned as a *CoercionError; the body is not invoked in that case.
	Call(c C, ctx domain.Context, args S) (domain.TemplateSeq, error)
}

type updatable[C, S, A any] struct {
	name   string
	guards []Guard[C]
	gates  []CompileGate[C]
	coerce CoerceFunc[S, A]
	body   UpdatableBody[C, A]
	schema *openapi3.SchemaRef
}

// NewUpdatable declares an updatable pathway named name, coercing the shared
// envelope S into the argument type A before invoking body.
//
// With ExposeSchema, the structural schema of A is resolved through the given
// cache at declaration time and shared with every other user of that cache.
func NewUpdatable[C, S, A any](name string, coerce CoerceFunc[S, A], body UpdatableBody[C, A], opts ...Option[C]) Updatable[C, S] {
	if coerce == nil {
		panic(fmt.Sprintf("pathway: updatable %q declared without a coercion function", name))
	}
	if body == nil {
		panic(fmt.Sprintf("pathway: updatable %q declared without a body", name))
	}
	var cfg config[C]
	for _, opt := range opts {
		opt(&cfg)
	}
	u := &updatable[C, S, A]{
		name:   name,
		guards: cfg.guards,
		gates:  cfg.gates,
		coerce: coerce,
		body:   body,
	}
	if cfg.cache != nil {
		u.schema = schema.For[A](cfg.cache)
	}
	return u
}

func (u *updatable[C, S, A]) Name() string { return u.name }

func (u *updatable[C, S, A]) Guards() []Guard[C] { return u.guards }

func (u *updatable[C, S, A]) Gates() []CompileGate[C] { return u.gates }

func (u *updatable[C, S, A]) Schema() *openapi3.SchemaRef { return u.schema }

func (u *updatable[C, S, A]) CheckArgs(args S) error {
	if _, err := u.coerce(args); err != nil {
		return &CoercionError{Pathway: u.name, Err: err}
	}
	return nil
}

func (u *updatable[C, S, A]) Call(c C, ctx domain.Context, args S) (domain.TemplateSeq, error) {
	arg, err := u.coerce(args)
	if err != nil {
		return nil, &CoercionError{Pathway: u.name, Err: err}
	}
	return u.body(c, ctx, arg)
}
