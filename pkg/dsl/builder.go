package dsl

import (
	"log/slog"

	"github.com/aretw0/covenant/pkg/pathway"
	"github.com/aretw0/covenant/pkg/registry"
)

// Builder accumulates the pathway declarations of one contract type. C is the
// contract type, S its shared argument envelope for updatable pathways.
type Builder[C, S any] struct {
	logger      *slog.Logger
	transitions []*TransitionBuilder[C, S]
	ops         []func(*registry.Builder[C, S])
}

// New creates an empty declaration builder.
func New[C, S any]() *Builder[C, S] {
	return &Builder[C, S]{}
}

// WithLogger sets a structured logger for registration diagnostics.
func (b *Builder[C, S]) WithLogger(logger *slog.Logger) *Builder[C, S] {
	b.logger = logger
	return b
}

// Transition starts the declaration of a named transition pathway. Finish it
// with Do (implemented) or Absent (declared only); a dangling declaration
// counts as absent.
func (b *Builder[C, S]) Transition(name string) *TransitionBuilder[C, S] {
	tb := &TransitionBuilder[C, S]{name: name, builder: b}
	b.transitions = append(b.transitions, tb)
	b.ops = append(b.ops, tb.register)
	return tb
}

// Terminal binds a guard directly into the terminal list: its clause alone
// suffices for terminal disposition of contract funds. Authors wanting custom
// template logic use a Transition instead.
func (b *Builder[C, S]) Terminal(g pathway.Guard[C]) *Builder[C, S] {
	b.ops = append(b.ops, func(rb *registry.Builder[C, S]) {
		rb.AddTerminal(g)
	})
	return b
}

// AbsentTerminal reserves an unimplemented terminal name.
func (b *Builder[C, S]) AbsentTerminal(name string) *Builder[C, S] {
	b.ops = append(b.ops, func(rb *registry.Builder[C, S]) {
		rb.AddAbsentTerminal(name)
	})
	return b
}

// Updatable appends an updatable declaration built with pathway.NewUpdatable.
func (b *Builder[C, S]) Updatable(u pathway.Updatable[C, S]) *Builder[C, S] {
	b.ops = append(b.ops, func(rb *registry.Builder[C, S]) {
		rb.AddUpdatable(u)
	})
	return b
}

// AbsentUpdatable reserves an unimplemented updatable name.
func (b *Builder[C, S]) AbsentUpdatable(name string) *Builder[C, S] {
	b.ops = append(b.ops, func(rb *registry.Builder[C, S]) {
		rb.AddAbsentUpdatable(name)
	})
	return b
}

// Build validates every declaration and freezes them into a registry.
func (b *Builder[C, S]) Build() (*registry.Registry[C, S], error) {
	var errs []error
	for _, tb := range b.transitions {
		if err := tb.validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return nil, &registry.AggregateError{Errors: errs}
	}

	var opts []registry.BuilderOption[C, S]
	if b.logger != nil {
		opts = append(opts, registry.WithLogger[C, S](b.logger))
	}
	rb := registry.NewBuilder[C, S](opts...)
	for _, op := range b.ops {
		op(rb)
	}
	return rb.Build()
}

// MustBuild is Build panicking on error. Registries are typically package
// level variables of a contract package, where a declaration error is a
// programming defect caught by the package's own tests.
func (b *Builder[C, S]) MustBuild() *registry.Registry[C, S] {
	reg, err := b.Build()
	if err != nil {
		panic("dsl: invalid pathway declarations: " + err.Error())
	}
	return reg
}
