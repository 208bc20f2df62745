package registry

import (
	"io"
	"log/slog"

	"github.com/aretw0/covenant/pkg/pathway"
)

// Builder accumulates pathway declarations for one contract type and
// validates them as a whole.
//
// Validation happens at Build time so that an invalid set of declarations is
// an error the author sees at construction, never a stub body the compiler
// can trip over later: a present entry always carries a body, and an absent
// entry is always reported absent.
type Builder[C, S any] struct {
	logger      *slog.Logger
	transitions []transitionEntry[C]
	terminals   []terminalEntry[C]
	updatables  []updatableEntry[C, S]
}

// BuilderOption defines a functional option for configuring the Builder.
type BuilderOption[C, S any] func(*Builder[C, S])

// WithLogger sets a structured logger for registration diagnostics.
func WithLogger[C, S any](logger *slog.Logger) BuilderOption[C, S] {
	return func(b *Builder[C, S]) {
		b.logger = logger
	}
}

// NewBuilder creates an empty declaration builder.
func NewBuilder[C, S any](opts ...BuilderOption[C, S]) *Builder[C, S] {
	b := &Builder[C, S]{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// AddTransition appends a present transition declaration.
func (b *Builder[C, S]) AddTransition(t pathway.Transition[C]) *Builder[C, S] {
	b.transitions = append(b.transitions, transitionEntry[C]{
		name:    t.Name(),
		decl:    t,
		present: true,
	})
	return b
}

// AddAbsentTransition reserves a transition name the contract type declares
// but does not implement. Its factory yields absent.
func (b *Builder[C, S]) AddAbsentTransition(name string) *Builder[C, S] {
	b.transitions = append(b.transitions, transitionEntry[C]{name: name})
	return b
}

// AddTerminal appends a guard as a standalone terminal unlocking condition.
func (b *Builder[C, S]) AddTerminal(g pathway.Guard[C]) *Builder[C, S] {
	b.terminals = append(b.terminals, terminalEntry[C]{
		name:    g.Name(),
		decl:    g,
		present: true,
	})
	return b
}

// AddAbsentTerminal reserves an unimplemented terminal name.
func (b *Builder[C, S]) AddAbsentTerminal(name string) *Builder[C, S] {
	b.terminals = append(b.terminals, terminalEntry[C]{name: name})
	return b
}

// AddUpdatable appends a present updatable declaration.
func (b *Builder[C, S]) AddUpdatable(u pathway.Updatable[C, S]) *Builder[C, S] {
	e := updatableEntry[C, S]{present: u != nil}
	if u != nil {
		e.name = u.Name()
		e.decl = u
	}
	b.updatables = append(b.updatables, e)
	return b
}

// AddAbsentUpdatable reserves an unimplemented updatable name.
func (b *Builder[C, S]) AddAbsentUpdatable(name string) *Builder[C, S] {
	b.updatables = append(b.updatables, updatableEntry[C, S]{name: name})
	return b
}

// Build validates the accumulated declarations and freezes them into a
// Registry. Violations are aggregated so the author sees every problem at
// once.
func (b *Builder[C, S]) Build() (*Registry[C, S], error) {
	var errs []error

	seen := make(map[string]bool)
	for _, e := range b.transitions {
		errs = appendEntryErrors(errs, seen, "transition", e.name, e.present, e.decl.Implemented())
	}

	seen = make(map[string]bool)
	for _, e := range b.terminals {
		errs = appendEntryErrors(errs, seen, "terminal", e.name, e.present, e.decl.Implemented())
	}

	seen = make(map[string]bool)
	for _, e := range b.updatables {
		errs = appendEntryErrors(errs, seen, "updatable", e.name, e.present, e.decl != nil)
	}

	if len(errs) > 0 {
		return nil, &AggregateError{Errors: errs}
	}

	for _, e := range b.transitions {
		b.logger.Debug("pathway registered", "flavor", "transition", "name", e.name, "present", e.present)
	}
	for _, e := range b.terminals {
		b.logger.Debug("pathway registered", "flavor", "terminal", "name", e.name, "present", e.present)
	}
	for _, e := range b.updatables {
		b.logger.Debug("pathway registered", "flavor", "updatable", "name", e.name, "present", e.present)
	}

	return &Registry[C, S]{
		transitions: b.transitions,
		terminals:   b.terminals,
		updatables:  b.updatables,
	}, nil
}

func appendEntryErrors(errs []error, seen map[string]bool, flavor, name string, present, implemented bool) []error {
	if name == "" {
		return append(errs, &ValidationError{Flavor: flavor, Name: name, Reason: "name is required"})
	}
	if seen[name] {
		errs = append(errs, &ValidationError{Flavor: flavor, Name: name, Reason: "duplicate name"})
	}
	seen[name] = true
	if present && !implemented {
		errs = append(errs, &ValidationError{Flavor: flavor, Name: name, Reason: "present declaration has no body"})
	}
	return errs
}
