// Package registry holds the per-contract-type lists of declared pathways.
//
// A Registry keeps three ordered lists, one per pathway flavor (transition,
// terminal, updatable). Each list slot is either a present declaration or an
// absent marker: absence is how a contract type implements a sparse subset of
// its named pathways. Ordering is the author's declaration order; the registry
// preserves it faithfully and assigns it no semantics of its own.
//
// The external compiler consumes a registry either through the zero-argument
// factory lists (calling every factory once per compilation pass and
// discarding absent results) or through the per-name lookup methods.
// Registries are immutable after Build and safe for concurrent reads.
package registry

import (
	"github.com/aretw0/covenant/pkg/pathway"
)

// TransitionFactory yields a transition declaration, or ok=false when the
// contract type does not implement the named pathway.
type TransitionFactory[C any] func() (pathway.Transition[C], bool)

// TerminalFactory yields a terminal unlocking condition, or ok=false when
// absent. A terminal pathway is structurally a guard bound directly into the
// terminal list: the guard's clause alone suffices to allow terminal
// disposition of contract funds.
type TerminalFactory[C any] func() (pathway.Guard[C], bool)

// UpdatableFactory yields an updatable declaration, or ok=false when absent.
type UpdatableFactory[C, S any] func() (pathway.Updatable[C, S], bool)

type transitionEntry[C any] struct {
	name    string
	decl    pathway.Transition[C]
	present bool
}

type terminalEntry[C any] struct {
	name    string
	decl    pathway.Guard[C]
	present bool
}

type updatableEntry[C, S any] struct {
	name    string
	decl    pathway.Updatable[C, S]
	present bool
}

// Registry is the immutable set of pathway declarations of one contract type.
// C is the contract type; S is its shared argument envelope for updatable
// pathways.
type Registry[C, S any] struct {
	transitions []transitionEntry[C]
	terminals   []terminalEntry[C]
	updatables  []updatableEntry[C, S]
}

// TransitionFactories returns one factory per declared transition name, in
// declaration order, absent entries included.
func (r *Registry[C, S]) TransitionFactories() []TransitionFactory[C] {
	out := make([]TransitionFactory[C], len(r.transitions))
	for i, e := range r.transitions {
		out[i] = func() (pathway.Transition[C], bool) {
			return e.decl, e.present
		}
	}
	return out
}

// Transitions returns the present transition declarations in declaration
// order, skipping absent entries.
func (r *Registry[C, S]) Transitions() []pathway.Transition[C] {
	out := make([]pathway.Transition[C], 0, len(r.transitions))
	for _, e := range r.transitions {
		if e.present {
			out = append(out, e.decl)
		}
	}
	return out
}

// Transition looks up a transition by name. It returns ok=false both for
// names declared absent and for names never declared.
func (r *Registry[C, S]) Transition(name string) (pathway.Transition[C], bool) {
	for _, e := range r.transitions {
		if e.name == name && e.present {
			return e.decl, true
		}
	}
	var zero pathway.Transition[C]
	return zero, false
}

// TransitionNames returns every declared transition name in declaration
// order, absent entries included.
func (r *Registry[C, S]) TransitionNames() []string {
	out := make([]string, len(r.transitions))
	for i, e := range r.transitions {
		out[i] = e.name
	}
	return out
}

// TerminalFactories returns one factory per declared terminal name, in
// declaration order, absent entries included.
func (r *Registry[C, S]) TerminalFactories() []TerminalFactory[C] {
	out := make([]TerminalFactory[C], len(r.terminals))
	for i, e := range r.terminals {
		out[i] = func() (pathway.Guard[C], bool) {
			return e.decl, e.present
		}
	}
	return out
}

// Terminals returns the present terminal guards in declaration order.
func (r *Registry[C, S]) Terminals() []pathway.Guard[C] {
	out := make([]pathway.Guard[C], 0, len(r.terminals))
	for _, e := range r.terminals {
		if e.present {
			out = append(out, e.decl)
		}
	}
	return out
}

// Terminal looks up a terminal guard by name.
func (r *Registry[C, S]) Terminal(name string) (pathway.Guard[C], bool) {
	for _, e := range r.terminals {
		if e.name == name && e.present {
			return e.decl, true
		}
	}
	var zero pathway.Guard[C]
	return zero, false
}

// TerminalNames returns every declared terminal name in declaration order.
func (r *Registry[C, S]) TerminalNames() []string {
	out := make([]string, len(r.terminals))
	for i, e := range r.terminals {
		out[i] = e.name
	}
	return out
}

// UpdatableFactories returns one factory per declared updatable name, in
// declaration order, absent entries included.
func (r *Registry[C, S]) UpdatableFactories() []UpdatableFactory[C, S] {
	out := make([]UpdatableFactory[C, S], len(r.updatables))
	for i, e := range r.updatables {
		out[i] = func() (pathway.Updatable[C, S], bool) {
			return e.decl, e.present
		}
	}
	return out
}

// Updatables returns the present updatable declarations in declaration order.
func (r *Registry[C, S]) Updatables() []pathway.Updatable[C, S] {
	out := make([]pathway.Updatable[C, S], 0, len(r.updatables))
	for _, e := range r.updatables {
		if e.present {
			out = append(out, e.decl)
		}
	}
	return out
}

// Updatable looks up an updatable declaration by name.
func (r *Registry[C, S]) Updatable(name string) (pathway.Updatable[C, S], bool) {
	for _, e := range r.updatables {
		if e.name == name && e.present {
			return e.decl, true
		}
	}
	return nil, false
}

// UpdatableNames returns every declared updatable name in declaration order.
func (r *Registry[C, S]) UpdatableNames() []string {
	out := make([]string, len(r.updatables))
	for i, e := range r.updatables {
		out[i] = e.name
	}
	return out
}
