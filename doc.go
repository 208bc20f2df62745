/*
Package covenant is a declaration and registration framework for the pathways
of a programmable on-chain contract: the named state transitions, terminal
unlocking conditions and argument-taking actions a contract type exposes to an
external compilation engine.

A contract type statically declares three ordered lists of pathways. Each
declaration pairs a body with zero or more guards (spending-condition
predicates) and zero or more compile gates (static inclusion predicates);
updatable pathways additionally name a coercion from the contract's shared
argument envelope into their typed parameter, and may opt into external
exposure of the argument's structural schema through a session-owned cache.
The external compiler walks the registries at contract-compile time to decide
which transitions are reachable, which spending conditions protect them, and
which transaction templates to emit.

# Concept

Covenant is a passive registry layer: it owns no compiler, no script
interpreter and no server. Contract types can implement an arbitrary sparse
subset of their named pathways; an unimplemented name is declared absent, and
absent declarations are reported as such rather than carrying stub bodies.
Declarations are validated at construction and immutable afterwards.

# Usage

Declare pathways with the fluent builder and expose them via the Contract
interface:

	package vault

	type Vault struct {
		OwnerKey    covenant.Clause
		RecoveryKey covenant.Clause
	}

	var ownerSig = pathway.NewCachedGuard("owner_sig",
		func(v *Vault, _ covenant.Context) covenant.Clause { return v.OwnerKey })

	var pathways = dsl.New[*Vault, pathway.MapArgs]().
		Transition("to_cold").
			GuardedBy(ownerSig).
			Do(toColdBody).
		Terminal(recoverySig).
		Updatable(payOut).
		MustBuild()

	func (v *Vault) Pathways() *registry.Registry[*Vault, pathway.MapArgs] {
		return pathways
	}

The external compiler enumerates the registry's factory lists, discards absent
entries, and evaluates guards and gates against contract instances and its own
opaque Context.
*/
package covenant
