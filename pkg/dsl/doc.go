/*
Package dsl provides a fluent builder for declaring the pathways of a contract
type.

It is the declarative front door to pkg/registry: authors describe their
transitions, terminal conditions and updatable pathways in declaration order,
and Build validates the whole set at construction time. A pathway name given
without a body is an absent declaration, the mechanism by which a contract
type implements a sparse subset of its named pathways.

Example usage:

	var vaultPathways = dsl.New[*Vault, pathway.MapArgs]().
		Transition("to_cold").
			GuardedBy(operatorKey).
			Do(toColdBody).
		Transition("clawback").
			Absent().
		Terminal(recoveryKey).
		Updatable(payOut).
		MustBuild()

The resulting registry is immutable; the external compiler enumerates it
through factory lists or per-name lookups.
*/
package dsl
