/*
Package pathway defines the declaration types for the possible state
transitions of a contract: Transition ("then") pathways, Terminal unlocking
conditions, Updatable ("finish-or") pathways taking an external argument, and
the Guard and CompileGate predicates attached to them.

Declarations are immutable value descriptors built once per contract type and
consumed by an external compilation engine. The generic parameter C is the
contract type a declaration belongs to; S is the contract's shared argument
envelope for updatable pathways.

Example:

	unlock := pathway.NewCachedGuard("owner_key", func(v *Vault, ctx domain.Context) domain.Clause {
		return v.OwnerKey
	})

	redeem := pathway.NewTransition("redeem", redeemBody,
		pathway.GuardedBy(unlock),
		pathway.CompileIf(mainnetOnly),
	)

	pay := pathway.NewUpdatable("pay", pathway.DecodeArgs[PaymentArgs](), payBody,
		pathway.GuardedBy[*Vault](unlock),
		pathway.ExposeSchema[*Vault](cache),
	)

Guard caching is a policy tag only: a cached guard tells the consuming compiler
that its clause may be memoized per contract instance. The memoization itself
lives in the compiler, which knows instance lifetimes.
*/
package pathway
