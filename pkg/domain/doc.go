/*
Package domain contains the core value types shared by the Covenant declaration
framework.

It defines the vocabulary that pathway declarations, registries and the external
compilation engine exchange: the opaque compile Context, the Clause produced by
guards, the Template sequences produced by pathway bodies, and the GateDecision
returned by compile gates. This package is kept pure and free of external
dependencies like I/O or persistence, following Hexagonal Architecture
principles.

# Key Entities

  - Context: Opaque compile-time environment forwarded verbatim into every body.
  - Clause: Spending condition produced by a guard; composed downstream.
  - Template / TemplateSeq: Transaction templates emitted lazily by a pathway body.
  - GateDecision: Static inclusion verdict produced by a compile gate.
*/
package domain
