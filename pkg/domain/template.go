package domain

import "iter"

// Template is a single transaction template emitted by a pathway body. Its
// structure is owned by the downstream compiler, which turns templates into
// concrete blockchain transactions; this framework treats it as opaque.
type Template any

// TemplateSeq is the lazy, finite sequence of transaction templates produced by
// one invocation of a pathway body. A sequence is consumed once and is not
// restartable; re-invoking the body yields a fresh sequence.
type TemplateSeq = iter.Seq[Template]

// Templates builds a TemplateSeq over a fixed set of templates. It is the
// common case for bodies that compute their templates eagerly.
func Templates(tmpls ...Template) TemplateSeq {
	return func(yield func(Template) bool) {
		for _, t := range tmpls {
			if !yield(t) {
				return
			}
		}
	}
}

// NoTemplates is the empty sequence, for bodies that legitimately emit nothing.
func NoTemplates() TemplateSeq {
	return func(func(Template) bool) {}
}
