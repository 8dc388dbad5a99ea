// Package compound implements the backtracking recursive-descent
// compounder (spec section 4.8): it peeks the pipeline's next raw token,
// dispatches on its category to an ordered list of candidate drivers, and
// either returns a synthesized compound token or the original raw token
// unchanged.
package compound

import "github.com/dekarrin/valsiparse/internal/token"

// Source supplies one token at a time, the same contract the pipeline
// exposes.
type Source interface {
	Next() token.Ref
}

// Queue buffers tokens pulled from a Source so that a failed driver can
// push its consumed tokens back in original order (the push-back
// invariant, spec section 4.8/8.4).
type Queue struct {
	src     Source
	arena   *token.Arena
	pending []token.Ref
}

// NewQueue wraps src, allocating any synthesized compound tokens in arena.
func NewQueue(src Source, arena *token.Arena) *Queue {
	return &Queue{src: src, arena: arena}
}

// Next returns the next token, preferring anything already pushed back.
func (q *Queue) Next() token.Ref {
	if len(q.pending) > 0 {
		ref := q.pending[0]
		q.pending = q.pending[1:]
		return ref
	}
	return q.src.Next()
}

// PushBack reinserts refs at the front of the queue in the order given,
// i.e. refs[0] will be the very next token Next() returns.
func (q *Queue) PushBack(refs ...token.Ref) {
	q.pending = append(append([]token.Ref{}, refs...), q.pending...)
}

// Category returns ref's category, for convenience in driver code.
func (q *Queue) Category(ref token.Ref) token.Category {
	return q.arena.Get(ref).Category
}

// NewNode allocates a new internal node of the given category with children
// in order.
func (q *Queue) NewNode(cat token.Category, children ...token.Ref) token.Ref {
	parent := q.arena.New(cat, "")
	for _, c := range children {
		q.arena.AddChild(parent, c)
	}
	return parent
}

// Expect pops the next token and returns it if its category is cat;
// otherwise it pushes the token back and reports failure.
func (q *Queue) Expect(cat token.Category) (token.Ref, bool) {
	ref := q.Next()
	if q.Category(ref) == cat {
		return ref, true
	}
	q.PushBack(ref)
	return 0, false
}
