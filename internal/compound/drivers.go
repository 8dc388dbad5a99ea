package compound

import "github.com/dekarrin/valsiparse/internal/token"

// Driver attempts to recognize one compound pattern starting at the front
// of q. On success it returns the synthesized token and true, having
// consumed exactly the tokens that make up the match. On failure it must
// push back every token it consumed (in original order) and return false.
type Driver func(q *Queue) (token.Ref, bool)

// Each driver below is named for the lexer_X rule it implements (spec
// section 4.8) and documents the output code it produces. lexer_K/lexer_S
// (i-boundary compounds) and lexer_Y (numeric selbri) are left unwired:
// the former would swallow the bare I terminal the sentence grammar
// dispatches on directly, and the latter needs a selbri sub-grammar this
// package doesn't build; see DESIGN.md. The simple_tag infix some of the
// reference drivers accept between a connective and its trailing BO/KE is
// likewise not reproduced, since the grammar below never emits a
// simple_tag token for a driver to consume.

// driverEK implements lexer_B (910): a bare A-class connective.
func driverEK(q *Queue) (token.Ref, bool) {
	a, ok := q.Expect(token.A)
	if !ok {
		return 0, false
	}
	return q.NewNode(token.LexerEK, a), true
}

// driverEKBO implements lexer_C (915): ek followed by BO.
func driverEKBO(q *Queue) (token.Ref, bool) {
	ek, ok := driverEK(q)
	if !ok {
		return 0, false
	}
	bo, ok := q.Expect(token.BO)
	if !ok {
		q.PushBack(leavesOf(q, ek)...)
		return 0, false
	}
	return q.NewNode(token.LexerEKBO, ek, bo), true
}

// driverEKKE implements lexer_D (916): ek followed by KE.
func driverEKKE(q *Queue) (token.Ref, bool) {
	ek, ok := driverEK(q)
	if !ok {
		return 0, false
	}
	ke, ok := q.Expect(token.KE)
	if !ok {
		q.PushBack(leavesOf(q, ek)...)
		return 0, false
	}
	return q.NewNode(token.LexerEKKE, ek, ke), true
}

// driverJEK implements lexer_E (925): a bare JA-class connective.
func driverJEK(q *Queue) (token.Ref, bool) {
	ja, ok := q.Expect(token.JA)
	if !ok {
		return 0, false
	}
	return q.NewNode(token.LexerJEK, ja), true
}

// driverJEKBO implements lexer_U (1005): jek followed by BO.
func driverJEKBO(q *Queue) (token.Ref, bool) {
	ja, ok := q.Expect(token.JA)
	if !ok {
		return 0, false
	}
	bo, ok := q.Expect(token.BO)
	if !ok {
		q.PushBack(ja)
		return 0, false
	}
	return q.NewNode(token.LexerJEKBO, ja, bo), true
}

// driverJOIK implements lexer_F (930): BIhI or JOI.
func driverJOIK(q *Queue) (token.Ref, bool) {
	if bihi, ok := q.Expect(token.BIhI); ok {
		return q.NewNode(token.LexerJOIK, bihi), true
	}
	if joi, ok := q.Expect(token.JOI); ok {
		return q.NewNode(token.LexerJOIK, joi), true
	}
	return 0, false
}

// driverGEK implements lexer_G (935): a bare GA-class connective.
func driverGEK(q *Queue) (token.Ref, bool) {
	ga, ok := q.Expect(token.GA)
	if !ok {
		return 0, false
	}
	return q.NewNode(token.LexerGEK, ga), true
}

// driverJOIKBO implements lexer_V (1010): joik followed by BO.
func driverJOIKBO(q *Queue) (token.Ref, bool) {
	joik, ok := driverJOIK(q)
	if !ok {
		return 0, false
	}
	bo, ok := q.Expect(token.BO)
	if !ok {
		q.PushBack(leavesOf(q, joik)...)
		return 0, false
	}
	return q.NewNode(token.LexerJOIKBO, joik, bo), true
}

// driverJOIKKE implements lexer_W (1015): joik followed by KE.
func driverJOIKKE(q *Queue) (token.Ref, bool) {
	joik, ok := driverJOIK(q)
	if !ok {
		return 0, false
	}
	ke, ok := q.Expect(token.KE)
	if !ok {
		q.PushBack(leavesOf(q, joik)...)
		return 0, false
	}
	return q.NewNode(token.LexerJOIKKE, joik, ke), true
}

// driverGUhEK implements lexer_H (940): a GUhA connective, optionally
// preceded by SE and optionally followed by NAI.
func driverGUhEK(q *Queue) (token.Ref, bool) {
	se, hasSE := q.Expect(token.SE)
	guha, ok := q.Expect(token.GUhA)
	if !ok {
		if hasSE {
			q.PushBack(se)
		}
		return 0, false
	}
	nai, hasNAI := q.Expect(token.NAI)

	children := make([]token.Ref, 0, 3)
	if hasSE {
		children = append(children, se)
	}
	children = append(children, guha)
	if hasNAI {
		children = append(children, nai)
	}
	return q.NewNode(token.LexerGUhEK, children...), true
}

// driverGIK implements lexer_P (980): a bare GI.
func driverGIK(q *Queue) (token.Ref, bool) {
	gi, ok := q.Expect(token.GI)
	if !ok {
		return 0, false
	}
	return q.NewNode(token.LexerGIK, gi), true
}

// driverGIhEK implements lexer_R (990): a bare GIhA.
func driverGIhEK(q *Queue) (token.Ref, bool) {
	giha, ok := q.Expect(token.GIhA)
	if !ok {
		return 0, false
	}
	return q.NewNode(token.LexerGIhEK, giha), true
}

// driverGIhEKBO implements lexer_M (965): gihek followed by BO.
func driverGIhEKBO(q *Queue) (token.Ref, bool) {
	gihek, ok := driverGIhEK(q)
	if !ok {
		return 0, false
	}
	bo, ok := q.Expect(token.BO)
	if !ok {
		q.PushBack(leavesOf(q, gihek)...)
		return 0, false
	}
	return q.NewNode(token.LexerGIhEKBO, gihek, bo), true
}

// driverGIhEKKE implements lexer_N (966): gihek followed by KE.
func driverGIhEKKE(q *Queue) (token.Ref, bool) {
	gihek, ok := driverGIhEK(q)
	if !ok {
		return 0, false
	}
	ke, ok := q.Expect(token.KE)
	if !ok {
		q.PushBack(leavesOf(q, gihek)...)
		return 0, false
	}
	return q.NewNode(token.LexerGIhEKKE, gihek, ke), true
}

// driverTenseModal implements lexer_O (970): a bare BAI tag.
func driverTenseModal(q *Queue) (token.Ref, bool) {
	bai, ok := q.Expect(token.BAI)
	if !ok {
		return 0, false
	}
	return q.NewNode(token.LexerTenseModal, bai), true
}

// driverNAhEBO implements lexer_I (945): NAhE followed by BO.
func driverNAhEBO(q *Queue) (token.Ref, bool) {
	nahe, ok := q.Expect(token.NAhE)
	if !ok {
		return 0, false
	}
	bo, ok := q.Expect(token.BO)
	if !ok {
		q.PushBack(nahe)
		return 0, false
	}
	return q.NewNode(token.LexerNAhEBO, nahe, bo), true
}

// driverNAKU implements lexer_J (950): NA followed by KU.
func driverNAKU(q *Queue) (token.Ref, bool) {
	na, ok := q.Expect(token.NA)
	if !ok {
		return 0, false
	}
	ku, ok := q.Expect(token.KU)
	if !ok {
		q.PushBack(na)
		return 0, false
	}
	return q.NewNode(token.LexerNAKU, na, ku), true
}

// driverNumber implements lexer_L (960): one or more PA digits.
func driverNumber(q *Queue) (token.Ref, bool) {
	first, ok := q.Expect(token.PA)
	if !ok {
		return 0, false
	}
	digits := []token.Ref{first}
	for {
		next, ok := q.Expect(token.PA)
		if !ok {
			break
		}
		digits = append(digits, next)
	}
	return q.NewNode(token.LexerNumber, digits...), true
}

// driverLerfuString implements lexer_Q (985): one or more BY letterals.
func driverLerfuString(q *Queue) (token.Ref, bool) {
	first, ok := q.Expect(token.BY)
	if !ok {
		return 0, false
	}
	letters := []token.Ref{first}
	for {
		next, ok := q.Expect(token.BY)
		if !ok {
			break
		}
		letters = append(letters, next)
	}
	return q.NewNode(token.LexerLerfuString, letters...), true
}

// driverUttOrdinal implements lexer_A (905): a BY letteral used as an
// utterance ordinal.
func driverUttOrdinal(q *Queue) (token.Ref, bool) {
	by, ok := q.Expect(token.BY)
	if !ok {
		return 0, false
	}
	return q.NewNode(token.LexerUttOrdinal, by), true
}

// leavesOf returns the leaf descendants of ref in left-to-right order, for
// re-pushing a synthesized node's consumed tokens back onto the queue when
// a subsequent step of the same driver fails.
func leavesOf(q *Queue, ref token.Ref) []token.Ref {
	children := q.arena.Children(ref)
	if len(children) == 0 {
		return []token.Ref{ref}
	}
	var out []token.Ref
	for _, c := range children {
		out = append(out, leavesOf(q, c)...)
	}
	return out
}
