package lojtab

import (
	"fmt"

	"github.com/dekarrin/valsiparse/internal/ictiobus/parse"
	"github.com/dekarrin/valsiparse/internal/token"
)

// ElidableKinds lists every selma'o that may be silently synthesized as a
// missing terminator (spec section 4.9). The grammar's productions make
// KU (description), VAU (bridi place structure), KEI (nu abstraction),
// LIhU (lu quotation), TUhU (toi parenthetical), and DOhU (vocative)
// reachable via Parse below; the rest are carried here so the list matches
// the reference's full set for diagnostics/documentation purposes even
// though no production in this grammar ends in them -- see DESIGN.md.
var ElidableKinds = []token.Category{
	token.LIhU, token.KU, token.KUhE, token.KEI, token.TUhU, token.VAU,
	token.DOhU, token.FEhU, token.SEhU, token.NUhU, token.BOI, token.LUhU,
	token.GEhU, token.MEhU, token.KEhE, token.BEhO, token.TOI, token.KUhO,
	token.VEhO, token.LOhO, token.TEhU,
}

// Parse runs p over refs (the compounder's output, already terminated with
// an end-of-text ref). If the parse fails and elide is true, it retries
// once per candidate in ElidableKinds, each time splicing a synthesized
// leaf of that category directly before the end-of-text ref -- the
// reference parser's per-reduction synthesis collapses, for a grammar this
// small, to "try inserting the missing terminator at the point parsing
// ran out of input".
//
// The synthesized leaf's Text is its own symbolic name (e.g. "KU_556"),
// since it was never present in source text; that's exactly what a reader
// of the resulting tree needs to tell it apart from a token that really
// was typed.
func Parse(p parse.Parser, arena *token.Arena, refs []token.Ref, elide bool) (token.Ref, error) {
	return ParseTraced(p, arena, refs, elide, nil)
}

// ParseTraced is Parse with an optional listener (spec section 6's "-de"
// flag) notified with the selma'o name of each terminator synthesized.
func ParseTraced(p parse.Parser, arena *token.Arena, refs []token.Ref, elide bool, onElide func(string)) (token.Ref, error) {
	tree, err := p.Parse(newTokenStream(arena, refs))
	if err == nil {
		return toArenaTree(arena, &tree), nil
	}
	if !elide {
		return 0, err
	}

	eot := refs[len(refs)-1]
	body := refs[:len(refs)-1]

	for _, cat := range ElidableKinds {
		synth := arena.New(cat, fmt.Sprintf("%s_%d", cat.Name(), int(cat)))
		attempt := make([]token.Ref, 0, len(refs)+1)
		attempt = append(attempt, body...)
		attempt = append(attempt, synth, eot)

		tree, elideErr := p.Parse(newTokenStream(arena, attempt))
		if elideErr == nil {
			if onElide != nil {
				onElide(cat.Name())
			}
			return toArenaTree(arena, &tree), nil
		}
		arena.Release(synth)
	}

	return 0, err
}
