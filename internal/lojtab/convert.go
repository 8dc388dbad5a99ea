package lojtab

import (
	"github.com/dekarrin/valsiparse/internal/ictiobus/types"
	"github.com/dekarrin/valsiparse/internal/token"
)

// toArenaTree folds a generic ictiobus parse tree back into the project's
// own arena-resident token tree. Terminal nodes are already arena refs
// (carried through via arenaToken.Source); internal nodes are allocated
// fresh, categorized by the rule id the non-terminal was assigned.
func toArenaTree(arena *token.Arena, pt *types.ParseTree) token.Ref {
	if pt.Terminal {
		return pt.Source.(arenaToken).ref
	}

	cat, ok := ruleCategory[pt.Value]
	if !ok {
		cat = token.Unknown
	}
	parent := arena.New(cat, "")
	for _, child := range pt.Children {
		arena.AddChild(parent, toArenaTree(arena, child))
	}
	return parent
}
