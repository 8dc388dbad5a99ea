// Package lojtab defines the concrete Lojban sentence-level grammar and
// builds the LALR(1) parse table for it via internal/ictiobus. This is a
// deliberately small grammar (bridi, sumti, description, abstraction,
// quotation, and vocative shapes) rather than a full reproduction of the
// reference parser's hundreds of rules; see DESIGN.md for the scoping
// rationale.
package lojtab

import (
	"strings"

	"github.com/dekarrin/valsiparse/internal/ictiobus/grammar"
	"github.com/dekarrin/valsiparse/internal/ictiobus/parse"
	"github.com/dekarrin/valsiparse/internal/ictiobus/types"
	"github.com/dekarrin/valsiparse/internal/token"
)

// terminals lists every selma'o/compound category this grammar's productions
// reference. termName/catForTerm are built from this list so the grammar,
// the tree converter, and the elidable-terminator synthesizer all agree on
// the string<->category mapping.
var terminals = []token.Category{
	token.I, token.COI, token.KOhA, token.LA, token.CMENE, token.LE,
	token.KU, token.CU, token.BRIVLA, token.AnyWord, token.ZO,
	token.NU, token.KEI, token.LU, token.LIhU, token.TOI, token.TUhU,
	token.VAU, token.DOhU,
}

func termName(cat token.Category) string {
	return strings.ToLower(cat.Name())
}

var catByTerm = func() map[string]token.Category {
	m := make(map[string]token.Category, len(terminals))
	for _, c := range terminals {
		m[termName(c)] = c
	}
	return m
}()

// CategoryForTerminal returns the selma'o category a grammar terminal
// string denotes.
func CategoryForTerminal(term string) (token.Category, bool) {
	c, ok := catByTerm[term]
	return c, ok
}

// Non-terminal names. Mixed case keeps them out of the terminal convention
// (grammar.Grammar.IsTerminal treats an all-lowercase symbol as a
// terminal).
const (
	NText0       = "Text0"
	NSentence    = "Sentence"
	NBridi       = "Bridi"
	NSumti       = "Sumti"
	NSumtiTail   = "SumtiTail"
	NDescription = "Description"
	NAnyWordSumt = "AnyWordSumti"
)

// ruleCategory assigns a stable rule id to each non-terminal so the tree
// converter can give internal nodes a token.Category, and registers a
// symbolic name for it (spec section 3, "the mapping code->symbolic name
// is fixed and must be exposed for diagnostics").
var ruleCategory = func() map[string]token.Category {
	names := []string{NSentence, NBridi, NSumti, NSumtiTail, NDescription, NAnyWordSumt}
	m := map[string]token.Category{NText0: token.TopLevel}
	for i, name := range names {
		cat := token.Category(9000 + i)
		m[name] = cat
		token.RegisterRuleName(cat, name)
	}
	return m
}()

// Build constructs the grammar and its LALR(1) parser.
func Build() (parse.Parser, grammar.Grammar, error) {
	var g grammar.Grammar
	g.Start = NText0

	for _, cat := range terminals {
		g.AddTerm(termName(cat), types.MakeDefaultClass(cat.Name()))
	}

	t := termName

	g.AddRule(NText0, []string{NSentence})
	g.AddRule(NText0, []string{t(token.I), NSentence})
	g.AddRule(NText0, []string{t(token.COI)})

	// A vocative may address a named sumti, closed by the elidable DOhU
	// (e.g. "coi la djan. dohu").
	g.AddRule(NText0, []string{t(token.COI), NSumti, t(token.DOhU)})

	g.AddRule(NSentence, []string{NBridi})

	// A bare sumti is itself a complete observative utterance (e.g. "le
	// zarci" on its own, elliptical for "[zo'e cu] le zarci"), not just a
	// fragment of some larger bridi.
	g.AddRule(NSentence, []string{NSumti})

	// A bridi is a head sumti, a selbri (bare or CU-marked), and optionally
	// one or more trailing sumti filling the selbri's remaining places
	// (e.g. "mi klama le zarci": KOhA BRIVLA Description), optionally closed
	// by the elidable place-structure terminator VAU.
	g.AddRule(NBridi, []string{NSumti, t(token.BRIVLA)})
	g.AddRule(NBridi, []string{NSumti, t(token.BRIVLA), NSumtiTail})
	g.AddRule(NBridi, []string{NSumti, t(token.BRIVLA), NSumtiTail, t(token.VAU)})
	g.AddRule(NBridi, []string{NSumti, t(token.CU), t(token.BRIVLA)})
	g.AddRule(NBridi, []string{NSumti, t(token.CU), t(token.BRIVLA), NSumtiTail})
	g.AddRule(NBridi, []string{NSumti, t(token.CU), t(token.BRIVLA), NSumtiTail, t(token.VAU)})

	g.AddRule(NSumtiTail, []string{NSumti})
	g.AddRule(NSumtiTail, []string{NSumti, NSumtiTail})

	g.AddRule(NSumti, []string{t(token.KOhA)})
	g.AddRule(NSumti, []string{t(token.LA), t(token.CMENE)})
	g.AddRule(NSumti, []string{NDescription})
	g.AddRule(NSumti, []string{NAnyWordSumt})

	// An abstraction bracket turns a whole bridi into a sumti, closed by the
	// elidable KEI (e.g. "la djan. broda nu mi klama kei").
	g.AddRule(NSumti, []string{t(token.NU), NBridi, t(token.KEI)})

	// A lu...li'u quotation names the quoted sentence itself, closed by the
	// elidable LIhU (e.g. "zo bu'u cu broda lu mi klama lihu").
	g.AddRule(NSumti, []string{t(token.LU), NSentence, t(token.LIhU)})

	// A toi...tu'u parenthetical attaches a free bridi comment to any
	// sumti, closed by the elidable TUhU.
	g.AddRule(NSumti, []string{NSumti, t(token.TOI), NBridi, t(token.TUhU)})

	g.AddRule(NDescription, []string{t(token.LE), t(token.BRIVLA), t(token.KU)})

	// A zo-quotation names a single word and so itself acts as a sumti
	// (e.g. "zo bu'u cu broda": the quoted word "bu'u" is what's predicated).
	g.AddRule(NAnyWordSumt, []string{t(token.AnyWord)})
	g.AddRule(NAnyWordSumt, []string{t(token.ZO), t(token.AnyWord)})

	p, err := parse.NewLALRParser(g)
	if err != nil {
		return nil, grammar.Grammar{}, err
	}
	return p, g, nil
}
