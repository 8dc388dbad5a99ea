package parse

import (
	"fmt"
	"sort"

	"github.com/dekarrin/rosed"
	"github.com/dekarrin/valsiparse/internal/ictiobus/automaton"
	"github.com/dekarrin/valsiparse/internal/ictiobus/grammar"
	"github.com/dekarrin/valsiparse/internal/util"
)

// constructLALR1ParseTable constructs the LALR(1) table for G.
// It augments grammar G to produce G', then the canonical collection of sets of
// LR(1) items of G' is used to construct a table with applicable GOTO and
// ACTION columns.
//
// This is an implementation of Algorithm 4.59, "An easy, but space-consuming
// LALR table construction", from the purple dragon book. In the comments, most
// of which is lifted directly from the textbook, GOTO[i, A] refers to the vaue
// of the table's GOTO column at state i, symbol A, while GOTO(i, A) refers to
// the "precomputed GOTO function for grammar G'".
func constructLALR1ParseTable(g grammar.Grammar) (LRParseTable, error) {
	dfa, err := automaton.NewLALR1ViablePrefixDFA(g)
	if err != nil {
		return nil, err
	}

	table := &lalr1Table{
		gPrime:    g.Augmented(),
		gTerms:    g.Terminals(),
		gStart:    g.StartSymbol(),
		gNonTerms: g.NonTerminals(),
		dfa:       dfa,
		itemCache: map[string]grammar.LR1Item{},
	}

	// collect item cache from the states of our lr1 DFA
	allStates := util.OrderedKeys(table.dfa.States())
	for _, dfaStateName := range allStates {
		itemSet := table.dfa.GetValue(dfaStateName)
		for k := range itemSet {
			table.itemCache[k] = itemSet[k]
		}
	}

	// check that we dont hit conflicts in ACTION; Action panics on one, so
	// turn that into an error for the caller
	err = func() (conflictErr error) {
		defer func() {
			if r := recover(); r != nil {
				conflictErr = fmt.Errorf("%v", r)
			}
		}()
		for i := range dfa.States() {
			for _, a := range table.gPrime.Terminals() {
				act := table.Action(i, a)
				_ = act
			}
		}
		return nil
	}()
	if err != nil {
		return nil, err
	}

	return table, nil
}

type lalr1Table struct {
	gPrime    grammar.Grammar
	gStart    string
	dfa       automaton.DFA[util.SVSet[grammar.LR1Item]]
	itemCache map[string]grammar.LR1Item
	gTerms    []string
	gNonTerms []string
}

func (lalr1 *lalr1Table) Action(i, a string) LRAction {
	// Algorithm 4.59, which we are using for construction of the LALR(1) parse
	// table, explicitly mentions to construct the Action table as it is done
	// in Algorithm 4.56.

	// step 2 of algorithm 4.56, "Construction of canonical-LR parsing tables",
	// for reference:

	// 2. State i is constructed from Iᵢ. The parsing actions for state i are
	// determined as follows:

	// (a) If [A -> α.aβ, b] is in Iᵢ and GOTO(Iᵢ, a) = Iⱼ, then set
	// ACTION[i, a] to "shift j." Here a must be a terminal.

	// (b) If [A -> α., a] is in Iᵢ, A != S', then set ACTION[i, a] to "reduce
	// A -> α".

	// get our set back from current state so we can check it; this is our Iᵢ
	itemSet := lalr1.dfa.GetValue(i)

	var alreadySet bool
	var act LRAction

	for itemStr := range itemSet {
		item := lalr1.itemCache[itemStr]

		A := item.NonTerminal
		alpha := item.Left
		beta := item.Right
		b := item.Lookahead

		if lalr1.gPrime.IsTerminal(a) && len(beta) > 0 && beta[0] == a {
			j, err := lalr1.Goto(i, a)
			if err == nil {
				newAct := LRAction{Type: LRShift, State: j}
				if alreadySet && !newAct.Equal(act) {
					panic(fmt.Sprintf("grammar is not LALR(1): found both %s and %s actions for input %q", act.String(), newAct.String(), a))
				}
				act = newAct
				alreadySet = true
			}
		}

		// (b) If [A -> α., a] is in Iᵢ, A != S', then set ACTION[i, a] to
		// "reduce A -> α".
		if len(beta) == 0 && A != lalr1.gPrime.StartSymbol() && a == b {
			newAct := LRAction{Type: LRReduce, Symbol: A, Production: grammar.Production(alpha)}
			if alreadySet && !newAct.Equal(act) {
				panic(fmt.Sprintf("grammar is not LR(1): found both %s and %s actions for input %q", act.String(), newAct.String(), a))
			}
			act = newAct
			alreadySet = true
		}

		// (c) If [S' -> S., $] is in Iᵢ, then set ACTION[i, $] to "accept".
		if a == "$" && b == "$" && A == lalr1.gPrime.StartSymbol() && len(alpha) == 1 && alpha[0] == lalr1.gStart && len(beta) == 0 {
			newAct := LRAction{Type: LRAccept}
			if alreadySet && !newAct.Equal(act) {
				panic(fmt.Sprintf("grammar is not LR(1): found both %s and %s actions for input %q", act.String(), newAct.String(), a))
			}
			act = newAct
			alreadySet = true
		}
	}

	if !alreadySet {
		act.Type = LRError
	}

	return act
}

func (lalr1 *lalr1Table) Goto(state, symbol string) (string, error) {
	newState := lalr1.dfa.Next(state, symbol)
	if newState == "" {
		return "", fmt.Errorf("GOTO[%q, %q] is an error entry", state, symbol)
	}
	return newState, nil
}

func (lalr1 *lalr1Table) Initial() string {
	return lalr1.dfa.Start
}

// GetDFA returns a string-valued projection of the underlying LR(1) item-set
// DFA, suitable for introspection without exposing the grammar package's
// item types outside of this package.
func (lalr1 *lalr1Table) GetDFA() automaton.DFA[string] {
	return automaton.TransformDFA(lalr1.dfa, func(items util.SVSet[grammar.LR1Item]) string {
		names := make([]string, 0, len(items))
		for _, k := range util.OrderedKeys(items) {
			names = append(names, items[k].String())
		}
		return fmt.Sprintf("%v", names)
	})
}

func (lalr1 *lalr1Table) String() string {
	// need mapping of state to indexes
	stateRefs := map[string]string{}

	// need to gaurantee order
	stateNames := lalr1.dfa.States().Elements()
	sort.Strings(stateNames)

	// put the initial state first
	for i := range stateNames {
		if stateNames[i] == lalr1.dfa.Start {
			old := stateNames[0]
			stateNames[0] = stateNames[i]
			stateNames[i] = old
			break
		}
	}
	for i := range stateNames {
		stateRefs[stateNames[i]] = fmt.Sprintf("%d", i)
	}

	allTerms := make([]string, len(lalr1.gTerms))
	copy(allTerms, lalr1.gTerms)
	allTerms = append(allTerms, "$")

	// okay now do data setup
	data := [][]string{}

	// set up the headers
	headers := []string{"S", "|"}

	for _, t := range allTerms {
		headers = append(headers, fmt.Sprintf("A:%s", t))
	}

	headers = append(headers, "|")

	for _, nt := range lalr1.gNonTerms {
		headers = append(headers, fmt.Sprintf("G:%s", nt))
	}
	data = append(data, headers)

	// now need to do each state
	for stateIdx := range stateNames {
		i := stateNames[stateIdx]
		row := []string{stateRefs[i], "|"}

		for _, t := range allTerms {
			act := lalr1.Action(i, t)

			cell := ""
			switch act.Type {
			case LRAccept:
				cell = "acc"
			case LRReduce:
				// reduces to the state that corresponds with the symbol
				cell = fmt.Sprintf("r%s -> %s", act.Symbol, act.Production.String())
			case LRShift:
				cell = fmt.Sprintf("s%s", stateRefs[act.State])
			case LRError:
				// do nothing, err is blank
			}

			row = append(row, cell)
		}

		row = append(row, "|")

		for _, nt := range lalr1.gNonTerms {
			var cell = ""

			gotoState, err := lalr1.Goto(i, nt)
			if err == nil {
				cell = stateRefs[gotoState]
			}

			row = append(row, cell)
		}

		data = append(data, row)
	}

	// This used to be 120 width. Glu88in' *8et* on that. lol.
	return rosed.
		Edit("").
		InsertTableOpts(0, data, 10, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}
