// Package automaton builds the deterministic viable-prefix automaton used by
// the LALR(1) table constructor: the canonical collection of LR(1) item
// sets, merged by common core into LALR(1)-sized states (Algorithm 4.59,
// "An easy, but space-consuming LALR table construction", purple dragon
// book).
package automaton

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dekarrin/valsiparse/internal/ictiobus/grammar"
	"github.com/dekarrin/valsiparse/internal/util"
)

// dfaState is one state of a DFA: a value of type E (here, a set of LR(1)
// items), its outgoing transitions, and whether it is an accepting state.
type dfaState[E any] struct {
	name        string
	value       E
	transitions map[string]string
	accepting   bool
}

func (s dfaState[E]) Copy() dfaState[E] {
	s2 := dfaState[E]{name: s.name, value: s.value, accepting: s.accepting, transitions: map[string]string{}}
	for k, v := range s.transitions {
		s2.transitions[k] = v
	}
	return s2
}

// DFA is a deterministic finite automaton whose states carry a value of type
// E (for the viable-prefix automaton, a set of LR(1) items).
type DFA[E any] struct {
	states map[string]dfaState[E]
	Start  string
}

// Copy returns a duplicate DFA.
func (dfa DFA[E]) Copy() DFA[E] {
	d2 := DFA[E]{Start: dfa.Start, states: make(map[string]dfaState[E], len(dfa.states))}
	for k, v := range dfa.states {
		d2.states[k] = v.Copy()
	}
	return d2
}

// TransformDFA builds a new DFA with the same shape as dfa but with every
// state's value replaced by transform(old value). Used to produce an
// introspectable DFA[string] from the LALR item-set DFA.
func TransformDFA[E1, E2 any](dfa DFA[E1], transform func(E1) E2) DFA[E2] {
	d2 := DFA[E2]{Start: dfa.Start, states: make(map[string]dfaState[E2], len(dfa.states))}
	for k, v := range dfa.states {
		d2.states[k] = dfaState[E2]{
			name:        v.name,
			value:       transform(v.value),
			accepting:   v.accepting,
			transitions: v.Copy().transitions,
		}
	}
	return d2
}

func (dfa *DFA[E]) AddState(state string, accepting bool) {
	if dfa.states == nil {
		dfa.states = map[string]dfaState[E]{}
	}
	if _, ok := dfa.states[state]; ok {
		return
	}
	dfa.states[state] = dfaState[E]{name: state, accepting: accepting, transitions: map[string]string{}}
}

func (dfa *DFA[E]) SetValue(state string, v E) {
	s := dfa.states[state]
	s.value = v
	dfa.states[state] = s
}

func (dfa DFA[E]) GetValue(state string) E {
	return dfa.states[state].value
}

func (dfa DFA[E]) IsAccepting(state string) bool {
	return dfa.states[state].accepting
}

func (dfa *DFA[E]) AddTransition(from, input, to string) {
	s := dfa.states[from]
	if s.transitions == nil {
		s.transitions = map[string]string{}
	}
	s.transitions[input] = to
	dfa.states[from] = s
}

// Next returns the state reached from fromState on input, or "" if no such
// transition exists.
func (dfa DFA[E]) Next(fromState, input string) string {
	s, ok := dfa.states[fromState]
	if !ok {
		return ""
	}
	return s.transitions[input]
}

// States returns the set of all state names in the DFA.
func (dfa DFA[E]) States() util.StringSet {
	names := util.NewStringSet()
	for k := range dfa.states {
		names.Add(k)
	}
	return names
}

func (dfa DFA[E]) Validate() error {
	if _, ok := dfa.states[dfa.Start]; !ok {
		return fmt.Errorf("start state %q is not defined", dfa.Start)
	}
	for name, s := range dfa.states {
		for input, to := range s.transitions {
			if _, ok := dfa.states[to]; !ok {
				return fmt.Errorf("state %q has transition on %q to undefined state %q", name, input, to)
			}
		}
	}
	return nil
}

func (dfa DFA[E]) String() string {
	names := dfa.States().Elements()
	sort.Strings(names)

	var sb strings.Builder
	for _, n := range names {
		s := dfa.states[n]
		inputs := make([]string, 0, len(s.transitions))
		for in := range s.transitions {
			inputs = append(inputs, in)
		}
		sort.Strings(inputs)

		var moves strings.Builder
		for i, in := range inputs {
			moves.WriteString(fmt.Sprintf("=(%s)=> %s", in, s.transitions[in]))
			if i+1 < len(inputs) {
				moves.WriteString(", ")
			}
		}

		str := fmt.Sprintf("(%s [%s])", n, moves.String())
		if s.accepting {
			str = "(" + str + ")"
		}
		sb.WriteString(str)
		sb.WriteRune('\n')
	}
	return sb.String()
}

// NewLALR1ViablePrefixDFA constructs the LALR(1) viable-prefix automaton for
// g: the canonical collection of LR(1) item sets, with states sharing a
// common LR(0) core merged together. Returns an error if merging introduces
// an inconsistency (identically-cored states disagreeing on a transition),
// meaning g is not LALR(1).
func NewLALR1ViablePrefixDFA(g grammar.Grammar) (DFA[util.SVSet[grammar.LR1Item]], error) {
	canon, transitions, start := canonicalLR1Collection(g)

	// group LR(1) item sets by their LR(0) core
	coreOf := map[string]string{} // state name -> core key
	coreSets := map[string]util.SVSet[grammar.LR1Item]{}
	coreMembers := map[string][]string{}

	for _, name := range canon.Elements() {
		items := canon.Get(name)
		coreKey := grammar.CoreSet(items).StringOrdered()
		coreOf[name] = coreKey
		if existing, ok := coreSets[coreKey]; ok {
			merged := util.NewSVSet[grammar.LR1Item]()
			for k, v := range existing {
				merged.Set(k, v)
			}
			for k, v := range items {
				merged.Set(k, v)
			}
			coreSets[coreKey] = merged
		} else {
			coreSets[coreKey] = items
		}
		coreMembers[coreKey] = append(coreMembers[coreKey], name)
	}

	dfa := DFA[util.SVSet[grammar.LR1Item]]{states: map[string]dfaState[util.SVSet[grammar.LR1Item]]{}}
	for coreKey, items := range coreSets {
		dfa.AddState(coreKey, isAcceptingLR1Set(items, g))
		dfa.SetValue(coreKey, items)
	}
	dfa.Start = coreOf[start]

	for fromName, outs := range transitions {
		fromCore := coreOf[fromName]
		for sym, toName := range outs {
			toCore := coreOf[toName]
			existing := dfa.Next(fromCore, sym)
			if existing != "" && existing != toCore {
				return DFA[util.SVSet[grammar.LR1Item]]{}, fmt.Errorf("grammar is not LALR(1); resulted in inconsistent state merges on %q", sym)
			}
			dfa.AddTransition(fromCore, sym, toCore)
		}
	}

	return dfa, nil
}

func isAcceptingLR1Set(items util.SVSet[grammar.LR1Item], g grammar.Grammar) bool {
	for _, k := range items.Elements() {
		item := items.Get(k)
		if len(item.Right) == 0 && item.NonTerminal == g.Augmented().StartSymbol() {
			return true
		}
	}
	return false
}

// canonicalLR1Collection performs the standard BFS construction of the
// canonical collection of sets of LR(1) items for the augmented grammar,
// returning the collection keyed by StringOrdered(), the transition table
// between those keys, and the start key.
func canonicalLR1Collection(g grammar.Grammar) (collection util.SVSet[util.SVSet[grammar.LR1Item]], transitions map[string]map[string]string, start string) {
	gPrime := g.Augmented()
	oldStart := g.StartSymbol()

	initialItem := grammar.LR1Item{
		LR0Item:   grammar.LR0Item{NonTerminal: gPrime.StartSymbol(), Right: []string{oldStart}},
		Lookahead: "$",
	}
	startKernel := util.NewSVSet[grammar.LR1Item]()
	startKernel.Set(initialItem.String(), initialItem)
	startSet := gPrime.LR1_CLOSURE(startKernel)
	start = startSet.StringOrdered()

	collection = util.NewSVSet[util.SVSet[grammar.LR1Item]]()
	collection.Set(start, startSet)

	transitions = map[string]map[string]string{}

	symbols := append(append([]string{}, gPrime.Terminals()...), gPrime.NonTerminals()...)

	queue := []util.SVSet[grammar.LR1Item]{startSet}
	for len(queue) > 0 {
		I := queue[0]
		queue = queue[1:]
		iName := I.StringOrdered()

		for _, X := range symbols {
			gotoSet := gPrime.LR1_GOTO(I, X)
			if gotoSet.Empty() {
				continue
			}
			jName := gotoSet.StringOrdered()
			if !collection.Has(jName) {
				collection.Set(jName, gotoSet)
				queue = append(queue, gotoSet)
			}
			if transitions[iName] == nil {
				transitions[iName] = map[string]string{}
			}
			transitions[iName][X] = jName
		}
	}

	return collection, transitions, start
}
