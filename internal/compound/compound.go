package compound

import "github.com/dekarrin/valsiparse/internal/token"

// dispatch maps a leading token's category to the ordered list of drivers
// to try against it, mirroring the reference parser's per-category
// dispatch table (spec section 4.8, abridged here to the driver set this
// package implements).
var dispatch = map[token.Category][]Driver{
	token.A:    {driverEKBO, driverEKKE, driverEK},
	token.BAI:  {driverGEK, driverTenseModal},
	token.BIhI: {driverGEK, driverJOIKBO, driverJOIKKE, driverJOIK},
	token.BY:   {driverUttOrdinal, driverLerfuString},
	token.GA:   {driverGEK},
	token.GAhO: {driverGEK, driverJOIKBO, driverJOIKKE, driverJOIK},
	token.GI:   {driverGIK},
	token.GIhA: {driverGIhEKBO, driverGIhEKKE, driverGIhEK},
	token.GUhA: {driverGUhEK},
	token.JA:   {driverJEKBO, driverJEK},
	token.JOI:  {driverGEK, driverJOIKBO, driverJOIKKE, driverJOIK},
	token.LAU:  {driverUttOrdinal, driverLerfuString},
	token.TEI:  {driverUttOrdinal, driverLerfuString},

	// NA is tried against the ek/jek/gihek drivers as well as driverNAKU,
	// but those connective drivers expect a bare A, JA or GIhA as their
	// first token, so an NA-led input only ever matches "na ku"; anything
	// else falls through raw when every driver below fails.
	token.NA: {
		driverEKBO, driverEKKE, driverEK,
		driverJEKBO, driverJEK,
		driverNAKU,
		driverGIhEKBO, driverGIhEKKE, driverGIhEK,
	},
	token.NAhE: {driverNAhEBO, driverGEK, driverTenseModal},
	token.PA:   {driverUttOrdinal, driverNumber},

	// SE is tried against the tag/connective family plus the guhek and
	// tense-modal forms. Of these drivers only driverGUhEK accepts a
	// leading SE; the others expect their own category first, so any other
	// SE-led input falls through raw.
	token.SE: {
		driverEKBO, driverEKKE, driverEK,
		driverJEKBO, driverJEK,
		driverGUhEK,
		driverGIhEKBO, driverGIhEKKE,
		driverGEK, driverTenseModal,
		driverJOIKBO, driverJOIKKE, driverJOIK,
		driverGIhEK,
	},

	// The remaining categories below are wired to the gek and tense-modal
	// drivers. driverGEK expects GA and driverTenseModal expects BAI as
	// the first token, so a token of one of these categories matches
	// neither and falls through as a raw token.
	token.CAhA: {driverGEK, driverTenseModal},
	token.CUhE: {driverGEK, driverTenseModal},
	token.FAhA: {driverGEK, driverTenseModal},
	token.FEhE: {driverGEK, driverTenseModal},
	token.KI:   {driverGEK, driverTenseModal},
	token.MOhI: {driverGEK, driverTenseModal},
	token.PU:   {driverGEK, driverTenseModal},
	token.TAhE: {driverGEK, driverTenseModal},
	token.VA:   {driverGEK, driverTenseModal},
	token.VEhA: {driverGEK, driverTenseModal},
	token.VIhA: {driverGEK, driverTenseModal},
	token.ZAhO: {driverGEK, driverTenseModal},
	token.ZEhA: {driverGEK, driverTenseModal},
	token.ZI:   {driverGEK, driverTenseModal},
}

// Compounder wraps a pipeline token source with the compounder's dispatch
// logic.
type Compounder struct {
	q *Queue

	// traceIn receives one line per token entering the compounder (spec
	// section 6's "-dL" flag); traceReduce one line per successful driver
	// ("-dR"). Either may be nil.
	traceIn     func(string)
	traceReduce func(string)
}

// New wraps src (typically a pipeline.Pipeline) with the compounder.
func New(src Source, arena *token.Arena) *Compounder {
	return &Compounder{q: NewQueue(src, arena)}
}

// SetTrace registers the "-dL"/"-dR" listeners. Either may be nil.
func (c *Compounder) SetTrace(onEnter, onReduce func(string)) {
	c.traceIn = onEnter
	c.traceReduce = onReduce
}

// Next returns the next token: either a synthesized compound token from
// the first driver that matches the leading category, or the raw token if
// no driver applies or all of them fail.
func (c *Compounder) Next() token.Ref {
	lead := c.q.Next()
	cat := c.q.Category(lead)
	if c.traceIn != nil {
		c.traceIn(cat.Name() + " " + c.q.arena.Get(lead).Text)
	}

	candidates := dispatch[cat]
	if len(candidates) == 0 {
		return lead
	}

	c.q.PushBack(lead)
	for _, driver := range candidates {
		if result, ok := driver(c.q); ok {
			if c.traceReduce != nil {
				c.traceReduce(c.q.Category(result).Name())
			}
			return result
		}
	}
	return c.q.Next()
}
