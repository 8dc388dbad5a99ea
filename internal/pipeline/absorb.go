package pipeline

import "github.com/dekarrin/valsiparse/internal/token"

// fabsorb absorbs a chain of leading BAhE emphasizers into the token that
// follows them (spec section 4.5). The wrapping parent takes the category
// of the innermost following token, exactly like the reference's "wrap
// both under a new token whose category equals the following token's
// category".
func (p *Pipeline) fabsorb() token.Ref {
	ref := p.withSelmao()
	if p.arena.Get(ref).Category != token.BAhE {
		return ref
	}

	bahe := ref
	inner := p.fabsorb()
	parent := p.arena.New(p.arena.Get(inner).Category, "")
	p.arena.AddChild(parent, bahe)
	p.arena.AddChild(parent, inner)
	return parent
}

// lerfu absorbs a following BU into the preceding host, reclassifying the
// pair as a BY letteral (spec section 4.5).
func (p *Pipeline) lerfu() token.Ref {
	host := p.fabsorb()
	lookahead := p.fabsorb()

	if p.arena.Get(lookahead).Category != token.BU {
		p.pushbackLerfu = append(p.pushbackLerfu, lookahead)
		return host
	}

	parent := p.arena.New(token.BY, "")
	p.arena.AddChild(parent, host)
	p.arena.AddChild(parent, lookahead)
	return parent
}

func (p *Pipeline) lerfuNext() token.Ref {
	if len(p.pushbackLerfu) > 0 {
		ref := p.pushbackLerfu[0]
		p.pushbackLerfu = p.pushbackLerfu[1:]
		return ref
	}
	return p.lerfu()
}

// absorb attaches a run of trailing indicator tokens (UI, CAI, Y, DAhO,
// FUhE, FUhO, and a NAI immediately following an absorbed UI/CAI) as
// children of a parent that wraps the host (spec section 4.5).
func (p *Pipeline) absorb() token.Ref {
	host := p.lerfuNext()

	var children []token.Ref
	var lastAbsorbedUIorCAI bool

	for {
		look := p.lerfuNext()
		cat := p.arena.Get(look).Category

		absorbable := indicatorCategories[cat]
		if !absorbable && cat == token.NAI && lastAbsorbedUIorCAI {
			absorbable = true
		}
		if !absorbable {
			p.pushbackLerfu = append([]token.Ref{look}, p.pushbackLerfu...)
			break
		}

		children = append(children, look)
		lastAbsorbedUIorCAI = cat == token.UI || cat == token.CAI
	}

	if len(children) == 0 {
		return host
	}

	parent := p.arena.New(p.arena.Get(host).Category, "")
	p.arena.AddChild(parent, host)
	for _, c := range children {
		p.arena.AddChild(parent, c)
	}
	return parent
}
