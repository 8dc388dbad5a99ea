package pipeline

import "github.com/dekarrin/valsiparse/internal/token"

// absorbNext drains glue's own pushback before asking absorb for a fresh
// token, mirroring lerfuNext one stage up.
func (p *Pipeline) absorbNext() token.Ref {
	if len(p.pushbackGlue) > 0 {
		ref := p.pushbackGlue[0]
		p.pushbackGlue = p.pushbackGlue[1:]
		return ref
	}
	return p.absorb()
}

// glue joins a host and a following token across one or more ZEI markers
// into a synthesized BRIVLA, repeating while ZEI keeps following (spec
// section 4.6).
func (p *Pipeline) glue() token.Ref {
	host := p.absorbNext()

	for {
		look := p.absorbNext()
		if p.arena.Get(look).Category != token.ZEI {
			p.pushbackGlue = append([]token.Ref{look}, p.pushbackGlue...)
			return host
		}

		next := p.absorbNext()
		parent := p.arena.New(token.BRIVLA, "")
		p.arena.AddChild(parent, host)
		p.arena.AddChild(parent, look)
		p.arena.AddChild(parent, next)
		host = parent
	}
}
