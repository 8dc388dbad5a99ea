package pipeline

import "github.com/dekarrin/valsiparse/internal/token"

// filter implements the quotation state machine of spec section 4.3. It
// consumes rawWord tokens and retags the ones that fall inside a
// zo/zoi/la'o/lo'u quotation, assembling opaque any_word / any_words /
// anything containers as it goes. pendingOut holds tokens already read
// and categorized but not yet returned to the caller (the ZOI end-state
// emits the anything-parent and the any_word delimiter as two separate
// calls).
func (p *Pipeline) filter() token.Ref {
	if len(p.pendingOut) > 0 {
		ref := p.pendingOut[0]
		p.pendingOut = p.pendingOut[1:]
		return ref
	}

	for {
		ref := p.rawWord()
		n := p.arena.Get(ref)

		if n.Category == token.EndOfText {
			p.mode = modeNormal
			return ref
		}

		switch p.mode {
		case modeNormal:
			switch n.Text {
			case "zo":
				p.mode = modeZO
			case "zoi", "la'o":
				p.mode = modeZOIStart
			case "lo'u":
				p.mode = modeLOhU
				p.quoteHost = 0
				p.sawZoInLohu = false
			}
			return ref

		case modeZO:
			n.Category = token.AnyWord
			p.mode = modeNormal
			return ref

		case modeZOIStart:
			n.Category = token.AnyWord
			p.delimText = n.Text
			p.quoteHost = p.arena.New(token.Anything, "")
			p.mode = modeZOIString
			return ref

		case modeZOIString:
			if n.Text == p.delimText {
				n.Category = token.AnyWord
				parent := p.quoteHost
				p.mode = modeNormal
				p.pendingOut = append(p.pendingOut, ref)
				return parent
			}
			n.Category = token.AnyWord
			p.arena.AddChild(p.quoteHost, ref)
			// stay in modeZOIString, loop for next raw word

		case modeLOhU:
			if n.Text == "le'u" && !p.sawZoInLohu {
				if p.quoteHost == 0 {
					p.quoteHost = p.arena.New(token.AnyWords, "")
				}
				n.Category = token.AnyWord
				parent := p.quoteHost
				p.mode = modeNormal
				p.pendingOut = append(p.pendingOut, ref)
				return parent
			}
			if p.quoteHost == 0 {
				p.quoteHost = p.arena.New(token.AnyWords, "")
			}
			p.sawZoInLohu = n.Text == "zo"
			n.Category = token.AnyWord
			p.arena.AddChild(p.quoteHost, ref)
			// stay in modeLOhU

		default:
			return ref
		}
	}
}
