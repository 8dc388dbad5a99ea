package selmao

import (
	"strings"

	"github.com/dekarrin/valsiparse/internal/token"
)

// VowelCode classifies the vowel-cluster prefix of text (the cmavo with any
// leading consonant already stripped) into one of the codes the skeleton
// rows are indexed by. It returns token.Unknown if text does not start with
// one of the recognized vowel sequences.
//
// This is a direct port of the reference parser's get_vowels, which peeks
// at up to four characters and returns as soon as the pattern is
// determined; diphthongs (ai, au, ei, oi) and the five "'"-hiatus sequences
// per vowel are distinguished by a short run of character comparisons
// rather than a loop, matching the original.
func VowelCode(text string) token.Category {
	var c0, c1, c2, c3 byte
	var has1, has2, has3 bool
	if len(text) > 0 {
		c0 = text[0]
	} else {
		return token.Unknown
	}
	if len(text) > 1 {
		c1 = text[1]
		has1 = true
	}
	if len(text) > 2 {
		c2 = text[2]
		has2 = true
	}
	if len(text) > 3 {
		c3 = text[3]
		has3 = true
	}

	hiatus := func(codes [5]int) token.Category {
		if !has1 || c1 != '\'' {
			return token.Unknown
		}
		if !has2 {
			return token.Unknown
		}
		var idx int
		switch c2 {
		case 'a':
			idx = 0
		case 'e':
			idx = 1
		case 'i':
			idx = 2
		case 'o':
			idx = 3
		case 'u':
			idx = 4
		default:
			return token.Unknown
		}
		if has3 {
			return token.Unknown
		}
		return token.Category(codes[idx])
	}

	switch c0 {
	case 'a':
		switch {
		case !has1:
			return token.Category(vA)
		case c1 == '\'':
			return hiatus([5]int{vAhA, vAhE, vAhI, vAhO, vAhU})
		case c1 == 'i':
			if has2 {
				return token.Unknown
			}
			return token.Category(vAI)
		case c1 == 'u':
			if has2 {
				return token.Unknown
			}
			return token.Category(vAU)
		default:
			return token.Unknown
		}
	case 'e':
		switch {
		case !has1:
			return token.Category(vE)
		case c1 == '\'':
			return hiatus([5]int{vEhA, vEhE, vEhI, vEhO, vEhU})
		case c1 == 'i':
			if has2 {
				return token.Unknown
			}
			return token.Category(vEI)
		default:
			return token.Unknown
		}
	case 'i':
		switch {
		case !has1:
			return token.Category(vI)
		case c1 == '\'':
			return hiatus([5]int{vIhA, vIhE, vIhI, vIhO, vIhU})
		case c1 == 'a':
			if has2 {
				return token.Unknown
			}
			return token.Category(vIA)
		case c1 == 'e':
			if has2 {
				return token.Unknown
			}
			return token.Category(vIE)
		case c1 == 'i':
			if has2 {
				return token.Unknown
			}
			return token.Category(vII)
		case c1 == 'o':
			if has2 {
				return token.Unknown
			}
			return token.Category(vIO)
		case c1 == 'u':
			if has2 {
				return token.Unknown
			}
			return token.Category(vIU)
		default:
			return token.Unknown
		}
	case 'o':
		switch {
		case !has1:
			return token.Category(vO)
		case c1 == '\'':
			return hiatus([5]int{vOhA, vOhE, vOhI, vOhO, vOhU})
		case c1 == 'i':
			if has2 {
				return token.Unknown
			}
			return token.Category(vOI)
		default:
			return token.Unknown
		}
	case 'u':
		switch {
		case !has1:
			return token.Category(vU)
		case c1 == '\'':
			return hiatus([5]int{vUhA, vUhE, vUhI, vUhO, vUhU})
		case c1 == 'a':
			if has2 {
				return token.Unknown
			}
			return token.Category(vUA)
		case c1 == 'e':
			if has2 {
				return token.Unknown
			}
			return token.Category(vUE)
		case c1 == 'i':
			if has2 {
				return token.Unknown
			}
			return token.Category(vUI)
		case c1 == 'o':
			if has2 {
				return token.Unknown
			}
			return token.Category(vUO)
		case c1 == 'u':
			if has2 {
				return token.Unknown
			}
			return token.Category(vUU)
		default:
			return token.Unknown
		}
	case 'y':
		switch {
		case !has1:
			return token.Category(vY)
		case text != "y'y":
			return token.Category(vYhY)
		default:
			return token.Unknown
		}
	default:
		return token.Unknown
	}
}

// Lookup assigns a selma'o category to the lowercase cmavo text. If text
// begins with a consonant, that consonant selects the skeleton row and the
// remaining suffix supplies the vowel code; otherwise the whole word is
// looked up against the vowel-initial row. Unrecognized cmavo return
// token.UI (selma'o UI is the reference parser's catch-all for unparsed
// attitudinals), and cmavo recognized only as experimental (row x,
// selma'o XAI) are likewise downgraded to UI.
//
// warn, if non-nil, is called with a human-readable diagnostic whenever a
// word is unknown or experimental, mirroring the reference parser's stderr
// notices.
func Lookup(text string, warn func(string)) token.Category {
	cat := rawLookup(text)

	switch cat {
	case token.Unknown:
		if warn != nil {
			warn("unknown cmavo " + text + "; selma'o UI assumed")
		}
		return token.UI
	case token.Experimental:
		if warn != nil {
			warn("experimental cmavo " + text + "; selma'o UI assumed")
		}
		return token.UI
	default:
		return cat
	}
}

// IsKnownCmavo reports whether text resolves to a selma'o other than the
// UI fallback, without emitting a warning. Used by the morphological
// classifier to decide whether a word should be treated as cmavo at all.
func IsKnownCmavo(text string) bool {
	return rawLookup(strings.ToLower(text)) != token.Unknown
}

// rawLookup performs the skeleton-table lookup without collapsing Unknown
// or Experimental to UI, so callers can distinguish "no such cmavo" from a
// recognized-but-downgraded one.
func rawLookup(text string) token.Category {
	row := 0
	rest := text
	if len(text) > 0 && text[0] >= 'a' && text[0] <= 'z' {
		if g := consonantGroup[text[0]-'a']; g != 0 {
			row = g
			rest = text[1:]
		}
	}

	code := VowelCode(rest)
	if row != 0 && code != token.Unknown && int(code) > vY {
		code = token.Unknown
	}

	if code == token.Unknown {
		return token.Unknown
	}
	return skeleton[row][int(code)]
}
