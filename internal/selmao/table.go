// Package selmao assigns a category to a cmavo word by consulting the
// skeleton table: a two-level lookup keyed first by the cmavo's leading
// consonant (if any) and then by the vowel pattern that follows it. This is
// a literal port of the reference parser's Constants.cmavo table (selmao.i),
// which in turn encodes the official cmavo-to-selma'o assignment.
package selmao

import "github.com/dekarrin/valsiparse/internal/token"

const unk = token.Unknown
const xai = token.Experimental

// consonantGroup maps a lowercase consonant to its row index in skeleton, or
// 0 if the letter starts no consonant-initial cmavo group (i.e. it's a
// vowel, or "h"/"q"/"w", which never begin a cmavo).
var consonantGroup = [26]int{
	0,  // a
	1,  // b
	2,  // c
	3,  // d
	0,  // e
	4,  // f
	5,  // g
	0,  // h
	0,  // i
	6,  // j
	7,  // k
	8,  // l
	9,  // m
	10, // n
	0,  // o
	11, // p
	0,  // q
	12, // r
	13, // s
	14, // t
	0,  // u
	15, // v
	0,  // w
	16, // x
	0,  // y
	17, // z
}

// Vowel-pattern codes, as produced by VowelCode. These index the 35-wide
// per-consonant rows of skeleton; codes 35-45 (IA..YhY) are reachable only
// from row 0 (the vowel-initial row), since they all begin with a vowel
// other than the row's implied leading consonant.
const (
	vA = iota
	vAhA
	vAhE
	vAhI
	vAhO
	vAhU
	vAI
	vAU
	vE
	vEhA
	vEhE
	vEhI
	vEhO
	vEhU
	vEI
	vI
	vIhA
	vIhE
	vIhI
	vIhO
	vIhU
	vO
	vOhA
	vOhE
	vOhI
	vOhO
	vOhU
	vOI
	vU
	vUhA
	vUhE
	vUhI
	vUhO
	vUhU
	vY
	vIA
	vIE
	vII
	vIO
	vIU
	vUA
	vUE
	vUI
	vUO
	vUU
	vYhY
)

// skeleton[0] is the vowel-initial (no leading consonant) row; skeleton[i]
// for i in 1..17 is the row for consonantGroup value i.
var skeleton = [18][46]token.Category{
	vowelRow,
	bRow,
	cRow,
	dRow,
	fRow,
	gRow,
	jRow,
	kRow,
	lRow,
	mRow,
	nRow,
	pRow,
	rRow,
	sRow,
	tRow,
	vRow,
	xRow,
	zRow,
}
