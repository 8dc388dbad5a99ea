// Package treedump renders a parsed token tree for the CLI's "-t"
// (tab-separated node dump) and "-p" (Prolog-term form) output modes, with
// optional single-child collapsing and a max-width wrap pass (spec section
// 6's "-f" and "-m N" flags).
package treedump

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dekarrin/rosed"
	"github.com/dekarrin/valsiparse/internal/token"
)

// Options controls the two renderers' output shape.
type Options struct {
	// KeepSingleChild disables single-child collapsing (the "-f" flag).
	KeepSingleChild bool

	// MaxLineWidth wraps output at N columns. N<=0 means unlimited (the
	// "-m N" flag).
	MaxLineWidth int
}

// effectiveRoot walks down through single-child nodes until it reaches one
// with zero or 2+ children, unless KeepSingleChild is set.
func effectiveChildren(arena *token.Arena, ref token.Ref, opts Options) []token.Ref {
	children := arena.Children(ref)
	if opts.KeepSingleChild {
		return children
	}
	for len(children) == 1 {
		only := children[0]
		grandchildren := arena.Children(only)
		if len(grandchildren) == 0 {
			return children
		}
		children = grandchildren
		ref = only
	}
	return children
}

func label(arena *token.Arena, ref token.Ref) string {
	n := arena.Get(ref)
	if n.Text == "" {
		return n.Category.Name()
	}
	return fmt.Sprintf("%s(%s)", n.Category.Name(), n.Text)
}

func wrap(s string, opts Options) string {
	if opts.MaxLineWidth <= 0 {
		return s
	}
	return rosed.Edit(s).Wrap(opts.MaxLineWidth).String()
}

// Tab renders root as a TAB-separated dump: one line per node, indentation
// level as a column of tabs before the node's own label.
func Tab(arena *token.Arena, root token.Ref, opts Options) string {
	var sb strings.Builder
	var walk func(ref token.Ref, depth int)
	walk = func(ref token.Ref, depth int) {
		sb.WriteString(strings.Repeat("\t", depth))
		sb.WriteString(label(arena, ref))
		sb.WriteString("\n")
		for _, c := range effectiveChildren(arena, ref, opts) {
			walk(c, depth+1)
		}
	}
	walk(root, 0)
	return wrap(sb.String(), opts)
}

// Prolog renders root as a Prolog-term: a leaf is its own functor name (or
// functor(Text) when it carries lexed text), an internal node is
// functor(child1, child2, ...).
func Prolog(arena *token.Arena, root token.Ref, opts Options) string {
	var sb strings.Builder
	var walk func(ref token.Ref)
	walk = func(ref token.Ref) {
		children := effectiveChildren(arena, ref, opts)
		n := arena.Get(ref)
		sb.WriteString(n.Category.Name())
		if len(children) == 0 {
			if n.Text != "" {
				sb.WriteString("(")
				sb.WriteString(strconv.Quote(n.Text))
				sb.WriteString(")")
			}
			return
		}
		sb.WriteString("(")
		for i, c := range children {
			if i > 0 {
				sb.WriteString(", ")
			}
			walk(c)
		}
		sb.WriteString(")")
	}
	walk(root)
	sb.WriteString(".")
	return wrap(sb.String(), opts)
}
