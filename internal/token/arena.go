package token

// Ref is an index into an Arena. The zero Ref is reserved as "no token";
// valid references start at 1, mirroring the reference parser's use of 0 as
// a null pointer sentinel for its token pool.
type Ref int

// Node is one token resident in an Arena: either a leaf lexed directly from
// source text, or an internal node assembled by absorption, gluing,
// compounding, or grammar reduction. Tree edges are indices into the owning
// Arena, never Go pointers, so that an entire subtree can be recycled by
// relinking free-list entries instead of relying on the garbage collector.
type Node struct {
	Category Category
	Text     string

	parent      Ref
	nextSibling Ref
	firstChild  Ref
	lastChild   Ref

	nextFree Ref
}

// Arena owns a pool of Nodes. The zero Arena is ready to use.
type Arena struct {
	nodes    []Node
	freeHead Ref
}

// New allocates a fresh leaf node of the given category and text, reusing a
// slot from the free list when one is available.
func (a *Arena) New(cat Category, text string) Ref {
	if a.freeHead != 0 {
		ref := a.freeHead
		n := &a.nodes[ref-1]
		a.freeHead = n.nextFree
		*n = Node{Category: cat, Text: text}
		return ref
	}

	a.nodes = append(a.nodes, Node{Category: cat, Text: text})
	return Ref(len(a.nodes))
}

// Get returns a pointer to the node at ref. Panics if ref is the zero Ref.
func (a *Arena) Get(ref Ref) *Node {
	return &a.nodes[ref-1]
}

// AddChild appends child as the last child of parent, maintaining the
// sibling linked list and its cached tail for O(1) append.
func (a *Arena) AddChild(parent, child Ref) {
	p := a.Get(parent)
	c := a.Get(child)
	c.parent = parent
	c.nextSibling = 0

	if p.lastChild == 0 {
		p.firstChild = child
		p.lastChild = child
		return
	}
	a.Get(p.lastChild).nextSibling = child
	p.lastChild = child
}

// Children returns the refs of all of parent's children, left to right.
func (a *Arena) Children(parent Ref) []Ref {
	var out []Ref
	for c := a.Get(parent).firstChild; c != 0; c = a.Get(c).nextSibling {
		out = append(out, c)
	}
	return out
}

// Parent returns the parent of ref, or 0 if it is a root.
func (a *Arena) Parent(ref Ref) Ref {
	return a.Get(ref).parent
}

// Release returns ref's slot to the free list. It does not recurse into
// ref's children: callers backtracking out of a failed compound attempt push
// leaf tokens back onto the input queue and release only the internal nodes
// that held them together (see the push-back invariant, spec section 4.8).
func (a *Arena) Release(ref Ref) {
	n := a.Get(ref)
	*n = Node{nextFree: a.freeHead}
	a.freeHead = ref
}

// ReleaseTree releases ref and every node reachable from it back to the free
// list, used when an entire synthesized subtree (not just its leaves) is
// being discarded.
func (a *Arena) ReleaseTree(ref Ref) {
	for _, c := range a.Children(ref) {
		a.ReleaseTree(c)
	}
	a.Release(ref)
}

// Reset discards all nodes and the free list, returning the arena to its
// zero state. Called at the start of every ParseString/ParseStdin call.
func (a *Arena) Reset() {
	a.nodes = a.nodes[:0]
	a.freeHead = 0
}

// Len reports the number of live slots currently allocated (including ones
// on the free list); used for the memory-accounting totals the top-level
// Parser reports alongside its tree.
func (a *Arena) Len() int {
	return len(a.nodes)
}
