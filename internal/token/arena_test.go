package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Arena_New_reusesFreedSlot(t *testing.T) {
	var a Arena

	first := a.New(A, "pa")
	a.Release(first)

	second := a.New(BAI, "zu")

	assert.Equal(t, first, second, "expected Release to make the slot reusable by New")
	assert.Equal(t, BAI, a.Get(second).Category)
	assert.Equal(t, "zu", a.Get(second).Text)
}

func Test_Arena_AddChild_Children_preservesOrder(t *testing.T) {
	var a Arena

	parent := a.New(Unknown, "")
	c1 := a.New(A, "pa")
	c2 := a.New(A, "re")
	c3 := a.New(A, "ci")

	a.AddChild(parent, c1)
	a.AddChild(parent, c2)
	a.AddChild(parent, c3)

	assert.Equal(t, []Ref{c1, c2, c3}, a.Children(parent))
	assert.Equal(t, parent, a.Parent(c2))
}

func Test_Arena_Release_doesNotTouchChildren(t *testing.T) {
	var a Arena

	parent := a.New(Unknown, "")
	child := a.New(A, "pa")
	a.AddChild(parent, child)

	a.Release(parent)

	assert.Equal(t, A, a.Get(child).Category, "Release must only free the node itself, not its children")
}

func Test_Arena_ReleaseTree_freesWholeSubtree(t *testing.T) {
	var a Arena

	parent := a.New(Unknown, "")
	child := a.New(A, "pa")
	a.AddChild(parent, child)

	a.ReleaseTree(parent)

	reused := a.New(BY, "y")
	assert.True(t, reused == parent || reused == child, "ReleaseTree should return both nodes to the free list")
}

func Test_Arena_Reset_clearsState(t *testing.T) {
	var a Arena
	a.New(A, "pa")
	a.New(A, "re")

	a.Reset()

	assert.Equal(t, 0, a.Len())
	fresh := a.New(A, "ci")
	assert.Equal(t, Ref(1), fresh)
}
