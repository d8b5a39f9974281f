package viewport

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPathPushPop(t *testing.T) {
	p := NewPath()
	require.Equal(t, 0, p.Depth())
	_, _, ok := p.Pop()
	require.False(t, ok, "pop at root does nothing")

	p = p.Push(0).Push(2).Push(1)
	require.Equal(t, 3, p.Depth())

	leaf, ok := p.Leaf()
	require.True(t, ok)
	require.Equal(t, 1, leaf)

	sector, ok := p.SectorID()
	require.True(t, ok)
	require.Equal(t, 0, sector)

	app, ok := p.AppID()
	require.True(t, ok)
	require.Equal(t, 2, app)

	p, removed, ok := p.Pop()
	require.True(t, ok)
	require.Equal(t, 1, removed)
	require.Equal(t, 2, p.Depth())
}

func TestWindowID(t *testing.T) {
	win, ok := PathOf(0, 2, 1).WindowID()
	require.True(t, ok)
	require.Equal(t, 1, win)

	_, ok = PathOf(0, 2).WindowID()
	require.False(t, ok)
}

func TestTruncate(t *testing.T) {
	require.Equal(t, PathOf(0, 2), PathOf(0, 2, 1).Truncate(2))
	require.Equal(t, PathOf(0, 2), PathOf(0, 2).Truncate(2), "shallow paths are unchanged")
	require.Equal(t, 0, PathOf(0, 2).Truncate(0).Depth())
	require.Equal(t, 0, PathOf(0).Truncate(-1).Depth())
}

func TestPathImmutability(t *testing.T) {
	base := PathOf(0, 1)
	extended := base.Push(5)

	require.Equal(t, 2, base.Depth())
	require.Equal(t, 3, extended.Depth())
}

func TestCommonAncestorDepth(t *testing.T) {
	require.Equal(t, 2, PathOf(0, 1, 2).CommonAncestorDepth(PathOf(0, 1, 3)))
	require.Equal(t, 0, PathOf(0, 1).CommonAncestorDepth(PathOf(1, 1)))
	require.Equal(t, 1, PathOf(0).CommonAncestorDepth(PathOf(0, 2)))
	require.Equal(t, 0, NewPath().CommonAncestorDepth(PathOf(3)))
}

func TestTransitionTo(t *testing.T) {
	// From app 1 in sector 0 to app 2 in sector 3:
	// out to root, then in twice
	outs, ins := PathOf(0, 1).TransitionTo(PathOf(3, 2))
	require.Equal(t, 2, outs)
	require.Equal(t, []int{3, 2}, ins)

	// Sibling app within the same sector
	outs, ins = PathOf(0, 1).TransitionTo(PathOf(0, 2))
	require.Equal(t, 1, outs)
	require.Equal(t, []int{2}, ins)

	// Already there
	outs, ins = PathOf(0, 1).TransitionTo(PathOf(0, 1))
	require.Equal(t, 0, outs)
	require.Empty(t, ins)

	// Straight descent from root
	outs, ins = NewPath().TransitionTo(PathOf(2, 0, 1))
	require.Equal(t, 0, outs)
	require.Equal(t, []int{2, 0, 1}, ins)
}

func TestParsePath(t *testing.T) {
	p, err := ParsePath("0/2/1")
	require.NoError(t, err)
	require.Equal(t, PathOf(0, 2, 1), p)

	p, err = ParsePath(" /3/ ")
	require.NoError(t, err)
	require.Equal(t, PathOf(3), p)

	p, err = ParsePath("")
	require.NoError(t, err)
	require.Equal(t, 0, p.Depth())

	_, err = ParsePath("0/x")
	require.Error(t, err)

	_, err = ParsePath("0/1/2/3")
	require.Error(t, err)

	_, err = ParsePath("-1")
	require.Error(t, err)
}

func TestPathString(t *testing.T) {
	require.Equal(t, "[ROOT]", NewPath().String())
	require.Equal(t, "[0 > 2 > 1]", PathOf(0, 2, 1).String())
}
