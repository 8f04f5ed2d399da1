package datastructure

import (
	"testing"

	"github.com/lintang-b-s/mazex/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct{ x, y int }

func newLinkedGraph() *Graph[point, bool] {
	return NewGraph[point, bool](WithEdgeFactory[point, bool](func() bool { return true }))
}

func TestGraphIdentityIsNotPayload(t *testing.T) {
	g := newLinkedGraph()
	a := g.AddNode(point{1, 1})
	b := g.AddNode(point{1, 1})

	assert.NotSame(t, a, b)
	assert.NotEqual(t, a.GetID(), b.GetID())
	assert.Equal(t, 2, g.NumberOfNodes())
	assert.False(t, g.AreAdjacent(a, b))
}

func TestGraphAddExistingNodeIsIdempotent(t *testing.T) {
	g := newLinkedGraph()
	a := g.AddNode(point{0, 0})

	got, err := g.AddExistingNode(a)
	require.NoError(t, err)
	assert.Same(t, a, got)
	assert.Equal(t, 1, g.NumberOfNodes())

	detached := NewNode(point{5, 5})
	got, err = g.AddExistingNode(detached)
	require.NoError(t, err)
	assert.Same(t, detached, got)
	assert.True(t, g.Contains(detached))
	assert.Equal(t, 2, g.NumberOfNodes())

	other := newLinkedGraph()
	other.AddNode(point{9, 9})
	other.AddNode(point{9, 9})
	foreign := other.AddNode(point{9, 9})
	_, err = g.AddExistingNode(foreign)
	assert.ErrorIs(t, err, util.ErrBadParamInput)
}

func TestGraphEdgesAreSymmetric(t *testing.T) {
	g := newLinkedGraph()
	a := g.AddNode(point{0, 0})
	b := g.AddNode(point{1, 0})
	c := g.AddNode(point{2, 0})

	ab, err := g.LinkNodes(a, b)
	require.NoError(t, err)
	_, err = g.AddEdge(b, c, false)
	require.NoError(t, err)

	aEdges, err := g.GetEdges(a)
	require.NoError(t, err)
	bEdges, err := g.GetEdges(b)
	require.NoError(t, err)
	assert.Contains(t, aEdges, ab)
	assert.Contains(t, bEdges, ab)
	assert.Len(t, bEdges, 2)

	nbrs, err := g.GetNeighbors(b)
	require.NoError(t, err)
	assert.ElementsMatch(t, []*Node[point]{a, c}, nbrs)

	link, ok := g.GetLinkEdge(b, a)
	require.True(t, ok)
	assert.Same(t, ab, link)
	assert.True(t, link.GetValue())
	assert.Same(t, b, link.Other(a))

	_, ok = g.GetLinkEdge(a, c)
	assert.False(t, ok)
	assert.Equal(t, 2, g.NumberOfEdges())
	assert.Len(t, g.Edges(), 2)
}

func TestGraphErrors(t *testing.T) {
	g := newLinkedGraph()
	a := g.AddNode(point{0, 0})
	stranger := NewNode(point{7, 7})

	testCases := []struct {
		name string
		run  func() error
		code error
	}{
		{
			name: "neighbors of absent node",
			run:  func() error { _, err := g.GetNeighbors(stranger); return err },
			code: util.ErrNotFound,
		},
		{
			name: "edges of absent node",
			run:  func() error { _, err := g.GetEdges(stranger); return err },
			code: util.ErrNotFound,
		},
		{
			name: "link absent node",
			run:  func() error { _, err := g.LinkNodes(a, stranger); return err },
			code: util.ErrBadParamInput,
		},
		{
			name: "self loop",
			run:  func() error { _, err := g.AddEdge(a, a, true); return err },
			code: util.ErrBadParamInput,
		},
		{
			name: "remove absent node",
			run:  func() error { return g.RemoveNode(stranger) },
			code: util.ErrNotFound,
		},
		{
			name: "link without factory",
			run: func() error {
				bare := NewGraph[point, bool]()
				x := bare.AddNode(point{0, 0})
				y := bare.AddNode(point{0, 1})
				_, err := bare.LinkNodes(x, y)
				return err
			},
			code: util.ErrInvalidState,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.run(), tt.code)
		})
	}

	assert.Equal(t, 0, g.NumberOfEdges())
}

func TestGraphRemoveNodeDetachesEdges(t *testing.T) {
	g := newLinkedGraph()
	a := g.AddNode(point{0, 0})
	b := g.AddNode(point{1, 0})
	c := g.AddNode(point{2, 0})
	_, err := g.LinkNodes(a, b)
	require.NoError(t, err)
	_, err = g.LinkNodes(b, c)
	require.NoError(t, err)

	require.NoError(t, g.RemoveNode(b))
	assert.False(t, g.Contains(b))
	assert.Equal(t, 2, g.NumberOfNodes())
	assert.Equal(t, 0, g.NumberOfEdges())

	aEdges, err := g.GetEdges(a)
	require.NoError(t, err)
	assert.Empty(t, aEdges)

	// re-adding keeps the old handle
	id := b.GetID()
	_, err = g.AddExistingNode(b)
	require.NoError(t, err)
	assert.Equal(t, id, b.GetID())
	assert.False(t, g.AreAdjacent(a, b))
}

func TestGraphRemoveEdge(t *testing.T) {
	g := newLinkedGraph()
	a := g.AddNode(point{0, 0})
	b := g.AddNode(point{1, 0})
	e, err := g.LinkNodes(a, b)
	require.NoError(t, err)

	require.NoError(t, g.RemoveEdge(e))
	assert.False(t, g.AreAdjacent(a, b))
	assert.ErrorIs(t, g.RemoveEdge(e), util.ErrNotFound)
	assert.Empty(t, g.Edges())
}
