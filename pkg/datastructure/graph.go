package datastructure

import (
	"math"

	"github.com/lintang-b-s/mazex/pkg/util"
)

type Index uint32

const (
	INVALID_INDEX Index = math.MaxUint32
)

// Node owns a mutable payload. Its identity is the arena handle assigned by the graph
// that holds it, never the payload: two nodes with equal values are still distinct.
type Node[T any] struct {
	id    Index
	value T
}

// NewNode creates a node that is not yet a member of any graph.
func NewNode[T any](value T) *Node[T] {
	return &Node[T]{id: INVALID_INDEX, value: value}
}

func (n *Node[T]) GetID() Index {
	return n.id
}

func (n *Node[T]) GetValue() T {
	return n.value
}

func (n *Node[T]) SetValue(value T) {
	n.value = value
}

// Edge joins two node handles (unordered) and owns a mutable payload.
type Edge[N any, E any] struct {
	id    Index
	node1 *Node[N]
	node2 *Node[N]
	value E
}

func (e *Edge[N, E]) GetID() Index {
	return e.id
}

func (e *Edge[N, E]) GetNode1() *Node[N] {
	return e.node1
}

func (e *Edge[N, E]) GetNode2() *Node[N] {
	return e.node2
}

// Other returns the endpoint opposite to n.
func (e *Edge[N, E]) Other(n *Node[N]) *Node[N] {
	if e.node1 == n {
		return e.node2
	}
	return e.node1
}

func (e *Edge[N, E]) GetValue() E {
	return e.value
}

func (e *Edge[N, E]) SetValue(value E) {
	e.value = value
}

// Graph is an undirected node/edge store. Nodes and edges live in arenas addressed by
// Index; removed slots are left nil and never reused, so handles stay stable.
type Graph[N any, E any] struct {
	nodes     []*Node[N]
	adjacency [][]*Edge[N, E] // adjacency[nodeID] = incident edges
	edges     []*Edge[N, E]

	numNodes int
	numEdges int

	edgeFactory func() E
}

type GraphOption[N any, E any] func(g *Graph[N, E])

// WithEdgeFactory sets the payload factory used by LinkNodes.
func WithEdgeFactory[N any, E any](factory func() E) GraphOption[N, E] {
	return func(g *Graph[N, E]) {
		g.edgeFactory = factory
	}
}

func WithCapacity[N any, E any](nodes, edges int) GraphOption[N, E] {
	return func(g *Graph[N, E]) {
		g.nodes = make([]*Node[N], 0, nodes)
		g.adjacency = make([][]*Edge[N, E], 0, nodes)
		g.edges = make([]*Edge[N, E], 0, edges)
	}
}

func NewGraph[N any, E any](opts ...GraphOption[N, E]) *Graph[N, E] {
	g := &Graph[N, E]{
		nodes:     make([]*Node[N], 0),
		adjacency: make([][]*Edge[N, E], 0),
		edges:     make([]*Edge[N, E], 0),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Graph[N, E]) NumberOfNodes() int {
	return g.numNodes
}

func (g *Graph[N, E]) NumberOfEdges() int {
	return g.numEdges
}

// Contains reports whether n is currently a member of g.
func (g *Graph[N, E]) Contains(n *Node[N]) bool {
	return n != nil && n.id != INVALID_INDEX && int(n.id) < len(g.nodes) && g.nodes[n.id] == n
}

// AddNode wraps value in a new node and adds it to the graph.
func (g *Graph[N, E]) AddNode(value N) *Node[N] {
	n := NewNode(value)
	g.insertNode(n)
	return n
}

// AddExistingNode adds n to the graph. Adding a node that is already a member is a no-op.
// A detached node (from NewNode) gets a fresh handle; a node previously removed from this
// graph gets its old handle back.
func (g *Graph[N, E]) AddExistingNode(n *Node[N]) (*Node[N], error) {
	if n == nil {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "node must not be nil")
	}
	if g.Contains(n) {
		return n, nil
	}
	if n.id == INVALID_INDEX {
		g.insertNode(n)
		return n, nil
	}
	if int(n.id) < len(g.nodes) && g.nodes[n.id] == nil {
		g.nodes[n.id] = n
		g.adjacency[n.id] = make([]*Edge[N, E], 0, 4)
		g.numNodes++
		return n, nil
	}
	return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "node %d belongs to another graph", n.id)
}

func (g *Graph[N, E]) insertNode(n *Node[N]) {
	n.id = Index(len(g.nodes))
	g.nodes = append(g.nodes, n)
	g.adjacency = append(g.adjacency, make([]*Edge[N, E], 0, 4))
	g.numNodes++
}

// RemoveNode removes n and every edge incident to it.
func (g *Graph[N, E]) RemoveNode(n *Node[N]) error {
	if !g.Contains(n) {
		return util.WrapErrorf(nil, util.ErrNotFound, "node is not part of the graph")
	}
	incident := make([]*Edge[N, E], len(g.adjacency[n.id]))
	copy(incident, g.adjacency[n.id])
	for _, e := range incident {
		g.detachEdge(e)
	}
	g.nodes[n.id] = nil
	g.adjacency[n.id] = nil
	g.numNodes--
	return nil
}

// AddEdge joins n1 and n2 with a new edge carrying value.
func (g *Graph[N, E]) AddEdge(n1, n2 *Node[N], value E) (*Edge[N, E], error) {
	if !g.Contains(n1) || !g.Contains(n2) {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput,
			"both nodes must be already part of the graph to be able to link them")
	}
	if n1 == n2 {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "self loops are not allowed (node %d)", n1.id)
	}

	e := &Edge[N, E]{
		id:    Index(len(g.edges)),
		node1: n1,
		node2: n2,
		value: value,
	}
	g.edges = append(g.edges, e)
	g.adjacency[n1.id] = append(g.adjacency[n1.id], e)
	g.adjacency[n2.id] = append(g.adjacency[n2.id], e)
	g.numEdges++
	return e, nil
}

// LinkNodes joins n1 and n2 with an edge whose payload comes from the edge factory.
func (g *Graph[N, E]) LinkNodes(n1, n2 *Node[N]) (*Edge[N, E], error) {
	if g.edgeFactory == nil {
		return nil, util.WrapErrorf(nil, util.ErrInvalidState,
			"to use LinkNodes you need to provide a valid edge factory")
	}
	return g.AddEdge(n1, n2, g.edgeFactory())
}

// RemoveEdge detaches e from both endpoints.
func (g *Graph[N, E]) RemoveEdge(e *Edge[N, E]) error {
	if e == nil || int(e.id) >= len(g.edges) || g.edges[e.id] != e {
		return util.WrapErrorf(nil, util.ErrNotFound, "edge is not part of the graph")
	}
	g.detachEdge(e)
	return nil
}

func (g *Graph[N, E]) detachEdge(e *Edge[N, E]) {
	for _, n := range []*Node[N]{e.node1, e.node2} {
		if !g.Contains(n) {
			continue
		}
		list := g.adjacency[n.id]
		for i, other := range list {
			if other == e {
				g.adjacency[n.id] = append(list[:i], list[i+1:]...)
				break
			}
		}
	}
	g.edges[e.id] = nil
	g.numEdges--
}

// GetEdges returns a copy of the edges incident to n.
func (g *Graph[N, E]) GetEdges(n *Node[N]) ([]*Edge[N, E], error) {
	if !g.Contains(n) {
		return nil, util.WrapErrorf(nil, util.ErrNotFound, "given node is not part of the graph")
	}
	out := make([]*Edge[N, E], len(g.adjacency[n.id]))
	copy(out, g.adjacency[n.id])
	return out, nil
}

// GetNeighbors returns the nodes sharing an edge with n, regardless of edge payload.
func (g *Graph[N, E]) GetNeighbors(n *Node[N]) ([]*Node[N], error) {
	if !g.Contains(n) {
		return nil, util.WrapErrorf(nil, util.ErrNotFound, "given node is not part of the graph")
	}
	out := make([]*Node[N], 0, len(g.adjacency[n.id]))
	for _, e := range g.adjacency[n.id] {
		out = append(out, e.Other(n))
	}
	return out, nil
}

// ForEdgesOf calls handle for every edge incident to n. n must be a member.
func (g *Graph[N, E]) ForEdgesOf(n *Node[N], handle func(e *Edge[N, E], other *Node[N])) {
	for _, e := range g.adjacency[n.id] {
		handle(e, e.Other(n))
	}
}

func (g *Graph[N, E]) AreAdjacent(n1, n2 *Node[N]) bool {
	_, ok := g.GetLinkEdge(n1, n2)
	return ok
}

// GetLinkEdge returns the edge directly joining n1 and n2.
func (g *Graph[N, E]) GetLinkEdge(n1, n2 *Node[N]) (*Edge[N, E], bool) {
	if !g.Contains(n1) || !g.Contains(n2) {
		return nil, false
	}
	// scan the shorter list
	a, b := n1, n2
	if len(g.adjacency[b.id]) < len(g.adjacency[a.id]) {
		a, b = b, a
	}
	for _, e := range g.adjacency[a.id] {
		if e.Other(a) == b {
			return e, true
		}
	}
	return nil, false
}

// Nodes returns the member nodes ordered by handle.
func (g *Graph[N, E]) Nodes() []*Node[N] {
	out := make([]*Node[N], 0, g.numNodes)
	for _, n := range g.nodes {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}

// Edges returns every edge exactly once, ordered by handle.
func (g *Graph[N, E]) Edges() []*Edge[N, E] {
	out := make([]*Edge[N, E], 0, g.numEdges)
	for _, e := range g.edges {
		if e != nil {
			out = append(out, e)
		}
	}
	return out
}
