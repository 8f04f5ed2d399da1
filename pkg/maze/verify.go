package maze

import (
	da "github.com/lintang-b-s/mazex/pkg/datastructure"
)

// Passages counts the open (non-wall) edges.
func Passages[N CellData, E WallData](g *Grid[N, E]) int {
	count := 0
	for _, e := range g.graph.Edges() {
		if !e.GetValue().IsWall() {
			count++
		}
	}
	return count
}

// HopDistances runs a breadth-first search over open edges from src and returns the hop
// count to every reachable node, keyed by node handle.
func HopDistances[N CellData, E WallData](g *Grid[N, E], src *da.Node[N]) map[da.Index]int {
	dist := map[da.Index]int{src.GetID(): 0}
	queue := []*da.Node[N]{src}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		g.ForPassagesOf(u, func(v *da.Node[N]) {
			if _, seen := dist[v.GetID()]; seen {
				return
			}
			dist[v.GetID()] = dist[u.GetID()] + 1
			queue = append(queue, v)
		})
	}
	return dist
}

// Reachable counts the cells reachable from src through open edges, src included.
func Reachable[N CellData, E WallData](g *Grid[N, E], src *da.Node[N]) int {
	return len(HopDistances(g, src))
}

// ShortestHops is the breadth-first distance between a and b, or -1 if b is unreachable.
func ShortestHops[N CellData, E WallData](g *Grid[N, E], a, b *da.Node[N]) int {
	d, ok := HopDistances(g, a)[b.GetID()]
	if !ok {
		return -1
	}
	return d
}

// IsPerfect reports whether the open edges form a spanning tree of the grid: exactly W·H-1
// passages and every cell reachable from the start.
func IsPerfect[N CellData, E WallData](g *Grid[N, E]) bool {
	cells := g.width * g.height
	return Passages(g) == cells-1 && Reachable(g, g.StartNode()) == cells
}

// IsWalkable reports whether every consecutive pair in path shares an open edge.
func IsWalkable[N CellData, E WallData](g *Grid[N, E], path []*da.Node[N]) bool {
	for i := 1; i < len(path); i++ {
		e, ok := g.graph.GetLinkEdge(path[i-1], path[i])
		if !ok || e.GetValue().IsWall() {
			return false
		}
	}
	return true
}
