package graph

import (
	"gonum.org/v1/gonum/graph/simple"
)

// Edge is an undirected edge, stored with its endpoints in the order they
// were first seen.
type Edge struct {
	From string
	To   string
}

// Graph is an undirected, unweighted simple graph keyed by string node IDs.
// Adding an edge that already exists (in either direction) is a no-op, and
// Edges reports edges in the order of their first insertion.
type Graph struct {
	adj   *simple.UndirectedGraph
	ids   map[string]int64 // original ID -> gonum node ID
	loops map[int64]bool   // self-loops, which simple graphs cannot hold
	edges []Edge
}

// NewGraph creates an empty graph
func NewGraph() *Graph {
	return &Graph{
		adj:   simple.NewUndirectedGraph(),
		ids:   make(map[string]int64),
		loops: make(map[int64]bool),
	}
}

// node returns the gonum node for id, adding it on first sight
func (g *Graph) node(id string) simple.Node {
	if n, ok := g.ids[id]; ok {
		return simple.Node(n)
	}
	n := simple.Node(len(g.ids))
	g.ids[id] = int64(n)
	g.adj.AddNode(n)
	return n
}

// AddEdge inserts the undirected edge {u, v}. It reports whether the edge
// was new.
func (g *Graph) AddEdge(u, v string) bool {
	un, vn := g.node(u), g.node(v)

	if un == vn {
		if g.loops[int64(un)] {
			return false
		}
		g.loops[int64(un)] = true
	} else {
		if g.adj.HasEdgeBetween(int64(un), int64(vn)) {
			return false
		}
		g.adj.SetEdge(simple.Edge{F: un, T: vn})
	}

	g.edges = append(g.edges, Edge{From: u, To: v})
	return true
}

// Edges returns every distinct undirected edge in insertion order
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// NumNodes returns the number of distinct node IDs
func (g *Graph) NumNodes() int {
	return g.adj.Nodes().Len()
}

// NumEdges returns the number of distinct undirected edges, self-loops included
func (g *Graph) NumEdges() int {
	return g.adj.Edges().Len() + len(g.loops)
}
