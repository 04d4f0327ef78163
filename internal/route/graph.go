// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package route

import "fmt"

// Arc is one adjacency entry: the neighbor reached from a vertex and the
// weight of the connecting edge.
type Arc struct {
	To     int
	Weight float64
}

// Edge is an undirected edge as it was inserted into a [Graph].
type Edge struct {
	From   int
	To     int
	Weight float64
}

// Graph is an undirected weighted graph over vertices 1..V.
//
// Adjacency is symmetric: every AddEdge(u, v, w) appends {v, w} to u and
// {u, w} to v. A Graph is written during construction and read-only
// afterwards; it is safe for concurrent readers once built.
type Graph struct {
	vertexCount int
	adjacency   [][]Arc
	edges       []Edge
}

// NewGraph returns a graph of vertexCount isolated vertices.
// A non-positive vertexCount yields an empty graph.
func NewGraph(vertexCount int) *Graph {
	if vertexCount < 0 {
		vertexCount = 0
	}

	return &Graph{
		vertexCount: vertexCount,
		// index 0 is unused so that vertex ids index the slice directly
		adjacency: make([][]Arc, vertexCount+1),
	}
}

// AddEdge inserts the undirected edge (u, v, weight).
//
// It returns [ErrVertexOutOfRange] if u or v is outside [1, V] and
// [ErrNegativeWeight] if weight is negative; the graph is left untouched in
// both cases. Duplicate edges are accepted and both are considered during
// relaxation.
func (g *Graph) AddEdge(u, v int, weight float64) error {
	if !g.Contains(u) || !g.Contains(v) {
		return fmt.Errorf("%w: edge (%d,%d) in graph of %d vertices", ErrVertexOutOfRange, u, v, g.vertexCount)
	}
	if weight < 0 {
		return fmt.Errorf("%w: edge (%d,%d) weight %v", ErrNegativeWeight, u, v, weight)
	}

	g.adjacency[u] = append(g.adjacency[u], Arc{To: v, Weight: weight})
	g.adjacency[v] = append(g.adjacency[v], Arc{To: u, Weight: weight})
	g.edges = append(g.edges, Edge{From: u, To: v, Weight: weight})

	return nil
}

// VertexCount returns V.
func (g *Graph) VertexCount() int {
	return g.vertexCount
}

// Contains reports whether v is a vertex id of the graph.
func (g *Graph) Contains(v int) bool {
	return v >= 1 && v <= g.vertexCount
}

// Neighbors returns the adjacency entries of v in insertion order, or nil if
// v is not a vertex of the graph. The returned slice must not be modified.
func (g *Graph) Neighbors(v int) []Arc {
	if !g.Contains(v) {
		return nil
	}

	return g.adjacency[v]
}

// Edges returns a copy of the inserted edges, each undirected edge once, in
// insertion order.
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, len(g.edges))
	copy(edges, g.edges)
	return edges
}

// Vertices returns the vertex ids 1..V in increasing order.
func (g *Graph) Vertices() []int {
	vertices := make([]int, 0, g.vertexCount)
	for v := 1; v <= g.vertexCount; v++ {
		vertices = append(vertices, v)
	}
	return vertices
}

// MustBuild creates a graph of vertexCount vertices from edges and panics if
// any edge violates the AddEdge preconditions. It is meant for edge lists
// fixed at compile time.
func MustBuild(vertexCount int, edges []Edge) *Graph {
	g := NewGraph(vertexCount)
	for _, e := range edges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			panic(err)
		}
	}
	return g
}
