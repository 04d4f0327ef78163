// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package route

import (
	"github.com/yourbasic/bit"
)

// ShortestPath computes single-source shortest distances and predecessor
// links from source using the dense O(V²) selection scan.
//
// On each of at most V rounds the unvisited vertex with the smallest finite
// distance is selected; vertex ids are scanned in increasing order with a
// strict comparison, so ties go to the smallest id. The selected vertex is
// marked visited and every unvisited neighbor is relaxed. The loop ends early
// once no unvisited vertex has a finite distance.
//
// Unreachable vertices keep [Infinity] and [NoVertex]. A source outside
// [1, V] is a caller error; the returned tables then mark every vertex
// unreachable.
func ShortestPath(g *Graph, source int) (DistanceTable, PredecessorTable) {
	n := g.VertexCount()
	dist := newDistanceTable(n)
	pred := newPredecessorTable(n)

	if !g.Contains(source) {
		return dist, pred
	}
	dist[source] = 0

	visited := bit.New()
	for range n {
		current := NoVertex
		best := Infinity
		for v := 1; v <= n; v++ {
			if !visited.Contains(v) && dist[v] < best {
				best = dist[v]
				current = v
			}
		}

		if current == NoVertex {
			break
		}
		visited.Add(current)

		for _, arc := range g.adjacency[current] {
			if visited.Contains(arc.To) {
				continue
			}

			candidate := dist[current] + arc.Weight
			if candidate < dist[arc.To] {
				dist[arc.To] = candidate
				pred[arc.To] = current
			}
		}
	}

	return dist, pred
}
