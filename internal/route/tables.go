package route

import "math"

// NoVertex marks the absence of a predecessor.
const NoVertex = 0

// Infinity is the distance of vertices not reached from the source.
var Infinity = math.Inf(1)

// DistanceTable maps vertex ids to their best known distance from the
// source of a shortest path computation. Index 0 is unused.
type DistanceTable []float64

func newDistanceTable(vertexCount int) DistanceTable {
	dist := make(DistanceTable, vertexCount+1)
	for v := range dist {
		dist[v] = Infinity
	}
	return dist
}

// Distance returns the distance of v, or [Infinity] for ids outside the table.
func (d DistanceTable) Distance(v int) float64 {
	if v < 1 || v >= len(d) {
		return Infinity
	}
	return d[v]
}

// Reachable reports whether v has a finite distance.
func (d DistanceTable) Reachable(v int) bool {
	return !math.IsInf(d.Distance(v), 1)
}

// PredecessorTable maps vertex ids to the vertex preceding them on the best
// known path from the source, or [NoVertex]. Index 0 is unused.
type PredecessorTable []int

func newPredecessorTable(vertexCount int) PredecessorTable {
	// zero value of every entry is NoVertex
	return make(PredecessorTable, vertexCount+1)
}

// Predecessor returns the predecessor of v and whether one is recorded.
func (p PredecessorTable) Predecessor(v int) (int, bool) {
	if v < 1 || v >= len(p) || p[v] == NoVertex {
		return NoVertex, false
	}
	return p[v], true
}
