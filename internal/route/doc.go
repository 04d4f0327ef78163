// Package route implements the shortest-path engine behind fare calculation.
//
// It provides an undirected weighted [Graph] with a fixed vertex count,
// two single-source shortest path implementations and a path reconstructor:
//   - [ShortestPath] is the dense O(V²) variant used for the fixed MoviSimple
//     network. It selects the unvisited vertex with the smallest distance by
//     scanning vertex ids in increasing order, so equal distances resolve to
//     the smallest id.
//   - [ShortestPathQueue] is the priority-queue variant for larger graphs. It
//     yields identical tables and can be cancelled between vertex selections.
//   - [ReconstructPath] turns a [PredecessorTable] into an ordered route.
//
// Vertices are numbered from 1 to V. Every value in this package is either
// immutable after construction or request-scoped, so the engine needs no
// locking. The fixed network is available through [MoviSimple].
package route
