package route

import "errors"

var (
	// ErrVertexOutOfRange is returned by [Graph.AddEdge] when an endpoint is
	// not in [1, V].
	ErrVertexOutOfRange = errors.New("vertex out of range")

	// ErrNegativeWeight is returned by [Graph.AddEdge] for weights below zero.
	ErrNegativeWeight = errors.New("negative edge weight")
)
