package route

import (
	"container/heap"
	"context"

	"github.com/yourbasic/bit"
)

type queueItem struct {
	vertex int
	dist   float64
}

// vertexQueue is a min-heap ordered by distance, then by vertex id, which
// keeps selection order identical to the dense scan.
type vertexQueue []queueItem

func (q vertexQueue) Len() int { return len(q) }

func (q vertexQueue) Less(i, j int) bool {
	if q[i].dist != q[j].dist {
		return q[i].dist < q[j].dist
	}
	return q[i].vertex < q[j].vertex
}

func (q vertexQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *vertexQueue) Push(x any) {
	*q = append(*q, x.(queueItem))
}

func (q *vertexQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// ShortestPathQueue is the priority-queue counterpart of [ShortestPath] for
// graphs where the O(V²) scan is too slow. It runs in O((V+E) log V) and
// returns the same tables as ShortestPath for every graph and source.
//
// ctx is checked before every vertex selection; on cancellation the
// computation stops and ctx.Err() is returned with nil tables.
func ShortestPathQueue(ctx context.Context, g *Graph, source int) (DistanceTable, PredecessorTable, error) {
	n := g.VertexCount()
	dist := newDistanceTable(n)
	pred := newPredecessorTable(n)

	if !g.Contains(source) {
		return dist, pred, nil
	}
	dist[source] = 0

	q := &vertexQueue{{vertex: source, dist: 0}}
	visited := bit.New()

	for q.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		item := heap.Pop(q).(queueItem)
		current := item.vertex

		// stale entry: the vertex was settled or improved after this push
		if visited.Contains(current) || item.dist > dist[current] {
			continue
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
				heap.Push(q, queueItem{vertex: arc.To, dist: candidate})
			}
		}
	}

	return dist, pred, nil
}
