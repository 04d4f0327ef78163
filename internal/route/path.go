package route

import "slices"

// ReconstructPath returns the vertices from source to destination inclusive
// by following pred backward from destination and reversing the result.
//
// Callers check reachability on the [DistanceTable] first. If the chain of
// predecessors breaks before reaching source, nil is returned.
func ReconstructPath(source, destination int, pred PredecessorTable) []int {
	path := []int{destination}

	for current := destination; current != source; {
		previous, ok := pred.Predecessor(current)
		if !ok {
			return nil
		}

		path = append(path, previous)
		current = previous

		// predecessor links strictly decrease distance, so a longer chain
		// can only come from a table that was not produced by this package
		if len(path) > len(pred) {
			return nil
		}
	}

	slices.Reverse(path)
	return path
}

// PathWeight sums the edge weights along path, taking the lightest edge
// between consecutive vertices when multi-edges exist. The second result is
// false if two consecutive vertices are not adjacent.
func PathWeight(g *Graph, path []int) (float64, bool) {
	var total float64

	for i := 1; i < len(path); i++ {
		weight, ok := lightestArc(g, path[i-1], path[i])
		if !ok {
			return 0, false
		}
		total += weight
	}

	return total, true
}

func lightestArc(g *Graph, from, to int) (float64, bool) {
	best := Infinity
	found := false

	for _, arc := range g.Neighbors(from) {
		if arc.To == to && arc.Weight < best {
			best = arc.Weight
			found = true
		}
	}

	return best, found
}
