package route

// StationCount is the number of stations of the MoviSimple network.
const StationCount = 6

// DefaultTariffPerUnit is the fare charged per unit of travel time.
const DefaultTariffPerUnit = 0.5

// moviSimpleEdges are the bidirectional connections of the network; weights
// are travel times in seconds.
var moviSimpleEdges = []Edge{
	{From: 1, To: 2, Weight: 10},
	{From: 1, To: 3, Weight: 15},
	{From: 2, To: 3, Weight: 12},
	{From: 2, To: 4, Weight: 8},
	{From: 3, To: 5, Weight: 20},
	{From: 4, To: 5, Weight: 18},
	{From: 4, To: 6, Weight: 14},
	{From: 5, To: 6, Weight: 16},
	{From: 1, To: 6, Weight: 25},
}

var moviSimple = MustBuild(StationCount, moviSimpleEdges)

// MoviSimple returns the fixed station network. The graph is built once at
// package initialization and shared; callers must treat it as read-only.
func MoviSimple() *Graph {
	return moviSimple
}
