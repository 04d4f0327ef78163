package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReconstructPath_FollowsPredecessors(t *testing.T) {
	pred := PredecessorTable{NoVertex, NoVertex, 1, 2, 3}

	assert.Equal(t, []int{1, 2, 3, 4}, ReconstructPath(1, 4, pred))
}

func TestReconstructPath_BrokenChain(t *testing.T) {
	pred := PredecessorTable{NoVertex, NoVertex, NoVertex, 2, 3}

	assert.Nil(t, ReconstructPath(1, 4, pred))
}

func TestReconstructPath_CycleIsRejected(t *testing.T) {
	// 2 and 3 point at each other and never reach 1
	pred := PredecessorTable{NoVertex, NoVertex, 3, 2}

	assert.Nil(t, ReconstructPath(1, 3, pred))
}

func TestReconstructPath_SameEndpoints(t *testing.T) {
	pred := PredecessorTable{NoVertex, NoVertex, 1}

	assert.Equal(t, []int{1}, ReconstructPath(1, 1, pred))
}

func TestPathWeight(t *testing.T) {
	g := MoviSimple()

	weight, ok := PathWeight(g, []int{3, 2, 4, 6})
	assert.True(t, ok)
	assert.Equal(t, float64(34), weight)

	_, ok = PathWeight(g, []int{1, 4})
	assert.False(t, ok, "1 and 4 are not adjacent")
}

func TestPathWeight_SingleVertex(t *testing.T) {
	weight, ok := PathWeight(MoviSimple(), []int{5})

	assert.True(t, ok)
	assert.Zero(t, weight)
}
