package hull

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrowHullTrivial(t *testing.T) {
	points := []Point{
		{X: 0, Y: 1, ID: 0},
		{X: -1, Y: 0, ID: 1},
		{X: 1, Y: 0, ID: 2},
	}

	for _, k := range []int{0, 1, 5} {
		result, ok := growHull(points, k)
		assert.True(t, ok)
		assert.Equal(t, Polygon(points), result)
	}
}

func TestGrowHullConvexSet(t *testing.T) {
	pentagon := []Point{
		{X: 0.1, Y: -2.3, ID: 0},
		{X: 3.2, Y: 0.4, ID: 1},
		{X: 1.9, Y: 2.8, ID: 2},
		{X: -1.7, Y: 2.6, ID: 3},
		{X: -3.0, Y: 0.2, ID: 4},
	}

	result, ok := growHull(pentagon, len(pentagon)-1)
	assert.True(t, ok)
	assert.Len(t, result, 5)

	// The walk starts at the lowest point and visits every vertex of a
	// convex set.
	assert.Equal(t, pentagon[0], result[0])
	seen := make(idSet)
	for _, p := range result {
		seen[p.ID] = struct{}{}
	}
	assert.Len(t, seen, 5)
}

func TestGrowHullNeverReturnsPartialHull(t *testing.T) {
	points := testCloud(40)
	for k := 1; k < len(points); k++ {
		result, ok := growHull(points, k)
		if !ok {
			assert.Nil(t, result, "failed attempt at k=%d leaked a hull", k)
		} else {
			assert.NotEmpty(t, result)
		}
	}
}

func TestMinYPoint(t *testing.T) {
	points := []Point{
		{X: 1, Y: 2, ID: 0},
		{X: 3, Y: -1, ID: 1},
		{X: -2, Y: -1, ID: 2},
		{X: 0, Y: 5, ID: 3},
	}
	// Lowest y wins, leftmost x breaks the tie.
	assert.Equal(t, points[2], minYPoint(points))
}

func TestSortByAngle(t *testing.T) {
	from := Point{X: 0, Y: 0}
	values := []PointValue{
		{Point: Point{X: 1, Y: 0, ID: 0}, Distance: 1},   // bearing 0
		{Point: Point{X: 0, Y: -1, ID: 1}, Distance: 1},  // bearing π/2
		{Point: Point{X: -1, Y: 0, ID: 2}, Distance: 1},  // bearing π
		{Point: Point{X: 0, Y: 1, ID: 3}, Distance: 1},   // bearing 3π/2
	}

	sorted := sortByAngle(values, from, 0)
	ids := []uint64{sorted[0].ID, sorted[1].ID, sorted[2].ID, sorted[3].ID}
	assert.Equal(t, []uint64{3, 2, 1, 0}, ids)
}

// Collinear candidates have equal bearings; the nearer one (which arrives
// first from the index) must keep its place.
func TestSortByAngleStableOnTies(t *testing.T) {
	from := Point{X: 0, Y: 0}
	values := []PointValue{
		{Point: Point{X: 1, Y: 1, ID: 0}, Distance: 2},
		{Point: Point{X: 2, Y: 2, ID: 1}, Distance: 8},
		{Point: Point{X: -1, Y: 0, ID: 2}, Distance: 1},
	}

	sorted := sortByAngle(values, from, math.Pi/4)
	assert.Equal(t, uint64(0), sorted[0].ID)
	assert.Equal(t, uint64(1), sorted[1].ID)
	assert.Equal(t, uint64(2), sorted[2].ID)
}

func TestWithoutHull(t *testing.T) {
	points := []Point{
		{X: 0, Y: 0, ID: 0},
		{X: 1, Y: 0, ID: 1},
		{X: 2, Y: 0, ID: 2},
	}
	rest := withoutHull(points, Polygon{points[0], points[2]})
	assert.Equal(t, []Point{points[1]}, rest)
}
