package hull

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testCloud(n int) []Point {
	// Fixed seed: the tests want an arbitrary cloud, not a different one
	// per run.
	rng := rand.New(rand.NewSource(42))
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{
			X:  rng.Float64()*100 - 50,
			Y:  rng.Float64()*100 - 50,
			ID: uint64(i),
		}
	}
	return points
}

func bruteNearest(points []Point, from Point, k int) []float64 {
	dists := make([]float64, 0, len(points))
	for _, p := range points {
		dx, dy := p.X-from.X, p.Y-from.Y
		dists = append(dists, dx*dx+dy*dy)
	}
	sort.Float64s(dists)
	if k > len(dists) {
		k = len(dists)
	}
	return dists[:k]
}

func TestNearestNMatchesBruteForce(t *testing.T) {
	points := testCloud(60)
	tree := NewKDTree(points)

	queries := []Point{
		{X: 0, Y: 0},
		{X: -49, Y: 49},
		{X: 13.7, Y: -22.2},
		points[17],
	}

	for _, from := range queries {
		for _, k := range []int{1, 3, 10, 60, 100} {
			got := tree.NearestN(from, k)
			want := bruteNearest(points, from, k)
			assert.Len(t, got, len(want))
			for i, pv := range got {
				assert.InDelta(t, want[i], pv.Distance, 1e-9)
			}
		}
	}
}

func TestNearestNAscending(t *testing.T) {
	points := testCloud(40)
	tree := NewKDTree(points)
	got := tree.NearestN(Point{X: 5, Y: -5}, 15)
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].Distance, got[i].Distance)
	}
}

func TestRemoveExcludesPoint(t *testing.T) {
	points := testCloud(30)
	tree := NewKDTree(points)

	victim := points[11]
	assert.True(t, tree.Remove(victim))
	assert.False(t, tree.Remove(victim), "second removal of the same id")
	assert.Equal(t, 29, tree.Size())

	for _, pv := range tree.NearestN(victim, 30) {
		assert.NotEqual(t, victim.ID, pv.Point.ID)
	}
}

// Removal is keyed by id, so a clone sharing the start point's coordinates
// must not shadow it.
func TestRemoveDistinguishesCoincidentPoints(t *testing.T) {
	points := testCloud(10)
	tree := NewKDTree(points)

	original := points[4]
	assert.True(t, tree.Remove(original))

	clone := original
	clone.ID = 10
	tree.Insert(clone)
	assert.Equal(t, 10, tree.Size())

	// The nearest live point at the original's coordinates is the clone.
	got := tree.NearestN(original, 1)
	assert.Len(t, got, 1)
	assert.Equal(t, uint64(10), got[0].Point.ID)
	assert.InDelta(t, 0.0, got[0].Distance, 1e-12)

	// And removing the original's id again finds nothing, while the
	// clone's id does.
	assert.False(t, tree.Remove(original))
	assert.True(t, tree.Remove(clone))
}

func TestInsertThenQuery(t *testing.T) {
	tree := NewKDTree(nil)
	assert.Empty(t, tree.NearestN(Point{}, 5))

	for i, p := range testCloud(25) {
		tree.Insert(p)
		assert.Equal(t, i+1, tree.Size())
	}

	got := tree.NearestN(Point{X: 1, Y: 1}, 25)
	assert.Len(t, got, 25)
}

func TestTreeString(t *testing.T) {
	points := testCloud(5)
	tree := NewKDTree(points)
	tree.Remove(points[2])
	dump := tree.String()
	assert.Contains(t, dump, "(dead)")
	t.Log("\n" + dump)
}
