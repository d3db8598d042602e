// Concave hull computation for 2D point sets.
//
// This package wraps a k-nearest-neighbour edge-growing algorithm that
// produces a tight, possibly non-convex boundary polygon around a set of
// points. Where the convex hull is too loose an envelope, say for boundary
// extraction over scattered geographic or sensor data, the concave hull
// hugs the data instead.
package concavehull

import (
	"github.com/pkg/errors"

	"github.com/EthanJamesLew/concave-hull/hull"
)

type Point = hull.Point

// ConcaveHull computes the concave hull of the given points. Each point is
// assigned an id equal to its 0-based position in the input (any id the
// caller set is overwritten); the vertices of the result carry these ids,
// in traversal order around the boundary.
//
// k is the number of neighbours considered when growing each edge. With
// iterate set, failed attempts retry with ever larger k; without it, a
// single failed attempt yields an empty result. An empty result means no
// hull was found, never that something went wrong.
func ConcaveHull(points []Point, k int, iterate bool) []Point {
	indexed := make([]Point, len(points))
	for i, p := range points {
		p.ID = uint64(i)
		indexed[i] = p
	}
	return hull.ConcaveHull(indexed, k, iterate)
}

// ConcaveHullRows is ConcaveHull for callers marshalling from array-shaped
// data. Every input row must be exactly [x, y]; row order assigns the ids.
// Result rows are [x, y, id], one per hull vertex in traversal order, and
// an empty result again means no hull was found.
func ConcaveHullRows(rows [][]float64, k int, iterate bool) ([][]float64, error) {
	points := make([]Point, len(rows))
	for i, row := range rows {
		if len(row) != 2 {
			return nil, errors.Errorf("row %d has %d columns, want 2 (x, y)", i, len(row))
		}
		points[i] = Point{X: row[0], Y: row[1], ID: uint64(i)}
	}

	result := hull.ConcaveHull(points, k, iterate)
	out := make([][]float64, len(result))
	for i, p := range result {
		out[i] = []float64{p.X, p.Y, float64(p.ID)}
	}
	return out, nil
}
