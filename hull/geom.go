package hull

import "math"

// Tolerance below which a determinant or edge slope is treated as zero.
// This absorbs floating point noise from near-parallel lines and
// near-horizontal edges rather than dividing by it.
const Tolerance = 1e-10

// Intersects reports whether two line segments cross. The intersection of
// the two infinite lines is computed by the determinant formula; parallel
// lines never intersect here, even when coincident. The intersection point
// must then fall within the bounding box of both segments, bounds
// inclusive, so segments that merely touch at an endpoint do intersect.
func Intersects(a, b Segment) bool {
	ax1, ay1 := a.Start.X, a.Start.Y
	ax2, ay2 := a.End.X, a.End.Y
	bx1, by1 := b.Start.X, b.Start.Y
	bx2, by2 := b.End.X, b.End.Y

	a1 := ay2 - ay1
	b1 := ax1 - ax2
	c1 := a1*ax1 + b1*ay1
	a2 := by2 - by1
	b2 := bx1 - bx2
	c2 := a2*bx1 + b2*by1
	det := a1*b2 - a2*b1

	if math.Abs(det) < Tolerance {
		return false
	}

	x := (b2*c1 - b1*c2) / det
	y := (a1*c2 - a2*c1) / det

	return math.Min(ax1, ax2) <= x && x <= math.Max(ax1, ax2) &&
		math.Min(ay1, ay2) <= y && y <= math.Max(ay1, ay2) &&
		math.Min(bx1, bx2) <= x && x <= math.Max(bx1, bx2) &&
		math.Min(by1, by2) <= y && y <= math.Max(by1, by2)
}

// Angle returns the bearing from a to b in [0, 2π). The atan2 result is
// negated, so the angle grows clockwise in standard orientation (equally:
// counterclockwise in screen coordinates with y pointing down). Callers
// must never pass coincident points; the bearing of a zero vector is
// meaningless.
func Angle(a, b Point) float64 {
	return NormalizeAngle(-math.Atan2(b.Y-a.Y, b.X-a.X))
}

// NormalizeAngle maps radians into [0, 2π) by adding a single turn to
// negative values. Inputs are always in (-2π, 2π), either straight out of
// atan2 or a difference of two normalized angles.
func NormalizeAngle(radians float64) float64 {
	if radians < 0 {
		return radians + 2*math.Pi
	}
	return radians
}

// ContainsPoint is the even-odd crossing test. A ray toward +x is cast
// from p; each polygon edge whose y-span covers p contributes a crossing
// when p sits strictly left of the edge at that height. Horizontal edges are
// skipped entirely. The vertex list wraps, so open and closed vertex lists
// behave identically. Anything with two or fewer vertices contains
// nothing. Points exactly on the boundary are not reliably inside.
func (poly Polygon) ContainsPoint(p Point) bool {
	if len(poly) <= 2 {
		return false
	}

	crossings := 0
	for i, v1 := range poly {
		v0 := poly[circularIndex(i-1, len(poly))]

		spans := (v0.Y <= p.Y && p.Y < v1.Y) || (v1.Y <= p.Y && p.Y < v0.Y)
		if !spans || math.Abs(v1.Y-v0.Y) < Tolerance {
			continue
		}

		t := (p.Y - v0.Y) / (v1.Y - v0.Y)
		if p.X < v0.X+t*(v1.X-v0.X) {
			crossings++
		}
	}

	return crossings%2 != 0
}

// ContainsAll reports whether every given point lies inside the polygon.
// Vacuously true for an empty slice.
func (poly Polygon) ContainsAll(points []Point) bool {
	for _, p := range points {
		if !poly.ContainsPoint(p) {
			return false
		}
	}
	return true
}

// circularIndex treats a slice as a ring, mapping any index (including
// negative ones) onto a valid position.
func circularIndex(i, n int) int {
	return (i%n + n) % n
}
