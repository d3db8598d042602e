package hull

import (
	"container/heap"
	"fmt"
	"sort"
	"strings"

	"github.com/EthanJamesLew/concave-hull/dbg"
)

// KDTree is a 2-d tree over Points, supporting insertion, id-keyed removal
// and k-nearest-neighbour queries by squared Euclidean distance. Removal is
// lazy: nodes are tombstoned and skipped by queries, never unlinked. A tree
// lives for a single hull-building attempt, so the dead nodes cannot
// accumulate past the size of the input.
//
// Removal has to be keyed by id, not by coordinates. The start point's
// clone shares coordinates with the start point, and inputs may contain
// duplicate points; removing "whichever point is at (x, y)" would let a
// point survive its own removal and turn up as its own nearest neighbour.
type KDTree struct {
	root *kdNode
	size int
}

type kdNode struct {
	point Point
	axis  int
	dead  bool
	left  *kdNode
	right *kdNode
}

func (n *kdNode) coord(axis int) float64 {
	if axis == 0 {
		return n.point.X
	}
	return n.point.Y
}

func pointCoord(p Point, axis int) float64 {
	if axis == 0 {
		return p.X
	}
	return p.Y
}

// NewKDTree bulk-builds a balanced tree by recursive median split.
func NewKDTree(points []Point) *KDTree {
	owned := append([]Point(nil), points...)
	return &KDTree{
		root: buildSubtree(owned, 0),
		size: len(owned),
	}
}

func buildSubtree(points []Point, axis int) *kdNode {
	if len(points) == 0 {
		return nil
	}
	sort.Slice(points, func(i, j int) bool {
		a, b := pointCoord(points[i], axis), pointCoord(points[j], axis)
		if a == b {
			return points[i].ID < points[j].ID
		}
		return a < b
	})
	mid := len(points) / 2
	node := &kdNode{point: points[mid], axis: axis}
	node.left = buildSubtree(points[:mid], 1-axis)
	node.right = buildSubtree(points[mid+1:], 1-axis)
	return node
}

func (t *KDTree) Size() int {
	return t.size
}

// Insert descends by the usual axis comparison; coordinates equal to a
// node's split value go right, matching what Remove assumes.
func (t *KDTree) Insert(p Point) {
	t.size++
	node := &kdNode{point: p}
	if t.root == nil {
		t.root = node
		return
	}
	cur := t.root
	for {
		node.axis = 1 - cur.axis
		if pointCoord(p, cur.axis) < cur.coord(cur.axis) {
			if cur.left == nil {
				cur.left = node
				return
			}
			cur = cur.left
		} else {
			if cur.right == nil {
				cur.right = node
				return
			}
			cur = cur.right
		}
	}
}

// Remove tombstones the live node holding the point with p's id, and
// reports whether one was found. Navigation prunes by coordinates, but on
// an exact tie with a node's split value both subtrees are searched: the
// bulk build may have placed equal coordinates on either side of the
// median.
func (t *KDTree) Remove(p Point) bool {
	if t.removeFrom(t.root, p) {
		t.size--
		return true
	}
	return false
}

func (t *KDTree) removeFrom(n *kdNode, p Point) bool {
	if n == nil {
		return false
	}
	if !n.dead && n.point.ID == p.ID {
		n.dead = true
		return true
	}
	pc, nc := pointCoord(p, n.axis), n.coord(n.axis)
	if pc < nc {
		return t.removeFrom(n.left, p)
	}
	if pc > nc {
		return t.removeFrom(n.right, p)
	}
	return t.removeFrom(n.left, p) || t.removeFrom(n.right, p)
}

// NearestN returns up to k live points nearest to from, ascending by
// squared Euclidean distance. The point carrying from's own id is not
// excluded; callers remove the query point from the tree before asking for
// its neighbours.
func (t *KDTree) NearestN(from Point, k int) []PointValue {
	if k <= 0 || t.root == nil {
		return nil
	}
	h := &neighbourHeap{}
	t.search(t.root, from, k, h)

	// Pop order is worst first.
	result := make([]PointValue, h.Len())
	for i := h.Len() - 1; i >= 0; i-- {
		result[i] = heap.Pop(h).(PointValue)
	}
	return result
}

func (t *KDTree) search(n *kdNode, from Point, k int, h *neighbourHeap) {
	if n == nil {
		return
	}
	if !n.dead {
		dx := n.point.X - from.X
		dy := n.point.Y - from.Y
		dist := dx*dx + dy*dy
		if h.Len() < k {
			heap.Push(h, PointValue{Point: n.point, Distance: dist})
		} else if dist < (*h)[0].Distance {
			(*h)[0] = PointValue{Point: n.point, Distance: dist}
			heap.Fix(h, 0)
		}
	}

	near, far := n.left, n.right
	if pointCoord(from, n.axis) >= n.coord(n.axis) {
		near, far = far, near
	}
	t.search(near, from, k, h)

	// The far side can only matter if the splitting plane is closer than
	// the worst neighbour held so far.
	planeDist := pointCoord(from, n.axis) - n.coord(n.axis)
	if h.Len() < k || planeDist*planeDist <= (*h)[0].Distance {
		t.search(far, from, k, h)
	}
}

func (t *KDTree) String() string {
	var sb strings.Builder
	var walk func(n *kdNode, depth int)
	walk = func(n *kdNode, depth int) {
		if n == nil {
			return
		}
		state := ""
		if n.dead {
			state = " (dead)"
		}
		fmt.Fprintf(&sb, "%s%s: (%v, %v) #%d%s\n",
			strings.Repeat("  ", depth), dbg.Name(n), n.point.X, n.point.Y, n.point.ID, state)
		walk(n.left, depth+1)
		walk(n.right, depth+1)
	}
	walk(t.root, 0)
	return sb.String()
}

// Max-heap on distance so the worst of the k current neighbours sits on
// top, ready to be evicted.
type neighbourHeap []PointValue

func (h neighbourHeap) Len() int            { return len(h) }
func (h neighbourHeap) Less(i, j int) bool  { return h[i].Distance > h[j].Distance }
func (h neighbourHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *neighbourHeap) Push(x interface{}) { *h = append(*h, x.(PointValue)) }
func (h *neighbourHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
