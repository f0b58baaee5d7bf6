package vptree

import (
	"math/rand/v2"
)

// Tree is an immutable vantage-point tree over points of type T.
type Tree[T any, D Distance] struct {
	points   []T
	distance DistanceFunc[T, D]
	root     *node[D]
}

// Build constructs a tree holding exactly the supplied points.
//
// Build takes ownership of points: the slice is reordered in place and
// retained by the tree, so callers must not modify or reuse it afterwards.
func Build[T any, D Distance](points []T, distance DistanceFunc[T, D], opts ...Option) (*Tree[T, D], error) {
	if len(points) == 0 {
		return nil, ErrEmptyInput
	}
	if distance == nil {
		return nil, ErrNilDistance
	}
	o := newOptions(opts)
	t := &Tree[T, D]{points: points, distance: distance}
	rng := rand.New(rand.NewPCG(o.seed, o.seed))
	t.root = t.build(rng)
	return t, nil
}

// span is a pending sub-range of points and the parent slot its node goes to.
type span[D Distance] struct {
	lo, hi int
	slot   **node[D]
}

// build partitions points with an explicit work stack so degenerate inputs
// (many coincident points) cannot exhaust the goroutine stack.
func (t *Tree[T, D]) build(rng *rand.Rand) *node[D] {
	var root *node[D]
	created := make([]*node[D], 0, len(t.points))
	stack := []span[D]{{lo: 0, hi: len(t.points), slot: &root}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := &node[D]{idx: s.lo}
		*s.slot = n
		created = append(created, n)
		size := s.hi - s.lo
		if size == 1 {
			continue
		}

		vp := s.lo + rng.IntN(size)
		t.points[s.lo], t.points[vp] = t.points[vp], t.points[s.lo]
		vantage := t.points[s.lo]

		rest := s.lo + 1
		pivot := rest + rng.IntN(size-1)
		n.threshold = t.distance(vantage, t.points[pivot])

		pos := rest
		for i := rest; i < s.hi; i++ {
			if t.distance(vantage, t.points[i]) <= n.threshold {
				t.points[pos], t.points[i] = t.points[i], t.points[pos]
				pos++
			}
		}
		if pos < s.hi {
			stack = append(stack, span[D]{lo: pos, hi: s.hi, slot: &n.far})
		}
		if pos > rest {
			stack = append(stack, span[D]{lo: rest, hi: pos, slot: &n.near})
		}
	}

	// children are always created after their parent
	for i := len(created) - 1; i >= 0; i-- {
		n := created[i]
		if n.isLeaf() {
			continue
		}
		h := 0
		if n.near != nil {
			h = n.near.height
		}
		if n.far != nil && n.far.height > h {
			h = n.far.height
		}
		n.height = h + 1
	}
	return root
}

// Height returns the height of the tree; a single point has height 0.
func (t *Tree[T, D]) Height() int {
	return t.root.height
}

// Len returns the number of points held by the tree.
func (t *Tree[T, D]) Len() int {
	return len(t.points)
}

// Nearest returns the point closest to query.
func (t *Tree[T, D]) Nearest(query T) T {
	p, _ := t.NearestWithDistance(query)
	return p
}

// visit is a pending subtree. Subtrees with check set are only explored when
// the best distance found so far still exceeds bound.
type visit[D Distance] struct {
	node  *node[D]
	bound D
	check bool
}

// NearestWithDistance returns the point closest to query and its distance.
//
// Nodes are visited in pre-order, the child on the query's side of the
// threshold first. A candidate replaces the current best only when strictly
// closer, so on exact ties the first point visited wins.
func (t *Tree[T, D]) NearestWithDistance(query T) (T, D) {
	best := t.root.idx
	bestDist := t.distance(t.points[best], query)
	stack := make([]visit[D], 0, 2*(t.root.height+1))
	stack = t.expand(stack, t.root, bestDist)

	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if v.check && !(bestDist > v.bound) {
			continue
		}
		d := t.distance(t.points[v.node.idx], query)
		if d < bestDist {
			best, bestDist = v.node.idx, d
		}
		stack = t.expand(stack, v.node, d)
	}
	return t.points[best], bestDist
}

// expand pushes the children of n given the query's distance d to n's
// vantage point. The far side of the threshold can only hold a closer point
// when the best distance exceeds |threshold - d| (triangle inequality).
func (t *Tree[T, D]) expand(stack []visit[D], n *node[D], d D) []visit[D] {
	first, second := n.near, n.far
	bound := n.threshold - d
	if d > n.threshold {
		first, second = n.far, n.near
		bound = d - n.threshold
	}
	if second != nil {
		stack = append(stack, visit[D]{node: second, bound: bound, check: true})
	}
	if first != nil {
		stack = append(stack, visit[D]{node: first})
	}
	return stack
}

// Do calls fn for every point in the tree in pre-order, near subtree before
// far subtree, with the depth of the point's node. The walk stops early when
// fn returns true.
func (t *Tree[T, D]) Do(fn func(point T, depth int) (done bool)) {
	type item struct {
		node  *node[D]
		depth int
	}
	stack := []item{{node: t.root}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if fn(t.points[it.node.idx], it.depth) {
			return
		}
		if it.node.far != nil {
			stack = append(stack, item{node: it.node.far, depth: it.depth + 1})
		}
		if it.node.near != nil {
			stack = append(stack, item{node: it.node.near, depth: it.depth + 1})
		}
	}
}
