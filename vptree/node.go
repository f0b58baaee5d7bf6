package vptree

// node is a single vantage point. Every point in near is within threshold of
// the vantage point, every point in far is strictly farther.
type node[D Distance] struct {
	idx       int // index into Tree.points
	threshold D
	near      *node[D]
	far       *node[D]
	height    int
}

func (n *node[D]) isLeaf() bool {
	return n.near == nil && n.far == nil
}
