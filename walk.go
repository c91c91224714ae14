package quadtree

// NodeInfo describes one node visited by Walk.
type NodeInfo[TFloat float32 | float64] struct {
	Bounds  Region[TFloat]
	Depth   int
	Divided bool
	Len     int // Entities held directly. Always zero for a divided node
}

// Walk visits every node depth-first, parents before children, children in
// NW, NE, SW, SE order. Returning false from fn stops the walk.
func (q *Quadtree[TFloat]) Walk(fn func(NodeInfo[TFloat]) bool) {
	if len(q.nodes) == 0 {
		return
	}
	q.walk(0, fn)
}

func (q *Quadtree[TFloat]) walk(index int, fn func(NodeInfo[TFloat]) bool) bool {
	n := &q.nodes[index]
	info := NodeInfo[TFloat]{
		Bounds:  n.bounds,
		Depth:   n.depth,
		Divided: n.first != 0,
		Len:     len(n.items),
	}
	if !fn(info) {
		return false
	}
	if n.first == 0 {
		return true
	}
	for c := n.first; c < n.first+4; c++ {
		if !q.walk(c, fn) {
			return false
		}
	}
	return true
}

// Stats summarizes the shape of a tree.
type Stats struct {
	Nodes    int
	Leaves   int
	MaxDepth int // Deepest node actually present
	Stored   int // Entity copies held by leaves, counting straddlers once per leaf
}

// Stats walks the tree and counts its nodes and stored entities.
func (q *Quadtree[TFloat]) Stats() Stats {
	s := Stats{}
	q.Walk(func(n NodeInfo[TFloat]) bool {
		s.Nodes++
		if !n.Divided {
			s.Leaves++
		}
		s.MaxDepth = max(s.MaxDepth, n.Depth)
		s.Stored += n.Len
		return true
	})
	return s
}
