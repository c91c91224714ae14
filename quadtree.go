package quadtree

// Package quadtree is a region quadtree for broad-phase proximity queries
// over a set of moving, axis-aligned entities that is rebuilt every frame.

// node is a single region of the tree.
// A node with first == 0 is a leaf. Otherwise its four children are
// nodes[first:first+4], in NW, NE, SW, SE order. The root lives at index 0,
// so no child can ever be at index 0.
type node[TFloat float32 | float64] struct {
	bounds Region[TFloat]
	depth  int
	first  int
	items  []Entity[TFloat]
}

// Quadtree is a spatial index for efficient 2D range queries.
// Nodes are kept in a single arena, so Clear releases the whole tree in O(1)
// and the next build reuses the node slots and their entity buffers.
type Quadtree[TFloat float32 | float64] struct {
	Capacity int // Entities per leaf before it splits. Default 50
	MaxDepth int // Nodes at this depth never split. Default 8

	nodes []node[TFloat]
}

// New creates an empty tree covering bounds, with the default capacity and depth limit.
func New[TFloat float32 | float64](bounds Region[TFloat]) *Quadtree[TFloat] {
	return NewWithLimits(bounds, 50, 8, 0)
}

// NewWithLimits creates an empty tree covering bounds.
// depth is the depth of the root, which is normally 0.
func NewWithLimits[TFloat float32 | float64](bounds Region[TFloat], capacity, maxDepth, depth int) *Quadtree[TFloat] {
	q := &Quadtree[TFloat]{
		Capacity: capacity,
		MaxDepth: maxDepth,
		nodes:    make([]node[TFloat], 1, 1+4*4),
	}
	q.nodes[0] = node[TFloat]{
		bounds: bounds,
		depth:  depth,
		items:  make([]Entity[TFloat], 0, max(capacity, 0)),
	}
	return q
}

// Insert adds e to every leaf whose region it overlaps.
// It returns false if e does not intersect the tree's bounds, in which case
// nothing is stored. That is a normal outcome for out-of-bounds entities.
func (q *Quadtree[TFloat]) Insert(e Entity[TFloat]) bool {
	if len(q.nodes) == 0 {
		return false
	}
	return q.insert(0, &e, e.Bounds())
}

func (q *Quadtree[TFloat]) insert(index int, e *Entity[TFloat], eb Region[TFloat]) bool {
	n := &q.nodes[index]
	if !n.bounds.Intersects(eb) {
		return false
	}

	if n.first == 0 {
		if len(n.items) < q.Capacity || n.depth >= q.MaxDepth {
			n.items = append(n.items, *e)
			return true
		}
		q.subdivide(index)
	}

	// A straddling entity goes into every child it overlaps, so don't short circuit
	first := q.nodes[index].first
	ok := false
	for c := first; c < first+4; c++ {
		if q.insert(c, e, eb) {
			ok = true
		}
	}
	return ok
}

// subdivide turns the leaf at index into four children and pushes its
// entities down into them.
func (q *Quadtree[TFloat]) subdivide(index int) {
	first := q.allocChildren()

	// allocChildren may have moved the arena
	n := &q.nodes[index]
	quads := n.bounds.quadrants()
	for i := range quads {
		c := &q.nodes[first+i]
		c.bounds = quads[i]
		c.depth = n.depth + 1
		c.first = 0
		c.items = c.items[:0]
	}
	n.first = first

	items := n.items
	for i := range items {
		eb := items[i].Bounds()
		for c := first; c < first+4; c++ {
			q.insert(c, &items[i], eb)
		}
	}
	q.nodes[index].items = items[:0]
}

// allocChildren reserves four contiguous node slots and returns the index of the first.
// Slots left over from before the last Clear are recycled along with their buffers.
func (q *Quadtree[TFloat]) allocChildren() int {
	first := len(q.nodes)
	if cap(q.nodes)-first >= 4 {
		q.nodes = q.nodes[:first+4]
	} else {
		q.nodes = append(q.nodes, make([]node[TFloat], 4)...)
	}
	return first
}

// Query returns all entities whose bounds intersect rng.
// An entity that straddles several leaves is returned once per leaf.
func (q *Quadtree[TFloat]) Query(rng Region[TFloat]) []Entity[TFloat] {
	results := []Entity[TFloat]{}
	return q.QueryFast(rng, results)
}

// QueryFast accepts a 'results' as input. If you are performing many queries per frame,
// then reusing a 'results' slice will reduce the number of allocations.
// Results are ordered NW, NE, SW, SE at every level of the tree.
func (q *Quadtree[TFloat]) QueryFast(rng Region[TFloat], results []Entity[TFloat]) []Entity[TFloat] {
	results = results[:0]
	if len(q.nodes) == 0 {
		return results
	}
	return q.query(0, rng, results)
}

func (q *Quadtree[TFloat]) query(index int, rng Region[TFloat], results []Entity[TFloat]) []Entity[TFloat] {
	n := &q.nodes[index]
	if !n.bounds.Intersects(rng) {
		return results
	}

	if n.first == 0 {
		for i := range n.items {
			if rng.Intersects(n.items[i].Bounds()) {
				results = append(results, n.items[i])
			}
		}
		return results
	}

	for c := n.first; c < n.first+4; c++ {
		results = q.query(c, rng, results)
	}
	return results
}

// Clear removes every entity and collapses the tree back to a single empty leaf.
// Bounds, Capacity and MaxDepth are unchanged.
func (q *Quadtree[TFloat]) Clear() {
	if len(q.nodes) == 0 {
		return
	}
	q.nodes = q.nodes[:1]
	q.nodes[0].first = 0
	q.nodes[0].items = q.nodes[0].items[:0]
}

// Bounds returns the region covered by the root.
func (q *Quadtree[TFloat]) Bounds() Region[TFloat] {
	if len(q.nodes) == 0 {
		return Region[TFloat]{}
	}
	return q.nodes[0].bounds
}

// Depth returns the depth of the root.
func (q *Quadtree[TFloat]) Depth() int {
	if len(q.nodes) == 0 {
		return 0
	}
	return q.nodes[0].depth
}

// Divided reports whether the root has been split into children.
func (q *Quadtree[TFloat]) Divided() bool {
	return len(q.nodes) != 0 && q.nodes[0].first != 0
}

// Len returns the number of entities held directly by the root.
// This is zero once the root has divided.
func (q *Quadtree[TFloat]) Len() int {
	if len(q.nodes) == 0 {
		return 0
	}
	return len(q.nodes[0].items)
}

// Children returns the regions of the root's four children.
// ok is false if the root is still a leaf.
func (q *Quadtree[TFloat]) Children() (nw, ne, sw, se Region[TFloat], ok bool) {
	if !q.Divided() {
		return
	}
	first := q.nodes[0].first
	return q.nodes[first].bounds, q.nodes[first+1].bounds, q.nodes[first+2].bounds, q.nodes[first+3].bounds, true
}
