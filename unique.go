package quadtree

import "github.com/kamstrup/intmap"

// IDSet is a set of entity IDs, used to collapse the duplicate results that
// straddling entities produce. Reset it between frames rather than allocating a new one.
type IDSet struct {
	ids *intmap.Map[int, struct{}]
}

// NewIDSet creates an empty set sized for roughly capacity IDs.
func NewIDSet(capacity int) *IDSet {
	return &IDSet{ids: intmap.New[int, struct{}](capacity)}
}

// Add inserts id and reports whether it was not already present.
func (s *IDSet) Add(id int) bool {
	if _, ok := s.ids.Get(id); ok {
		return false
	}
	s.ids.Put(id, struct{}{})
	return true
}

func (s *IDSet) Has(id int) bool {
	_, ok := s.ids.Get(id)
	return ok
}

func (s *IDSet) Len() int {
	return s.ids.Len()
}

// Reset empties the set, keeping its allocation.
func (s *IDSet) Reset() {
	s.ids.Clear()
}

// QueryUnique is QueryFast, but returns each entity ID at most once.
// IDs already in seen are skipped, and every returned ID is added to seen.
// seen is not reset, so one set can span several queries. A nil seen uses a fresh set.
func (q *Quadtree[TFloat]) QueryUnique(rng Region[TFloat], seen *IDSet, results []Entity[TFloat]) []Entity[TFloat] {
	results = results[:0]
	if len(q.nodes) == 0 {
		return results
	}
	if seen == nil {
		seen = NewIDSet(16)
	}
	return q.queryUnique(0, rng, seen, results)
}

func (q *Quadtree[TFloat]) queryUnique(index int, rng Region[TFloat], seen *IDSet, results []Entity[TFloat]) []Entity[TFloat] {
	n := &q.nodes[index]
	if !n.bounds.Intersects(rng) {
		return results
	}

	if n.first == 0 {
		for i := range n.items {
			if rng.Intersects(n.items[i].Bounds()) && seen.Add(n.items[i].ID) {
				results = append(results, n.items[i])
			}
		}
		return results
	}

	for c := n.first; c < n.first+4; c++ {
		results = q.queryUnique(c, rng, seen, results)
	}
	return results
}
