package main

import (
	"math/rand"

	quadtree "github.com/bmharper/quadtree-go"
)

// Kinds the harness assigns to bodies. The tree never looks at them.
const (
	kindShip = iota + 1
	kindAsteroid
	kindBullet
)

type body struct {
	entity quadtree.Entity64
	vx, vy float64
}

// world is the whole simulation state for one run.
// It owns a single tree that is either rebuilt or cleared every frame.
type world struct {
	width, height float64
	capacity      int
	maxDepth      int
	reuse         bool
	unique        bool

	bodies  []body
	tree    *quadtree.Quadtree64
	results []quadtree.Entity64
	seen    *quadtree.IDSet
}

func newWorld(width, height float64, count int, capacity, maxDepth int, rng *rand.Rand) *world {
	w := &world{
		width:    width,
		height:   height,
		capacity: capacity,
		maxDepth: maxDepth,
		bodies:   make([]body, 0, count),
		seen:     quadtree.NewIDSet(64),
	}
	for i := 0; i < count; i++ {
		kind := kindAsteroid
		size := 20 + rng.Float64()*40
		speed := 60.0
		switch {
		case i == 0:
			kind, size, speed = kindShip, 30, 150
		case i%4 == 0:
			kind, size, speed = kindBullet, 4, 400
		}
		w.bodies = append(w.bodies, body{
			entity: quadtree.Entity64{
				Position: quadtree.Point[float64]{X: rng.Float64() * width, Y: rng.Float64() * height},
				Width:    size,
				Height:   size,
				Kind:     kind,
				ID:       i,
			},
			vx: (rng.Float64()*2 - 1) * speed,
			vy: (rng.Float64()*2 - 1) * speed,
		})
	}
	return w
}

func (w *world) bounds() quadtree.Region64 {
	return quadtree.Region64{X: w.width / 2, Y: w.height / 2, Width: w.width, Height: w.height}
}

// move advances every body by dt seconds, wrapping around the field edges.
func (w *world) move(dt float64) {
	for i := range w.bodies {
		b := &w.bodies[i]
		b.entity.Position.X = wrap(b.entity.Position.X+b.vx*dt, w.width)
		b.entity.Position.Y = wrap(b.entity.Position.Y+b.vy*dt, w.height)
	}
}

func wrap(v, limit float64) float64 {
	for v < 0 {
		v += limit
	}
	for v >= limit {
		v -= limit
	}
	return v
}

// build indexes every body and returns how many the tree accepted.
func (w *world) build() int {
	if w.reuse && w.tree != nil {
		w.tree.Clear()
	} else {
		w.tree = quadtree.NewWithLimits(w.bounds(), w.capacity, w.maxDepth, 0)
	}
	inserted := 0
	for i := range w.bodies {
		if w.tree.Insert(w.bodies[i].entity) {
			inserted++
		}
	}
	return inserted
}

// collide queries the bounds of every body and returns the number of
// candidate pairs, not counting a body against itself.
func (w *world) collide() int {
	candidates := 0
	for i := range w.bodies {
		e := &w.bodies[i].entity
		if w.unique {
			w.seen.Reset()
			w.results = w.tree.QueryUnique(e.Bounds(), w.seen, w.results)
		} else {
			w.results = w.tree.QueryFast(e.Bounds(), w.results)
		}
		for _, hit := range w.results {
			if hit.ID != e.ID {
				candidates++
			}
		}
	}
	return candidates
}
