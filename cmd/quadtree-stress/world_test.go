package main

import (
	"bytes"
	"context"
	"math/rand"
	"testing"
	"time"

	quadtree "github.com/bmharper/quadtree-go"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	require.Equal(t, 5.0, wrap(105, 100))
	require.Equal(t, 95.0, wrap(-5, 100))
	require.Equal(t, 0.0, wrap(100, 100))
	require.Equal(t, 42.0, wrap(42, 100))
}

func TestWorldMoveStaysInField(t *testing.T) {
	w := newWorld(200, 100, 50, 4, 6, rand.New(rand.NewSource(1)))
	for i := 0; i < 100; i++ {
		w.move(0.25)
		for _, b := range w.bodies {
			require.GreaterOrEqual(t, b.entity.Position.X, 0.0)
			require.Less(t, b.entity.Position.X, 200.0)
			require.GreaterOrEqual(t, b.entity.Position.Y, 0.0)
			require.Less(t, b.entity.Position.Y, 100.0)
		}
	}
	require.Equal(t, kindShip, w.bodies[0].entity.Kind)
	require.Equal(t, kindBullet, w.bodies[4].entity.Kind)
}

// bruteForce counts overlapping ordered pairs without the tree.
func bruteForce(bodies []body) int {
	n := 0
	for i := range bodies {
		bi := bodies[i].entity.Bounds()
		for j := range bodies {
			if i != j && bi.Intersects(bodies[j].entity.Bounds()) {
				n++
			}
		}
	}
	return n
}

func TestWorldCollideMatchesBruteForce(t *testing.T) {
	for _, reuse := range []bool{false, true} {
		w := newWorld(400, 300, 300, 3, 6, rand.New(rand.NewSource(2)))
		w.reuse = reuse
		w.unique = true
		for frame := 0; frame < 5; frame++ {
			w.move(0.1)
			require.Equal(t, len(w.bodies), w.build())
			require.Equal(t, bruteForce(w.bodies), w.collide())
		}
	}
}

func TestWorldReuseKeepsTree(t *testing.T) {
	w := newWorld(400, 300, 100, 3, 6, rand.New(rand.NewSource(3)))
	w.reuse = true
	w.build()
	first := w.tree
	w.build()
	require.Same(t, first, w.tree)

	w.reuse = false
	w.build()
	require.NotSame(t, first, w.tree)
}

func TestRunAndReport(t *testing.T) {
	w := newWorld(400, 300, 100, 8, 6, rand.New(rand.NewSource(4)))
	report := &Report{Entities: 100, Width: 400, Height: 300, Capacity: 8, MaxDepth: 6}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	run(ctx, w, report)

	require.Greater(t, report.TotalFrames, int64(0))
	require.Equal(t, int(report.TotalFrames), len(report.BuildTime.Samples))
	require.LessOrEqual(t, report.BuildTime.Min, report.BuildTime.Avg)
	require.LessOrEqual(t, report.BuildTime.Avg, report.BuildTime.Max)
	require.Equal(t, int64(0), report.Dropped)
	require.GreaterOrEqual(t, report.LastTree.Stored, 100)

	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))
	require.Contains(t, buf.String(), "# Quadtree Stress Test Report")
	require.Contains(t, buf.String(), "- **Leaf Capacity:** 8")
}

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3, 1, 2}}
	s.Finalize()
	require.Equal(t, time.Duration(1), s.Min)
	require.Equal(t, time.Duration(3), s.Max)
	require.Equal(t, time.Duration(2), s.Avg)

	empty := Stats{}
	empty.Finalize()
	require.Equal(t, time.Duration(0), empty.Avg)
}

func TestBodiesKeepKindThroughTree(t *testing.T) {
	w := newWorld(400, 300, 40, 2, 6, rand.New(rand.NewSource(5)))
	w.build()
	kinds := map[int]int{}
	for _, b := range w.bodies {
		kinds[b.entity.ID] = b.entity.Kind
	}
	for _, e := range w.tree.QueryUnique(w.bounds(), nil, nil) {
		require.Equal(t, kinds[e.ID], e.Kind)
	}
	require.Equal(t, quadtree.Region64{X: 200, Y: 150, Width: 400, Height: 300}, w.tree.Bounds())
}
