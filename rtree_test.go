package quadtree

import (
	"math/rand"
	"testing"

	"github.com/dhconnelly/rtreego"
	"github.com/stretchr/testify/require"
)

type rtreeEntity struct {
	Entity[float64]
	rect rtreego.Rect
}

func (r *rtreeEntity) Bounds() rtreego.Rect {
	return r.rect
}

func toRtreeRect(t *testing.T, r Region[float64]) rtreego.Rect {
	rect, err := rtreego.NewRect(rtreego.Point{r.MinX(), r.MinY()}, []float64{r.Width, r.Height})
	require.NoError(t, err)
	return rect
}

// Everything an R-tree finds must also be found by the quadtree.
func TestAgainstRtree(t *testing.T) {
	dim := 256
	q := NewWithLimits(Region[float64]{X: 128, Y: 128, Width: 256, Height: 256}, 6, 8, 0)
	rt := rtreego.NewTree(2, 25, 50)
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 3000; i++ {
		e := randomEntity[float64](rng, i, dim, 10)
		// rtreego rejects zero-length sides
		e.Width++
		e.Height++
		e.Position.X = min(max(e.Position.X, e.Width/2), float64(dim)-e.Width/2)
		e.Position.Y = min(max(e.Position.Y, e.Height/2), float64(dim)-e.Height/2)
		require.True(t, q.Insert(e))
		rt.Insert(&rtreeEntity{Entity: e, rect: toRtreeRect(t, e.Bounds())})
	}
	require.Equal(t, 3000, rt.Size())

	results := []Entity[float64]{}
	seen := NewIDSet(256)
	for i := 0; i < 500; i++ {
		qr := randomEntity[float64](rng, 0, dim, 40).Bounds()
		qr.Width++
		qr.Height++

		seen.Reset()
		results = q.QueryUnique(qr, seen, results)
		for _, r := range results {
			require.True(t, qr.Intersects(r.Bounds()))
		}
		for _, s := range rt.SearchIntersect(toRtreeRect(t, qr)) {
			require.True(t, seen.Has(s.(*rtreeEntity).ID))
		}
	}
}
