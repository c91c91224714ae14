package quadtree

import "github.com/paulmach/orb"

// Bound converts r to an orb.Bound.
func (r Region[TFloat]) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{float64(r.MinX()), float64(r.MinY())},
		Max: orb.Point{float64(r.MaxX()), float64(r.MaxY())},
	}
}

// RegionFromBound converts an orb.Bound into a center-based region.
func RegionFromBound[TFloat float32 | float64](b orb.Bound) Region[TFloat] {
	return Region[TFloat]{
		X:      TFloat((b.Min[0] + b.Max[0]) / 2),
		Y:      TFloat((b.Min[1] + b.Max[1]) / 2),
		Width:  TFloat(b.Max[0] - b.Min[0]),
		Height: TFloat(b.Max[1] - b.Min[1]),
	}
}

func (p Point[TFloat]) OrbPoint() orb.Point {
	return orb.Point{float64(p.X), float64(p.Y)}
}

// PointFromOrb converts an orb.Point.
func PointFromOrb[TFloat float32 | float64](p orb.Point) Point[TFloat] {
	return Point[TFloat]{X: TFloat(p[0]), Y: TFloat(p[1])}
}
