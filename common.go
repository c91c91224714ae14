package quadtree

// Point is a 2D position.
type Point[TFloat float32 | float64] struct {
	X TFloat
	Y TFloat
}

// Region is an axis-aligned rectangle described by its center and full extent.
// Width/Height are not validated. A zero extent is a line or a point. A negative
// extent behaves as an inverted interval, which only intersects regions that
// span the whole of it.
type Region[TFloat float32 | float64] struct {
	X      TFloat // Center X
	Y      TFloat // Center Y
	Width  TFloat
	Height TFloat
}

// RegionFromMinMax builds a center-based region from corner coordinates.
func RegionFromMinMax[TFloat float32 | float64](minX, minY, maxX, maxY TFloat) Region[TFloat] {
	return Region[TFloat]{
		X:      (minX + maxX) / 2,
		Y:      (minY + maxY) / 2,
		Width:  maxX - minX,
		Height: maxY - minY,
	}
}

func (r Region[TFloat]) MinX() TFloat { return r.X - r.Width/2 }
func (r Region[TFloat]) MinY() TFloat { return r.Y - r.Height/2 }
func (r Region[TFloat]) MaxX() TFloat { return r.X + r.Width/2 }
func (r Region[TFloat]) MaxY() TFloat { return r.Y + r.Height/2 }

// Intersects reports whether the two regions overlap.
// Touching edges count as intersecting.
func (r Region[TFloat]) Intersects(o Region[TFloat]) bool {
	return !(o.MinX() > r.MaxX() ||
		o.MaxX() < r.MinX() ||
		o.MinY() > r.MaxY() ||
		o.MaxY() < r.MinY())
}

// quadrants splits r into NW, NE, SW, SE, in that order.
// Each child is half the size of r, centered a quarter extent away from r's center.
func (r Region[TFloat]) quadrants() [4]Region[TFloat] {
	w := r.Width / 2
	h := r.Height / 2
	return [4]Region[TFloat]{
		{X: r.X - w/2, Y: r.Y - h/2, Width: w, Height: h},
		{X: r.X + w/2, Y: r.Y - h/2, Width: w, Height: h},
		{X: r.X - w/2, Y: r.Y + h/2, Width: w, Height: h},
		{X: r.X + w/2, Y: r.Y + h/2, Width: w, Height: h},
	}
}

// Entity is the value stored in the tree.
// The tree only looks at Position, Width and Height. Kind and ID belong to the caller.
type Entity[TFloat float32 | float64] struct {
	Position Point[TFloat]
	Width    TFloat
	Height   TFloat
	Kind     int
	ID       int
}

// Bounds returns the region covered by the entity, centered on its position.
func (e Entity[TFloat]) Bounds() Region[TFloat] {
	return Region[TFloat]{
		X:      e.Position.X,
		Y:      e.Position.Y,
		Width:  e.Width,
		Height: e.Height,
	}
}
