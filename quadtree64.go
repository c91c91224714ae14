package quadtree

// Quadtree64 is a quadtree whose coordinates are 64-bit floats.
type Quadtree64 = Quadtree[float64]

// Region64 is a region with 64-bit float coordinates.
type Region64 = Region[float64]

// Entity64 is an entity with 64-bit float coordinates.
type Entity64 = Entity[float64]

// Create a new float64 Quadtree with the default capacity and depth limit
func NewQuadtree64(bounds Region64) *Quadtree64 {
	return New(bounds)
}
