package quadtree

// Quadtree32 is a quadtree whose coordinates are 32-bit floats.
type Quadtree32 = Quadtree[float32]

// Region32 is a region with 32-bit float coordinates.
type Region32 = Region[float32]

// Entity32 is an entity with 32-bit float coordinates.
type Entity32 = Entity[float32]

// Create a new float32 Quadtree with the default capacity and depth limit
func NewQuadtree32(bounds Region32) *Quadtree32 {
	return New(bounds)
}
