package city

// boxIndices lists the 12 triangles of a box as local vertex indices,
// two per face: bottom, top, front, right, back, left.
var boxIndices = [IndicesPerBox]uint32{
	0, 1, 2, 2, 3, 0,
	4, 7, 6, 6, 5, 4,
	0, 4, 5, 5, 1, 0,
	1, 5, 6, 6, 2, 1,
	2, 6, 7, 7, 3, 2,
	3, 7, 4, 4, 0, 3,
}

// BuildMeshBuffers converts buildings into one interleaved position+colour
// vertex buffer and a matching triangle index buffer.
func BuildMeshBuffers(buildings []Building) ([]float32, []uint32) {
	vertices := make([]float32, 0, len(buildings)*FloatsPerBox)
	indices := make([]uint32, 0, len(buildings)*IndicesPerBox)
	for _, b := range buildings {
		vertices, indices = AppendBuilding(vertices, indices, b)
	}
	return vertices, indices
}

// AppendBuilding appends the 8 vertices and 36 indices of b.
// Indices are offset by the number of vertices already in the buffer.
func AppendBuilding(vertices []float32, indices []uint32, b Building) ([]float32, []uint32) {
	base := uint32(len(vertices) / FloatsPerVertex)

	hw := b.Width / 2
	hh := b.Height / 2
	hd := b.Depth / 2
	x, y, z := b.Position.X(), b.Position.Y(), b.Position.Z()

	r, g, bl := b.Color.X(), b.Color.Y(), b.Color.Z()
	tr, tg, tb := r+TopTint, g+TopTint, bl+TopTint

	vertices = append(vertices,
		// Bottom: front-left, front-right, back-right, back-left.
		x-hw, y-hh, z+hd, r, g, bl,
		x+hw, y-hh, z+hd, r, g, bl,
		x+hw, y-hh, z-hd, r, g, bl,
		x-hw, y-hh, z-hd, r, g, bl,
		// Top, same order.
		x-hw, y+hh, z+hd, tr, tg, tb,
		x+hw, y+hh, z+hd, tr, tg, tb,
		x+hw, y+hh, z-hd, tr, tg, tb,
		x-hw, y+hh, z-hd, tr, tg, tb,
	)
	for _, i := range boxIndices {
		indices = append(indices, base+i)
	}
	return vertices, indices
}
