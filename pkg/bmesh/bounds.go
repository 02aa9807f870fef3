package bmesh

import "github.com/edifice3d/edifice/pkg/geom"

// Bounds holds the axis-aligned bounding box of the mesh.
type Bounds struct {
	Min geom.Vec3
	Max geom.Vec3
}

// Bounds returns the bounding box over all mesh vertices. An empty
// mesh yields the zero box.
func (m *Mesh) Bounds() Bounds {
	if len(m.verts) == 0 {
		return Bounds{}
	}

	b := Bounds{
		Min: geom.Vec3{X: 1e10, Y: 1e10, Z: 1e10},
		Max: geom.Vec3{X: -1e10, Y: -1e10, Z: -1e10},
	}
	for _, v := range m.verts {
		updateBounds(&b, v.Co)
	}
	return b
}

func updateBounds(b *Bounds, p geom.Vec3) {
	if p.X < b.Min.X {
		b.Min.X = p.X
	}
	if p.Y < b.Min.Y {
		b.Min.Y = p.Y
	}
	if p.Z < b.Min.Z {
		b.Min.Z = p.Z
	}
	if p.X > b.Max.X {
		b.Max.X = p.X
	}
	if p.Y > b.Max.Y {
		b.Max.Y = p.Y
	}
	if p.Z > b.Max.Z {
		b.Max.Z = p.Z
	}
}
