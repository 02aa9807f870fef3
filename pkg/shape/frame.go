package shape

import (
	"fmt"

	"github.com/edifice3d/edifice/pkg/bmesh"
	"github.com/edifice3d/edifice/pkg/geom"
)

const frameEps = 1e-12

// DeriveFrame builds the transform mapping world coordinates into the
// local space of a boundary reference: local Z equals normal, local X
// is the boundary direction projected into the plane perpendicular to
// normal (or the boundary direction itself when normal is parallel to
// the world vertical), and the origin is the boundary start vertex.
// The result is the inverse rotation composed with the inverse
// translation, so the translation applies before the rotation.
func DeriveFrame(start *bmesh.Loop, normal geom.Vec3) (geom.Mat4, error) {
	dir := start.Vector()
	if dir.Length() < frameEps {
		return geom.Mat4{}, fmt.Errorf("%w: zero-length boundary direction", ErrDegenerateFrame)
	}
	if normal.Length() < frameEps {
		return geom.Mat4{}, fmt.Errorf("%w: zero normal", ErrDegenerateFrame)
	}
	// Either branch below needs a boundary direction off the normal,
	// otherwise the X axis is undefined.
	if dir.Normalize().Cross(normal.Normalize()).Length() < frameEps {
		return geom.Mat4{}, fmt.Errorf("%w: boundary direction parallel to normal", ErrDegenerateFrame)
	}

	var x geom.Vec3
	if normal.Cross(geom.ZAxis).Length() < frameEps {
		x = dir.Normalize()
	} else {
		x = dir.Sub(normal.Scale(normal.Dot(dir))).Normalize()
	}
	y := normal.Cross(x)

	o := start.Vert.Co
	return geom.Basis(x, y, normal).Mul(geom.Translate(-o.X, -o.Y, -o.Z)), nil
}
