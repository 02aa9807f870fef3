package shape

import (
	"github.com/edifice3d/edifice/pkg/bmesh"
	"github.com/edifice3d/edifice/pkg/geom"
)

// Shape3D is a volumetric shape produced by one extrusion: the base
// face, the cap opposite it, and the side walls between them.
type Shape3D struct {
	shapes []Planar
	start  *bmesh.Loop

	threshold float64
	frame     geom.Mat4
	hasFrame  bool
}

// NewShape3D builds a volumetric shape over its constituent faces,
// anchored at the given boundary reference. Constituents are ordered
// base, cap, then side walls in boundary order.
func NewShape3D(shapes []Planar, start *bmesh.Loop) *Shape3D {
	return &Shape3D{
		shapes:    shapes,
		start:     start,
		threshold: HorizontalThreshold,
	}
}

// Shapes returns the constituent faces in base, cap, sides order.
func (v *Shape3D) Shapes() []Planar {
	return v.shapes
}

// Base returns the originating planar shape.
func (v *Shape3D) Base() Planar {
	return v.shapes[0]
}

// Cap returns the face opposite the base.
func (v *Shape3D) Cap() Planar {
	return v.shapes[1]
}

// Sides returns the side walls in boundary order.
func (v *Shape3D) Sides() []Planar {
	return v.shapes[2:]
}

// Start returns the boundary reference anchoring the volume frame.
func (v *Shape3D) Start() *bmesh.Loop {
	return v.start
}

// Origin returns the world position of the anchoring vertex.
func (v *Shape3D) Origin() geom.Vec3 {
	return v.start.Vert.Co
}

// Frame returns the world-to-local transform of the volume, memoized
// on first use. Local Z is the world vertical axis regardless of the
// base plane; local X follows the anchoring boundary direction.
func (v *Shape3D) Frame() (geom.Mat4, error) {
	if v.hasFrame {
		return v.frame, nil
	}
	frame, err := DeriveFrame(v.start, geom.ZAxis)
	if err != nil {
		return geom.Mat4{}, err
	}
	v.frame = frame
	v.hasFrame = true
	return frame, nil
}
