// Package shape implements the geometric core of a procedural shape
// grammar: planar shapes anchored at mesh boundary references,
// rectangular splitting, extrusion into volumetric shapes and
// orientation-based face classification.
package shape

import (
	"fmt"

	"github.com/edifice3d/edifice/pkg/bmesh"
	"github.com/edifice3d/edifice/pkg/geom"
)

// Planar is a 2D shape wrapping a single mesh face. The implementation
// set is closed: Shape2D and Rect.
type Planar interface {
	Face() *bmesh.Face
	Start() *bmesh.Loop
	Origin() geom.Vec3
	Normal() geom.Vec3
	Frame() (geom.Mat4, error)

	planar()
}

// Shape2D is a planar shape anchored at a directed boundary reference
// of its face.
type Shape2D struct {
	face  *bmesh.Face
	start *bmesh.Loop

	frame    geom.Mat4
	hasFrame bool
}

// NewShape2D wraps the face owning the given boundary reference.
func NewShape2D(start *bmesh.Loop) *Shape2D {
	return &Shape2D{face: start.Face(), start: start}
}

func (s *Shape2D) planar() {}

// Face returns the wrapped mesh face.
func (s *Shape2D) Face() *bmesh.Face {
	return s.face
}

// Start returns the boundary reference anchoring the shape.
func (s *Shape2D) Start() *bmesh.Loop {
	return s.start
}

// Origin returns the world position of the boundary start vertex.
func (s *Shape2D) Origin() geom.Vec3 {
	return s.start.Vert.Co
}

// Normal computes the face normal as the cross product of the first
// two boundary edge vectors. Unlike the normal cached on the face it
// is valid for freshly synthesized boundaries.
func (s *Shape2D) Normal() geom.Vec3 {
	first := s.start.Vector()
	second := s.start.Next().Vector()
	return first.Cross(second).Normalize()
}

// Frame returns the world-to-local transform of the shape, derived on
// first use from the boundary reference and the geometric normal, then
// memoized. Shape geometry is assumed immutable once frames are in
// use.
func (s *Shape2D) Frame() (geom.Mat4, error) {
	if s.hasFrame {
		return s.frame, nil
	}
	frame, err := DeriveFrame(s.start, s.Normal())
	if err != nil {
		return geom.Mat4{}, err
	}
	s.frame = frame
	s.hasFrame = true
	return frame, nil
}

// InitialShape wraps the first face of the session mesh, reversing it
// first when it points below the horizon, so derivations always start
// on an upward-facing base.
func InitialShape(ses *Session) (*Shape2D, error) {
	faces := ses.Mesh().Faces()
	if len(faces) == 0 {
		return nil, fmt.Errorf("%w: mesh has no faces", ErrDegenerateShape)
	}
	f := faces[0]
	if f.CalcNormal().Z < 0 {
		f.Reverse()
	}
	return NewShape2D(f.Loop()), nil
}
