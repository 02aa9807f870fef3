package shape

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/edifice3d/edifice/pkg/bmesh"
)

// Axis selects the boundary direction a rectangle is split along.
type Axis uint8

const (
	// X splits along the first boundary edge.
	X Axis = iota
	// Y splits along the second boundary edge.
	Y
)

// String returns the axis name.
func (a Axis) String() string {
	if a == Y {
		return "y"
	}
	return "x"
}

// Rect is a planar shape whose face has exactly four boundary
// vertices, which makes it splittable.
type Rect struct {
	Shape2D
}

// NewRect wraps a quad face at the given boundary reference.
func NewRect(start *bmesh.Loop) *Rect {
	return &Rect{Shape2D{face: start.Face(), start: start}}
}

// Split subdivides the rectangle along the given axis into one new
// rectangle per size entry, returned in boundary order. New vertices
// are interpolated on the two edges parallel to the axis; the final
// segment closes on the original end vertices so no drift accumulates.
// The consumed face stays valid until the session flushes its pending
// removals.
func (r *Rect) Split(ses *Session, axis Axis, sizes SplitSpec) ([]Cut, error) {
	if r.face.Len() != 4 {
		return nil, fmt.Errorf("%w: split needs a quad boundary, got %d vertices",
			ErrDegenerateShape, r.face.Len())
	}

	ref := r.start
	if axis == Y {
		ref = ref.Next()
	}
	cuts, err := CalcSplit(sizes, ref.Edge().Length())
	if err != nil {
		return nil, err
	}

	opp := ref.Next().Next()
	origin1, end1 := ref.Vert, ref.EndVert()
	origin2, end2 := opp.EndVert(), opp.Vert

	mesh := ses.Mesh()
	prev1, prev2 := origin1, origin2
	for i := range cuts {
		v1, v2 := end1, end2
		if i < len(cuts)-1 {
			t := cuts[i].Param
			v1 = mesh.AddVertex(origin1.Co.Lerp(end1.Co, t))
			v2 = mesh.AddVertex(origin2.Co.Lerp(end2.Co, t))
		}

		var f *bmesh.Face
		if axis == X {
			f, err = mesh.AddFace(prev1, v1, v2, prev2)
		} else {
			f, err = mesh.AddFace(prev2, prev1, v1, v2)
		}
		if err != nil {
			return nil, err
		}
		cuts[i].Shape = NewRect(f.Loop())
		prev1, prev2 = v1, v2
	}

	ses.MarkForRemoval(r.face)
	ses.log.Debug("split rectangle",
		zap.Stringer("axis", axis),
		zap.Int("parts", len(cuts)))
	return cuts, nil
}
