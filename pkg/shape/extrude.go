package shape

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/edifice3d/edifice/pkg/geom"
)

func isHorizontal(n geom.Vec3, threshold float64) bool {
	return math.Abs(n.Z) > threshold
}

// Extrude raises the shape along its normal by depth and returns the
// resulting volumetric shape: the original face as base, the cap, and
// the side walls in boundary order. Zero and negative depths are
// accepted and yield degenerate or inverted volumes. A cap that is not
// horizontal fails with ErrUnsupportedExtrusion; the extruded mesh
// geometry is not rolled back on error.
func (s *Shape2D) Extrude(ses *Session, depth float64) (*Shape3D, error) {
	return extrude(ses, s, depth)
}

// Extrude raises the rectangle along its normal by depth. The base of
// the returned volume keeps its rectangular identity.
func (r *Rect) Extrude(ses *Session, depth float64) (*Shape3D, error) {
	return extrude(ses, r, depth)
}

func extrude(ses *Session, base Planar, depth float64) (*Shape3D, error) {
	mesh := ses.Mesh()
	res, err := mesh.ExtrudeFaceRegion(base.Face())
	if err != nil {
		return nil, err
	}

	capNormal := res.Cap.Normal()
	mesh.TranslateVertices(res.CapVerts, capNormal.Scale(depth))
	for _, side := range res.Sides {
		side.CalcNormal()
	}

	// The original boundary reference now runs along one of the base
	// edges of the side ring; anchor the walk there.
	start := base.Start()
	side := res.SideOf[start.Edge()]
	if side == nil {
		return nil, fmt.Errorf("%w: boundary reference lost its side face", ErrDegenerateShape)
	}
	first := side.LoopOn(start.Edge())

	capLoop := first.Next().Next().RadialOther()
	shapes := []Planar{base, NewShape2D(capLoop)}

	if !isHorizontal(capNormal, ses.threshold) {
		return nil, fmt.Errorf("%w: cap normal %v is not vertical", ErrUnsupportedExtrusion, capNormal)
	}

	loop := first
	for {
		shapes = append(shapes, NewRect(loop))
		rad := loop.Next().RadialOther()
		if rad == nil {
			return nil, fmt.Errorf("%w: open boundary in extrusion shell", ErrDegenerateShape)
		}
		loop = rad.Next()
		if loop == first {
			break
		}
	}

	ses.log.Debug("extruded face",
		zap.Float64("depth", depth),
		zap.Int("sides", len(shapes)-2))

	vol := NewShape3D(shapes, first)
	vol.threshold = ses.threshold
	return vol, nil
}
