package shape

import (
	"errors"
	"math"
	"testing"

	"github.com/edifice3d/edifice/pkg/bmesh"
	"github.com/edifice3d/edifice/pkg/geom"
)

func TestExtrudeSquareBase(t *testing.T) {
	ses, r := footprint(t, 5, 5)

	vol, err := r.Extrude(ses, 3)
	if err != nil {
		t.Fatalf("Extrude() error = %v", err)
	}

	if got := len(vol.Shapes()); got != 6 {
		t.Fatalf("got %d constituents, want 6", got)
	}
	if vol.Base() != Planar(r) {
		t.Error("Base() is not the original shape")
	}
	if got := len(vol.Sides()); got != 4 {
		t.Errorf("got %d sides, want 4", got)
	}
	for i, s := range vol.Sides() {
		if _, ok := s.(*Rect); !ok {
			t.Errorf("side %d is %T, want *Rect", i, s)
		}
	}

	// The cap sits depth above the base plane.
	for _, v := range vol.Cap().Face().Verts() {
		if math.Abs(v.Co.Z-3) > 1e-9 {
			t.Errorf("cap vertex at z = %g, want 3", v.Co.Z)
		}
	}
	// The base is reversed to face outward, away from the volume.
	if got := vol.Base().Face().Normal(); got.Distance(geom.Vec3{Z: -1}) > 1e-9 {
		t.Errorf("base normal = %v, want (0, 0, -1)", got)
	}
	if got := vol.Cap().Face().Normal(); got.Distance(geom.ZAxis) > 1e-9 {
		t.Errorf("cap normal = %v, want %v", got, geom.ZAxis)
	}
}

func TestExtrudeSideRing(t *testing.T) {
	ses, r := footprint(t, 5, 5)

	vol, err := r.Extrude(ses, 3)
	if err != nil {
		t.Fatalf("Extrude() error = %v", err)
	}

	sides := vol.Sides()

	// Every side faces outward, horizontally.
	seen := make(map[geom.Vec3]bool)
	for i, s := range sides {
		n := s.Face().Normal()
		if math.Abs(n.Z) > 1e-9 {
			t.Errorf("side %d normal = %v, want horizontal", i, n)
		}
		key := geom.Vec3{X: math.Round(n.X), Y: math.Round(n.Y), Z: 0}
		if seen[key] {
			t.Errorf("side %d repeats outward direction %v", i, key)
		}
		seen[key] = true
	}

	// Consecutive sides share a vertical edge: the ring is in boundary
	// order, not an arbitrary permutation.
	for i := range sides {
		next := sides[(i+1)%len(sides)]
		shared := 0
		for _, v := range sides[i].Face().Verts() {
			for _, w := range next.Face().Verts() {
				if v == w {
					shared++
				}
			}
		}
		if shared != 2 {
			t.Errorf("sides %d and %d share %d vertices, want 2", i, (i+1)%len(sides), shared)
		}
	}
}

func TestExtrudePentagon(t *testing.T) {
	ses := newTestSession()
	m := ses.Mesh()

	var vs [5]*bmesh.Vertex
	for i := range vs {
		angle := 2 * math.Pi * float64(i) / 5
		vs[i] = m.AddVertex(geom.Vec3{X: math.Cos(angle), Y: math.Sin(angle)})
	}
	f, err := m.AddFace(vs[0], vs[1], vs[2], vs[3], vs[4])
	if err != nil {
		t.Fatalf("AddFace() error = %v", err)
	}

	vol, err := NewShape2D(f.Loop()).Extrude(ses, 2)
	if err != nil {
		t.Fatalf("Extrude() error = %v", err)
	}
	if got := len(vol.Shapes()); got != 7 {
		t.Errorf("got %d constituents, want 7 for a pentagon", got)
	}
}

func TestExtrudeZeroDepth(t *testing.T) {
	ses, r := footprint(t, 5, 5)

	// A zero-height volume is degenerate but accepted.
	vol, err := r.Extrude(ses, 0)
	if err != nil {
		t.Fatalf("Extrude() error = %v", err)
	}
	if got := len(vol.Shapes()); got != 6 {
		t.Errorf("got %d constituents, want 6", got)
	}
}

func TestExtrudeNegativeDepth(t *testing.T) {
	ses, r := footprint(t, 5, 5)

	vol, err := r.Extrude(ses, -3)
	if err != nil {
		t.Fatalf("Extrude() error = %v", err)
	}
	for _, v := range vol.Cap().Face().Verts() {
		if math.Abs(v.Co.Z+3) > 1e-9 {
			t.Errorf("cap vertex at z = %g, want -3", v.Co.Z)
		}
	}
}

func TestExtrudeObliqueCap(t *testing.T) {
	ses := newTestSession()
	m := ses.Mesh()
	// A facade in the XZ plane extrudes to a vertical cap.
	a := m.AddVertex(geom.Vec3{X: 0, Y: 0, Z: 0})
	b := m.AddVertex(geom.Vec3{X: 4, Y: 0, Z: 0})
	c := m.AddVertex(geom.Vec3{X: 4, Y: 0, Z: 3})
	d := m.AddVertex(geom.Vec3{X: 0, Y: 0, Z: 3})
	f, err := m.AddFace(a, b, c, d)
	if err != nil {
		t.Fatalf("AddFace() error = %v", err)
	}

	_, err = NewShape2D(f.Loop()).Extrude(ses, 1)
	if !errors.Is(err, ErrUnsupportedExtrusion) {
		t.Errorf("vertical cap: error = %v, want ErrUnsupportedExtrusion", err)
	}
}
