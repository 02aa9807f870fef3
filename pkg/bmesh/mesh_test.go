package bmesh

import (
	"errors"
	"testing"

	"github.com/edifice3d/edifice/pkg/geom"
)

// newTestQuad builds a unit square in the XY plane, wound
// counter-clockwise seen from +Z.
func newTestQuad(t *testing.T) (*Mesh, [4]*Vertex, *Face) {
	t.Helper()
	m := NewMesh()
	verts := [4]*Vertex{
		m.AddVertex(geom.Vec3{X: 0, Y: 0, Z: 0}),
		m.AddVertex(geom.Vec3{X: 1, Y: 0, Z: 0}),
		m.AddVertex(geom.Vec3{X: 1, Y: 1, Z: 0}),
		m.AddVertex(geom.Vec3{X: 0, Y: 1, Z: 0}),
	}
	f, err := m.AddFace(verts[0], verts[1], verts[2], verts[3])
	if err != nil {
		t.Fatalf("AddFace() error = %v", err)
	}
	return m, verts, f
}

func TestAddFaceTopology(t *testing.T) {
	m, verts, f := newTestQuad(t)

	if len(m.Faces()) != 1 || len(m.Edges()) != 4 || len(m.Verts()) != 4 {
		t.Fatalf("mesh counts = %d faces, %d edges, %d verts, want 1/4/4",
			len(m.Faces()), len(m.Edges()), len(m.Verts()))
	}
	if f.Len() != 4 {
		t.Errorf("Face.Len() = %d, want 4", f.Len())
	}
	if f.Loop().Vert != verts[0] {
		t.Error("first loop should start at the first vertex")
	}

	l := f.Loop()
	for i := 0; i < 4; i++ {
		if l.Vert != verts[i] {
			t.Errorf("loop %d starts at wrong vertex", i)
		}
		if l.EndVert() != verts[(i+1)%4] {
			t.Errorf("loop %d ends at wrong vertex", i)
		}
		if l.Face() != f {
			t.Errorf("loop %d has wrong face", i)
		}
		if l.Next().Prev() != l {
			t.Errorf("loop %d next/prev mismatch", i)
		}
		l = l.Next()
	}
	if l != f.Loop() {
		t.Error("boundary cycle does not close")
	}
}

func TestAddFaceRejectsDegenerate(t *testing.T) {
	m := NewMesh()
	a := m.AddVertex(geom.Vec3{})
	b := m.AddVertex(geom.Vec3{X: 1})

	if _, err := m.AddFace(a, b); !errors.Is(err, ErrInvalidFace) {
		t.Errorf("AddFace with 2 verts: error = %v, want ErrInvalidFace", err)
	}
	c := m.AddVertex(geom.Vec3{Y: 1})
	if _, err := m.AddFace(a, b, c, a); !errors.Is(err, ErrInvalidFace) {
		t.Errorf("AddFace with repeated vert: error = %v, want ErrInvalidFace", err)
	}
}

func TestEdgeSharing(t *testing.T) {
	m := NewMesh()
	a := m.AddVertex(geom.Vec3{X: 0, Y: 0})
	b := m.AddVertex(geom.Vec3{X: 1, Y: 0})
	c := m.AddVertex(geom.Vec3{X: 1, Y: 1})
	d := m.AddVertex(geom.Vec3{X: 0, Y: 1})
	e := m.AddVertex(geom.Vec3{X: 2, Y: 0})
	g := m.AddVertex(geom.Vec3{X: 2, Y: 1})

	f1, err := m.AddFace(a, b, c, d)
	if err != nil {
		t.Fatalf("AddFace() error = %v", err)
	}
	f2, err := m.AddFace(b, e, g, c)
	if err != nil {
		t.Fatalf("AddFace() error = %v", err)
	}

	if len(m.Edges()) != 7 {
		t.Errorf("edge count = %d, want 7 (one shared)", len(m.Edges()))
	}

	shared := m.EdgeBetween(b, c)
	if shared == nil {
		t.Fatal("EdgeBetween(b, c) = nil")
	}
	if m.EdgeBetween(c, b) != shared {
		t.Error("EdgeBetween should be order-independent")
	}

	faces := shared.Faces()
	if len(faces) != 2 {
		t.Fatalf("shared edge has %d faces, want 2", len(faces))
	}

	l1 := f1.LoopOn(shared)
	l2 := f2.LoopOn(shared)
	if l1 == nil || l2 == nil {
		t.Fatal("both faces should have a loop on the shared edge")
	}
	if l1.RadialOther() != l2 || l2.RadialOther() != l1 {
		t.Error("radial loops across the shared edge do not link up")
	}
	// Consistent winding traverses a shared edge in opposite directions.
	if l1.Vert != b || l2.Vert != c {
		t.Errorf("shared edge runs %v->%v and %v->%v, want opposite directions",
			l1.Vert.Co, l1.EndVert().Co, l2.Vert.Co, l2.EndVert().Co)
	}
}

func TestCalcNormal(t *testing.T) {
	_, _, f := newTestQuad(t)

	if f.Normal() != (geom.Vec3{}) {
		t.Errorf("fresh face normal = %v, want zero", f.Normal())
	}

	n := f.CalcNormal()
	want := geom.Vec3{X: 0, Y: 0, Z: 1}
	if n != want {
		t.Errorf("CalcNormal() = %v, want %v", n, want)
	}
	if f.Normal() != want {
		t.Error("CalcNormal should cache the result")
	}
}

func TestReverse(t *testing.T) {
	m, verts, f := newTestQuad(t)
	f.CalcNormal()
	head := f.Loop()

	f.Reverse()

	if f.Loop() != head {
		t.Error("Reverse should keep the boundary head loop")
	}
	if head.Vert != verts[0] {
		t.Error("loops should stay attached to their vertices")
	}
	if head.EndVert() != verts[3] {
		t.Errorf("reversed first loop ends at %v, want %v", head.EndVert().Co, verts[3].Co)
	}
	if head.Edge() != m.EdgeBetween(verts[0], verts[3]) {
		t.Error("reversed first loop should run along the old closing edge")
	}

	l := head
	for i := 0; i < 4; i++ {
		l = l.Next()
	}
	if l != head {
		t.Error("reversed boundary cycle does not close")
	}

	if got := (geom.Vec3{X: 0, Y: 0, Z: -1}); f.Normal() != got {
		t.Errorf("reversed normal = %v, want %v", f.Normal(), got)
	}

	// Radial bookkeeping follows the loops onto their new edges.
	e01 := m.EdgeBetween(verts[0], verts[1])
	loops := e01.Loops()
	if len(loops) != 1 || loops[0].Vert != verts[1] {
		t.Error("edge radial list not updated after reverse")
	}
}

func TestKillFace(t *testing.T) {
	m := NewMesh()
	a := m.AddVertex(geom.Vec3{X: 0, Y: 0})
	b := m.AddVertex(geom.Vec3{X: 1, Y: 0})
	c := m.AddVertex(geom.Vec3{X: 1, Y: 1})
	d := m.AddVertex(geom.Vec3{X: 0, Y: 1})
	e := m.AddVertex(geom.Vec3{X: 2, Y: 0})
	g := m.AddVertex(geom.Vec3{X: 2, Y: 1})

	if _, err := m.AddFace(a, b, c, d); err != nil {
		t.Fatalf("AddFace() error = %v", err)
	}
	f2, err := m.AddFace(b, e, g, c)
	if err != nil {
		t.Fatalf("AddFace() error = %v", err)
	}

	if err := m.KillFace(f2); err != nil {
		t.Fatalf("KillFace() error = %v", err)
	}

	if len(m.Faces()) != 1 {
		t.Errorf("face count after kill = %d, want 1", len(m.Faces()))
	}
	if m.EdgeBetween(b, c) == nil {
		t.Error("shared edge should survive while the other face uses it")
	}
	if m.EdgeBetween(b, e) != nil {
		t.Error("exclusive edge should be pruned with its face")
	}
	if len(m.Verts()) != 6 {
		t.Errorf("vert count after kill = %d, want 6 (verts are kept)", len(m.Verts()))
	}

	if err := m.KillFace(f2); !errors.Is(err, ErrUnknownFace) {
		t.Errorf("second KillFace: error = %v, want ErrUnknownFace", err)
	}
}

func TestEdgeLengthAndOther(t *testing.T) {
	m := NewMesh()
	a := m.AddVertex(geom.Vec3{X: 0, Y: 0, Z: 0})
	b := m.AddVertex(geom.Vec3{X: 3, Y: 4, Z: 0})
	c := m.AddVertex(geom.Vec3{X: 0, Y: 4, Z: 0})
	if _, err := m.AddFace(a, b, c); err != nil {
		t.Fatalf("AddFace() error = %v", err)
	}

	e := m.EdgeBetween(a, b)
	if e.Length() != 5 {
		t.Errorf("Edge.Length() = %v, want 5", e.Length())
	}
	if e.Other(a) != b || e.Other(b) != a {
		t.Error("Edge.Other should return the opposite endpoint")
	}
	if e.Other(c) != nil {
		t.Error("Edge.Other with a foreign vertex should return nil")
	}
}

func TestBounds(t *testing.T) {
	m := NewMesh()
	if m.Bounds() != (Bounds{}) {
		t.Error("empty mesh should have zero bounds")
	}

	m.AddVertex(geom.Vec3{X: -1, Y: 2, Z: 0})
	m.AddVertex(geom.Vec3{X: 3, Y: -5, Z: 7})

	got := m.Bounds()
	want := Bounds{
		Min: geom.Vec3{X: -1, Y: -5, Z: 0},
		Max: geom.Vec3{X: 3, Y: 2, Z: 7},
	}
	if got != want {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}
}
