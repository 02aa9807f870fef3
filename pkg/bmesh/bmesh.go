// Package bmesh implements an editable boundary-representation mesh.
// Faces are cycles of directed loops, and the loops sharing an edge
// link the faces around it, so adjacency can be walked without search.
package bmesh

import (
	"errors"

	"github.com/edifice3d/edifice/pkg/geom"
)

var (
	// ErrInvalidFace is returned when a face would have fewer than
	// three distinct vertices.
	ErrInvalidFace = errors.New("face needs at least 3 distinct vertices")
	// ErrUnknownFace is returned when an operation targets a face the
	// mesh does not own.
	ErrUnknownFace = errors.New("face does not belong to this mesh")
)

type edgeKey struct {
	a, b int
}

// Mesh owns the vertices, edges and faces of one connected model.
// Edges are shared: two faces meeting along the same pair of vertices
// reference a single Edge, which is what makes radial traversal work.
type Mesh struct {
	verts []*Vertex
	edges []*Edge
	faces []*Face

	edgeIndex map[edgeKey]*Edge
	nextID    int
}

// NewMesh returns an empty mesh.
func NewMesh() *Mesh {
	return &Mesh{
		edgeIndex: make(map[edgeKey]*Edge),
	}
}

// Verts returns the mesh vertices in creation order.
func (m *Mesh) Verts() []*Vertex {
	return m.verts
}

// Edges returns the mesh edges in creation order.
func (m *Mesh) Edges() []*Edge {
	return m.edges
}

// Faces returns the mesh faces in creation order.
func (m *Mesh) Faces() []*Face {
	return m.faces
}

// AddVertex creates a vertex at the given position.
func (m *Mesh) AddVertex(co geom.Vec3) *Vertex {
	v := &Vertex{Co: co, id: m.nextID}
	m.nextID++
	m.verts = append(m.verts, v)
	return v
}

// AddFace creates a face over the given vertices in winding order,
// reusing existing edges between consecutive vertices and creating the
// missing ones. The new face's normal stays zero until CalcNormal runs.
func (m *Mesh) AddFace(verts ...*Vertex) (*Face, error) {
	if len(verts) < 3 {
		return nil, ErrInvalidFace
	}
	for i, v := range verts {
		for _, w := range verts[i+1:] {
			if v == w {
				return nil, ErrInvalidFace
			}
		}
	}

	f := &Face{size: len(verts)}
	loops := make([]*Loop, len(verts))
	for i, v := range verts {
		next := verts[(i+1)%len(verts)]
		e := m.EdgeBetween(v, next)
		if e == nil {
			e = m.addEdge(v, next)
		}
		l := &Loop{Vert: v, edge: e, face: f}
		e.loops = append(e.loops, l)
		loops[i] = l
	}
	for i, l := range loops {
		l.next = loops[(i+1)%len(loops)]
		l.prev = loops[(i-1+len(loops))%len(loops)]
	}

	f.loop = loops[0]
	m.faces = append(m.faces, f)
	return f, nil
}

// EdgeBetween returns the edge connecting a and b, or nil when none
// exists.
func (m *Mesh) EdgeBetween(a, b *Vertex) *Edge {
	return m.edgeIndex[keyFor(a, b)]
}

func (m *Mesh) addEdge(a, b *Vertex) *Edge {
	e := &Edge{V1: a, V2: b}
	m.edges = append(m.edges, e)
	m.edgeIndex[keyFor(a, b)] = e
	return e
}

func keyFor(a, b *Vertex) edgeKey {
	if a.id < b.id {
		return edgeKey{a.id, b.id}
	}
	return edgeKey{b.id, a.id}
}

// TranslateVertices moves the given vertices by offset. Cached face
// normals are not refreshed.
func (m *Mesh) TranslateVertices(verts []*Vertex, offset geom.Vec3) {
	for _, v := range verts {
		v.Co = v.Co.Add(offset)
	}
}

// KillFace removes a face from the mesh, detaching its loops and
// pruning edges left without any face. Vertices are never removed.
func (m *Mesh) KillFace(f *Face) error {
	idx := -1
	for i, g := range m.faces {
		if g == f {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrUnknownFace
	}
	m.faces = append(m.faces[:idx], m.faces[idx+1:]...)

	for _, l := range f.Loops() {
		e := l.edge
		detachLoop(l)
		if len(e.loops) == 0 {
			m.removeEdge(e)
		}
	}
	return nil
}

func (m *Mesh) removeEdge(e *Edge) {
	for i, g := range m.edges {
		if g == e {
			m.edges = append(m.edges[:i], m.edges[i+1:]...)
			break
		}
	}
	delete(m.edgeIndex, keyFor(e.V1, e.V2))
}

func (m *Mesh) hasFace(f *Face) bool {
	for _, g := range m.faces {
		if g == f {
			return true
		}
	}
	return false
}
