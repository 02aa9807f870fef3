package bmesh

import "github.com/edifice3d/edifice/pkg/geom"

// Vertex is a mesh vertex.
type Vertex struct {
	Co geom.Vec3

	id int
}

// Edge connects two vertices and records the boundary loops that run
// along it, one per adjacent face.
type Edge struct {
	V1, V2 *Vertex

	loops []*Loop
}

// Loops returns the boundary loops running along the edge.
// The returned slice is owned by the edge and must not be modified.
func (e *Edge) Loops() []*Loop {
	return e.loops
}

// Faces returns the faces adjacent to the edge.
func (e *Edge) Faces() []*Face {
	faces := make([]*Face, 0, len(e.loops))
	for _, l := range e.loops {
		seen := false
		for _, f := range faces {
			if f == l.face {
				seen = true
				break
			}
		}
		if !seen {
			faces = append(faces, l.face)
		}
	}
	return faces
}

// Other returns the vertex at the opposite end from v, or nil when v is
// not an endpoint of the edge.
func (e *Edge) Other(v *Vertex) *Vertex {
	switch v {
	case e.V1:
		return e.V2
	case e.V2:
		return e.V1
	}
	return nil
}

// Length returns the distance between the edge endpoints.
func (e *Edge) Length() float64 {
	return e.V1.Co.Distance(e.V2.Co)
}

// Loop is a directed boundary reference: a step of one face's boundary
// cycle, starting at Vert and running along its edge to the next vertex.
type Loop struct {
	Vert *Vertex

	edge *Edge
	face *Face
	next *Loop
	prev *Loop
}

// Edge returns the edge the loop runs along.
func (l *Loop) Edge() *Edge {
	return l.edge
}

// Face returns the face the loop belongs to.
func (l *Loop) Face() *Face {
	return l.face
}

// Next returns the following loop in the face boundary cycle.
func (l *Loop) Next() *Loop {
	return l.next
}

// Prev returns the preceding loop in the face boundary cycle.
func (l *Loop) Prev() *Loop {
	return l.prev
}

// EndVert returns the vertex the loop runs to.
func (l *Loop) EndVert() *Vertex {
	return l.next.Vert
}

// Vector returns the displacement from the loop start to its end vertex.
func (l *Loop) Vector() geom.Vec3 {
	return l.next.Vert.Co.Sub(l.Vert.Co)
}

// RadialOther returns the loop of the neighbouring face across this
// loop's edge, or nil on an open boundary. With more than two faces
// around the edge the first other loop in radial order is returned.
func (l *Loop) RadialOther() *Loop {
	for _, other := range l.edge.loops {
		if other != l {
			return other
		}
	}
	return nil
}

// Face is a polygonal face bounded by a cycle of loops.
type Face struct {
	loop   *Loop
	size   int
	normal geom.Vec3
}

// Loop returns the first loop of the face boundary cycle.
func (f *Face) Loop() *Loop {
	return f.loop
}

// Len returns the number of boundary vertices.
func (f *Face) Len() int {
	return f.size
}

// Loops returns the boundary loops in cycle order, starting at Loop().
func (f *Face) Loops() []*Loop {
	loops := make([]*Loop, 0, f.size)
	l := f.loop
	for i := 0; i < f.size; i++ {
		loops = append(loops, l)
		l = l.next
	}
	return loops
}

// Verts returns the boundary vertices in cycle order.
func (f *Face) Verts() []*Vertex {
	verts := make([]*Vertex, 0, f.size)
	l := f.loop
	for i := 0; i < f.size; i++ {
		verts = append(verts, l.Vert)
		l = l.next
	}
	return verts
}

// LoopOn returns the face's loop running along e, or nil when the face
// does not border that edge.
func (f *Face) LoopOn(e *Edge) *Loop {
	l := f.loop
	for i := 0; i < f.size; i++ {
		if l.edge == e {
			return l
		}
		l = l.next
	}
	return nil
}

// Normal returns the cached face normal. Freshly created faces carry a
// zero normal until CalcNormal runs.
func (f *Face) Normal() geom.Vec3 {
	return f.normal
}

// CalcNormal recomputes the face normal from the boundary vertices
// using Newell's method, caches it and returns it.
func (f *Face) CalcNormal() geom.Vec3 {
	var n geom.Vec3
	l := f.loop
	for i := 0; i < f.size; i++ {
		a := l.Vert.Co
		b := l.next.Vert.Co
		n.X += (a.Y - b.Y) * (a.Z + b.Z)
		n.Y += (a.Z - b.Z) * (a.X + b.X)
		n.Z += (a.X - b.X) * (a.Y + b.Y)
		l = l.next
	}
	f.normal = n.Normalize()
	return f.normal
}

// Reverse flips the face winding in place. Loops stay attached to their
// vertices; each takes over its old predecessor's edge, and the cached
// normal is negated.
func (f *Face) Reverse() {
	loops := f.Loops()
	n := len(loops)

	edges := make([]*Edge, n)
	for i, l := range loops {
		edges[i] = l.edge
		detachLoop(l)
	}

	for i, l := range loops {
		l.next = loops[(i-1+n)%n]
		l.prev = loops[(i+1)%n]
		l.edge = edges[(i-1+n)%n]
		l.edge.loops = append(l.edge.loops, l)
	}

	f.normal = f.normal.Neg()
}

func detachLoop(l *Loop) {
	loops := l.edge.loops
	for i, other := range loops {
		if other == l {
			l.edge.loops = append(loops[:i], loops[i+1:]...)
			return
		}
	}
}
