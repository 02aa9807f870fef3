package bmesh

// ExtrudeResult describes the geometry created by ExtrudeFaceRegion.
type ExtrudeResult struct {
	// Cap is the duplicated face, coincident with the original until
	// its vertices are translated.
	Cap *Face
	// Sides holds one quad per original boundary edge, in boundary
	// order starting at the original face's first loop.
	Sides []*Face
	// CapVerts are the duplicated vertices, matching the original
	// boundary order.
	CapVerts []*Vertex
	// SideOf maps each original boundary edge to its side quad.
	SideOf map[*Edge]*Face
}

// ExtrudeFaceRegion duplicates the boundary of f into a coincident cap
// face with the same winding and connects the two boundaries with one
// side quad per edge. The original face is reversed so the resulting
// shell faces outward, and the normals of the original and the cap are
// recomputed. Side quads have zero area until the cap is translated,
// so their normals are left zero.
func (m *Mesh) ExtrudeFaceRegion(f *Face) (*ExtrudeResult, error) {
	if !m.hasFace(f) {
		return nil, ErrUnknownFace
	}

	verts := f.Verts()
	n := len(verts)

	capVerts := make([]*Vertex, n)
	for i, v := range verts {
		capVerts[i] = m.AddVertex(v.Co)
	}
	capFace, err := m.AddFace(capVerts...)
	if err != nil {
		return nil, err
	}

	sides := make([]*Face, 0, n)
	sideOf := make(map[*Edge]*Face, n)
	for i := range verts {
		j := (i + 1) % n
		e := m.EdgeBetween(verts[i], verts[j])
		side, err := m.AddFace(verts[i], verts[j], capVerts[j], capVerts[i])
		if err != nil {
			return nil, err
		}
		sides = append(sides, side)
		sideOf[e] = side
	}

	f.Reverse()
	f.CalcNormal()
	capFace.CalcNormal()

	return &ExtrudeResult{
		Cap:      capFace,
		Sides:    sides,
		CapVerts: capVerts,
		SideOf:   sideOf,
	}, nil
}
