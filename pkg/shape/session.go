package shape

import (
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/edifice3d/edifice/pkg/bmesh"
)

// Options configure a session.
type Options struct {
	// HorizontalThreshold overrides the bound separating vertical from
	// horizontal normals. Zero keeps the default.
	HorizontalThreshold float64
	// Logger receives derivation debug output. Nil keeps it silent.
	Logger *zap.Logger
}

// Session owns the mutable state of one grammar derivation: the mesh
// being edited and the faces consumed by splits, which are removed
// together on Flush. Sessions are single-writer; calls must not run
// concurrently.
type Session struct {
	mesh      *bmesh.Mesh
	pending   []*bmesh.Face
	threshold float64
	log       *zap.Logger
}

// NewSession wraps a mesh for derivation.
func NewSession(mesh *bmesh.Mesh, opts Options) *Session {
	ses := &Session{
		mesh:      mesh,
		threshold: HorizontalThreshold,
		log:       zap.NewNop(),
	}
	if opts.HorizontalThreshold > 0 {
		ses.threshold = opts.HorizontalThreshold
	}
	if opts.Logger != nil {
		ses.log = opts.Logger
	}
	return ses
}

// Mesh returns the mesh under derivation.
func (s *Session) Mesh() *bmesh.Mesh {
	return s.mesh
}

// MarkForRemoval queues a consumed face for the next Flush. The face
// and any shapes wrapping it stay valid until then. Marking a face
// twice is a no-op.
func (s *Session) MarkForRemoval(f *bmesh.Face) {
	for _, g := range s.pending {
		if g == f {
			return
		}
	}
	s.pending = append(s.pending, f)
}

// Pending returns the number of faces queued for removal.
func (s *Session) Pending() int {
	return len(s.pending)
}

// Flush removes every queued face from the mesh. Removal keeps going
// past individual failures and the collected errors are returned
// together.
func (s *Session) Flush() error {
	var errs error
	removed := 0
	for _, f := range s.pending {
		if err := s.mesh.KillFace(f); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		removed++
	}
	s.pending = s.pending[:0]
	s.log.Debug("flushed session", zap.Int("removed", removed))
	return errs
}
