package geoindex

import (
	"fmt"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/arris/pkg/vertexindex"
)

// Dir is the reading direction of a traversal over a rib.
type Dir int

const (
	Forward Dir = iota
	Reverse
)

// Flip returns the opposite direction. Flipping twice is the identity.
func (d Dir) Flip() Dir {
	if d == Forward {
		return Reverse
	}
	return Forward
}

func (d Dir) String() string {
	switch d {
	case Forward:
		return "forward"
	case Reverse:
		return "reverse"
	default:
		return "unknown"
	}
}

// Seg is a directed traversal of one rib. It carries no geometry; any
// number of traversals may read the same rib in either direction.
type Seg struct {
	ribID RibID
	dir   Dir
}

// NewSeg returns the traversal of rib in the given direction.
func NewSeg(rib RibID, dir Dir) Seg { return Seg{ribID: rib, dir: dir} }

// Flip returns the traversal of the same rib in the opposite direction.
func (s Seg) Flip() Seg { return Seg{ribID: s.ribID, dir: s.dir.Flip()} }

// RibID returns the traversed rib's identifier.
func (s Seg) RibID() RibID { return s.ribID }

// Dir returns the traversal direction.
func (s Seg) Dir() Dir { return s.dir }

// From resolves the traversal's origin against a caller-held rib map,
// avoiding a second resolution through the whole index.
func (s Seg) From(ribs map[RibID]Rib) vertexindex.PtID {
	rib := mustRib(ribs, s.ribID)
	if s.dir == Forward {
		return rib.P0
	}
	return rib.P1
}

// To resolves the traversal's destination against a caller-held rib map.
func (s Seg) To(ribs map[RibID]Rib) vertexindex.PtID {
	rib := mustRib(ribs, s.ribID)
	if s.dir == Forward {
		return rib.P1
	}
	return rib.P0
}

func mustRib(ribs map[RibID]Rib, id RibID) Rib {
	rib, ok := ribs[id]
	if !ok {
		panic(fmt.Sprintf("geoindex: no rib found: %v", id))
	}
	return rib
}

// ToRef binds the traversal to ix. Shorthand for MakeRef.
func (s Seg) ToRef(ix *Index) SegRef { return s.MakeRef(ix) }

// MakeRef binds the traversal to ix as a read view.
func (s Seg) MakeRef(ix *Index) SegRef {
	ix.assertNoMut()
	return SegRef{ribID: s.ribID, dir: s.dir, index: ix}
}

// MakeMutRef binds the traversal to ix as its exclusive write token.
func (s Seg) MakeMutRef(ix *Index) *SegRefMut {
	ix.acquireMut()
	return &SegRefMut{ribID: s.ribID, dir: s.dir, index: ix}
}

// SegRef is a read view of a traversal. It resolves endpoints through the
// index on every call, so it always reflects the index's current state.
type SegRef struct {
	ribID RibID
	dir   Dir
	index *Index
}

// FromPt returns the origin vertex handle under the traversal direction.
func (r SegRef) FromPt() vertexindex.PtID {
	rib := r.index.Rib(r.ribID)
	if r.dir == Forward {
		return rib.P0
	}
	return rib.P1
}

// ToPt returns the destination vertex handle under the traversal
// direction.
func (r SegRef) ToPt() vertexindex.PtID {
	rib := r.index.Rib(r.ribID)
	if r.dir == Forward {
		return rib.P1
	}
	return rib.P0
}

// From returns the origin coordinate.
func (r SegRef) From() v3.Vec { return r.index.Point(r.FromPt()) }

// To returns the destination coordinate.
func (r SegRef) To() v3.Vec { return r.index.Point(r.ToPt()) }

// Dir returns the unnormalized vector from From to To.
func (r SegRef) Dir() v3.Vec { return r.To().Sub(r.From()) }

// Has reports whether pt is one of the traversal's endpoints.
func (r SegRef) Has(pt vertexindex.PtID) bool {
	return r.FromPt() == pt || r.ToPt() == pt
}

// Flip returns a view of the same rib read the other way, over the same
// index.
func (r SegRef) Flip() SegRef {
	return SegRef{ribID: r.ribID, dir: r.dir.Flip(), index: r.index}
}

// Seg drops the index binding and recovers the traversal value.
func (r SegRef) Seg() Seg { return Seg{ribID: r.ribID, dir: r.dir} }

// UnRef drops the index binding.
func (r SegRef) UnRef() Seg { return r.Seg() }

// RibID returns the traversed rib's identifier.
func (r SegRef) RibID() RibID { return r.ribID }

// Magnitude returns the traversed rib's length.
func (r SegRef) Magnitude() float64 {
	return r.ribID.MakeRef(r.index).Magnitude()
}

func (r SegRef) String() string {
	f, t := r.From(), r.To()
	return fmt.Sprintf("%g %g %g -> %g %g %g", f.X, f.Y, f.Z, t.X, t.Y, t.Z)
}

// SegRefMut is the exclusive write-capability token for a traversal's
// rib. While it is live the index rejects every other reference, read or
// write. Topology mutation consuming the token belongs to the
// surrounding kernel layers.
type SegRefMut struct {
	ribID RibID
	dir   Dir
	index *Index
}

// UnRef releases the exclusive borrow; only the rib identifier survives.
func (r *SegRefMut) UnRef() RibID {
	r.index.releaseMut()
	return r.ribID
}
