package geoindex

import (
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/arris/pkg/vertexindex"
)

// MakeRef binds the rib identifier to ix as a read view.
func (id RibID) MakeRef(ix *Index) RibRef {
	ix.assertNoMut()
	return RibRef{ribID: id, index: ix}
}

// MakeMutRef binds the rib identifier to ix as its exclusive write token.
func (id RibID) MakeMutRef(ix *Index) *RibRefMut {
	ix.acquireMut()
	return &RibRefMut{ribID: id, index: ix}
}

// RibRef is a read view over a stored rib in its canonical orientation.
type RibRef struct {
	ribID RibID
	index *Index
}

// From returns the coordinate of the rib's canonical origin.
func (r RibRef) From() v3.Vec { return r.index.Point(r.rib().P0) }

// To returns the coordinate of the rib's canonical destination.
func (r RibRef) To() v3.Vec { return r.index.Point(r.rib().P1) }

// Dir returns the unnormalized vector from From to To.
func (r RibRef) Dir() v3.Vec { return r.To().Sub(r.From()) }

// Magnitude returns the rib's length.
func (r RibRef) Magnitude() float64 { return r.Dir().Length() }

// Has reports whether pt is one of the rib's endpoints.
func (r RibRef) Has(pt vertexindex.PtID) bool {
	rib := r.rib()
	return rib.P0 == pt || rib.P1 == pt
}

// RibID returns the underlying identifier.
func (r RibRef) RibID() RibID { return r.ribID }

// UnRef drops the index binding.
func (r RibRef) UnRef() RibID { return r.ribID }

func (r RibRef) rib() Rib { return r.index.Rib(r.ribID) }

// RibRefMut is the exclusive write-capability token for a rib. The
// operations that consume it to change topology live with the components
// that own rib lifecycle, not in this package.
type RibRefMut struct {
	ribID RibID
	index *Index
}

// UnRef releases the exclusive borrow and recovers the identifier.
func (r *RibRefMut) UnRef() RibID {
	r.index.releaseMut()
	return r.ribID
}
