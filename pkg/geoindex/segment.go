package geoindex

import (
	"fmt"
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/arris/pkg/vertexindex"
)

// VertexPulling is the absolute distance below which two computed points
// are treated as coincident for topological purposes.
const VertexPulling = 1e-3

const vertexPullingSq = VertexPulling * VertexPulling

// SegmentRef is a read view over an arbitrary ordered vertex pair, not
// necessarily backed by a rib. It probes candidate geometry, such as
// "would this new segment intersect an existing one", before anything is
// committed to the index.
type SegmentRef struct {
	from, to vertexindex.PtID
	index    *Index
}

// NewSegmentRef builds a view over the vertex pair (from, to).
// Coincident endpoints have no direction and are a programming error.
func NewSegmentRef(from, to vertexindex.PtID, ix *Index) SegmentRef {
	if from == to {
		panic(fmt.Sprintf("geoindex: same point %v - not a segment", from))
	}
	ix.assertNoMut()
	return SegmentRef{from: from, to: to, index: ix}
}

// FromPt returns the origin vertex handle.
func (r SegmentRef) FromPt() vertexindex.PtID { return r.from }

// ToPt returns the destination vertex handle.
func (r SegmentRef) ToPt() vertexindex.PtID { return r.to }

// From returns the origin coordinate.
func (r SegmentRef) From() v3.Vec { return r.index.Point(r.from) }

// To returns the destination coordinate.
func (r SegmentRef) To() v3.Vec { return r.index.Point(r.to) }

// Dir returns the unnormalized vector from From to To.
func (r SegmentRef) Dir() v3.Vec { return r.To().Sub(r.From()) }

// Has reports whether pt is one of the segment's endpoints.
func (r SegmentRef) Has(pt vertexindex.PtID) bool {
	return r.to == pt || r.from == pt
}

// Flip returns the view with origin and destination swapped.
func (r SegmentRef) Flip() SegmentRef {
	return SegmentRef{from: r.to, to: r.from, index: r.index}
}

func (r SegmentRef) String() string {
	f, t := r.From(), r.To()
	return fmt.Sprintf("%g %g %g -> %g %g %g", f.X, f.Y, f.Z, t.X, t.Y, t.Z)
}

// DistanceToPtSquared returns the squared perpendicular distance from pt
// to the infinite line through the segment. The result is not clamped to
// the segment's extent.
func (r SegmentRef) DistanceToPtSquared(pt v3.Vec) float64 {
	v := pt.Sub(r.From())
	if v.Length2() == 0 {
		return 0
	}
	dir := r.Dir().Normalize()
	t := v.Dot(dir)
	return v.Dot(v) - t*t
}

// IntersectionParams solves for the tolerance-valid intersection of this
// segment with other. The first parameter is expressed in this segment's
// raw direction scale; the second is the fraction of other's full length.
// The two conventions differ and callers must not assume otherwise.
//
// ok is false for near-parallel pairs, which includes collinear overlap,
// and for candidate points farther apart than the vertex pulling
// tolerance.
func (r SegmentRef) IntersectionParams(other SegRef) (f, g float64, ok bool) {
	segmentDir := other.Dir().Normalize()
	selfDir := r.Dir().Normalize()
	q := r.From().Sub(other.From())

	dot := selfDir.Dot(segmentDir)

	// Solve [[1, -dot], [dot, -1]] (s, t)^T = b for the closest points of
	// the two supporting lines.
	b0 := -q.Dot(selfDir)
	b1 := -q.Dot(segmentDir)

	det := dot*dot - 1
	if math.Abs(det) < vertexPullingSq {
		return 0, 0, false
	}

	s := (-b0 + dot*b1) / det
	t := (-dot*b0 + b1) / det

	p1 := r.Dir().MulScalar(s).Add(r.From())
	p2 := other.Dir().Normalize().MulScalar(t).Add(other.From())
	if p1.Sub(p2).Length2() >= vertexPullingSq {
		return 0, 0, false
	}
	return s, t / other.Dir().Length(), true
}
