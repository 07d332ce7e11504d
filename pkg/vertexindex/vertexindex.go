// Package vertexindex stores 3D points behind dense PtID handles.
// Points inserted within the merge tolerance of an existing vertex are
// deduplicated onto that vertex, so geometrically coincident endpoints
// share one handle across the whole model.
package vertexindex

import (
	"fmt"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/dhconnelly/rtreego"
)

// MergeTolerance is the distance below which two inserted points are
// treated as the same vertex.
const MergeTolerance = 1e-3

// PtID is an opaque handle to a stored point.
type PtID int

func (id PtID) String() string { return fmt.Sprintf("Pt(%d)", int(id)) }

// entry adapts a stored point to the R-tree's Spatial interface.
type entry struct {
	id PtID
	pt v3.Vec
}

func (e *entry) Bounds() *rtreego.Rect {
	return rtreego.Point{e.pt.X, e.pt.Y, e.pt.Z}.ToRect(MergeTolerance)
}

// Index owns point storage. Handles are dense and stable for the lifetime
// of the index; points are never removed.
type Index struct {
	points []v3.Vec
	tree   *rtreego.Rtree
}

// New returns an empty vertex index.
func New() *Index {
	return &Index{tree: rtreego.NewTree(3, 8, 16)}
}

// Insert stores pt and returns its handle. A point within MergeTolerance
// of an existing vertex reuses that vertex's handle.
func (ix *Index) Insert(pt v3.Vec) PtID {
	if id, ok := ix.Find(pt); ok {
		return id
	}
	id := PtID(len(ix.points))
	ix.points = append(ix.points, pt)
	ix.tree.Insert(&entry{id: id, pt: pt})
	return id
}

// Find returns the handle of the stored vertex nearest to pt within
// MergeTolerance, if any.
func (ix *Index) Find(pt v3.Vec) (PtID, bool) {
	bb := rtreego.Point{pt.X, pt.Y, pt.Z}.ToRect(MergeTolerance)
	best := PtID(-1)
	bestDist := MergeTolerance * MergeTolerance
	for _, s := range ix.tree.SearchIntersect(bb) {
		e := s.(*entry)
		if d := pt.Sub(e.pt).Length2(); d < bestDist {
			best, bestDist = e.id, d
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}

// Point resolves a handle to its coordinate. An unknown handle is a
// programming error.
func (ix *Index) Point(id PtID) v3.Vec {
	if id < 0 || int(id) >= len(ix.points) {
		panic(fmt.Sprintf("vertexindex: no point found: %v", id))
	}
	return ix.points[id]
}

// Len returns the number of distinct stored vertices.
func (ix *Index) Len() int { return len(ix.points) }
