package geoindex

import (
	"fmt"
	"sort"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/arris/pkg/vertexindex"
)

// Rib is an undirected edge between two distinct vertices. The endpoint
// order fixes the rib's canonical (Forward) reading; it never changes
// after registration.
type Rib struct {
	P0, P1 vertexindex.PtID
}

// Index owns rib storage and the vertex store, and hands out the
// contextual references defined in this package.
//
// Go cannot check reference lifetimes statically, so the index carries a
// runtime exclusivity guard: while a mutable reference (SegRefMut,
// RibRefMut) is live, creating any other reference or resolving geometry
// through the index panics. Releasing the token with UnRef re-opens the
// index.
type Index struct {
	vertices *vertexindex.Index
	ribs     map[RibID]Rib
	ribIDs   map[Rib]RibID // registration lookup, as-registered orientation
	mutHeld  bool
}

// New returns an empty index.
func New() *Index {
	return &Index{
		vertices: vertexindex.New(),
		ribs:     make(map[RibID]Rib),
		ribIDs:   make(map[Rib]RibID),
	}
}

// InsertPoint stores a coordinate in the vertex store, reusing the handle
// of any coincident vertex.
func (ix *Index) InsertPoint(pt v3.Vec) vertexindex.PtID {
	ix.assertNoMut()
	return ix.vertices.Insert(pt)
}

// Point resolves a vertex handle to its coordinate.
func (ix *Index) Point(id vertexindex.PtID) v3.Vec {
	ix.assertNoMut()
	return ix.vertices.Point(id)
}

// SaveSeg registers the undirected edge between from and to, once per
// unordered endpoint pair, and returns the traversal reading it from
// from to to. Registering the opposite orientation reuses the rib and
// yields a Reverse traversal.
func (ix *Index) SaveSeg(from, to vertexindex.PtID) Seg {
	ix.assertNoMut()
	if from == to {
		panic(fmt.Sprintf("geoindex: rib endpoints coincide: %v", from))
	}
	if id, ok := ix.ribIDs[Rib{from, to}]; ok {
		return Seg{ribID: id, dir: Forward}
	}
	if id, ok := ix.ribIDs[Rib{to, from}]; ok {
		return Seg{ribID: id, dir: Reverse}
	}
	id := NewRibID()
	rib := Rib{from, to}
	ix.ribs[id] = rib
	ix.ribIDs[rib] = id
	return Seg{ribID: id, dir: Forward}
}

// Rib resolves a rib identifier. An unknown identifier is a programming
// error.
func (ix *Index) Rib(id RibID) Rib {
	ix.assertNoMut()
	rib, ok := ix.ribs[id]
	if !ok {
		panic(fmt.Sprintf("geoindex: no rib found: %v", id))
	}
	return rib
}

// HasRib reports whether id resolves in the index.
func (ix *Index) HasRib(id RibID) bool {
	ix.assertNoMut()
	_, ok := ix.ribs[id]
	return ok
}

// Ribs exposes rib storage for callers that already hold the index, such
// as Seg.From and Seg.To. Callers must not mutate the map.
func (ix *Index) Ribs() map[RibID]Rib {
	ix.assertNoMut()
	return ix.ribs
}

// RibIDs returns all rib identifiers in byte order.
func (ix *Index) RibIDs() []RibID {
	ix.assertNoMut()
	ids := make([]RibID, 0, len(ix.ribs))
	for id := range ix.ribs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].Less(ids[j]) })
	return ids
}

// RibCount returns the number of registered ribs.
func (ix *Index) RibCount() int {
	ix.assertNoMut()
	return len(ix.ribs)
}

func (ix *Index) assertNoMut() {
	if ix.mutHeld {
		panic("geoindex: index is exclusively borrowed")
	}
}

func (ix *Index) acquireMut() {
	if ix.mutHeld {
		panic("geoindex: index is already exclusively borrowed")
	}
	ix.mutHeld = true
}

func (ix *Index) releaseMut() { ix.mutHeld = false }
