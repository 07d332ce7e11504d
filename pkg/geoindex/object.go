package geoindex

// Object is implemented by identifier-only entity values that can be
// bound to an index. MakeRef yields a read view; any number of read views
// may coexist. MakeMutRef yields the entity's exclusive write-capability
// token; while it is live, every other attempt to reference or resolve
// through the index panics. Every indexed entity kind implements Object
// the same way, so the surrounding kernel treats them uniformly.
type Object[R, M any] interface {
	MakeRef(ix *Index) R
	MakeMutRef(ix *Index) M
}

// Ref is implemented by contextual references. UnRef drops the index
// binding and recovers the identifier-only value; for write tokens it
// also releases the exclusive borrow.
type Ref[O any] interface {
	UnRef() O
}

// Compile-time checks that the entity kinds satisfy the contract.
var (
	_ Object[SegRef, *SegRefMut] = Seg{}
	_ Object[RibRef, *RibRefMut] = RibID{}

	_ Ref[Seg]   = SegRef{}
	_ Ref[RibID] = (*SegRefMut)(nil)
	_ Ref[RibID] = RibRef{}
	_ Ref[RibID] = (*RibRefMut)(nil)
)
