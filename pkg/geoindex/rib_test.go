package geoindex

import (
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

func TestRibRefGeometry(t *testing.T) {
	ix := New()
	pa := ix.InsertPoint(v3.Vec{X: 1, Y: 0, Z: 0})
	pb := ix.InsertPoint(v3.Vec{X: 1, Y: 0, Z: 2})
	seg := ix.SaveSeg(pa, pb)

	ref := seg.RibID().MakeRef(ix)
	if got, want := ref.From(), (v3.Vec{X: 1, Y: 0, Z: 0}); got != want {
		t.Errorf("From() = %v, want %v", got, want)
	}
	if got, want := ref.To(), (v3.Vec{X: 1, Y: 0, Z: 2}); got != want {
		t.Errorf("To() = %v, want %v", got, want)
	}
	if got, want := ref.Dir(), (v3.Vec{X: 0, Y: 0, Z: 2}); got != want {
		t.Errorf("Dir() = %v, want %v", got, want)
	}
	if got := ref.Magnitude(); got != 2 {
		t.Errorf("Magnitude() = %v, want 2", got)
	}
	if !ref.Has(pa) || !ref.Has(pb) {
		t.Error("Has() rejects the rib's own endpoints")
	}
	if ref.Has(ix.InsertPoint(v3.Vec{X: 9, Y: 9, Z: 9})) {
		t.Error("Has() accepts an unrelated vertex")
	}
}

func TestRibRefUnRef(t *testing.T) {
	ix := New()
	pa := ix.InsertPoint(v3.Vec{X: 0, Y: 0, Z: 0})
	pb := ix.InsertPoint(v3.Vec{X: 1, Y: 0, Z: 0})
	id := ix.SaveSeg(pa, pb).RibID()

	if got := id.MakeRef(ix).UnRef(); got != id {
		t.Errorf("UnRef() = %v, want %v", got, id)
	}
}

func TestRibRefDanglingPanics(t *testing.T) {
	ix := New()
	ref := NewRibID().MakeRef(ix)
	defer func() {
		if recover() == nil {
			t.Error("Magnitude() on a dangling rib reference did not panic")
		}
	}()
	ref.Magnitude()
}
