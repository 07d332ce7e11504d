package vertexindex

import (
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

func TestInsertAssignsDenseHandles(t *testing.T) {
	ix := New()
	a := ix.Insert(v3.Vec{X: 0, Y: 0, Z: 0})
	b := ix.Insert(v3.Vec{X: 10, Y: 0, Z: 0})
	c := ix.Insert(v3.Vec{X: 0, Y: 10, Z: 0})

	if a == b || b == c || a == c {
		t.Errorf("distinct points share handles: %v %v %v", a, b, c)
	}
	if got := ix.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
}

func TestInsertDeduplicates(t *testing.T) {
	tests := []struct {
		name   string
		first  v3.Vec
		second v3.Vec
		merged bool
	}{
		{"identical", v3.Vec{X: 1, Y: 2, Z: 3}, v3.Vec{X: 1, Y: 2, Z: 3}, true},
		{"within tolerance", v3.Vec{X: 1, Y: 2, Z: 3}, v3.Vec{X: 1.0004, Y: 2, Z: 3}, true},
		{"just outside tolerance", v3.Vec{X: 1, Y: 2, Z: 3}, v3.Vec{X: 1.002, Y: 2, Z: 3}, false},
		{"far away", v3.Vec{X: 1, Y: 2, Z: 3}, v3.Vec{X: 50, Y: 2, Z: 3}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ix := New()
			a := ix.Insert(tt.first)
			b := ix.Insert(tt.second)
			if merged := a == b; merged != tt.merged {
				t.Errorf("merged = %v, want %v (handles %v, %v)", merged, tt.merged, a, b)
			}
		})
	}
}

func TestInsertMergesToNearest(t *testing.T) {
	ix := New()
	a := ix.Insert(v3.Vec{X: 0, Y: 0, Z: 0})
	b := ix.Insert(v3.Vec{X: 0.0015, Y: 0, Z: 0}) // outside tolerance of a

	got := ix.Insert(v3.Vec{X: 0.0013, Y: 0, Z: 0}) // close to both, nearer b
	if got != b {
		t.Errorf("Insert merged to %v, want %v (a = %v)", got, b, a)
	}
}

func TestPointRoundTrip(t *testing.T) {
	ix := New()
	want := v3.Vec{X: -4, Y: 7.5, Z: 0.25}
	id := ix.Insert(want)
	if got := ix.Point(id); got != want {
		t.Errorf("Point(%v) = %v, want %v", id, got, want)
	}
}

func TestFindMiss(t *testing.T) {
	ix := New()
	ix.Insert(v3.Vec{X: 1, Y: 1, Z: 1})
	if id, ok := ix.Find(v3.Vec{X: 5, Y: 5, Z: 5}); ok {
		t.Errorf("Find() = %v, ok = true, want miss", id)
	}
}

func TestPointUnknownHandlePanics(t *testing.T) {
	tests := []struct {
		name string
		id   PtID
	}{
		{"negative", PtID(-1)},
		{"past end", PtID(3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ix := New()
			ix.Insert(v3.Vec{X: 0, Y: 0, Z: 0})
			defer func() {
				if recover() == nil {
					t.Errorf("Point(%v) did not panic", tt.id)
				}
			}()
			ix.Point(tt.id)
		})
	}
}
