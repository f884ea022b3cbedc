package model

import (
	"math"
	"testing"
)

func TestCoordinateAdd(t *testing.T) {
	got := NewCoordinate(3, -4).Add(NewCoordinate(-1, 1))
	if want := NewCoordinate(2, -3); got != want {
		t.Fatalf("Add = %v, want %v", got, want)
	}
}

func TestCoordinateWithinBounds(t *testing.T) {
	tests := []struct {
		name   string
		c      Coordinate
		offset Coordinate
		want   bool
	}{
		{"origin any neighbor", NewCoordinate(0, 0), NewCoordinate(1, -1), true},
		{"max x step right", NewCoordinate(math.MaxInt64, 0), NewCoordinate(1, 0), false},
		{"max x step left", NewCoordinate(math.MaxInt64, 0), NewCoordinate(-1, 0), true},
		{"min y step up", NewCoordinate(0, math.MinInt64), NewCoordinate(0, -1), false},
		{"min y step down", NewCoordinate(0, math.MinInt64), NewCoordinate(0, 1), true},
		{"max corner diagonal", NewCoordinate(math.MaxInt64, math.MaxInt64), NewCoordinate(1, 1), false},
		{"max corner stay", NewCoordinate(math.MaxInt64, math.MaxInt64), NewCoordinate(0, 0), true},
		{"large offset overflow", NewCoordinate(math.MaxInt64-5, 0), NewCoordinate(10, 0), false},
		{"large offset fits", NewCoordinate(math.MaxInt64-10, 0), NewCoordinate(10, 0), true},
		{"min with min offset", NewCoordinate(-1, 0), NewCoordinate(math.MinInt64, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.WithinBounds(tt.offset); got != tt.want {
				t.Fatalf("%v.WithinBounds(%v) = %v, want %v", tt.c, tt.offset, got, tt.want)
			}
		})
	}
}

func TestCoordinateEqualAndHash(t *testing.T) {
	a := NewCoordinate(7, -9)
	b := NewCoordinate(7, -9)
	if !a.Equal(b) {
		t.Fatalf("%v should equal %v", a, b)
	}
	if a.Hash() != b.Hash() {
		t.Fatalf("equal coordinates hashed differently: %d vs %d", a.Hash(), b.Hash())
	}

	swapped := NewCoordinate(-9, 7)
	if a.Equal(swapped) {
		t.Fatalf("%v should not equal %v", a, swapped)
	}
	if a.Hash() == swapped.Hash() {
		t.Fatalf("swapped components collided: %d", a.Hash())
	}
}

func TestNeighborOffsets(t *testing.T) {
	seen := make(map[Coordinate]bool, len(NeighborOffsets))
	for _, o := range NeighborOffsets {
		if o == (Coordinate{}) {
			t.Fatal("offset table contains the cell itself")
		}
		if o.X < -1 || o.X > 1 || o.Y < -1 || o.Y > 1 {
			t.Fatalf("offset %v is not adjacent", o)
		}
		seen[o] = true
	}
	if len(seen) != 8 {
		t.Fatalf("got %d distinct offsets, want 8", len(seen))
	}
}
