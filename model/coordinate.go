package model

import (
	"fmt"
	"math"
)

// Coordinate is an immutable cell position on the unbounded integer plane
type Coordinate struct {
	X int64
	Y int64
}

// NeighborOffsets holds the eight deltas of a cell's neighborhood:
// up, down, left, right, then the four diagonals.
var NeighborOffsets = [8]Coordinate{
	{X: 0, Y: -1},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
	{X: 1, Y: 0},
	{X: 1, Y: -1},
	{X: -1, Y: -1},
	{X: 1, Y: 1},
	{X: -1, Y: 1},
}

// NewCoordinate creates a coordinate at (x, y)
func NewCoordinate(x, y int64) Coordinate {
	return Coordinate{X: x, Y: y}
}

// Add returns c+o component-wise. The addition wraps on overflow, so callers
// check WithinBounds first.
func (c Coordinate) Add(o Coordinate) Coordinate {
	return Coordinate{X: c.X + o.X, Y: c.Y + o.Y}
}

// WithinBounds reports whether c+offset stays inside the int64 range on both axes
func (c Coordinate) WithinBounds(offset Coordinate) bool {
	return axisWithinBounds(c.X, offset.X) && axisWithinBounds(c.Y, offset.Y)
}

// Equal reports structural equality
func (c Coordinate) Equal(o Coordinate) bool {
	return c.X == o.X && c.Y == o.Y
}

// Hash mixes both components into a stable 64-bit value.
// Equal coordinates always hash identically.
func (c Coordinate) Hash() uint64 {
	h := uint64(c.X) * 0x9e3779b97f4a7c15
	h ^= uint64(c.Y)*0xc2b2ae3d27d4eb4f + (h << 6) + (h >> 2)
	h ^= h >> 33
	h *= 0xff51afd7ed558ccd
	h ^= h >> 33
	return h
}

// String renders the coordinate as "<x> <y>"
func (c Coordinate) String() string {
	return fmt.Sprintf("%d %d", c.X, c.Y)
}

func axisWithinBounds(v, delta int64) bool {
	switch {
	case delta > 0:
		return v <= math.MaxInt64-delta
	case delta < 0:
		return v >= math.MinInt64-delta
	default:
		return true
	}
}
