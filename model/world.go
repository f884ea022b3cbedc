package model

import (
	"cmp"
	"crypto/md5"
	"encoding/binary"
	"fmt"
	"math"
	"slices"

	"github.com/sheikhrachel/sparse-gol/rules"
)

// historySize is how many recent world hashes are kept for cycle detection
const historySize = 5

// World is the sparse evolution engine. Only live cells are stored.
//
// A generation is two strictly ordered phases: EvaluateWorld reads the
// current live set and fills the pending buffers, UpdateWorld commits them.
type World struct {
	live map[Coordinate]struct{}

	pendingCull  []Coordinate
	pendingBirth map[Coordinate]struct{}
	examined     map[Coordinate]struct{} // dead cells already resurrection-checked this evaluation

	generation int
	history    []string // Store recent world hashes for cycle detection
}

// NewWorld creates a world whose live set is the given coordinates. Duplicates collapse.
func NewWorld(initial []Coordinate) *World {
	w := &World{
		live:         make(map[Coordinate]struct{}, len(initial)),
		pendingBirth: make(map[Coordinate]struct{}),
		examined:     make(map[Coordinate]struct{}),
	}
	for _, c := range initial {
		w.live[c] = struct{}{}
	}
	return w
}

// EvaluateWorld computes the pending culls and births for the next
// generation. The live set is not modified.
func (w *World) EvaluateWorld() {
	clear(w.examined)
	for cell := range w.live {
		w.checkNeighborCells(cell)
	}
}

// UpdateWorld commits the pending culls then the pending births, and drains both buffers
func (w *World) UpdateWorld() {
	for _, c := range w.pendingCull {
		delete(w.live, c)
	}
	for c := range w.pendingBirth {
		w.live[c] = struct{}{}
	}

	w.pendingCull = w.pendingCull[:0]
	clear(w.pendingBirth)
	clear(w.examined)
	w.generation++
}

// Step advances the world by one generation
func (w *World) Step() {
	w.EvaluateWorld()
	w.UpdateWorld()
}

// Generation returns the number of commits applied so far
func (w *World) Generation() int {
	return w.generation
}

// checkNeighborCells counts the live neighbors of a live cell, running the
// resurrection check on every dead neighbor it meets.
func (w *World) checkNeighborCells(cell Coordinate) {
	neighbors := 0
	for _, offset := range NeighborOffsets {
		if !cell.WithinBounds(offset) {
			continue // off the representable plane, treated as permanently dead
		}
		n := cell.Add(offset)
		if _, alive := w.live[n]; alive {
			neighbors++
			continue
		}
		w.checkResurrection(n)
	}

	if !rules.ApplyConwayRules(neighbors, true) {
		w.pendingCull = append(w.pendingCull, cell)
	}
}

// checkResurrection marks a dead cell for birth when it has exactly three live neighbors
func (w *World) checkResurrection(dead Coordinate) {
	if _, done := w.examined[dead]; done {
		return
	}
	w.examined[dead] = struct{}{}

	if rules.ApplyConwayRules(w.CountLiveNeighbors(dead), false) {
		w.pendingBirth[dead] = struct{}{}
	}
}

// CountLiveNeighbors returns how many of c's in-range neighbors are live
func (w *World) CountLiveNeighbors(c Coordinate) (count int) {
	for _, offset := range NeighborOffsets {
		if !c.WithinBounds(offset) {
			continue
		}
		if _, alive := w.live[c.Add(offset)]; alive {
			count++
		}
	}
	return
}

// IsAlive reports whether c is live in the current generation
func (w *World) IsAlive(c Coordinate) bool {
	_, ok := w.live[c]
	return ok
}

// Population returns the number of live cells
func (w *World) Population() int {
	return len(w.live)
}

// LiveCells returns a snapshot of the live set ordered by Y then X
func (w *World) LiveCells() []Coordinate {
	cells := make([]Coordinate, 0, len(w.live))
	for c := range w.live {
		cells = append(cells, c)
	}
	sortCoordinates(cells)
	return cells
}

// PendingCulls returns a copy of the cells marked for culling by the last evaluation
func (w *World) PendingCulls() []Coordinate {
	cells := slices.Clone(w.pendingCull)
	sortCoordinates(cells)
	return cells
}

// PendingBirths returns a copy of the cells marked for birth by the last evaluation
func (w *World) PendingBirths() []Coordinate {
	cells := make([]Coordinate, 0, len(w.pendingBirth))
	for c := range w.pendingBirth {
		cells = append(cells, c)
	}
	sortCoordinates(cells)
	return cells
}

// Bounds is the inclusive bounding box of a set of live cells
type Bounds struct {
	MinX, MaxX, MinY, MaxY int64
}

// Width returns the number of columns covered, saturating at math.MaxUint64
func (b Bounds) Width() uint64 {
	return span(b.MinX, b.MaxX)
}

// Height returns the number of rows covered, saturating at math.MaxUint64
func (b Bounds) Height() uint64 {
	return span(b.MinY, b.MaxY)
}

func span(lo, hi int64) uint64 {
	d := uint64(hi) - uint64(lo)
	if d == math.MaxUint64 {
		return d
	}
	return d + 1
}

// BoundingBox calculates the bounding box of the live cells.
// ok is false when the world is empty.
func (w *World) BoundingBox() (b Bounds, ok bool) {
	for c := range w.live {
		if !ok {
			b = Bounds{MinX: c.X, MaxX: c.X, MinY: c.Y, MaxY: c.Y}
			ok = true
			continue
		}
		b.MinX = min(b.MinX, c.X)
		b.MaxX = max(b.MaxX, c.X)
		b.MinY = min(b.MinY, c.Y)
		b.MaxY = max(b.MaxY, c.Y)
	}
	return
}

// GetWorldHash returns an MD5 hash of the current live set
func (w *World) GetWorldHash() string {
	var (
		h   = md5.New()
		buf [16]byte
	)
	for _, c := range w.LiveCells() {
		binary.BigEndian.PutUint64(buf[:8], uint64(c.X))
		binary.BigEndian.PutUint64(buf[8:], uint64(c.Y))
		h.Write(buf[:])
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// UpdateHistory adds the current state to history and maintains its size
func (w *World) UpdateHistory() {
	w.history = append(w.history, w.GetWorldHash())
	if len(w.history) > historySize {
		w.history = w.history[1:]
	}
}

// IsStagnant reports whether the current state repeats one of the last three
// recorded states (still life or a period-2/3 oscillator). Call it before
// UpdateHistory records the current state.
func (w *World) IsStagnant() bool {
	if len(w.history) < 3 {
		return false
	}

	current := w.GetWorldHash()
	for i := 1; i <= 3; i++ {
		if w.history[len(w.history)-i] == current {
			return true
		}
	}
	return false
}

func sortCoordinates(cells []Coordinate) {
	slices.SortFunc(cells, func(a, b Coordinate) int {
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.X, b.X)
	})
}
