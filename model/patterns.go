package model

// Glider returns the glider used as the default seed. It travels by (+1, +1) every 4 generations.
func Glider() []Coordinate {
	return []Coordinate{
		{X: 0, Y: -1},
		{X: 1, Y: 0},
		{X: -1, Y: 1},
		{X: 0, Y: 1},
		{X: 1, Y: 1},
	}
}

// Blinker returns a horizontal period-2 oscillator centered on the origin
func Blinker() []Coordinate {
	return []Coordinate{{X: -1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}}
}

// Block returns the 2x2 still life with its top-left cell at the origin
func Block() []Coordinate {
	return []Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}
}

// Translate returns a copy of cells shifted by offset
func Translate(cells []Coordinate, offset Coordinate) []Coordinate {
	out := make([]Coordinate, len(cells))
	for i, c := range cells {
		out[i] = c.Add(offset)
	}
	return out
}
