package rules

const (
	// SurviveMin is the fewest live neighbors a live cell needs to survive.
	SurviveMin = 2
	// SurviveMax is the most live neighbors a live cell may have and survive.
	SurviveMax = 3
	// BirthCount is the exact number of live neighbors that brings a dead cell to life.
	BirthCount = 3
)

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

B3/S23: a live cell survives with 2 or 3 live neighbors, a dead cell is born with exactly 3.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if alive {
		return neighbors >= SurviveMin && neighbors <= SurviveMax
	}
	return neighbors == BirthCount
}
