package utils

import "time"

// populationSmoothing is the weight a new sample carries in the population moving average
const populationSmoothing = 0.1

// Stats for performance monitoring of a single world
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	PeakPopulation       int
	TotalGenerations     int
	StartTime            time.Time
}

// NewStats starts the runtime clock for a world
func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one generation. duration is how long the generation took;
// a zero duration leaves the rate untouched.
func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	s.PeakPopulation = max(s.PeakPopulation, population)
	if duration > 0 {
		s.GenerationsPerSecond = float64(time.Second) / float64(duration)
	}

	sample := float64(population)
	if s.AveragePopulation == 0 {
		s.AveragePopulation = sample
		return
	}
	s.AveragePopulation += populationSmoothing * (sample - s.AveragePopulation)
}

// Runtime returns the time elapsed since the stats were created
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}
