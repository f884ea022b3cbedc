package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/sparse-gol/model"
	"github.com/sheikhrachel/sparse-gol/pattern"
	"github.com/sheikhrachel/sparse-gol/utils"
)

const (
	builtinGliderName = "glider"
	resultSuffix      = ".out.lif"
)

// simulation is one world evolved by the driver
type simulation struct {
	name  string
	world *model.World
	stats *utils.Stats
}

// initializeSimulations loads every configured pattern, or the built-in glider when none are set
func initializeSimulations(config utils.Config) ([]*simulation, error) {
	if len(config.Patterns) == 0 {
		return []*simulation{newSimulation(builtinGliderName, model.Glider())}, nil
	}

	sims := make([]*simulation, 0, len(config.Patterns))
	for _, path := range config.Patterns {
		cells, err := pattern.Load(path)
		if err != nil {
			return nil, errors.Wrapf(err, "[initializeSimulations] pattern: %+v", path)
		}
		sims = append(sims, newSimulation(path, cells))
	}
	return sims, nil
}

func newSimulation(name string, cells []model.Coordinate) *simulation {
	return &simulation{
		name:  name,
		world: model.NewWorld(cells),
		stats: utils.NewStats(),
	}
}

// runSimulations evolves every simulation concurrently. Each world is only touched by its own goroutine.
func runSimulations(ctx context.Context, sims []*simulation, config utils.Config, logger *log.Logger) error {
	workers := config.MaxWorkers
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for _, sim := range sims {
		eg.Go(func() error {
			return runSimulation(ctx, sim, config, logger)
		})
	}
	return eg.Wait()
}

// runSimulation advances one world up to config.Generations times
func runSimulation(ctx context.Context, sim *simulation, config utils.Config, logger *log.Logger) error {
	stagnantCount := 0
	for sim.world.Generation() < config.Generations {
		if err := ctx.Err(); err != nil {
			return errors.Wrapf(err, "[runSimulation] %s stopped at generation %d", sim.name, sim.world.Generation())
		}

		frameStart := time.Now()
		sim.world.Step()
		generation := sim.world.Generation()
		sim.stats.Update(generation, sim.world.Population(), time.Since(frameStart))

		if sim.world.IsStagnant() {
			stagnantCount++
		} else {
			stagnantCount = 0
		}
		sim.world.UpdateHistory()

		if config.ReportEvery > 0 && generation%config.ReportEvery == 0 {
			logger.Print(statusLine(sim, stagnantCount > 0))
		}

		if stop, reason := checkStopConditions(sim.world.Population(), stagnantCount, config); stop {
			logger.Printf("%s: stopping at generation %d due to %s", sim.name, generation, reason)
			break
		}
	}
	return nil
}

// checkStopConditions determines if a world should stop evolving early
func checkStopConditions(livingCells, stagnantCount int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if config.StopWhenStagnant && stagnantCount > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// statusLine formats the progress line for a simulation
func statusLine(sim *simulation, stagnant bool) string {
	status := "Active"
	if stagnant {
		status = "Stagnant"
	}
	if sim.world.Population() == 0 {
		status = "Extinct"
	}

	boundingInfo := ""
	if b, ok := sim.world.BoundingBox(); ok {
		boundingInfo = fmt.Sprintf(" | Bounding box: %dx%d", b.Width(), b.Height())
	}

	return fmt.Sprintf("%s | Gen: %d | Living: %d | Status: %s%s | %.1f gen/sec | Avg Pop: %.1f",
		sim.name, sim.world.Generation(), sim.world.Population(), status, boundingInfo,
		sim.stats.GenerationsPerSecond, sim.stats.AveragePopulation)
}

// writeResult prints one world as a Life 1.06 pattern
func writeResult(w io.Writer, sim *simulation, header string) error {
	renderer := &model.Life106Renderer{Header: header}
	if err := renderer.Display(w, sim.world); err != nil {
		return errors.Wrapf(err, "[writeResult] %s", sim.name)
	}
	return nil
}

// writeResultFiles writes each world to its own Life 1.06 file next to its
// pattern, since one file holds exactly one pattern. It returns the paths written.
func writeResultFiles(sims []*simulation, header string) ([]string, error) {
	paths := make([]string, 0, len(sims))
	for _, sim := range sims {
		path := resultPath(sim.name)
		f, err := os.Create(path)
		if err != nil {
			return paths, errors.Wrapf(err, "[writeResultFiles] failed to create file: %+v", path)
		}
		err = writeResult(f, sim, header)
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrapf(cerr, "[writeResultFiles] failed to close file: %+v", path)
		}
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// resultPath maps "dir/acorn.lif.zst" to "dir/acorn.out.lif"
func resultPath(name string) string {
	base := strings.TrimSuffix(name, ".zst")
	return strings.TrimSuffix(base, filepath.Ext(base)) + resultSuffix
}
