package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nanastas-mit/pextant/energetics"
	"github.com/nanastas-mit/pextant/grid"
	"github.com/nanastas-mit/pextant/scenario"
	"github.com/nanastas-mit/pextant/solver"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// config holds the flags run needs, separated from flag.FlagSet so
// parseArgs and plan can be exercised without touching the process's
// argument list or standard streams.
type config struct {
	scenarioPath string
	outPath      string
	alpha        float64
	mass         float64
	gravity      float64
	timeout      time.Duration
}

// parseArgs parses args (normally os.Args[1:]) into a config. The scenario
// file path is the sole positional argument.
func parseArgs(args []string) (config, error) {
	fs := flag.NewFlagSet("traverse", flag.ContinueOnError)
	cfg := config{alpha: 1, mass: 80, gravity: 3.71}
	fs.StringVar(&cfg.outPath, "out", "", "write the path output here instead of stdout")
	fs.Float64Var(&cfg.alpha, "alpha", cfg.alpha, "weighted A* inflation factor (>= 1)")
	fs.Float64Var(&cfg.mass, "mass", cfg.mass, "agent mass in kilograms")
	fs.Float64Var(&cfg.gravity, "gravity", cfg.gravity, "surface gravity in m/s^2 (default: Mars)")
	fs.DurationVar(&cfg.timeout, "timeout", 0, "solve timeout, 0 disables it")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if fs.NArg() < 1 {
		return config{}, fmt.Errorf("traverse: missing scenario file argument")
	}
	cfg.scenarioPath = fs.Arg(0)
	return cfg, nil
}

// run is the CLI's testable body: it returns a process exit code instead of
// calling os.Exit directly.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseArgs(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	out, err := plan(cfg)
	if err != nil {
		fmt.Fprintln(stderr, "traverse:", err)
		switch {
		case errors.Is(err, solver.ErrNoPath):
			return 2
		case errors.Is(err, solver.ErrEndpointBlocked):
			return 3
		default:
			return 1
		}
	}

	if cfg.outPath != "" {
		if err := out.Save(cfg.outPath); err != nil {
			fmt.Fprintln(stderr, "traverse:", err)
			return 1
		}
		return 0
	}
	if err := out.Write(stdout); err != nil {
		fmt.Fprintln(stderr, "traverse:", err)
		return 1
	}
	return 0
}

// plan loads cfg's scenario and raster model, resolves its endpoints, and
// solves for the lowest-cost route between them.
func plan(cfg config) (scenario.PathOutput, error) {
	sc, err := scenario.LoadFile(cfg.scenarioPath)
	if err != nil {
		return scenario.PathOutput{}, err
	}

	modelPath := resolveModelPath(cfg.scenarioPath, sc.Model)
	g, err := loadGrid(modelPath, sc.MaxSlope, cfg.gravity)
	if err != nil {
		return scenario.PathOutput{}, err
	}
	if err := sc.ApplyObstacles(g); err != nil {
		return scenario.PathOutput{}, err
	}

	start, end, err := sc.ResolveEndpoints(g)
	if err != nil {
		return scenario.PathOutput{}, err
	}

	sv := solver.NewSolver(g, energetics.DefaultModel(),
		solver.WithAlpha(cfg.alpha),
		solver.WithMass(cfg.mass),
		solver.WithTimeout(cfg.timeout),
	)

	path, err := sv.SolveSequence(context.Background(), []grid.Cell{start, end})
	if err != nil {
		return scenario.PathOutput{}, err
	}
	return scenario.NewPathOutput(path.Cells, path.DistanceM, path.EnergyJ, path.DurationS, path.Alpha), nil
}

// resolveModelPath resolves a scenario's model path relative to the
// scenario file's own directory, so scenarios are portable without
// requiring absolute raster paths.
func resolveModelPath(scenarioPath, modelPath string) string {
	if filepath.IsAbs(modelPath) {
		return modelPath
	}
	return filepath.Join(filepath.Dir(scenarioPath), modelPath)
}

// loadGrid builds a Grid from a raster file, dispatching on its extension:
// ".asc"/".txt" for the legacy ASCII DEM format, ".png" for a flat
// obstacle mask with no elevation data. GeoTIFF and other GDAL-backed
// formats require converting to one of these first; this CLI has no
// geospatial decoder for them.
func loadGrid(path string, maxSlopeDeg, gravity float64) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("traverse: open model %s: %w", path, err)
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".asc", ".txt":
		samples, err := grid.LoadASCIIGrid(f)
		if err != nil {
			return nil, err
		}
		return grid.New(samples.Elevation, samples.Resolution, gravity, maxSlopeDeg, samples.Origin)
	case ".png":
		mask, err := grid.LoadObstaclePNG(f)
		if err != nil {
			return nil, err
		}
		height := len(mask)
		var width int
		if height > 0 {
			width = len(mask[0])
		}
		g, err := grid.NewFlat(width, height, 1, gravity, maxSlopeDeg)
		if err != nil {
			return nil, err
		}
		if err := g.ApplyObstacleMask(mask); err != nil {
			return nil, err
		}
		return g, nil
	default:
		return nil, fmt.Errorf("traverse: unsupported model format %q; convert to .asc or .png first", ext)
	}
}
