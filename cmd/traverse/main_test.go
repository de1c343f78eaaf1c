package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nanastas-mit/pextant/solver"
)

func TestParseArgs_Defaults(t *testing.T) {
	cfg, err := parseArgs([]string{"scenario.json"})
	require.NoError(t, err)
	require.Equal(t, "scenario.json", cfg.scenarioPath)
	require.Equal(t, 1.0, cfg.alpha)
	require.Equal(t, 80.0, cfg.mass)
	require.Equal(t, 3.71, cfg.gravity)
	require.Equal(t, "", cfg.outPath)
}

func TestParseArgs_OverridesAndOutPath(t *testing.T) {
	cfg, err := parseArgs([]string{"-alpha", "1.5", "-mass", "90", "-out", "result.json", "scenario.json"})
	require.NoError(t, err)
	require.Equal(t, 1.5, cfg.alpha)
	require.Equal(t, 90.0, cfg.mass)
	require.Equal(t, "result.json", cfg.outPath)
}

func TestParseArgs_MissingScenario(t *testing.T) {
	_, err := parseArgs(nil)
	require.Error(t, err)
}

func TestLoadGrid_UnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.tif")
	require.NoError(t, os.WriteFile(path, []byte("not a real raster"), 0o644))

	_, err := loadGrid(path, 30, 3.71)
	require.Error(t, err)
}

func TestLoadGrid_ASCII(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.asc")
	body := "cellsize 1\nxllcorner 0\nyllcorner 0\n0 0 0\n0 0 0\n0 0 0\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	g, err := loadGrid(path, 30, 3.71)
	require.NoError(t, err)
	require.Equal(t, 3, g.Width)
	require.Equal(t, 3, g.Height)
}

func TestResolveModelPath_RelativeToScenarioDir(t *testing.T) {
	got := resolveModelPath("/scenarios/run1/scenario.json", "model.asc")
	require.Equal(t, filepath.Join("/scenarios/run1", "model.asc"), got)
}

func TestResolveModelPath_AbsoluteModelPathPassesThrough(t *testing.T) {
	got := resolveModelPath("/scenarios/run1/scenario.json", "/rasters/model.asc")
	require.Equal(t, "/rasters/model.asc", got)
}

func writeFlatScenario(t *testing.T, dir string) string {
	t.Helper()
	asciiBody := "cellsize 1\nxllcorner 0\nyllcorner 0\n0 0 0\n0 0 0\n0 0 0\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "model.asc"), []byte(asciiBody), 0o644))

	scenarioBody := `{
		"model": "model.asc",
		"max_slope": 80,
		"start": [0, 0],
		"end": [2, 2],
		"coordinate_system": "row_col",
		"start_heading": 0
	}`
	scenarioPath := filepath.Join(dir, "scenario.json")
	require.NoError(t, os.WriteFile(scenarioPath, []byte(scenarioBody), 0o644))
	return scenarioPath
}

func TestPlan_SolvesDiagonalRoute(t *testing.T) {
	dir := t.TempDir()
	scenarioPath := writeFlatScenario(t, dir)

	out, err := plan(config{scenarioPath: scenarioPath, alpha: 1, mass: 80, gravity: 3.71})
	require.NoError(t, err)
	require.Equal(t, [][2]int{{0, 0}, {1, 1}, {2, 2}}, out.Path)
	require.Greater(t, out.DistanceM, 0.0)
}

func TestPlan_EndpointBlockedPropagates(t *testing.T) {
	dir := t.TempDir()
	asciiBody := "cellsize 1\nxllcorner 0\nyllcorner 0\n0 0 0\n0 0 0\n0 0 0\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "model.asc"), []byte(asciiBody), 0o644))

	scenarioBody := `{
		"model": "model.asc",
		"max_slope": 80,
		"start": [0, 0],
		"end": [2, 2],
		"coordinate_system": "row_col",
		"obstacles_list": [[2, 2]]
	}`
	scenarioPath := filepath.Join(dir, "scenario.json")
	require.NoError(t, os.WriteFile(scenarioPath, []byte(scenarioBody), 0o644))

	_, err := plan(config{scenarioPath: scenarioPath, alpha: 1, mass: 80, gravity: 3.71})
	require.ErrorIs(t, err, solver.ErrEndpointBlocked)
}

func TestRun_WritesPathOutputAndExitsZero(t *testing.T) {
	dir := t.TempDir()
	scenarioPath := writeFlatScenario(t, dir)

	var stdout, stderr bytes.Buffer
	code := run([]string{scenarioPath}, &stdout, &stderr)
	require.Equal(t, 0, code)
	require.Contains(t, stdout.String(), `"path"`)
	require.Empty(t, stderr.String())
}

func TestRun_ExitsTwoOnNoPath(t *testing.T) {
	dir := t.TempDir()
	asciiBody := "cellsize 1\nxllcorner 0\nyllcorner 0\n0 0 0\n0 0 0\n0 0 0\n0 0 0\n0 0 0\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "model.asc"), []byte(asciiBody), 0o644))

	scenarioBody := `{
		"model": "model.asc",
		"max_slope": 80,
		"start": [0, 0],
		"end": [4, 0],
		"coordinate_system": "row_col",
		"obstacles_list": [[1, 0], [1, 1], [1, 2]]
	}`
	scenarioPath := filepath.Join(dir, "scenario.json")
	require.NoError(t, os.WriteFile(scenarioPath, []byte(scenarioBody), 0o644))

	var stdout, stderr bytes.Buffer
	code := run([]string{scenarioPath}, &stdout, &stderr)
	require.Equal(t, 2, code)
}

func TestRun_ExitsOneOnMissingScenarioFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{filepath.Join(t.TempDir(), "missing.json")}, &stdout, &stderr)
	require.Equal(t, 1, code)
	require.NotEmpty(t, stderr.String())
}
