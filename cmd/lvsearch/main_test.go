package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gonuts/flag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/search"
)

const testMaze = "#####\n#A  #\n# #B#\n#####\n"

// captureOutput redirects stdout and the log output for the test.
func captureOutput(t *testing.T) (out, logs *bytes.Buffer) {
	t.Helper()
	out, logs = new(bytes.Buffer), new(bytes.Buffer)
	prevOut, prevLog := stdout, logOutput
	stdout, logOutput = out, logs
	t.Cleanup(func() { stdout, logOutput = prevOut, prevLog })

	return out, logs
}

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	return path
}

func defaultMazeConfig() *mazeConfig {
	return &mazeConfig{
		runConfig: runConfig{algo: "all", noColor: true},
		start:     "A",
		goal:      "B",
		path:      " ",
	}
}

func TestRootCommand(t *testing.T) {
	root := newRootCommand()
	var names []string
	for _, c := range root.Subcommands {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{"maze", "puzzle"}, names)
}

func TestRunConfig_Register(t *testing.T) {
	var cfg runConfig
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.register(fs)
	require.NoError(t, fs.Parse([]string{"-algo", "dfs", "-max-steps", "7", "-no-log", "x.txt"}))

	assert.Equal(t, "dfs", cfg.algo)
	assert.Equal(t, 7, cfg.maxSteps)
	assert.True(t, cfg.noLog)
	assert.False(t, cfg.verbose)
	assert.Equal(t, []string{"x.txt"}, fs.Args())
}

func TestRunConfig_Algorithms(t *testing.T) {
	cases := []struct {
		algo string
		want []search.Algorithm
		err  error
	}{
		{"all", []search.Algorithm{search.BFS, search.DFS}, nil},
		{"ALL", []search.Algorithm{search.BFS, search.DFS}, nil},
		{"bfs", []search.Algorithm{search.BFS}, nil},
		{" DFS ", []search.Algorithm{search.DFS}, nil},
		{"astar", nil, search.ErrInvalidAlgorithm},
	}
	for _, tc := range cases {
		t.Run(tc.algo, func(t *testing.T) {
			got, err := (&runConfig{algo: tc.algo}).algorithms()
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRunMaze(t *testing.T) {
	out, logs := captureOutput(t)
	dir := t.TempDir()
	layout := writeFile(t, dir, "corner.txt", testMaze)
	stepsDir := filepath.Join(dir, "steps")

	cfg := defaultMazeConfig()
	cfg.stepsDir = stepsDir
	require.NoError(t, runMaze(cfg, []string{layout}))

	text := out.String()
	assert.Contains(t, text, "- Solving: corner.txt\n- Algorithm: BFS\n")
	assert.Contains(t, text, "- Algorithm: DFS\n")
	assert.Equal(t, 2, strings.Count(text, "█A¤¤█\n█·█B█\n"))
	assert.Equal(t, 2, strings.Count(text, "- Solution: found"))

	for _, algo := range []string{"BFS", "DFS"} {
		data, err := os.ReadFile(filepath.Join(stepsDir, "corner_"+algo+"_steps.txt"))
		require.NoError(t, err)
		report := string(data)
		assert.Contains(t, report, "- Algorithm: "+algo+"\n- Run: ")
		assert.Contains(t, report, "- Algorithm steps:\n[1]\n")
	}
	assert.Contains(t, logs.String(), "algorithm steps saved")
}

func TestRunMaze_NoSolution(t *testing.T) {
	out, _ := captureOutput(t)
	layout := writeFile(t, t.TempDir(), "walled.txt", "#####\n#A#B#\n#####\n")

	cfg := defaultMazeConfig()
	cfg.algo = "bfs"
	require.NoError(t, runMaze(cfg, []string{layout}))
	assert.Contains(t, out.String(), "- Solution nodes (¤): -\n- Solution: No Solution found!\n")
}

func TestRunMaze_Errors(t *testing.T) {
	captureOutput(t)
	layout := writeFile(t, t.TempDir(), "m.txt", testMaze)

	err := runMaze(defaultMazeConfig(), nil)
	require.ErrorIs(t, err, errUsage)

	cfg := defaultMazeConfig()
	cfg.start = "AB"
	require.ErrorIs(t, runMaze(cfg, []string{layout}), errUsage)

	cfg = defaultMazeConfig()
	cfg.algo = "ucs"
	require.ErrorIs(t, runMaze(cfg, []string{layout}), search.ErrInvalidAlgorithm)

	cfg = defaultMazeConfig()
	cfg.algo = "bfs"
	cfg.maxSteps = 1
	require.ErrorIs(t, runMaze(cfg, []string{layout}), search.ErrStepLimit)

	require.Error(t, runMaze(defaultMazeConfig(), []string{filepath.Join(t.TempDir(), "missing.txt")}))
}

func TestRunPuzzle(t *testing.T) {
	out, logs := captureOutput(t)
	dir := t.TempDir()
	start := writeFile(t, dir, "start.txt", "1 2\n_ 3\n")
	goal := writeFile(t, dir, "goal.txt", "1 2\n3 _\n")
	stepsDir := filepath.Join(dir, "steps")

	cfg := &runConfig{algo: "bfs", noColor: true, stepsDir: stepsDir}
	require.NoError(t, runPuzzle(cfg, []string{start, goal}))

	text := out.String()
	assert.Contains(t, text, "Algorithm: BFS\n")
	assert.Contains(t, text, "\n[1] right\n1 2\n3 _\n")
	assert.Contains(t, text, "Solution steps: 1 ")
	assert.NotContains(t, logs.String(), "unreachable")

	data, err := os.ReadFile(filepath.Join(stepsDir, "start_BFS_steps.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "- Algorithm steps:\n")
}

func TestRunPuzzle_Unsolvable(t *testing.T) {
	out, logs := captureOutput(t)
	dir := t.TempDir()
	start := writeFile(t, dir, "start.txt", "1 2\n3 _\n")
	goal := writeFile(t, dir, "goal.txt", "2 1\n3 _\n")

	cfg := &runConfig{algo: "all", noColor: true, noLog: true}
	require.NoError(t, runPuzzle(cfg, []string{start, goal}))

	assert.Contains(t, logs.String(), "unreachable")
	assert.Equal(t, 2, strings.Count(out.String(), "No Solution found! (12 nodes tried)"))
}

func TestRunPuzzle_Errors(t *testing.T) {
	captureOutput(t)
	dir := t.TempDir()
	small := writeFile(t, dir, "small.txt", "1 _\n")
	big := writeFile(t, dir, "big.txt", "1 2\n3 _\n")

	require.ErrorIs(t, runPuzzle(&runConfig{algo: "all"}, []string{small}), errUsage)
	require.Error(t, runPuzzle(&runConfig{algo: "all"}, []string{small, big}))
}
