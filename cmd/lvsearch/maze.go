package main

import (
	"fmt"
	"io"
	"path/filepath"
	"unicode/utf8"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/katalvlaran/lvsearch/maze"
)

type mazeConfig struct {
	runConfig
	start string
	goal  string
	path  string
}

func mazeCmd() *commander.Command {
	cfg := &mazeConfig{}
	cmd := &commander.Command{
		Run: func(_ *commander.Command, args []string) error {
			return runMaze(cfg, args)
		},
		UsageLine: "maze [options] <layout.txt>",
		Short:     "solve a text maze layout",
		Long: `
solve a text maze layout with BFS and/or DFS.

The layout marks walls with any character other than the start, goal and
path characters. Each run prints the maze with the solution (¤) and the
explored cells (·) drawn in.

ex:
 $ lvsearch maze -algo bfs -steps-dir out maze1.txt
`,
		Flag: *flag.NewFlagSet("maze", flag.ExitOnError),
	}
	cfg.register(&cmd.Flag)
	cmd.Flag.StringVar(&cfg.start, "start", "A", "Start character in the layout")
	cmd.Flag.StringVar(&cfg.goal, "goal", "B", "Goal character in the layout")
	cmd.Flag.StringVar(&cfg.path, "path", " ", "Open path character in the layout")

	return cmd
}

func (c *mazeConfig) layoutOptions() (maze.LayoutOptions, error) {
	var opts maze.LayoutOptions
	for _, f := range []struct {
		name string
		val  string
		dst  *rune
	}{
		{"start", c.start, &opts.StartChar},
		{"goal", c.goal, &opts.GoalChar},
		{"path", c.path, &opts.PathChar},
	} {
		if utf8.RuneCountInString(f.val) != 1 {
			return opts, fmt.Errorf("%w: -%s must be a single character, got %q", errUsage, f.name, f.val)
		}
		*f.dst, _ = utf8.DecodeRuneInString(f.val)
	}

	return opts, nil
}

func runMaze(cfg *mazeConfig, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: maze takes exactly one layout file, got %d", errUsage, len(args))
	}
	algos, err := cfg.algorithms()
	if err != nil {
		return err
	}
	layout, err := cfg.layoutOptions()
	if err != nil {
		return err
	}

	logger := cfg.logger()
	m, err := maze.Load(args[0], layout)
	if err != nil {
		return err
	}
	e, err := m.NewEngine(cfg.engineOptions(logger)...)
	if err != nil {
		return err
	}

	name := filepath.Base(args[0])
	for _, algo := range algos {
		if _, err = e.Solve(algo); err != nil {
			return fmt.Errorf("maze %s with %s: %w", name, algo, err)
		}
		board := m.Render(e.Solution(), e.Explored())
		printMaze(stdout, maze.Summary(name, e), board)

		if cfg.stepsDir == "" {
			continue
		}
		path, err := writeSteps(cfg.stepsDir, args[0], algo, func(w io.Writer) error {
			printMaze(w, maze.Summary(name, e), board)
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
			return e.WriteReport(w, nil)
		})
		if err != nil {
			return err
		}
		logger.Info("algorithm steps saved", "path", path)
	}

	return nil
}

func printMaze(w io.Writer, summary []string, board string) {
	for _, line := range summary {
		fmt.Fprintln(w, line)
	}
	fmt.Fprint(w, board)
}
