package main

import (
	"fmt"
	"io"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/katalvlaran/lvsearch/puzzle"
)

func puzzleCmd() *commander.Command {
	cfg := &runConfig{}
	cmd := &commander.Command{
		Run: func(_ *commander.Command, args []string) error {
			return runPuzzle(cfg, args)
		},
		UsageLine: "puzzle [options] <start.txt> <goal.txt>",
		Short:     "solve a sliding puzzle",
		Long: `
solve a sliding puzzle given its start and goal layouts.

Layouts hold one row per line of whitespace separated tiles. Numbers are
tiles, any other token marks the blank.

ex:
 $ lvsearch puzzle -algo bfs -no-log start.txt goal.txt
`,
		Flag: *flag.NewFlagSet("puzzle", flag.ExitOnError),
	}
	cfg.register(&cmd.Flag)

	return cmd
}

func runPuzzle(cfg *runConfig, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: puzzle takes a start and a goal layout file, got %d", errUsage, len(args))
	}
	algos, err := cfg.algorithms()
	if err != nil {
		return err
	}

	logger := cfg.logger()
	start, err := puzzle.Load(args[0])
	if err != nil {
		return err
	}
	goal, err := puzzle.Load(args[1])
	if err != nil {
		return err
	}
	p, err := puzzle.New(start, goal)
	if err != nil {
		return err
	}
	if !puzzle.Solvable(start, goal) {
		logger.Warn("goal is unreachable from start, search will exhaust the state space",
			"start", start, "goal", goal)
	}
	e, err := p.NewEngine(cfg.engineOptions(logger)...)
	if err != nil {
		return err
	}

	for _, algo := range algos {
		if _, err = e.Solve(algo); err != nil {
			return fmt.Errorf("puzzle with %s: %w", algo, err)
		}
		out := puzzle.Render(e)
		fmt.Fprint(stdout, out)

		if cfg.stepsDir == "" {
			continue
		}
		path, err := writeSteps(cfg.stepsDir, args[0], algo, func(w io.Writer) error {
			if _, err := io.WriteString(w, out+"\n"); err != nil {
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
