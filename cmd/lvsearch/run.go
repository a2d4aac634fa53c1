package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gonuts/flag"

	"github.com/katalvlaran/lvsearch/search"
)

var errUsage = errors.New("usage")

// runConfig holds the flags shared by every solve command.
type runConfig struct {
	algo     string
	stepsDir string
	maxSteps int
	verbose  bool
	noLog    bool
	noColor  bool
}

func (c *runConfig) register(fs *flag.FlagSet) {
	fs.StringVar(&c.algo, "algo", "all", "Search algorithm: BFS, DFS or all (BFS then DFS)")
	fs.StringVar(&c.stepsDir, "steps-dir", "", "Directory to write <layout>_<ALGO>_steps.txt reports to")
	fs.IntVar(&c.maxSteps, "max-steps", 0, "Abort a search after this many iterations; 0 = no limit")
	fs.BoolVar(&c.verbose, "v", false, "Log every search step")
	fs.BoolVar(&c.noLog, "no-log", false, "Do not record the per-step log (faster on large puzzles)")
	fs.BoolVar(&c.noColor, "no-color", os.Getenv("NO_COLOR") != "", "Disable colored log output")
}

// algorithms expands -algo into the algorithms to run, in order.
func (c *runConfig) algorithms() ([]search.Algorithm, error) {
	if strings.EqualFold(c.algo, "all") {
		return search.Algorithms(), nil
	}
	a, err := search.ParseAlgorithm(c.algo)
	if err != nil {
		return nil, err
	}

	return []search.Algorithm{a}, nil
}

func (c *runConfig) logger() *slog.Logger {
	return newLogger(logOutput, c.verbose, c.noColor)
}

func (c *runConfig) engineOptions(logger *slog.Logger) []search.Option {
	return []search.Option{
		search.WithLogger(logger),
		search.WithStepLog(!c.noLog),
		search.WithMaxSteps(c.maxSteps),
	}
}

// writeSteps creates <dir>/<layout base>_<ALGO>_steps.txt and fills it with write.
func writeSteps(dir, layout string, algo search.Algorithm, write func(io.Writer) error) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create steps dir: %w", err)
	}
	base := strings.TrimSuffix(filepath.Base(layout), filepath.Ext(layout))
	path := filepath.Join(dir, fmt.Sprintf("%s_%s_steps.txt", base, algo))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create steps file: %w", err)
	}
	if err = write(f); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("write steps file: %w", err)
	}

	return path, f.Close()
}
