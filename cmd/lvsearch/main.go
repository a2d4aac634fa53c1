// Command lvsearch solves maze and sliding-puzzle layout files with
// breadth-first and depth-first search and prints the solutions.
//
//	$ lvsearch maze [options] <layout.txt>
//	$ lvsearch puzzle [options] <start.txt> <goal.txt>
//
// Run "lvsearch help <command>" for the options of each command.
package main

import (
	"fmt"
	"os"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

func newRootCommand() *commander.Command {
	return &commander.Command{
		UsageLine: os.Args[0],
		Short:     "uninformed search (BFS/DFS) over mazes and sliding puzzles",
		Subcommands: []*commander.Command{
			mazeCmd(),
			puzzleCmd(),
		},
		Flag: *flag.NewFlagSet("lvsearch", flag.ExitOnError),
	}
}

func main() {
	if err := newRootCommand().Dispatch(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "**err**: %v\n", err)
		os.Exit(1)
	}
}
