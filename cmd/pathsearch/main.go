// Command pathsearch solves and validates eight-puzzles and mazes described
// by YAML problem files.
//
//	$ pathsearch solve -f puzzle.yaml
//	$ pathsearch validate -f maze.yaml -path "1,0;0,0;0,1;0,2;1,2"
//	$ pathsearch genmaze -w 20 -h 10 -seed 7
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

func newApp() *commander.Command {
	return &commander.Command{
		UsageLine: "pathsearch <command> [options]",
		Short:     "breadth-first solver for puzzles and mazes",
		Subcommands: []*commander.Command{
			SolveCmd(),
			ValidateCmd(),
			GenMazeCmd(),
		},
		Flag: *flag.NewFlagSet("pathsearch", flag.ExitOnError),
	}
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("pathsearch: ")

	if err := newApp().Dispatch(os.Args[1:]); err != nil {
		fmt.Printf("**err**: %v\n", err)
		os.Exit(1)
	}
}
