package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/katalvlaran/pathsearch/maze"
	"github.com/katalvlaran/pathsearch/problem"
	"github.com/katalvlaran/pathsearch/puzzle"
	"github.com/katalvlaran/pathsearch/search"
)

var (
	problemFile string
	candidate   string
	verbose     bool

	mazeWidth, mazeHeight int
	mazeSeed              int64
)

func SolveCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       runSolve,
		UsageLine: "solve -f <problem file> [options]",
		Short:     "find a fewest-step solution",
		Long: `
find a fewest-step solution with breadth-first search and print one state per line

	$ pathsearch solve -f <problem file> [-v]

`,
		Flag: *flag.NewFlagSet("solve", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&problemFile, "f", "", "YAML problem file")
	cmd.Flag.BoolVar(&verbose, "v", false, "log search statistics")
	return cmd
}

func ValidateCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       runValidate,
		UsageLine: "validate -f <problem file> -path <states>",
		Short:     "check a candidate solution",
		Long: `
check a candidate solution against a problem file

	$ pathsearch validate -f maze.yaml -path "1,0;0,0;0,1;0,2;1,2"
	$ pathsearch validate -f puzzle.yaml -path "123406758;123456708;123456780"

`,
		Flag: *flag.NewFlagSet("validate", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&problemFile, "f", "", "YAML problem file")
	cmd.Flag.StringVar(&candidate, "path", "", "states separated by ';'")
	return cmd
}

func GenMazeCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       runGenMaze,
		UsageLine: "genmaze [options]",
		Short:     "print a generated maze",
		Long: `
print a perfect maze carved by randomized depth-first search,
from the top-left corner to the bottom-right corner

	$ pathsearch genmaze -w 20 -h 10 -seed 7

`,
		Flag: *flag.NewFlagSet("genmaze", flag.ExitOnError),
	}
	cmd.Flag.IntVar(&mazeWidth, "w", 10, "maze width")
	cmd.Flag.IntVar(&mazeHeight, "h", 10, "maze height")
	cmd.Flag.Int64Var(&mazeSeed, "seed", 0, "random seed")
	return cmd
}

func runSolve(cmd *commander.Command, args []string) error {
	if err := requireFlag(cmd, "f", problemFile); err != nil {
		return err
	}
	return solveFile(os.Stdout, problemFile, verbose)
}

func runValidate(cmd *commander.Command, args []string) error {
	if err := requireFlag(cmd, "f", problemFile); err != nil {
		return err
	}
	return validateFile(os.Stdout, problemFile, candidate)
}

func runGenMaze(cmd *commander.Command, args []string) error {
	m, err := maze.Generate(mazeWidth, mazeHeight,
		maze.Cell{}, maze.Cell{X: mazeWidth - 1, Y: mazeHeight - 1}, mazeSeed)
	if err != nil {
		return err
	}
	fmt.Print(m)
	return nil
}

func requireFlag(cmd *commander.Command, name, value string) error {
	if value == "" {
		cmd.Usage()
		return fmt.Errorf("required flag -%s not set", name)
	}
	return nil
}

// solveFile loads a problem and writes its solution to w.
func solveFile(w io.Writer, path string, verbose bool) error {
	f, err := problem.Load(path)
	if err != nil {
		return err
	}
	switch f.Kind {
	case problem.KindPuzzle:
		p, err := f.Puzzle()
		if err != nil {
			return err
		}
		if !puzzle.Solvable(p.InitialState()) {
			log.Printf("warning: %v cannot reach the goal; exploring the full component", p.InitialState())
		}
		return solve[puzzle.Board](w, p, verbose, formatBoard)
	default:
		m, err := f.Maze()
		if err != nil {
			return err
		}
		return solve[maze.Cell](w, m, verbose, formatCell)
	}
}

// validateFile checks the ';'-separated candidate against a problem and
// writes "valid" or "invalid" to w.
func validateFile(w io.Writer, path, candidate string) error {
	f, err := problem.Load(path)
	if err != nil {
		return err
	}
	var ok bool
	switch f.Kind {
	case problem.KindPuzzle:
		p, err := f.Puzzle()
		if err != nil {
			return err
		}
		boards, err := problem.ParseBoards(candidate)
		if err != nil {
			return err
		}
		if ok, err = validate[puzzle.Board](p, boards); err != nil {
			return err
		}
	default:
		m, err := f.Maze()
		if err != nil {
			return err
		}
		cells, err := problem.ParseCells(candidate)
		if err != nil {
			return err
		}
		if ok, err = validate[maze.Cell](m, cells); err != nil {
			return err
		}
	}

	if ok {
		fmt.Fprintln(w, "valid")
	} else {
		fmt.Fprintln(w, "invalid")
	}
	return nil
}

func solve[S comparable](w io.Writer, space search.StateSpace[S], verbose bool, format func(S) string) error {
	s, err := search.NewSearcher(space)
	if err != nil {
		return err
	}
	start := time.Now()
	res := s.Search()
	if verbose {
		log.Printf("expanded %d, discovered %d states in %v", res.Expanded, res.Discovered, time.Since(start))
	}
	if !res.Found() {
		fmt.Fprintln(w, "no solution")
		return nil
	}
	for _, st := range res.Path {
		fmt.Fprintln(w, format(st))
	}
	fmt.Fprintf(w, "%d states in solution\n", len(res.Path))
	return nil
}

func validate[S comparable](space search.StateSpace[S], path []S) (bool, error) {
	s, err := search.NewSearcher(space)
	if err != nil {
		return false, err
	}
	return s.IsValidSolution(path)
}

func formatBoard(b puzzle.Board) string { return fmt.Sprint(b[:]) }

func formatCell(c maze.Cell) string { return c.String() }
