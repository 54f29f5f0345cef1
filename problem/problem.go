package problem

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathsearch/maze"
	"github.com/katalvlaran/pathsearch/puzzle"
)

// Sentinel errors for problem files.
var (
	// ErrUnknownKind indicates a missing or unsupported kind field.
	ErrUnknownKind = errors.New("problem: unknown kind")
	// ErrKindMismatch indicates a builder was called for the wrong kind.
	ErrKindMismatch = errors.New("problem: kind mismatch")
	// ErrBadPath indicates a candidate path string that cannot be parsed.
	ErrBadPath = errors.New("problem: malformed path")
)

// Kind names the state space a File describes.
type Kind string

// Supported kinds.
const (
	KindPuzzle Kind = "puzzle"
	KindMaze   Kind = "maze"
)

const defaultMazeSide = 3

// Point is a maze cell in YAML form.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Cell converts p to a maze.Cell.
func (p Point) Cell() maze.Cell {
	return maze.Cell{X: p.X, Y: p.Y}
}

// File is one decoded problem document.
type File struct {
	Kind Kind `yaml:"kind"`

	// Puzzle fields.
	Tiles []int `yaml:"tiles,omitempty"`

	// Maze fields.
	Width  int    `yaml:"width,omitempty"`
	Height int    `yaml:"height,omitempty"`
	Start  *Point `yaml:"start,omitempty"`
	Goal   *Point `yaml:"goal,omitempty"`
	Seed   int64  `yaml:"seed,omitempty"`
	Layout string `yaml:"layout,omitempty"`
}

// Load reads and decodes the problem file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("problem: reading %s: %w", path, err)
	}
	f, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Decode parses a YAML problem document. Unknown fields are rejected.
func Decode(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("problem: decoding yaml: %w", err)
	}
	switch f.Kind {
	case KindPuzzle, KindMaze:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, f.Kind)
	}
	f.applyDefaults()

	return &f, nil
}

// applyDefaults fills unset maze fields.
func (f *File) applyDefaults() {
	if f.Kind != KindMaze || f.Layout != "" {
		return
	}
	if f.Width == 0 {
		f.Width = defaultMazeSide
	}
	if f.Height == 0 {
		f.Height = defaultMazeSide
	}
	if f.Start == nil {
		f.Start = &Point{}
	}
	if f.Goal == nil {
		f.Goal = &Point{X: f.Width - 1, Y: f.Height - 1}
	}
}

// Puzzle builds the eight-puzzle described by f.
func (f *File) Puzzle() (*puzzle.EightPuzzle, error) {
	if f.Kind != KindPuzzle {
		return nil, fmt.Errorf("%w: want %s, have %s", ErrKindMismatch, KindPuzzle, f.Kind)
	}
	return puzzle.New(f.Tiles)
}

// Maze builds the maze described by f: parsed from Layout when present,
// generated otherwise.
func (f *File) Maze() (*maze.Maze, error) {
	if f.Kind != KindMaze {
		return nil, fmt.Errorf("%w: want %s, have %s", ErrKindMismatch, KindMaze, f.Kind)
	}
	if f.Layout != "" {
		return maze.Parse(f.Layout)
	}
	return maze.Generate(f.Width, f.Height, f.Start.Cell(), f.Goal.Cell(), f.Seed)
}

// ParseCells reads a maze path written as "x,y;x,y;...". An empty string
// yields an empty, non-nil path.
func ParseCells(s string) ([]maze.Cell, error) {
	parts := splitStates(s)
	cells := make([]maze.Cell, 0, len(parts))
	for _, p := range parts {
		xy := strings.Split(p, ",")
		if len(xy) != 2 {
			return nil, fmt.Errorf("%w: cell %q", ErrBadPath, p)
		}
		x, errX := strconv.Atoi(strings.TrimSpace(xy[0]))
		y, errY := strconv.Atoi(strings.TrimSpace(xy[1]))
		if errX != nil || errY != nil {
			return nil, fmt.Errorf("%w: cell %q", ErrBadPath, p)
		}
		cells = append(cells, maze.Cell{X: x, Y: y})
	}
	return cells, nil
}

// ParseBoards reads a puzzle path written as "123405678;123450678;...".
func ParseBoards(s string) ([]puzzle.Board, error) {
	parts := splitStates(s)
	boards := make([]puzzle.Board, 0, len(parts))
	for _, p := range parts {
		b, err := puzzle.ParseBoard(p)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadPath, err)
		}
		boards = append(boards, b)
	}
	return boards, nil
}

func splitStates(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ";") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
