// Package maze finds paths through a grid of open and blocked cells.
package maze

import (
	"errors"
	"fmt"
	"strings"
)

type Cell byte

const (
	Empty   Cell = ' '
	Blocked Cell = 'X'
	Start   Cell = 'S'
	Goal    Cell = 'G'
	Mark    Cell = '*'
)

var ErrOutOfBounds = errors.New("location is outside the maze")

type Location struct {
	Row, Col int
}

func (l Location) String() string {
	return fmt.Sprintf("(%d,%d)", l.Row, l.Col)
}

// Maze is a rectangular grid with one start and one goal cell.
type Maze struct {
	rows, cols int
	start      Location
	goal       Location
	grid       [][]Cell
}

func New(rows, cols int, start, goal Location) (*Maze, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("maze must have positive size, got %dx%d", rows, cols)
	}
	m := &Maze{rows: rows, cols: cols, start: start, goal: goal}
	if !m.contains(start) {
		return nil, fmt.Errorf("start %s: %w", start, ErrOutOfBounds)
	}
	if !m.contains(goal) {
		return nil, fmt.Errorf("goal %s: %w", goal, ErrOutOfBounds)
	}

	m.grid = make([][]Cell, rows)
	for r := range m.grid {
		m.grid[r] = make([]Cell, cols)
		for c := range m.grid[r] {
			m.grid[r][c] = Empty
		}
	}
	m.grid[start.Row][start.Col] = Start
	m.grid[goal.Row][goal.Col] = Goal
	return m, nil
}

// Parse reads a maze from lines of equal width using the Cell characters;
// '.' is accepted for Empty. Exactly one 'S' and one 'G' are required.
func Parse(text string) (*Maze, error) {
	lines := strings.Split(strings.Trim(text, "\n"), "\n")
	cols := len(lines[0])
	var start, goal []Location
	var blocked []Location
	for r, line := range lines {
		if len(line) != cols {
			return nil, fmt.Errorf("row %d has width %d, expected %d", r, len(line), cols)
		}
		for c := 0; c < len(line); c++ {
			loc := Location{r, c}
			switch Cell(line[c]) {
			case Empty, '.':
			case Blocked:
				blocked = append(blocked, loc)
			case Start:
				start = append(start, loc)
			case Goal:
				goal = append(goal, loc)
			default:
				return nil, fmt.Errorf("unknown cell %q at %s", line[c], loc)
			}
		}
	}
	if len(start) != 1 || len(goal) != 1 {
		return nil, fmt.Errorf("expected one start and one goal, got %d and %d", len(start), len(goal))
	}

	m, err := New(len(lines), cols, start[0], goal[0])
	if err != nil {
		return nil, err
	}
	for _, loc := range blocked {
		m.grid[loc.Row][loc.Col] = Blocked
	}
	return m, nil
}

func (m *Maze) Start() Location {
	return m.start
}

func (m *Maze) Goal() Location {
	return m.goal
}

func (m *Maze) Cell(loc Location) Cell {
	return m.grid[loc.Row][loc.Col]
}

// Block marks loc as impassable. Start and goal cannot be blocked.
func (m *Maze) Block(loc Location) error {
	if !m.contains(loc) {
		return fmt.Errorf("block %s: %w", loc, ErrOutOfBounds)
	}
	if loc == m.start || loc == m.goal {
		return fmt.Errorf("cannot block start or goal %s", loc)
	}
	m.grid[loc.Row][loc.Col] = Blocked
	return nil
}

// Successors returns the open neighbours of loc: down, up, right, left.
func (m *Maze) Successors(loc Location) []Location {
	candidates := [4]Location{
		{loc.Row + 1, loc.Col},
		{loc.Row - 1, loc.Col},
		{loc.Row, loc.Col + 1},
		{loc.Row, loc.Col - 1},
	}
	successors := make([]Location, 0, len(candidates))
	for _, next := range candidates {
		if m.contains(next) && m.grid[next.Row][next.Col] != Blocked {
			successors = append(successors, next)
		}
	}
	return successors
}

// Mark returns a copy of the maze with path cells marked, start and goal kept.
func (m *Maze) Mark(path []Location) *Maze {
	marked := *m
	marked.grid = make([][]Cell, m.rows)
	for r := range m.grid {
		marked.grid[r] = append([]Cell(nil), m.grid[r]...)
	}
	for _, loc := range path {
		if loc != m.start && loc != m.goal && m.contains(loc) {
			marked.grid[loc.Row][loc.Col] = Mark
		}
	}
	return &marked
}

func (m *Maze) String() string {
	var sb strings.Builder
	for _, row := range m.grid {
		for _, cell := range row {
			sb.WriteByte(byte(cell))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (m *Maze) contains(loc Location) bool {
	return loc.Row >= 0 && loc.Row < m.rows && loc.Col >= 0 && loc.Col < m.cols
}
