// Package tictactoe implements game.Board for 3x3 tic-tac-toe.
package tictactoe

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"gamesearch/game"
)

const NumCells = 9

var lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, // Rows
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8}, // Columns
	{0, 4, 8}, {2, 4, 6}, // Diagonals
}

// Board is a tic-tac-toe position. The zero value is not a valid position;
// use NewBoard or Parse.
type Board struct {
	cells [NumCells]Piece
	turn  Piece
}

// NewBoard returns the empty board with X to move.
func NewBoard() Board {
	return Board{turn: X}
}

// Parse builds a position from nine cells in row-major order, e.g. "XO.X..O..".
func Parse(cells string, turn Piece) (Board, error) {
	if turn != X && turn != O {
		return Board{}, fmt.Errorf("turn must be X or O, got %q", turn.String())
	}
	if n := utf8.RuneCountInString(cells); n != NumCells {
		return Board{}, fmt.Errorf("expected %d cells, got %d", NumCells, n)
	}
	b := Board{turn: turn}
	i := 0
	for _, r := range cells {
		p, ok := ParsePiece(r)
		if !ok {
			return Board{}, fmt.Errorf("unknown cell %q at index %d", r, i)
		}
		b.cells[i] = p
		i++
	}
	return b, nil
}

func (b Board) Turn() game.Piece {
	return b.turn
}

// Cell returns the piece at index i (0-8).
func (b Board) Cell(i int) Piece {
	return b.cells[i]
}

func (b Board) Move(m game.Move) (game.Board, error) {
	if m < 0 || int(m) >= NumCells {
		return nil, game.NewInvalidMoveError(m, fmt.Sprintf("out of range 0-%d", NumCells-1))
	}
	if b.cells[m] != Empty {
		return nil, game.NewInvalidMoveError(m, fmt.Sprintf("cell is occupied by %s", b.cells[m]))
	}
	next := b // Arrays copy by value
	next.cells[m] = b.turn
	next.turn = b.turn.Opposite().(Piece)
	return next, nil
}

func (b Board) LegalMoves() []game.Move {
	moves := make([]game.Move, 0, NumCells)
	for i, p := range b.cells {
		if p == Empty {
			moves = append(moves, game.Move(i))
		}
	}
	return moves
}

func (b Board) IsWin() bool {
	return b.Winner() != Empty
}

// Winner returns the piece owning a complete line, or Empty.
func (b Board) Winner() Piece {
	for _, l := range lines {
		p := b.cells[l[0]]
		if p != Empty && p == b.cells[l[1]] && p == b.cells[l[2]] {
			return p
		}
	}
	return Empty
}

func (b Board) Evaluate(player game.Piece) float64 {
	if !b.IsWin() {
		return 0
	}
	if b.Turn() == player {
		return -1
	}
	return 1
}

func (b Board) String() string {
	var sb strings.Builder
	for row := 0; row < 3; row++ {
		if row > 0 {
			sb.WriteString("\n-----\n")
		}
		fmt.Fprintf(&sb, "%s|%s|%s", b.cells[row*3], b.cells[row*3+1], b.cells[row*3+2])
	}
	return sb.String()
}
