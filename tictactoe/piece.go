package tictactoe

import "gamesearch/game"

type Piece int8

const (
	Empty Piece = iota
	X
	O
)

// Opposite returns the other side. Empty has no opponent and maps to itself.
func (p Piece) Opposite() game.Piece {
	switch p {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

func (p Piece) String() string {
	switch p {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return " "
	}
}

// ParsePiece accepts "X", "O" (any case) and " " or "." for Empty.
func ParsePiece(r rune) (Piece, bool) {
	switch r {
	case 'X', 'x':
		return X, true
	case 'O', 'o':
		return O, true
	case ' ', '.', '_':
		return Empty, true
	default:
		return Empty, false
	}
}
