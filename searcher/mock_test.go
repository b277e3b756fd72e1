package searcher

import (
	"gamesearch/game"

	"golang.org/x/exp/rand"
)

type mockPiece string

const (
	maxPlayer mockPiece = "max"
	minPlayer mockPiece = "min"
)

func (p mockPiece) Opposite() game.Piece {
	if p == maxPlayer {
		return minPlayer
	}
	return maxPlayer
}

func (p mockPiece) String() string {
	return string(p)
}

// mockBoard is an explicit game tree. Leaves carry a value from maxPlayer's
// perspective.
type mockBoard struct {
	turn     mockPiece
	value    float64
	children []*mockBoard
}

func (m *mockBoard) Turn() game.Piece {
	return m.turn
}

func (m *mockBoard) Move(move game.Move) (game.Board, error) {
	if move < 0 || int(move) >= len(m.children) {
		return nil, game.NewInvalidMoveError(move, "no such child")
	}
	return m.children[move], nil
}

func (m *mockBoard) LegalMoves() []game.Move {
	moves := make([]game.Move, len(m.children))
	for i := range moves {
		moves[i] = game.Move(i)
	}
	return moves
}

func (m *mockBoard) IsWin() bool {
	return false
}

func (m *mockBoard) Evaluate(player game.Piece) float64 {
	if player == maxPlayer {
		return m.value
	}
	return -m.value
}

func leaf(value float64) *mockBoard {
	return &mockBoard{value: value}
}

func tree(children ...*mockBoard) *mockBoard {
	return &mockBoard{children: children}
}

// withTurns sets turns top-down starting from turn.
func withTurns(root *mockBoard, turn mockPiece) *mockBoard {
	root.turn = turn
	for _, child := range root.children {
		withTurns(child, turn.Opposite().(mockPiece))
	}
	return root
}

func randomTree(rng *rand.Rand, depth, branching int) *mockBoard {
	if depth == 0 || rng.Intn(5) == 0 {
		return leaf(float64(rng.Intn(21) - 10))
	}
	n := 1 + rng.Intn(branching)
	children := make([]*mockBoard, n)
	for i := range children {
		children[i] = randomTree(rng, depth-1, branching)
	}
	return tree(children...)
}

// brokenBoard lists a move it then refuses to play.
type brokenBoard struct {
	mockBoard
}

func (b *brokenBoard) LegalMoves() []game.Move {
	return []game.Move{0}
}

func (b *brokenBoard) Move(move game.Move) (game.Board, error) {
	return nil, game.NewInvalidMoveError(move, "always rejected")
}
