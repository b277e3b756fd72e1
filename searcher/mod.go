package searcher

import (
	"errors"
	"fmt"
	"math"

	"gamesearch/game"
)

var ErrNoLegalMoves = errors.New("board has no legal moves")

var (
	negInf = math.Inf(-1)
	posInf = math.Inf(1)
)

// play applies a move the board itself reported as legal.
func play(board game.Board, move game.Move) game.Board {
	child, err := board.Move(move)
	if err != nil {
		panic(fmt.Sprintf("board rejected its own legal move %d: %v", move, err))
	}
	return child
}
