package searcher

import (
	"math"

	"gamesearch/experiments/metrics"
	"gamesearch/game"
)

// Minimax scores board for original by exhaustive search to maxDepth plies.
// maximizing tells whether original is to move at board; it flips every ply.
func Minimax(board game.Board, maximizing bool, original game.Piece, maxDepth int) float64 {
	return minimax(board, maximizing, original, maxDepth, metrics.NewDummyCollector())
}

func minimax(board game.Board, maximizing bool, original game.Piece, maxDepth int, c metrics.Collector) float64 {
	c.AddNode()
	if game.IsTerminal(board) || maxDepth == 0 {
		c.AddLeaf()
		return board.Evaluate(original)
	}

	if maximizing {
		best := negInf
		for _, move := range board.LegalMoves() {
			result := minimax(play(board, move), false, original, maxDepth-1, c)
			best = math.Max(result, best)
		}
		return best
	}

	worst := posInf
	for _, move := range board.LegalMoves() {
		result := minimax(play(board, move), true, original, maxDepth-1, c)
		worst = math.Min(result, worst)
	}
	return worst
}
