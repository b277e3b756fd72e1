package searcher

import (
	"math"

	"gamesearch/experiments/metrics"
	"gamesearch/game"
)

// AlphaBeta returns the same score as Minimax while skipping subtrees that
// cannot change it. Root calls pass alpha = -Inf and beta = +Inf.
func AlphaBeta(board game.Board, maximizing bool, original game.Piece, maxDepth int, alpha, beta float64) float64 {
	return alphabeta(board, maximizing, original, maxDepth, alpha, beta, metrics.NewDummyCollector())
}

func alphabeta(board game.Board, maximizing bool, original game.Piece, maxDepth int, alpha, beta float64, c metrics.Collector) float64 {
	c.AddNode()
	if game.IsTerminal(board) || maxDepth == 0 {
		c.AddLeaf()
		return board.Evaluate(original)
	}

	moves := board.LegalMoves()
	if maximizing {
		for i, move := range moves {
			result := alphabeta(play(board, move), false, original, maxDepth-1, alpha, beta, c)
			alpha = math.Max(result, alpha)
			if beta <= alpha {
				if i < len(moves)-1 {
					c.AddCutoff()
				}
				break
			}
		}
		return alpha
	}

	for i, move := range moves {
		result := alphabeta(play(board, move), true, original, maxDepth-1, alpha, beta, c)
		beta = math.Min(result, beta)
		if beta <= alpha {
			if i < len(moves)-1 {
				c.AddCutoff()
			}
			break
		}
	}
	return beta
}
