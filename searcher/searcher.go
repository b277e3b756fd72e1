package searcher

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"gamesearch/experiments/metrics"
	"gamesearch/game"
)

// FindBestMove returns the legal move with the highest alpha-beta score for
// the side to move, searching maxDepth plies below each move. The first move
// wins ties. NoMove is returned when the board has no legal moves.
func FindBestMove(board game.Board, maxDepth int) game.Move {
	return findBestMove(board, maxDepth, metrics.NewDummyCollector())
}

func findBestMove(board game.Board, maxDepth int, c metrics.Collector) game.Move {
	bestVal := negInf
	bestMove := game.NoMove
	for _, move := range board.LegalMoves() {
		result := alphabeta(play(board, move), false, board.Turn(), maxDepth, negInf, posInf, c)
		if result > bestVal {
			bestVal = result
			bestMove = move
		}
	}
	return bestMove
}

// Searcher is a configurable best-move search.
type Searcher struct {
	depth        int
	goroutines   int
	pruning      bool
	newCollector func() metrics.Collector
}

func New(options ...Option) *Searcher {
	s := defaults()
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Searcher) Depth() int {
	return s.depth
}

// FindNextMove picks the move FindBestMove would pick. Root moves are scored
// independently, so spreading them over goroutines does not change the result.
func (s *Searcher) FindNextMove(ctx context.Context, board game.Board) (game.Move, metrics.SearchMetric, error) {
	moves := board.LegalMoves()
	if len(moves) == 0 {
		return game.NoMove, metrics.SearchMetric{}, ErrNoLegalMoves
	}

	collector := s.newCollector()
	collector.Start(s.goroutines, s.depth, s.pruning)

	player := board.Turn()
	scores := make([]float64, len(moves))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.goroutines)
	for i, move := range moves {
		i, move := i, move
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			scores[i] = s.score(play(board, move), player, collector)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return game.NoMove, collector.Complete(), fmt.Errorf("search interrupted: %w", err)
	}

	best := 0
	for i := range scores {
		if scores[i] > scores[best] {
			best = i
		}
	}
	metric := collector.Complete()

	log.Debug().
		Int("depth", s.depth).
		Int("move", int(moves[best])).
		Float64("score", scores[best]).
		Int64("nodes", metric.Nodes).
		Int64("cutoffs", metric.Cutoffs).
		Msg("search-complete")

	return moves[best], metric, nil
}

func (s *Searcher) score(child game.Board, player game.Piece, c metrics.Collector) float64 {
	if s.pruning {
		return alphabeta(child, false, player, s.depth, negInf, posInf, c)
	}
	return minimax(child, false, player, s.depth, c)
}
