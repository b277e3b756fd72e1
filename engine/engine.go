package engine

import (
	"context"

	"gamesearch/experiments/metrics"
	"gamesearch/game"
)

type Engine interface {
	// Run plays a game till it is won, drawn or a max number of turns is reached
	Run(ctx context.Context) (Result, error)
}

type Result struct {
	Winner game.Piece // nil unless the game was won
	Moves  []game.Move
	Final  game.Board
	Metric metrics.GameMetric
}

func (r Result) IsDraw() bool {
	return game.IsDraw(r.Final)
}
