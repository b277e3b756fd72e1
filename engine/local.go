package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"gamesearch/experiments/metrics"
	"gamesearch/game"
	"gamesearch/meta"
	"gamesearch/player"
)

// Observer is called after every ply with the player who moved and the new board.
type Observer func(step int, p player.Player, move game.Move, board game.Board)

type Option func(e *Local)

func WithObserver(observer Observer) Option {
	return func(e *Local) {
		if observer != nil {
			e.observers = append(e.observers, observer)
		}
	}
}

func WithMaxTurns(turns int) Option {
	return func(e *Local) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

// Local alternates two players on one board in-process. players[0] moves
// first, on the initial board's turn.
type Local struct {
	Board     game.Board
	Players   []player.Player
	observers []Observer
	maxTurns  int
}

func LocalEngine(board game.Board, players []player.Player, options ...Option) *Local {
	if len(players) != 2 {
		panic("need exactly two players")
	}

	e := &Local{
		Board:    board,
		Players:  players,
		maxTurns: meta.MAX_TURNS,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the game loop until the board is terminal.
func (e *Local) Run(ctx context.Context) (Result, error) {
	start := time.Now()
	board := e.Board
	moves := []game.Move{}

	log.Info().Msgf("%s (%s) is starting", e.Players[0].Name(), board.Turn())

	turn := 0
	for !game.IsTerminal(board) && turn < e.maxTurns {
		current := e.Players[turn%len(e.Players)]

		move, err := current.FindMove(ctx, board)
		if err != nil {
			return e.result(board, moves, start), fmt.Errorf("%s failed to find a move: %w", current.Name(), err)
		}

		next, err := board.Move(move)
		if err != nil {
			return e.result(board, moves, start), fmt.Errorf("%s played an invalid move: %w", current.Name(), err)
		}
		log.Debug().Str("player", current.Name()).Int("move", int(move)).Int("turn", turn+1).Msg("move-played")

		board = next
		moves = append(moves, move)
		turn++

		for _, observe := range e.observers {
			observe(turn, current, move, board)
		}
	}

	result := e.result(board, moves, start)
	if result.Winner != nil {
		log.Info().Msgf("game over after %d moves, winner: %s", len(moves), result.Winner)
	} else if game.IsDraw(board) {
		log.Info().Msgf("game over after %d moves, draw", len(moves))
	} else {
		log.Warn().Msgf("stopped after %d turns without a result", turn)
	}
	return result, nil
}

func (e *Local) result(board game.Board, moves []game.Move, start time.Time) Result {
	end := time.Now()
	winner := game.Winner(board)
	metric := metrics.GameMetric{
		StartingPlayer: e.Board.Turn().String(),
		StartTime:      start,
		EndTime:        end,
		Duration:       end.Sub(start),
		TotalMoves:     len(moves),
	}
	if winner != nil {
		metric.Winner = winner.String()
	}
	return Result{
		Winner: winner,
		Moves:  moves,
		Final:  board,
		Metric: metric,
	}
}
