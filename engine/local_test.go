package engine

import (
	"context"
	"errors"
	"testing"

	"gamesearch/game"
	"gamesearch/meta"
	"gamesearch/player"
	"gamesearch/searcher"
	"gamesearch/tictactoe"

	"github.com/stretchr/testify/require"
)

type scriptedPlayer struct {
	name  string
	moves []game.Move
	err   error
}

func (s *scriptedPlayer) Name() string {
	return s.name
}

func (s *scriptedPlayer) FindMove(ctx context.Context, board game.Board) (game.Move, error) {
	if s.err != nil {
		return game.NoMove, s.err
	}
	move := s.moves[0]
	s.moves = s.moves[1:]
	return move, nil
}

func computer(name string) player.Player {
	return player.NewComputer(name, searcher.New(searcher.WithDepth(meta.FULL_DEPTH), searcher.WithGoroutines(2)))
}

func TestLocalEngineInit(t *testing.T) {
	t.Run("panics without two players", func(t *testing.T) {
		require.Panics(t, func() {
			LocalEngine(tictactoe.NewBoard(), []player.Player{computer("solo")})
		})
	})

	t.Run("defaults", func(t *testing.T) {
		e := LocalEngine(tictactoe.NewBoard(), []player.Player{computer("a"), computer("b")}, WithMaxTurns(-3))

		require.Equal(t, meta.MAX_TURNS, e.maxTurns)
		require.Empty(t, e.observers)
	})
}

func TestLocalEngineRun(t *testing.T) {
	t.Run("scripted game with a winner", func(t *testing.T) {
		x := &scriptedPlayer{name: "x", moves: []game.Move{0, 1, 2}}
		o := &scriptedPlayer{name: "o", moves: []game.Move{3, 4}}
		var observed []game.Move
		var steps []int
		e := LocalEngine(tictactoe.NewBoard(), []player.Player{x, o},
			WithObserver(func(step int, p player.Player, move game.Move, board game.Board) {
				steps = append(steps, step)
				observed = append(observed, move)
			}))

		result, err := e.Run(context.Background())

		require.NoError(t, err)
		require.Equal(t, game.Piece(tictactoe.X), result.Winner)
		require.Equal(t, []game.Move{0, 3, 1, 4, 2}, result.Moves)
		require.Equal(t, result.Moves, observed)
		require.Equal(t, []int{1, 2, 3, 4, 5}, steps)
		require.False(t, result.IsDraw())
		require.Equal(t, "X", result.Metric.Winner)
		require.Equal(t, "X", result.Metric.StartingPlayer)
		require.Equal(t, 5, result.Metric.TotalMoves)
	})

	t.Run("computer self-play is a draw", func(t *testing.T) {
		e := LocalEngine(tictactoe.NewBoard(), []player.Player{computer("c1"), computer("c2")})

		result, err := e.Run(context.Background())

		require.NoError(t, err)
		require.True(t, result.IsDraw(), "final board\n%s", result.Final)
		require.Nil(t, result.Winner)
		require.Len(t, result.Moves, 9)
		require.Empty(t, result.Metric.Winner)
	})

	t.Run("computer never loses to a random player", func(t *testing.T) {
		for seed := uint64(1); seed <= 6; seed++ {
			c := computer("computer")
			r := player.NewRandom("random", seed)

			asFirst, err := LocalEngine(tictactoe.NewBoard(), []player.Player{c, r}).Run(context.Background())
			require.NoError(t, err)
			require.NotEqual(t, game.Piece(tictactoe.O), asFirst.Winner, "seed %d\n%s", seed, asFirst.Final)

			asSecond, err := LocalEngine(tictactoe.NewBoard(), []player.Player{r, c}).Run(context.Background())
			require.NoError(t, err)
			require.NotEqual(t, game.Piece(tictactoe.X), asSecond.Winner, "seed %d\n%s", seed, asSecond.Final)
		}
	})

	t.Run("player error stops the game", func(t *testing.T) {
		boom := errors.New("boom")
		x := &scriptedPlayer{name: "x", moves: []game.Move{4}}
		o := &scriptedPlayer{name: "o", err: boom}

		result, err := LocalEngine(tictactoe.NewBoard(), []player.Player{x, o}).Run(context.Background())

		require.ErrorIs(t, err, boom)
		require.Equal(t, []game.Move{4}, result.Moves)
	})

	t.Run("invalid move stops the game", func(t *testing.T) {
		x := &scriptedPlayer{name: "x", moves: []game.Move{4}}
		o := &scriptedPlayer{name: "o", moves: []game.Move{4}}

		_, err := LocalEngine(tictactoe.NewBoard(), []player.Player{x, o}).Run(context.Background())

		var ime *game.InvalidMoveError
		require.ErrorAs(t, err, &ime)
	})

	t.Run("max turns", func(t *testing.T) {
		x := &scriptedPlayer{name: "x", moves: []game.Move{0, 1}}
		o := &scriptedPlayer{name: "o", moves: []game.Move{3}}

		result, err := LocalEngine(tictactoe.NewBoard(), []player.Player{x, o}, WithMaxTurns(2)).Run(context.Background())

		require.NoError(t, err)
		require.Len(t, result.Moves, 2)
		require.Nil(t, result.Winner)
		require.False(t, result.IsDraw())
	})
}
