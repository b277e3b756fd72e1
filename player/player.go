package player

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/exp/rand"

	"gamesearch/experiments/metrics"
	"gamesearch/game"
	"gamesearch/searcher"
	"gamesearch/utils"
)

// Player chooses moves for one side of a game.
type Player interface {
	Name() string
	FindMove(ctx context.Context, board game.Board) (game.Move, error)
}

// Computer plays the searcher's best move.
type Computer struct {
	name     string
	searcher *searcher.Searcher
	last     metrics.SearchMetric
}

func NewComputer(name string, s *searcher.Searcher) *Computer {
	return &Computer{name: name, searcher: s}
}

func (c *Computer) Name() string {
	return c.name
}

func (c *Computer) FindMove(ctx context.Context, board game.Board) (game.Move, error) {
	move, metric, err := c.searcher.FindNextMove(ctx, board)
	c.last = metric
	return move, err
}

// LastMetric returns the metrics of the most recent search.
func (c *Computer) LastMetric() metrics.SearchMetric {
	return c.last
}

// Random plays a uniformly random legal move.
type Random struct {
	name string
	rng  *rand.Rand
}

func NewRandom(name string, seed uint64) *Random {
	return &Random{name: name, rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) Name() string {
	return r.name
}

func (r *Random) FindMove(ctx context.Context, board game.Board) (game.Move, error) {
	moves := board.LegalMoves()
	if len(moves) == 0 {
		return game.NoMove, searcher.ErrNoLegalMoves
	}
	return moves[r.rng.Intn(len(moves))], nil
}

// LineReader is satisfied by *readline.Instance.
type LineReader interface {
	Readline() (string, error)
}

// Human asks for a move index until a legal one is entered.
type Human struct {
	name string
	in   LineReader
	out  io.Writer
}

func NewHuman(name string, in LineReader, out io.Writer) *Human {
	return &Human{name: name, in: in, out: out}
}

func (h *Human) Name() string {
	return h.name
}

func (h *Human) FindMove(ctx context.Context, board game.Board) (game.Move, error) {
	moves := board.LegalMoves()
	if len(moves) == 0 {
		return game.NoMove, searcher.ErrNoLegalMoves
	}

	for {
		if err := ctx.Err(); err != nil {
			return game.NoMove, err
		}

		line, err := h.in.Readline()
		if err != nil {
			return game.NoMove, fmt.Errorf("failed to read move: %w", err)
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintf(h.out, "%q is not a square number\n", line)
			continue
		}
		move := game.Move(n)
		if utils.FindIndex(moves, move) < 0 {
			fmt.Fprintf(h.out, "%d is not a legal square, choose one of %v\n", n, moves)
			continue
		}
		if _, err := board.Move(move); err != nil {
			var ime *game.InvalidMoveError
			if errors.As(err, &ime) {
				fmt.Fprintln(h.out, ime.Error())
				continue
			}
			return game.NoMove, err
		}
		return move, nil
	}
}
