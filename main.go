package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"gamesearch/engine"
	"gamesearch/experiments"
	"gamesearch/experiments/metrics"
	"gamesearch/game"
	"gamesearch/hanoi"
	"gamesearch/maze"
	"gamesearch/meta"
	"gamesearch/player"
	"gamesearch/searcher"
	"gamesearch/tictactoe"
)

const defaultMaze = `
S....X....
.XXX.X.XX.
...X...X..
XX.XXXXX.X
.......X..
.XXXXX.XX.
.X...X....
.X.X.XXXX.
...X......
XXXX.XXXXG
`

type config struct {
	mode       string
	depth      int
	goroutines int
	human      string
	games      int
	out        string
	mazeFile   string
	disks      int
	debug      bool
}

func parseFlags() config {
	var cfg config
	flag.StringVar(&cfg.mode, "mode", "play", "play, selfplay, experiment, maze or hanoi")
	flag.IntVar(&cfg.depth, "depth", meta.DEFAULT_DEPTH, "plies searched below each candidate move")
	flag.IntVar(&cfg.goroutines, "goroutines", meta.GO_ROUTINES, "goroutines for root move search")
	flag.StringVar(&cfg.human, "human", "X", "piece played by the human in play mode (X moves first)")
	flag.IntVar(&cfg.games, "games", 10, "number of self-play games")
	flag.StringVar(&cfg.out, "out", "experiments", "directory for experiment records")
	flag.StringVar(&cfg.mazeFile, "maze", "", "maze file for maze mode; a built-in maze is used if empty")
	flag.IntVar(&cfg.disks, "disks", 3, "number of disks for hanoi mode")
	flag.BoolVar(&cfg.debug, "debug", false, "enable debug logging")
	flag.Parse()
	return cfg
}

func main() {
	cfg := parseFlags()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	switch cfg.mode {
	case "play":
		err = runPlay(ctx, cfg)
	case "selfplay":
		agent := metrics.AgentConfig{Goroutines: cfg.goroutines, Depth: cfg.depth, Pruning: true}
		agent1, agent2 := agent, agent
		agent1.ID, agent2.ID = 1, 2
		_, err = experiments.RunSelfPlayExperiment(ctx, cfg.out, cfg.games, agent1, agent2)
	case "experiment":
		_, err = experiments.RunPruningExperiment(ctx, cfg.out, cfg.depth)
	case "maze":
		err = runMaze(cfg)
	case "hanoi":
		err = runHanoi(cfg)
	default:
		err = fmt.Errorf("unknown mode %q", cfg.mode)
	}
	if err != nil {
		log.Fatal().Err(err).Str("mode", cfg.mode).Msg("")
	}
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func runPlay(ctx context.Context, cfg config) error {
	var humanPiece tictactoe.Piece
	switch strings.ToUpper(strings.TrimSpace(cfg.human)) {
	case "X":
		humanPiece = tictactoe.X
	case "O":
		humanPiece = tictactoe.O
	default:
		return fmt.Errorf("human piece must be X or O, got %q", cfg.human)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:              "Enter a legal square (0-8): ",
		InterruptPrompt:     "^C",
		EOFPrompt:           "quit",
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return fmt.Errorf("failed to start prompt: %w", err)
	}
	defer rl.Close()

	human := player.NewHuman("Human", rl, rl.Stdout())
	computer := player.NewComputer("Computer", searcher.New(
		searcher.WithDepth(cfg.depth),
		searcher.WithGoroutines(cfg.goroutines),
	))
	players := []player.Player{human, computer}
	if humanPiece == tictactoe.O {
		players = []player.Player{computer, human}
	}

	board := tictactoe.NewBoard()
	fmt.Fprintf(rl.Stdout(), "%s\n\n", board)
	show := func(step int, p player.Player, move game.Move, board game.Board) {
		fmt.Fprintf(rl.Stdout(), "%s plays %d\n%s\n\n", p.Name(), move, board)
	}

	result, err := engine.LocalEngine(board, players, engine.WithObserver(show)).Run(ctx)
	if err != nil {
		return err
	}

	switch {
	case result.Winner == game.Piece(humanPiece):
		fmt.Fprintln(rl.Stdout(), "Human wins!")
	case result.Winner != nil:
		fmt.Fprintln(rl.Stdout(), "Computer wins!")
	default:
		fmt.Fprintln(rl.Stdout(), "Draw!")
	}
	return nil
}

func runMaze(cfg config) error {
	text := defaultMaze
	if cfg.mazeFile != "" {
		data, err := os.ReadFile(cfg.mazeFile)
		if err != nil {
			return fmt.Errorf("failed to read maze: %w", err)
		}
		text = string(data)
	}
	m, err := maze.Parse(text)
	if err != nil {
		return fmt.Errorf("failed to parse maze: %w", err)
	}

	searches := []struct {
		name   string
		search func() (*maze.Node, bool)
	}{
		{"DFS", m.DFS},
		{"BFS", m.BFS},
		{"A*", m.AStar},
	}
	for _, s := range searches {
		node, ok := s.search()
		if !ok {
			fmt.Printf("%s: no path found\n", s.name)
			continue
		}
		path := node.Path()
		fmt.Printf("%s: %d steps\n%s\n", s.name, len(path)-1, m.Mark(path))
	}
	return nil
}

func runHanoi(cfg config) error {
	towers, steps, err := hanoi.Solve(cfg.disks)
	if err != nil {
		return err
	}
	for i, step := range steps {
		fmt.Printf("%d: disk %d %s -> %s\n", i+1, step.Disk, step.From, step.To)
	}
	fmt.Printf("Final: %s, %s, %s\n", towers[0], towers[1], towers[2])
	return nil
}
