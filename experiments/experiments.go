package experiments

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"gamesearch/engine"
	"gamesearch/experiments/metrics"
	"gamesearch/game"
	"gamesearch/player"
	"gamesearch/searcher"
	"gamesearch/tictactoe"
)

// RunPruningExperiment searches the empty tic-tac-toe board at every depth up
// to maxDepth with and without alpha-beta pruning and stores the metrics
// under root.
func RunPruningExperiment(ctx context.Context, root string, maxDepth int) ([]metrics.SearchRecord, error) {
	log.Info().Msgf("starting pruning experiment up to depth %d...", maxDepth)

	board := tictactoe.NewBoard()
	records := []metrics.SearchRecord{}
	for depth := 0; depth <= maxDepth; depth++ {
		var moves [2]game.Move
		for i, pruning := range []bool{false, true} {
			options := []searcher.Option{searcher.WithDepth(depth), searcher.WithMetrics()}
			if !pruning {
				options = append(options, searcher.WithoutPruning())
			}

			move, metric, err := searcher.New(options...).FindNextMove(ctx, board)
			if err != nil {
				return records, fmt.Errorf("search at depth %d failed: %w", depth, err)
			}
			moves[i] = move
			records = append(records, metrics.SearchRecord{ID: len(records) + 1, SearchMetric: metric})
			log.Info().Msgf("depth %d pruning=%v: move %d, %d nodes, %d cutoffs", depth, pruning, move, metric.Nodes, metric.Cutoffs)
		}
		if moves[0] != moves[1] {
			return records, fmt.Errorf("minimax chose %d but alpha-beta chose %d at depth %d", moves[0], moves[1], depth)
		}
	}

	log.Info().Msg("completed pruning experiment")

	writer, err := metrics.NewWriter(root, "pruning")
	if err != nil {
		return records, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	err = writer.WriteSearchRecords(records)
	if err != nil {
		return records, fmt.Errorf("failed to write search records: %w", err)
	}
	log.Info().Msgf("stored search records in %s", writer.Dir())

	return records, nil
}

// RunSelfPlayExperiment plays numGames between two computer agents and stores
// the game and per-move metrics under root.
func RunSelfPlayExperiment(ctx context.Context, root string, numGames int, agent1, agent2 metrics.AgentConfig) ([]metrics.GameRecord, error) {
	log.Info().Msgf("starting self-play experiment between agent1=%+v and agent2=%+v...", agent1, agent2)

	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	for i := 0; i < numGames; i++ {
		id := i + 1
		log.Info().Msgf("starting game %d of %d...", id, numGames)

		result, moves, err := runGame(ctx, agent1, agent2)
		if err != nil {
			return gameRecords, fmt.Errorf("game %d failed: %w", id, err)
		}
		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         id,
			Agent1:     agent1.ID,
			Agent2:     agent2.ID,
			GameMetric: result.Metric,
		})
		for _, mm := range moves {
			moveRecords = append(moveRecords, metrics.MoveRecord{Game: id, MoveMetric: mm})
		}

		log.Info().Msgf("completed game %d with winner: %q", id, result.Metric.Winner)
	}

	log.Info().Msg("completed self-play experiment")

	writer, err := metrics.NewWriter(root, "selfplay")
	if err != nil {
		return gameRecords, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs([]metrics.AgentConfig{agent1, agent2}); err != nil {
		return gameRecords, fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return gameRecords, fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return gameRecords, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored self-play records in %s", writer.Dir())

	return gameRecords, nil
}

// runGame executes a single game between two agents
func runGame(ctx context.Context, config1, config2 metrics.AgentConfig) (engine.Result, []metrics.MoveMetric, error) {
	players := []player.Player{
		player.NewComputer(fmt.Sprintf("agent%d", config1.ID), createSearcher(config1)),
		player.NewComputer(fmt.Sprintf("agent%d", config2.ID), createSearcher(config2)),
	}

	moveMetrics := []metrics.MoveMetric{}
	record := func(step int, p player.Player, move game.Move, board game.Board) {
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       board.Turn().Opposite().String(),
			Move:         int(move),
			SearchMetric: p.(*player.Computer).LastMetric(),
		})
	}

	e := engine.LocalEngine(tictactoe.NewBoard(), players, engine.WithObserver(record))
	result, err := e.Run(ctx)
	return result, moveMetrics, err
}

func createSearcher(config metrics.AgentConfig) *searcher.Searcher {
	options := []searcher.Option{
		searcher.WithDepth(config.Depth),
		searcher.WithGoroutines(config.Goroutines),
		searcher.WithMetrics(),
	}
	if !config.Pruning {
		options = append(options, searcher.WithoutPruning())
	}
	return searcher.New(options...)
}
