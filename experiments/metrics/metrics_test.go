package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counts concurrent events", func(t *testing.T) {
		c := NewCollector()
		c.Start(4, 6, true)

		var wg sync.WaitGroup
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					c.AddNode()
					c.AddLeaf()
				}
				c.AddCutoff()
			}()
		}
		wg.Wait()
		got := c.Complete()

		require.Equal(t, int64(400), got.Nodes)
		require.Equal(t, int64(400), got.Leaves)
		require.Equal(t, int64(4), got.Cutoffs)
		require.Equal(t, 4, got.Goroutines)
		require.Equal(t, 6, got.Depth)
		require.True(t, got.Pruning)
	})

	t.Run("start resets counters", func(t *testing.T) {
		c := NewCollector()
		c.Start(1, 1, false)
		c.AddNode()
		c.Start(1, 1, false)

		require.Zero(t, c.Complete().Nodes)
	})

	t.Run("dummy collector records nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(1, 1, true)
		c.AddNode()

		require.Equal(t, SearchMetric{}, c.Complete())
	})
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "pruning")
	require.NoError(t, err)

	t.Run("search records", func(t *testing.T) {
		err := w.WriteSearchRecords([]SearchRecord{
			{ID: 1, SearchMetric: SearchMetric{Goroutines: 1, Depth: 3, Pruning: true, Nodes: 10, Leaves: 7, Cutoffs: 2}},
			{ID: 2, SearchMetric: SearchMetric{Goroutines: 1, Depth: 3, Nodes: 12, Leaves: 9}},
		})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "search_records.csv"))
		require.Len(t, rows, 3)
		require.Equal(t, "nodes", rows[0][5])
		require.Equal(t, []string{"1", "1", "3", "true", "0s", "10", "7", "2"}, rows[1])
	})

	t.Run("game records", func(t *testing.T) {
		start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		err := w.WriteGameRecords([]GameRecord{
			{ID: 1, Agent1: 1, Agent2: 2, GameMetric: GameMetric{StartingPlayer: "X", StartTime: start, EndTime: start.Add(time.Second), Duration: time.Second, TotalMoves: 9}},
		})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{"1", "1", "2", "X", "", "2024-01-02T03:04:05Z", "2024-01-02T03:04:06Z", "1s", "9"}, rows[1])
	})

	t.Run("agent configs", func(t *testing.T) {
		err := w.WriteAgentConfigs([]AgentConfig{{ID: 3, Goroutines: 4, Depth: 9, Pruning: true}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
		require.Equal(t, [][]string{{"id", "goroutines", "depth", "pruning"}, {"3", "4", "9", "true"}}, rows)
	})

	t.Run("move records", func(t *testing.T) {
		err := w.WriteMoveRecords([]MoveRecord{
			{Game: 1, MoveMetric: MoveMetric{Step: 1, Player: "X", Move: 4, SearchMetric: SearchMetric{Depth: 9}}},
		})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, "4", rows[1][3])
	})
}
