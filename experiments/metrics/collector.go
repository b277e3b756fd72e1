package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Goroutines int
	Depth      int
	Pruning    bool
	Duration   time.Duration
	Nodes      int64 // Boards visited, root children included
	Leaves     int64 // Boards scored by Evaluate
	Cutoffs    int64 // Alpha-beta prunes
}

type MoveMetric struct {
	Step   int
	Player string
	Move   int
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string // Empty on a draw
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(goroutines, depth int, pruning bool)
	AddNode()
	AddLeaf()
	AddCutoff()
	Complete() SearchMetric
}

type collector struct {
	goroutines int
	depth      int
	pruning    bool
	startTime  time.Time
	nodes      atomic.Int64
	leaves     atomic.Int64
	cutoffs    atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines, depth int, pruning bool) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.depth = depth
	m.pruning = pruning
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.cutoffs.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Goroutines: m.goroutines,
		Depth:      m.depth,
		Pruning:    m.pruning,
		Duration:   time.Since(m.startTime),
		Nodes:      m.nodes.Load(),
		Leaves:     m.leaves.Load(),
		Cutoffs:    m.cutoffs.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines, depth int, pruning bool) {}
func (m *dummyCollector) AddNode()                                  {}
func (m *dummyCollector) AddLeaf()                                  {}
func (m *dummyCollector) AddCutoff()                                {}
func (m *dummyCollector) Complete() SearchMetric                    { return SearchMetric{} }
