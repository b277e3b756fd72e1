package searcher

import (
	"gamesearch/experiments/metrics"
	"gamesearch/meta"
)

type Option func(s *Searcher)

// WithDepth sets the number of plies searched below each root move.
func WithDepth(depth int) Option {
	return func(s *Searcher) {
		if depth >= 0 {
			s.depth = depth
		}
	}
}

// WithGoroutines evaluates root moves on up to n goroutines.
func WithGoroutines(n int) Option {
	return func(s *Searcher) {
		if n > 0 {
			s.goroutines = n
		}
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.newCollector = metrics.NewCollector
	}
}

// WithoutPruning searches with plain minimax.
func WithoutPruning() Option {
	return func(s *Searcher) {
		s.pruning = false
	}
}

func defaults() *Searcher {
	return &Searcher{
		depth:        meta.DEFAULT_DEPTH,
		goroutines:   1,
		pruning:      true,
		newCollector: metrics.NewDummyCollector,
	}
}
