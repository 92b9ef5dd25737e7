package tictactoe

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// searchNodes tracks the number of search calls needed to pick one move.
	searchNodes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "tictactoe_engine_search_nodes",
		Help:    "Search nodes visited per chosen move",
		Buckets: prometheus.ExponentialBuckets(1, 4, 12),
	})

	searchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "tictactoe_engine_search_duration_seconds",
		Help:    "Time spent choosing one move",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
	})

	movesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tictactoe_engine_moves_total",
		Help: "Total computer moves chosen by grid size",
	}, []string{"grid_size"})
)

func observeSearch(gridSize int, result Result, elapsed time.Duration) {
	searchNodes.Observe(float64(result.Nodes))
	searchDuration.Observe(elapsed.Seconds())
	movesTotal.WithLabelValues(strconv.Itoa(gridSize)).Inc()
}
