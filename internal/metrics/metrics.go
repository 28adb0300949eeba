// Package metrics exposes the Prometheus instruments for the gridpath server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SolvesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gridpath_solves_total",
		Help: "Total number of completed solve runs, labelled by algorithm and outcome.",
	}, []string{"algorithm", "outcome"})

	RunsRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gridpath_runs_rejected_total",
		Help: "Total number of solve requests rejected because a run was in flight.",
	})

	SolveDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gridpath_solve_duration_ms",
		Help:    "Wall-clock duration of a solve run in milliseconds.",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25, 50, 100},
	}, []string{"algorithm"})

	CellsExplored = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gridpath_cells_explored",
		Help:    "Number of cells an algorithm visited before terminating.",
		Buckets: []float64{10, 25, 50, 100, 200, 400, 900},
	}, []string{"algorithm"})

	StreamClients = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "gridpath_stream_clients",
		Help: "Number of WebSocket trace streams currently open.",
	})
)
