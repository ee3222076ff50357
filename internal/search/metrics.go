package search

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	trialsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bombe_search_trials_total",
		Help: "Candidate machines built and tested, by search mode",
	}, []string{"mode"})

	// Labels: outcome is one of found, not-found, trial-limit, timeout, canceled, error.
	runsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bombe_search_runs_total",
		Help: "Completed search runs by mode and outcome",
	}, []string{"mode", "outcome"})

	runDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bombe_search_duration_seconds",
		Help:    "Wall time of a search run",
		Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 15, 60},
	}, []string{"mode"})
)
