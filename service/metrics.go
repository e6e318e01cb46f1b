package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	solvesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "maze_solves_total",
		Help: "Total maze solve requests by strategy and result",
	}, []string{"strategy", "result"})

	solveDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "maze_solve_duration_seconds",
		Help:    "Search duration for mazes that were not served from cache",
		Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1, 10},
	}, []string{"strategy"})

	exploredStates = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "maze_explored_states",
		Help:    "States removed from the frontier per successful search",
		Buckets: prometheus.ExponentialBuckets(4, 4, 10),
	}, []string{"strategy"})

	cacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "maze_solution_cache_lookups_total",
		Help: "Solution cache lookups by outcome",
	}, []string{"outcome"})
)

// Solve outcomes used as the result label.
const (
	resultSolved     = "solved"
	resultNoSolution = "no_solution"
	resultMalformed  = "malformed"
	resultError      = "error"
)
