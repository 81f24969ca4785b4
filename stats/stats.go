// Package stats implements the scoring and distance/turn bookkeeping used
// by a Simulation: per-run and lifetime counters, the effective-distance
// smoothing, best-run promotion, and the composite score.
package stats

import (
	"math"
	"strconv"
)

// StatId names one tracked statistic.
type StatId int

const (
	TotalDistance StatId = iota
	TotalTurns
	BestRunDistance
	BestRunTurns
	CurrentRunDistance
	CurrentRunTurns
	TotalEffectiveDistance
	BestRunEffectiveDistance
	CurrentRunEffectiveDistance
	Score
)

var integerStats = map[StatId]bool{
	TotalDistance:      true,
	TotalTurns:         true,
	BestRunDistance:    true,
	BestRunTurns:       true,
	CurrentRunDistance: true,
	CurrentRunTurns:    true,
}

var bestRunStats = map[StatId]bool{
	BestRunDistance:          true,
	BestRunTurns:             true,
	BestRunEffectiveDistance: true,
}

// Stats tracks every StatId plus the started/solved flags and the pending
// reset penalty.
type Stats struct {
	values  map[StatId]float64
	started bool
	solved  bool
	penalty float64
}

// New returns a freshly reset Stats.
func New() *Stats {
	s := &Stats{values: make(map[StatId]float64, 10)}
	s.ResetAll()
	return s
}

// ResetAll zeroes every counter, reinstates the BestRunTurns "unsolved"
// sentinel, and clears started/solved/penalty.
func (s *Stats) ResetAll() {
	s.values = map[StatId]float64{
		TotalDistance:               0,
		TotalTurns:                  0,
		BestRunDistance:             0,
		BestRunTurns:                math.Inf(1),
		CurrentRunDistance:          0,
		CurrentRunTurns:             0,
		TotalEffectiveDistance:      0,
		BestRunEffectiveDistance:    0,
		CurrentRunEffectiveDistance: 0,
		Score:                       0,
	}
	s.started = false
	s.solved = false
	s.penalty = 0
	s.updateScore()
}

// effectiveDistance smooths a raw half-step count so a single long
// straight run scores better than many short hops of the same total
// length.
func effectiveDistance(d float64) float64 {
	if d <= 2 {
		return d
	}
	return d/2.0 + 1.0
}

// AddDistance records d half-steps of travel against Total (always) and
// CurrentRun (if a run is in progress), along with their effective-
// distance equivalents.
func (s *Stats) AddDistance(d float64) {
	s.values[TotalDistance] += d
	if s.started {
		s.values[CurrentRunDistance] += d
	}
	eff := effectiveDistance(d)
	s.values[TotalEffectiveDistance] += eff
	if s.started {
		s.values[CurrentRunEffectiveDistance] += eff
	}
	s.updateScore()
}

// AddTurn records one turn against Total (always) and CurrentRun (if a
// run is in progress).
func (s *Stats) AddTurn() {
	s.values[TotalTurns]++
	if s.started {
		s.values[CurrentRunTurns]++
	}
	s.updateScore()
}

// StartRun zeroes the CurrentRun* counters, folds any pending reset
// penalty into CurrentRun/TotalEffectiveDistance, and marks a run as in
// progress.
func (s *Stats) StartRun() {
	s.values[CurrentRunDistance] = 0
	s.values[CurrentRunTurns] = 0
	s.values[CurrentRunEffectiveDistance] = 0
	if s.penalty > 0 {
		s.values[CurrentRunEffectiveDistance] += s.penalty
		s.values[TotalEffectiveDistance] += s.penalty
		s.penalty = 0
	}
	s.started = true
	s.updateScore()
}

// FinishRun marks the run complete and, if it beats the current best,
// promotes CurrentRun* into BestRun*.
func (s *Stats) FinishRun() {
	s.started = false
	s.solved = true

	currentScore := s.values[CurrentRunTurns] + s.values[CurrentRunEffectiveDistance]
	bestScore := s.values[BestRunTurns] + s.values[BestRunEffectiveDistance]
	if currentScore < bestScore {
		s.values[BestRunDistance] = s.values[CurrentRunDistance]
		s.values[BestRunTurns] = s.values[CurrentRunTurns]
		s.values[BestRunEffectiveDistance] = s.values[CurrentRunEffectiveDistance]
	}
	s.updateScore()
}

// EndUnfinishedRun stops the run clock without touching any counters or
// the solved flag -- used when the mouse re-enters the start cell without
// reaching a goal.
func (s *Stats) EndUnfinishedRun() {
	s.started = false
	s.updateScore()
}

// PenalizeForReset sets the pending reset penalty, charged to the next
// StartRun.
func (s *Stats) PenalizeForReset() {
	s.penalty = 15
	s.updateScore()
}

func (s *Stats) updateScore() {
	if !s.solved {
		s.values[Score] = 2000
		return
	}
	s.values[Score] = s.values[BestRunEffectiveDistance] + s.values[BestRunTurns] +
		0.1*(s.values[TotalEffectiveDistance]+s.values[TotalTurns])
}

// StatValue returns the raw value for id.
func (s *Stats) StatValue(id StatId) float64 {
	return s.values[id]
}

// StatString formats id for display: integer-valued stats render without
// a decimal point, BestRun* stats render as "" while BestRunTurns is still
// the unsolved sentinel, everything else renders as a float.
func (s *Stats) StatString(id StatId) string {
	if bestRunStats[id] && math.IsInf(s.values[BestRunTurns], 1) {
		return ""
	}
	v := s.values[id]
	if integerStats[id] {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Started reports whether a run is currently in progress.
func (s *Stats) Started() bool { return s.started }

// Solved reports whether any run has ever finished.
func (s *Stats) Solved() bool { return s.solved }
