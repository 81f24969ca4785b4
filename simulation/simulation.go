// Package simulation implements the tick-driven movement state machine,
// sensor queries, known-walls overlay, cell annotations, and reset
// protocol that sit on top of a maze and a mouse.
package simulation

import (
	"github.com/hadak-labs/micromouse-sim/maze"
	"github.com/hadak-labs/micromouse-sim/mouse"
	"github.com/hadak-labs/micromouse-sim/stats"
)

// Simulation owns a Maze exclusively and drives a Mouse across it one
// half-step (or one tick) at a time.
type Simulation struct {
	maze  *maze.Maze
	mouse *mouse.Mouse
	stats *stats.Stats

	movement MovementState

	knowledge []WallState // width*height*4, index by (cellIndex*4 + cardinal)
	visited   map[[2]int]bool
	colors    map[[2]int]byte
	texts     map[[2]int]string

	startCell   maze.CellPos
	goalCells   []maze.CellPos
	goalReached bool

	stepCount      int
	collisionCount int
	resetRequested bool

	onStateChanged     func()
	onMovementFinished func(crashed bool)
	onEventLogged      func(message string)
}

// New returns a Simulation with no maze loaded yet.
func New() *Simulation {
	s := &Simulation{
		mouse:   mouse.New(),
		stats:   stats.New(),
		visited: make(map[[2]int]bool),
		colors:  make(map[[2]int]byte),
		texts:   make(map[[2]int]string),
	}
	return s
}

// SetMaze installs m as the active maze, replacing any previous one, and
// performs a full reset against the new geometry.
func (s *Simulation) SetMaze(m *maze.Maze) {
	s.maze = m
	s.initKnowledge()
	s.mouse.Reset()
	s.stats.ResetAll()
	s.movement = MovementState{}
	s.visited = make(map[[2]int]bool)
	s.colors = make(map[[2]int]byte)
	s.texts = make(map[[2]int]string)
	s.goalCells = nil
	s.goalReached = false
	s.stepCount = 0
	s.collisionCount = 0
	s.resetRequested = false
	s.logEvent("Maze loaded")
	s.emitStateChanged()
}

// Maze returns the active maze, or nil if none has been loaded.
func (s *Simulation) Maze() *maze.Maze { return s.maze }

// Mouse returns the mouse being driven by this simulation.
func (s *Simulation) Mouse() *mouse.Mouse { return s.mouse }

// Stats returns the scoring/statistics tracker for this simulation.
func (s *Simulation) Stats() *stats.Stats { return s.stats }

// CollisionCount is the number of completed moves that ended in a
// collision.
func (s *Simulation) CollisionCount() int { return s.collisionCount }

// StepCount is the number of half-steps executed since the last reset.
func (s *Simulation) StepCount() int { return s.stepCount }

// GoalReached reports whether the mouse has reached a goal cell since the
// last reset.
func (s *Simulation) GoalReached() bool { return s.goalReached }

// Reset performs a full engine reset: mouse and stats return to their
// defaults, movement goes idle, the visited set and knowledge grid are
// cleared, and annotations are wiped.
func (s *Simulation) Reset() {
	s.mouse.Reset()
	s.stats.ResetAll()
	s.movement = MovementState{}
	s.visited = make(map[[2]int]bool)
	s.initKnowledge()
	s.colors = make(map[[2]int]byte)
	s.texts = make(map[[2]int]string)
	s.goalReached = false
	s.stepCount = 0
	s.collisionCount = 0
	s.resetRequested = false
	s.emitStateChanged()
}

// RequestReset flags a reset for the bot to observe via WasReset.
func (s *Simulation) RequestReset() {
	s.resetRequested = true
}

// WasReset reports whether a reset has been requested but not yet
// acknowledged.
func (s *Simulation) WasReset() bool {
	return s.resetRequested
}

// AckReset consumes a pending reset request: the mouse and movement state
// return to their defaults, a reset penalty is charged to the next run,
// and any run in progress ends unfinished. This runs unconditionally, even
// if no reset was actually requested.
func (s *Simulation) AckReset() {
	s.mouse.Reset()
	s.movement = MovementState{}
	s.resetRequested = false
	s.goalReached = false
	s.stepCount = 0
	s.stats.PenalizeForReset()
	s.stats.EndUnfinishedRun()
	s.logEvent("Reset acknowledged")
	s.emitStateChanged()
}

// StartCell returns the configured start cell, (0,0) by default.
func (s *Simulation) StartCell() maze.CellPos { return s.startCell }

// SetStartCell reconfigures the start cell used by the run-tracking logic
// in markVisited.
func (s *Simulation) SetStartCell(x, y int) {
	s.startCell = maze.CellPos{X: x, Y: y}
}

// GoalCells returns the explicit goal set if one has been configured via
// SetGoalCell, or the maze's geometric center cells otherwise.
func (s *Simulation) GoalCells() []maze.CellPos {
	if len(s.goalCells) > 0 {
		return s.goalCells
	}
	if s.maze == nil {
		return nil
	}
	return maze.CenterCells(s.maze.Width(), s.maze.Height())
}

// SetGoalCell adds (x,y) to the explicit goal set, superseding the maze's
// default center cells.
func (s *Simulation) SetGoalCell(x, y int) {
	for _, c := range s.goalCells {
		if c.X == x && c.Y == y {
			return
		}
	}
	s.goalCells = append(s.goalCells, maze.CellPos{X: x, Y: y})
}

// IsGoalCell reports whether (x,y) is one of the current goal cells.
func (s *Simulation) IsGoalCell(x, y int) bool {
	return s.isGoalCell(x, y)
}

func (s *Simulation) isGoalCell(x, y int) bool {
	for _, c := range s.GoalCells() {
		if c.X == x && c.Y == y {
			return true
		}
	}
	return false
}
