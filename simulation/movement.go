package simulation

import (
	"fmt"

	"github.com/hadak-labs/micromouse-sim/direction"
	"github.com/hadak-labs/micromouse-sim/mouse"
)

// MovementKind names the translation or rotation currently in progress.
type MovementKind int

const (
	None MovementKind = iota
	MoveStraight
	MoveDiagonal
	TurnLeft45
	TurnRight45
	TurnLeft90
	TurnRight90
)

// MovementState is the mouse's in-flight motion: a kind, a remaining
// half-step count (for translations), and whether the move is doomed to
// end in collision.
type MovementState struct {
	Movement           MovementKind
	HalfStepsRemaining int
	Doomed             bool
}

func movementKindFor(heading direction.Semi) MovementKind {
	if direction.IsDiagonal(heading) {
		return MoveDiagonal
	}
	return MoveStraight
}

// RequestMove attempts to start an n-half-step translation in the
// mouse's current heading. It fails only if no maze is loaded, n < 1, or
// the very next half-step is immediately blocked; otherwise it always
// succeeds, walking as far as the maze allows and marking the move
// "doomed" if it will end in collision before covering the full n steps.
func (s *Simulation) RequestMove(n int) bool {
	if s.maze == nil || n < 1 {
		return false
	}
	heading := s.mouse.Heading()
	pos := s.mouse.Position()
	if s.isWallAtDepth(pos, heading, 0) {
		return false
	}

	allowed := 0
	for k := 1; k <= n; k++ {
		if s.isWallAtDepth(pos, heading, k-1) {
			break
		}
		allowed = k
	}

	s.movement = MovementState{
		Movement:           movementKindFor(heading),
		HalfStepsRemaining: allowed,
		Doomed:             allowed < n,
	}

	if cx, cy := pos.ToCell(); cx == s.startCell.X && cy == s.startCell.Y {
		s.stats.StartRun()
	}
	s.stats.AddDistance(float64(n))
	s.logEvent(fmt.Sprintf("Move requested: %d half-steps %s", n, heading))
	s.emitStateChanged()
	return true
}

// RequestTurn starts one of the four turn variants. It fails only if no
// maze is loaded or kind is not a turn.
func (s *Simulation) RequestTurn(kind MovementKind) bool {
	if s.maze == nil {
		return false
	}
	switch kind {
	case TurnLeft45, TurnRight45, TurnLeft90, TurnRight90:
	default:
		return false
	}
	s.movement = MovementState{Movement: kind}
	s.stats.AddTurn()
	s.emitStateChanged()
	return true
}

// IsMoving reports whether a translation or rotation is in progress.
func (s *Simulation) IsMoving() bool {
	return s.movement.Movement != None
}

// AdvanceOneTick advances the in-flight movement by one tick: one
// half-step for a translation, or the full rotation for a turn (turns
// complete in a single tick). It is a no-op when idle.
func (s *Simulation) AdvanceOneTick() {
	switch s.movement.Movement {
	case None:
		return
	case TurnLeft45:
		s.mouse.SetHeading(direction.RotateLeft45(s.mouse.Heading()))
		s.movement = MovementState{}
		s.emitMovementFinished(false)
	case TurnRight45:
		s.mouse.SetHeading(direction.RotateRight45(s.mouse.Heading()))
		s.movement = MovementState{}
		s.emitMovementFinished(false)
	case TurnLeft90:
		s.mouse.SetHeading(direction.RotateLeft90(s.mouse.Heading()))
		s.movement = MovementState{}
		s.emitMovementFinished(false)
	case TurnRight90:
		s.mouse.SetHeading(direction.RotateRight90(s.mouse.Heading()))
		s.movement = MovementState{}
		s.emitMovementFinished(false)
	case MoveStraight, MoveDiagonal:
		s.advanceTranslation()
	}
}

func (s *Simulation) advanceTranslation() {
	if s.movement.HalfStepsRemaining <= 0 {
		s.movement = MovementState{}
		return
	}
	dx, dy := direction.Delta(s.mouse.Heading())
	pos := s.mouse.Position()
	pos = mouse.SemiPosition{X: pos.X + dx, Y: pos.Y + dy}
	s.mouse.SetPosition(pos)
	s.movement.HalfStepsRemaining--
	s.stepCount++
	s.markVisited(pos)

	if s.movement.HalfStepsRemaining == 0 {
		crashed := s.movement.Doomed
		if crashed {
			s.collisionCount++
			s.logEvent("Collision")
		}
		s.movement = MovementState{}
		s.emitMovementFinished(crashed)
	}
}

// markVisited records pos's cell as visited and drives the goal/run-end
// bookkeeping: the first entry into a goal cell finishes the current run,
// and re-entering the start cell without having reached a goal ends the
// run unfinished. Called on every half-step tick.
func (s *Simulation) markVisited(pos mouse.SemiPosition) {
	cx, cy := pos.ToCell()
	if s.maze == nil || !s.maze.InBounds(cx, cy) {
		return
	}
	s.visited[[2]int{cx, cy}] = true

	switch {
	case s.isGoalCell(cx, cy) && !s.goalReached:
		s.goalReached = true
		s.stats.FinishRun()
		s.logEvent("Goal reached")
	case cx == s.startCell.X && cy == s.startCell.Y:
		s.stats.EndUnfinishedRun()
	}
}
