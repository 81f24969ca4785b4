package simulation

import (
	"github.com/hadak-labs/micromouse-sim/direction"
	"github.com/hadak-labs/micromouse-sim/maze"
)

// WallState is the bot's informational overlay for a single (cell,
// cardinal) pair, independent of the maze's true walls.
type WallState int

const (
	Unknown WallState = iota
	Open
	Wall
)

func (s *Simulation) initKnowledge() {
	if s.maze == nil {
		s.knowledge = nil
		return
	}
	s.knowledge = make([]WallState, s.maze.Width()*s.maze.Height()*4)
}

func (s *Simulation) knowledgeIndex(x, y int, dir direction.Cardinal) int {
	return (y*s.maze.Width()+x)*4 + int(dir)
}

// KnownWall returns the bot's recorded knowledge of (x,y)'s dir side.
// Out-of-bounds queries return Unknown.
func (s *Simulation) KnownWall(x, y int, dir direction.Cardinal) WallState {
	if s.maze == nil || !s.maze.InBounds(x, y) {
		return Unknown
	}
	return s.knowledge[s.knowledgeIndex(x, y, dir)]
}

// SetKnownWall records the bot's knowledge of one side of one cell.
// Out-of-bounds writes are silently dropped.
func (s *Simulation) SetKnownWall(x, y int, dir direction.Cardinal, state WallState) {
	if s.maze == nil || !s.maze.InBounds(x, y) {
		return
	}
	s.knowledge[s.knowledgeIndex(x, y, dir)] = state
	s.emitStateChanged()
}

// CellVisited reports whether the mouse has entered cell (x,y) since the
// last reset.
func (s *Simulation) CellVisited(x, y int) bool {
	return s.visited[[2]int{x, y}]
}

// VisitedCells returns every cell entered since the last reset, in no
// particular order.
func (s *Simulation) VisitedCells() []maze.CellPos {
	cells := make([]maze.CellPos, 0, len(s.visited))
	for k := range s.visited {
		cells = append(cells, maze.CellPos{X: k[0], Y: k[1]})
	}
	return cells
}

// CellColor returns the annotation color for (x,y), if any.
func (s *Simulation) CellColor(x, y int) (byte, bool) {
	if s.maze == nil || !s.maze.InBounds(x, y) {
		return 0, false
	}
	c, ok := s.colors[[2]int{x, y}]
	return c, ok
}

// SetCellColor sets a single-character color annotation on (x,y).
func (s *Simulation) SetCellColor(x, y int, c byte) {
	if s.maze == nil || !s.maze.InBounds(x, y) {
		return
	}
	s.colors[[2]int{x, y}] = c
	s.emitStateChanged()
}

// ClearCellColor removes (x,y)'s color annotation, if any.
func (s *Simulation) ClearCellColor(x, y int) {
	delete(s.colors, [2]int{x, y})
	s.emitStateChanged()
}

// ClearAllColors removes every color annotation.
func (s *Simulation) ClearAllColors() {
	s.colors = make(map[[2]int]byte)
	s.emitStateChanged()
}

// CellText returns the text annotation for (x,y), or "" if unset or out
// of bounds.
func (s *Simulation) CellText(x, y int) string {
	if s.maze == nil || !s.maze.InBounds(x, y) {
		return ""
	}
	return s.texts[[2]int{x, y}]
}

// SetCellText sets an arbitrary text annotation on (x,y).
func (s *Simulation) SetCellText(x, y int, text string) {
	if s.maze == nil || !s.maze.InBounds(x, y) {
		return
	}
	s.texts[[2]int{x, y}] = text
	s.emitStateChanged()
}

// ClearCellText removes (x,y)'s text annotation, if any.
func (s *Simulation) ClearCellText(x, y int) {
	delete(s.texts, [2]int{x, y})
	s.emitStateChanged()
}

// ClearAllText removes every text annotation.
func (s *Simulation) ClearAllText() {
	s.texts = make(map[[2]int]string)
	s.emitStateChanged()
}
