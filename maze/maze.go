// Package maze implements the rectangular wall-grid model, its two file
// formats, structural validation, the center-cell/distance-field geometry,
// and the deterministic depth-first backtracker generator.
package maze

import "github.com/hadak-labs/micromouse-sim/direction"

// Maze is a W×H grid of Cells, each carrying its own four wall flags.
type Maze struct {
	width, height int
	cells         []Cell
}

// New returns a width×height maze with every wall cleared (false). Callers
// are expected to fill it in (via SetWall, a format parser, or Generate).
func New(width, height int) (*Maze, error) {
	if width <= 0 || height <= 0 {
		return nil, &FormatError{Reason: "maze dimensions must be positive"}
	}
	return &Maze{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}, nil
}

func (m *Maze) Width() int  { return m.width }
func (m *Maze) Height() int { return m.height }

// InBounds reports whether (x,y) addresses a real cell.
func (m *Maze) InBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

func (m *Maze) index(x, y int) int {
	return y*m.width + x
}

// Cell returns the cell at (x,y). The result is the zero Cell (all walls
// false) if (x,y) is out of bounds.
func (m *Maze) Cell(x, y int) Cell {
	if !m.InBounds(x, y) {
		return Cell{}
	}
	return m.cells[m.index(x, y)]
}

// IsWall reports whether the given side of cell (x,y) is walled. An
// out-of-bounds probe returns true: anything outside the grid counts as
// a wall.
func (m *Maze) IsWall(x, y int, dir direction.Cardinal) bool {
	if !m.InBounds(x, y) {
		return true
	}
	return m.cells[m.index(x, y)].wall(dir)
}

// SetWall sets one side of cell (x,y). It does not touch the neighbour;
// callers that need a consistent maze (the generator, a wall editor) must
// set both sides themselves.
func (m *Maze) SetWall(x, y int, dir direction.Cardinal, present bool) {
	if !m.InBounds(x, y) {
		return
	}
	m.cells[m.index(x, y)].setWall(dir, present)
}

// neighbor returns the cell coordinate adjacent to (x,y) in dir, and
// whether that coordinate is in bounds.
func (m *Maze) neighbor(x, y int, dir direction.Cardinal) (nx, ny int, ok bool) {
	switch dir {
	case direction.North:
		nx, ny = x, y+1
	case direction.South:
		nx, ny = x, y-1
	case direction.East:
		nx, ny = x+1, y
	case direction.West:
		nx, ny = x-1, y
	}
	return nx, ny, m.InBounds(nx, ny)
}

// IsValid reports whether the maze is enclosed and internally consistent.
// Rectangularity is guaranteed by construction for any Maze built via New,
// SetWall and Generate; only mazes assembled from the num format need the
// separate rectangular check performed at parse time (see format.go).
func (m *Maze) IsValid() bool {
	return m.isEnclosed() && m.isConsistent()
}

func (m *Maze) isEnclosed() bool {
	for x := 0; x < m.width; x++ {
		if !m.IsWall(x, 0, direction.South) {
			return false
		}
		if !m.IsWall(x, m.height-1, direction.North) {
			return false
		}
	}
	for y := 0; y < m.height; y++ {
		if !m.IsWall(0, y, direction.West) {
			return false
		}
		if !m.IsWall(m.width-1, y, direction.East) {
			return false
		}
	}
	return true
}

func (m *Maze) isConsistent() bool {
	for x := 0; x < m.width; x++ {
		for y := 0; y < m.height; y++ {
			if x+1 < m.width {
				if m.IsWall(x, y, direction.East) != m.IsWall(x+1, y, direction.West) {
					return false
				}
			}
			if y+1 < m.height {
				if m.IsWall(x, y, direction.North) != m.IsWall(x, y+1, direction.South) {
					return false
				}
			}
		}
	}
	return true
}

// CellPos is a cell-grid coordinate, distinct from a mouse.SemiPosition.
type CellPos struct {
	X, Y int
}

// CenterCells returns the 1, 2, or 4 goal cells for a width×height maze,
// selected by the dimension parity: 1 cell (odd×odd), 2 (one even), or 4
// (both even).
func CenterCells(width, height int) []CellPos {
	cx, cy := (width-1)/2, (height-1)/2
	cells := []CellPos{{cx, cy}}
	if width%2 == 0 {
		cells = append(cells, CellPos{width / 2, cy})
	}
	if height%2 == 0 {
		cells = append(cells, CellPos{cx, height / 2})
	}
	if width%2 == 0 && height%2 == 0 {
		cells = append(cells, CellPos{width / 2, height / 2})
	}
	return cells
}

// IsCenter reports whether (x,y) is one of this maze's center cells.
func (m *Maze) IsCenter(x, y int) bool {
	for _, c := range CenterCells(m.width, m.height) {
		if c.X == x && c.Y == y {
			return true
		}
	}
	return false
}

// DistancesToCenter runs a breadth-first search from the center cells
// through open edges only. The result is indexed [x][y]; unreachable cells
// hold -1.
func (m *Maze) DistancesToCenter() [][]int {
	dist := make([][]int, m.width)
	for x := range dist {
		dist[x] = make([]int, m.height)
		for y := range dist[x] {
			dist[x][y] = -1
		}
	}

	type coord struct{ x, y int }
	var queue []coord
	for _, c := range CenterCells(m.width, m.height) {
		if dist[c.X][c.Y] == -1 {
			dist[c.X][c.Y] = 0
			queue = append(queue, coord{c.X, c.Y})
		}
	}

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		for _, dir := range direction.Cardinals() {
			if m.IsWall(cur.x, cur.y, dir) {
				continue
			}
			nx, ny, ok := m.neighbor(cur.x, cur.y, dir)
			if !ok || dist[nx][ny] != -1 {
				continue
			}
			dist[nx][ny] = dist[cur.x][cur.y] + 1
			queue = append(queue, coord{nx, ny})
		}
	}
	return dist
}
