package simulation

import (
	"github.com/hadak-labs/micromouse-sim/direction"
	"github.com/hadak-labs/micromouse-sim/mouse"
)

// isWallAt is the parity-class sensor predicate: every lattice position
// answers a directional wall query differently depending on whether it
// is a lattice node, a cell interior, or a wall midpoint.
func (s *Simulation) isWallAt(pos mouse.SemiPosition, dir direction.Semi) bool {
	if s.maze == nil {
		return true
	}
	w, h := s.maze.Width(), s.maze.Height()
	if pos.X < 0 || pos.X > 2*w || pos.Y < 0 || pos.Y > 2*h {
		return true
	}

	evenX := pos.X%2 == 0
	evenY := pos.Y%2 == 0

	switch {
	case evenX && evenY:
		// Lattice node: always blocked, in every direction.
		return true

	case !evenX && !evenY:
		// Cell interior. Diagonal motion cannot pass through the corner;
		// cardinal motion consults the cell's own wall.
		if direction.IsDiagonal(dir) {
			return true
		}
		card, ok := direction.ToCardinal(dir)
		if !ok {
			return true
		}
		cx, cy := pos.X/2, pos.Y/2
		return s.maze.IsWall(cx, cy, card)

	case evenX && !evenY:
		// Vertical wall-midpoint: N/S travel blocked, E/W free, diagonals
		// probe the adjacent cell's N/S wall on the half being entered.
		switch dir {
		case direction.N, direction.S:
			return true
		case direction.E, direction.W:
			return false
		}
		eastCellX := pos.X / 2
		cellY := pos.Y / 2
		switch dir {
		case direction.NE:
			if pos.X == 2*w {
				return false
			}
			return s.maze.IsWall(eastCellX, cellY, direction.North)
		case direction.SE:
			if pos.X == 2*w {
				return false
			}
			return s.maze.IsWall(eastCellX, cellY, direction.South)
		case direction.NW:
			if pos.X == 0 {
				return false
			}
			return s.maze.IsWall(eastCellX-1, cellY, direction.North)
		case direction.SW:
			if pos.X == 0 {
				return false
			}
			return s.maze.IsWall(eastCellX-1, cellY, direction.South)
		}
		return true

	default:
		// odd X, even Y: horizontal wall-midpoint. E/W travel blocked,
		// N/S free, diagonals probe the adjacent cell's E/W wall on the
		// half being entered.
		switch dir {
		case direction.E, direction.W:
			return true
		case direction.N, direction.S:
			return false
		}
		cellX := pos.X / 2
		northCellY := pos.Y / 2
		switch dir {
		case direction.NE:
			if pos.Y == 2*h {
				return false
			}
			return s.maze.IsWall(cellX, northCellY, direction.East)
		case direction.NW:
			if pos.Y == 2*h {
				return false
			}
			return s.maze.IsWall(cellX, northCellY, direction.West)
		case direction.SE:
			if pos.Y == 0 {
				return false
			}
			return s.maze.IsWall(cellX, northCellY-1, direction.East)
		case direction.SW:
			if pos.Y == 0 {
				return false
			}
			return s.maze.IsWall(cellX, northCellY-1, direction.West)
		}
		return true
	}
}

// isWallAtDepth reports whether any of pos, pos+δ, …, pos+kδ is a wall in
// dir, where δ is dir's unit delta. Used for look-ahead sensor depths.
func (s *Simulation) isWallAtDepth(pos mouse.SemiPosition, dir direction.Semi, k int) bool {
	dx, dy := direction.Delta(dir)
	cur := pos
	for i := 0; i <= k; i++ {
		if s.isWallAt(cur, dir) {
			return true
		}
		cur = mouse.SemiPosition{X: cur.X + dx, Y: cur.Y + dy}
	}
	return false
}

func (s *Simulation) sensorDir(offset func(direction.Semi) direction.Semi) direction.Semi {
	return offset(s.mouse.Heading())
}

func identitySemi(d direction.Semi) direction.Semi { return d }

func backRightOf(d direction.Semi) direction.Semi {
	return direction.RotateRight45(direction.RotateRight90(d))
}

func backLeftOf(d direction.Semi) direction.Semi {
	return direction.RotateLeft45(direction.RotateLeft90(d))
}

// IsWallFront reports whether the front of the mouse is blocked within k
// half-steps of look-ahead (k=0 checks only the very next half-step).
func (s *Simulation) IsWallFront(k int) bool {
	return s.isWallAtDepth(s.mouse.Position(), s.sensorDir(identitySemi), k)
}

func (s *Simulation) IsWallBack(k int) bool {
	return s.isWallAtDepth(s.mouse.Position(), s.sensorDir(direction.Rotate180), k)
}

func (s *Simulation) IsWallLeft(k int) bool {
	return s.isWallAtDepth(s.mouse.Position(), s.sensorDir(direction.RotateLeft90), k)
}

func (s *Simulation) IsWallRight(k int) bool {
	return s.isWallAtDepth(s.mouse.Position(), s.sensorDir(direction.RotateRight90), k)
}

func (s *Simulation) IsWallFrontLeft(k int) bool {
	return s.isWallAtDepth(s.mouse.Position(), s.sensorDir(direction.RotateLeft45), k)
}

func (s *Simulation) IsWallFrontRight(k int) bool {
	return s.isWallAtDepth(s.mouse.Position(), s.sensorDir(direction.RotateRight45), k)
}

func (s *Simulation) IsWallBackLeft(k int) bool {
	return s.isWallAtDepth(s.mouse.Position(), s.sensorDir(backLeftOf), k)
}

func (s *Simulation) IsWallBackRight(k int) bool {
	return s.isWallAtDepth(s.mouse.Position(), s.sensorDir(backRightOf), k)
}
