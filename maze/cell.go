package maze

import "github.com/hadak-labs/micromouse-sim/direction"

// Cell holds the four wall flags of a single maze cell. A true flag means
// a wall is present on that side.
type Cell struct {
	North bool
	East  bool
	South bool
	West  bool
}

func (c Cell) wall(dir direction.Cardinal) bool {
	switch dir {
	case direction.North:
		return c.North
	case direction.East:
		return c.East
	case direction.South:
		return c.South
	case direction.West:
		return c.West
	default:
		return true
	}
}

func (c *Cell) setWall(dir direction.Cardinal, present bool) {
	switch dir {
	case direction.North:
		c.North = present
	case direction.East:
		c.East = present
	case direction.South:
		c.South = present
	case direction.West:
		c.West = present
	}
}
