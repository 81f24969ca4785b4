package maze

import (
	"math/rand"

	"github.com/hadak-labs/micromouse-sim/direction"
)

// boundedRand makes exactly one Intn call per bounded(n) call, with no
// other use of the generator between calls. The generator's determinism
// contract depends on that draw pattern: two initial draws for the start
// cell, then one draw per neighbour pick.
type boundedRand struct {
	r *rand.Rand
}

func newBoundedRand(seed uint32) *boundedRand {
	return &boundedRand{r: rand.New(rand.NewSource(int64(seed)))}
}

func (b *boundedRand) bounded(n int) int {
	return b.r.Intn(n)
}

// Generate builds a deterministic width×height maze from the given 32-bit
// seed using an iterative depth-first backtracker with an explicit stack.
// Dimensions must be positive. The same (width, height, seed) always
// produces the identical wall grid.
func Generate(width, height int, seed uint32) (*Maze, error) {
	if width <= 0 || height <= 0 {
		return nil, &FormatError{Reason: "generator dimensions must be positive"}
	}

	m, err := newAllWalls(width, height)
	if err != nil {
		return nil, err
	}

	rng := newBoundedRand(seed)
	visited := make([]bool, width*height)
	idx := func(x, y int) int { return y*width + x }

	startX := rng.bounded(width)
	startY := rng.bounded(height)

	type visit struct{ x, y int }
	stack := []visit{{startX, startY}}
	visited[idx(startX, startY)] = true

	neighborOrder := []direction.Cardinal{direction.North, direction.East, direction.South, direction.West}

	for len(stack) > 0 {
		top := stack[len(stack)-1]

		type candidate struct {
			x, y int
			dir  direction.Cardinal
		}
		var candidates []candidate
		for _, dir := range neighborOrder {
			nx, ny, ok := m.neighbor(top.x, top.y, dir)
			if !ok || visited[idx(nx, ny)] {
				continue
			}
			candidates = append(candidates, candidate{nx, ny, dir})
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		pick := candidates[rng.bounded(len(candidates))]
		m.SetWall(top.x, top.y, pick.dir, false)
		m.SetWall(pick.x, pick.y, direction.Opposite(pick.dir), false)
		visited[idx(pick.x, pick.y)] = true
		stack = append(stack, visit{pick.x, pick.y})
	}

	return m, nil
}

// newAllWalls returns a maze with every wall present.
func newAllWalls(width, height int) (*Maze, error) {
	m, err := New(width, height)
	if err != nil {
		return nil, err
	}
	for i := range m.cells {
		m.cells[i] = Cell{North: true, East: true, South: true, West: true}
	}
	return m, nil
}
