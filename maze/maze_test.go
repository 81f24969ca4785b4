package maze

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hadak-labs/micromouse-sim/direction"
	"github.com/stretchr/testify/require"
)

func TestWallConsistencyOnGenerated(t *testing.T) {
	m, err := Generate(6, 6, 42)
	require.NoError(t, err)
	require.True(t, m.IsValid())

	for x := 0; x < m.Width(); x++ {
		for y := 0; y < m.Height(); y++ {
			for _, dir := range direction.Cardinals() {
				nx, ny, ok := m.neighbor(x, y, dir)
				if !ok {
					continue
				}
				require.Equal(t, m.IsWall(x, y, dir), m.IsWall(nx, ny, direction.Opposite(dir)))
			}
		}
	}
}

func TestGenerateValidAndSpanning(t *testing.T) {
	m, err := Generate(10, 10, 123)
	require.NoError(t, err)
	require.True(t, m.IsValid())

	visited := make(map[[2]int]bool)
	var stack [][2]int
	stack = append(stack, [2]int{0, 0})
	visited[[2]int{0, 0}] = true
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, dir := range direction.Cardinals() {
			if m.IsWall(cur[0], cur[1], dir) {
				continue
			}
			nx, ny, ok := m.neighbor(cur[0], cur[1], dir)
			if !ok || visited[[2]int{nx, ny}] {
				continue
			}
			visited[[2]int{nx, ny}] = true
			stack = append(stack, [2]int{nx, ny})
		}
	}
	require.Len(t, visited, 100)
}

func TestGenerateDeterministic(t *testing.T) {
	a, err := Generate(8, 8, 777)
	require.NoError(t, err)
	b, err := Generate(8, 8, 777)
	require.NoError(t, err)
	require.Equal(t, a.cells, b.cells)
}

func TestNumRoundTrip(t *testing.T) {
	lines := []string{
		"0 0 1 0 1 1",
		"0 1 1 1 1 1",
		"1 0 1 1 1 0",
		"1 1 1 1 1 1",
	}
	m, err := FromNumLines(lines)
	require.NoError(t, err)
	require.Equal(t, 2, m.Width())
	require.Equal(t, 2, m.Height())
	require.True(t, m.IsWall(0, 0, direction.North))
	require.False(t, m.IsWall(0, 0, direction.East))

	out := ToNumLines(m)
	m2, err := FromNumLines(out)
	require.NoError(t, err)
	require.Equal(t, m.cells, m2.cells)
}

func TestNumRejectsNotEnclosed(t *testing.T) {
	_, err := FromNumLines([]string{"0 0 0 0 0 0"})
	require.ErrorContains(t, err, "not enclosed")
}

func TestNumRejectsNotConsistent(t *testing.T) {
	// Enclosed 2x1, but (0,0).East disagrees with (1,0).West.
	lines := []string{
		"0 0 1 0 1 1",
		"1 0 1 1 1 1",
	}
	_, err := FromNumLines(lines)
	require.ErrorContains(t, err, "not consistent")
}

func TestFileRoundTrip(t *testing.T) {
	m, err := Generate(4, 4, 31)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "maze.num")
	require.NoError(t, ToFile(m, path))

	m2, err := FromFile(path)
	require.NoError(t, err)
	require.Equal(t, m.cells, m2.cells)
}

func TestFromFileRejectsUnsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bogus.txt")
	require.NoError(t, os.WriteFile(path, []byte("not a maze\n"), 0o644))
	_, err := FromFile(path)
	require.ErrorContains(t, err, "unsupported maze format")
}

func TestMapBorder(t *testing.T) {
	lines := []string{
		"+---+---+",
		"|       |",
		"+   +   +",
		"|   |   |",
		"+---+---+",
	}
	m, err := FromMapLines(lines)
	require.NoError(t, err)
	require.True(t, m.IsWall(0, 0, direction.West))
	require.True(t, m.IsWall(1, 0, direction.East))
}

func TestClosedBoxCollisionMaze(t *testing.T) {
	m, err := New(2, 2)
	require.NoError(t, err)
	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			m.cells[m.index(x, y)] = Cell{North: true, East: true, South: true, West: true}
		}
	}
	require.True(t, m.IsWall(0, 0, direction.North))
}

func TestDistancesToCenter(t *testing.T) {
	m, err := Generate(5, 5, 9)
	require.NoError(t, err)
	dist := m.DistancesToCenter()
	for _, c := range CenterCells(5, 5) {
		require.Equal(t, 0, dist[c.X][c.Y])
	}
}

func TestCenterCellCounts(t *testing.T) {
	require.Len(t, CenterCells(5, 5), 1)
	require.Len(t, CenterCells(4, 5), 2)
	require.Len(t, CenterCells(5, 4), 2)
	require.Len(t, CenterCells(4, 4), 4)
}
