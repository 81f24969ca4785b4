package maze

import (
	"os"
	"strconv"
	"strings"
)

// FromNumLines parses the `num` format: one line per cell, six
// whitespace-separated integers `x y n e s w`. Line order is unspecified;
// the resulting maze is (maxX+1)x(maxY+1) and every cell in that rectangle
// must be present.
func FromNumLines(lines []string) (*Maze, error) {
	type wallSet struct{ n, e, s, w bool }
	byPos := map[[2]int]wallSet{}
	maxX, maxY := -1, -1
	seenAny := false

	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 6 {
			return nil, errf(i+1, "expected 6 fields, got %d", len(fields))
		}
		vals := make([]int, 6)
		for j, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, errf(i+1, "invalid integer %q", f)
			}
			vals[j] = v
		}
		x, y := vals[0], vals[1]
		if x < 0 || y < 0 {
			return nil, errf(i+1, "negative coordinate (%d,%d)", x, y)
		}
		for _, w := range vals[2:] {
			if w != 0 && w != 1 {
				return nil, errf(i+1, "wall flag must be 0 or 1")
			}
		}
		key := [2]int{x, y}
		if _, dup := byPos[key]; dup {
			return nil, errf(i+1, "duplicate cell (%d,%d)", x, y)
		}
		byPos[key] = wallSet{n: vals[2] == 1, e: vals[3] == 1, s: vals[4] == 1, w: vals[5] == 1}
		seenAny = true
		if x > maxX {
			maxX = x
		}
		if y > maxY {
			maxY = y
		}
	}

	if !seenAny {
		return nil, &FormatError{Reason: "empty lines"}
	}

	width, height := maxX+1, maxY+1
	m, err := New(width, height)
	if err != nil {
		return nil, err
	}
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			ws, ok := byPos[[2]int{x, y}]
			if !ok {
				return nil, &FormatError{Reason: "maze is not rectangular: missing cell"}
			}
			m.cells[m.index(x, y)] = Cell{North: ws.n, East: ws.e, South: ws.s, West: ws.w}
		}
	}
	if !m.isEnclosed() {
		return nil, &FormatError{Reason: "maze is not enclosed"}
	}
	if !m.isConsistent() {
		return nil, &FormatError{Reason: "maze is not consistent"}
	}
	return m, nil
}

// ToNumLines serializes a maze in the `num` format, column-major: every
// cell of column 0 (y ascending) before any cell of column 1, and so on.
func ToNumLines(m *Maze) []string {
	lines := make([]string, 0, m.width*m.height)
	for x := 0; x < m.width; x++ {
		for y := 0; y < m.height; y++ {
			c := m.Cell(x, y)
			lines = append(lines, strings.Join([]string{
				strconv.Itoa(x), strconv.Itoa(y),
				bitStr(c.North), bitStr(c.East), bitStr(c.South), bitStr(c.West),
			}, " "))
		}
	}
	return lines
}

func bitStr(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// FromMapLines parses the `map` ASCII-art format. Line index 0 of
// the input is the top row of the file; it is reversed internally so that
// cell (0,0) ends up bottom-left.
func FromMapLines(lines []string) (*Maze, error) {
	trimmed := make([]string, 0, len(lines))
	for _, l := range lines {
		if strings.TrimRight(l, " \t") == "" && len(trimmed) == 0 {
			continue
		}
		trimmed = append(trimmed, strings.TrimRight(l, "\r"))
	}
	for len(trimmed) > 0 && strings.TrimSpace(trimmed[len(trimmed)-1]) == "" {
		trimmed = trimmed[:len(trimmed)-1]
	}
	if len(trimmed) < 3 {
		return nil, &FormatError{Reason: "map has too few lines"}
	}

	inverted := make([]string, len(trimmed))
	for i, l := range trimmed {
		inverted[len(trimmed)-1-i] = l
	}

	if len(inverted)%2 == 0 {
		return nil, &FormatError{Reason: "map must have an odd number of lines"}
	}
	height := (len(inverted) - 1) / 2
	if height <= 0 {
		return nil, &FormatError{Reason: "invalid map height"}
	}

	lineLen := len(inverted[0])
	if lineLen < 5 || (lineLen-1)%4 != 0 {
		return nil, &FormatError{Reason: "invalid map width"}
	}
	width := (lineLen - 1) / 4
	if width <= 0 {
		return nil, &FormatError{Reason: "invalid map width"}
	}

	at := func(lineIdx, col int) (byte, error) {
		if lineIdx < 0 || lineIdx >= len(inverted) {
			return 0, &FormatError{Reason: "map line index out of range", Line: lineIdx + 1}
		}
		line := inverted[lineIdx]
		if col < 0 || col >= len(line) {
			return 0, &FormatError{Reason: "map column out of range", Line: lineIdx + 1, Column: col + 1}
		}
		return line[col], nil
	}

	m, err := New(width, height)
	if err != nil {
		return nil, err
	}

	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			north, err := at(2*(y+1), 4*x+2)
			if err != nil {
				return nil, err
			}
			south, err := at(2*y, 4*x+2)
			if err != nil {
				return nil, err
			}
			east, err := at(2*y+1, 4*(x+1))
			if err != nil {
				return nil, err
			}
			west, err := at(2*y+1, 4*x)
			if err != nil {
				return nil, err
			}
			m.cells[m.index(x, y)] = Cell{
				North: north != ' ',
				East:  east != ' ',
				South: south != ' ',
				West:  west != ' ',
			}
		}
	}

	if !m.isEnclosed() {
		return nil, &FormatError{Reason: "map is not enclosed"}
	}
	if !m.isConsistent() {
		return nil, &FormatError{Reason: "map is not consistent"}
	}
	return m, nil
}

// ToFile writes m to path in the `num` format.
func ToFile(m *Maze, path string) error {
	if path == "" {
		return &FormatError{Reason: "empty maze path"}
	}
	data := strings.Join(ToNumLines(m), "\n") + "\n"
	return os.WriteFile(path, []byte(data), 0o644)
}

// FromFile reads a maze file and auto-detects its format, trying the map
// parser first and falling back to num.
func FromFile(path string) (*Maze, error) {
	if path == "" {
		return nil, &FormatError{Reason: "empty maze path"}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FormatError{Reason: "failed to open maze file: " + err.Error()}
	}
	lines := strings.Split(string(data), "\n")
	if len(lines) == 0 {
		return nil, &FormatError{Reason: "empty maze file"}
	}

	if m, err := FromMapLines(lines); err == nil {
		return m, nil
	}
	if m, err := FromNumLines(lines); err == nil {
		return m, nil
	}
	return nil, &FormatError{Reason: "unsupported maze format"}
}
