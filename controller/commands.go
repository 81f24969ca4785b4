package controller

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/hadak-labs/micromouse-sim/direction"
	"github.com/hadak-labs/micromouse-sim/maze"
	"github.com/hadak-labs/micromouse-sim/simulation"
	"github.com/hadak-labs/micromouse-sim/stats"
)

var statNames = map[string]stats.StatId{
	"total-distance":                 stats.TotalDistance,
	"total-turns":                    stats.TotalTurns,
	"best-run-distance":              stats.BestRunDistance,
	"best-run-turns":                 stats.BestRunTurns,
	"current-run-distance":           stats.CurrentRunDistance,
	"current-run-turns":              stats.CurrentRunTurns,
	"total-effective-distance":       stats.TotalEffectiveDistance,
	"best-run-effective-distance":    stats.BestRunEffectiveDistance,
	"current-run-effective-distance": stats.CurrentRunEffectiveDistance,
	"score":                          stats.Score,
}

// processCommand parses and executes one protocol line, returning
// whether it was recognized, its synchronous response (if any), and
// whether the response has been deferred until the next
// movementFinished.
func (c *Controller) processCommand(line string) (ok bool, response string, deferred bool) {
	if strings.HasPrefix(line, "setText") {
		return c.processSetText(line)
	}

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, "", false
	}
	verb, args := fields[0], fields[1:]

	switch verb {
	case "mazeWidth":
		return c.querySynchronous(args, 0, func() (string, bool) {
			if c.sim.Maze() == nil {
				return "", false
			}
			return strconv.Itoa(c.sim.Maze().Width()), true
		})
	case "mazeHeight":
		return c.querySynchronous(args, 0, func() (string, bool) {
			if c.sim.Maze() == nil {
				return "", false
			}
			return strconv.Itoa(c.sim.Maze().Height()), true
		})
	case "goalCount":
		return c.querySynchronous(args, 0, func() (string, bool) {
			return strconv.Itoa(len(c.sim.GoalCells())), true
		})
	case "goalCell":
		return c.goalCell(args)
	case "isGoal":
		return c.isGoal(args)

	case "wallFront", "wallBack", "wallLeft", "wallRight",
		"wallFrontLeft", "wallFrontRight", "wallBackLeft", "wallBackRight":
		return c.wallSensor(verb, args)

	case "moveForward":
		return c.moveForward(args, 2)
	case "moveForwardHalf":
		return c.moveForward(args, 1)

	case "turnLeft":
		return c.turn(args, simulation.TurnLeft90)
	case "turnLeft90":
		return c.turn(args, simulation.TurnLeft90)
	case "turnRight":
		return c.turn(args, simulation.TurnRight90)
	case "turnRight90":
		return c.turn(args, simulation.TurnRight90)
	case "turnLeft45":
		return c.turn(args, simulation.TurnLeft45)
	case "turnRight45":
		return c.turn(args, simulation.TurnRight45)

	case "setWall":
		return c.mutateWall(args, true)
	case "clearWall":
		return c.mutateWall(args, false)

	case "setColor":
		return c.setColor(args)
	case "clearColor":
		return c.cellCoordMutator(args, c.sim.ClearCellColor)
	case "clearAllColor":
		return c.noArgMutator(args, c.sim.ClearAllColors)

	case "clearText":
		return c.cellCoordMutator(args, c.sim.ClearCellText)
	case "clearAllText":
		return c.noArgMutator(args, c.sim.ClearAllText)

	case "wasReset":
		return c.querySynchronous(args, 0, func() (string, bool) {
			return boolStr(c.sim.WasReset()), true
		})
	case "ackReset":
		if len(args) != 0 {
			return false, "", false
		}
		c.sim.AckReset()
		return true, "ack", false

	case "getStat":
		return c.getStat(args)

	default:
		return false, "", false
	}
}

func (c *Controller) querySynchronous(args []string, wantArgs int, fn func() (string, bool)) (bool, string, bool) {
	if len(args) != wantArgs {
		return false, "", false
	}
	resp, ok := fn()
	if !ok {
		return false, "", false
	}
	return true, resp, false
}

func (c *Controller) noArgMutator(args []string, fn func()) (bool, string, bool) {
	if len(args) != 0 {
		return false, "", false
	}
	fn()
	return true, "", false
}

func (c *Controller) cellCoordMutator(args []string, fn func(x, y int)) (bool, string, bool) {
	if len(args) != 2 {
		return false, "", false
	}
	x, y, ok := parseXY(args[0], args[1])
	if !ok {
		return false, "", false
	}
	fn(x, y)
	return true, "", false
}

func parseXY(xs, ys string) (x, y int, ok bool) {
	x, err1 := strconv.Atoi(xs)
	y, err2 := strconv.Atoi(ys)
	return x, y, err1 == nil && err2 == nil
}

func sortedGoalCells(sim *simulation.Simulation) []maze.CellPos {
	goals := append([]maze.CellPos(nil), sim.GoalCells()...)
	sort.Slice(goals, func(i, j int) bool {
		if goals[i].Y != goals[j].Y {
			return goals[i].Y < goals[j].Y
		}
		return goals[i].X < goals[j].X
	})
	return goals
}

func (c *Controller) goalCell(args []string) (bool, string, bool) {
	if len(args) != 1 {
		return false, "", false
	}
	i, err := strconv.Atoi(args[0])
	if err != nil {
		return false, "", false
	}
	goals := sortedGoalCells(c.sim)
	if i < 0 || i >= len(goals) {
		return false, "", false
	}
	g := goals[i]
	return true, fmt.Sprintf("%d %d", g.X, g.Y), false
}

func (c *Controller) isGoal(args []string) (bool, string, bool) {
	if len(args) != 0 {
		return false, "", false
	}
	x, y := c.sim.Mouse().Position().ToCell()
	return true, boolStr(c.sim.IsGoalCell(x, y)), false
}

func (c *Controller) wallSensor(verb string, args []string) (bool, string, bool) {
	if len(args) > 1 {
		return false, "", false
	}
	k := 1
	if len(args) == 1 {
		v, err := strconv.Atoi(args[0])
		if err != nil || v < 1 {
			return false, "", false
		}
		k = v
	}
	depth := k - 1
	var wall bool
	switch verb {
	case "wallFront":
		wall = c.sim.IsWallFront(depth)
	case "wallBack":
		wall = c.sim.IsWallBack(depth)
	case "wallLeft":
		wall = c.sim.IsWallLeft(depth)
	case "wallRight":
		wall = c.sim.IsWallRight(depth)
	case "wallFrontLeft":
		wall = c.sim.IsWallFrontLeft(depth)
	case "wallFrontRight":
		wall = c.sim.IsWallFrontRight(depth)
	case "wallBackLeft":
		wall = c.sim.IsWallBackLeft(depth)
	case "wallBackRight":
		wall = c.sim.IsWallBackRight(depth)
	}
	return true, boolStr(wall), false
}

func (c *Controller) moveForward(args []string, halfStepsPerUnit int) (bool, string, bool) {
	if len(args) > 1 {
		return false, "", false
	}
	n := 1
	if len(args) == 1 {
		v, err := strconv.Atoi(args[0])
		if err != nil {
			return false, "", false
		}
		n = v
	}
	if !c.sim.RequestMove(n * halfStepsPerUnit) {
		return true, "crash", false
	}
	return true, "", true
}

func (c *Controller) turn(args []string, kind simulation.MovementKind) (bool, string, bool) {
	if len(args) != 0 {
		return false, "", false
	}
	if !c.sim.RequestTurn(kind) {
		return false, "", false
	}
	return true, "", true
}

func cardinalDelta(d direction.Cardinal) (dx, dy int) {
	switch d {
	case direction.North:
		return 0, 1
	case direction.South:
		return 0, -1
	case direction.East:
		return 1, 0
	case direction.West:
		return -1, 0
	}
	return 0, 0
}

func (c *Controller) mutateWall(args []string, present bool) (bool, string, bool) {
	if len(args) != 3 {
		return false, "", false
	}
	x, y, ok := parseXY(args[0], args[1])
	if !ok || len(args[2]) != 1 {
		return false, "", false
	}
	d, ok := direction.FromChar(args[2][0])
	if !ok {
		return false, "", false
	}
	state := simulation.Open
	if present {
		state = simulation.Wall
	}
	c.sim.SetKnownWall(x, y, d, state)
	dx, dy := cardinalDelta(d)
	c.sim.SetKnownWall(x+dx, y+dy, direction.Opposite(d), state)
	return true, "", false
}

func (c *Controller) setColor(args []string) (bool, string, bool) {
	if len(args) != 3 || len(args[2]) != 1 {
		return false, "", false
	}
	x, y, ok := parseXY(args[0], args[1])
	if !ok {
		return false, "", false
	}
	c.sim.SetCellColor(x, y, args[2][0])
	return true, "", false
}

// processSetText handles setText x y <text...>, whose payload is
// everything after the third literal space character, preserved
// verbatim (including trailing whitespace or an empty string).
func (c *Controller) processSetText(line string) (bool, string, bool) {
	parts := strings.SplitN(line, " ", 4)
	if len(parts) < 3 || parts[0] != "setText" {
		return false, "", false
	}
	x, y, ok := parseXY(parts[1], parts[2])
	if !ok {
		return false, "", false
	}
	text := ""
	if len(parts) == 4 {
		text = parts[3]
	}
	c.sim.SetCellText(x, y, text)
	return true, "", false
}

func (c *Controller) getStat(args []string) (bool, string, bool) {
	if len(args) != 1 {
		return false, "", false
	}
	id, ok := statNames[args[0]]
	if !ok {
		return false, "", false
	}
	s := c.sim.Stats().StatString(id)
	if s == "" {
		return true, "-1", false
	}
	return true, s, false
}
