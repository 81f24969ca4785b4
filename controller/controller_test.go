package controller

import (
	"testing"

	"github.com/hadak-labs/micromouse-sim/direction"
	gomaze "github.com/hadak-labs/micromouse-sim/maze"
	"github.com/hadak-labs/micromouse-sim/simulation"
	"github.com/stretchr/testify/require"
)

// fakeBot is a minimal bot.Bot for tests: SendLine just records what was
// sent, and Lines/Err are unused since tests drive EnqueueCommand
// directly rather than through a background reader.
type fakeBot struct {
	sent []string
}

func (f *fakeBot) Lines() <-chan string { return nil }
func (f *fakeBot) Err() <-chan error    { return nil }
func (f *fakeBot) SendLine(line string) error {
	f.sent = append(f.sent, line)
	return nil
}

func openRowMaze(t *testing.T, length int) *gomaze.Maze {
	t.Helper()
	m, err := gomaze.New(length, 1)
	require.NoError(t, err)
	for x := 0; x < length; x++ {
		m.SetWall(x, 0, direction.North, true)
		m.SetWall(x, 0, direction.South, true)
	}
	m.SetWall(0, 0, direction.West, true)
	m.SetWall(length-1, 0, direction.East, true)
	for x := 0; x < length-1; x++ {
		m.SetWall(x, 0, direction.East, false)
		m.SetWall(x+1, 0, direction.West, false)
	}
	return m
}

func newTestController(t *testing.T) (*Controller, *simulation.Simulation, *fakeBot) {
	t.Helper()
	sim := simulation.New()
	sim.SetMaze(openRowMaze(t, 3))
	sim.Mouse().SetHeading(direction.E)
	ctrl := New(sim)
	fb := &fakeBot{}
	ctrl.AttachBot(fb)
	return ctrl, sim, fb
}

func TestS6Handshake(t *testing.T) {
	ctrl, sim, fb := newTestController(t)

	ctrl.EnqueueCommand("moveForward 1")
	require.Empty(t, fb.sent, "move must defer, not reply synchronously")
	require.True(t, sim.IsMoving())

	sim.AdvanceOneTick()
	require.Empty(t, fb.sent, "ack only after all half-steps complete")

	sim.AdvanceOneTick()
	require.Equal(t, []string{"ack"}, fb.sent)

	ctrl.EnqueueCommand("wallFront")
	require.Equal(t, []string{"ack", "false"}, fb.sent)
}

func TestOneAckPerDeferredCommand(t *testing.T) {
	ctrl, sim, fb := newTestController(t)

	ctrl.EnqueueCommand("moveForward 1")
	ctrl.EnqueueCommand("moveForward 1") // queued behind the first, still waiting
	require.True(t, sim.IsMoving())

	sim.AdvanceOneTick()
	sim.AdvanceOneTick()
	require.Equal(t, []string{"ack"}, fb.sent)

	sim.AdvanceOneTick()
	sim.AdvanceOneTick()
	require.Equal(t, []string{"ack", "ack"}, fb.sent)
}

func TestImmediateCrashDoesNotDefer(t *testing.T) {
	ctrl, sim, fb := newTestController(t)
	sim.Mouse().SetHeading(direction.W) // into the border wall

	ctrl.EnqueueCommand("moveForwardHalf 1")
	require.False(t, sim.IsMoving())
	require.Equal(t, []string{"crash"}, fb.sent)
}

func TestInvalidCommandIsLoggedNotCrashed(t *testing.T) {
	ctrl, _, fb := newTestController(t)
	var logged []string
	ctrl.SetLogFunc(func(msg string) { logged = append(logged, msg) })

	ctrl.EnqueueCommand("bogusVerb")
	require.Empty(t, fb.sent)
	require.Equal(t, []string{"Invalid command: bogusVerb"}, logged)
}

func TestSetTextPreservesPayloadVerbatim(t *testing.T) {
	ctrl, sim, _ := newTestController(t)
	ctrl.EnqueueCommand("setText 0 0 hello   world  ")
	require.Equal(t, "hello   world  ", sim.CellText(0, 0))
}

func TestGetStatUnsolvedSentinel(t *testing.T) {
	ctrl, _, fb := newTestController(t)
	ctrl.EnqueueCommand("getStat best-run-turns")
	require.Equal(t, []string{"-1"}, fb.sent)
}

func TestWallQueryDefaultK(t *testing.T) {
	ctrl, _, fb := newTestController(t)
	ctrl.EnqueueCommand("wallFront")
	require.Equal(t, []string{"false"}, fb.sent)
}

func TestIsGoalChecksMouseCurrentCell(t *testing.T) {
	ctrl, sim, fb := newTestController(t)

	ctrl.EnqueueCommand("isGoal")
	require.Equal(t, []string{"false"}, fb.sent, "mouse starts at (0,0), not the center cell of a 3x1 maze")

	ctrl.EnqueueCommand("isGoal 1 0")
	require.Equal(t, []string{"false"}, fb.sent, "isGoal takes no arguments; the extra tokens make it unrecognized")

	ctrl.EnqueueCommand("moveForward 1")
	sim.AdvanceOneTick()
	sim.AdvanceOneTick()
	require.Equal(t, []string{"false", "ack"}, fb.sent)

	ctrl.EnqueueCommand("isGoal")
	require.Equal(t, []string{"false", "ack", "true"}, fb.sent, "moveForward 1 lands the mouse on the center cell")
}
