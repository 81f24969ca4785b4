// Package controller implements the line-oriented command protocol that
// drives a Simulation from an external bot process: a FIFO queue, a
// synchronous/deferred dispatch loop, and the movementFinished handshake.
package controller

import (
	"strings"

	"github.com/hadak-labs/micromouse-sim/bot"
	"github.com/hadak-labs/micromouse-sim/simulation"
)

// Controller holds a non-owning reference to a Simulation and an optional
// attached Bot. It is not safe for concurrent use: all dispatch must
// happen on the single cooperative execution context.
type Controller struct {
	sim *simulation.Simulation
	bot bot.Bot

	queue           []string
	waitingResponse bool
	paused          bool

	onLog func(message string)
}

// New returns a Controller driving sim. It registers itself as sim's
// movement-finished observer.
func New(sim *simulation.Simulation) *Controller {
	c := &Controller{sim: sim}
	sim.SetMovementFinishedFunc(c.handleMovementFinished)
	return c
}

// SetLogFunc registers the callback invoked for "Invalid command: ..."
// and other controller-level log messages.
func (c *Controller) SetLogFunc(f func(message string)) {
	c.onLog = f
}

// AttachBot installs the bot this controller reads commands from and
// sends responses to, then resumes dispatch in case commands were queued
// before a bot was attached.
func (c *Controller) AttachBot(b bot.Bot) {
	c.bot = b
	c.dispatch()
}

// SetPaused halts or resumes dispatch. A paused controller still tracks
// waitingResponse correctly and resumes dispatch as soon as it is
// unpaused.
func (c *Controller) SetPaused(paused bool) {
	c.paused = paused
	if !paused {
		c.dispatch()
	}
}

// ResetState drops the pending command queue and clears waitingResponse,
// e.g. when the bot process is restarted.
func (c *Controller) ResetState() {
	c.queue = nil
	c.waitingResponse = false
}

// EnqueueCommand appends one line from the bot's stdout line-splitter and
// dispatches as many synchronous commands as the queue allows.
func (c *Controller) EnqueueCommand(line string) {
	c.queue = append(c.queue, line)
	c.dispatch()
}

// dispatch drains the queue while not paused, not waiting on a deferred
// response, and a bot is attached; it stops at the first deferred
// command or an empty queue. It must never call AdvanceOneTick
// (handleMovementFinished resumes it only after clearing
// waitingResponse).
func (c *Controller) dispatch() {
	for {
		if c.paused || c.waitingResponse || c.bot == nil || len(c.queue) == 0 {
			return
		}
		line := c.queue[0]
		c.queue = c.queue[1:]

		if strings.TrimSpace(line) == "" {
			continue
		}

		ok, response, deferred := c.processCommand(line)
		if !ok {
			c.log("Invalid command: " + line)
			continue
		}
		if deferred {
			c.waitingResponse = true
			return
		}
		if response != "" {
			c.send(response)
		}
	}
}

func (c *Controller) handleMovementFinished(crashed bool) {
	if !c.waitingResponse {
		return
	}
	c.waitingResponse = false
	if crashed {
		c.send("crash")
	} else {
		c.send("ack")
	}
	c.dispatch()
}

func (c *Controller) send(text string) {
	if c.bot == nil {
		return
	}
	_ = c.bot.SendLine(text)
}

func (c *Controller) log(message string) {
	if c.onLog != nil {
		c.onLog(message)
	}
}

func boolStr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
