// Command mousesimd is the reference host for the simulation core: it
// loads or generates a maze, optionally spawns a bot process, and runs
// a single-threaded cooperative loop: one select over the tick channel,
// the bot's line channel, and a host commands channel.
package main

import (
	"log"
	"os"
	"time"

	channerics "github.com/niceyeti/channerics/channels"

	"github.com/google/uuid"

	"github.com/hadak-labs/micromouse-sim/bot"
	"github.com/hadak-labs/micromouse-sim/config"
	"github.com/hadak-labs/micromouse-sim/controller"
	"github.com/hadak-labs/micromouse-sim/maze"
	"github.com/hadak-labs/micromouse-sim/simulation"
)

func main() {
	cfg := config.Envs
	sessionID := uuid.New()

	infoLog := log.New(os.Stdout, config.LogInfoColor+"[sim "+sessionID.String()[:8]+"] "+config.LogColorReset, log.LstdFlags)
	errorLog := log.New(os.Stderr, config.LogErrorColor+"[sim "+sessionID.String()[:8]+"] "+config.LogColorReset, log.LstdFlags)
	debugLog := log.New(os.Stdout, config.ColorCyan+"[sim "+sessionID.String()[:8]+" state] "+config.ColorReset, log.LstdFlags)

	m, err := loadOrGenerateMaze(cfg)
	if err != nil {
		errorLog.Fatalf("failed to prepare maze: %v", err)
	}

	sim := simulation.New()
	sim.SetEventLoggedFunc(func(message string) { infoLog.Println(message) })
	sim.SetStateChangedFunc(func() { debugLog.Println("state changed") })
	sim.SetMaze(m)

	ctrl := controller.New(sim)
	ctrl.SetLogFunc(func(message string) { infoLog.Println(message) })

	done := make(chan struct{})
	defer close(done)

	var lines <-chan string
	var botErr <-chan error
	if cfg.BotCommand != "" {
		eb, err := bot.NewExecBot(cfg.BotCommand, cfg.BotWorkDir)
		if err != nil {
			errorLog.Fatalf("failed to start bot: %v", err)
		}
		ctrl.AttachBot(eb)
		lines = eb.Lines()
		botErr = eb.Err()
		infoLog.Printf("%sbot started: %s%s", config.ColorBlue, cfg.BotCommand, config.ColorReset)
	}

	tickInterval := time.Duration(cfg.TickIntervalMs) * time.Millisecond
	ticks := channerics.NewTicker(done, tickInterval)

	commands := make(chan func(), 8)

	infoLog.Printf("%smaze ready: %dx%d%s", config.ColorMagenta, m.Width(), m.Height(), config.ColorReset)
	run(sim, ctrl, ticks, lines, botErr, commands, errorLog)
}

// run is the single-threaded cooperative loop: ticks, bot lines, and host
// commands are all serialized through one select, so none of the three
// ever re-enters AdvanceOneTick.
func run(
	sim *simulation.Simulation,
	ctrl *controller.Controller,
	ticks <-chan time.Time,
	lines <-chan string,
	botErr <-chan error,
	commands <-chan func(),
	errorLog *log.Logger,
) {
	for {
		select {
		case _, ok := <-ticks:
			if !ok {
				return
			}
			sim.AdvanceOneTick()

		case line, ok := <-lines:
			if !ok {
				lines = nil
				continue
			}
			ctrl.EnqueueCommand(line)

		case err, ok := <-botErr:
			if !ok {
				botErr = nil
				continue
			}
			errorLog.Printf("bot transport error: %v", err)

		case cmd, ok := <-commands:
			if !ok {
				return
			}
			cmd()
		}
	}
}

func loadOrGenerateMaze(cfg config.Config) (*maze.Maze, error) {
	if cfg.MazeFile != "" {
		return maze.FromFile(cfg.MazeFile)
	}
	return maze.Generate(cfg.MazeWidth, cfg.MazeHeight, cfg.MazeSeed)
}
