package bot

import (
	"os/exec"
)

// ExecBot launches a bot as a child process and wires its stdin/stdout
// through a Pipe. It is a host convenience, never used by the
// simulation/controller core directly, since the core only needs a Bot.
type ExecBot struct {
	*Pipe
	cmd *exec.Cmd
}

// NewExecBot starts command (run through a shell, so pipelines and
// arguments work unmodified) in dir and returns an ExecBot wired to its
// stdio.
func NewExecBot(command string, dir string) (*ExecBot, error) {
	cmd := exec.Command("/bin/sh", "-c", command)
	if dir != "" {
		cmd.Dir = dir
	}

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}

	if err := cmd.Start(); err != nil {
		return nil, err
	}

	return &ExecBot{
		Pipe: NewPipe(stdout, stdin),
		cmd:  cmd,
	}, nil
}

// Wait blocks until the bot process exits.
func (e *ExecBot) Wait() error {
	return e.cmd.Wait()
}

// Stop closes the bot's stdin and kills the process if it hasn't exited.
func (e *ExecBot) Stop() error {
	_ = e.Pipe.Close()
	if e.cmd.Process != nil {
		return e.cmd.Process.Kill()
	}
	return nil
}
