package bot

import (
	"bufio"
	"io"
	"strings"
	"sync"
)

// Pipe is the line transport between the engine and a bot: UTF-8,
// LF-terminated lines with CR stripped. A partial trailing fragment is
// buffered until the next newline arrives and is never delivered on its
// own, even if the underlying reader is closed or exhausted mid-line.
type Pipe struct {
	w       io.WriteCloser
	lines   chan string
	errc    chan error
	closeMu sync.Mutex
	closed  bool
}

// NewPipe starts reading newline-delimited lines from r in a background
// goroutine, and writes outgoing lines to w. The returned Pipe's Lines
// channel closes when r is exhausted or closed.
func NewPipe(r io.Reader, w io.WriteCloser) *Pipe {
	p := &Pipe{
		w:     w,
		lines: make(chan string, 64),
		errc:  make(chan error, 1),
	}
	go p.readLoop(r)
	return p
}

func (p *Pipe) readLoop(r io.Reader) {
	defer close(p.lines)
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if err == nil && line != "" {
			p.lines <- strings.TrimRight(line, "\r\n")
		}
		if err != nil {
			if err != io.EOF {
				p.errc <- err
			}
			close(p.errc)
			return
		}
	}
}

func (p *Pipe) Lines() <-chan string { return p.lines }
func (p *Pipe) Err() <-chan error    { return p.errc }

// SendLine writes line, LF-terminated, to the bot's sink.
func (p *Pipe) SendLine(line string) error {
	_, err := p.w.Write([]byte(line + "\n"))
	return err
}

// Close closes the outgoing sink. The incoming side closes itself once
// its reader is exhausted.
func (p *Pipe) Close() error {
	p.closeMu.Lock()
	defer p.closeMu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	return p.w.Close()
}
