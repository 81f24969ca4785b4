package bot

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

func TestPipeFramesLinesAndStripsCR(t *testing.T) {
	r := strings.NewReader("wallFront\r\nmoveForward 1\nackReset\r\n")
	p := NewPipe(r, nopWriteCloser{io.Discard})

	var got []string
	for i := 0; i < 3; i++ {
		select {
		case line, ok := <-p.Lines():
			require.True(t, ok)
			got = append(got, line)
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for line")
		}
	}
	require.Equal(t, []string{"wallFront", "moveForward 1", "ackReset"}, got)

	_, ok := <-p.Lines()
	require.False(t, ok)
}

func TestPipeSendLineAppendsNewline(t *testing.T) {
	var buf strings.Builder
	p := NewPipe(strings.NewReader(""), nopWriteCloser{&buf})
	require.NoError(t, p.SendLine("ack"))
	require.Equal(t, "ack\n", buf.String())
}

func TestPipeDropsUnterminatedTrailingFragment(t *testing.T) {
	r := strings.NewReader("wallFront\nmoveForward 1")
	p := NewPipe(r, nopWriteCloser{io.Discard})

	select {
	case line, ok := <-p.Lines():
		require.True(t, ok)
		require.Equal(t, "wallFront", line)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for line")
	}

	_, ok := <-p.Lines()
	require.False(t, ok, "unterminated trailing fragment must not be delivered")
}
