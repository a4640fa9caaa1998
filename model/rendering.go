package model

import (
	"bufio"
	"io"
	"os/exec"
	"runtime"
	"strings"

	"github.com/gosuri/uilive"
	"github.com/pkg/errors"
)

const (
	LiveMarker = '#'
	DeadMarker = '.'

	unixClearCmd = "clear"
)

// Render draws the viewport [0,width)x[0,height) of s, one line per row.
// Cells outside the viewport are still alive, they are just not shown.
func Render(width, height int, s LiveSet) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	var sb strings.Builder
	sb.Grow((width + 1) * height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if s.Contains(Cell{X: x, Y: y}) {
				sb.WriteByte(LiveMarker)
			} else {
				sb.WriteByte(DeadMarker)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// TerminalScreen writes frames to a terminal that is cleared by the OS clear command
type TerminalScreen struct {
	out *bufio.Writer
	raw io.Writer
}

// NewTerminalScreen buffers frames written to out
func NewTerminalScreen(out io.Writer) *TerminalScreen {
	return &TerminalScreen{out: bufio.NewWriter(out), raw: out}
}

func (r *TerminalScreen) Write(p []byte) (int, error) {
	return r.out.Write(p)
}

// Clear clears the terminal screen
func (r *TerminalScreen) Clear() error {
	if err := r.out.Flush(); err != nil {
		return errors.Wrap(err, "[TerminalScreen.Clear] failed to flush pending output")
	}

	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.Command("cmd", "/c", "cls")
	} else {
		cmd = exec.Command(unixClearCmd)
	}
	cmd.Stdout = r.raw
	if err := cmd.Run(); err != nil {
		return errors.Wrap(err, "[TerminalScreen.Clear] failed to clear terminal")
	}
	return nil
}

// Flush pushes the buffered frame to the terminal
func (r *TerminalScreen) Flush() error {
	return r.out.Flush()
}

// LiveScreen redraws each frame in place over the previous one
type LiveScreen struct {
	w *uilive.Writer
}

func NewLiveScreen(out io.Writer) *LiveScreen {
	w := uilive.New()
	w.Out = out
	return &LiveScreen{w: w}
}

func (r *LiveScreen) Write(p []byte) (int, error) {
	return r.w.Write(p)
}

// Clear is a no-op, the previous frame is erased when the next one is flushed
func (r *LiveScreen) Clear() error {
	return nil
}

func (r *LiveScreen) Flush() error {
	return r.w.Flush()
}
