package console

import (
	"bufio"
	"context"
	"errors"
	"io"

	"github.com/brettbedarf/ramshell"
)

// clearSequence erases the terminal and homes the cursor.
const clearSequence = "\x1b[2J\x1b[H"

// StreamDisplay writes shell output straight to an io.Writer with no grid.
// Write errors are dropped: the display has no error channel.
type StreamDisplay struct {
	w *bufio.Writer
}

var _ ramshell.Display = (*StreamDisplay)(nil)

// NewStreamDisplay wraps w. Output is flushed at every newline and Clear.
func NewStreamDisplay(w io.Writer) *StreamDisplay {
	return &StreamDisplay{w: bufio.NewWriter(w)}
}

func (d *StreamDisplay) WriteChar(c byte) {
	_ = d.w.WriteByte(c)
	if c == '\n' {
		_ = d.w.Flush()
	}
}

func (d *StreamDisplay) WriteString(s string) {
	_, _ = d.w.WriteString(s)
}

func (d *StreamDisplay) WriteLine(s string) {
	d.WriteString(s)
	d.WriteChar('\n')
}

func (d *StreamDisplay) Clear() {
	_, _ = d.w.WriteString(clearSequence)
	_ = d.w.Flush()
}

// Flush pushes out anything written since the last newline, e.g. a prompt.
func (d *StreamDisplay) Flush() error {
	return d.w.Flush()
}

// StreamReader reads newline-terminated lines from an io.Reader and passes
// every byte through a LineEditor, so '\b' and DEL edit the line and
// non-printable bytes are dropped just as they are at a keyboard.
type StreamReader struct {
	r       *bufio.Reader
	editor  *LineEditor
	flusher interface{ Flush() error }
}

var _ ramshell.LineReader = (*StreamReader)(nil)

// NewStreamReader reads from r with lines capped at maxLen bytes. When
// prompt is non-nil it is flushed before every read.
func NewStreamReader(r io.Reader, maxLen int, prompt *StreamDisplay) *StreamReader {
	sr := &StreamReader{
		r:      bufio.NewReader(r),
		editor: NewLineEditor(maxLen, nil),
	}
	if prompt != nil {
		sr.flusher = prompt
	}
	return sr
}

// ReadLine returns the next edited line. A final line without a newline is
// still returned; io.EOF follows it.
func (sr *StreamReader) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if sr.flusher != nil {
		_ = sr.flusher.Flush()
	}

	raw, err := sr.r.ReadBytes('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	if len(raw) == 0 && err != nil {
		return "", io.EOF
	}

	for _, c := range raw {
		switch c {
		case '\n', '\r':
		case '\b', 0x7f:
			sr.editor.Backspace()
		default:
			sr.editor.Insert(c)
		}
	}
	return sr.editor.Submit(), nil
}
