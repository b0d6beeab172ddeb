package console

// echoer is the part of a display the editor mirrors keystrokes onto.
type echoer interface {
	WriteChar(c byte)
	Backspace()
}

// LineEditor buffers one input line. Only printable ASCII is accepted, the
// line is capped at maxLen bytes, and Backspace drops the last byte. Every
// accepted change is echoed when an echo target is set.
type LineEditor struct {
	buf    []byte
	maxLen int
	echo   echoer
}

// NewLineEditor returns an editor capped at maxLen bytes. echo may be nil.
func NewLineEditor(maxLen int, echo echoer) *LineEditor {
	return &LineEditor{
		buf:    make([]byte, 0, maxLen),
		maxLen: maxLen,
		echo:   echo,
	}
}

// Insert appends c and reports whether it was accepted.
func (e *LineEditor) Insert(c byte) bool {
	if c < ' ' || c > '~' || len(e.buf) >= e.maxLen {
		return false
	}
	e.buf = append(e.buf, c)
	if e.echo != nil {
		e.echo.WriteChar(c)
	}
	return true
}

// Backspace removes the last byte, if any.
func (e *LineEditor) Backspace() {
	if len(e.buf) == 0 {
		return
	}
	e.buf = e.buf[:len(e.buf)-1]
	if e.echo != nil {
		e.echo.Backspace()
	}
}

// Line returns the line typed so far.
func (e *LineEditor) Line() string {
	return string(e.buf)
}

// Submit ends the line, echoes the newline and resets the buffer.
func (e *LineEditor) Submit() string {
	line := string(e.buf)
	e.buf = e.buf[:0]
	if e.echo != nil {
		e.echo.WriteChar('\n')
	}
	return line
}
