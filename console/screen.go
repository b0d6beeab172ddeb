// Package console holds the shell's display writers and input boundary: a
// fixed character grid with wrap and scroll, a plain stream writer, the line
// editor that resolves backspace before the shell sees a line, and a terminal
// front end built on bubbletea.
package console

import (
	"strings"

	"github.com/brettbedarf/ramshell"
	"github.com/brettbedarf/ramshell/config"
)

// Screen is a Columns x Rows character grid. Writing past the last column
// wraps; moving past the last row scrolls the top row away.
type Screen struct {
	cells []byte
	cols  int
	rows  int
	row   int
	col   int
}

var _ ramshell.Display = (*Screen)(nil)

// NewScreen returns a blank screen sized by opts.
func NewScreen(opts config.ScreenOptions) *Screen {
	s := &Screen{
		cells: make([]byte, opts.Columns*opts.Rows),
		cols:  opts.Columns,
		rows:  opts.Rows,
	}
	s.Clear()
	return s
}

// Size returns the grid dimensions.
func (s *Screen) Size() (cols, rows int) {
	return s.cols, s.rows
}

// Cursor returns the position the next character lands on.
func (s *Screen) Cursor() (row, col int) {
	return s.row, s.col
}

// Clear blanks every cell and homes the cursor.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = ' '
	}
	s.row, s.col = 0, 0
}

// WriteChar places c at the cursor. '\n' starts a new line.
func (s *Screen) WriteChar(c byte) {
	if c == '\n' {
		s.col = 0
		s.row++
	} else {
		s.cells[s.row*s.cols+s.col] = c
		s.col++
		if s.col >= s.cols {
			s.col = 0
			s.row++
		}
	}
	if s.row >= s.rows {
		s.scroll()
	}
}

// WriteString writes each byte of str.
func (s *Screen) WriteString(str string) {
	for i := 0; i < len(str); i++ {
		s.WriteChar(str[i])
	}
}

// WriteLine writes str and a newline.
func (s *Screen) WriteLine(str string) {
	s.WriteString(str)
	s.WriteChar('\n')
}

// Backspace blanks the cell before the cursor and moves onto it, stepping
// back to the end of the previous row from column 0. No-op at the origin.
func (s *Screen) Backspace() {
	if s.row == 0 && s.col == 0 {
		return
	}
	if s.col > 0 {
		s.col--
	} else {
		s.row--
		s.col = s.cols - 1
	}
	s.cells[s.row*s.cols+s.col] = ' '
}

// scroll moves every row up by one and blanks the last row.
func (s *Screen) scroll() {
	copy(s.cells, s.cells[s.cols:])
	last := s.cells[(s.rows-1)*s.cols:]
	for i := range last {
		last[i] = ' '
	}
	s.row = s.rows - 1
}

// Lines returns each row with trailing blanks trimmed.
func (s *Screen) Lines() []string {
	lines := make([]string, s.rows)
	for r := range s.rows {
		lines[r] = strings.TrimRight(string(s.cells[r*s.cols:(r+1)*s.cols]), " ")
	}
	return lines
}

// String renders the whole grid, one row per line.
func (s *Screen) String() string {
	return strings.Join(s.Lines(), "\n")
}
