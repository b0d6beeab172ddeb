// Package ramshell contains core domain types and interfaces for a small
// interactive shell over a memory-only entry table.
package ramshell

import "context"

// Display is the character writer the shell renders its output through.
// Implementations decide wrapping, scrolling and clearing.
type Display interface {
	// WriteChar writes a single byte; '\n' moves to the start of the next line
	WriteChar(c byte)

	// WriteString writes s without a trailing newline
	WriteString(s string)

	// WriteLine writes s followed by a newline
	WriteLine(s string)

	// Clear blanks the display and homes the cursor
	Clear()
}

// LineReader yields complete input lines with line editing (backspace etc.)
// already resolved.
type LineReader interface {
	// ReadLine blocks until a full line is available.
	// Returns io.EOF once the input is exhausted.
	ReadLine(ctx context.Context) (string, error)
}
