package filesystem

import (
	"fmt"

	"github.com/brettbedarf/ramshell"
	"github.com/brettbedarf/ramshell/internal/util"
)

// WriteMode selects where Write places its bytes.
type WriteMode int

const (
	Overwrite WriteMode = iota // Replace content from offset 0
	Append                     // Continue after the current content
)

func (m WriteMode) String() string {
	if m == Append {
		return "append"
	}
	return "overwrite"
}

// Write stores p in the file called name, creating the file when it does not
// exist. Bytes beyond the file capacity are dropped: the returned count is
// what was stored, so n < len(p) means the write was truncated. That is not
// an error. Appending to a full file is, with ErrCapacityExceeded.
func (t *Table) Write(name string, p []byte, mode WriteMode) (int, error) {
	logger := util.GetLogger("Table.Write")

	i, ok := t.Find(name)
	if !ok {
		var err error
		if i, err = t.Create(name, ramshell.FileEntryType); err != nil {
			return 0, err
		}
		logger.Trace().Str("name", name).Msg("Auto-created file for write")
	}

	e := &t.entries[i]
	if e.kind == ramshell.DirEntryType {
		return 0, fmt.Errorf("%w: cannot write to directory %q", ErrWrongKind, name)
	}

	offset := 0
	if mode == Append {
		offset = e.size
	}
	if offset >= len(e.data) {
		return 0, fmt.Errorf("%w: %q holds %d bytes", ErrCapacityExceeded, name, e.size)
	}

	n := copy(e.data[offset:], p)
	e.size = offset + n
	if n < len(p) {
		logger.Debug().
			Str("name", name).
			Int("requested", len(p)).
			Int("written", n).
			Msg("Write truncated at file capacity")
	}
	logger.Trace().Str("name", name).Stringer("mode", mode).Int("size", e.size).Msg("Wrote file")
	return n, nil
}

// Read returns the content of the file called name. The slice aliases the
// table's storage and is only valid until the next mutating call.
func (t *Table) Read(name string) ([]byte, error) {
	i, ok := t.Find(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	e := &t.entries[i]
	if e.kind == ramshell.DirEntryType {
		return nil, fmt.Errorf("%w: cannot read directory %q", ErrWrongKind, name)
	}
	return e.data[:e.size:e.size], nil
}
