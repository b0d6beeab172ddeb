package filesystem

import (
	"fmt"

	"github.com/brettbedarf/ramshell"
	"github.com/brettbedarf/ramshell/config"
	"github.com/brettbedarf/ramshell/internal/util"
	"github.com/dustin/go-humanize"
)

// Table is a fixed-capacity, flat table of named entries. Names are full
// paths; the hierarchy only exists in the strings (see package paths).
//
// A Table is not safe for concurrent use. It is owned by a single shell.
type Table struct {
	entries     []entry
	backing     []byte // TableCapacity * MaxFileSize; sliced into entries[i].data
	maxNameLen  int
	maxFileSize int
	used        int
}

// NewTable allocates every slot and all file content up front so the memory
// footprint never changes after boot.
func NewTable(cfg *config.Config) *Table {
	logger := util.GetLogger("NewTable")

	t := &Table{
		entries:     make([]entry, cfg.TableCapacity),
		backing:     make([]byte, cfg.TableBytes()),
		maxNameLen:  cfg.MaxNameLen,
		maxFileSize: cfg.MaxFileSize,
	}
	for i := range t.entries {
		off := i * cfg.MaxFileSize
		t.entries[i].data = t.backing[off : off+cfg.MaxFileSize : off+cfg.MaxFileSize]
	}

	logger.Debug().
		Int("slots", cfg.TableCapacity).
		Str("content", humanize.IBytes(uint64(len(t.backing)))).
		Msg("Allocated entry table")
	return t
}

// Cap returns the number of slots.
func (t *Table) Cap() int {
	return len(t.entries)
}

// Len returns the number of used slots.
func (t *Table) Len() int {
	return t.used
}

// MaxFileSize returns the content capacity of one file in bytes.
func (t *Table) MaxFileSize() int {
	return t.maxFileSize
}

// Find returns the slot holding name. Matching is exact: no normalisation,
// no case folding, no trailing separator tolerance.
func (t *Table) Find(name string) (int, bool) {
	for i := range t.entries {
		if t.entries[i].used && t.entries[i].name == name {
			return i, true
		}
	}
	return -1, false
}

// Stat returns a snapshot of the entry called name.
func (t *Table) Stat(name string) (ramshell.EntryInfo, bool) {
	i, ok := t.Find(name)
	if !ok {
		return ramshell.EntryInfo{}, false
	}
	return t.entries[i].info(i), true
}

// Range calls fn for each used entry in slot order until fn returns false.
// fn must not mutate the table.
func (t *Table) Range(fn func(e ramshell.EntryInfo) bool) {
	for i := range t.entries {
		if !t.entries[i].used {
			continue
		}
		if !fn(t.entries[i].info(i)) {
			return
		}
	}
}

// Create adds a new entry in the lowest free slot and returns its index.
// Files start empty.
func (t *Table) Create(name string, kind ramshell.EntryType) (int, error) {
	logger := util.GetLogger("Table.Create")

	if !kind.Valid() {
		return -1, fmt.Errorf("%w: unknown kind %q for %q", ErrInvalidName, kind, name)
	}
	if name == "" || len(name) > t.maxNameLen {
		return -1, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if _, ok := t.Find(name); ok {
		return -1, fmt.Errorf("%w: %q", ErrAlreadyExists, name)
	}

	for i := range t.entries {
		e := &t.entries[i]
		if e.used {
			continue
		}
		e.used = true
		e.kind = kind
		e.name = name
		e.size = 0
		t.used++
		logger.Trace().Int("slot", i).Str("name", name).Str("kind", string(kind)).Msg("Created entry")
		return i, nil
	}

	logger.Debug().Str("name", name).Int("slots", len(t.entries)).Msg("No free slot")
	return -1, fmt.Errorf("%w: %q", ErrTableFull, name)
}

// Delete removes the entry called name, which must be of the given kind.
func (t *Table) Delete(name string, kind ramshell.EntryType) error {
	logger := util.GetLogger("Table.Delete")

	i, ok := t.Find(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if t.entries[i].kind != kind {
		return fmt.Errorf("%w: %q is a %s, not a %s", ErrWrongKind, name, t.entries[i].kind, kind)
	}

	t.entries[i].reset()
	t.used--
	logger.Trace().Int("slot", i).Str("name", name).Msg("Deleted entry")
	return nil
}

// DeleteDir removes a directory entry. Files are left alone.
func (t *Table) DeleteDir(name string) error {
	return t.Delete(name, ramshell.DirEntryType)
}

// DeleteFile removes a file entry. Directories are left alone.
func (t *Table) DeleteFile(name string) error {
	return t.Delete(name, ramshell.FileEntryType)
}
