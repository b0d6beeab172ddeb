package filesystem

import "github.com/brettbedarf/ramshell"

// entry is one table slot. data is the slot's fixed window into the table's
// backing array and is never reallocated; only size changes.
type entry struct {
	used bool
	kind ramshell.EntryType
	name string // Full name; the parent is derived from it on demand
	size int    // Content length; meaningless for unused slots
	data []byte // len == MaxFileSize
}

// reset frees the slot. Content is left in place: an unused slot's data is
// unreachable.
func (e *entry) reset() {
	e.used = false
	e.kind = ""
	e.name = ""
}

// info returns a snapshot of the slot.
func (e *entry) info(slot int) ramshell.EntryInfo {
	return ramshell.EntryInfo{
		Slot: slot,
		Name: e.name,
		Type: e.kind,
		Size: e.size,
	}
}
