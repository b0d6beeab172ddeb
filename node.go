package ramshell

// EntryInfo is a read-only snapshot of one used table slot.
type EntryInfo struct {
	Slot int       // Position in the table
	Name string    // Full name; parent is derived, never stored
	Type EntryType // File or directory
	Size int       // Content length in bytes; always 0 for directories
}

// IsDir reports whether the entry is a directory.
func (e EntryInfo) IsDir() bool {
	return e.Type == DirEntryType
}
