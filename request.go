package ramshell

// EntryType valid types are FileEntryType "file", DirEntryType "dir"
type EntryType string

const (
	FileEntryType EntryType = "file"
	DirEntryType  EntryType = "dir"
)

// Valid reports whether t is one of the known entry types.
func (t EntryType) Valid() bool {
	return t == FileEntryType || t == DirEntryType
}

// EntryRequest describes an entry to add to the table at boot. Path is the
// full name as stored in the table (e.g. "user/notes"), never a leaf.
type EntryRequest struct {
	Path    string
	Type    EntryType
	Content []byte // Initial content; files only
	Append  bool   // Append Content instead of overwriting it
}
