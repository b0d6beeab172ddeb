package requests

import "github.com/brettbedarf/ramshell"

// EntryRequestDTO is the file representation of [ramshell.EntryRequest].
// The same tags serve JSON and YAML layout files.
type EntryRequestDTO struct {
	Path    string             `json:"path" yaml:"path"`
	Type    ramshell.EntryType `json:"type,omitempty" yaml:"type,omitempty"`       // Defaults to "file"
	Content *string            `json:"content,omitempty" yaml:"content,omitempty"` // Initial file content
	Append  *bool              `json:"append,omitempty" yaml:"append,omitempty"`   // Append instead of overwrite (Default false)
}

// LayoutDTO is a whole layout file: either a bare list of entries or an
// object with an "entries" list.
type LayoutDTO struct {
	Entries []EntryRequestDTO `json:"entries" yaml:"entries"`
}
