// Package requests decodes layout definition files into the entry requests
// used to seed the table at boot.
package requests

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/brettbedarf/ramshell"
	"github.com/brettbedarf/ramshell/internal/util"
	"github.com/brettbedarf/ramshell/paths"
)

// Format selects the decoder for a layout document.
type Format int

const (
	JSONFormat Format = iota
	YAMLFormat
)

var (
	ErrEmptyPath     = errors.New("entry path is empty")
	ErrUnknownType   = errors.New("unknown entry type")
	ErrDirHasContent = errors.New("directory entries cannot have content")
)

// FormatForFile picks the format from the file extension.
func FormatForFile(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSONFormat, nil
	case ".yaml", ".yml":
		return YAMLFormat, nil
	default:
		return 0, fmt.Errorf("unknown layout file extension %q", filepath.Ext(path))
	}
}

// GetEntryType extracts the entry type from a JSON entry without full
// unmarshaling. A missing type reads as "".
func GetEntryType(data []byte) (ramshell.EntryType, error) {
	var meta struct {
		Type ramshell.EntryType `json:"type"`
	}
	if err := json.Unmarshal(data, &meta); err != nil {
		return "", err
	}
	return meta.Type, nil
}

// UnmarshalEntryRequest decodes a single JSON entry.
func UnmarshalEntryRequest(data []byte) (*ramshell.EntryRequest, error) {
	var dto EntryRequestDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, err
	}
	req, err := convertEntryDTO(dto)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// DecodeLayout decodes a layout document. Entries keep their file order,
// which is the order they are applied in.
func DecodeLayout(data []byte, format Format) ([]ramshell.EntryRequest, error) {
	var dtos []EntryRequestDTO
	var err error
	switch format {
	case JSONFormat:
		dtos, err = decodeJSON(data)
	case YAMLFormat:
		dtos, err = decodeYAML(data)
	default:
		return nil, fmt.Errorf("unknown layout format %d", format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal layout: %w", err)
	}

	reqs := make([]ramshell.EntryRequest, 0, len(dtos))
	for i, dto := range dtos {
		req, err := convertEntryDTO(dto)
		if err != nil {
			return nil, fmt.Errorf("layout entry %d: %w", i, err)
		}
		reqs = append(reqs, req)
	}
	return reqs, nil
}

// LoadLayoutFile reads and decodes the layout file at path.
func LoadLayoutFile(path string) ([]ramshell.EntryRequest, error) {
	logger := util.GetLogger("Layout")

	format, err := FormatForFile(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout file: %w", err)
	}
	reqs, err := DecodeLayout(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug().Str("path", path).Int("entries", len(reqs)).Msg("Loaded layout file")
	return reqs, nil
}

func decodeJSON(data []byte) ([]EntryRequestDTO, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var doc LayoutDTO
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, err
		}
		return doc.Entries, nil
	}
	var list []EntryRequestDTO
	if err := json.Unmarshal(trimmed, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func decodeYAML(data []byte) ([]EntryRequestDTO, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	if len(node.Content) == 0 {
		return nil, nil
	}
	root := node.Content[0]
	if root.Kind == yaml.MappingNode {
		var doc LayoutDTO
		if err := root.Decode(&doc); err != nil {
			return nil, err
		}
		return doc.Entries, nil
	}
	var list []EntryRequestDTO
	if err := root.Decode(&list); err != nil {
		return nil, err
	}
	return list, nil
}

// Conversion with defaults in the unmarshaling layer. Paths are stored
// without leading or trailing separators.
func convertEntryDTO(dto EntryRequestDTO) (ramshell.EntryRequest, error) {
	path := strings.Trim(dto.Path, string(paths.Separator))
	if path == "" {
		return ramshell.EntryRequest{}, ErrEmptyPath
	}

	kind := dto.Type
	if kind == "" {
		kind = ramshell.FileEntryType
	}
	if !kind.Valid() {
		return ramshell.EntryRequest{}, fmt.Errorf("%w %q for %q", ErrUnknownType, kind, path)
	}
	if kind == ramshell.DirEntryType && dto.Content != nil {
		return ramshell.EntryRequest{}, fmt.Errorf("%w: %q", ErrDirHasContent, path)
	}

	req := ramshell.EntryRequest{
		Path:   path,
		Type:   kind,
		Append: valueOrDefault(dto.Append, false),
	}
	if dto.Content != nil {
		req.Content = []byte(*dto.Content)
	}
	return req, nil
}

func valueOrDefault[T any](ptr *T, defaultVal T) T {
	if ptr != nil {
		return *ptr
	}
	return defaultVal
}
