package requests

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brettbedarf/ramshell"
)

func TestGetEntryType(t *testing.T) {
	t.Parallel()

	kind, err := GetEntryType([]byte(`{"path":"bin","type":"dir"}`))
	require.NoError(t, err)
	assert.Equal(t, ramshell.DirEntryType, kind)

	kind, err = GetEntryType([]byte(`{"path":"notes"}`))
	require.NoError(t, err)
	assert.Equal(t, ramshell.EntryType(""), kind)

	_, err = GetEntryType([]byte(`{`))
	assert.Error(t, err)
}

func TestUnmarshalEntryRequest(t *testing.T) {
	t.Parallel()

	req, err := UnmarshalEntryRequest([]byte(`{"path":"/user/notes/","content":"hi","append":true}`))
	require.NoError(t, err)
	assert.Equal(t, ramshell.EntryRequest{
		Path:    "user/notes",
		Type:    ramshell.FileEntryType,
		Content: []byte("hi"),
		Append:  true,
	}, *req)
}

func TestDecodeLayout(t *testing.T) {
	t.Parallel()

	want := []ramshell.EntryRequest{
		{Path: "docs", Type: ramshell.DirEntryType},
		{Path: "docs/readme", Type: ramshell.FileEntryType, Content: []byte("hello")},
		{Path: "docs/readme", Type: ramshell.FileEntryType, Content: []byte(" world"), Append: true},
		{Path: "empty", Type: ramshell.FileEntryType},
	}

	tests := []struct {
		name   string
		data   string
		format Format
	}{
		{
			name:   "json list",
			format: JSONFormat,
			data: `[
				{"path": "docs", "type": "dir"},
				{"path": "docs/readme", "type": "file", "content": "hello"},
				{"path": "docs/readme", "content": " world", "append": true},
				{"path": "empty"}
			]`,
		},
		{
			name:   "json object",
			format: JSONFormat,
			data: `{"entries": [
				{"path": "docs", "type": "dir"},
				{"path": "docs/readme", "content": "hello"},
				{"path": "docs/readme", "content": " world", "append": true},
				{"path": "empty", "type": "file"}
			]}`,
		},
		{
			name:   "yaml list",
			format: YAMLFormat,
			data: `
- path: docs
  type: dir
- path: docs/readme
  content: hello
- path: docs/readme
  content: " world"
  append: true
- path: empty
`,
		},
		{
			name:   "yaml object",
			format: YAMLFormat,
			data: `
entries:
  - {path: docs, type: dir}
  - {path: docs/readme, content: hello}
  - {path: docs/readme, content: " world", append: true}
  - {path: empty}
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := DecodeLayout([]byte(tt.data), tt.format)
			require.NoError(t, err)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("DecodeLayout() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeLayout_Empty(t *testing.T) {
	t.Parallel()

	got, err := DecodeLayout([]byte(""), YAMLFormat)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = DecodeLayout([]byte("[]"), JSONFormat)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDecodeLayout_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		data   string
		format Format
		target error
	}{
		{"empty path", `[{"path": "/"}]`, JSONFormat, ErrEmptyPath},
		{"unknown type", `[{"path": "x", "type": "link"}]`, JSONFormat, ErrUnknownType},
		{"dir with content", "- {path: x, type: dir, content: oops}", YAMLFormat, ErrDirHasContent},
		{"malformed json", `[{"path": }]`, JSONFormat, nil},
		{"malformed yaml", "- path: [x", YAMLFormat, nil},
		{"unknown format", `[]`, Format(9), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := DecodeLayout([]byte(tt.data), tt.format)
			require.Error(t, err)
			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			}
		})
	}
}

func TestLoadLayoutFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "layout.yml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("- {path: etc, type: dir}\n"), 0o600))
	reqs, err := LoadLayoutFile(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, []ramshell.EntryRequest{{Path: "etc", Type: ramshell.DirEntryType}}, reqs)

	jsonPath := filepath.Join(dir, "layout.JSON")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`[{"path":"motd","content":"hi"}]`), 0o600))
	reqs, err = LoadLayoutFile(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, []ramshell.EntryRequest{{Path: "motd", Type: ramshell.FileEntryType, Content: []byte("hi")}}, reqs)

	_, err = LoadLayoutFile(filepath.Join(dir, "layout.toml"))
	assert.ErrorContains(t, err, "unknown layout file extension")

	_, err = LoadLayoutFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read layout file")
}
