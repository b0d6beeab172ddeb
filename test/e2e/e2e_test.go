package e2e

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

var (
	ramshellBin string
	projRoot    string
)

func TestMain(m *testing.M) {
	// Build the ramshell binary once for all tests
	tmpBinDir, err := os.MkdirTemp("", "ramshell-bin")
	if err != nil {
		panic(err)
	}

	ramshellBin = filepath.Join(tmpBinDir, "ramshell")

	// Determine project root
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		panic("cannot determine current file path")
	}
	projRoot = filepath.Join(filepath.Dir(thisFile), "..", "..")

	cmd := exec.Command("go", "build", "-o", ramshellBin, "./cmd/ramshell")
	cmd.Dir = projRoot
	if out, err := cmd.CombinedOutput(); err != nil {
		panic(string(out))
	}

	code := m.Run()
	_ = os.RemoveAll(tmpBinDir)
	os.Exit(code)
}

// Session is one scripted run of the binary in plain mode.
type Session struct {
	args   []string
	lines  []string
	files  map[string]string
	Stdout string
	Stderr string
}

// NewSession starts describing a scripted run.
func NewSession() *Session {
	return &Session{files: make(map[string]string)}
}

// WithArgs adds command line arguments. "{dir}" expands to the session's
// temporary directory.
func (s *Session) WithArgs(args ...string) *Session {
	s.args = append(s.args, args...)
	return s
}

// WithFile writes a file into the session's temporary directory.
func (s *Session) WithFile(name, content string) *Session {
	s.files[name] = content
	return s
}

// Type queues input lines.
func (s *Session) Type(lines ...string) *Session {
	s.lines = append(s.lines, lines...)
	return s
}

// Run executes the binary and waits for it to exit.
func (s *Session) Run(t *testing.T) error {
	t.Helper()
	dir := t.TempDir()
	for name, content := range s.files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}

	args := []string{"--plain"}
	for _, a := range s.args {
		args = append(args, strings.ReplaceAll(a, "{dir}", dir))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, ramshellBin, args...)
	cmd.Stdin = strings.NewReader(strings.Join(s.lines, "\n") + "\n")
	cmd.Env = append(os.Environ(), "RAMSHELL_VERBOSE=")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	s.Stdout, s.Stderr = stdout.String(), stderr.String()
	if err != nil {
		return fmt.Errorf("ramshell failed: %w\nstderr: %s", err, s.Stderr)
	}
	return nil
}

func TestE2EBootAndList(t *testing.T) {
	s := NewSession().Type("sdir", "cd ..", "sdir", "cd bin", "sdir")
	if err := s.Run(t); err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"Welcome to ramshell",
		"Type 'help' for a list of commands.",
		"/user$ sdir: no entries\n",
		"/$ [DIR]  bin\n[DIR]  user\n",
		"/bin$ [FILE] echo\n[FILE] crtdir\n",
	} {
		if !strings.Contains(s.Stdout, want) {
			t.Fatalf("output missing %q:\n%s", want, s.Stdout)
		}
	}
}

func TestE2EEditAndShowFile(t *testing.T) {
	s := NewSession().Type(
		"crtdir docs",
		"cd docs",
		"efile hello > notes",
		"efile , world >> notes",
		"sfile notes",
		"dfile notes",
		"sfile notes",
	)
	if err := s.Run(t); err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"Directory created: docs\n",
		"/user/docs$ hello, world\n",
		"File deleted: notes\n",
		"sfile: no such file: notes\n",
	} {
		if !strings.Contains(s.Stdout, want) {
			t.Fatalf("output missing %q:\n%s", want, s.Stdout)
		}
	}
}

func TestE2ELayoutAndConfig(t *testing.T) {
	s := NewSession().
		WithFile("ramshell.yaml", "max_file_size: 8\nhome_dir: home\n").
		WithFile("layout.json", `[{"path": "home", "type": "dir"}, {"path": "home/motd", "content": "0123456789"}]`).
		WithArgs("--config", "{dir}/ramshell.yaml", "--layout", "{dir}/layout.json", "-v", "4").
		Type("sdir", "sfile motd")
	if err := s.Run(t); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(s.Stdout, "/home$ [FILE] motd\n") {
		t.Fatalf("layout entry not listed:\n%s", s.Stdout)
	}
	if !strings.Contains(s.Stdout, "/home$ 01234567\n") {
		t.Fatalf("content not truncated to max_file_size:\n%s", s.Stdout)
	}
	if !strings.Contains(s.Stderr, "Layout content truncated at file capacity") {
		t.Fatalf("truncation not logged:\nstderr: %s", s.Stderr)
	}
}

func TestE2EInvalidConfig(t *testing.T) {
	s := NewSession().
		WithFile("bad.yaml", "table_capacity: -1\n").
		WithArgs("--config", "{dir}/bad.yaml")
	err := s.Run(t)
	if err == nil {
		t.Fatal("expected a non-zero exit for an invalid config")
	}
	if !strings.Contains(s.Stderr, "table_capacity must be positive") {
		t.Fatalf("unexpected stderr: %s", s.Stderr)
	}
}
