// Package shell implements the command interpreter, the entry table's only
// client. It keeps the current directory as a plain path prefix and resolves
// every bare name against it before calling into the table.
package shell

import (
	"context"
	"errors"
	"io"

	"github.com/brettbedarf/ramshell"
	"github.com/brettbedarf/ramshell/config"
	"github.com/brettbedarf/ramshell/filesystem"
	"github.com/brettbedarf/ramshell/internal/util"
	"github.com/brettbedarf/ramshell/paths"
	"github.com/google/uuid"
)

// Shell interprets one line at a time against a table, writing results to a
// display. It is not safe for concurrent use.
type Shell struct {
	table    *filesystem.Table
	display  ramshell.Display
	cfg      *config.Config
	registry *Registry
	cwd      string // Current directory; "" is root
	session  string
	logger   util.Logger
}

// New returns a shell with the builtin commands registered and the current
// directory set to cfg.HomeDir.
func New(table *filesystem.Table, display ramshell.Display, cfg *config.Config) *Shell {
	session := uuid.NewString()
	s := &Shell{
		table:    table,
		display:  display,
		cfg:      cfg,
		registry: NewRegistry(),
		cwd:      paths.Join("", cfg.HomeDir, cfg.MaxNameLen),
		session:  session,
	}
	s.logger = util.GetLogger("Shell").With().Str("session", session).Logger()
	registerBuiltins(s.registry)
	return s
}

// Registry exposes the command registry so callers can add commands.
func (s *Shell) Registry() *Registry {
	return s.registry
}

// Cwd returns the current directory prefix; "" is root.
func (s *Shell) Cwd() string {
	return s.cwd
}

// Session returns the id attached to this shell's log lines.
func (s *Shell) Session() string {
	return s.session
}

// Display returns the writer the shell renders to.
func (s *Shell) Display() ramshell.Display {
	return s.display
}

// Prompt writes "/$ " at root and "/<cwd>$ " elsewhere.
func (s *Shell) Prompt() {
	s.display.WriteString("/" + s.cwd + "$ ")
}

// HandleLine runs one input line. Nothing a command does ends the shell.
func (s *Shell) HandleLine(line string) {
	name, args := splitCommand(line, s.cfg.MaxCommandLen)
	if name == "" {
		return
	}

	cmd, ok := s.registry.Lookup(name)
	if !ok {
		s.logger.Debug().Str("command", name).Msg("Unknown command")
		s.display.WriteLine("Unknown command: " + name)
		return
	}
	s.logger.Debug().Str("command", name).Str("args", args).Str("cwd", s.cwd).Msg("Running command")
	cmd.Run(s, args)
}

// Run prompts, reads and handles lines until the reader is exhausted
// (returns nil) or ctx is cancelled (returns ctx.Err()).
func (s *Shell) Run(ctx context.Context, in ramshell.LineReader) error {
	s.logger.Info().Str("cwd", s.cwd).Msg("Shell started")
	for {
		s.Prompt()
		line, err := in.ReadLine(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Info().Msg("Input closed")
				return nil
			}
			return err
		}
		s.HandleLine(line)
	}
}

// resolve joins a bare name onto the current directory, cut to MaxNameLen.
func (s *Shell) resolve(name string) string {
	full := paths.Join(s.cwd, name, s.cfg.MaxNameLen)
	want := len(name)
	if s.cwd != "" {
		want += len(s.cwd) + 1
	}
	if len(full) < want {
		s.logger.Debug().Str("name", name).Str("resolved", full).Msg("Resolved name truncated")
	}
	return full
}
