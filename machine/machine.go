// Package machine boots a ramshell: it builds the entry table, seeds the
// starting layout, prints the banner and wires a shell to a console.
package machine

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/brettbedarf/ramshell"
	"github.com/brettbedarf/ramshell/config"
	"github.com/brettbedarf/ramshell/console"
	"github.com/brettbedarf/ramshell/filesystem"
	"github.com/brettbedarf/ramshell/internal/util"
	"github.com/brettbedarf/ramshell/paths"
	"github.com/brettbedarf/ramshell/shell"
)

// BinDir holds one empty marker file per builtin command.
const BinDir = "bin"

// Machine contains the entry table and the settings every shell started on
// it shares.
type Machine struct {
	*filesystem.Table
	cfg *config.Config
}

// New creates a Machine with an empty table sized by cfg.
func New(cfg *config.Config) *Machine {
	return &Machine{
		filesystem.NewTable(cfg),
		cfg,
	}
}

// Config returns the settings the machine was built with.
func (m *Machine) Config() *config.Config {
	return m.cfg
}

// DefaultLayout returns the starting entries: the bin and home directories
// and a marker file in bin for every builtin except help.
func DefaultLayout(cfg *config.Config) []ramshell.EntryRequest {
	reqs := []ramshell.EntryRequest{
		{Path: BinDir, Type: ramshell.DirEntryType},
	}
	if cfg.HomeDir != "" && cfg.HomeDir != BinDir {
		reqs = append(reqs, ramshell.EntryRequest{Path: cfg.HomeDir, Type: ramshell.DirEntryType})
	}
	for _, name := range shell.BuiltinNames() {
		if name == "help" {
			continue
		}
		reqs = append(reqs, ramshell.EntryRequest{
			Path: paths.Join(BinDir, name, cfg.MaxNameLen),
			Type: ramshell.FileEntryType,
		})
	}
	return reqs
}

// Seed applies reqs in order. Directories are created; files are created
// when missing and then written when they carry content. Every request is
// attempted; the failures are joined into the returned error.
func (m *Machine) Seed(reqs []ramshell.EntryRequest) (int, error) {
	logger := util.GetLogger("Machine.Seed")

	var errs []error
	applied := 0
	for _, req := range reqs {
		if err := m.apply(req); err != nil {
			logger.Debug().Str("path", req.Path).Str("type", string(req.Type)).Err(err).Msg("Failed to apply entry request")
			errs = append(errs, fmt.Errorf("%s: %w", req.Path, err))
			continue
		}
		applied++
	}
	logger.Info().Int("applied", applied).Int("failed", len(errs)).Int("used", m.Len()).Msg("Seeded entry table")
	return applied, errors.Join(errs...)
}

func (m *Machine) apply(req ramshell.EntryRequest) error {
	switch req.Type {
	case ramshell.DirEntryType:
		_, err := m.Create(req.Path, ramshell.DirEntryType)
		return err
	case ramshell.FileEntryType:
		if _, ok := m.Find(req.Path); !ok {
			if _, err := m.Create(req.Path, ramshell.FileEntryType); err != nil {
				return err
			}
		}
		if len(req.Content) == 0 {
			return nil
		}
		mode := filesystem.Overwrite
		if req.Append {
			mode = filesystem.Append
		}
		n, err := m.Write(req.Path, req.Content, mode)
		if err != nil {
			return err
		}
		if n < len(req.Content) {
			util.GetLogger("Machine.Seed").Warn().
				Str("path", req.Path).
				Int("dropped", len(req.Content)-n).
				Msg("Layout content truncated at file capacity")
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown kind %q", filesystem.ErrInvalidName, req.Type)
	}
}

// Boot prints the welcome banner.
func (m *Machine) Boot(d ramshell.Display) {
	d.WriteLine("Welcome to ramshell")
	d.WriteLine("-------------------")
	d.WriteLine(fmt.Sprintf("%d entries, %s of file storage (%s per file)",
		m.Cap(),
		humanize.IBytes(uint64(m.cfg.TableBytes())),
		humanize.IBytes(uint64(m.cfg.MaxFileSize)),
	))
	d.WriteLine("")
	d.WriteLine("Type 'help' for a list of commands.")
	d.WriteLine("")
}

// NewShell returns a shell on this machine's table rendering to d.
func (m *Machine) NewShell(d ramshell.Display) *shell.Shell {
	return shell.New(m.Table, d, m.cfg)
}

// RunPlain boots onto out and runs a shell reading lines from in until in is
// exhausted or ctx is done.
func (m *Machine) RunPlain(ctx context.Context, in io.Reader, out io.Writer) error {
	display := console.NewStreamDisplay(out)
	m.Boot(display)
	sh := m.NewShell(display)

	reader := console.NewStreamReader(in, m.cfg.MaxLineLen, display)
	err := sh.Run(ctx, reader)
	display.WriteChar('\n')
	return err
}

// RunTerminal boots onto a Screen and runs the full-screen terminal front end
// until the user quits or ctx is done.
func (m *Machine) RunTerminal(ctx context.Context, opts ...tea.ProgramOption) error {
	screen := console.NewScreen(m.cfg.ScreenOptions)
	m.Boot(screen)
	sh := m.NewShell(screen)
	sh.Prompt()

	util.GetLogger("Machine").Info().Str("session", sh.Session()).Msg("Starting terminal")
	return console.RunTerminal(ctx, console.NewTerminal(screen, sh, m.cfg.MaxLineLen), opts...)
}
