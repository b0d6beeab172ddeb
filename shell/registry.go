package shell

import (
	"fmt"
	"sync"

	"github.com/puzpuzpuz/xsync/v4"
)

// Command is one shell command. Run receives the argument string with
// leading spaces already skipped.
type Command struct {
	Name  string
	Usage string // e.g. "crtdir <name>"; shown by help
	Help  string
	Run   func(s *Shell, args string)
}

// Registry maps command tokens to commands and remembers registration order
// for help output.
type Registry struct {
	commands *xsync.Map[string, *Command]
	mu       sync.Mutex // Protects order
	order    []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{commands: xsync.NewMap[string, *Command]()}
}

// Register adds cmd, replacing any command with the same name in place.
func (r *Registry) Register(cmd Command) error {
	if cmd.Name == "" || cmd.Run == nil {
		return fmt.Errorf("command needs a name and a Run func: %q", cmd.Name)
	}
	if _, loaded := r.commands.LoadAndStore(cmd.Name, &cmd); !loaded {
		r.mu.Lock()
		r.order = append(r.order, cmd.Name)
		r.mu.Unlock()
	}
	return nil
}

// Lookup returns the command registered under name.
func (r *Registry) Lookup(name string) (*Command, bool) {
	return r.commands.Load(name)
}

// Commands returns every command in registration order.
func (r *Registry) Commands() []*Command {
	r.mu.Lock()
	names := append([]string(nil), r.order...)
	r.mu.Unlock()

	cmds := make([]*Command, 0, len(names))
	for _, name := range names {
		if cmd, ok := r.commands.Load(name); ok {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}
