package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	t.Parallel()

	noop := func(*Shell, string) {}

	t.Run("keeps registration order", func(t *testing.T) {
		t.Parallel()
		r := NewRegistry()
		require.NoError(t, r.Register(Command{Name: "b", Run: noop}))
		require.NoError(t, r.Register(Command{Name: "a", Run: noop}))

		cmds := r.Commands()
		require.Len(t, cmds, 2)
		assert.Equal(t, "b", cmds[0].Name)
		assert.Equal(t, "a", cmds[1].Name)
	})

	t.Run("replaces in place", func(t *testing.T) {
		t.Parallel()
		r := NewRegistry()
		require.NoError(t, r.Register(Command{Name: "a", Help: "old", Run: noop}))
		require.NoError(t, r.Register(Command{Name: "b", Run: noop}))
		require.NoError(t, r.Register(Command{Name: "a", Help: "new", Run: noop}))

		cmds := r.Commands()
		require.Len(t, cmds, 2)
		assert.Equal(t, "a", cmds[0].Name)
		assert.Equal(t, "new", cmds[0].Help)
	})

	t.Run("lookup", func(t *testing.T) {
		t.Parallel()
		r := NewRegistry()
		require.NoError(t, r.Register(Command{Name: "x", Run: noop}))

		cmd, ok := r.Lookup("x")
		require.True(t, ok)
		assert.Equal(t, "x", cmd.Name)
		_, ok = r.Lookup("X")
		assert.False(t, ok)
	})

	t.Run("rejects incomplete commands", func(t *testing.T) {
		t.Parallel()
		r := NewRegistry()
		assert.Error(t, r.Register(Command{Run: noop}))
		assert.Error(t, r.Register(Command{Name: "x"}))
		assert.Empty(t, r.Commands())
	})
}

func TestBuiltinNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		[]string{"help", "echo", "crtdir", "cfile", "deldir", "dfile", "sdir", "sfile", "efile", "clr", "cd"},
		BuiltinNames())
}
