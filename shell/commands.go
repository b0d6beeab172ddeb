package shell

import (
	"fmt"

	"github.com/brettbedarf/ramshell"
	"github.com/brettbedarf/ramshell/paths"
)

// builtins in help order.
var builtins = []Command{
	{Name: "help", Usage: "help", Help: "show this help", Run: cmdHelp},
	{Name: "echo", Usage: "echo <text>", Help: "print text", Run: cmdEcho},
	{Name: "crtdir", Usage: "crtdir <name>", Help: "create directory", Run: cmdCrtdir},
	{Name: "cfile", Usage: "cfile <name>", Help: "create file", Run: cmdCfile},
	{Name: "deldir", Usage: "deldir <name>", Help: "delete directory", Run: cmdDeldir},
	{Name: "dfile", Usage: "dfile <name>", Help: "delete file", Run: cmdDfile},
	{Name: "sdir", Usage: "sdir", Help: "list entries in current directory", Run: cmdSdir},
	{Name: "sfile", Usage: "sfile <name>", Help: "show file contents", Run: cmdSfile},
	{Name: "efile", Usage: "efile <expr>", Help: "edit file (efile text > file, efile text >> file)", Run: cmdEfile},
	{Name: "clr", Usage: "clr", Help: "clear the screen", Run: cmdClr},
	{Name: "cd", Usage: "cd <name>", Help: "change directory (.. for parent)", Run: cmdCd},
}

// BuiltinNames returns the builtin command names in help order.
func BuiltinNames() []string {
	names := make([]string, len(builtins))
	for i, c := range builtins {
		names[i] = c.Name
	}
	return names
}

func registerBuiltins(r *Registry) {
	for _, c := range builtins {
		_ = r.Register(c)
	}
}

// nameArg extracts the first token of args as a bare name. It prints
// "<cmd>: missing name" and returns false when there is none.
func (s *Shell) nameArg(cmd, args string) (string, bool) {
	name := firstToken(args, s.cfg.MaxNameLen)
	if name == "" {
		s.display.WriteLine(cmd + ": missing name")
		return "", false
	}
	return name, true
}

// report logs a failed operation; the user only sees a uniform message.
func (s *Shell) report(cmd, full string, err error) {
	s.logger.Debug().Err(err).Str("command", cmd).Str("name", full).Msg("Operation failed")
}

func cmdHelp(s *Shell, _ string) {
	s.display.WriteLine("Available commands:")
	for _, c := range s.registry.Commands() {
		s.display.WriteLine(fmt.Sprintf("  %-18s- %s", c.Usage, c.Help))
	}
}

func cmdEcho(s *Shell, args string) {
	s.display.WriteLine(args)
}

func cmdCrtdir(s *Shell, args string) {
	s.create("crtdir", "Directory", args, ramshell.DirEntryType)
}

func cmdCfile(s *Shell, args string) {
	s.create("cfile", "File", args, ramshell.FileEntryType)
}

func (s *Shell) create(cmd, label, args string, kind ramshell.EntryType) {
	name, ok := s.nameArg(cmd, args)
	if !ok {
		return
	}
	full := s.resolve(name)
	if _, err := s.table.Create(full, kind); err != nil {
		s.report(cmd, full, err)
		s.display.WriteLine(cmd + ": failed to create " + name)
		return
	}
	s.display.WriteLine(label + " created: " + name)
}

func cmdDeldir(s *Shell, args string) {
	s.delete("deldir", "Directory", args, ramshell.DirEntryType)
}

func cmdDfile(s *Shell, args string) {
	s.delete("dfile", "File", args, ramshell.FileEntryType)
}

func (s *Shell) delete(cmd, label, args string, kind ramshell.EntryType) {
	name, ok := s.nameArg(cmd, args)
	if !ok {
		return
	}
	full := s.resolve(name)
	if err := s.table.Delete(full, kind); err != nil {
		s.report(cmd, full, err)
		s.display.WriteLine(cmd + ": failed to delete " + name)
		return
	}
	s.display.WriteLine(label + " deleted: " + name)
}

// cmdSdir lists entries whose derived parent is exactly the current
// directory. The parent itself is never checked against the table.
func cmdSdir(s *Shell, _ string) {
	found := false
	s.table.Range(func(e ramshell.EntryInfo) bool {
		if paths.Parent(e.Name) != s.cwd {
			return true
		}
		found = true
		tag := "[FILE] "
		if e.IsDir() {
			tag = "[DIR]  "
		}
		s.display.WriteLine(tag + paths.Basename(e.Name))
		return true
	})
	if !found {
		s.display.WriteLine("sdir: no entries")
	}
}

func cmdSfile(s *Shell, args string) {
	name, ok := s.nameArg("sfile", args)
	if !ok {
		return
	}
	full := s.resolve(name)
	data, err := s.table.Read(full)
	if err != nil {
		s.report("sfile", full, err)
		s.display.WriteLine("sfile: no such file: " + name)
		return
	}
	s.display.WriteLine(string(data))
}

func cmdEfile(s *Shell, args string) {
	text, target, mode, err := parseRedirect(args)
	if err != nil {
		s.display.WriteLine("efile: " + err.Error())
		return
	}
	if limit := s.table.MaxFileSize() - 1; len(text) > limit {
		text = text[:limit]
	}
	if len(target) > s.cfg.MaxNameLen {
		target = target[:s.cfg.MaxNameLen]
	}

	full := s.resolve(target)
	n, err := s.table.Write(full, []byte(text), mode)
	if err != nil {
		s.report("efile", full, err)
		s.display.WriteLine("efile: failed to write " + target)
		return
	}
	if n < len(text) {
		s.logger.Debug().Str("name", full).Int("dropped", len(text)-n).Msg("efile text truncated")
	}
}

func cmdClr(s *Shell, _ string) {
	s.display.Clear()
}

func cmdCd(s *Shell, args string) {
	name, ok := s.nameArg("cd", args)
	if !ok {
		return
	}

	switch name {
	case ".":
		return
	case "..":
		s.cwd = paths.Parent(s.cwd)
		return
	}

	target := s.resolve(name)
	info, ok := s.table.Stat(target)
	if !ok || !info.IsDir() {
		s.logger.Debug().Str("target", target).Bool("exists", ok).Msg("cd rejected")
		s.display.WriteLine("cd: no such directory: " + name)
		return
	}
	s.cwd = target
}
