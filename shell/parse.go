package shell

import (
	"errors"
	"strings"

	"github.com/brettbedarf/ramshell/filesystem"
)

// Only the space character separates tokens; the line editor never lets
// tabs or other whitespace through.
const space = " "

var (
	errMissingRedirect = errors.New("missing '>'")
	errMissingTarget   = errors.New("missing file name")
)

// splitCommand returns the command token (at most maxLen bytes) and the rest
// of the line with leading spaces skipped. Token bytes beyond maxLen are left
// at the front of the args.
func splitCommand(line string, maxLen int) (cmd, args string) {
	rest := strings.TrimLeft(line, space)
	end := strings.IndexByte(rest, ' ')
	if end < 0 {
		end = len(rest)
	}
	if end > maxLen {
		end = maxLen
	}
	return rest[:end], strings.TrimLeft(rest[end:], space)
}

// firstToken returns the first space-delimited token of s, cut to maxLen bytes.
func firstToken(s string, maxLen int) string {
	s = strings.TrimLeft(s, space)
	if end := strings.IndexByte(s, ' '); end >= 0 {
		s = s[:end]
	}
	if len(s) > maxLen {
		s = s[:maxLen]
	}
	return s
}

// parseRedirect splits "text > name" or "text >> name". The text ends at the
// first '>' with trailing spaces trimmed; a second '>' right after selects
// append. The target is the first token after the marker.
func parseRedirect(args string) (text, target string, mode filesystem.WriteMode, err error) {
	args = strings.TrimLeft(args, space)
	idx := strings.IndexByte(args, '>')
	if idx < 0 {
		return "", "", filesystem.Overwrite, errMissingRedirect
	}
	text = strings.TrimRight(args[:idx], space)

	after := args[idx+1:]
	mode = filesystem.Overwrite
	if strings.HasPrefix(after, ">") {
		mode = filesystem.Append
		after = after[1:]
	}
	after = strings.TrimLeft(after, space)
	if after == "" {
		return "", "", mode, errMissingTarget
	}
	if end := strings.IndexByte(after, ' '); end >= 0 {
		after = after[:end]
	}
	return text, after, mode, nil
}
