// Package paths joins and splits the full names stored in the entry table.
// Hierarchy only exists in these strings: nothing here consults the table, so a
// derived parent may or may not exist as a directory entry.
package paths

import "strings"

// Separator divides the segments of a full name.
const Separator = '/'

// Join returns name when prefix is empty (root) and prefix/name otherwise.
// Results longer than limit bytes are cut to limit; limit <= 0 means no limit.
func Join(prefix, name string, limit int) string {
	full := name
	if prefix != "" {
		full = prefix + string(Separator) + name
	}
	if limit > 0 && len(full) > limit {
		full = full[:limit]
	}
	return full
}

// Parent returns everything before the last separator, or "" (root) when
// path has none. "a/b/c" -> "a/b", "a" -> "".
func Parent(path string) string {
	i := strings.LastIndexByte(path, Separator)
	if i < 0 {
		return ""
	}
	return path[:i]
}

// Basename returns everything after the last separator, or the whole path
// when it has none. "a/b/c" -> "c".
func Basename(path string) string {
	return path[strings.LastIndexByte(path, Separator)+1:]
}
