// Package path implements lexical routines for absolute filesystem paths
// written in either Unix or Windows style.
//
// Unlike the standard library's path package (Unix-only) and filepath package
// (OS-specific), this package detects the path style from the path itself:
//
//   - Unix-style: a leading forward slash, / separators
//   - Windows-style: a drive letter (C:) or a UNC prefix (\\), \ separators
//
// The style never depends on the operating system running the code, so paths
// reported by one machine can be processed on another.
//
// All operations are purely lexical. They do not access the filesystem,
// resolve . or .. elements, or convert separators inside elements.
//
//	path.IsAbs(`C:\Windows`)            // true
//	path.Join("/", "etc", "passwd")     // "/etc/passwd"
//	path.Join(`C:\`, "Windows", "Fonts") // "C:\Windows\Fonts"
package path

import "strings"

// IsAbs reports whether the path is lexically absolute.
// Absolute paths are:
//   - Paths starting with "/" (Unix-style)
//   - Paths starting with [letter]: (Windows drive letter)
//   - Paths starting with \\ (Windows UNC)
//
// Only the first two bytes are inspected. "C:" on its own is absolute.
func IsAbs(path string) bool {
	if path == "" {
		return false
	}
	switch c := path[0]; {
	case c == '/':
		return true
	case isLetter(c):
		return len(path) >= 2 && path[1] == ':'
	case c == '\\':
		return len(path) >= 2 && path[1] == '\\'
	}
	return false
}

// IsUnix reports whether path is written in Unix style,
// that is, whether it starts with a forward slash.
func IsUnix(path string) bool {
	return detectStyle(path).kind == styleUnix
}

// Sep returns the separator used by path: '/' for Unix-style paths
// and '\' for everything else.
func Sep(path string) byte {
	return detectStyle(path).sep
}

// Join appends each element to base in turn.
//
// An absolute element replaces everything joined so far. A relative element
// is appended after the separator of the current result, which is inserted
// only if the result does not already end with it. Elements are otherwise
// appended verbatim.
//
// Examples:
//
//	Join("/", "etc", "passwd")          // "/etc/passwd"
//	Join("/etc/", "passwd")             // "/etc/passwd"
//	Join("/etc", "passwd", "/etc/hosts") // "/etc/hosts"
//	Join(`\\`, "Server", "Share")       // "\\Server\Share"
func Join(base string, elem ...string) string {
	var b strings.Builder
	b.WriteString(base)
	for _, e := range elem {
		if IsAbs(e) {
			b.Reset()
			b.WriteString(e)
			continue
		}
		cur := b.String()
		if sep := Sep(cur); !strings.HasSuffix(cur, string(sep)) {
			b.WriteByte(sep)
		}
		b.WriteString(e)
	}
	return b.String()
}

// pathStyle represents the detected path style
type pathStyle struct {
	kind styleKind
	sep  byte
}

type styleKind int

const (
	styleUnix styleKind = iota
	styleWindows
)

// detectStyle determines the path style from its leading byte.
// Anything that does not start with / is treated as Windows-style.
func detectStyle(path string) pathStyle {
	if strings.HasPrefix(path, "/") {
		return pathStyle{kind: styleUnix, sep: '/'}
	}
	return pathStyle{kind: styleWindows, sep: '\\'}
}

func isLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
