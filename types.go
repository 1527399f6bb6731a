// Package pathuri builds absolute filesystem paths and turns them into URIs.
//
// A [Path] holds an absolute path in the style it was written in: Unix
// (/usr/src), Windows drive letter (C:\src), or Windows UNC
// (\\server\share). The style is taken from the path itself, never from the
// operating system running the code, so a report produced on one machine can
// be processed on another.
//
//	p := pathuri.New("/")
//	p.Push("etc")
//	p.Push("passwd")
//	p.URI() // "file:///etc/passwd"
//
// # Joining
//
// [Path.Push] appends a segment. A relative segment is added after the
// path's own separator; an absolute segment replaces the path entirely, as
// most path joining utilities do:
//
//	p := pathuri.New("/etc")
//	p.Push("passwd")     // /etc/passwd
//	p.Push("/etc/hosts") // /etc/hosts
//
// Segments are appended verbatim. Nothing is cleaned, escaped, or checked
// against the filesystem.
//
// # Borrowing
//
// [Path.Borrow] returns a read-only view of the same text without copying
// it. A Path copies its text into a private buffer before the first Push
// that would otherwise be visible through another view, so views never
// observe each other's changes.
//
// # URIs
//
// [Path.URI] formats the path as a file URI: file:///etc/passwd for Unix
// paths and file:///C:\Windows for Windows paths. No percent-encoding is
// applied. Before falling back to a file URI, the path is matched against an
// ordered list of prefix [Rules]. [DefaultRules] maps the standard library
// sources bundled with the Rust compiler (/rustc/...) to their public
// location on raw.githubusercontent.com. Custom rules are applied with
// [Rules.URI].
//
// The lexical helpers behind Path live in [lesiw.io/pathuri/path].
package pathuri

import (
	"errors"
	"io/fs"
	"strconv"
)

// PathError records an error and the operation and path that caused it.
type PathError = fs.PathError

// newPathError creates a PathError if err is not nil, otherwise returns nil.
func newPathError(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &PathError{Op: op, Path: path, Err: err}
}

// RuleError records an invalid rewrite rule and its position in [Rules].
type RuleError struct {
	Index int
	Rule  Rule
	Err   error
}

func (e *RuleError) Error() string {
	return "rule " + strconv.Itoa(e.Index) +
		" (" + strconv.Quote(e.Rule.Prefix) + "): " + e.Err.Error()
}

func (e *RuleError) Unwrap() error { return e.Err }

var (
	// ErrNotAbsolute is returned when a base path is not absolute.
	ErrNotAbsolute = errors.New("path is not absolute")

	// ErrInvalidRule is returned when a rewrite rule is incomplete.
	ErrInvalidRule = errors.New("invalid rewrite rule")
)
