package pathuri

import "lesiw.io/pathuri/path"

// A Path is an absolute filesystem path in Unix or Windows style.
//
// A Path either borrows its text from a string held elsewhere or owns a
// private buffer. Push copies borrowed text, or a buffer owned by another
// Path, into a private buffer before changing it. Copies of a Path, whether
// made by [Path.Borrow] or by assignment, never observe each other's Pushes.
//
// The zero Path is not a valid path. Use [New] or [Parse].
type Path struct {
	text string // borrowed text, used while buf is nil
	buf  []byte // text owned by the Path at addr
	addr *Path  // owner of buf; a copy sees a different address
}

// New returns a Path that borrows s.
//
// New panics if s is not absolute according to [path.IsAbs]. Callers are
// expected to pass paths already known to be absolute; use [Parse] for input
// that may not be.
func New(s string) Path {
	return Must(Parse(s))
}

// Parse returns a Path that borrows s.
//
// If s is not absolute according to [path.IsAbs], Parse returns a
// [*PathError] wrapping [ErrNotAbsolute].
func Parse(s string) (Path, error) {
	if !path.IsAbs(s) {
		return Path{}, newPathError("parse", s, ErrNotAbsolute)
	}
	return Path{text: s}, nil
}

// Must is a helper that wraps a call to a function returning (Path, error)
// and panics if the error is non-nil.
func Must(p Path, err error) Path {
	if err != nil {
		panic(err)
	}
	return p
}

// Push joins elem onto p.
//
// If elem is absolute, it replaces p entirely. Otherwise elem is appended
// verbatim after p's separator ('/' if p starts with a slash, '\'
// otherwise), which is inserted only if p does not already end with it.
//
// Pushing a relative elem onto the zero Path panics with a [*PathError]
// wrapping [ErrNotAbsolute].
func (p *Path) Push(elem string) {
	if path.IsAbs(elem) {
		p.text, p.buf, p.addr = elem, nil, nil
		return
	}
	if p.Len() == 0 {
		panic(newPathError("push", "", ErrNotAbsolute))
	}
	p.own(len(elem) + 1)
	sep := path.Sep(string(p.buf[:1]))
	if p.buf[len(p.buf)-1] != sep {
		p.buf = append(p.buf, sep)
	}
	p.buf = append(p.buf, elem...)
}

// Borrow returns a read-only view of p that shares its text.
//
// Pushing onto either p or the view leaves the other unchanged.
func (p *Path) Borrow() Path {
	if p.buf == nil {
		return Path{text: p.text}
	}
	n := len(p.buf)
	return Path{buf: p.buf[:n:n]}
}

// String returns the text of the path.
func (p Path) String() string {
	if p.buf != nil {
		return string(p.buf)
	}
	return p.text
}

// Len returns the length of the path in bytes.
func (p Path) Len() int {
	if p.buf != nil {
		return len(p.buf)
	}
	return len(p.text)
}

// own makes p the owner of a buffer holding its text,
// with room for n more bytes.
//
// The owner only ever appends past the end of its text, so bytes visible
// through an earlier copy are never overwritten.
func (p *Path) own(n int) {
	if p.buf != nil && p.addr == p {
		return
	}
	var buf []byte
	if p.buf != nil {
		buf = make([]byte, 0, len(p.buf)+n)
		buf = append(buf, p.buf...)
	} else {
		buf = make([]byte, 0, len(p.text)+n)
		buf = append(buf, p.text...)
	}
	p.text, p.buf, p.addr = "", buf, p
}
