package pathuri

import (
	"strings"

	"github.com/hashicorp/go-multierror"
)

// A Rule rewrites paths that start with Prefix into URIs that start with
// Target. The remainder of the path is appended to Target unchanged.
type Rule struct {
	Prefix string `toml:"prefix" yaml:"prefix"`
	Target string `toml:"target" yaml:"target"`
}

// Validate reports whether r can be applied.
// Both Prefix and Target must be set.
func (r Rule) Validate() error {
	if r.Prefix == "" || r.Target == "" {
		return ErrInvalidRule
	}
	return nil
}

// Rules is an ordered list of rewrite rules.
// The first rule whose Prefix matches a path is used.
type Rules []Rule

// DefaultRules are the rules used by [Path.URI].
//
// Paths under /rustc/ point into the standard library sources bundled with
// the Rust compiler. They are mapped to the rust-lang/rust repository.
var DefaultRules = Rules{{
	Prefix: "/rustc/",
	Target: "https://raw.githubusercontent.com/rust-lang/rust/",
}}

// URI returns p as a URI.
//
// If a rule matches, its Target replaces the matched prefix. Otherwise
// Unix-style paths become file://<path> and Windows-style paths become
// file:///<path>. Nothing is percent-encoded.
func (rs Rules) URI(p Path) string {
	s := p.String()
	for _, r := range rs {
		if rest, ok := strings.CutPrefix(s, r.Prefix); ok {
			return r.Target + rest
		}
	}
	if strings.HasPrefix(s, "/") {
		return "file://" + s
	}
	return "file:///" + s
}

// Validate checks every rule in rs.
// All invalid rules are reported, each as a [*RuleError].
func (rs Rules) Validate() error {
	var merr *multierror.Error
	for i, r := range rs {
		if err := r.Validate(); err != nil {
			merr = multierror.Append(merr,
				&RuleError{Index: i, Rule: r, Err: err})
		}
	}
	return merr.ErrorOrNil()
}

// URI returns p as a URI using [DefaultRules].
func (p Path) URI() string {
	return DefaultRules.URI(p)
}
