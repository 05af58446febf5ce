// Package ignore implements .sweepignore pattern compilation and matching.
//
// A PatternSet is built once per scan root by feeding it directive lines
// (directly via AddPattern, or from the nearest .sweepignore file via Load)
// and is immutable afterwards: Matches never mutates state, so a single set
// may be shared by any number of concurrent walkers.
package ignore

import "fmt"

// rule is one compiled directive. The glob is always a valid doublestar
// pattern; a directive that fails to compile is never stored.
type rule struct {
	glob     string
	negated  bool
	anchored bool
}

// PatternSet is an ordered collection of compiled ignore rules.
type PatternSet struct {
	rules []rule
}

// NewPatternSet returns an empty set that matches nothing.
func NewPatternSet() *PatternSet {
	return &PatternSet{}
}

// Len returns the number of compiled rules. A single directive may compile
// to more than one rule (bare filenames, extension groups).
func (p *PatternSet) Len() int {
	return len(p.rules)
}

// HasNegations reports whether any compiled rule is a re-include ("!")
// rule. Walkers use this to decide whether a matched directory may be
// pruned wholesale or must still be descended into.
func (p *PatternSet) HasNegations() bool {
	for _, r := range p.rules {
		if r.negated {
			return true
		}
	}
	return false
}

// CompileError reports a directive that could not be compiled: invalid glob
// syntax or a malformed extension group. The offending pattern is reported
// in its user-visible form.
type CompileError struct {
	Pattern string
	Reason  string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compile ignore pattern %q: %s", e.Pattern, e.Reason)
}

// LoadError reports a .sweepignore file that exists but could not be read.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("read ignore file %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
