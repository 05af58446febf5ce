package ignore

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Matches reports whether the given root-relative path is ignored.
//
// Evaluation is two-pass: all negation rules first, then all normal rules,
// each in insertion order. A matching negation rule short-circuits to "not
// ignored" before any normal rule is consulted, so a re-include always wins
// over a conflicting ignore regardless of line order in the ignore file.
func (p *PatternSet) Matches(path string) bool {
	full := strings.TrimPrefix(filepath.ToSlash(path), "./")
	name := full
	if i := strings.LastIndexByte(full, '/'); i >= 0 {
		name = full[i+1:]
	}

	for _, r := range p.rules {
		if r.negated && r.applies(full) && r.match(full, name) {
			return false
		}
	}
	for _, r := range p.rules {
		if !r.negated && r.applies(full) && r.match(full, name) {
			return true
		}
	}
	return false
}

// applies reports whether the rule participates for this candidate. A simple
// anchored rule (no separator in its glob) only ever matches root-level
// entries, so it is skipped whenever the candidate sits in a subdirectory.
func (r rule) applies(full string) bool {
	if r.anchored && !strings.Contains(r.glob, "/") && strings.Contains(full, "/") {
		return false
	}
	return true
}

// match tests the glob against the full relative path and the bare filename.
// The glob was validated at compile time, so matching cannot fail.
func (r rule) match(full, name string) bool {
	return doublestar.MatchUnvalidated(r.glob, full) || doublestar.MatchUnvalidated(r.glob, name)
}
