package ignore

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// globstarToken shields literal "**" from the string rewriting below. The
// NUL bytes cannot appear in a directive line, so restoring it is lossless.
const globstarToken = "\x00globstar\x00"

func protectGlobstar(s string) string {
	return strings.ReplaceAll(s, "**", globstarToken)
}

func restoreGlobstar(s string) string {
	return strings.ReplaceAll(s, globstarToken, "**")
}

// AddPattern compiles one directive line and appends the resulting rules.
// Empty lines and '#' comments are no-ops. On error the set is left
// unchanged.
//
// Directive grammar, applied in order:
//
//	!body      negation (re-include)
//	/body      anchored to the scan root
//	body/      directory: the directory node and everything beneath it
//	a.{b,c}    extension group: one rule per alternative
//
// A bare filename (no separator, no glob metacharacter) compiles to two
// rules: an any-depth path form and a literal filename form. Everything
// else compiles to a single doublestar glob, prefixed with "**/" when it
// carries no separator and no anchor, so it matches at any depth.
func (p *PatternSet) AddPattern(line string) error {
	pat := strings.TrimSpace(line)
	if pat == "" || strings.HasPrefix(pat, "#") {
		return nil
	}

	negated := strings.HasPrefix(pat, "!")
	if negated {
		pat = pat[1:]
	}
	anchored := strings.HasPrefix(pat, "/")
	if anchored {
		pat = pat[1:]
	}
	body := pat

	bare := !strings.ContainsAny(body, `/\*?[`)

	var glob string
	switch {
	case strings.ContainsAny(body, "*?["):
		glob = protectGlobstar(body)
	case strings.HasSuffix(body, "/"):
		// Non-negated covers the directory node and all descendants.
		// Negated re-includes the contents but not the node itself:
		// negating "ignore this directory" should restore its files.
		if negated {
			glob = "**/" + body + "**/*"
		} else {
			glob = "**/" + body + "**"
		}
	case negated || strings.Contains(body, "."):
		glob = body
	case bare:
		glob = body
	default:
		// Separator-carrying name with no extension look: directory
		// shorthand.
		glob = body + "/**"
	}

	if !anchored && !strings.ContainsAny(glob, `/\`) {
		glob = "**/" + glob
	}

	var staged []rule
	var err error
	switch {
	case strings.Contains(glob, "{"):
		staged, err = expandGroup(glob, negated, anchored)
	case strings.Contains(glob, "}"):
		err = &CompileError{Pattern: restoreGlobstar(glob), Reason: "unmatched '}' in extension group"}
	case bare && !anchored:
		// One directive, two rules: the matcher tests a rule against both
		// the full relative path and the final path component, and a single
		// glob cannot express both forms. Anchoring is meaningless for a
		// depth-independent filename, so both rules drop it.
		staged, err = compileAll([]string{"**/" + body, body}, negated, false)
	default:
		staged, err = compileAll([]string{restoreGlobstar(glob)}, negated, anchored)
	}
	if err != nil {
		return err
	}

	p.rules = append(p.rules, staged...)
	return nil
}

// expandGroup splits an extension group on its first "{...}" pair and
// compiles one full pattern per comma-separated alternative.
func expandGroup(glob string, negated, anchored bool) ([]rule, error) {
	prefix, rest, _ := strings.Cut(glob, "{")
	alts, suffix, found := strings.Cut(rest, "}")
	if !found {
		return nil, &CompileError{Pattern: restoreGlobstar(glob), Reason: "unmatched '{' in extension group"}
	}

	globs := make([]string, 0, strings.Count(alts, ",")+1)
	for _, alt := range strings.Split(alts, ",") {
		globs = append(globs, restoreGlobstar(prefix+strings.TrimSpace(alt)+suffix))
	}
	return compileAll(globs, negated, anchored)
}

func compileAll(globs []string, negated, anchored bool) ([]rule, error) {
	rules := make([]rule, 0, len(globs))
	for _, g := range globs {
		if !doublestar.ValidatePattern(g) {
			return nil, &CompileError{Pattern: g, Reason: "invalid glob syntax"}
		}
		rules = append(rules, rule{glob: g, negated: negated, anchored: anchored})
	}
	return rules, nil
}
