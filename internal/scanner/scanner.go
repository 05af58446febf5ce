// Package scanner walks a markdown vault and computes word and tag
// statistics over the files that survive ignore filtering.
package scanner

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
	"github.com/spf13/afero"

	"github.com/notesweep/notesweep/internal/ignore"
	"github.com/notesweep/notesweep/internal/logging"
)

// Scanner walks one vault root. It is single-shot state: build one per
// command invocation and run one operation on it.
type Scanner struct {
	fs          afero.Fs
	root        string
	excludeDirs []string
	patterns    *ignore.PatternSet
	log         *slog.Logger
}

// New resolves dir to an absolute root and loads the nearest ignore file at
// or above it. excludeDirs are directory names pruned unconditionally.
func New(fsys afero.Fs, dir string, excludeDirs []string) (*Scanner, error) {
	root := dir
	if !filepath.IsAbs(root) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolve scan root: %w", err)
		}
		root = filepath.Join(cwd, root)
	}
	root = filepath.Clean(root)

	patterns, err := ignore.Load(fsys, root)
	if err != nil {
		return nil, fmt.Errorf("load ignore patterns: %w", err)
	}

	return &Scanner{
		fs:          fsys,
		root:        root,
		excludeDirs: excludeDirs,
		patterns:    patterns,
		log:         logging.Sub("scanner"),
	}, nil
}

// Root returns the absolute scan root.
func (s *Scanner) Root() string {
	return s.root
}

// walkFiles visits every scannable file under the root, calling visit with
// the root-relative slash path and the file content. Hidden entries,
// excluded directories, ignore-matched paths, unreadable files and files
// that are not valid UTF-8 are all skipped.
func (s *Scanner) walkFiles(visit func(rel, content string)) error {
	return afero.Walk(s.fs, s.root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			s.log.Warn("walk error", "path", path, "err", err)
			return err
		}
		if path == s.root {
			return nil
		}

		name := info.Name()
		if strings.HasPrefix(name, ".") {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if info.IsDir() && lo.Contains(s.excludeDirs, name) {
			return filepath.SkipDir
		}

		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			return fmt.Errorf("relativize %s: %w", path, err)
		}
		rel = filepath.ToSlash(rel)

		if s.patterns.Matches(rel) {
			// A matched directory can only be pruned when no re-include
			// rule could bring back something underneath it.
			if info.IsDir() && !s.patterns.HasNegations() {
				return filepath.SkipDir
			}
			return nil
		}
		if info.IsDir() || !info.Mode().IsRegular() {
			return nil
		}

		data, err := afero.ReadFile(s.fs, path)
		if err != nil {
			s.log.Debug("skipping unreadable file", "path", rel, "err", err)
			return nil
		}
		if !utf8.Valid(data) {
			s.log.Debug("skipping non-utf8 file", "path", rel)
			return nil
		}

		visit(rel, string(data))
		return nil
	})
}

// CountFiles returns the number of scannable files under the root.
func (s *Scanner) CountFiles() (uint64, error) {
	var n uint64
	if err := s.walkFiles(func(string, string) { n++ }); err != nil {
		return 0, err
	}
	s.log.Debug("counted files", "root", s.root, "files", n)
	return n, nil
}
