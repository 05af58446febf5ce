package ignore

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/notesweep/notesweep/internal/logging"
)

// FileName is the ignore file consumed by Load.
const FileName = ".sweepignore"

// Load builds a PatternSet from the nearest .sweepignore file, searching
// startDir and then each ancestor in turn. The first file found wins; ignore
// files are never merged across levels. A visited set guards against
// symlinked directory cycles. If no ignore file exists anywhere in the
// ancestry, the returned set is empty and matches nothing.
func Load(fsys afero.Fs, startDir string) (*PatternSet, error) {
	l := logging.Sub("ignore")
	ps := NewPatternSet()

	dir := filepath.Clean(startDir)
	visited := make(map[string]struct{})
	for {
		if _, seen := visited[dir]; seen {
			break
		}
		visited[dir] = struct{}{}

		path := filepath.Join(dir, FileName)
		exists, err := afero.Exists(fsys, path)
		if err != nil {
			return nil, &LoadError{Path: path, Err: err}
		}
		if exists {
			data, err := afero.ReadFile(fsys, path)
			if err != nil {
				return nil, &LoadError{Path: path, Err: err}
			}
			for _, line := range strings.Split(string(data), "\n") {
				if err := ps.AddPattern(line); err != nil {
					return nil, err
				}
			}
			l.Debug("ignore file loaded", "path", path, "rules", ps.Len())
			break
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ps, nil
}
