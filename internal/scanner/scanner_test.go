package scanner

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notesweep/notesweep/internal/ignore"
)

func writeFile(t *testing.T, fsys afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, afero.WriteFile(fsys, path, []byte(content), 0o644))
}

// setupVault builds the standard test vault: three plain files, one tagged
// file and one hidden file.
func setupVault(t *testing.T) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/vault/file1.md", "This is file one")
	writeFile(t, fsys, "/vault/file2.md", "This file has seven words in it")
	writeFile(t, fsys, "/vault/nested/file3.md", "Nested file content")
	writeFile(t, fsys, "/vault/tagged.md", "---\ntags:\n  - test\n  - draft\n---\nTagged body here\n")
	writeFile(t, fsys, "/vault/.hidden.md", "should never be scanned")
	return fsys
}

func newScanner(t *testing.T, fsys afero.Fs, excludeDirs ...string) *Scanner {
	t.Helper()
	s, err := New(fsys, "/vault", excludeDirs)
	require.NoError(t, err)
	return s
}

func TestCountFiles_SkipsHidden(t *testing.T) {
	s := newScanner(t, setupVault(t))

	n, err := s.CountFiles()
	require.NoError(t, err)

	assert.Equal(t, uint64(4), n)
}

func TestCountFiles_SkipsHiddenDirectories(t *testing.T) {
	fsys := setupVault(t)
	writeFile(t, fsys, "/vault/.obsidian/workspace.json", "{}")

	n, err := newScanner(t, fsys).CountFiles()
	require.NoError(t, err)

	assert.Equal(t, uint64(4), n)
}

func TestCountFiles_RespectsExcludeDirs(t *testing.T) {
	s := newScanner(t, setupVault(t), "nested")

	n, err := s.CountFiles()
	require.NoError(t, err)

	assert.Equal(t, uint64(3), n)
}

func TestCountFiles_RespectsIgnoreFile(t *testing.T) {
	fsys := setupVault(t)
	writeFile(t, fsys, "/vault/"+ignore.FileName, "nested/\n")

	n, err := newScanner(t, fsys).CountFiles()
	require.NoError(t, err)

	assert.Equal(t, uint64(3), n)
}

func TestCountFiles_IgnoreFileFromAncestor(t *testing.T) {
	fsys := setupVault(t)
	writeFile(t, fsys, "/"+ignore.FileName, "tagged.md\n")

	n, err := newScanner(t, fsys).CountFiles()
	require.NoError(t, err)

	assert.Equal(t, uint64(3), n)
}

func TestCountFiles_NegationDescendsMatchedDirectory(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/vault/keep.md", "kept")
	writeFile(t, fsys, "/vault/draft/x.md", "dropped")
	writeFile(t, fsys, "/vault/draft/important.md", "kept anyway")
	writeFile(t, fsys, "/vault/"+ignore.FileName, "draft/\n!draft/important.md\n")

	n, err := newScanner(t, fsys).CountFiles()
	require.NoError(t, err)

	assert.Equal(t, uint64(2), n)
}

func TestCountFiles_SkipsNonUTF8(t *testing.T) {
	fsys := setupVault(t)
	require.NoError(t, afero.WriteFile(fsys, "/vault/blob.md", []byte{0xff, 0xfe, 0x00, 0x41}, 0o644))

	n, err := newScanner(t, fsys).CountFiles()
	require.NoError(t, err)

	assert.Equal(t, uint64(4), n)
}

func TestCountWords_SortedDescending(t *testing.T) {
	s := newScanner(t, setupVault(t))

	files, err := s.CountWords("")
	require.NoError(t, err)

	require.Len(t, files, 4)
	for i := 1; i < len(files); i++ {
		assert.GreaterOrEqual(t, files[i-1].Words, files[i].Words)
	}
	// Whole-file counts include frontmatter tokens, so tagged.md leads.
	assert.Equal(t, "tagged.md", files[0].Path)
	assert.Equal(t, "file2.md", files[1].Path)
	assert.Equal(t, 7, files[1].Words)
}

func TestCountWords_FilterTagExcludesTaggedFiles(t *testing.T) {
	s := newScanner(t, setupVault(t))

	files, err := s.CountWords("draft")
	require.NoError(t, err)

	require.Len(t, files, 3)
	for _, f := range files {
		assert.NotEqual(t, "tagged.md", f.Path)
	}
}

func TestCountWords_PathsAreRootRelative(t *testing.T) {
	s := newScanner(t, setupVault(t))

	files, err := s.CountWords("")
	require.NoError(t, err)

	paths := make([]string, 0, len(files))
	for _, f := range files {
		paths = append(paths, f.Path)
	}
	assert.Contains(t, paths, "nested/file3.md")
}

func TestWordStats_SplitsByTag(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/vault/a.md", "one two three four five")
	writeFile(t, fsys, "/vault/b.md", "one two three four five")
	writeFile(t, fsys, "/vault/t.md",
		"---\ntags:\n  - wip\n---\none two three four five six seven eight nine ten eleven\n")

	stats, err := newScanner(t, fsys).WordStats("wip")
	require.NoError(t, err)

	assert.Equal(t, uint64(3), stats.TotalFiles)
	assert.Equal(t, uint64(21), stats.TotalWords)
	assert.Equal(t, uint64(1), stats.TaggedFiles)
	assert.Equal(t, uint64(11), stats.TaggedWords)
	assert.InDelta(t, 52.38, stats.Percentage(), 0.01)
}

func TestWordStats_FrontmatterExcludedFromBodyCount(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/vault/t.md", "---\ntags:\n  - wip\n---\nexactly three words\n")

	stats, err := newScanner(t, fsys).WordStats("wip")
	require.NoError(t, err)

	assert.Equal(t, uint64(3), stats.TotalWords)
	assert.Equal(t, uint64(3), stats.TaggedWords)
}

func TestWordStats_EmptyVault(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/vault", 0o755))

	stats, err := newScanner(t, fsys).WordStats("wip")
	require.NoError(t, err)

	assert.Zero(t, stats.TotalFiles)
	assert.Zero(t, stats.Percentage())
}

func TestTagStats(t *testing.T) {
	s := newScanner(t, setupVault(t))

	stats, err := s.TagStats("draft")
	require.NoError(t, err)

	assert.Equal(t, uint64(4), stats.TotalFiles)
	assert.Equal(t, uint64(1), stats.FilesWithTag)
	assert.InDelta(t, 25.0, stats.Percentage(), 0.01)
}

func TestTagStats_UnknownTag(t *testing.T) {
	s := newScanner(t, setupVault(t))

	stats, err := s.TagStats("missing")
	require.NoError(t, err)

	assert.Zero(t, stats.FilesWithTag)
	assert.Zero(t, stats.Percentage())
}

func TestOnlyTagStats(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/vault/solo.md", "---\ntags:\n  - draft\n---\nBody.\n")
	writeFile(t, fsys, "/vault/multi.md", "---\ntags:\n  - draft\n  - wip\n---\nBody.\n")
	writeFile(t, fsys, "/vault/plain.md", "Body.\n")

	stats, matched, err := newScanner(t, fsys).OnlyTagStats("draft")
	require.NoError(t, err)

	assert.Equal(t, uint64(3), stats.TotalFiles)
	assert.Equal(t, uint64(1), stats.FilesWithTag)
	assert.Equal(t, []string{"solo.md"}, matched)
}

func TestCompare(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/vault/done1.md", "---\ntags: [done]\n---\nBody.\n")
	writeFile(t, fsys, "/vault/done2.md", "---\ntags: [done]\n---\nBody.\n")
	writeFile(t, fsys, "/vault/todo1.md", "---\ntags: [todo]\n---\nBody.\n")
	writeFile(t, fsys, "/vault/plain.md", "Body.\n")

	stats, err := newScanner(t, fsys).Compare("done", "todo")
	require.NoError(t, err)

	assert.Equal(t, uint64(4), stats.TotalFiles)
	assert.Equal(t, uint64(2), stats.DoneFiles)
	assert.Equal(t, uint64(1), stats.TodoFiles)
	assert.InDelta(t, 66.67, stats.Percentage(), 0.01)
}

func TestCompare_NoTaggedFiles(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/vault/plain.md", "Body.\n")

	stats, err := newScanner(t, fsys).Compare("done", "todo")
	require.NoError(t, err)

	assert.Zero(t, stats.Percentage())
}

func TestNew_PropagatesIgnoreCompileError(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/vault/"+ignore.FileName, "*.{js,ts\n")

	_, err := New(fsys, "/vault", nil)

	var cerr *ignore.CompileError
	require.ErrorAs(t, err, &cerr)
}
