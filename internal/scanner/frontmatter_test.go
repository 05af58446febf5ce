package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFrontmatter_BlockList(t *testing.T) {
	content := "---\ntags:\n  - test\n  - draft\n---\n# Heading\n\nBody text.\n"

	fm, err := ParseFrontmatter(content)
	require.NoError(t, err)

	assert.Equal(t, []string{"test", "draft"}, fm.Tags)
	assert.True(t, fm.HasTag("draft"))
	assert.False(t, fm.HasTag("done"))
}

func TestParseFrontmatter_InlineList(t *testing.T) {
	content := "---\ntags: [wip, notes]\n---\nBody.\n"

	fm, err := ParseFrontmatter(content)
	require.NoError(t, err)

	assert.Equal(t, []string{"wip", "notes"}, fm.Tags)
}

func TestParseFrontmatter_NoBlock(t *testing.T) {
	fm, err := ParseFrontmatter("# Just a heading\n\ntags: [nope]\n")
	require.NoError(t, err)

	assert.Empty(t, fm.Tags)
}

func TestParseFrontmatter_EmptyContent(t *testing.T) {
	fm, err := ParseFrontmatter("")
	require.NoError(t, err)

	assert.Empty(t, fm.Tags)
}

func TestParseFrontmatter_InvalidYAML(t *testing.T) {
	content := "---\ntags: [unclosed\n  bad: : :\n---\nBody.\n"

	_, err := ParseFrontmatter(content)

	require.Error(t, err)
}

func TestParseFrontmatter_CRLF(t *testing.T) {
	content := "---\r\ntags:\r\n  - test\r\n---\r\nBody.\r\n"

	fm, err := ParseFrontmatter(content)
	require.NoError(t, err)

	assert.Equal(t, []string{"test"}, fm.Tags)
}

func TestHasOnlyTag(t *testing.T) {
	single := Frontmatter{Tags: []string{"draft"}}
	multi := Frontmatter{Tags: []string{"draft", "wip"}}

	assert.True(t, single.HasOnlyTag("draft"))
	assert.False(t, single.HasOnlyTag("wip"))
	assert.False(t, multi.HasOnlyTag("draft"))
}

func TestStripFrontmatter(t *testing.T) {
	content := "---\ntags:\n  - test\n---\none two three\n"

	assert.Equal(t, "one two three\n", StripFrontmatter(content))
}

func TestStripFrontmatter_NoBlockUnchanged(t *testing.T) {
	content := "one two three\n"

	assert.Equal(t, content, StripFrontmatter(content))
}

func TestStripFrontmatter_UnclosedBlockUnchanged(t *testing.T) {
	content := "---\ntags:\n  - test\nno closing fence\n"

	assert.Equal(t, content, StripFrontmatter(content))
}
