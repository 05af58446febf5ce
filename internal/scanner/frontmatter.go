package scanner

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// Frontmatter is the YAML block delimited by "---" lines at the top of a
// markdown file. Only the tag list matters to the scanner.
type Frontmatter struct {
	Tags []string `yaml:"tags"`
}

// HasTag reports whether the tag list contains tag.
func (f Frontmatter) HasTag(tag string) bool {
	return lo.Contains(f.Tags, tag)
}

// HasOnlyTag reports whether tag is the one and only tag.
func (f Frontmatter) HasOnlyTag(tag string) bool {
	return len(f.Tags) == 1 && f.Tags[0] == tag
}

// ParseFrontmatter extracts and decodes the frontmatter block. A file whose
// first line is not "---" has no frontmatter, which is not an error; a block
// that fails to decode is.
func ParseFrontmatter(content string) (Frontmatter, error) {
	lines := splitLines(content)
	if len(lines) == 0 || lines[0] != "---" {
		return Frontmatter{}, nil
	}

	var block strings.Builder
	for _, line := range lines[1:] {
		if line == "---" {
			break
		}
		block.WriteString(line)
		block.WriteByte('\n')
	}

	var fm Frontmatter
	if err := yaml.Unmarshal([]byte(block.String()), &fm); err != nil {
		return Frontmatter{}, fmt.Errorf("parse frontmatter: %w", err)
	}
	return fm, nil
}

// StripFrontmatter returns the content with its frontmatter block removed.
// Content without a well-formed block is returned unchanged.
func StripFrontmatter(content string) string {
	lines := splitLines(content)
	if len(lines) <= 2 || lines[0] != "---" {
		return content
	}
	for i, line := range lines[1:] {
		if line == "---" {
			return strings.Join(lines[i+2:], "\n")
		}
	}
	return content
}

func splitLines(content string) []string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
