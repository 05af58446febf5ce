package scanner

import (
	"sort"
	"strings"
)

// CountWords returns per-file whole-file word counts, sorted by word count
// descending. Files whose frontmatter carries filterTag are excluded when
// filterTag is non-empty.
func (s *Scanner) CountWords(filterTag string) ([]FileWordCount, error) {
	var files []FileWordCount
	err := s.walkFiles(func(rel, content string) {
		if filterTag != "" {
			if fm, err := ParseFrontmatter(content); err == nil && fm.HasTag(filterTag) {
				return
			}
		}
		files = append(files, FileWordCount{Path: rel, Words: len(strings.Fields(content))})
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(files, func(i, j int) bool {
		return files[i].Words > files[j].Words
	})
	return files, nil
}

// WordStats splits body word counts (frontmatter excluded) between files
// that carry tag and the whole vault. A file whose frontmatter fails to
// parse counts as untagged, with its full content as the body.
func (s *Scanner) WordStats(tag string) (WordCountStats, error) {
	var stats WordCountStats
	err := s.walkFiles(func(rel, content string) {
		body := content
		hasTag := false
		if fm, err := ParseFrontmatter(content); err == nil {
			hasTag = fm.HasTag(tag)
			body = StripFrontmatter(content)
		}

		words := uint64(len(strings.Fields(body)))
		stats.TotalFiles++
		stats.TotalWords += words
		if hasTag {
			stats.TaggedFiles++
			stats.TaggedWords += words
		}
	})
	if err != nil {
		return WordCountStats{}, err
	}
	return stats, nil
}
