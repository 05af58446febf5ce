package scanner

// TagStats counts how many files carry tag in their frontmatter.
func (s *Scanner) TagStats(tag string) (TagStats, error) {
	var stats TagStats
	err := s.walkFiles(func(rel, content string) {
		stats.TotalFiles++
		if fm, err := ParseFrontmatter(content); err == nil && fm.HasTag(tag) {
			stats.FilesWithTag++
		}
	})
	if err != nil {
		return TagStats{}, err
	}
	return stats, nil
}

// OnlyTagStats counts files whose frontmatter carries tag as its single
// tag, and returns their root-relative paths alongside the counts.
func (s *Scanner) OnlyTagStats(tag string) (TagStats, []string, error) {
	var stats TagStats
	var matched []string
	err := s.walkFiles(func(rel, content string) {
		stats.TotalFiles++
		if fm, err := ParseFrontmatter(content); err == nil && fm.HasOnlyTag(tag) {
			stats.FilesWithTag++
			matched = append(matched, rel)
		}
	})
	if err != nil {
		return TagStats{}, nil, err
	}
	return stats, matched, nil
}

// Compare counts files carrying doneTag against files carrying todoTag. A
// file carrying both counts toward both sides.
func (s *Scanner) Compare(doneTag, todoTag string) (ComparisonStats, error) {
	var stats ComparisonStats
	err := s.walkFiles(func(rel, content string) {
		stats.TotalFiles++
		fm, err := ParseFrontmatter(content)
		if err != nil {
			return
		}
		if fm.HasTag(doneTag) {
			stats.DoneFiles++
		}
		if fm.HasTag(todoTag) {
			stats.TodoFiles++
		}
	})
	if err != nil {
		return ComparisonStats{}, err
	}
	return stats, nil
}
