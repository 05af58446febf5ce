package scanner

// FileWordCount is one scanned file and its whole-file word count.
type FileWordCount struct {
	Path  string
	Words int
}

// WordCountStats aggregates word counts split by a frontmatter tag. Word
// counts here exclude the frontmatter block itself.
type WordCountStats struct {
	TaggedFiles uint64
	TaggedWords uint64
	TotalFiles  uint64
	TotalWords  uint64
}

// Percentage returns the share of words living in tagged files.
func (s WordCountStats) Percentage() float64 {
	if s.TotalWords == 0 {
		return 0
	}
	return float64(s.TaggedWords) / float64(s.TotalWords) * 100
}

// TagStats counts files carrying a frontmatter tag.
type TagStats struct {
	TotalFiles   uint64
	FilesWithTag uint64
}

// Percentage returns the share of files carrying the tag.
func (s TagStats) Percentage() float64 {
	if s.TotalFiles == 0 {
		return 0
	}
	return float64(s.FilesWithTag) / float64(s.TotalFiles) * 100
}

// ComparisonStats counts files carrying a "done" tag versus a "todo" tag.
type ComparisonStats struct {
	TotalFiles uint64
	DoneFiles  uint64
	TodoFiles  uint64
}

// Percentage returns done files as a share of all tagged files.
func (s ComparisonStats) Percentage() float64 {
	tagged := s.DoneFiles + s.TodoFiles
	if tagged == 0 {
		return 0
	}
	return float64(s.DoneFiles) / float64(tagged) * 100
}
