package scanner

import (
	"sort"
	"strings"
	"unicode"

	"github.com/samber/lo"
)

// WordFrequency is one ranked entry in a word-frequency table.
type WordFrequency struct {
	Word  string
	Count int
}

// WordFrequencies builds a frequency table over content. Words are
// lowercased and stripped of leading and trailing non-letters; interior
// punctuation (apostrophes, hyphens) is kept. Ranking is by count
// descending, ties broken alphabetically.
func WordFrequencies(content string) []WordFrequency {
	counts := make(map[string]int)
	for _, w := range strings.Fields(content) {
		cleaned := strings.ToLower(strings.TrimFunc(w, func(r rune) bool {
			return !unicode.IsLetter(r)
		}))
		if cleaned != "" {
			counts[cleaned]++
		}
	}

	freqs := lo.MapToSlice(counts, func(word string, count int) WordFrequency {
		return WordFrequency{Word: word, Count: count}
	})
	sort.Slice(freqs, func(i, j int) bool {
		if freqs[i].Count != freqs[j].Count {
			return freqs[i].Count > freqs[j].Count
		}
		return freqs[i].Word < freqs[j].Word
	})
	return freqs
}
