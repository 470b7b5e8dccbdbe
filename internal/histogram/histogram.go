package histogram

import "strings"

// Histogram is a word-frequency table. Words are folded to lower case on
// the way in, so "foo" and "FOO" count as one word.
//
// A Histogram is not safe for concurrent mutation. The intended ownership
// model is one histogram per worker, merged by a single owner afterwards.
type Histogram struct {
	words map[string]int
	total int
}

// Entry is one (word, count) pair of a Histogram.
type Entry struct {
	Word  string
	Count int
}

// New creates an empty Histogram.
func New() *Histogram {
	return &Histogram{words: make(map[string]int)}
}

// Add records one occurrence of word.
func (h *Histogram) Add(word string) {
	h.words[strings.ToLower(word)]++
	h.total++
}

// Merge adds every count of other into h. Merge is commutative and
// associative: partial histograms merged in any order yield identical
// final counts, which is what makes per-file parallelism safe.
func (h *Histogram) Merge(other *Histogram) {
	for word, count := range other.words {
		h.words[word] += count
	}
	h.total += other.total
}

// Count returns the count recorded for word, 0 if absent. The same case
// fold as Add applies.
func (h *Histogram) Count(word string) int {
	return h.words[strings.ToLower(word)]
}

// Total returns the total number of occurrences added.
func (h *Histogram) Total() int {
	return h.total
}

// Distinct returns the number of distinct words.
func (h *Histogram) Distinct() int {
	return len(h.words)
}

// Entries returns a snapshot of all (word, count) pairs in no particular
// order.
func (h *Histogram) Entries() []Entry {
	entries := make([]Entry, 0, len(h.words))
	for word, count := range h.words {
		entries = append(entries, Entry{Word: word, Count: count})
	}
	return entries
}
