package report

import (
	"errors"
	"fmt"
	"sort"

	"WordFreq/internal/histogram"
)

var ErrInvalidCount = errors.New("top count must be >= 1")

// RankedEntry is one word of a Report with its count and its share of
// the total, as a percentage.
type RankedEntry struct {
	Word    string
	Count   int
	Percent float64
}

// Report is the ranked outcome of a run: the top words plus corpus-wide
// totals. Entries are ordered by count descending, ties broken by word
// ascending.
type Report struct {
	Entries       []RankedEntry
	TotalWords    int
	DistinctWords int
}

// TopN ranks h and returns at least the first n entries. If the entry at
// rank n ties with entries after it, all tied entries are included, so
// the result may be longer than n — never shorter, unless h has fewer
// than n distinct words, in which case every word is returned.
//
// n < 1 is ErrInvalidCount. An empty histogram yields an empty Report
// and no error.
func TopN(h *histogram.Histogram, n int) (*Report, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}

	rep := &Report{
		TotalWords:    h.Total(),
		DistinctWords: h.Distinct(),
	}
	if rep.TotalWords == 0 {
		return rep, nil
	}

	entries := h.Entries()
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Word < entries[j].Word
	})

	cut := len(entries)
	if n < cut {
		// Extend through the tie at last place, if any.
		cut = n
		last := entries[n-1].Count
		for cut < len(entries) && entries[cut].Count == last {
			cut++
		}
	}

	total := float64(rep.TotalWords)
	rep.Entries = make([]RankedEntry, 0, cut)
	for _, e := range entries[:cut] {
		rep.Entries = append(rep.Entries, RankedEntry{
			Word:    e.Word,
			Count:   e.Count,
			Percent: float64(e.Count) * 100 / total,
		})
	}
	return rep, nil
}
