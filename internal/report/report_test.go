package report

import (
	"errors"
	"math"
	"testing"

	"WordFreq/internal/histogram"
)

func fromCounts(counts map[string]int) *histogram.Histogram {
	h := histogram.New()
	for word, count := range counts {
		for i := 0; i < count; i++ {
			h.Add(word)
		}
	}
	return h
}

func entryWords(entries []RankedEntry) []string {
	words := make([]string, len(entries))
	for i, e := range entries {
		words[i] = e.Word
	}
	return words
}

func TestTopN(t *testing.T) {
	tests := []struct {
		name   string
		counts map[string]int
		n      int
		want   []string
	}{
		{
			"simple ranking",
			map[string]int{"a": 3, "b": 1, "c": 2},
			3,
			[]string{"a", "c", "b"},
		},
		{
			"truncates to n",
			map[string]int{"a": 4, "b": 3, "c": 2, "d": 1},
			2,
			[]string{"a", "b"},
		},
		{
			"tie at last place extends the result",
			map[string]int{"a": 3, "b": 2, "c": 2, "d": 1},
			2,
			[]string{"a", "b", "c"},
		},
		{
			"ties break lexicographically ascending",
			map[string]int{"zeta": 2, "beta": 2, "alpha": 2},
			3,
			[]string{"alpha", "beta", "zeta"},
		},
		{
			"n exceeds distinct words",
			map[string]int{"x": 5, "y": 5},
			10,
			[]string{"x", "y"},
		},
		{
			"all tied with tie extension",
			map[string]int{"d": 1, "b": 1, "c": 1, "a": 1},
			2,
			[]string{"a", "b", "c", "d"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep, err := TopN(fromCounts(tt.counts), tt.n)
			if err != nil {
				t.Fatal(err)
			}
			got := entryWords(rep.Entries)
			if len(got) != len(tt.want) {
				t.Fatalf("TopN entries = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("TopN entries = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestTopN_Counts(t *testing.T) {
	rep, err := TopN(fromCounts(map[string]int{"a": 3, "b": 2, "c": 2, "d": 1}), 2)
	if err != nil {
		t.Fatal(err)
	}

	if rep.TotalWords != 8 {
		t.Errorf("TotalWords = %d, want 8", rep.TotalWords)
	}
	if rep.DistinctWords != 4 {
		t.Errorf("DistinctWords = %d, want 4", rep.DistinctWords)
	}
	if len(rep.Entries) != 3 {
		t.Fatalf("len(Entries) = %d, want 3", len(rep.Entries))
	}
	if rep.Entries[0].Count != 3 || rep.Entries[1].Count != 2 || rep.Entries[2].Count != 2 {
		t.Errorf("counts = %d, %d, %d, want 3, 2, 2",
			rep.Entries[0].Count, rep.Entries[1].Count, rep.Entries[2].Count)
	}
}

func TestTopN_InvalidCount(t *testing.T) {
	h := fromCounts(map[string]int{"a": 1})

	for _, n := range []int{0, -1, -100} {
		if _, err := TopN(h, n); !errors.Is(err, ErrInvalidCount) {
			t.Errorf("TopN(h, %d): expected ErrInvalidCount, got: %v", n, err)
		}
	}
}

func TestTopN_EmptyHistogram(t *testing.T) {
	rep, err := TopN(histogram.New(), 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(rep.Entries) != 0 {
		t.Errorf("Entries = %v, want none", rep.Entries)
	}
	if rep.TotalWords != 0 || rep.DistinctWords != 0 {
		t.Errorf("TotalWords=%d DistinctWords=%d, want 0, 0", rep.TotalWords, rep.DistinctWords)
	}
}

func TestTopN_Percentages(t *testing.T) {
	rep, err := TopN(fromCounts(map[string]int{"a": 1, "b": 3}), 2)
	if err != nil {
		t.Fatal(err)
	}

	if len(rep.Entries) != 2 {
		t.Fatalf("len(Entries) = %d, want 2", len(rep.Entries))
	}
	if got := rep.Entries[0].Percent; got != 75 {
		t.Errorf("b percent = %v, want 75", got)
	}
	if got := rep.Entries[1].Percent; got != 25 {
		t.Errorf("a percent = %v, want 25", got)
	}
}

func TestTopN_PercentagesSumTo100(t *testing.T) {
	counts := map[string]int{"a": 7, "b": 11, "c": 2, "d": 5, "e": 1}
	h := fromCounts(counts)

	// Untruncated: n covers every distinct word.
	rep, err := TopN(h, len(counts))
	if err != nil {
		t.Fatal(err)
	}

	var sum float64
	for _, e := range rep.Entries {
		sum += e.Percent
	}
	if math.Abs(sum-100) > 1e-9 {
		t.Errorf("percentages sum to %v, want 100", sum)
	}
}
