package report

import (
	"fmt"
	"io"
)

// Mode selects how per-word frequency is displayed.
type Mode int

const (
	// ModeCounts displays raw occurrence counts.
	ModeCounts Mode = iota
	// ModePercent displays each word's share of the total, to two
	// decimal places.
	ModePercent
)

// Render writes the report to w in the selected mode: the corpus totals,
// then one line per ranked entry. The header's word count reflects the
// entries actually included, which can exceed the requested top count
// when there was a tie at last place.
func (r *Report) Render(w io.Writer, mode Mode) error {
	if _, err := fmt.Fprintf(w, "Total number of words: %d\n", r.TotalWords); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Total distinct words: %d\n", r.DistinctWords); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\nTop %d word(s):\n", len(r.Entries)); err != nil {
		return err
	}
	for _, e := range r.Entries {
		var err error
		if mode == ModePercent {
			_, err = fmt.Fprintf(w, "    %s: %.2f%%\n", e.Word, e.Percent)
		} else {
			_, err = fmt.Fprintf(w, "    %s: %d\n", e.Word, e.Count)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
