package corpus

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"unicode/utf8"

	"WordFreq/internal/analysis"
	"WordFreq/internal/histogram"
)

var (
	ErrNotFound   = errors.New("file not found")
	ErrUnreadable = errors.New("file unreadable")
	ErrDecode     = errors.New("invalid text encoding")
)

// Maximum line length accepted when scanning a stream.
const maxLineBytes = 1024 * 1024

// FromFile reads the file at path and returns a fresh histogram of its
// words. Errors are tagged with the path and wrap one of ErrNotFound,
// ErrUnreadable, or ErrDecode.
func FromFile(path string) (*histogram.Histogram, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", path, ErrUnreadable)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%s: %w", path, ErrDecode)
	}

	hist := histogram.New()
	sc := analysis.NewScanner(string(data))
	for {
		word, ok := sc.Next()
		if !ok {
			break
		}
		hist.Add(word)
	}
	return hist, nil
}

// FromReader builds a histogram from a stream, scanning line by line so
// the whole input never needs to be held in memory. Used for stdin.
func FromReader(r io.Reader) (*histogram.Histogram, error) {
	hist := histogram.New()

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		line := sc.Text()
		if !utf8.ValidString(line) {
			return nil, ErrDecode
		}
		ws := analysis.NewScanner(line)
		for {
			word, ok := ws.Next()
			if !ok {
				break
			}
			hist.Add(word)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	return hist, nil
}
