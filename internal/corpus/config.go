package corpus

import (
	"log/slog"
	"runtime"
)

// Config configures a Pool.
type Config struct {
	// Workers is the number of worker goroutines. 0 means one per CPU.
	// Negative values are rejected by NewPool.
	Workers int

	// Logger receives a Warn record per failed file. Nil means
	// slog.Default().
	Logger *slog.Logger

	// OnProgress, if set, is called after each file finishes (success or
	// failure) with the number of files completed so far and the total.
	// It is called from the collecting goroutine, never concurrently.
	OnProgress func(done, total int)
}

// DefaultConfig returns a Config with one worker per CPU.
func DefaultConfig() Config {
	return Config{
		Workers: runtime.NumCPU(),
	}
}
