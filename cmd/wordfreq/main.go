package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/cheggaaa/pb/v3"

	"WordFreq/internal/corpus"
	"WordFreq/internal/report"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// Exit codes: 1 usage or invalid argument, 2 some files failed, 3 all
// files failed.
const (
	exitUsage     = 1
	exitPartial   = 2
	exitAllFailed = 3
)

func main() {
	count := flag.Int("count", 10, "number of top words to report; ties for last place may add more")
	percentages := flag.Bool("percentages", false, "report frequencies as percentages instead of counts")
	workers := flag.Int("workers", 0, "worker goroutines; 0 means one per CPU")
	output := flag.String("output", "-", "output file; \"-\" means standard output")
	progress := flag.Bool("progress", false, "show a progress bar while processing files")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"usage: %s [flags] file...\n\nReports the most frequent words across the given files.\nUse \"-\" (at most once) to read standard input.\n\nflags:\n",
			os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(getEnv("WORDFREQ_LOG_LEVEL", "info")),
	}))
	slog.SetDefault(logger)

	inputs := flag.Args()
	if len(inputs) == 0 {
		flag.Usage()
		os.Exit(exitUsage)
	}
	if *count < 1 {
		fmt.Fprintf(os.Stderr, "invalid -count %d: must be >= 1\n", *count)
		os.Exit(exitUsage)
	}

	// Split off stdin; it may appear at most once.
	var paths []string
	stdin := 0
	for _, in := range inputs {
		if in == "-" {
			stdin++
			continue
		}
		paths = append(paths, in)
	}
	if stdin > 1 {
		fmt.Fprintln(os.Stderr, `the special file "-" may only be specified once`)
		os.Exit(exitUsage)
	}

	cfg := corpus.DefaultConfig()
	cfg.Workers = *workers
	cfg.Logger = logger

	var bar *pb.ProgressBar
	if *progress && len(paths) > 0 {
		bar = pb.StartNew(len(paths))
		cfg.OnProgress = func(done, total int) {
			bar.SetCurrent(int64(done))
		}
	}

	pool, err := corpus.NewPool(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -workers %d: %v\n", *workers, err)
		os.Exit(exitUsage)
	}

	logger.Info("starting wordfreq",
		"version", Version,
		"files", len(paths),
		"stdin", stdin == 1,
		"workers", pool.Workers(),
	)

	combined, failures := pool.Run(paths)
	if bar != nil {
		bar.Finish()
	}

	if stdin == 1 {
		hist, err := corpus.FromReader(os.Stdin)
		if err != nil {
			logger.Warn("stdin processing failed", "error", err)
			failures = append(failures, corpus.Failure{Path: "-", Err: err})
		} else {
			combined.Merge(hist)
		}
	}

	rep, err := report.TopN(combined, *count)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ranking failed: %v\n", err)
		os.Exit(exitUsage)
	}

	out, closeOut, err := openOutput(*output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot open output: %v\n", err)
		os.Exit(exitUsage)
	}

	mode := report.ModeCounts
	if *percentages {
		mode = report.ModePercent
	}
	if err := rep.Render(out, mode); err != nil {
		fmt.Fprintf(os.Stderr, "cannot write report: %v\n", err)
		closeOut()
		os.Exit(exitUsage)
	}
	closeOut()

	switch {
	case len(failures) == 0:
	case len(failures) == len(inputs):
		os.Exit(exitAllFailed)
	default:
		os.Exit(exitPartial)
	}
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "" || path == "-" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
