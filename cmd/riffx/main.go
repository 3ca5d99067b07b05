package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/ossrs/go-oryx-lib/errors"
	"github.com/ossrs/go-oryx-lib/logger"
	"github.com/spf13/pflag"

	"github.com/irrwahn/riffx/internal/extract"
	"github.com/irrwahn/riffx/internal/riff"
)

const version = "1.0.0"

func main() {
	ctx := logger.WithContext(context.Background())

	if err := run(ctx); err != nil {
		logger.Ef(ctx, "run err %+v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// An optional .env in the working directory provides defaults for
	// the output location and heuristics; flags always win.
	_ = godotenv.Load()

	var (
		outDir      string
		flat        bool
		useLabel    bool
		guessLength bool
		verbose     bool
		jobs        int
		showVersion bool
	)
	pflag.StringVarP(&outDir, "output", "o", envOr("RIFFX_OUTPUT", "output"), "output directory")
	pflag.BoolVarP(&flat, "flat", "f", false, "flat output layout with per-file name prefixes")
	pflag.BoolVarP(&useLabel, "label", "l", false, "name streams from embedded labl chunks")
	pflag.BoolVarP(&guessLength, "guess-length", "g", false, "size streams by marker gaps instead of declared sizes")
	pflag.BoolVarP(&verbose, "verbose", "v", false, "log each extracted entry")
	pflag.IntVarP(&jobs, "jobs", "j", envInt("RIFFX_JOBS"), "concurrent input files (0 = one per CPU core)")
	pflag.BoolVar(&showVersion, "version", false, "print version and quit")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] infile...\n", os.Args[0])
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if showVersion {
		fmt.Println(version)
		return nil
	}

	paths := pflag.Args()
	if len(paths) == 0 {
		pflag.Usage()
		return errors.New("no input files")
	}

	ext := extract.NewExtractor(extract.Options{
		OutDir:      outDir,
		Flat:        flat,
		UseLabel:    useLabel,
		GuessLength: guessLength,
		Verbose:     verbose,
		Jobs:        jobs,
		Labels: riff.LabelBounds{
			Min: envInt("RIFFX_LABEL_MIN"),
			Max: envInt("RIFFX_LABEL_MAX"),
		},
	})

	res := ext.ExtractAll(ctx, paths)
	if res.Failed > 0 {
		return errors.Errorf("failed to write %v of %v streams", res.Failed, res.Streams)
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return 0
	}
	return n
}
