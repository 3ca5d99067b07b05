package extract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/ossrs/go-oryx-lib/errors"
	"github.com/ossrs/go-oryx-lib/logger"

	"github.com/irrwahn/riffx/internal/riff"
)

// Options represents the extraction options.
type Options struct {
	// OutDir is the output root. Defaults to "output".
	OutDir string
	// Flat writes every stream into OutDir directly, prefixing names
	// with the input file's ordinal and basename. Otherwise each input
	// file gets its own directory mirroring its path.
	Flat bool
	// UseLabel names streams from an embedded labl chunk when one
	// qualifies; the zero-padded index is kept either way.
	UseLabel bool
	// GuessLength sizes streams by the gap to the next marker instead of
	// the declared size field.
	GuessLength bool
	// Verbose enables per-entry logging.
	Verbose bool
	// Labels bounds the declared size of acceptable labl chunks.
	// Non-positive fields fall back to the defaults.
	Labels riff.LabelBounds
	// Jobs caps how many input files are processed concurrently.
	// Non-positive means one worker per CPU core.
	Jobs int
}

// Result aggregates stream outcomes for one input file or a whole batch.
type Result struct {
	Files   int
	Streams int
	Written int
	Failed  int
}

func (r *Result) add(o Result) {
	r.Files += o.Files
	r.Streams += o.Streams
	r.Written += o.Written
	r.Failed += o.Failed
}

// Extractor splits embedded RIFF/RIFX streams out of arbitrary input
// files and writes each one to its own output file, byte-identical to
// the source segment.
type Extractor struct {
	opts Options
}

// NewExtractor creates a new extractor.
func NewExtractor(opts Options) *Extractor {
	if opts.OutDir == "" {
		opts.OutDir = "output"
	}
	def := riff.DefaultLabelBounds()
	if opts.Labels.Min <= 0 {
		opts.Labels.Min = def.Min
	}
	if opts.Labels.Max <= 0 {
		opts.Labels.Max = def.Max
	}
	if opts.Jobs <= 0 {
		opts.Jobs = runtime.NumCPU()
	}
	return &Extractor{opts: opts}
}

// ExtractFile scans one input file and writes every located stream.
// ordinal is the 1-based position of the file within the batch, used by
// the flat naming scheme. A stream that fails to write is counted and
// logged, and extraction continues with the next stream.
func (e *Extractor) ExtractFile(ctx context.Context, path string, ordinal int) (Result, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return Result{}, errors.Wrapf(err, "read %v", path)
	}

	prefix, err := e.outputPrefix(path, ordinal)
	if err != nil {
		return Result{}, err
	}

	res := Result{Files: 1}
	sc := riff.NewScanner(buf, riff.ScanOptions{GuessLength: e.opts.GuessLength})
	for id := 0; ; id++ {
		seg, ok := sc.Next()
		if !ok {
			break
		}
		res.Streams++

		data := buf[seg.Start : seg.Start+seg.Length]
		name := e.streamName(prefix, id, data, seg.Order)
		if err := os.WriteFile(name, data, 0644); err != nil {
			res.Failed++
			logger.Ef(ctx, "create %v err %+v", name, err)
			continue
		}
		res.Written++
		if e.opts.Verbose {
			logger.Tf(ctx, "entry %v: %v bytes to %v", id, seg.Length, name)
		}
	}

	logger.Tf(ctx, "dumped %v of %v entries from %v", res.Written, res.Streams, path)
	return res, nil
}

// ExtractAll processes a batch of input files, each on its own worker.
// Files are independent; one unreadable file never stops the batch.
func (e *Extractor) ExtractAll(ctx context.Context, paths []string) Result {
	start := time.Now()

	results := make([]Result, len(paths))
	sem := make(chan struct{}, e.opts.Jobs)
	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			res, err := e.ExtractFile(ctx, path, i+1)
			if err != nil {
				logger.Ef(ctx, "process %v err %+v", path, err)
				return
			}
			results[i] = res
		}(i, path)
	}
	wg.Wait()

	var total Result
	for _, res := range results {
		total.add(res)
	}

	elapsed := time.Since(start)
	logger.Tf(ctx, "extracted %v/%v streams from %v/%v files, duration %.2fs",
		total.Written, total.Streams, total.Files, len(paths), elapsed.Seconds())
	return total
}

// streamName builds the output filename for one stream: the prefix, the
// sanitized label when enabled and found, and the zero-padded stream
// index, with an extension matching the segment's byte order.
func (e *Extractor) streamName(prefix string, id int, data []byte, order riff.ByteOrder) string {
	suffix := ".riff"
	if order == riff.BigEndian {
		suffix = ".rifx"
	}
	if e.opts.UseLabel {
		if label, ok := riff.FindLabel(data, order, e.opts.Labels); ok {
			return fmt.Sprintf("%s%s_%06d%s", prefix, riff.SanitizeLabel(label), id, suffix)
		}
	}
	return fmt.Sprintf("%s%06d%s", prefix, id, suffix)
}

// outputPrefix prepares the output location for one input file. Flat
// layout keys stream files by input ordinal and basename inside OutDir;
// tree layout mirrors the input path, minus its extension, as a
// directory.
func (e *Extractor) outputPrefix(path string, ordinal int) (string, error) {
	stem := strings.TrimSuffix(path, filepath.Ext(path))
	if e.opts.Flat {
		if err := os.MkdirAll(e.opts.OutDir, 0755); err != nil {
			return "", errors.Wrapf(err, "create %v", e.opts.OutDir)
		}
		return filepath.Join(e.opts.OutDir, fmt.Sprintf("%03d_%s_", ordinal, filepath.Base(stem))), nil
	}

	dir := filepath.Join(e.opts.OutDir, stem)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.Wrapf(err, "create %v", dir)
	}
	return dir + string(filepath.Separator), nil
}
