package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ossrs/go-oryx-lib/errors"
	"github.com/ossrs/go-oryx-lib/logger"
	"github.com/spf13/pflag"

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
	var showVersion bool
	pflag.BoolVar(&showVersion, "version", false, "print version and quit")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [file]\nReads stdin when no file is given.\n", os.Args[0])
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if showVersion {
		fmt.Println(version)
		return nil
	}

	name := "-"
	var buf []byte
	var err error
	if pflag.NArg() > 0 {
		name = pflag.Arg(0)
		buf, err = os.ReadFile(name)
		if err != nil {
			return errors.Wrapf(err, "read %v", name)
		}
	} else {
		buf, err = io.ReadAll(os.Stdin)
		if err != nil {
			return errors.Wrapf(err, "read stdin")
		}
	}

	fmt.Printf("File name: %s\n", name)
	fmt.Printf("File size: %d\n", len(buf))

	switch err := riff.Dump(os.Stdout, buf); err {
	case nil:
		return nil
	case riff.ErrTruncated:
		// Partial reports are the point of a forensic dumper; warn and
		// keep the successful exit.
		logger.Wf(ctx, "truncated chunk in %v, report is partial", name)
		return nil
	default:
		return errors.Wrapf(err, "dump %v", name)
	}
}
