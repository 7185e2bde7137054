package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/brimdata/tagscan"
	"github.com/brimdata/tagscan/pkg/storage"
	"github.com/brimdata/tagscan/runner"
	"go.uber.org/zap"
)

var (
	element     = flag.String("e", "", "element name whose <name>...</name> records are extracted")
	parallelism = flag.Int("j", runtime.GOMAXPROCS(0), "number of concurrent bundle scans")
	bundleSize  = flag.Int64("b", runner.DefaultMinBundleSize, "minimum bundle size in bytes")
	verbose     = flag.Bool("v", false, "log per-bundle progress to stderr")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "tagscan: %s\n", err)
		os.Exit(1)
	}
}

type recordWriter struct {
	w *bufio.Writer
}

func (r *recordWriter) Write(rec tagscan.Record) error {
	_, err := r.w.WriteString(rec.Text)
	return err
}

func run() error {
	if *element == "" {
		return errors.New("element name required (-e)")
	}
	if flag.NArg() != 1 {
		return errors.New("exactly one input required (a file path or stdio:stdin)")
	}
	u, err := storage.ParseURI(flag.Arg(0))
	if err != nil {
		return err
	}
	logger := zap.NewNop()
	if *verbose {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer logger.Sync()
	}
	r := runner.New(storage.NewEngine(), *element, runner.Opts{
		MinBundleSize: *bundleSize,
		Parallelism:   *parallelism,
		Logger:        logger,
	})
	out := &recordWriter{bufio.NewWriter(os.Stdout)}
	progress, err := r.Run(context.Background(), u, out)
	if err != nil {
		return err
	}
	if err := out.w.Flush(); err != nil {
		return err
	}
	logger.Info("done",
		zap.Int64("records", progress.RecordsEmitted),
		zap.Int64("bytes_scanned", progress.BytesScanned))
	return nil
}
