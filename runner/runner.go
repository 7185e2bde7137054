// Package runner executes a parallel tag scan over one input: it computes
// the input's bundles, runs one scanner.Source per bundle on its own
// goroutine, and delivers the extracted records downstream in bundle order.
// It plays the scheduler role that a data-processing framework would
// otherwise play, including exposing the live range trackers so a
// controller can narrow a straggler's range while its scan is in flight.
package runner

import (
	"context"
	"math"
	"runtime"
	"sync"

	"github.com/brimdata/tagscan"
	"github.com/brimdata/tagscan/cursor"
	"github.com/brimdata/tagscan/pkg/storage"
	"github.com/brimdata/tagscan/scanner"
	"github.com/brimdata/tagscan/split"
	"github.com/brimdata/tagscan/tracker"
	"github.com/segmentio/ksuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultMinBundleSize matches the common splittable-source default of 64MB.
const DefaultMinBundleSize = 64 * 1024 * 1024

type Opts struct {
	// MinBundleSize is the smallest byte range assigned to one scan.
	// Zero means DefaultMinBundleSize.
	MinBundleSize int64
	// Parallelism bounds the number of concurrently running scans.
	// Zero means GOMAXPROCS.
	Parallelism int
	Logger      *zap.Logger
}

type Runner struct {
	engine        storage.Engine
	element       string
	minBundleSize int64
	parallelism   int
	logger        *zap.Logger

	mu       sync.Mutex
	trackers []*tracker.Tracker
}

func New(engine storage.Engine, element string, opts Opts) *Runner {
	if opts.MinBundleSize <= 0 {
		opts.MinBundleSize = DefaultMinBundleSize
	}
	if opts.Parallelism <= 0 {
		opts.Parallelism = runtime.GOMAXPROCS(0)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Runner{
		engine:        engine,
		element:       element,
		minBundleSize: opts.MinBundleSize,
		parallelism:   opts.Parallelism,
		logger:        opts.Logger,
	}
}

// Trackers returns the live trackers of an in-progress Run in bundle order.
// A controller may Narrow or TrySplitAt them concurrently with the run.
func (r *Runner) Trackers() []*tracker.Tracker {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.trackers
}

// Run scans u for records of the runner's element and writes them to w in
// bundle order, returning the aggregate scan statistics.  Compressed inputs
// are scanned as a single bundle.
func (r *Runner) Run(ctx context.Context, u *storage.URI, w tagscan.Writer) (tagscan.Progress, error) {
	scanID := ksuid.New()
	var progress tagscan.Progress
	spans, err := r.spans(ctx, u)
	if err != nil {
		return progress, err
	}
	trackers := make([]*tracker.Tracker, len(spans))
	for i, span := range spans {
		trackers[i] = tracker.New(span.Start, span.Stop)
	}
	r.mu.Lock()
	r.trackers = trackers
	r.mu.Unlock()
	defer func() {
		r.mu.Lock()
		r.trackers = nil
		r.mu.Unlock()
	}()
	r.logger.Debug("scan starting",
		zap.Stringer("scan_id", scanID),
		zap.Stringer("uri", u),
		zap.Int("bundles", len(spans)))
	results := make([]tagscan.Array, len(spans))
	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(r.parallelism)
	for i, span := range spans {
		group.Go(func() error {
			logger := r.logger.With(
				zap.Stringer("scan_id", scanID),
				zap.Int("bundle", i),
				zap.Int64("start", span.Start),
				zap.Int64("stop", span.Stop))
			err := r.scanBundle(gctx, u, trackers[i], &results[i], &progress)
			if err != nil {
				logger.Error("bundle failed", zap.Error(err))
				return err
			}
			logger.Debug("bundle done", zap.Int("records", len(results[i].Values())))
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return progress.Copy(), err
	}
	for i := range results {
		for _, rec := range results[i].Values() {
			if err := w.Write(rec); err != nil {
				return progress.Copy(), err
			}
		}
	}
	r.logger.Debug("scan complete",
		zap.Stringer("scan_id", scanID),
		zap.Int64("records", progress.Copy().RecordsEmitted))
	return progress.Copy(), nil
}

func (r *Runner) spans(ctx context.Context, u *storage.URI) ([]tracker.Span, error) {
	if !storage.Splittable(u) {
		return []tracker.Span{{Start: 0, Stop: math.MaxInt64}}, nil
	}
	size, err := r.engine.Size(ctx, u)
	if err != nil {
		return nil, err
	}
	return split.Spans(size, r.minBundleSize), nil
}

func (r *Runner) scanBundle(ctx context.Context, u *storage.URI, trk *tracker.Tracker, out *tagscan.Array, progress *tagscan.Progress) error {
	reader, err := r.engine.Get(ctx, u)
	if err != nil {
		return err
	}
	rd, err := storage.Uncompressed(reader, u)
	if err != nil {
		reader.Close()
		return err
	}
	defer rd.Close()
	src, err := scanner.NewSource(cursor.New(rd), trk, r.element)
	if err != nil {
		return err
	}
	err = tagscan.CopyWithContext(ctx, out, src)
	progress.Add(src.Progress())
	return err
}
