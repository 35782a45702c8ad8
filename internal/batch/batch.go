// Package batch synthesizes many PIDs from one base seed across a pool of
// workers. Item i always starts from randutil.Derive(base, i), so a run is
// reproducible regardless of worker count or scheduling.
package batch

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/zeebo/errs"
	"golang.org/x/sync/errgroup"

	"github.com/lox/pidgen/internal/pid"
	"github.com/lox/pidgen/internal/randutil"
	"github.com/lox/pidgen/internal/runid"
	"github.com/lox/pidgen/internal/statistics"
)

// Error is the class of batch failures: bad options, timeouts and
// cancellation. Synthesis failures keep their pid error class.
var Error = errs.Class("batch")

// attempts per SynthesizeN call between cancellation checks
const chunk = 1 << 12

// Options configures a run
type Options struct {
	Seed        uint64
	Count       int
	Workers     int           // 0 means runtime.NumCPU()
	MaxAttempts int           // per item; 0 means unbounded
	Timeout     time.Duration // 0 means no deadline
	Request     pid.Request

	Clock  quartz.Clock
	Logger *log.Logger

	// OnItem is called from worker goroutines as each item completes and
	// must be safe for concurrent use.
	OnItem func(Item)
}

// Item is one synthesized record
type Item struct {
	Index    int
	Seed     uint64
	PID      uint32
	Gender   pid.Gender
	Ability  uint32
	Shiny    bool
	Attempts int
}

// Report is the result of a completed run
type Report struct {
	ID      string
	Seed    uint64
	Started time.Time
	Elapsed time.Duration
	Request pid.Request
	Items   []Item
	Stats   *statistics.Statistics
}

func (o *Options) normalize() error {
	if o.Count <= 0 {
		return Error.New("count must be positive, got %d", o.Count)
	}
	if o.Workers < 0 {
		return Error.New("workers must not be negative, got %d", o.Workers)
	}
	if o.Workers == 0 {
		o.Workers = runtime.NumCPU()
	}
	if o.Workers > o.Count {
		o.Workers = o.Count
	}
	if o.Clock == nil {
		o.Clock = quartz.NewReal()
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	return nil
}

// Run synthesizes opts.Count items. It fails fast on requests pid.Request.Check
// rejects, and stops on the first item that exhausts MaxAttempts, on timeout,
// or when ctx is cancelled.
func Run(ctx context.Context, opts Options) (*Report, error) {
	if err := opts.normalize(); err != nil {
		return nil, err
	}
	if err := opts.Request.Check(); err != nil {
		return nil, err
	}

	id, err := runid.Generate()
	if err != nil {
		return nil, Error.Wrap(err)
	}

	logger := opts.Logger.WithPrefix("batch").With("run", id)

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	if opts.Timeout > 0 {
		timer := opts.Clock.AfterFunc(opts.Timeout, func() {
			cancel(Error.New("timed out after %s", opts.Timeout))
		})
		defer timer.Stop()
	}

	report := &Report{
		ID:      id,
		Seed:    opts.Seed,
		Started: opts.Clock.Now(),
		Request: opts.Request,
		Items:   make([]Item, opts.Count),
	}

	logger.Info("Starting batch",
		"count", opts.Count,
		"workers", opts.Workers,
		"seed", fmt.Sprintf("%#016x", opts.Seed))

	g, gctx := errgroup.WithContext(ctx)
	for w := range opts.Workers {
		g.Go(func() error {
			for i := w; i < opts.Count; i += opts.Workers {
				item, err := runItem(gctx, opts, i)
				if err != nil {
					return err
				}
				report.Items[i] = item
				if opts.OnItem != nil {
					opts.OnItem(item)
				}
			}
			logger.Debug("Worker finished", "worker", w)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Warn("Batch stopped", "error", err)
		if pid.Unsatisfiable.Has(err) || Error.Has(err) {
			return nil, err
		}
		return nil, Error.Wrap(err)
	}

	report.Elapsed = opts.Clock.Since(report.Started)
	report.Stats = &statistics.Statistics{}
	for _, item := range report.Items {
		report.Stats.Add(statistics.Sample{
			Attempts: item.Attempts,
			Gender:   item.Gender,
			Ability:  item.Ability,
			Shiny:    item.Shiny,
		})
	}

	logger.Info("Batch complete",
		"elapsed", report.Elapsed,
		"meanAttempts", report.Stats.Mean(),
		"shiny", report.Stats.Shiny)

	return report, nil
}

func runItem(ctx context.Context, opts Options, i int) (Item, error) {
	start := randutil.Derive(opts.Seed, uint64(i))
	seed := start

	var rec pid.Record
	attempts, err := synthesize(ctx, &rec, &seed, opts.Request, opts.MaxAttempts)
	if err != nil {
		return Item{}, fmt.Errorf("item %d (seed %#016x): %w", i, start, err)
	}

	return Item{
		Index:    i,
		Seed:     start,
		PID:      rec.PID,
		Gender:   rec.Gender,
		Ability:  pid.AbilitySlot(rec.PID),
		Shiny:    pid.IsShiny(rec.PID, opts.Request.Trainer),
		Attempts: attempts,
	}, nil
}

// synthesize runs pid.SynthesizeN in chunks so a long search still notices
// cancellation. The seed carries over between chunks, so the draws are the
// same as one uninterrupted call.
func synthesize(ctx context.Context, rec *pid.Record, seed *uint64, req pid.Request, limit int) (int, error) {
	total := 0
	for {
		if ctx.Err() != nil {
			return total, context.Cause(ctx)
		}

		n := chunk
		if limit > 0 && limit-total < n {
			n = limit - total
		}

		used, err := pid.SynthesizeN(rec, seed, req, n)
		total += used
		if err == nil {
			return total, nil
		}
		if !pid.Unsatisfiable.Has(err) {
			return total, err
		}
		if limit > 0 && total >= limit {
			return total, pid.Unsatisfiable.New("no candidate after %d attempts", total)
		}
	}
}
