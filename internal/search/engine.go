// Package search recovers unknown machine settings by building a fresh
// machine for every candidate and checking whether the decryption contains
// a known plaintext fragment.
package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"bombe/internal/config"
	"bombe/internal/logging"
	"bombe/internal/machine"
)

const (
	// DefaultProgressInterval bounds how often a run logs progress.
	DefaultProgressInterval = 2 * time.Second

	chunkSize     = 256
	ctxCheckEvery = 256
)

var errTrialLimit = errors.New("search: trial limit reached")

// Engine runs settings searches. The zero value searches sequentially
// without a trial limit.
type Engine struct {
	// Workers is the number of concurrent testers; 1 or less is sequential.
	Workers int
	// MaxTrials stops a run after that many candidates; 0 means no limit.
	MaxTrials int64
	// Logger defaults to the "search" component logger.
	Logger *slog.Logger
	// ProgressInterval defaults to DefaultProgressInterval.
	ProgressInterval time.Duration
}

// Run searches the candidate space the task's unknown settings describe.
// Exhaustion, the trial limit and context expiry are reported as outcomes,
// not errors; an error means the task could not be searched at all.
func (e *Engine) Run(ctx context.Context, t *config.Task) (*Result, error) {
	mode, err := SelectMode(t)
	if err != nil {
		return nil, err
	}
	targets := t.Targets()
	if len(targets) == 0 && mode != ModeDirect {
		return nil, fmt.Errorf("%w: %s search", ErrNoCrib, mode)
	}
	space, err := NewSpace(mode, t)
	if err != nil {
		return nil, err
	}

	res := &Result{RunID: uuid.NewString(), Mode: mode, Space: space.Len(), Index: -1}
	logger := e.Logger
	if logger == nil {
		logger = logging.New("search")
	}
	logger = logger.With("run_id", res.RunID, "mode", string(mode))

	interval := e.ProgressInterval
	if interval <= 0 {
		interval = DefaultProgressInterval
	}
	r := &run{
		space:     space,
		baseline:  t.Baseline(),
		code:      t.Code,
		targets:   targets,
		maxTrials: e.MaxTrials,
		logger:    logger,
		progress:  rate.Sometimes{Interval: interval},
	}

	workers := max(e.Workers, 1)
	logger.Info("search started", "candidates", space.Len(), "workers", workers, "max_trials", e.MaxTrials)
	start := time.Now()

	var hit *match
	if workers == 1 {
		hit, err = r.sequential(ctx)
	} else {
		hit, err = r.parallel(ctx, workers)
	}

	res.Elapsed = time.Since(start)
	res.Trials = r.trials.Load()
	switch {
	case err == nil && hit != nil:
		res.Outcome = OutcomeFound
		res.Index = hit.index
		res.Settings = hit.settings
		res.Message = hit.message
		res.Crib = hit.crib
	case err == nil:
		res.Outcome = OutcomeNotFound
	case errors.Is(err, errTrialLimit):
		res.Outcome = OutcomeTrialLimit
	case errors.Is(err, context.DeadlineExceeded):
		res.Outcome = OutcomeTimeout
	case errors.Is(err, context.Canceled):
		res.Outcome = OutcomeCanceled
	default:
		runsTotal.WithLabelValues(string(mode), "error").Inc()
		logger.Error("search failed", "error", err, "trials", res.Trials)
		return nil, err
	}

	trialsTotal.WithLabelValues(string(mode)).Add(float64(res.Trials))
	runsTotal.WithLabelValues(string(mode), string(res.Outcome)).Inc()
	runDuration.WithLabelValues(string(mode)).Observe(res.Elapsed.Seconds())
	logger.Info("search finished", "outcome", string(res.Outcome), "index", res.Index,
		"trials", res.Trials, "elapsed", res.Elapsed.Round(time.Millisecond))
	return res, nil
}

type match struct {
	index    int
	settings machine.Settings
	message  string
	crib     string
}

// run is the state of one search shared by its workers.
type run struct {
	space     Space
	baseline  machine.Settings
	code      string
	targets   []string
	maxTrials int64
	logger    *slog.Logger

	trials   atomic.Int64
	progress rate.Sometimes
}

func (r *run) sequential(ctx context.Context) (*match, error) {
	n := r.space.Len()
	for i := 0; i < n; i++ {
		if i%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		m, err := r.try(i)
		if err != nil || m != nil {
			return m, err
		}
	}
	return nil, nil
}

// parallel hands out chunks of indices in order through an atomic cursor
// and keeps the lowest matching index. Every chunk below that index is
// tested to the end, so the result equals the sequential one.
func (r *run) parallel(ctx context.Context, workers int) (*match, error) {
	n := int64(r.space.Len())
	var cursor, best atomic.Int64
	best.Store(n)

	var mu sync.Mutex
	var found *match

	g, gctx := errgroup.WithContext(ctx)
	for range workers {
		g.Go(func() error {
			for {
				if err := gctx.Err(); err != nil {
					return err
				}
				start := cursor.Add(chunkSize) - chunkSize
				if start >= best.Load() {
					return nil
				}
				end := min(start+chunkSize, n)
				for i := start; i < end && i < best.Load(); i++ {
					m, err := r.try(int(i))
					if err != nil {
						return err
					}
					if m == nil {
						continue
					}
					mu.Lock()
					if found == nil || m.index < found.index {
						found = m
					}
					mu.Unlock()
					lowerTo(&best, i)
					return nil
				}
			}
		})
	}
	err := g.Wait()
	if found != nil {
		return found, nil
	}
	if err != nil && ctx.Err() != nil {
		return nil, ctx.Err()
	}
	return nil, err
}

// try tests candidate i and returns the match, or nil when the candidate is
// skipped or its decryption holds no target.
func (r *run) try(i int) (*match, error) {
	s := r.baseline.Clone()
	if !r.space.Candidate(i, &s) {
		return nil, nil
	}
	if !r.take() {
		return nil, errTrialLimit
	}
	r.progress.Do(func() {
		r.logger.Info("search progress", "index", i, "candidates", r.space.Len(), "trials", r.trials.Load())
	})

	m, err := machine.Build(s)
	if err != nil {
		return nil, fmt.Errorf("build candidate %d: %w", i, err)
	}
	msg, err := m.Encode(r.code)
	if err != nil {
		return nil, fmt.Errorf("decode candidate %d: %w", i, err)
	}
	crib, ok := r.check(msg)
	if !ok {
		return nil, nil
	}
	return &match{index: i, settings: s, message: msg, crib: crib}, nil
}

// take counts one trial against the limit.
func (r *run) take() bool {
	if r.maxTrials <= 0 {
		r.trials.Add(1)
		return true
	}
	if r.trials.Add(1) > r.maxTrials {
		r.trials.Add(-1)
		return false
	}
	return true
}

// check returns the first target contained in msg. With no targets every
// decryption matches.
func (r *run) check(msg string) (string, bool) {
	if len(r.targets) == 0 {
		return "", true
	}
	for _, t := range r.targets {
		if strings.Contains(msg, t) {
			return t, true
		}
	}
	return "", false
}

func lowerTo(v *atomic.Int64, x int64) {
	for {
		cur := v.Load()
		if x >= cur || v.CompareAndSwap(cur, x) {
			return
		}
	}
}
