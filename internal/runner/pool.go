// Package runner executes one check run: a fixed set of targets fanned out
// to a fixed number of workers, collected into one result per target.
package runner

import (
	"context"
	"runtime/debug"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hamed0406/webcheck/internal/domain"
	"github.com/hamed0406/webcheck/internal/probe"
)

// Reporter receives each result as soon as it is collected. Calls arrive
// from a single goroutine, in completion order.
type Reporter interface {
	Report(domain.CheckResult)
}

type Pool struct {
	Logger   *zap.Logger
	Checker  probe.Checker
	Reporter Reporter
	Workers  int
}

func NewPool(logger *zap.Logger, checker probe.Checker, reporter Reporter, workers int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{
		Logger:   logger,
		Checker:  checker,
		Reporter: reporter,
		Workers:  workers,
	}
}

// Run checks every target and blocks until all workers have finished.
// The returned slice holds exactly one result per dispatched target, in
// completion order. A nil Reporter disables live output.
//
// Targets that cannot be handed to a worker because ctx was cancelled are
// logged and left out of the result set; they are never silently dropped.
func (p *Pool) Run(ctx context.Context, targets []domain.Target) []domain.CheckResult {
	results := make([]domain.CheckResult, 0, len(targets))
	if len(targets) == 0 {
		return results
	}

	jobs := make(chan domain.Target)
	// buffered so reporting can never stall a worker
	out := make(chan domain.CheckResult, len(targets))

	var wg sync.WaitGroup
	for i := 0; i < p.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range jobs {
				out <- p.checkOne(ctx, t)
			}
		}()
	}

	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for r := range out {
			if p.Reporter != nil {
				p.Reporter.Report(r)
			}
			results = append(results, r)
		}
	}()

	for _, t := range targets {
		if ctx.Err() != nil {
			p.Logger.Warn("target_not_dispatched",
				zap.String("url", string(t)),
				zap.Error(ctx.Err()),
			)
			continue
		}
		select {
		case jobs <- t:
		case <-ctx.Done():
			p.Logger.Warn("target_not_dispatched",
				zap.String("url", string(t)),
				zap.Error(ctx.Err()),
			)
		}
	}
	close(jobs)

	wg.Wait()
	close(out)
	<-collected

	return results
}

// checkOne runs the checker for a single target. A panic inside a checker
// is confined here: it becomes a failed result carrying a correlation ID
// that is also attached to the logged stack, and the run carries on.
func (p *Pool) checkOne(ctx context.Context, t domain.Target) (res domain.CheckResult) {
	start := time.Now()
	defer func() {
		if rec := recover(); rec != nil {
			id := uuid.NewString()
			p.Logger.Error("worker_panic",
				zap.String("url", string(t)),
				zap.String("correlation_id", id),
				zap.Any("panic", rec),
				zap.ByteString("stack", debug.Stack()),
			)
			res = domain.Failed(string(t), "internal error: "+id, time.Since(start))
		}
	}()

	out := p.Checker.Check(ctx, string(t))
	if out.Success {
		res = domain.Succeeded(string(t), out.StatusCode, out.Elapsed)
	} else {
		res = domain.Failed(string(t), out.Message, out.Elapsed)
	}

	p.Logger.Debug("check_done",
		zap.String("url", string(t)),
		zap.Bool("success", out.Success),
		zap.Int("status", out.StatusCode),
		zap.Duration("elapsed", out.Elapsed),
		zap.String("message", out.Message),
	)
	return res
}
