package job

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"github.com/Nik0lakt/cafeteria-project/pkg/logger"
)

type Func func(ctx context.Context) error

type job struct {
	name     string
	interval time.Duration
	fn       Func
}

// Service runs registered functions with a fixed delay between runs until the
// context is done. Each run is bounded by the job interval.
type Service struct {
	l    *slog.Logger
	jobs []job
	wg   sync.WaitGroup
}

func NewService(l *slog.Logger) *Service {
	return &Service{l: l}
}

func (s *Service) RegisterJob(name string, interval time.Duration, fn Func) *Service {
	return s.TryRegisterJob(true, name, interval, fn)
}

// TryRegisterJob skips disabled jobs and jobs with a non-positive interval.
func (s *Service) TryRegisterJob(isEnabled bool, name string, interval time.Duration, fn Func) *Service {
	if !isEnabled || interval <= 0 {
		s.l.Info("job disabled", "job", name)
		return s
	}

	s.jobs = append(s.jobs, job{name: name, interval: interval, fn: fn})

	return s
}

func (s *Service) Start(ctx context.Context) {
	s.wg.Add(len(s.jobs))

	for _, j := range s.jobs {
		go s.loop(ctx, j)
	}
}

func (s *Service) loop(ctx context.Context, j job) {
	defer s.wg.Done()

	ctx = logger.WithRequestID(ctx, "job:"+j.name)
	l := s.l.With("job", j.name)

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			l.DebugContext(ctx, "job stopped")
			return
		case <-timer.C:
		}

		started := time.Now()

		err := s.run(ctx, j)
		if err != nil {
			l.ErrorContext(ctx, "job failed", "error", err, "duration", time.Since(started))
		} else {
			l.DebugContext(ctx, "job done", "duration", time.Since(started))
		}

		timer.Reset(j.interval)
	}
}

func (s *Service) run(ctx context.Context, j job) (err error) {
	ctx, cancel := context.WithTimeout(ctx, j.interval)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			s.l.ErrorContext(ctx, "job panic", "job", j.name, "stack", string(debug.Stack()))
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	return j.fn(ctx)
}

// Stop waits for running jobs. Cancel the Start context first.
func (s *Service) Stop() {
	s.wg.Wait()
}
