package lifecycle

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Domenick1991/eventbooking/internal/clock"
)

// Trigger tells the scheduler when to run a job.
type Trigger interface {
	C() <-chan time.Time
	Stop()
}

type intervalTrigger struct {
	ticker *clock.Ticker
}

// Every fires on clk every d.
func Every(clk clock.Clock, d time.Duration) Trigger {
	return &intervalTrigger{ticker: clk.NewTicker(d)}
}

func (t *intervalTrigger) C() <-chan time.Time { return t.ticker.C }
func (t *intervalTrigger) Stop()               { t.ticker.Stop() }

// ManualTrigger fires only when Fire is called.
type ManualTrigger struct {
	ch   chan time.Time
	once sync.Once
	done chan struct{}
}

func NewManualTrigger() *ManualTrigger {
	return &ManualTrigger{ch: make(chan time.Time), done: make(chan struct{})}
}

func (t *ManualTrigger) C() <-chan time.Time { return t.ch }

func (t *ManualTrigger) Stop() { t.once.Do(func() { close(t.done) }) }

// Fire blocks until the scheduler picks the tick up or the trigger stops.
func (t *ManualTrigger) Fire(at time.Time) bool {
	select {
	case t.ch <- at:
		return true
	case <-t.done:
		return false
	}
}

// Locker keeps replicas from running the same job at once.
type Locker interface {
	AcquireSweepLock(ctx context.Context, name string, ttl time.Duration) (bool, error)
	ReleaseSweepLock(ctx context.Context, name string) error
}

type Job struct {
	Name    string
	Trigger Trigger
	Run     func(ctx context.Context) error
}

type Scheduler struct {
	jobs    []Job
	locker  Locker
	lockTTL time.Duration
	clk     clock.Clock
	log     *slog.Logger
}

type SchedulerOption func(*Scheduler)

// WithLocker guards every run with a lock held for at most ttl.
func WithLocker(l Locker, ttl time.Duration) SchedulerOption {
	return func(s *Scheduler) {
		s.locker = l
		s.lockTTL = ttl
	}
}

func NewScheduler(clk clock.Clock, log *slog.Logger, jobs []Job, opts ...SchedulerOption) *Scheduler {
	s := &Scheduler{jobs: jobs, clk: clk, log: log, lockTTL: time.Minute}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run drives every job until ctx is cancelled, then stops the triggers and
// waits for running jobs to return.
func (s *Scheduler) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, job := range s.jobs {
		wg.Add(1)
		go func(job Job) {
			defer wg.Done()
			defer job.Trigger.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-job.Trigger.C():
					s.runOnce(ctx, job)
				}
			}
		}(job)
	}
	wg.Wait()
}

func (s *Scheduler) runOnce(ctx context.Context, job Job) {
	if s.locker != nil {
		ok, err := s.locker.AcquireSweepLock(ctx, job.Name, s.lockTTL)
		switch {
		case err != nil:
			s.log.WarnContext(ctx, "sweep lock unavailable, running unguarded",
				slog.String("job", job.Name), slog.String("error", err.Error()))
		case !ok:
			s.log.DebugContext(ctx, "sweep already running elsewhere", slog.String("job", job.Name))
			return
		default:
			defer func() {
				if err := s.locker.ReleaseSweepLock(context.WithoutCancel(ctx), job.Name); err != nil {
					s.log.WarnContext(ctx, "release sweep lock", slog.String("job", job.Name), slog.String("error", err.Error()))
				}
			}()
		}
	}

	start := s.clk.Now()
	if err := job.Run(ctx); err != nil {
		s.log.ErrorContext(ctx, "job failed", slog.String("job", job.Name), slog.String("error", err.Error()))
		return
	}
	s.log.DebugContext(ctx, "job done", slog.String("job", job.Name), slog.Duration("took", s.clk.Now().Sub(start)))
}

// SweepJobs turns the four sweeps into jobs, each with its own trigger from
// newTrigger.
func SweepJobs(sw SweepUseCase, newTrigger func(name string) Trigger) []Job {
	wrap := func(f func(context.Context) (Result, error)) func(context.Context) error {
		return func(ctx context.Context) error {
			_, err := f(ctx)
			return err
		}
	}
	return []Job{
		{Name: "completion", Trigger: newTrigger("completion"), Run: wrap(sw.Complete)},
		{Name: "reminders", Trigger: newTrigger("reminders"), Run: wrap(sw.Remind)},
		{Name: "event-cleanup", Trigger: newTrigger("event-cleanup"), Run: wrap(sw.CleanupEvents)},
		{Name: "ticket-cleanup", Trigger: newTrigger("ticket-cleanup"), Run: wrap(sw.CleanupTickets)},
	}
}
