package lifecycle

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Domenick1991/eventbooking/internal/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockLocker struct {
	mock.Mock
}

func (m *MockLocker) AcquireSweepLock(ctx context.Context, name string, ttl time.Duration) (bool, error) {
	args := m.Called(ctx, name, ttl)
	return args.Bool(0), args.Error(1)
}

func (m *MockLocker) ReleaseSweepLock(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func quietLog() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

// startScheduler runs s in the background and returns a stop function that
// waits for Run to return.
func startScheduler(t *testing.T, s *Scheduler) func() {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()
	return func() {
		cancel()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("scheduler did not stop")
		}
	}
}

func TestScheduler_ManualTrigger(t *testing.T) {
	trig := NewManualTrigger()
	ran := make(chan struct{}, 4)
	s := NewScheduler(clock.Real(), quietLog(), []Job{{
		Name:    "manual",
		Trigger: trig,
		Run: func(context.Context) error {
			ran <- struct{}{}
			return nil
		},
	}})
	stop := startScheduler(t, s)

	require.True(t, trig.Fire(time.Now()))
	<-ran
	require.True(t, trig.Fire(time.Now()))
	<-ran

	stop()
	assert.False(t, trig.Fire(time.Now()), "fire after stop is dropped")
}

func TestScheduler_IntervalTriggerOnFakeClock(t *testing.T) {
	clk := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	var runs atomic.Int32
	ran := make(chan struct{}, 8)
	s := NewScheduler(clk, quietLog(), []Job{{
		Name:    "tick",
		Trigger: Every(clk, time.Minute),
		Run: func(context.Context) error {
			runs.Add(1)
			ran <- struct{}{}
			return errors.New("logged, not fatal")
		},
	}})
	stop := startScheduler(t, s)
	defer stop()

	clk.WaitForTickers(1)
	clk.Advance(time.Minute)
	<-ran
	clk.Advance(time.Minute)
	<-ran
	assert.Equal(t, int32(2), runs.Load())
}

func TestScheduler_LockerSkipsHeldJob(t *testing.T) {
	locker := &MockLocker{}
	trig := NewManualTrigger()
	ran := make(chan string, 4)
	s := NewScheduler(clock.Real(), quietLog(), []Job{{
		Name:    "completion",
		Trigger: trig,
		Run: func(context.Context) error {
			ran <- "completion"
			return nil
		},
	}}, WithLocker(locker, 30*time.Second))

	locker.On("AcquireSweepLock", mock.Anything, "completion", 30*time.Second).Return(false, nil).Once()
	locker.On("AcquireSweepLock", mock.Anything, "completion", 30*time.Second).Return(true, nil).Once()
	locker.On("ReleaseSweepLock", mock.Anything, "completion").Return(nil).Once()

	stop := startScheduler(t, s)
	require.True(t, trig.Fire(time.Now()))
	require.True(t, trig.Fire(time.Now()))
	assert.Equal(t, "completion", <-ran)
	stop()

	assert.Empty(t, ran)
	locker.AssertExpectations(t)
}

func TestScheduler_MeasuresRunOnInjectedClock(t *testing.T) {
	clk := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	var buf syncBuffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	trig := NewManualTrigger()
	ran := make(chan struct{}, 1)
	s := NewScheduler(clk, log, []Job{{
		Name:    "completion",
		Trigger: trig,
		Run: func(context.Context) error {
			clk.Advance(90 * time.Second)
			ran <- struct{}{}
			return nil
		},
	}})
	stop := startScheduler(t, s)

	require.True(t, trig.Fire(clk.Now()))
	<-ran
	stop()

	assert.Contains(t, buf.String(), "took=1m30s")
}

func TestSweepJobs(t *testing.T) {
	env := newSweeperEnv(t)
	jobs := SweepJobs(env, func(string) Trigger { return NewManualTrigger() })

	names := make([]string, 0, len(jobs))
	for _, j := range jobs {
		names = append(names, j.Name)
		assert.NoError(t, j.Run(context.Background()))
	}
	assert.Equal(t, []string{"completion", "reminders", "event-cleanup", "ticket-cleanup"}, names)
}
