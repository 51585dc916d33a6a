package ops

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Domenick1991/eventbooking/internal/service/lifecycle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSweepUseCase struct {
	mock.Mock
}

func (m *MockSweepUseCase) Complete(ctx context.Context) (lifecycle.Result, error) {
	args := m.Called(ctx)
	return args.Get(0).(lifecycle.Result), args.Error(1)
}

func (m *MockSweepUseCase) Remind(ctx context.Context) (lifecycle.Result, error) {
	args := m.Called(ctx)
	return args.Get(0).(lifecycle.Result), args.Error(1)
}

func (m *MockSweepUseCase) CleanupEvents(ctx context.Context) (lifecycle.Result, error) {
	args := m.Called(ctx)
	return args.Get(0).(lifecycle.Result), args.Error(1)
}

func (m *MockSweepUseCase) CleanupTickets(ctx context.Context) (lifecycle.Result, error) {
	args := m.Called(ctx)
	return args.Get(0).(lifecycle.Result), args.Error(1)
}

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

const secret = "s3cret"

func newTestServer(t *testing.T, sweeps lifecycle.SweepUseCase, opts ...Option) http.Handler {
	t.Helper()
	hash, err := HashSecret(secret)
	require.NoError(t, err)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewServer(sweeps, hash, log, opts...).Routes()
}

func post(h http.Handler, path, secretHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, nil)
	if secretHeader != "" {
		req.Header.Set(HeaderSecret, secretHeader)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestRunSweep(t *testing.T) {
	sweeps := &MockSweepUseCase{}
	h := newTestServer(t, sweeps)

	sweeps.On("Complete", mock.Anything).Return(lifecycle.Result{Sweep: "completion", Matched: 2, Changed: 2}, nil)

	w := post(h, "/ops/sweeps/completion", secret)

	assert.Equal(t, http.StatusOK, w.Code)
	var res lifecycle.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, 2, res.Changed)
	sweeps.AssertExpectations(t)
}

func TestRunSweep_AllNames(t *testing.T) {
	sweeps := &MockSweepUseCase{}
	h := newTestServer(t, sweeps)

	sweeps.On("Remind", mock.Anything).Return(lifecycle.Result{}, nil).Once()
	sweeps.On("CleanupEvents", mock.Anything).Return(lifecycle.Result{}, nil).Once()
	sweeps.On("CleanupTickets", mock.Anything).Return(lifecycle.Result{}, nil).Once()

	for _, name := range []string{"reminders", "event-cleanup", "ticket-cleanup"} {
		assert.Equal(t, http.StatusOK, post(h, "/ops/sweeps/"+name, secret).Code, name)
	}
	sweeps.AssertExpectations(t)
}

func TestRunSweep_Secret(t *testing.T) {
	sweeps := &MockSweepUseCase{}
	h := newTestServer(t, sweeps)

	assert.Equal(t, http.StatusUnauthorized, post(h, "/ops/sweeps/completion", "").Code)
	assert.Equal(t, http.StatusUnauthorized, post(h, "/ops/sweeps/completion", "wrong").Code)
	sweeps.AssertNotCalled(t, "Complete", mock.Anything)
}

func TestRunSweep_NoHashConfigured(t *testing.T) {
	sweeps := &MockSweepUseCase{}
	h := NewServer(sweeps, "", slog.New(slog.NewTextHandler(io.Discard, nil))).Routes()

	assert.Equal(t, http.StatusUnauthorized, post(h, "/ops/sweeps/completion", secret).Code)
}

func TestRunSweep_Unknown(t *testing.T) {
	h := newTestServer(t, &MockSweepUseCase{})

	assert.Equal(t, http.StatusNotFound, post(h, "/ops/sweeps/vacuum", secret).Code)
}

func TestRunSweep_Failure(t *testing.T) {
	sweeps := &MockSweepUseCase{}
	h := newTestServer(t, sweeps)

	sweeps.On("Complete", mock.Anything).Return(lifecycle.Result{}, errors.New("db down"))

	w := post(h, "/ops/sweeps/completion", secret)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "db down")
}

func TestRunSweep_Locked(t *testing.T) {
	sweeps := &MockSweepUseCase{}
	locker := &MockLocker{}
	h := newTestServer(t, sweeps, WithLocker(locker, time.Minute))

	locker.On("AcquireSweepLock", mock.Anything, "completion", time.Minute).Return(false, nil).Once()
	assert.Equal(t, http.StatusConflict, post(h, "/ops/sweeps/completion", secret).Code)
	sweeps.AssertNotCalled(t, "Complete", mock.Anything)

	locker.On("AcquireSweepLock", mock.Anything, "completion", time.Minute).Return(true, nil).Once()
	locker.On("ReleaseSweepLock", mock.Anything, "completion").Return(nil).Once()
	sweeps.On("Complete", mock.Anything).Return(lifecycle.Result{}, nil).Once()
	assert.Equal(t, http.StatusOK, post(h, "/ops/sweeps/completion", secret).Code)

	locker.AssertExpectations(t)
	sweeps.AssertExpectations(t)
}

func TestHealth(t *testing.T) {
	h := newTestServer(t, &MockSweepUseCase{})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ops/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
