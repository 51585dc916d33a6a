package payment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSandbox_Authorize(t *testing.T) {
	ctx := context.Background()
	var s Sandbox

	ok, err := s.Authorize(ctx, 1500, "card-4242")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Authorize(ctx, 1500, "decline-card")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = s.Authorize(ctx, 1500, "error-card")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestSandbox_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Sandbox{}.Authorize(ctx, 100, "card")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFunc(t *testing.T) {
	var got int64
	f := Func(func(_ context.Context, amount int64, _ string) (bool, error) {
		got = amount
		return true, nil
	})

	ok, err := f.Authorize(context.Background(), 700, "x")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(700), got)
}
