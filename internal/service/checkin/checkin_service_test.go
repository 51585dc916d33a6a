package checkin

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/Domenick1991/eventbooking/internal/domain"
	"github.com/Domenick1991/eventbooking/internal/service/servicetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckInService_CheckIn(t *testing.T) {
	env := servicetest.New(t)
	svc := NewCheckInService(env.Store, env.Clock, env.Log)
	ev := env.Event(t)
	tk := env.Ticket(t, ev.ID, servicetest.Alice.UserID)
	ctx := context.Background()

	got, err := svc.CheckIn(ctx, servicetest.Organiser, ev.ID, tk.Code)
	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusCompleted, got.Status)
	assert.Equal(t, servicetest.Alice.UserID, got.HolderID)

	_, err = svc.CheckIn(ctx, servicetest.Admin, ev.ID, tk.Code)
	var already *domain.AlreadyCheckedInError
	require.ErrorAs(t, err, &already)
	assert.Equal(t, servicetest.Alice.UserID, already.HolderID)
	assert.Equal(t, tk.ID, already.TicketID)
}

func TestCheckInService_Rejections(t *testing.T) {
	env := servicetest.New(t)
	svc := NewCheckInService(env.Store, env.Clock, env.Log)
	ev := env.Event(t)
	other := env.Event(t)
	tk := env.Ticket(t, ev.ID, servicetest.Alice.UserID)
	foreign := env.Ticket(t, other.ID, servicetest.Bob.UserID)
	ctx := context.Background()

	_, err := svc.CheckIn(ctx, servicetest.Bob, ev.ID, tk.Code)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = svc.CheckIn(ctx, servicetest.Organiser, ev.ID, "NOPE")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.CheckIn(ctx, servicetest.Organiser, ev.ID, foreign.Code)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.CheckIn(ctx, servicetest.Organiser, ev.ID, "")
	assert.ErrorIs(t, err, domain.ErrValidation)

	stored, _ := env.Store.GetTicket(ctx, foreign.ID)
	assert.Equal(t, domain.TicketStatusActive, stored.Status)
}

func TestCheckInService_CancelledTicket(t *testing.T) {
	env := servicetest.New(t)
	svc := NewCheckInService(env.Store, env.Clock, env.Log)
	ev := env.Event(t)
	tk := env.Ticket(t, ev.ID, servicetest.Alice.UserID)
	ctx := context.Background()
	require.NoError(t, env.Store.UpdateTicketStatus(ctx, tk.ID, domain.TicketStatusCancelled, "cancel", servicetest.Now))

	_, err := svc.CheckIn(ctx, servicetest.Organiser, ev.ID, tk.Code)
	assert.ErrorIs(t, err, domain.ErrTicketCancelled)
}

func TestCheckInService_EventNotActive(t *testing.T) {
	env := servicetest.New(t)
	svc := NewCheckInService(env.Store, env.Clock, env.Log)
	ev := env.Event(t)
	tk := env.Ticket(t, ev.ID, servicetest.Alice.UserID)
	ctx := context.Background()
	require.NoError(t, env.Store.UpdateEventStatus(ctx, ev.ID, domain.EventStatusCancelled, servicetest.Now))

	_, err := svc.CheckIn(ctx, servicetest.Organiser, ev.ID, tk.Code)
	var notActive *domain.EventNotActiveError
	require.ErrorAs(t, err, &notActive)
	assert.Equal(t, domain.EventStatusCancelled, notActive.Status)

	stored, _ := env.Store.GetTicket(ctx, tk.ID)
	assert.Equal(t, domain.TicketStatusActive, stored.Status)
}

func TestCheckInService_ConcurrentScans(t *testing.T) {
	env := servicetest.New(t)
	svc := NewCheckInService(env.Store, env.Clock, env.Log)
	ev := env.Event(t)
	tk := env.Ticket(t, ev.ID, servicetest.Alice.UserID)

	const scanners = 8
	errs := make(chan error, scanners)
	var wg sync.WaitGroup
	for i := 0; i < scanners; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.CheckIn(context.Background(), servicetest.Organiser, ev.ID, tk.Code)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var ok, already int
	for err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, domain.ErrAlreadyCheckedIn):
			already++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, scanners-1, already)
}
