package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/Domenick1991/eventbooking/internal/domain"
	"github.com/Domenick1991/eventbooking/internal/notify"
	"github.com/Domenick1991/eventbooking/internal/payment"
	"github.com/Domenick1991/eventbooking/internal/repository"
	"github.com/Domenick1991/eventbooking/internal/service/servicetest"
	"github.com/Domenick1991/eventbooking/internal/service/waitlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAuthorizer struct {
	mock.Mock
}

func (m *MockAuthorizer) Authorize(ctx context.Context, amountCents int64, instrument string) (bool, error) {
	args := m.Called(ctx, amountCents, instrument)
	return args.Bool(0), args.Error(1)
}

type MockCapacityListener struct {
	mock.Mock
}

func (m *MockCapacityListener) OnCapacityFreed(ctx context.Context, eventID int64) int {
	args := m.Called(ctx, eventID)
	return args.Int(0)
}

func newService(env *servicetest.Env, auth *MockAuthorizer, listener CapacityListener) *BookingService {
	var payments payment.Authorizer
	if auth != nil {
		payments = auth
	}
	if listener == nil {
		listener = waitlist.NewWaitlistService(env.Store, env.Notifier, env.Clock, env.Log)
	}
	return NewBookingService(env.Store, payments, listener, env.Notifier, env.Clock, env.Log,
		WithCodeGenerator(env.Code))
}

func held(t *testing.T, env *servicetest.Env, eventID int64) int {
	t.Helper()
	n, err := env.Store.CountHeldTickets(context.Background(), eventID)
	require.NoError(t, err)
	return n
}

func TestBookingService_Reserve_Free(t *testing.T) {
	env := servicetest.New(t)
	svc := newService(env, nil, nil)
	ev := env.Event(t)

	tickets, err := svc.Reserve(context.Background(), servicetest.Alice, ReserveInput{EventID: ev.ID, Quantity: 3})
	require.NoError(t, err)
	require.Len(t, tickets, 3)

	codes := map[string]bool{}
	for _, tk := range tickets {
		assert.Equal(t, domain.TicketStatusActive, tk.Status)
		assert.Equal(t, servicetest.Alice.UserID, tk.HolderID)
		assert.Equal(t, servicetest.Now, tk.PurchasedAt)
		codes[tk.Code] = true
	}
	assert.Len(t, codes, 3)
	assert.Equal(t, 3, held(t, env, ev.ID))

	inbox := env.Inbox(servicetest.Alice.UserID)
	require.Len(t, inbox, 1)
	assert.Equal(t, "Booking confirmed", inbox[0].Title)
}

func TestBookingService_Reserve_Validation(t *testing.T) {
	env := servicetest.New(t)
	svc := newService(env, nil, nil)
	ev := env.Event(t)
	ctx := context.Background()

	_, err := svc.Reserve(ctx, servicetest.Alice, ReserveInput{EventID: ev.ID, Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Reserve(ctx, servicetest.Alice, ReserveInput{EventID: ev.ID, Quantity: DefaultMaxPerOrder + 1})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Reserve(ctx, domain.Identity{}, ReserveInput{EventID: ev.ID, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = svc.Reserve(ctx, servicetest.Alice, ReserveInput{EventID: 999, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBookingService_Reserve_BannedUser(t *testing.T) {
	env := servicetest.New(t)
	svc := newService(env, nil, nil)
	ev := env.Event(t)
	require.NoError(t, env.Store.SetUserRole(context.Background(), servicetest.Alice.UserID, domain.RoleBanned))

	_, err := svc.Reserve(context.Background(), servicetest.Alice, ReserveInput{EventID: ev.ID, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Zero(t, held(t, env, ev.ID))
}

func TestBookingService_Reserve_EventNotActive(t *testing.T) {
	env := servicetest.New(t)
	svc := newService(env, nil, nil)
	cancelled := env.Event(t, func(e *domain.Event) { e.Status = domain.EventStatusCancelled })
	ended := env.Event(t, func(e *domain.Event) {
		e.StartAt = servicetest.Now.Add(-3 * time.Hour)
		e.EndAt = servicetest.Now
	})

	_, err := svc.Reserve(context.Background(), servicetest.Alice, ReserveInput{EventID: cancelled.ID, Quantity: 1})
	var notActive *domain.EventNotActiveError
	require.ErrorAs(t, err, &notActive)
	assert.Equal(t, domain.EventStatusCancelled, notActive.Status)

	_, err = svc.Reserve(context.Background(), servicetest.Alice, ReserveInput{EventID: ended.ID, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrEventNotActive)
}

func TestBookingService_Reserve_CapacityExceeded(t *testing.T) {
	env := servicetest.New(t)
	svc := newService(env, nil, nil)
	ev := env.Event(t, func(e *domain.Event) { e.Capacity = 3 })
	env.Ticket(t, ev.ID, "someone")

	_, err := svc.Reserve(context.Background(), servicetest.Alice, ReserveInput{EventID: ev.ID, Quantity: 3})
	var exceeded *domain.CapacityExceededError
	require.ErrorAs(t, err, &exceeded)
	assert.Equal(t, 2, exceeded.Remaining)
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
	assert.Equal(t, 1, held(t, env, ev.ID))
}

func TestBookingService_Reserve_Priced(t *testing.T) {
	env := servicetest.New(t)
	auth := &MockAuthorizer{}
	svc := newService(env, auth, nil)
	ev := env.Event(t, func(e *domain.Event) { e.PriceCents = 2500 })
	ctx := context.Background()

	auth.On("Authorize", mock.Anything, int64(5000), "card-ok").Return(true, nil).Once()
	tickets, err := svc.Reserve(ctx, servicetest.Alice, ReserveInput{EventID: ev.ID, Quantity: 2, PaymentInstrument: "card-ok"})
	require.NoError(t, err)
	assert.Equal(t, int64(2500), tickets[0].PricePaidCents)

	auth.On("Authorize", mock.Anything, int64(2500), "card-declined").Return(false, nil).Once()
	_, err = svc.Reserve(ctx, servicetest.Bob, ReserveInput{EventID: ev.ID, Quantity: 1, PaymentInstrument: "card-declined"})
	assert.ErrorIs(t, err, domain.ErrPaymentDeclined)

	auth.On("Authorize", mock.Anything, int64(2500), "card-broken").Return(false, errors.New("timeout")).Once()
	_, err = svc.Reserve(ctx, servicetest.Bob, ReserveInput{EventID: ev.ID, Quantity: 1, PaymentInstrument: "card-broken"})
	assert.ErrorIs(t, err, domain.ErrInternal)

	_, err = svc.Reserve(ctx, servicetest.Bob, ReserveInput{EventID: ev.ID, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrValidation)

	assert.Equal(t, 2, held(t, env, ev.ID))
	assert.Empty(t, env.Inbox(servicetest.Bob.UserID))
	auth.AssertExpectations(t)
}

func TestBookingService_Reserve_RemovesWaitlistEntry(t *testing.T) {
	env := servicetest.New(t)
	svc := newService(env, nil, nil)
	ev := env.Event(t)
	ctx := context.Background()
	_, err := env.Store.AddWaitlistEntry(ctx, domain.WaitlistEntry{EventID: ev.ID, UserID: servicetest.Alice.UserID, JoinedAt: servicetest.Now})
	require.NoError(t, err)

	_, err = svc.Reserve(ctx, servicetest.Alice, ReserveInput{EventID: ev.ID, Quantity: 1})
	require.NoError(t, err)

	entries, _ := env.Store.ListWaitlist(ctx, ev.ID)
	assert.Empty(t, entries)
}

func TestBookingService_Reserve_DuplicateCodeRollsBack(t *testing.T) {
	env := servicetest.New(t)
	svc := NewBookingService(env.Store, nil, &MockCapacityListener{}, env.Notifier, env.Clock, env.Log,
		WithCodeGenerator(func() string { return "SAME" }))
	ev := env.Event(t)

	_, err := svc.Reserve(context.Background(), servicetest.Alice, ReserveInput{EventID: ev.ID, Quantity: 2})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Zero(t, held(t, env, ev.ID))
}

func TestBookingService_Reserve_NotificationFailureKeepsTickets(t *testing.T) {
	env := servicetest.New(t)
	failing := notify.NewNotifier(notify.SinkFunc(func(context.Context, *domain.Notification) error {
		return errors.New("mailbox down")
	}), env.Log)
	svc := NewBookingService(env.Store, nil, &MockCapacityListener{}, failing, env.Clock, env.Log,
		WithCodeGenerator(env.Code))
	ev := env.Event(t)

	tickets, err := svc.Reserve(context.Background(), servicetest.Alice, ReserveInput{EventID: ev.ID, Quantity: 1})
	require.NoError(t, err)
	assert.Len(t, tickets, 1)
	assert.Equal(t, 1, held(t, env, ev.ID))
}

func TestBookingService_Reserve_ConcurrentNeverOversells(t *testing.T) {
	env := servicetest.New(t)
	svc := newService(env, nil, nil)
	ev := env.Event(t, func(e *domain.Event) { e.Capacity = 7 })

	const buyers = 40
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		ok       int
		rejected int
	)
	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			who := domain.Identity{UserID: fmt.Sprintf("buyer-%d", i), Role: domain.RoleUser}
			_, err := svc.Reserve(context.Background(), who, ReserveInput{EventID: ev.ID, Quantity: 1 + i%2})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case errors.Is(err, domain.ErrCapacityExceeded):
				rejected++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, held(t, env, ev.ID), 7)
	assert.Equal(t, buyers, ok+rejected)
	assert.Positive(t, ok)
}

func TestBookingService_Reserve_LastSlotRace(t *testing.T) {
	env := servicetest.New(t)
	svc := newService(env, nil, nil)
	ev := env.Event(t, func(e *domain.Event) { e.Capacity = 1 })

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for _, who := range []domain.Identity{servicetest.Alice, servicetest.Bob} {
		wg.Add(1)
		go func(who domain.Identity) {
			defer wg.Done()
			_, err := svc.Reserve(context.Background(), who, ReserveInput{EventID: ev.ID, Quantity: 1})
			errs <- err
		}(who)
	}
	wg.Wait()
	close(errs)

	var succeeded, exceeded int
	for err := range errs {
		if err == nil {
			succeeded++
		} else if errors.Is(err, domain.ErrCapacityExceeded) {
			exceeded++
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, exceeded)
	assert.Equal(t, 1, held(t, env, ev.ID))
}

func TestBookingService_CancelTicket(t *testing.T) {
	env := servicetest.New(t)
	listener := &MockCapacityListener{}
	svc := newService(env, nil, listener)
	ev := env.Event(t)
	tk := env.Ticket(t, ev.ID, servicetest.Alice.UserID)
	ctx := context.Background()

	_, err := svc.CancelTicket(ctx, servicetest.Bob, tk.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	listener.On("OnCapacityFreed", mock.Anything, ev.ID).Return(0).Once()
	got, err := svc.CancelTicket(ctx, servicetest.Alice, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusCancelled, got.Status)
	assert.Zero(t, held(t, env, ev.ID))

	_, err = svc.CancelTicket(ctx, servicetest.Alice, tk.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyFinal)

	_, err = svc.CancelTicket(ctx, servicetest.Alice, 12345)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	listener.AssertExpectations(t)
}

func TestBookingService_CancelTicket_Lockout(t *testing.T) {
	env := servicetest.New(t)
	listener := &MockCapacityListener{}
	svc := newService(env, nil, listener)
	ev := env.Event(t, func(e *domain.Event) {
		e.StartAt = servicetest.Now.Add(10 * time.Minute)
		e.EndAt = servicetest.Now.Add(2 * time.Hour)
	})
	early := env.Ticket(t, ev.ID, servicetest.Alice.UserID)
	late := env.Ticket(t, ev.ID, servicetest.Alice.UserID)
	ctx := context.Background()

	listener.On("OnCapacityFreed", mock.Anything, ev.ID).Return(0).Once()
	env.Clock.Advance(4*time.Minute + 59*time.Second)
	_, err := svc.CancelTicket(ctx, servicetest.Alice, early.ID)
	require.NoError(t, err)

	env.Clock.Advance(time.Second)
	_, err = svc.CancelTicket(ctx, servicetest.Alice, late.ID)
	assert.ErrorIs(t, err, domain.ErrTooLateToCancel)

	stored, _ := env.Store.GetTicket(ctx, late.ID)
	assert.Equal(t, domain.TicketStatusActive, stored.Status)
	listener.AssertExpectations(t)
}

func TestBookingService_CancelTicket_NotifiesWaitlist(t *testing.T) {
	env := servicetest.New(t)
	svc := newService(env, nil, nil)
	ev := env.Event(t, func(e *domain.Event) { e.Capacity = 1 })
	tk := env.Ticket(t, ev.ID, servicetest.Alice.UserID)
	ctx := context.Background()
	_, err := env.Store.AddWaitlistEntry(ctx, domain.WaitlistEntry{EventID: ev.ID, UserID: servicetest.Bob.UserID, JoinedAt: servicetest.Now})
	require.NoError(t, err)

	_, err = svc.CancelTicket(ctx, servicetest.Alice, tk.ID)
	require.NoError(t, err)

	inbox := env.Inbox(servicetest.Bob.UserID)
	require.Len(t, inbox, 1)
	assert.Equal(t, "A spot opened up", inbox[0].Title)
}

func TestBookingService_FreedSlotRace(t *testing.T) {
	env := servicetest.New(t)
	svc := newService(env, nil, nil)
	ev := env.Event(t, func(e *domain.Event) { e.Capacity = 1 })
	tk := env.Ticket(t, ev.ID, "holder")
	ctx := context.Background()

	_, err := svc.CancelTicket(ctx, domain.Identity{UserID: "holder", Role: domain.RoleUser}, tk.ID)
	require.NoError(t, err)

	results := make(chan string, 2)
	var wg sync.WaitGroup
	for _, who := range []domain.Identity{servicetest.Alice, servicetest.Bob} {
		wg.Add(1)
		go func(who domain.Identity) {
			defer wg.Done()
			if _, err := svc.Reserve(ctx, who, ReserveInput{EventID: ev.ID, Quantity: 1}); err == nil {
				results <- who.UserID
			}
		}(who)
	}
	wg.Wait()
	close(results)

	var winners []string
	for w := range results {
		winners = append(winners, w)
	}
	require.Len(t, winners, 1)
	assert.Contains(t, []string{servicetest.Alice.UserID, servicetest.Bob.UserID}, winners[0])
	assert.Equal(t, 1, held(t, env, ev.ID))
}

func TestBookingService_RemoveAttendee(t *testing.T) {
	env := servicetest.New(t)
	listener := &MockCapacityListener{}
	svc := newService(env, nil, listener)
	ev := env.Event(t)
	tk := env.Ticket(t, ev.ID, servicetest.Alice.UserID)
	ctx := context.Background()

	_, err := svc.RemoveAttendee(ctx, servicetest.Bob, tk.ID, "spam")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = svc.RemoveAttendee(ctx, servicetest.Organiser, tk.ID, "  ")
	assert.ErrorIs(t, err, domain.ErrValidation)

	listener.On("OnCapacityFreed", mock.Anything, ev.ID).Return(0).Once()
	got, err := svc.RemoveAttendee(ctx, servicetest.Organiser, tk.ID, "duplicate account")
	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusCancelled, got.Status)
	assert.Equal(t, "duplicate account", got.CancelReason)

	inbox := env.Inbox(servicetest.Alice.UserID)
	require.Len(t, inbox, 1)
	assert.Equal(t, domain.EntityTicket, inbox[0].EntityType)
	listener.AssertExpectations(t)
}

func TestBookingService_RemoveAttendee_AfterStart(t *testing.T) {
	env := servicetest.New(t)
	svc := newService(env, nil, &MockCapacityListener{})
	ev := env.Event(t, func(e *domain.Event) {
		e.StartAt = servicetest.Now.Add(-time.Minute)
		e.EndAt = servicetest.Now.Add(time.Hour)
	})
	tk := env.Ticket(t, ev.ID, servicetest.Alice.UserID)

	_, err := svc.RemoveAttendee(context.Background(), servicetest.Admin, tk.ID, "late")
	assert.ErrorIs(t, err, domain.ErrTooLateToCancel)
}

func TestBookingService_ListTickets(t *testing.T) {
	env := servicetest.New(t)
	svc := newService(env, nil, nil)
	ev := env.Event(t)
	env.Ticket(t, ev.ID, servicetest.Alice.UserID)
	env.Ticket(t, ev.ID, servicetest.Bob.UserID)

	tickets, err := svc.ListTickets(context.Background(), servicetest.Alice)
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Equal(t, servicetest.Alice.UserID, tickets[0].HolderID)

	all, _ := env.Store.ListTickets(context.Background(), repository.TicketFilter{EventID: ev.ID})
	assert.Len(t, all, 2)
}

func TestNewTicketCode(t *testing.T) {
	a, b := NewTicketCode(), NewTicketCode()
	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
	assert.NotContains(t, a, "-")
}
