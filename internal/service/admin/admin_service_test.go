package admin

import (
	"context"
	"testing"
	"time"

	"github.com/Domenick1991/eventbooking/internal/domain"
	"github.com/Domenick1991/eventbooking/internal/repository"
	"github.com/Domenick1991/eventbooking/internal/service/checkin"
	"github.com/Domenick1991/eventbooking/internal/service/events"
	"github.com/Domenick1991/eventbooking/internal/service/servicetest"
	"github.com/Domenick1991/eventbooking/internal/service/waitlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCapacityListener struct {
	mock.Mock
}

func (m *MockCapacityListener) OnCapacityFreed(ctx context.Context, eventID int64) int {
	args := m.Called(ctx, eventID)
	return args.Int(0)
}

type MockInvalidator struct {
	mock.Mock
}

func (m *MockInvalidator) InvalidateEvents(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestAdminService_BanUser_Cascade(t *testing.T) {
	env := servicetest.New(t)
	listener := &MockCapacityListener{}
	cache := &MockInvalidator{}
	svc := NewAdminService(env.Store, listener, cache, env.Notifier, env.Clock, env.Log)
	ctx := context.Background()

	badOrg := domain.Identity{UserID: "bad-org", Role: domain.RoleOrganiser}
	own1 := env.Event(t, func(e *domain.Event) { e.OrganiserID = badOrg.UserID })
	own2 := env.Event(t, func(e *domain.Event) { e.OrganiserID = badOrg.UserID })
	done := env.Event(t, func(e *domain.Event) {
		e.OrganiserID = badOrg.UserID
		e.Status = domain.EventStatusCompleted
	})
	other := env.Event(t)

	env.Ticket(t, own1.ID, servicetest.Alice.UserID)
	env.Ticket(t, own1.ID, servicetest.Bob.UserID)
	env.Ticket(t, own2.ID, servicetest.Alice.UserID)
	held := env.Ticket(t, other.ID, badOrg.UserID)
	kept := env.Ticket(t, other.ID, servicetest.Bob.UserID)

	cache.On("InvalidateEvents", ctx).Return(nil).Once()
	listener.On("OnCapacityFreed", ctx, other.ID).Return(0).Once()

	res, err := svc.BanUser(ctx, servicetest.Admin, badOrg.UserID)
	require.NoError(t, err)
	assert.Equal(t, []int64{own1.ID, own2.ID}, res.CancelledEvents)
	assert.Equal(t, 4, res.CancelledTickets)

	role, err := env.Store.GetUserRole(ctx, badOrg.UserID)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleBanned, role)

	for _, id := range []int64{own1.ID, own2.ID} {
		e, _ := env.Store.GetEvent(ctx, id)
		assert.Equal(t, domain.EventStatusCancelled, e.Status)
		n, _ := env.Store.CountHeldTickets(ctx, id)
		assert.Zero(t, n)
	}
	e, _ := env.Store.GetEvent(ctx, done.ID)
	assert.Equal(t, domain.EventStatusCompleted, e.Status)

	tk, _ := env.Store.GetTicket(ctx, held.ID)
	assert.Equal(t, domain.TicketStatusCancelled, tk.Status)
	assert.Equal(t, string(domain.TriggerHolderBanned), tk.CancelReason)
	tk, _ = env.Store.GetTicket(ctx, kept.ID)
	assert.Equal(t, domain.TicketStatusActive, tk.Status)

	assert.Len(t, env.Inbox(servicetest.Alice.UserID), 2)
	assert.Len(t, env.Inbox(servicetest.Bob.UserID), 1)
	listener.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestAdminService_BanUser_Rejections(t *testing.T) {
	env := servicetest.New(t)
	svc := NewAdminService(env.Store, &MockCapacityListener{}, nil, env.Notifier, env.Clock, env.Log)
	ctx := context.Background()

	_, err := svc.BanUser(ctx, servicetest.Organiser, "alice")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = svc.BanUser(ctx, servicetest.Admin, servicetest.Admin.UserID)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.BanUser(ctx, servicetest.Admin, "")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = env.Store.GetUserRole(ctx, "alice")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAdminService_BanUser_NothingToCascade(t *testing.T) {
	env := servicetest.New(t)
	svc := NewAdminService(env.Store, &MockCapacityListener{}, &MockInvalidator{}, env.Notifier, env.Clock, env.Log)

	res, err := svc.BanUser(context.Background(), servicetest.Admin, "quiet-user")
	require.NoError(t, err)
	assert.Empty(t, res.CancelledEvents)
	assert.Zero(t, res.CancelledTickets)

	tickets, _ := env.Store.ListTickets(context.Background(), repository.TicketFilter{HolderID: "quiet-user"})
	assert.Empty(t, tickets)
}

func TestAdminService_BanUser_BlocksFurtherActions(t *testing.T) {
	env := servicetest.New(t)
	svc := NewAdminService(env.Store, &MockCapacityListener{}, nil, env.Notifier, env.Clock, env.Log)
	ctx := context.Background()

	foreign := env.Event(t, func(e *domain.Event) { e.OrganiserID = "org-2" })
	_, err := svc.BanUser(ctx, servicetest.Admin, servicetest.Organiser.UserID)
	require.NoError(t, err)

	// The request still claims the organiser role; the stored ban decides.
	eventSvc := events.NewEventService(env.Store, nil, nil, env.Notifier, env.Clock, env.Log)
	_, err = eventSvc.Create(ctx, servicetest.Organiser, events.CreateEventInput{
		Title:    "After the ban",
		Venue:    "Hall 9",
		Capacity: 5,
		StartAt:  servicetest.Now.Add(72 * time.Hour),
		EndAt:    servicetest.Now.Add(74 * time.Hour),
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = waitlist.NewWaitlistService(env.Store, env.Notifier, env.Clock, env.Log).Join(ctx, servicetest.Organiser, foreign.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	entries, _ := env.Store.ListWaitlist(ctx, foreign.ID)
	assert.Empty(t, entries)

	// An event written straight to storage after the ban is still off limits.
	own := env.Event(t)
	tk := env.Ticket(t, own.ID, servicetest.Alice.UserID)
	_, err = checkin.NewCheckInService(env.Store, env.Clock, env.Log).CheckIn(ctx, servicetest.Organiser, own.ID, tk.Code)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	stored, _ := env.Store.GetTicket(ctx, tk.ID)
	assert.Equal(t, domain.TicketStatusActive, stored.Status)
}
