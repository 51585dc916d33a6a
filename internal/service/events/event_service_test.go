package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Domenick1991/eventbooking/internal/domain"
	"github.com/Domenick1991/eventbooking/internal/service/servicetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetEvents(ctx context.Context) ([]domain.Event, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *MockCache) SetEvents(ctx context.Context, events []domain.Event) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

func (m *MockCache) InvalidateEvents(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockCapacityListener struct {
	mock.Mock
}

func (m *MockCapacityListener) OnCapacityFreed(ctx context.Context, eventID int64) int {
	args := m.Called(ctx, eventID)
	return args.Int(0)
}

func newService(env *servicetest.Env, cache Cache, listener CapacityListener) *EventService {
	return NewEventService(env.Store, cache, listener, env.Notifier, env.Clock, env.Log)
}

func validInput() CreateEventInput {
	return CreateEventInput{
		Title:      "  Rust Meetup ",
		Venue:      "Hall 2",
		Capacity:   50,
		PriceCents: 0,
		StartAt:    servicetest.Now.Add(72 * time.Hour),
		EndAt:      servicetest.Now.Add(75 * time.Hour),
		Categories: []string{"Tech", "tech", " meetup "},
	}
}

func TestEventService_Create(t *testing.T) {
	env := servicetest.New(t)
	cache := &MockCache{}
	svc := newService(env, cache, nil)
	ctx := context.Background()

	cache.On("InvalidateEvents", ctx).Return(nil).Once()
	ev, err := svc.Create(ctx, servicetest.Organiser, validInput())
	require.NoError(t, err)
	assert.Equal(t, "Rust Meetup", ev.Title)
	assert.Equal(t, domain.EventStatusActive, ev.Status)
	assert.Equal(t, servicetest.Organiser.UserID, ev.OrganiserID)
	assert.Equal(t, []string{"meetup", "tech"}, env.Store.EventCategories(ev.ID))
	cache.AssertExpectations(t)
}

func TestEventService_Create_BannedOrganiser(t *testing.T) {
	env := servicetest.New(t)
	svc := newService(env, &MockCache{}, nil)
	ctx := context.Background()
	require.NoError(t, env.Store.SetUserRole(ctx, servicetest.Organiser.UserID, domain.RoleBanned))

	ev, err := svc.Create(ctx, servicetest.Organiser, validInput())
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Nil(t, ev)

	listed, err := env.Store.ListEvents(ctx, domain.EventStatusActive)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestEventService_Create_Validation(t *testing.T) {
	env := servicetest.New(t)
	svc := newService(env, nil, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, servicetest.Alice, validInput())
	assert.ErrorIs(t, err, domain.ErrForbidden)

	cases := map[string]func(*CreateEventInput){
		"empty title":    func(in *CreateEventInput) { in.Title = " " },
		"zero capacity":  func(in *CreateEventInput) { in.Capacity = 0 },
		"huge capacity":  func(in *CreateEventInput) { in.Capacity = domain.MaxCapacity + 1 },
		"negative price": func(in *CreateEventInput) { in.PriceCents = -1 },
		"end before":     func(in *CreateEventInput) { in.EndAt = in.StartAt },
		"in the past":    func(in *CreateEventInput) { in.StartAt = servicetest.Now.Add(-time.Hour) },
	}
	for name, mod := range cases {
		t.Run(name, func(t *testing.T) {
			in := validInput()
			mod(&in)
			_, err := svc.Create(ctx, servicetest.Organiser, in)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestEventService_List_CacheMiss(t *testing.T) {
	env := servicetest.New(t)
	cache := &MockCache{}
	svc := newService(env, cache, nil)
	ctx := context.Background()
	active := env.Event(t)
	env.Event(t, func(e *domain.Event) { e.Status = domain.EventStatusCancelled })

	cache.On("GetEvents", ctx).Return(([]domain.Event)(nil), nil).Once()
	cache.On("SetEvents", ctx, mock.MatchedBy(func(evs []domain.Event) bool {
		return len(evs) == 1 && evs[0].ID == active.ID
	})).Return(nil).Once()

	result, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, result, 1)
	cache.AssertExpectations(t)
}

func TestEventService_List_CacheHit(t *testing.T) {
	env := servicetest.New(t)
	cache := &MockCache{}
	svc := newService(env, cache, nil)
	ctx := context.Background()
	cached := []domain.Event{{ID: 77, Title: "cached"}}

	cache.On("GetEvents", ctx).Return(cached, nil).Once()

	result, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, cached, result)
	cache.AssertExpectations(t)
}

func TestEventService_List_CacheError(t *testing.T) {
	env := servicetest.New(t)
	cache := &MockCache{}
	svc := newService(env, cache, nil)
	ctx := context.Background()
	env.Event(t)

	cache.On("GetEvents", ctx).Return(([]domain.Event)(nil), errors.New("redis down")).Once()
	cache.On("SetEvents", ctx, mock.Anything).Return(errors.New("redis down")).Once()

	result, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestEventService_UpdateCapacity_Floor(t *testing.T) {
	env := servicetest.New(t)
	svc := newService(env, nil, nil)
	ev := env.Event(t, func(e *domain.Event) { e.Capacity = 5 })
	for i := 0; i < 4; i++ {
		env.Ticket(t, ev.ID, servicetest.Alice.UserID)
	}

	_, err := svc.UpdateCapacity(context.Background(), servicetest.Organiser, ev.ID, 1)
	var floor *domain.CapacityFloorError
	require.ErrorAs(t, err, &floor)
	assert.Equal(t, 4, floor.Held)
	assert.Equal(t, 3, floor.MustRemove())
	assert.ErrorIs(t, err, domain.ErrValidation)

	got, err := svc.UpdateCapacity(context.Background(), servicetest.Organiser, ev.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Capacity)
}

func TestEventService_UpdateCapacity_RaiseNotifiesWaitlist(t *testing.T) {
	env := servicetest.New(t)
	listener := &MockCapacityListener{}
	svc := newService(env, nil, listener)
	ev := env.Event(t, func(e *domain.Event) { e.Capacity = 2 })
	ctx := context.Background()

	listener.On("OnCapacityFreed", ctx, ev.ID).Return(1).Once()
	_, err := svc.UpdateCapacity(ctx, servicetest.Admin, ev.ID, 3)
	require.NoError(t, err)

	_, err = svc.UpdateCapacity(ctx, servicetest.Admin, ev.ID, 2)
	require.NoError(t, err)
	listener.AssertExpectations(t)
}

func TestEventService_UpdateCapacity_Rejections(t *testing.T) {
	env := servicetest.New(t)
	svc := newService(env, nil, nil)
	ev := env.Event(t)
	closed := env.Event(t, func(e *domain.Event) { e.Status = domain.EventStatusCompleted })
	ctx := context.Background()

	_, err := svc.UpdateCapacity(ctx, servicetest.Bob, ev.ID, 20)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = svc.UpdateCapacity(ctx, servicetest.Organiser, ev.ID, 0)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.UpdateCapacity(ctx, servicetest.Organiser, closed.ID, 20)
	assert.ErrorIs(t, err, domain.ErrEventNotActive)

	_, err = svc.UpdateCapacity(ctx, servicetest.Organiser, 4040, 20)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEventService_Cancel(t *testing.T) {
	env := servicetest.New(t)
	svc := newService(env, nil, nil)
	ev := env.Event(t)
	env.Ticket(t, ev.ID, servicetest.Alice.UserID)
	env.Ticket(t, ev.ID, servicetest.Alice.UserID)
	env.Ticket(t, ev.ID, servicetest.Bob.UserID)
	ctx := context.Background()

	_, err := svc.Cancel(ctx, servicetest.Bob, ev.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	got, err := svc.Cancel(ctx, servicetest.Organiser, ev.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.EventStatusCancelled, got.Status)

	held, _ := env.Store.CountHeldTickets(ctx, ev.ID)
	assert.Zero(t, held)
	assert.Len(t, env.Inbox(servicetest.Alice.UserID), 1, "one notification per holder")
	assert.Len(t, env.Inbox(servicetest.Bob.UserID), 1)

	_, err = svc.Cancel(ctx, servicetest.Organiser, ev.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyFinal)
}

func TestEventService_ListAttendees(t *testing.T) {
	env := servicetest.New(t)
	svc := newService(env, nil, nil)
	ev := env.Event(t)
	env.Ticket(t, ev.ID, servicetest.Alice.UserID)
	ctx := context.Background()

	tickets, err := svc.ListAttendees(ctx, servicetest.Organiser, ev.ID)
	require.NoError(t, err)
	assert.Len(t, tickets, 1)

	_, err = svc.ListAttendees(ctx, servicetest.Alice, ev.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestEventService_Report(t *testing.T) {
	env := servicetest.New(t)
	svc := newService(env, nil, nil)
	ev := env.Event(t)
	ctx := context.Background()

	flag, err := svc.Report(ctx, servicetest.Bob, ev.ID, "misleading venue")
	require.NoError(t, err)
	assert.NotZero(t, flag.ID)
	assert.Len(t, env.Store.EventFlags(ev.ID), 1)

	_, err = svc.Report(ctx, servicetest.Bob, ev.ID, "")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Report(ctx, servicetest.Bob, 999, "spam")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
