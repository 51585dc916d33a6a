package tickets_service_api

import (
	"context"
	"net"
	"testing"

	"github.com/Domenick1991/eventbooking/internal/api/rpc"
	"github.com/Domenick1991/eventbooking/internal/domain"
	"github.com/Domenick1991/eventbooking/internal/pb/models"
	"github.com/Domenick1991/eventbooking/internal/pb/tickets_api"
	"github.com/Domenick1991/eventbooking/internal/payment"
	"github.com/Domenick1991/eventbooking/internal/service/booking"
	"github.com/Domenick1991/eventbooking/internal/service/checkin"
	"github.com/Domenick1991/eventbooking/internal/service/servicetest"
	"github.com/Domenick1991/eventbooking/internal/service/waitlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

type harness struct {
	env    *servicetest.Env
	client tickets_api.TicketsServiceClient
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	env := servicetest.New(t)

	wl := waitlist.NewWaitlistService(env.Store, env.Notifier, env.Clock, env.Log)
	bk := booking.NewBookingService(env.Store, payment.Sandbox{}, wl, env.Notifier, env.Clock, env.Log,
		booking.WithCodeGenerator(env.Code))
	ci := checkin.NewCheckInService(env.Store, env.Clock, env.Log)

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(rpc.UnaryInterceptor(env.Log)))
	tickets_api.RegisterTicketsServiceServer(srv, NewServer(bk, ci, wl))
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return &harness{env: env, client: tickets_api.NewTicketsServiceClient(conn)}
}

func as(who domain.Identity) context.Context {
	return rpc.WithIdentity(context.Background(), who)
}

func TestTicketsService_ReserveAndCancel(t *testing.T) {
	h := newHarness(t)
	event := h.env.Event(t)

	reserved, err := h.client.ReserveTickets(as(servicetest.Alice), &tickets_api.ReserveTicketsRequest{EventId: event.ID, Quantity: 2})
	require.NoError(t, err)
	require.Len(t, reserved.GetTickets(), 2)
	assert.Equal(t, "alice", reserved.GetTickets()[0].GetHolderId())
	assert.Equal(t, models.TicketStatus_TICKET_STATUS_ACTIVE, reserved.GetTickets()[0].GetStatus())

	cancelled, err := h.client.CancelTicket(as(servicetest.Alice), &tickets_api.CancelTicketRequest{TicketId: reserved.GetTickets()[0].GetId()})
	require.NoError(t, err)
	assert.Equal(t, models.TicketStatus_TICKET_STATUS_CANCELLED, cancelled.GetTicket().GetStatus())
}

func TestTicketsService_CapacityExceeded(t *testing.T) {
	h := newHarness(t)
	event := h.env.Event(t, func(e *domain.Event) { e.Capacity = 1 })

	_, err := h.client.ReserveTickets(as(servicetest.Alice), &tickets_api.ReserveTicketsRequest{EventId: event.ID, Quantity: 2})

	assert.Equal(t, codes.ResourceExhausted, status.Code(err))
}

func TestTicketsService_AnonymousRejected(t *testing.T) {
	h := newHarness(t)
	event := h.env.Event(t)

	_, err := h.client.ReserveTickets(context.Background(), &tickets_api.ReserveTicketsRequest{EventId: event.ID, Quantity: 1})

	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestTicketsService_CheckInTwice(t *testing.T) {
	h := newHarness(t)
	event := h.env.Event(t)
	ticket := h.env.Ticket(t, event.ID, "alice")
	req := &tickets_api.CheckInTicketRequest{EventId: event.ID, Code: ticket.Code}

	first, err := h.client.CheckInTicket(as(servicetest.Organiser), req)
	require.NoError(t, err)
	assert.Equal(t, models.TicketStatus_TICKET_STATUS_COMPLETED, first.GetTicket().GetStatus())

	_, err = h.client.CheckInTicket(as(servicetest.Organiser), req)
	assert.Equal(t, codes.AlreadyExists, status.Code(err))
}

func TestTicketsService_Waitlist(t *testing.T) {
	h := newHarness(t)
	event := h.env.Event(t)
	req := &tickets_api.WaitlistRequest{EventId: event.ID}

	joined, err := h.client.JoinWaitlist(as(servicetest.Bob), req)
	require.NoError(t, err)
	assert.True(t, joined.GetJoined())

	joined, err = h.client.JoinWaitlist(as(servicetest.Bob), req)
	require.NoError(t, err)
	assert.False(t, joined.GetJoined())

	_, err = h.client.LeaveWaitlist(as(servicetest.Bob), req)
	require.NoError(t, err)

	entries, err := h.env.Store.ListWaitlist(context.Background(), event.ID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestToPBTicket_Nil(t *testing.T) {
	assert.Nil(t, toPBTicket(nil))
	assert.Equal(t, models.TicketStatus_TICKET_STATUS_UNSPECIFIED, toPBTicketStatus(domain.TicketStatus("lost")))
}
