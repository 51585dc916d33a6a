package tickets_service_api

import (
	"context"
	"time"

	"github.com/Domenick1991/eventbooking/internal/api/rpc"
	"github.com/Domenick1991/eventbooking/internal/domain"
	"github.com/Domenick1991/eventbooking/internal/pb/models"
	"github.com/Domenick1991/eventbooking/internal/pb/tickets_api"
	"github.com/Domenick1991/eventbooking/internal/service/booking"
	"github.com/Domenick1991/eventbooking/internal/service/checkin"
	"github.com/Domenick1991/eventbooking/internal/service/waitlist"
	"google.golang.org/protobuf/types/known/emptypb"
)

// Server implements the generated tickets gRPC interface over the booking,
// check-in and waitlist use cases.
type Server struct {
	bookings booking.BookingUseCase
	checkins checkin.CheckInUseCase
	waitlist waitlist.WaitlistUseCase
	tickets_api.UnimplementedTicketsServiceServer
}

func NewServer(bookings booking.BookingUseCase, checkins checkin.CheckInUseCase, waitlist waitlist.WaitlistUseCase) *Server {
	return &Server{bookings: bookings, checkins: checkins, waitlist: waitlist}
}

func (s *Server) ReserveTickets(ctx context.Context, req *tickets_api.ReserveTicketsRequest) (*tickets_api.ReserveTicketsResponse, error) {
	tickets, err := s.bookings.Reserve(ctx, rpc.Identity(ctx), booking.ReserveInput{
		EventID:           req.GetEventId(),
		Quantity:          int(req.GetQuantity()),
		PaymentInstrument: req.GetPaymentInstrument(),
	})
	if err != nil {
		return nil, err
	}
	resp := &tickets_api.ReserveTicketsResponse{Tickets: make([]*models.Ticket, 0, len(tickets))}
	for i := range tickets {
		resp.Tickets = append(resp.Tickets, toPBTicket(&tickets[i]))
	}
	return resp, nil
}

func (s *Server) CancelTicket(ctx context.Context, req *tickets_api.CancelTicketRequest) (*tickets_api.TicketResponse, error) {
	t, err := s.bookings.CancelTicket(ctx, rpc.Identity(ctx), req.GetTicketId())
	if err != nil {
		return nil, err
	}
	return &tickets_api.TicketResponse{Ticket: toPBTicket(t)}, nil
}

func (s *Server) CheckInTicket(ctx context.Context, req *tickets_api.CheckInTicketRequest) (*tickets_api.TicketResponse, error) {
	t, err := s.checkins.CheckIn(ctx, rpc.Identity(ctx), req.GetEventId(), req.GetCode())
	if err != nil {
		return nil, err
	}
	return &tickets_api.TicketResponse{Ticket: toPBTicket(t)}, nil
}

func (s *Server) JoinWaitlist(ctx context.Context, req *tickets_api.WaitlistRequest) (*tickets_api.JoinWaitlistResponse, error) {
	joined, err := s.waitlist.Join(ctx, rpc.Identity(ctx), req.GetEventId())
	if err != nil {
		return nil, err
	}
	return &tickets_api.JoinWaitlistResponse{Joined: joined}, nil
}

func (s *Server) LeaveWaitlist(ctx context.Context, req *tickets_api.WaitlistRequest) (*emptypb.Empty, error) {
	if err := s.waitlist.Leave(ctx, rpc.Identity(ctx), req.GetEventId()); err != nil {
		return nil, err
	}
	return &emptypb.Empty{}, nil
}

func toPBTicket(t *domain.Ticket) *models.Ticket {
	if t == nil {
		return nil
	}
	return &models.Ticket{
		Id:             t.ID,
		EventId:        t.EventID,
		HolderId:       t.HolderID,
		Code:           t.Code,
		PricePaidCents: t.PricePaidCents,
		Status:         toPBTicketStatus(t.Status),
		CancelReason:   t.CancelReason,
		PurchasedAt:    t.PurchasedAt.Format(time.RFC3339),
	}
}

func toPBTicketStatus(s domain.TicketStatus) models.TicketStatus {
	switch s {
	case domain.TicketStatusActive:
		return models.TicketStatus_TICKET_STATUS_ACTIVE
	case domain.TicketStatusCancelled:
		return models.TicketStatus_TICKET_STATUS_CANCELLED
	case domain.TicketStatusCompleted:
		return models.TicketStatus_TICKET_STATUS_COMPLETED
	default:
		return models.TicketStatus_TICKET_STATUS_UNSPECIFIED
	}
}
