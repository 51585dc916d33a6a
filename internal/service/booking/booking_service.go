package booking

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Domenick1991/eventbooking/internal/clock"
	"github.com/Domenick1991/eventbooking/internal/domain"
	"github.com/Domenick1991/eventbooking/internal/notify"
	"github.com/Domenick1991/eventbooking/internal/payment"
	"github.com/Domenick1991/eventbooking/internal/repository"
	"github.com/Domenick1991/eventbooking/internal/service/access"
	"github.com/Domenick1991/eventbooking/internal/service/transitions"
	"github.com/google/uuid"
)

// DefaultMaxPerOrder caps how many tickets one reservation may create.
const DefaultMaxPerOrder = 10

type BookingUseCase interface {
	Reserve(ctx context.Context, who domain.Identity, input ReserveInput) ([]domain.Ticket, error)
	CancelTicket(ctx context.Context, who domain.Identity, ticketID int64) (*domain.Ticket, error)
	RemoveAttendee(ctx context.Context, who domain.Identity, ticketID int64, reason string) (*domain.Ticket, error)
	ListTickets(ctx context.Context, who domain.Identity) ([]domain.Ticket, error)
}

// CapacityListener is told when an event may have a free slot again.
type CapacityListener interface {
	OnCapacityFreed(ctx context.Context, eventID int64) int
}

type ReserveInput struct {
	EventID           int64  `json:"event_id"`
	Quantity          int    `json:"quantity"`
	PaymentInstrument string `json:"payment_instrument,omitempty"`
}

type BookingService struct {
	store       repository.Store
	payments    payment.Authorizer
	waitlist    CapacityListener
	notifier    *notify.Notifier
	clock       clock.Clock
	log         *slog.Logger
	newCode     func() string
	maxPerOrder int
}

type BookingServiceOption func(*BookingService)

// WithCodeGenerator replaces the ticket code generator.
func WithCodeGenerator(gen func() string) BookingServiceOption {
	return func(s *BookingService) { s.newCode = gen }
}

func WithMaxPerOrder(n int) BookingServiceOption {
	return func(s *BookingService) {
		if n > 0 {
			s.maxPerOrder = n
		}
	}
}

func NewBookingService(
	store repository.Store,
	payments payment.Authorizer,
	waitlist CapacityListener,
	notifier *notify.Notifier,
	clk clock.Clock,
	log *slog.Logger,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		store:       store,
		payments:    payments,
		waitlist:    waitlist,
		notifier:    notifier,
		clock:       clk,
		log:         log,
		newCode:     NewTicketCode,
		maxPerOrder: DefaultMaxPerOrder,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// NewTicketCode returns an opaque 32 character check-in code.
func NewTicketCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
}

// Reserve issues input.Quantity tickets for the caller. The event row stays
// locked from the capacity check until the tickets are written, so
// concurrent reservations for one event never oversell it.
func (s *BookingService) Reserve(ctx context.Context, who domain.Identity, input ReserveInput) ([]domain.Ticket, error) {
	if err := access.Require(ctx, s.store, who); err != nil {
		return nil, err
	}
	if input.Quantity < 1 {
		return nil, domain.Invalid("quantity", "must be at least 1")
	}
	if input.Quantity > s.maxPerOrder {
		return nil, domain.Invalid("quantity", fmt.Sprintf("at most %d tickets per order", s.maxPerOrder))
	}

	var (
		event   *domain.Event
		tickets []domain.Ticket
	)
	err := s.store.WithinTx(ctx, func(ctx context.Context, tx repository.Repository) error {
		var err error
		event, err = tx.LockEvent(ctx, input.EventID)
		if err != nil {
			return fmt.Errorf("lock event %d: %w", input.EventID, err)
		}
		now := s.clock.Now()
		if err := event.Bookable(now); err != nil {
			return err
		}

		held, err := tx.CountHeldTickets(ctx, event.ID)
		if err != nil {
			return fmt.Errorf("count held tickets: %w", err)
		}
		if input.Quantity > event.Remaining(held) {
			return &domain.CapacityExceededError{Requested: input.Quantity, Remaining: event.Remaining(held)}
		}

		if event.Priced() {
			if err := s.authorize(ctx, event.PriceCents*int64(input.Quantity), input.PaymentInstrument); err != nil {
				return err
			}
		}

		tickets = make([]domain.Ticket, 0, input.Quantity)
		for i := 0; i < input.Quantity; i++ {
			t := domain.Ticket{
				EventID:        event.ID,
				HolderID:       who.UserID,
				Code:           s.newCode(),
				PricePaidCents: event.PriceCents,
				Status:         domain.TicketStatusActive,
				PurchasedAt:    now,
			}
			if err := tx.InsertTicket(ctx, &t); err != nil {
				return fmt.Errorf("insert ticket: %w", err)
			}
			tickets = append(tickets, t)
		}

		if _, err := tx.RemoveWaitlistEntry(ctx, event.ID, who.UserID); err != nil {
			return fmt.Errorf("remove waitlist entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "tickets reserved",
		slog.Int64("event_id", event.ID), slog.String("holder_id", who.UserID), slog.Int("quantity", len(tickets)))
	s.notifier.Send(ctx, notify.BookingConfirmed(event, who.UserID, tickets))
	return tickets, nil
}

func (s *BookingService) authorize(ctx context.Context, amount int64, instrument string) error {
	if strings.TrimSpace(instrument) == "" {
		return domain.Invalid("payment_instrument", "required for a priced event")
	}
	if s.payments == nil {
		return fmt.Errorf("%w: no payment authorizer configured", domain.ErrInternal)
	}
	ok, err := s.payments.Authorize(ctx, amount, instrument)
	if err != nil {
		return fmt.Errorf("%w: authorize payment: %v", domain.ErrInternal, err)
	}
	if !ok {
		return domain.ErrPaymentDeclined
	}
	return nil
}

// CancelTicket lets the holder give a ticket back until shortly before the
// event starts.
func (s *BookingService) CancelTicket(ctx context.Context, who domain.Identity, ticketID int64) (*domain.Ticket, error) {
	if err := access.Require(ctx, s.store, who); err != nil {
		return nil, err
	}
	ticket, err := s.release(ctx, ticketID, func(e *domain.Event, t *domain.Ticket) (domain.Transition, error) {
		if t.HolderID != who.UserID {
			return domain.Transition{}, domain.ErrForbidden
		}
		return domain.Transition{Trigger: domain.TriggerCancel, Event: *e, Now: s.clock.Now(), Reason: "cancelled by holder"}, nil
	})
	if err != nil {
		return nil, err
	}
	s.log.InfoContext(ctx, "ticket cancelled", slog.Int64("ticket_id", ticket.ID), slog.String("holder_id", ticket.HolderID))
	s.waitlist.OnCapacityFreed(ctx, ticket.EventID)
	return ticket, nil
}

// RemoveAttendee cancels someone else's ticket on behalf of the event's
// organiser or an admin.
func (s *BookingService) RemoveAttendee(ctx context.Context, who domain.Identity, ticketID int64, reason string) (*domain.Ticket, error) {
	if err := access.Require(ctx, s.store, who); err != nil {
		return nil, err
	}
	var event domain.Event
	ticket, err := s.release(ctx, ticketID, func(e *domain.Event, _ *domain.Ticket) (domain.Transition, error) {
		if !who.CanManage(e) {
			return domain.Transition{}, domain.ErrForbidden
		}
		event = *e
		return domain.Transition{Trigger: domain.TriggerRemove, Event: *e, Now: s.clock.Now(), Reason: strings.TrimSpace(reason)}, nil
	})
	if err != nil {
		return nil, err
	}
	s.log.InfoContext(ctx, "attendee removed",
		slog.Int64("ticket_id", ticket.ID), slog.String("holder_id", ticket.HolderID), slog.String("by", who.UserID))
	s.notifier.Send(ctx, notify.AttendeeRemoved(&event, ticket))
	s.waitlist.OnCapacityFreed(ctx, ticket.EventID)
	return ticket, nil
}

// release locks the ticket's event and then the ticket, asks decide for the
// transition and applies it.
func (s *BookingService) release(ctx context.Context, ticketID int64, decide func(*domain.Event, *domain.Ticket) (domain.Transition, error)) (*domain.Ticket, error) {
	var ticket *domain.Ticket
	err := s.store.WithinTx(ctx, func(ctx context.Context, tx repository.Repository) error {
		peek, err := tx.GetTicket(ctx, ticketID)
		if err != nil {
			return fmt.Errorf("get ticket %d: %w", ticketID, err)
		}
		event, err := tx.LockEvent(ctx, peek.EventID)
		if err != nil {
			return fmt.Errorf("lock event %d: %w", peek.EventID, err)
		}
		ticket, err = tx.LockTicket(ctx, ticketID)
		if err != nil {
			return fmt.Errorf("lock ticket %d: %w", ticketID, err)
		}
		tr, err := decide(event, ticket)
		if err != nil {
			return err
		}
		return transitions.ApplyTicket(ctx, tx, ticket, tr)
	})
	if err != nil {
		return nil, err
	}
	return ticket, nil
}

func (s *BookingService) ListTickets(ctx context.Context, who domain.Identity) ([]domain.Ticket, error) {
	if err := access.Require(ctx, s.store, who); err != nil {
		return nil, err
	}
	tickets, err := s.store.ListTickets(ctx, repository.TicketFilter{HolderID: who.UserID})
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	return tickets, nil
}

var _ BookingUseCase = (*BookingService)(nil)
