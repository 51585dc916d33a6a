package notify

import (
	"fmt"
	"sort"

	"github.com/Domenick1991/eventbooking/internal/domain"
)

func eventNote(recipient string, e *domain.Event, title, body string) domain.Notification {
	return domain.Notification{
		RecipientID: recipient,
		Title:       title,
		Body:        body,
		EntityType:  domain.EntityEvent,
		EntityID:    e.ID,
	}
}

func BookingConfirmed(e *domain.Event, holderID string, tickets []domain.Ticket) domain.Notification {
	return eventNote(holderID, e, "Booking confirmed",
		fmt.Sprintf("You have %d ticket(s) for %q on %s.", len(tickets), e.Title, e.StartAt.Format("2006-01-02 15:04 MST")))
}

func SpotAvailable(e *domain.Event, userID string) domain.Notification {
	return eventNote(userID, e, "A spot opened up",
		fmt.Sprintf("Tickets for %q are available again. Book before they are gone.", e.Title))
}

func AttendeeRemoved(e *domain.Event, t *domain.Ticket) domain.Notification {
	return domain.Notification{
		RecipientID: t.HolderID,
		Title:       "Your ticket was cancelled",
		Body:        fmt.Sprintf("The organiser of %q cancelled ticket %s: %s", e.Title, t.Code, t.CancelReason),
		EntityType:  domain.EntityTicket,
		EntityID:    t.ID,
	}
}

func EventCancelled(e *domain.Event, holderID string) domain.Notification {
	return eventNote(holderID, e, "Event cancelled",
		fmt.Sprintf("%q has been cancelled and your tickets are void.", e.Title))
}

func EventCompleted(e *domain.Event, holderID string) domain.Notification {
	return eventNote(holderID, e, "Thanks for attending",
		fmt.Sprintf("%q has finished.", e.Title))
}

func Reminder(e *domain.Event, recipient string, w domain.ReminderWindow) domain.Notification {
	return eventNote(recipient, e, "Event reminder",
		fmt.Sprintf("%q starts in %s at %s.", e.Title, w, e.Venue))
}

// Holders returns the distinct holder ids of tickets in a stable order.
func Holders(tickets []domain.Ticket) []string {
	seen := make(map[string]struct{}, len(tickets))
	out := make([]string, 0, len(tickets))
	for _, t := range tickets {
		if _, ok := seen[t.HolderID]; ok {
			continue
		}
		seen[t.HolderID] = struct{}{}
		out = append(out, t.HolderID)
	}
	sort.Strings(out)
	return out
}
