package events_service_api

import (
	"context"
	"time"

	"github.com/Domenick1991/eventbooking/internal/domain"
	"github.com/Domenick1991/eventbooking/internal/pb/events_api"
	"github.com/Domenick1991/eventbooking/internal/pb/models"
	"github.com/Domenick1991/eventbooking/internal/service/events"
	"google.golang.org/protobuf/types/known/emptypb"
)

// Server exposes the public event catalogue over gRPC.
type Server struct {
	events events.EventUseCase
	events_api.UnimplementedEventsServiceServer
}

func NewServer(events events.EventUseCase) *Server {
	return &Server{events: events}
}

func (s *Server) ListEvents(ctx context.Context, _ *emptypb.Empty) (*events_api.ListEventsResponse, error) {
	list, err := s.events.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := &events_api.ListEventsResponse{Events: make([]*models.Event, 0, len(list))}
	for i := range list {
		resp.Events = append(resp.Events, toPBEvent(&list[i]))
	}
	return resp, nil
}

func (s *Server) GetEvent(ctx context.Context, req *events_api.GetEventRequest) (*events_api.GetEventResponse, error) {
	e, err := s.events.Get(ctx, req.GetId())
	if err != nil {
		return nil, err
	}
	return &events_api.GetEventResponse{Event: toPBEvent(e)}, nil
}

func toPBEvent(e *domain.Event) *models.Event {
	if e == nil {
		return nil
	}
	return &models.Event{
		Id:          e.ID,
		OrganiserId: e.OrganiserID,
		Title:       e.Title,
		Description: e.Description,
		Venue:       e.Venue,
		Capacity:    int32(e.Capacity),
		PriceCents:  e.PriceCents,
		StartAt:     e.StartAt.Format(time.RFC3339),
		EndAt:       e.EndAt.Format(time.RFC3339),
		Status:      toPBEventStatus(e.Status),
	}
}

func toPBEventStatus(s domain.EventStatus) models.EventStatus {
	switch s {
	case domain.EventStatusActive:
		return models.EventStatus_EVENT_STATUS_ACTIVE
	case domain.EventStatusCompleted:
		return models.EventStatus_EVENT_STATUS_COMPLETED
	case domain.EventStatusCancelled:
		return models.EventStatus_EVENT_STATUS_CANCELLED
	default:
		return models.EventStatus_EVENT_STATUS_UNSPECIFIED
	}
}
