package community

import (
	"context"

	"github.com/google/uuid"

	"github.com/Manzp111/smartville/internal/domain/community"
	"github.com/Manzp111/smartville/internal/domain/policy"
	"github.com/Manzp111/smartville/internal/domain/shared"
)

// EventService handles community events and attendance
type EventService struct {
	eventRepo community.EventRepository
}

// NewEventService creates a new EventService
func NewEventService(eventRepo community.EventRepository) *EventService {
	return &EventService{eventRepo: eventRepo}
}

// Create announces a pending event in the actor's village
func (s *EventService) Create(ctx context.Context, actor policy.Actor, req CreateEventRequest) (*EventResponse, error) {
	villageID, err := resolveVillage(actor, req.VillageID)
	if err != nil {
		return nil, err
	}

	if err := policy.Authorize(actor, policy.ActionCreate, policy.Resource{
		Type: "event", VillageID: villageID,
	}); err != nil {
		return nil, err
	}

	event, err := community.NewEvent(villageID, actor.UserID, req.Title, req.Description, req.EventDate)
	if err != nil {
		return nil, err
	}
	event.Location = req.Location
	event.StartTime = req.StartTime
	event.EndTime = req.EndTime

	if err := s.eventRepo.Save(ctx, event); err != nil {
		return nil, err
	}
	return toEventResponse(event, 0), nil
}

// GetByID returns a single event
func (s *EventService) GetByID(ctx context.Context, actor policy.Actor, id uuid.UUID) (*EventResponse, error) {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := policy.Authorize(actor, policy.ActionRead, policy.Resource{
		Type: "event", VillageID: event.VillageID, OwnerID: event.AddedBy,
	}); err != nil {
		return nil, err
	}

	attendees, err := s.eventRepo.CountAttendance(ctx, event.ID)
	if err != nil {
		return nil, err
	}
	return toEventResponse(event, attendees), nil
}

// List returns events visible to the actor
func (s *EventService) List(ctx context.Context, actor policy.Actor, filter shared.Filter) (*shared.Paginated[EventResponse], error) {
	scope := policy.Scope(actor, "event")
	items, total, err := s.eventRepo.List(ctx, scope, filter)
	if err != nil {
		return nil, err
	}

	out := make([]EventResponse, len(items))
	for i := range items {
		out[i] = *toEventResponse(&items[i], 0)
	}
	result := shared.NewPaginated(out, total, filter.Page, filter.PageSize)
	return &result, nil
}

// UpdateStatus moderates an event (leader or admin)
func (s *EventService) UpdateStatus(ctx context.Context, actor policy.Actor, id uuid.UUID, req UpdateEventStatusRequest) (*EventResponse, error) {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := policy.Authorize(actor, policy.ActionChangeStatus, policy.Resource{
		Type: "event", VillageID: event.VillageID,
	}); err != nil {
		return nil, err
	}

	switch req.Status {
	case community.EventApproved:
		err = event.Approve()
	case community.EventRejected:
		err = event.Reject()
	case community.EventCancelled:
		err = event.Cancel()
	default:
		return nil, shared.NewDomainError("VALIDATION_STATUS", "Status must be APPROVED, REJECTED or CANCELLED")
	}
	if err != nil {
		return nil, err
	}

	if err := s.eventRepo.Save(ctx, event); err != nil {
		return nil, err
	}
	return toEventResponse(event, 0), nil
}

// Cancel withdraws an event. The author may cancel their own event.
func (s *EventService) Cancel(ctx context.Context, actor policy.Actor, id uuid.UUID) (*EventResponse, error) {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := policy.Authorize(actor, policy.ActionUpdate, policy.Resource{
		Type: "event", VillageID: event.VillageID, OwnerID: event.AddedBy,
	}); err != nil {
		return nil, err
	}

	if err := event.Cancel(); err != nil {
		return nil, err
	}
	if err := s.eventRepo.Save(ctx, event); err != nil {
		return nil, err
	}
	return toEventResponse(event, 0), nil
}

// Attend signs the actor up for an approved event
func (s *EventService) Attend(ctx context.Context, actor policy.Actor, id uuid.UUID) error {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := policy.Authorize(actor, policy.ActionRead, policy.Resource{
		Type: "event", VillageID: event.VillageID, OwnerID: event.AddedBy,
	}); err != nil {
		return err
	}

	if !event.Open() {
		return shared.NewDomainError("EVENT_CLOSED", "Event is not open for attendance")
	}

	return s.eventRepo.AddAttendance(ctx, community.NewAttendance(event.ID, actor.UserID))
}

// Delete removes an event
func (s *EventService) Delete(ctx context.Context, actor policy.Actor, id uuid.UUID) error {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := policy.Authorize(actor, policy.ActionDelete, policy.Resource{
		Type: "event", VillageID: event.VillageID, OwnerID: event.AddedBy,
	}); err != nil {
		return err
	}
	return s.eventRepo.Delete(ctx, event.ID)
}
