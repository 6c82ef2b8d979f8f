package community

import (
	"context"

	"github.com/google/uuid"

	"github.com/Manzp111/smartville/internal/domain/community"
	"github.com/Manzp111/smartville/internal/domain/policy"
	"github.com/Manzp111/smartville/internal/domain/shared"
)

// VolunteeringService handles volunteering events and sign-ups
type VolunteeringService struct {
	volunteeringRepo community.VolunteeringRepository
}

// NewVolunteeringService creates a new VolunteeringService
func NewVolunteeringService(volunteeringRepo community.VolunteeringRepository) *VolunteeringService {
	return &VolunteeringService{volunteeringRepo: volunteeringRepo}
}

// Create announces a volunteering event in the actor's village
func (s *VolunteeringService) Create(ctx context.Context, actor policy.Actor, req CreateVolunteeringRequest) (*VolunteeringResponse, error) {
	villageID, err := resolveVillage(actor, req.VillageID)
	if err != nil {
		return nil, err
	}

	if err := policy.Authorize(actor, policy.ActionCreate, policy.Resource{
		Type: "volunteering", VillageID: villageID,
	}); err != nil {
		return nil, err
	}

	event, err := community.NewVolunteeringEvent(villageID, actor.UserID, req.Title, req.Description, req.Date)
	if err != nil {
		return nil, err
	}
	event.Location = req.Location
	event.SkillsRequired = req.SkillsRequired
	event.MaxParticipants = req.MaxParticipants

	if err := s.volunteeringRepo.Save(ctx, event); err != nil {
		return nil, err
	}
	return toVolunteeringResponse(event, 0), nil
}

// GetByID returns a single volunteering event with its sign-up count
func (s *VolunteeringService) GetByID(ctx context.Context, actor policy.Actor, id uuid.UUID) (*VolunteeringResponse, error) {
	event, err := s.volunteeringRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := policy.Authorize(actor, policy.ActionRead, policy.Resource{
		Type: "volunteering", VillageID: event.VillageID, OwnerID: event.AddedBy,
	}); err != nil {
		return nil, err
	}

	participants, err := s.volunteeringRepo.CountParticipation(ctx, event.ID)
	if err != nil {
		return nil, err
	}
	return toVolunteeringResponse(event, participants), nil
}

// List returns volunteering events visible to the actor
func (s *VolunteeringService) List(ctx context.Context, actor policy.Actor, filter shared.Filter) (*shared.Paginated[VolunteeringResponse], error) {
	scope := policy.Scope(actor, "volunteering")
	items, total, err := s.volunteeringRepo.List(ctx, scope, filter)
	if err != nil {
		return nil, err
	}

	out := make([]VolunteeringResponse, len(items))
	for i := range items {
		out[i] = *toVolunteeringResponse(&items[i], 0)
	}
	result := shared.NewPaginated(out, total, filter.Page, filter.PageSize)
	return &result, nil
}

// Participate signs the actor up, respecting the participant limit
func (s *VolunteeringService) Participate(ctx context.Context, actor policy.Actor, id uuid.UUID) error {
	event, err := s.volunteeringRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := policy.Authorize(actor, policy.ActionRead, policy.Resource{
		Type: "volunteering", VillageID: event.VillageID, OwnerID: event.AddedBy,
	}); err != nil {
		return err
	}

	current, err := s.volunteeringRepo.CountParticipation(ctx, event.ID)
	if err != nil {
		return err
	}
	if event.Full(current) {
		return shared.NewDomainError("EVENT_FULL", "Volunteering event has reached its participant limit")
	}

	return s.volunteeringRepo.AddParticipation(ctx, community.NewParticipation(event.ID, actor.UserID))
}

// Delete removes a volunteering event
func (s *VolunteeringService) Delete(ctx context.Context, actor policy.Actor, id uuid.UUID) error {
	event, err := s.volunteeringRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := policy.Authorize(actor, policy.ActionDelete, policy.Resource{
		Type: "volunteering", VillageID: event.VillageID, OwnerID: event.AddedBy,
	}); err != nil {
		return err
	}
	return s.volunteeringRepo.Delete(ctx, event.ID)
}
