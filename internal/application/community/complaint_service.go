package community

import (
	"context"

	"github.com/google/uuid"

	"github.com/Manzp111/smartville/internal/domain/community"
	"github.com/Manzp111/smartville/internal/domain/policy"
	"github.com/Manzp111/smartville/internal/domain/shared"
)

// ComplaintService handles resident complaints
type ComplaintService struct {
	complaintRepo community.ComplaintRepository
}

// NewComplaintService creates a new ComplaintService
func NewComplaintService(complaintRepo community.ComplaintRepository) *ComplaintService {
	return &ComplaintService{complaintRepo: complaintRepo}
}

// Create files a pending complaint in the actor's village
func (s *ComplaintService) Create(ctx context.Context, actor policy.Actor, req CreateComplaintRequest) (*ComplaintResponse, error) {
	villageID, err := resolveVillage(actor, req.VillageID)
	if err != nil {
		return nil, err
	}

	if err := policy.Authorize(actor, policy.ActionCreate, policy.Resource{
		Type: "complaint", VillageID: villageID,
	}); err != nil {
		return nil, err
	}

	complaint, err := community.NewComplaint(villageID, actor.UserID, req.Subject, req.Description)
	if err != nil {
		return nil, err
	}

	if err := s.complaintRepo.Save(ctx, complaint); err != nil {
		return nil, err
	}
	return toComplaintResponse(complaint), nil
}

// GetByID returns a single complaint
func (s *ComplaintService) GetByID(ctx context.Context, actor policy.Actor, id uuid.UUID) (*ComplaintResponse, error) {
	complaint, err := s.complaintRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := policy.Authorize(actor, policy.ActionRead, policy.Resource{
		Type: "complaint", VillageID: complaint.VillageID, OwnerID: complaint.AddedBy,
	}); err != nil {
		return nil, err
	}
	return toComplaintResponse(complaint), nil
}

// List returns complaints visible to the actor
func (s *ComplaintService) List(ctx context.Context, actor policy.Actor, filter shared.Filter) (*shared.Paginated[ComplaintResponse], error) {
	scope := policy.Scope(actor, "complaint")
	items, total, err := s.complaintRepo.List(ctx, scope, filter)
	if err != nil {
		return nil, err
	}

	out := make([]ComplaintResponse, len(items))
	for i := range items {
		out[i] = *toComplaintResponse(&items[i])
	}
	result := shared.NewPaginated(out, total, filter.Page, filter.PageSize)
	return &result, nil
}

// Resolve closes a complaint (leader or admin)
func (s *ComplaintService) Resolve(ctx context.Context, actor policy.Actor, id uuid.UUID, req ResolveComplaintRequest) (*ComplaintResponse, error) {
	complaint, err := s.complaintRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := policy.Authorize(actor, policy.ActionChangeStatus, policy.Resource{
		Type: "complaint", VillageID: complaint.VillageID,
	}); err != nil {
		return nil, err
	}

	if err := complaint.Resolve(req.Resolution); err != nil {
		return nil, err
	}
	if err := s.complaintRepo.Save(ctx, complaint); err != nil {
		return nil, err
	}
	return toComplaintResponse(complaint), nil
}

// Delete removes a complaint
func (s *ComplaintService) Delete(ctx context.Context, actor policy.Actor, id uuid.UUID) error {
	complaint, err := s.complaintRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := policy.Authorize(actor, policy.ActionDelete, policy.Resource{
		Type: "complaint", VillageID: complaint.VillageID, OwnerID: complaint.AddedBy,
	}); err != nil {
		return err
	}
	return s.complaintRepo.Delete(ctx, complaint.ID)
}
