package community

import (
	"context"

	"github.com/google/uuid"

	"github.com/Manzp111/smartville/internal/domain/community"
	"github.com/Manzp111/smartville/internal/domain/policy"
	"github.com/Manzp111/smartville/internal/domain/shared"
)

// ContactService handles emergency contacts
type ContactService struct {
	contactRepo community.ContactRepository
}

// NewContactService creates a new ContactService
func NewContactService(contactRepo community.ContactRepository) *ContactService {
	return &ContactService{contactRepo: contactRepo}
}

// Create adds an emergency contact to the actor's village
func (s *ContactService) Create(ctx context.Context, actor policy.Actor, req CreateContactRequest) (*ContactResponse, error) {
	villageID, err := resolveVillage(actor, req.VillageID)
	if err != nil {
		return nil, err
	}

	if err := policy.Authorize(actor, policy.ActionCreate, policy.Resource{
		Type: "contact", VillageID: villageID,
	}); err != nil {
		return nil, err
	}

	contact, err := community.NewEmergencyContact(villageID, actor.UserID, req.Name, req.ServiceType, req.PhoneNumber)
	if err != nil {
		return nil, err
	}

	if err := s.contactRepo.Save(ctx, contact); err != nil {
		return nil, err
	}
	return toContactResponse(contact), nil
}

// GetByID returns a single contact
func (s *ContactService) GetByID(ctx context.Context, actor policy.Actor, id uuid.UUID) (*ContactResponse, error) {
	contact, err := s.contactRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := policy.Authorize(actor, policy.ActionRead, policy.Resource{
		Type: "contact", VillageID: contact.VillageID, OwnerID: contact.AddedBy,
	}); err != nil {
		return nil, err
	}
	return toContactResponse(contact), nil
}

// List returns contacts visible to the actor
func (s *ContactService) List(ctx context.Context, actor policy.Actor, filter shared.Filter) (*shared.Paginated[ContactResponse], error) {
	scope := policy.Scope(actor, "contact")
	items, total, err := s.contactRepo.List(ctx, scope, filter)
	if err != nil {
		return nil, err
	}

	out := make([]ContactResponse, len(items))
	for i := range items {
		out[i] = *toContactResponse(&items[i])
	}
	result := shared.NewPaginated(out, total, filter.Page, filter.PageSize)
	return &result, nil
}

// Delete removes a contact
func (s *ContactService) Delete(ctx context.Context, actor policy.Actor, id uuid.UUID) error {
	contact, err := s.contactRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := policy.Authorize(actor, policy.ActionDelete, policy.Resource{
		Type: "contact", VillageID: contact.VillageID, OwnerID: contact.AddedBy,
	}); err != nil {
		return err
	}
	return s.contactRepo.Delete(ctx, contact.ID)
}
