package community

import (
	"context"

	"github.com/google/uuid"

	"github.com/Manzp111/smartville/internal/application/notification"
	"github.com/Manzp111/smartville/internal/domain/community"
	"github.com/Manzp111/smartville/internal/domain/directory"
	"github.com/Manzp111/smartville/internal/domain/policy"
	"github.com/Manzp111/smartville/internal/domain/residency"
	"github.com/Manzp111/smartville/internal/domain/shared"
)

// VisitorService registers guests staying with resident hosts. A
// visitor can only be registered against an approved residency, and the
// village leader is informed of every registration.
type VisitorService struct {
	visitorRepo   community.VisitorRepository
	residencyRepo residency.Repository
	personRepo    directory.PersonRepository
	villageRepo   directory.VillageRepository
	userRepo      directory.UserRepository
	dispatcher    notification.Dispatcher
}

// NewVisitorService creates a new VisitorService
func NewVisitorService(
	visitorRepo community.VisitorRepository,
	residencyRepo residency.Repository,
	personRepo directory.PersonRepository,
	villageRepo directory.VillageRepository,
	userRepo directory.UserRepository,
	dispatcher notification.Dispatcher,
) *VisitorService {
	return &VisitorService{
		visitorRepo:   visitorRepo,
		residencyRepo: residencyRepo,
		personRepo:    personRepo,
		villageRepo:   villageRepo,
		userRepo:      userRepo,
		dispatcher:    dispatcher,
	}
}

// Register checks a visitor in with a host residency
func (s *VisitorService) Register(ctx context.Context, actor policy.Actor, req RegisterVisitorRequest) (*VisitorResponse, error) {
	host, err := s.residencyRepo.FindByID(ctx, req.HostResidencyID)
	if err != nil {
		return nil, err
	}

	if host.Status != residency.StatusApproved || host.IsDeleted {
		return nil, shared.NewDomainError("HOST_NOT_APPROVED", "Host must hold an approved residency")
	}

	// residents may only host their own visitors; leaders and admins
	// may register for anyone in scope
	if err := policy.Authorize(actor, policy.ActionCreate, policy.Resource{
		Type: "visitor", VillageID: host.VillageID,
	}); err != nil {
		return nil, err
	}
	if actor.Role == policy.RoleResident && host.PersonID != actor.PersonID {
		return nil, &policy.PermissionDenied{
			Reason: policy.DenyWrongScope,
			Detail: "visitors can only be registered against your own residency",
		}
	}

	person, err := directory.NewPerson(req.FirstName, req.LastName, directory.PersonTypeVisitor)
	if err != nil {
		return nil, err
	}
	if req.PhoneNumber != "" {
		if err := person.SetPhoneNumber(req.PhoneNumber); err != nil {
			return nil, err
		}
	}
	if err := s.personRepo.Save(ctx, person); err != nil {
		return nil, err
	}

	visitor, err := community.NewVisitor(host.VillageID, actor.UserID, person.ID, host.ID, req.Purpose)
	if err != nil {
		return nil, err
	}
	if err := s.visitorRepo.Save(ctx, visitor); err != nil {
		return nil, err
	}

	s.notifyLeader(ctx, host.VillageID, person.DisplayName(), host.PersonID)

	return toVisitorResponse(visitor), nil
}

// GetByID returns a single visitor record
func (s *VisitorService) GetByID(ctx context.Context, actor policy.Actor, id uuid.UUID) (*VisitorResponse, error) {
	visitor, err := s.visitorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := policy.Authorize(actor, policy.ActionRead, policy.Resource{
		Type: "visitor", VillageID: visitor.VillageID, OwnerID: visitor.AddedBy,
	}); err != nil {
		return nil, err
	}
	return toVisitorResponse(visitor), nil
}

// List returns visitor records visible to the actor
func (s *VisitorService) List(ctx context.Context, actor policy.Actor, filter shared.Filter) (*shared.Paginated[VisitorResponse], error) {
	scope := policy.Scope(actor, "visitor")
	items, total, err := s.visitorRepo.List(ctx, scope, filter)
	if err != nil {
		return nil, err
	}

	out := make([]VisitorResponse, len(items))
	for i := range items {
		out[i] = *toVisitorResponse(&items[i])
	}
	result := shared.NewPaginated(out, total, filter.Page, filter.PageSize)
	return &result, nil
}

// CheckOut records the visitor leaving
func (s *VisitorService) CheckOut(ctx context.Context, actor policy.Actor, id uuid.UUID) (*VisitorResponse, error) {
	visitor, err := s.visitorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := policy.Authorize(actor, policy.ActionUpdate, policy.Resource{
		Type: "visitor", VillageID: visitor.VillageID, OwnerID: visitor.AddedBy,
	}); err != nil {
		return nil, err
	}

	if err := visitor.CheckOut(); err != nil {
		return nil, err
	}
	if err := s.visitorRepo.Save(ctx, visitor); err != nil {
		return nil, err
	}
	return toVisitorResponse(visitor), nil
}

func (s *VisitorService) notifyLeader(ctx context.Context, villageID uuid.UUID, visitorName string, hostPersonID uuid.UUID) {
	village, err := s.villageRepo.FindByID(ctx, villageID)
	if err != nil || !village.HasLeader() {
		return
	}
	leader, err := s.userRepo.FindByID(ctx, *village.LeaderID)
	if err != nil || leader.Email == "" {
		return
	}

	hostName := ""
	if hostPerson, err := s.personRepo.FindByID(ctx, hostPersonID); err == nil {
		hostName = hostPerson.DisplayName()
	}

	s.dispatcher.Dispatch(ctx, notification.VisitorJob(leader.Email, visitorName, hostName, village.Village))
}
