// Package residency implements the membership use-cases: the ledger
// service for joining, moderating and removing residencies, and the
// migration coordinator for moving a person between villages.
package residency

import (
	"context"

	"github.com/google/uuid"

	"github.com/Manzp111/smartville/internal/application/notification"
	"github.com/Manzp111/smartville/internal/domain/directory"
	"github.com/Manzp111/smartville/internal/domain/policy"
	"github.com/Manzp111/smartville/internal/domain/residency"
	"github.com/Manzp111/smartville/internal/domain/shared"
)

// LedgerService handles residency lifecycle operations
type LedgerService struct {
	residencyRepo residency.Repository
	villageRepo   directory.VillageRepository
	personRepo    directory.PersonRepository
	userRepo      directory.UserRepository
	txRunner      residency.TxRunner
	dispatcher    notification.Dispatcher
}

// NewLedgerService creates a new LedgerService
func NewLedgerService(
	residencyRepo residency.Repository,
	villageRepo directory.VillageRepository,
	personRepo directory.PersonRepository,
	userRepo directory.UserRepository,
	txRunner residency.TxRunner,
	dispatcher notification.Dispatcher,
) *LedgerService {
	return &LedgerService{
		residencyRepo: residencyRepo,
		villageRepo:   villageRepo,
		personRepo:    personRepo,
		userRepo:      userRepo,
		txRunner:      txRunner,
		dispatcher:    dispatcher,
	}
}

// RequestJoin records a pending membership request for a person in a
// village. A person may hold only one non-deleted residency at a time,
// so a second request is rejected with DuplicateResidency.
func (s *LedgerService) RequestJoin(ctx context.Context, actor policy.Actor, req JoinRequest) (*ResidencyResponse, error) {
	if err := s.authorizeJoin(actor, req.PersonID, req.VillageID); err != nil {
		return nil, err
	}

	village, err := s.villageRepo.FindByID(ctx, req.VillageID)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.ErrVillageNotFound
		}
		return nil, err
	}

	person, err := s.personRepo.FindByID(ctx, req.PersonID)
	if err != nil {
		return nil, err
	}

	if _, err := s.residencyRepo.FindActiveByPerson(ctx, req.PersonID); err == nil {
		return nil, shared.ErrDuplicateResidency
	} else if err != shared.ErrNotFound {
		return nil, err
	}

	record, err := residency.NewResidency(req.PersonID, req.VillageID, actor.UserID)
	if err != nil {
		return nil, err
	}

	// the partial unique index catches a concurrent writer that slipped
	// past the check above
	if err := s.residencyRepo.Save(ctx, record); err != nil {
		return nil, err
	}

	s.notifyLeader(ctx, village, func(email string) notification.Job {
		return notification.JoinJob(email, person.DisplayName(), village.Village)
	})

	return toResponse(record), nil
}

// Approve marks a pending residency as approved
func (s *LedgerService) Approve(ctx context.Context, actor policy.Actor, residencyID uuid.UUID) (*ResidencyResponse, error) {
	return s.moderate(ctx, actor, residencyID, residency.StatusApproved)
}

// Reject marks a pending residency as rejected
func (s *LedgerService) Reject(ctx context.Context, actor policy.Actor, residencyID uuid.UUID) (*ResidencyResponse, error) {
	return s.moderate(ctx, actor, residencyID, residency.StatusRejected)
}

func (s *LedgerService) moderate(ctx context.Context, actor policy.Actor, residencyID uuid.UUID, status residency.Status) (*ResidencyResponse, error) {
	record, err := s.residencyRepo.FindByID(ctx, residencyID)
	if err != nil {
		return nil, err
	}

	if err := policy.Authorize(actor, policy.ActionChangeStatus, policy.Resource{
		Type:      "residency",
		VillageID: record.VillageID,
	}); err != nil {
		return nil, err
	}

	if status == residency.StatusApproved {
		err = record.Approve()
	} else {
		err = record.Reject()
	}
	if err != nil {
		return nil, err
	}

	if err := s.residencyRepo.Save(ctx, record); err != nil {
		return nil, err
	}
	return toResponse(record), nil
}

// UpdateStatus approves or rejects a batch of residencies in one
// transaction. Any failure rolls the whole batch back.
func (s *LedgerService) UpdateStatus(ctx context.Context, actor policy.Actor, req UpdateStatusRequest) ([]ResidencyResponse, error) {
	if req.Status != residency.StatusApproved && req.Status != residency.StatusRejected {
		return nil, shared.NewDomainError("VALIDATION_STATUS", "Status must be APPROVED or REJECTED")
	}

	updated := make([]residency.Residency, 0, len(req.ResidencyIDs))
	err := s.txRunner.InTx(ctx, func(repo residency.Repository) error {
		for _, id := range req.ResidencyIDs {
			record, err := repo.FindByID(ctx, id)
			if err != nil {
				return err
			}

			if err := policy.Authorize(actor, policy.ActionChangeStatus, policy.Resource{
				Type:      "residency",
				VillageID: record.VillageID,
			}); err != nil {
				return err
			}

			if req.Status == residency.StatusApproved {
				err = record.Approve()
			} else {
				err = record.Reject()
			}
			if err != nil {
				return err
			}

			if err := repo.Save(ctx, record); err != nil {
				return err
			}
			updated = append(updated, *record)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toResponseList(updated), nil
}

// SoftDelete tombstones a residency. Allowed for admins, the village's
// leader and the residency's own person.
func (s *LedgerService) SoftDelete(ctx context.Context, actor policy.Actor, residencyID uuid.UUID) error {
	record, err := s.residencyRepo.FindByID(ctx, residencyID)
	if err != nil {
		return err
	}

	if err := policy.Authorize(actor, policy.ActionDelete, policy.Resource{
		Type:      "residency",
		VillageID: record.VillageID,
		PersonID:  record.PersonID,
	}); err != nil {
		return err
	}

	if err := record.SoftDelete(); err != nil {
		return err
	}
	return s.residencyRepo.Save(ctx, record)
}

// Restore brings a soft-deleted residency back at its pre-deletion
// status. Fails with DuplicateResidency if the person has acquired
// another active residency since the deletion.
func (s *LedgerService) Restore(ctx context.Context, actor policy.Actor, residencyID uuid.UUID) (*ResidencyResponse, error) {
	record, err := s.residencyRepo.FindByID(ctx, residencyID)
	if err != nil {
		return nil, err
	}

	if err := policy.Authorize(actor, policy.ActionDelete, policy.Resource{
		Type:      "residency",
		VillageID: record.VillageID,
		PersonID:  record.PersonID,
	}); err != nil {
		return nil, err
	}

	if _, err := s.residencyRepo.FindActiveByPerson(ctx, record.PersonID); err == nil {
		return nil, shared.ErrDuplicateResidency
	} else if err != shared.ErrNotFound {
		return nil, err
	}

	if err := record.Restore(); err != nil {
		return nil, err
	}
	if err := s.residencyRepo.Save(ctx, record); err != nil {
		return nil, err
	}
	return toResponse(record), nil
}

// GetByID returns a single residency visible to the actor
func (s *LedgerService) GetByID(ctx context.Context, actor policy.Actor, residencyID uuid.UUID) (*ResidencyResponse, error) {
	record, err := s.residencyRepo.FindByID(ctx, residencyID)
	if err != nil {
		return nil, err
	}

	if err := policy.Authorize(actor, policy.ActionRead, policy.Resource{
		Type:      "residency",
		VillageID: record.VillageID,
		PersonID:  record.PersonID,
	}); err != nil {
		return nil, err
	}
	return toResponse(record), nil
}

// List returns the residencies the actor may see, paginated
func (s *LedgerService) List(ctx context.Context, actor policy.Actor, filter shared.Filter) (*shared.Paginated[ResidencyResponse], error) {
	scope := policy.Scope(actor, "residency")
	items, total, err := s.residencyRepo.List(ctx, scope, filter)
	if err != nil {
		return nil, err
	}
	result := shared.NewPaginated(toResponseList(items), total, filter.Page, filter.PageSize)
	return &result, nil
}

// GetByUser returns the active residency of the person behind a user account
func (s *LedgerService) GetByUser(ctx context.Context, actor policy.Actor, userID uuid.UUID) (*ResidencyResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.PersonID == nil {
		return nil, shared.ErrNotFound
	}

	record, err := s.residencyRepo.FindActiveByPerson(ctx, *user.PersonID)
	if err != nil {
		return nil, err
	}

	if err := policy.Authorize(actor, policy.ActionRead, policy.Resource{
		Type:      "residency",
		VillageID: record.VillageID,
		PersonID:  record.PersonID,
		OwnerID:   userID,
	}); err != nil {
		return nil, err
	}
	return toResponse(record), nil
}

// authorizeJoin implements the join rule: admins add anyone, leaders add
// people to their own village, everyone else may only request for their
// own person.
func (s *LedgerService) authorizeJoin(actor policy.Actor, personID, villageID uuid.UUID) error {
	if !actor.Authenticated() {
		return policy.Authorize(actor, policy.ActionCreate, policy.Resource{Type: "residency"})
	}
	switch actor.Role {
	case policy.RoleAdmin:
		return nil
	case policy.RoleLeader:
		if villageID == actor.VillageID {
			return nil
		}
	}
	if personID == actor.PersonID && actor.PersonID != uuid.Nil {
		return nil
	}
	return &policy.PermissionDenied{
		Reason: policy.DenyWrongScope,
		Detail: "join requests can only be made for yourself",
	}
}

// notifyLeader dispatches a job to the village leader if the village has
// one with a known email. Absent leaders are skipped silently.
func (s *LedgerService) notifyLeader(ctx context.Context, village *directory.Village, build func(email string) notification.Job) {
	if !village.HasLeader() {
		return
	}
	leader, err := s.userRepo.FindByID(ctx, *village.LeaderID)
	if err != nil || leader.Email == "" {
		return
	}
	s.dispatcher.Dispatch(ctx, build(leader.Email))
}
