package residency

import (
	"context"

	"go.uber.org/zap"

	"github.com/Manzp111/smartville/internal/application/notification"
	"github.com/Manzp111/smartville/internal/domain/directory"
	"github.com/Manzp111/smartville/internal/domain/policy"
	"github.com/Manzp111/smartville/internal/domain/residency"
	"github.com/Manzp111/smartville/internal/domain/shared"
	"github.com/google/uuid"
)

// MigrationService moves a person from their current village to a new
// one. The move is a single transaction: the old residency is
// soft-deleted and a fresh pending one is created in the destination,
// or neither happens.
type MigrationService struct {
	residencyRepo residency.Repository
	villageRepo   directory.VillageRepository
	personRepo    directory.PersonRepository
	userRepo      directory.UserRepository
	txRunner      residency.TxRunner
	dispatcher    notification.Dispatcher
	logger        *zap.Logger
}

// NewMigrationService creates a new MigrationService
func NewMigrationService(
	residencyRepo residency.Repository,
	villageRepo directory.VillageRepository,
	personRepo directory.PersonRepository,
	userRepo directory.UserRepository,
	txRunner residency.TxRunner,
	dispatcher notification.Dispatcher,
	logger *zap.Logger,
) *MigrationService {
	return &MigrationService{
		residencyRepo: residencyRepo,
		villageRepo:   villageRepo,
		personRepo:    personRepo,
		userRepo:      userRepo,
		txRunner:      txRunner,
		dispatcher:    dispatcher,
		logger:        logger,
	}
}

// Migrate moves the person to the destination village. The destination
// is looked up by its exact administrative tuple and must already exist;
// nothing is ever created implicitly. A person with no active residency
// simply gains a pending one in the destination. After the transaction
// commits, exactly one migration notification job is dispatched carrying
// both the old and the new leader's email, either of which may be absent.
func (s *MigrationService) Migrate(ctx context.Context, actor policy.Actor, req MigrateRequest) (*ResidencyResponse, error) {
	dest, err := s.villageRepo.FindByAttrs(ctx, req.Destination.Normalize())
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.ErrVillageNotFound
		}
		return nil, err
	}

	current, err := s.residencyRepo.FindActiveByPerson(ctx, req.PersonID)
	if err != nil && err != shared.ErrNotFound {
		return nil, err
	}

	currentVillageID := uuid.Nil
	if current != nil {
		currentVillageID = current.VillageID
	}
	if err := s.authorizeMigrate(actor, req.PersonID, currentVillageID); err != nil {
		return nil, err
	}

	if current != nil && dest.ID == current.VillageID {
		return nil, shared.ErrDuplicateResidency
	}

	var oldVillage *directory.Village
	if current != nil {
		oldVillage, err = s.villageRepo.FindByID(ctx, current.VillageID)
		if err != nil {
			return nil, err
		}
	}

	person, err := s.personRepo.FindByID(ctx, req.PersonID)
	if err != nil {
		return nil, err
	}

	var created *residency.Residency
	err = s.txRunner.InTx(ctx, func(repo residency.Repository) error {
		if current != nil {
			old, err := repo.FindByID(ctx, current.ID)
			if err != nil {
				return err
			}
			if err := old.SoftDelete(); err != nil {
				return err
			}
			if err := repo.Save(ctx, old); err != nil {
				return err
			}
		}

		created, err = residency.NewResidency(req.PersonID, dest.ID, actor.UserID)
		if err != nil {
			return err
		}
		return repo.Save(ctx, created)
	})
	if err != nil {
		if _, ok := err.(*shared.DomainError); ok {
			return nil, err
		}
		s.logger.Error("migration transaction failed",
			zap.String("person_id", req.PersonID.String()),
			zap.Error(err))
		return nil, shared.ErrTransactionFailure
	}

	oldName, oldEmail := "", ""
	if oldVillage != nil {
		oldName = oldVillage.Village
		oldEmail = s.leaderEmail(ctx, oldVillage)
	}
	s.dispatcher.Dispatch(ctx, notification.MigrationJob(
		person.DisplayName(),
		oldName,
		oldEmail,
		dest.Village,
		s.leaderEmail(ctx, dest),
	))

	return toResponse(created), nil
}

func (s *MigrationService) authorizeMigrate(actor policy.Actor, personID, currentVillageID uuid.UUID) error {
	if !actor.Authenticated() {
		return policy.Authorize(actor, policy.ActionUpdate, policy.Resource{Type: "residency"})
	}
	switch actor.Role {
	case policy.RoleAdmin:
		return nil
	case policy.RoleLeader:
		if currentVillageID == actor.VillageID {
			return nil
		}
	}
	if personID == actor.PersonID && actor.PersonID != uuid.Nil {
		return nil
	}
	return &policy.PermissionDenied{
		Reason: policy.DenyWrongScope,
		Detail: "migrations can only be requested for yourself",
	}
}

// leaderEmail resolves the village leader's email, empty when the
// village has no leader or the leader cannot be loaded
func (s *MigrationService) leaderEmail(ctx context.Context, village *directory.Village) string {
	if !village.HasLeader() {
		return ""
	}
	leader, err := s.userRepo.FindByID(ctx, *village.LeaderID)
	if err != nil {
		s.logger.Warn("could not resolve village leader for notification",
			zap.String("village", village.Village),
			zap.Error(err))
		return ""
	}
	return leader.Email
}
