package directory

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Manzp111/smartville/internal/domain/directory"
	"github.com/Manzp111/smartville/internal/domain/policy"
	"github.com/Manzp111/smartville/internal/domain/shared"
)

// LeaderService manages village leadership. Every operation is
// admin-only; a village holds at most one leader and a leader leads at
// most one village.
type LeaderService struct {
	userRepo    directory.UserRepository
	villageRepo directory.VillageRepository
	logger      *zap.Logger
}

// NewLeaderService creates a new LeaderService
func NewLeaderService(userRepo directory.UserRepository, villageRepo directory.VillageRepository, logger *zap.Logger) *LeaderService {
	return &LeaderService{
		userRepo:    userRepo,
		villageRepo: villageRepo,
		logger:      logger,
	}
}

// Promote makes the user the leader of the village, replacing any
// current leader. The replaced leader is demoted back to resident.
func (s *LeaderService) Promote(ctx context.Context, actor policy.Actor, req PromoteLeaderRequest) (*VillageResponse, error) {
	if err := s.adminOnly(actor); err != nil {
		return nil, err
	}

	village, err := s.villageRepo.FindByID(ctx, req.VillageID)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.ErrVillageNotFound
		}
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	// a user cannot lead two villages
	if existing, err := s.villageRepo.FindByLeader(ctx, user.ID); err == nil && existing.ID != village.ID {
		return nil, shared.NewDomainError("ALREADY_LEADER", "User already leads another village")
	} else if err != nil && err != shared.ErrNotFound {
		return nil, err
	}

	if village.HasLeader() && *village.LeaderID != user.ID {
		if err := s.demote(ctx, *village.LeaderID); err != nil {
			return nil, err
		}
	}

	if user.Role != directory.RoleLeader {
		if err := user.PromoteToLeader(); err != nil {
			return nil, err
		}
		if err := s.userRepo.Save(ctx, user); err != nil {
			return nil, err
		}
	}

	if err := village.AssignLeader(user.ID); err != nil {
		return nil, err
	}
	if err := s.villageRepo.Save(ctx, village); err != nil {
		return nil, err
	}

	s.logger.Info("village leader assigned",
		zap.String("village", village.Village),
		zap.String("leader", user.Email))
	return toVillageResponse(village), nil
}

// Demote removes the village's leader and returns them to resident
func (s *LeaderService) Demote(ctx context.Context, actor policy.Actor, villageID uuid.UUID) (*VillageResponse, error) {
	if err := s.adminOnly(actor); err != nil {
		return nil, err
	}

	village, err := s.villageRepo.FindByID(ctx, villageID)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.ErrVillageNotFound
		}
		return nil, err
	}
	if !village.HasLeader() {
		return nil, shared.NewDomainError("NO_LEADER", "Village has no leader to remove")
	}

	if err := s.demote(ctx, *village.LeaderID); err != nil {
		return nil, err
	}

	village.RemoveLeader()
	if err := s.villageRepo.Save(ctx, village); err != nil {
		return nil, err
	}
	return toVillageResponse(village), nil
}

// ListLeaders returns every user with the leader role
func (s *LeaderService) ListLeaders(ctx context.Context, actor policy.Actor) ([]UserResponse, error) {
	if err := s.adminOnly(actor); err != nil {
		return nil, err
	}

	leaders, err := s.userRepo.FindLeaders(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]UserResponse, len(leaders))
	for i := range leaders {
		out[i] = *toUserResponse(&leaders[i])
	}
	return out, nil
}

func (s *LeaderService) demote(ctx context.Context, userID uuid.UUID) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := user.DemoteToResident(); err != nil {
		return err
	}
	return s.userRepo.Save(ctx, user)
}

func (s *LeaderService) adminOnly(actor policy.Actor) error {
	if actor.Role != policy.RoleAdmin {
		return &policy.PermissionDenied{
			Reason: policy.DenyNoCapability,
			Detail: "leader management requires the admin role",
		}
	}
	return nil
}
