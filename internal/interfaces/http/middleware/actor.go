package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Manzp111/smartville/internal/domain/directory"
	"github.com/Manzp111/smartville/internal/domain/policy"
	"github.com/Manzp111/smartville/internal/domain/residency"
	"github.com/Manzp111/smartville/internal/domain/shared"
	"github.com/Manzp111/smartville/internal/infrastructure/logger"
)

// ActorKey is the gin context key the resolved actor is stored under
const ActorKey = "actor"

// ActorResolver builds the policy actor for each authenticated request.
// The token only carries identity and role; the actor's village changes
// as residencies and leaderships change, so it is looked up fresh on
// every request rather than baked into the token.
type ActorResolver struct {
	villageRepo   directory.VillageRepository
	residencyRepo residency.Repository
}

// NewActorResolver creates an ActorResolver
func NewActorResolver(villageRepo directory.VillageRepository, residencyRepo residency.Repository) *ActorResolver {
	return &ActorResolver{
		villageRepo:   villageRepo,
		residencyRepo: residencyRepo,
	}
}

// Middleware resolves the actor from JWT claims and stores it in the
// gin context. Requests without claims pass through as anonymous; the
// handlers decide whether that is acceptable.
func (r *ActorResolver) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetJWTClaims(c)
		if claims == nil {
			c.Set(ActorKey, policy.Anonymous())
			c.Next()
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.Set(ActorKey, policy.Anonymous())
			c.Next()
			return
		}

		ctx := c.Request.Context()
		actor := r.resolve(c, userID, claims.Role, claims.PersonID)

		if actor.VillageID != uuid.Nil {
			log := logger.FromContext(ctx)
			ctx, _ = logger.WithVillageID(ctx, log, actor.VillageID.String())
			c.Request = c.Request.WithContext(ctx)
		}

		c.Set(ActorKey, actor)
		c.Next()
	}
}

func (r *ActorResolver) resolve(c *gin.Context, userID uuid.UUID, role, personIDStr string) policy.Actor {
	ctx := c.Request.Context()
	log := logger.FromContext(ctx)

	personID := uuid.Nil
	if personIDStr != "" {
		if id, err := uuid.Parse(personIDStr); err == nil {
			personID = id
		}
	}

	switch directory.Role(role) {
	case directory.RoleAdmin:
		return policy.Admin(userID)

	case directory.RoleLeader:
		village, err := r.villageRepo.FindByLeader(ctx, userID)
		if err != nil {
			if !errors.Is(err, shared.ErrNotFound) {
				log.Warn("failed to load led village",
					zap.String("user_id", userID.String()),
					zap.Error(err))
			}
			return policy.Leader(userID, uuid.Nil)
		}
		actor := policy.Leader(userID, village.ID)
		actor.PersonID = personID
		return actor

	case directory.RoleResident:
		if personID == uuid.Nil {
			return policy.Resident(userID, uuid.Nil, uuid.Nil)
		}
		res, err := r.residencyRepo.FindActiveByPerson(ctx, personID)
		if err != nil {
			if !errors.Is(err, shared.ErrNotFound) {
				log.Warn("failed to load active residency",
					zap.String("person_id", personID.String()),
					zap.Error(err))
			}
			return policy.Resident(userID, personID, uuid.Nil)
		}
		// A pending or rejected residency does not attach the actor
		// to the village yet.
		if res.Status != residency.StatusApproved {
			return policy.Resident(userID, personID, uuid.Nil)
		}
		return policy.Resident(userID, personID, res.VillageID)
	}

	return policy.Anonymous()
}

// GetActor retrieves the resolved actor from the gin context
func GetActor(c *gin.Context) policy.Actor {
	if v, exists := c.Get(ActorKey); exists {
		if actor, ok := v.(policy.Actor); ok {
			return actor
		}
	}
	return policy.Anonymous()
}
