package persistence

import (
	"context"
	"errors"

	"github.com/Manzp111/smartville/internal/domain/community"
	"github.com/Manzp111/smartville/internal/domain/policy"
	"github.com/Manzp111/smartville/internal/domain/shared"
	"github.com/Manzp111/smartville/internal/infrastructure/persistence/datascope"
	"github.com/Manzp111/smartville/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormVolunteeringRepository implements VolunteeringRepository using GORM
type GormVolunteeringRepository struct {
	db *gorm.DB
}

// NewGormVolunteeringRepository creates a new GormVolunteeringRepository
func NewGormVolunteeringRepository(db *gorm.DB) *GormVolunteeringRepository {
	return &GormVolunteeringRepository{db: db}
}

// FindByID finds a volunteering event by ID
func (r *GormVolunteeringRepository) FindByID(ctx context.Context, id uuid.UUID) (*community.VolunteeringEvent, error) {
	var model models.VolunteeringModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// List finds volunteering events visible under the scope
func (r *GormVolunteeringRepository) List(ctx context.Context, scope policy.Predicate, filter shared.Filter) ([]community.VolunteeringEvent, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&models.VolunteeringModel{}).
		Scopes(datascope.Scope(scope, datascope.DefaultColumns()))

	if filter.Search != "" {
		pattern := "%" + escapeLike(filter.Search) + "%"
		base = base.Where("title ILIKE ? OR skills_required ILIKE ?", pattern, pattern)
	}
	for key, value := range filter.Filters {
		if key == "village_id" {
			base = base.Where("village_id = ?", value)
		}
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := applyOrdering(base, filter, VolunteeringSortFields, "date")
	query = applyPagination(query, filter)

	var volunteeringModels []models.VolunteeringModel
	if err := query.Find(&volunteeringModels).Error; err != nil {
		return nil, 0, err
	}

	events := make([]community.VolunteeringEvent, len(volunteeringModels))
	for i, model := range volunteeringModels {
		events[i] = *model.ToDomain()
	}
	return events, total, nil
}

// Save creates or updates a volunteering event
func (r *GormVolunteeringRepository) Save(ctx context.Context, event *community.VolunteeringEvent) error {
	model := models.VolunteeringModelFromDomain(event)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete removes a volunteering event
func (r *GormVolunteeringRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.VolunteeringModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// AddParticipation records a user signing up for a volunteering event
func (r *GormVolunteeringRepository) AddParticipation(ctx context.Context, participation *community.Participation) error {
	model := &models.ParticipationModel{}
	model.FromDomain(participation)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isUniqueViolation(err) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// CountParticipation counts signups for a volunteering event
func (r *GormVolunteeringRepository) CountParticipation(ctx context.Context, eventID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ParticipationModel{}).
		Where("volunteering_event_id = ?", eventID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormVolunteeringRepository implements VolunteeringRepository
var _ community.VolunteeringRepository = (*GormVolunteeringRepository)(nil)
