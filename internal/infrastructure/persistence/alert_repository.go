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

// GormAlertRepository implements AlertRepository using GORM
type GormAlertRepository struct {
	db *gorm.DB
}

// NewGormAlertRepository creates a new GormAlertRepository
func NewGormAlertRepository(db *gorm.DB) *GormAlertRepository {
	return &GormAlertRepository{db: db}
}

// FindByID finds an alert by ID
func (r *GormAlertRepository) FindByID(ctx context.Context, id uuid.UUID) (*community.CommunityAlert, error) {
	var model models.AlertModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// List finds alerts visible under the scope
func (r *GormAlertRepository) List(ctx context.Context, scope policy.Predicate, filter shared.Filter) ([]community.CommunityAlert, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&models.AlertModel{}).
		Scopes(datascope.Scope(scope, datascope.DefaultColumns()))

	if filter.Search != "" {
		pattern := "%" + escapeLike(filter.Search) + "%"
		base = base.Where("alert_type ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	for key, value := range filter.Filters {
		switch key {
		case "status":
			base = base.Where("status = ?", value)
		case "urgency":
			base = base.Where("urgency = ?", value)
		case "village_id":
			base = base.Where("village_id = ?", value)
		}
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := applyOrdering(base, filter, CommonSortFields, "created_at")
	query = applyPagination(query, filter)

	var alertModels []models.AlertModel
	if err := query.Find(&alertModels).Error; err != nil {
		return nil, 0, err
	}

	alerts := make([]community.CommunityAlert, len(alertModels))
	for i, model := range alertModels {
		alerts[i] = *model.ToDomain()
	}
	return alerts, total, nil
}

// Save creates or updates an alert
func (r *GormAlertRepository) Save(ctx context.Context, alert *community.CommunityAlert) error {
	model := models.AlertModelFromDomain(alert)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete removes an alert
func (r *GormAlertRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.AlertModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormAlertRepository implements AlertRepository
var _ community.AlertRepository = (*GormAlertRepository)(nil)
