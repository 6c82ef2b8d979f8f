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

// GormContactRepository implements ContactRepository using GORM
type GormContactRepository struct {
	db *gorm.DB
}

// NewGormContactRepository creates a new GormContactRepository
func NewGormContactRepository(db *gorm.DB) *GormContactRepository {
	return &GormContactRepository{db: db}
}

// FindByID finds an emergency contact by ID
func (r *GormContactRepository) FindByID(ctx context.Context, id uuid.UUID) (*community.EmergencyContact, error) {
	var model models.ContactModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// List finds emergency contacts visible under the scope
func (r *GormContactRepository) List(ctx context.Context, scope policy.Predicate, filter shared.Filter) ([]community.EmergencyContact, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&models.ContactModel{}).
		Scopes(datascope.Scope(scope, datascope.DefaultColumns()))

	if filter.Search != "" {
		pattern := "%" + escapeLike(filter.Search) + "%"
		base = base.Where("name ILIKE ? OR service_type ILIKE ?", pattern, pattern)
	}
	for key, value := range filter.Filters {
		switch key {
		case "service_type":
			base = base.Where("service_type = ?", value)
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

	var contactModels []models.ContactModel
	if err := query.Find(&contactModels).Error; err != nil {
		return nil, 0, err
	}

	contacts := make([]community.EmergencyContact, len(contactModels))
	for i, model := range contactModels {
		contacts[i] = *model.ToDomain()
	}
	return contacts, total, nil
}

// Save creates or updates an emergency contact
func (r *GormContactRepository) Save(ctx context.Context, contact *community.EmergencyContact) error {
	model := models.ContactModelFromDomain(contact)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete removes an emergency contact
func (r *GormContactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ContactModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormContactRepository implements ContactRepository
var _ community.ContactRepository = (*GormContactRepository)(nil)
