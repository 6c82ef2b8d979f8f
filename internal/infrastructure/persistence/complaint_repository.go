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

// GormComplaintRepository implements ComplaintRepository using GORM
type GormComplaintRepository struct {
	db *gorm.DB
}

// NewGormComplaintRepository creates a new GormComplaintRepository
func NewGormComplaintRepository(db *gorm.DB) *GormComplaintRepository {
	return &GormComplaintRepository{db: db}
}

// FindByID finds a complaint by ID
func (r *GormComplaintRepository) FindByID(ctx context.Context, id uuid.UUID) (*community.Complaint, error) {
	var model models.ComplaintModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// List finds complaints visible under the scope
func (r *GormComplaintRepository) List(ctx context.Context, scope policy.Predicate, filter shared.Filter) ([]community.Complaint, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&models.ComplaintModel{}).
		Scopes(datascope.Scope(scope, datascope.DefaultColumns()))

	if filter.Search != "" {
		pattern := "%" + escapeLike(filter.Search) + "%"
		base = base.Where("subject ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	for key, value := range filter.Filters {
		switch key {
		case "status":
			base = base.Where("status = ?", value)
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

	var complaintModels []models.ComplaintModel
	if err := query.Find(&complaintModels).Error; err != nil {
		return nil, 0, err
	}

	complaints := make([]community.Complaint, len(complaintModels))
	for i, model := range complaintModels {
		complaints[i] = *model.ToDomain()
	}
	return complaints, total, nil
}

// Save creates or updates a complaint
func (r *GormComplaintRepository) Save(ctx context.Context, complaint *community.Complaint) error {
	model := models.ComplaintModelFromDomain(complaint)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete removes a complaint
func (r *GormComplaintRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ComplaintModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormComplaintRepository implements ComplaintRepository
var _ community.ComplaintRepository = (*GormComplaintRepository)(nil)
