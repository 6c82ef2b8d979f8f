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

// GormVisitorRepository implements VisitorRepository using GORM
type GormVisitorRepository struct {
	db *gorm.DB
}

// NewGormVisitorRepository creates a new GormVisitorRepository
func NewGormVisitorRepository(db *gorm.DB) *GormVisitorRepository {
	return &GormVisitorRepository{db: db}
}

// FindByID finds a visitor record by ID
func (r *GormVisitorRepository) FindByID(ctx context.Context, id uuid.UUID) (*community.Visitor, error) {
	var model models.VisitorModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// List finds visitor records visible under the scope. Residents see the
// visitors they registered, including rows where they are the recorded
// host person.
func (r *GormVisitorRepository) List(ctx context.Context, scope policy.Predicate, filter shared.Filter) ([]community.Visitor, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&models.VisitorModel{}).
		Scopes(datascope.Scope(scope, datascope.DefaultColumns()))

	for key, value := range filter.Filters {
		switch key {
		case "village_id":
			base = base.Where("village_id = ?", value)
		case "staying":
			if value == true {
				base = base.Where("time_out IS NULL")
			} else {
				base = base.Where("time_out IS NOT NULL")
			}
		}
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := applyOrdering(base, filter, VisitorSortFields, "time_in")
	query = applyPagination(query, filter)

	var visitorModels []models.VisitorModel
	if err := query.Find(&visitorModels).Error; err != nil {
		return nil, 0, err
	}

	visitors := make([]community.Visitor, len(visitorModels))
	for i, model := range visitorModels {
		visitors[i] = *model.ToDomain()
	}
	return visitors, total, nil
}

// Save creates or updates a visitor record
func (r *GormVisitorRepository) Save(ctx context.Context, visitor *community.Visitor) error {
	model := models.VisitorModelFromDomain(visitor)
	return r.db.WithContext(ctx).Save(model).Error
}

// Ensure GormVisitorRepository implements VisitorRepository
var _ community.VisitorRepository = (*GormVisitorRepository)(nil)
