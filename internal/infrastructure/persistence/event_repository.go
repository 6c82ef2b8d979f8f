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

// GormEventRepository implements EventRepository using GORM
type GormEventRepository struct {
	db *gorm.DB
}

// NewGormEventRepository creates a new GormEventRepository
func NewGormEventRepository(db *gorm.DB) *GormEventRepository {
	return &GormEventRepository{db: db}
}

// FindByID finds an event by ID
func (r *GormEventRepository) FindByID(ctx context.Context, id uuid.UUID) (*community.Event, error) {
	var model models.EventModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// List finds events visible under the scope
func (r *GormEventRepository) List(ctx context.Context, scope policy.Predicate, filter shared.Filter) ([]community.Event, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&models.EventModel{}).
		Scopes(datascope.Scope(scope, datascope.DefaultColumns()))

	if filter.Search != "" {
		pattern := "%" + escapeLike(filter.Search) + "%"
		base = base.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
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

	query := applyOrdering(base, filter, EventSortFields, "event_date")
	query = applyPagination(query, filter)

	var eventModels []models.EventModel
	if err := query.Find(&eventModels).Error; err != nil {
		return nil, 0, err
	}

	events := make([]community.Event, len(eventModels))
	for i, model := range eventModels {
		events[i] = *model.ToDomain()
	}
	return events, total, nil
}

// CountByVillage counts events in a village
func (r *GormEventRepository) CountByVillage(ctx context.Context, villageID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.EventModel{}).
		Where("village_id = ?", villageID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates an event
func (r *GormEventRepository) Save(ctx context.Context, event *community.Event) error {
	model := models.EventModelFromDomain(event)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete removes an event
func (r *GormEventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.EventModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// AddAttendance records a user attending an event
func (r *GormEventRepository) AddAttendance(ctx context.Context, attendance *community.Attendance) error {
	model := &models.AttendanceModel{}
	model.FromDomain(attendance)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isUniqueViolation(err) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// CountAttendance counts attendees of an event
func (r *GormEventRepository) CountAttendance(ctx context.Context, eventID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.AttendanceModel{}).
		Where("event_id = ?", eventID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormEventRepository implements EventRepository
var _ community.EventRepository = (*GormEventRepository)(nil)
