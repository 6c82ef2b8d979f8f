package persistence

import (
	"context"
	"errors"

	"github.com/Manzp111/smartville/internal/domain/directory"
	"github.com/Manzp111/smartville/internal/domain/shared"
	"github.com/Manzp111/smartville/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPersonRepository implements PersonRepository using GORM
type GormPersonRepository struct {
	db *gorm.DB
}

// NewGormPersonRepository creates a new GormPersonRepository
func NewGormPersonRepository(db *gorm.DB) *GormPersonRepository {
	return &GormPersonRepository{db: db}
}

// FindByID finds a person by ID
func (r *GormPersonRepository) FindByID(ctx context.Context, id uuid.UUID) (*directory.Person, error) {
	var model models.PersonModel
	if err := r.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByNationalID finds a person by national ID
func (r *GormPersonRepository) FindByNationalID(ctx context.Context, nationalID int64) (*directory.Person, error) {
	var model models.PersonModel
	if err := r.db.WithContext(ctx).
		Where("national_id = ? AND is_deleted = ?", nationalID, false).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save creates or updates a person
func (r *GormPersonRepository) Save(ctx context.Context, person *directory.Person) error {
	model := models.PersonModelFromDomain(person)
	return r.db.WithContext(ctx).Save(model).Error
}

// Ensure GormPersonRepository implements PersonRepository
var _ directory.PersonRepository = (*GormPersonRepository)(nil)
