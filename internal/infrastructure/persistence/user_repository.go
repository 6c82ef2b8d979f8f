package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/Manzp111/smartville/internal/domain/directory"
	"github.com/Manzp111/smartville/internal/domain/shared"
	"github.com/Manzp111/smartville/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormUserRepository implements UserRepository using GORM
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GormUserRepository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*directory.User, error) {
	var model models.UserModel
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

// FindByEmail finds a user by email, case-insensitively
func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*directory.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).
		Where("email = ? AND is_deleted = ?", strings.ToLower(email), false).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByPerson finds the user account linked to a person
func (r *GormUserRepository) FindByPerson(ctx context.Context, personID uuid.UUID) (*directory.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).
		Where("person_id = ? AND is_deleted = ?", personID, false).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindLeaders finds all users holding the leader role
func (r *GormUserRepository) FindLeaders(ctx context.Context) ([]directory.User, error) {
	var userModels []models.UserModel
	if err := r.db.WithContext(ctx).
		Where("role = ? AND is_deleted = ?", directory.RoleLeader, false).
		Order("email ASC").
		Find(&userModels).Error; err != nil {
		return nil, err
	}

	users := make([]directory.User, len(userModels))
	for i, model := range userModels {
		users[i] = *model.ToDomain()
	}
	return users, nil
}

// Save creates or updates a user
func (r *GormUserRepository) Save(ctx context.Context, user *directory.User) error {
	model := models.UserModelFromDomain(user)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		if isUniqueViolation(err) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// Ensure GormUserRepository implements UserRepository
var _ directory.UserRepository = (*GormUserRepository)(nil)
