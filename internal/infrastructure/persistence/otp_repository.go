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

// GormOTPRepository implements OTPRepository using GORM
type GormOTPRepository struct {
	db *gorm.DB
}

// NewGormOTPRepository creates a new GormOTPRepository
func NewGormOTPRepository(db *gorm.DB) *GormOTPRepository {
	return &GormOTPRepository{db: db}
}

// FindActive finds an unused code matching user, purpose and code value.
// Expiry is checked by the domain entity on consumption.
func (r *GormOTPRepository) FindActive(ctx context.Context, userID uuid.UUID, purpose directory.OTPPurpose, code string) (*directory.OTP, error) {
	var model models.OTPModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND purpose = ? AND code = ? AND is_used = ?", userID, purpose, code, false).
		Order("created_at DESC").
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// LatestForUser finds the most recent code for a user and purpose
func (r *GormOTPRepository) LatestForUser(ctx context.Context, userID uuid.UUID, purpose directory.OTPPurpose) (*directory.OTP, error) {
	var model models.OTPModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND purpose = ?", userID, purpose).
		Order("created_at DESC").
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save creates or updates an OTP code
func (r *GormOTPRepository) Save(ctx context.Context, otp *directory.OTP) error {
	model := models.OTPModelFromDomain(otp)
	return r.db.WithContext(ctx).Save(model).Error
}

// Ensure GormOTPRepository implements OTPRepository
var _ directory.OTPRepository = (*GormOTPRepository)(nil)
