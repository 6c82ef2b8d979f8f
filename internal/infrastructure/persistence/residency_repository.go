package persistence

import (
	"context"
	"errors"

	"github.com/Manzp111/smartville/internal/domain/policy"
	"github.com/Manzp111/smartville/internal/domain/residency"
	"github.com/Manzp111/smartville/internal/domain/shared"
	"github.com/Manzp111/smartville/internal/infrastructure/persistence/datascope"
	"github.com/Manzp111/smartville/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// GormResidencyRepository implements residency.Repository using GORM.
//
// The residencies table carries a partial unique index on (person_id)
// WHERE is_deleted = false. Save maps violations of that index to
// shared.ErrDuplicateResidency so callers see a domain error instead
// of a driver error.
type GormResidencyRepository struct {
	db *gorm.DB
}

// NewGormResidencyRepository creates a new GormResidencyRepository
func NewGormResidencyRepository(db *gorm.DB) *GormResidencyRepository {
	return &GormResidencyRepository{db: db}
}

// FindByID finds a residency by ID, including soft-deleted rows
func (r *GormResidencyRepository) FindByID(ctx context.Context, id uuid.UUID) (*residency.Residency, error) {
	var model models.ResidencyModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindActiveByPerson finds the person's single non-deleted residency
func (r *GormResidencyRepository) FindActiveByPerson(ctx context.Context, personID uuid.UUID) (*residency.Residency, error) {
	var model models.ResidencyModel
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

// List finds non-deleted residencies visible under the scope
func (r *GormResidencyRepository) List(ctx context.Context, scope policy.Predicate, filter shared.Filter) ([]residency.Residency, int64, error) {
	cols := datascope.DefaultColumns().WithPerson("person_id")

	base := r.db.WithContext(ctx).
		Model(&models.ResidencyModel{}).
		Where("is_deleted = ?", false).
		Scopes(datascope.Scope(scope, cols))
	base = r.applyFilters(base, filter)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := applyOrdering(base, filter, ResidencySortFields, "created_at")
	query = applyPagination(query, filter)

	var residencyModels []models.ResidencyModel
	if err := query.Find(&residencyModels).Error; err != nil {
		return nil, 0, err
	}

	records := make([]residency.Residency, len(residencyModels))
	for i, model := range residencyModels {
		records[i] = *model.ToDomain()
	}
	return records, total, nil
}

// CountActiveByVillage counts approved, non-deleted residencies in a village
func (r *GormResidencyRepository) CountActiveByVillage(ctx context.Context, villageID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ResidencyModel{}).
		Where("village_id = ? AND status = ? AND is_deleted = ?", villageID, residency.StatusApproved, false).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a residency
func (r *GormResidencyRepository) Save(ctx context.Context, record *residency.Residency) error {
	model := models.ResidencyModelFromDomain(record)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		if isUniqueViolation(err) {
			return shared.ErrDuplicateResidency
		}
		return err
	}
	return nil
}

// applyFilters applies search and field filters without pagination
func (r *GormResidencyRepository) applyFilters(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "village_id":
			query = query.Where("village_id = ?", value)
		case "person_id":
			query = query.Where("person_id = ?", value)
		}
	}
	return query
}

// isUniqueViolation reports whether err is a unique index violation,
// from either GORM's translated error or the raw postgres error code.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

// GormTxRunner implements residency.TxRunner on a GORM transaction.
// The repository handed to fn writes through the transaction; any
// error returned by fn rolls the whole unit back.
type GormTxRunner struct {
	db *gorm.DB
}

// NewGormTxRunner creates a new GormTxRunner
func NewGormTxRunner(db *gorm.DB) *GormTxRunner {
	return &GormTxRunner{db: db}
}

// InTx executes fn inside a single database transaction
func (t *GormTxRunner) InTx(ctx context.Context, fn func(repo residency.Repository) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewGormResidencyRepository(tx))
	})
}

// Ensure interfaces are implemented
var (
	_ residency.Repository = (*GormResidencyRepository)(nil)
	_ residency.TxRunner   = (*GormTxRunner)(nil)
)
