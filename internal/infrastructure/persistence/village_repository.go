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

// GormVillageRepository implements VillageRepository using GORM
type GormVillageRepository struct {
	db *gorm.DB
}

// NewGormVillageRepository creates a new GormVillageRepository
func NewGormVillageRepository(db *gorm.DB) *GormVillageRepository {
	return &GormVillageRepository{db: db}
}

// FindByID finds a village by ID
func (r *GormVillageRepository) FindByID(ctx context.Context, id uuid.UUID) (*directory.Village, error) {
	var model models.VillageModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByAttrs finds a village by its exact administrative tuple
func (r *GormVillageRepository) FindByAttrs(ctx context.Context, attrs directory.VillageAttrs) (*directory.Village, error) {
	var model models.VillageModel
	if err := r.db.WithContext(ctx).
		Where("province = ? AND district = ? AND sector = ? AND cell = ? AND village = ?",
			attrs.Province, attrs.District, attrs.Sector, attrs.Cell, attrs.Village).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByLeader finds the village led by a user
func (r *GormVillageRepository) FindByLeader(ctx context.Context, leaderID uuid.UUID) (*directory.Village, error) {
	var model models.VillageModel
	if err := r.db.WithContext(ctx).
		Where("leader_id = ?", leaderID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// ListProvinces lists distinct province names
func (r *GormVillageRepository) ListProvinces(ctx context.Context) ([]string, error) {
	var provinces []string
	if err := r.db.WithContext(ctx).
		Model(&models.VillageModel{}).
		Distinct("province").
		Order("province ASC").
		Pluck("province", &provinces).Error; err != nil {
		return nil, err
	}
	return provinces, nil
}

// ListDistricts lists distinct district names within a province
func (r *GormVillageRepository) ListDistricts(ctx context.Context, province string) ([]string, error) {
	var districts []string
	if err := r.db.WithContext(ctx).
		Model(&models.VillageModel{}).
		Where("province = ?", province).
		Distinct("district").
		Order("district ASC").
		Pluck("district", &districts).Error; err != nil {
		return nil, err
	}
	return districts, nil
}

// ListSectors lists distinct sector names within a district
func (r *GormVillageRepository) ListSectors(ctx context.Context, province, district string) ([]string, error) {
	var sectors []string
	if err := r.db.WithContext(ctx).
		Model(&models.VillageModel{}).
		Where("province = ? AND district = ?", province, district).
		Distinct("sector").
		Order("sector ASC").
		Pluck("sector", &sectors).Error; err != nil {
		return nil, err
	}
	return sectors, nil
}

// ListCells lists distinct cell names within a sector
func (r *GormVillageRepository) ListCells(ctx context.Context, province, district, sector string) ([]string, error) {
	var cells []string
	if err := r.db.WithContext(ctx).
		Model(&models.VillageModel{}).
		Where("province = ? AND district = ? AND sector = ?", province, district, sector).
		Distinct("cell").
		Order("cell ASC").
		Pluck("cell", &cells).Error; err != nil {
		return nil, err
	}
	return cells, nil
}

// ListVillages lists villages within a cell
func (r *GormVillageRepository) ListVillages(ctx context.Context, province, district, sector, cell string) ([]directory.Village, error) {
	var villageModels []models.VillageModel
	if err := r.db.WithContext(ctx).
		Where("province = ? AND district = ? AND sector = ? AND cell = ?", province, district, sector, cell).
		Order("village ASC").
		Find(&villageModels).Error; err != nil {
		return nil, err
	}

	villages := make([]directory.Village, len(villageModels))
	for i, model := range villageModels {
		villages[i] = *model.ToDomain()
	}
	return villages, nil
}

// Save creates or updates a village
func (r *GormVillageRepository) Save(ctx context.Context, village *directory.Village) error {
	model := models.VillageModelFromDomain(village)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		if isUniqueViolation(err) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// Ensure GormVillageRepository implements VillageRepository
var _ directory.VillageRepository = (*GormVillageRepository)(nil)
