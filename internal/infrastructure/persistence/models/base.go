package models

import (
	"time"

	"github.com/Manzp111/smartville/internal/domain/shared"
	"github.com/google/uuid"
)

// BaseModel provides common persistence fields for all models.
// It maps to the domain's BaseEntity.
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// ToDomain converts BaseModel to domain BaseEntity
func (m *BaseModel) ToDomain() shared.BaseEntity {
	return shared.BaseEntity{
		ID:        m.ID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomainBaseEntity populates BaseModel from domain BaseEntity
func (m *BaseModel) FromDomainBaseEntity(e shared.BaseEntity) {
	m.ID = e.ID
	m.CreatedAt = e.CreatedAt
	m.UpdatedAt = e.UpdatedAt
}

// TombstoneModel provides soft-delete persistence fields.
// It maps to the domain's SoftDeletable.
type TombstoneModel struct {
	IsDeleted bool       `gorm:"not null;default:false;index"`
	DeletedAt *time.Time `gorm:"column:deleted_at"`
}

// ToDomain converts TombstoneModel to domain SoftDeletable
func (m *TombstoneModel) ToDomain() shared.SoftDeletable {
	return shared.SoftDeletable{
		IsDeleted: m.IsDeleted,
		DeletedAt: m.DeletedAt,
	}
}

// FromDomainSoftDeletable populates TombstoneModel from domain SoftDeletable
func (m *TombstoneModel) FromDomainSoftDeletable(s shared.SoftDeletable) {
	m.IsDeleted = s.IsDeleted
	m.DeletedAt = s.DeletedAt
}
