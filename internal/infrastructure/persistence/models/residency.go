package models

import (
	"github.com/Manzp111/smartville/internal/domain/residency"
	"github.com/google/uuid"
)

// ResidencyModel is the persistence model for the Residency domain entity.
//
// The single-active-residency invariant is enforced by a partial unique
// index on (person_id) WHERE is_deleted = false, created in migrations.
// GORM tags cannot express partial indexes, so the model carries plain
// indexes only.
type ResidencyModel struct {
	BaseModel
	TombstoneModel
	PersonID  uuid.UUID        `gorm:"type:uuid;not null;index"`
	VillageID uuid.UUID        `gorm:"type:uuid;not null;index"`
	Status    residency.Status `gorm:"type:varchar(10);not null;default:'PENDING'"`
	AddedBy   uuid.UUID        `gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for GORM
func (ResidencyModel) TableName() string {
	return "residencies"
}

// ToDomain converts the persistence model to a domain Residency entity.
func (m *ResidencyModel) ToDomain() *residency.Residency {
	return &residency.Residency{
		BaseEntity:    m.BaseModel.ToDomain(),
		SoftDeletable: m.TombstoneModel.ToDomain(),
		PersonID:      m.PersonID,
		VillageID:     m.VillageID,
		Status:        m.Status,
		AddedBy:       m.AddedBy,
	}
}

// FromDomain populates the persistence model from a domain Residency entity.
func (m *ResidencyModel) FromDomain(r *residency.Residency) {
	m.FromDomainBaseEntity(r.BaseEntity)
	m.FromDomainSoftDeletable(r.SoftDeletable)
	m.PersonID = r.PersonID
	m.VillageID = r.VillageID
	m.Status = r.Status
	m.AddedBy = r.AddedBy
}

// ResidencyModelFromDomain creates a new persistence model from a domain Residency entity.
func ResidencyModelFromDomain(r *residency.Residency) *ResidencyModel {
	m := &ResidencyModel{}
	m.FromDomain(r)
	return m
}
