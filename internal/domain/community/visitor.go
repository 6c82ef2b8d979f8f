package community

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Manzp111/smartville/internal/domain/shared"
)

// Visitor records a guest staying with a resident host. The host is the
// residency sheltering the visitor; it must be approved for the visit to
// be registered, which the application layer checks.
type Visitor struct {
	shared.BaseEntity
	VillageID       uuid.UUID
	AddedBy         uuid.UUID
	PersonID        uuid.UUID
	HostResidencyID uuid.UUID
	Purpose         string
	TimeIn          time.Time
	TimeOut         *time.Time
}

// NewVisitor registers a visitor checked in now
func NewVisitor(villageID, addedBy, personID, hostResidencyID uuid.UUID, purpose string) (*Visitor, error) {
	if personID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_PERSON", "visitor person is required")
	}
	if hostResidencyID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_HOST", "host residency is required")
	}
	if villageID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_VILLAGE", "village is required")
	}

	return &Visitor{
		BaseEntity:      shared.NewBaseEntity(),
		VillageID:       villageID,
		AddedBy:         addedBy,
		PersonID:        personID,
		HostResidencyID: hostResidencyID,
		Purpose:         strings.TrimSpace(purpose),
		TimeIn:          time.Now(),
	}, nil
}

// CheckOut records the visitor leaving
func (v *Visitor) CheckOut() error {
	if v.TimeOut != nil {
		return shared.ErrInvalidTransition
	}
	now := time.Now()
	v.TimeOut = &now
	v.UpdatedAt = now
	return nil
}

// Staying reports whether the visitor is still checked in
func (v *Visitor) Staying() bool {
	return v.TimeOut == nil
}
