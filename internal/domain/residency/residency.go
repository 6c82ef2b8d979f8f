// Package residency owns the lifecycle of a person's membership in a
// village: requested as pending, approved or rejected by a leader or
// admin, soft-deleted on removal or migration, and optionally restored.
//
// The central invariant is that a person holds at most one residency
// with is_deleted=false at any time, regardless of approval status.
// Application services check it before writing and the storage layer
// backs it with a partial unique index so concurrent writers cannot
// race past the check.
package residency

import (
	"time"

	"github.com/Manzp111/smartville/internal/domain/shared"
	"github.com/google/uuid"
)

// Status of a residency's approval lifecycle
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Valid reports whether s is a known status value
func (s Status) Valid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// Residency is a person's membership record in a village
type Residency struct {
	shared.BaseEntity
	shared.SoftDeletable
	PersonID  uuid.UUID
	VillageID uuid.UUID
	Status    Status
	AddedBy   uuid.UUID
}

// NewResidency creates a pending residency. The caller is responsible for
// checking the single-active-residency invariant before saving.
func NewResidency(personID, villageID, addedBy uuid.UUID) (*Residency, error) {
	if personID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PERSON_ID", "Person ID cannot be empty")
	}
	if villageID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_VILLAGE_ID", "Village ID cannot be empty")
	}

	return &Residency{
		BaseEntity: shared.NewBaseEntity(),
		PersonID:   personID,
		VillageID:  villageID,
		Status:     StatusPending,
		AddedBy:    addedBy,
	}, nil
}

// Approve transitions the residency from PENDING to APPROVED
func (r *Residency) Approve() error {
	return r.transition(StatusApproved)
}

// Reject transitions the residency from PENDING to REJECTED
func (r *Residency) Reject() error {
	return r.transition(StatusRejected)
}

func (r *Residency) transition(to Status) error {
	if r.IsDeleted {
		return shared.ErrInvalidTransition
	}
	if r.Status != StatusPending {
		return shared.ErrInvalidTransition
	}
	r.Status = to
	r.UpdatedAt = time.Now()
	return nil
}

// SoftDelete tombstones the residency, keeping its approval status
func (r *Residency) SoftDelete() error {
	if r.IsDeleted {
		return shared.ErrInvalidTransition
	}
	r.MarkDeleted()
	r.UpdatedAt = time.Now()
	return nil
}

// Restore clears the tombstone, returning the residency to its previous
// status. The caller must verify the invariant still holds for the person.
func (r *Residency) Restore() error {
	if !r.IsDeleted {
		return shared.ErrInvalidTransition
	}
	r.ClearDeleted()
	r.UpdatedAt = time.Now()
	return nil
}

// Active reports whether the residency counts against the
// single-active-residency invariant
func (r *Residency) Active() bool {
	return !r.IsDeleted
}
