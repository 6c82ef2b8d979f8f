package residency

import (
	"time"

	"github.com/google/uuid"

	"github.com/Manzp111/smartville/internal/domain/directory"
	"github.com/Manzp111/smartville/internal/domain/residency"
)

// JoinRequest asks for a person to become a member of a village
type JoinRequest struct {
	PersonID  uuid.UUID `json:"person_id" binding:"required"`
	VillageID uuid.UUID `json:"village_id" binding:"required"`
}

// MigrateRequest moves a person to a new village, identified by its
// exact administrative tuple. The destination must already exist.
type MigrateRequest struct {
	PersonID    uuid.UUID              `json:"person_id" binding:"required"`
	Destination directory.VillageAttrs `json:"destination" binding:"required"`
}

// UpdateStatusRequest approves or rejects a batch of residencies
type UpdateStatusRequest struct {
	ResidencyIDs []uuid.UUID      `json:"residency_ids" binding:"required,min=1"`
	Status       residency.Status `json:"status" binding:"required"`
}

// ResidencyResponse is the wire representation of a residency
type ResidencyResponse struct {
	ID        uuid.UUID        `json:"id"`
	PersonID  uuid.UUID        `json:"person_id"`
	VillageID uuid.UUID        `json:"village_id"`
	Status    residency.Status `json:"status"`
	AddedBy   uuid.UUID        `json:"added_by"`
	IsDeleted bool             `json:"is_deleted"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

func toResponse(r *residency.Residency) *ResidencyResponse {
	return &ResidencyResponse{
		ID:        r.ID,
		PersonID:  r.PersonID,
		VillageID: r.VillageID,
		Status:    r.Status,
		AddedBy:   r.AddedBy,
		IsDeleted: r.IsDeleted,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func toResponseList(items []residency.Residency) []ResidencyResponse {
	out := make([]ResidencyResponse, len(items))
	for i := range items {
		out[i] = *toResponse(&items[i])
	}
	return out
}
