package community

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Manzp111/smartville/internal/domain/shared"
)

// ComplaintStatus tracks whether the leadership has handled a complaint
type ComplaintStatus string

const (
	ComplaintPending  ComplaintStatus = "pending"
	ComplaintResolved ComplaintStatus = "resolved"
)

// Complaint is a grievance a resident files with the village leadership
type Complaint struct {
	shared.BaseEntity
	VillageID   uuid.UUID
	AddedBy     uuid.UUID
	Subject     string
	Description string
	Status      ComplaintStatus
	Resolution  string
	ResolvedAt  *time.Time
}

// NewComplaint files a pending complaint
func NewComplaint(villageID, addedBy uuid.UUID, subject, description string) (*Complaint, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return nil, shared.NewDomainError("VALIDATION_SUBJECT", "complaint subject is required")
	}
	if villageID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_VILLAGE", "village is required")
	}

	return &Complaint{
		BaseEntity:  shared.NewBaseEntity(),
		VillageID:   villageID,
		AddedBy:     addedBy,
		Subject:     subject,
		Description: strings.TrimSpace(description),
		Status:      ComplaintPending,
	}, nil
}

// Resolve closes the complaint with a resolution note
func (c *Complaint) Resolve(resolution string) error {
	if c.Status == ComplaintResolved {
		return shared.ErrInvalidTransition
	}
	now := time.Now()
	c.Status = ComplaintResolved
	c.Resolution = strings.TrimSpace(resolution)
	c.ResolvedAt = &now
	c.UpdatedAt = now
	return nil
}
