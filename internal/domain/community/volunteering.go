package community

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Manzp111/smartville/internal/domain/shared"
)

// VolunteeringEvent is an organized work session, umuganda style, that
// residents sign up for. MaxParticipants of zero means unlimited.
type VolunteeringEvent struct {
	shared.BaseEntity
	VillageID       uuid.UUID
	AddedBy         uuid.UUID
	Title           string
	Description     string
	Location        string
	Date            time.Time
	SkillsRequired  string
	MaxParticipants int
}

// NewVolunteeringEvent creates a volunteering event
func NewVolunteeringEvent(villageID, addedBy uuid.UUID, title, description string, date time.Time) (*VolunteeringEvent, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, shared.NewDomainError("VALIDATION_TITLE", "volunteering event title is required")
	}
	if villageID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_VILLAGE", "village is required")
	}
	if date.IsZero() {
		return nil, shared.NewDomainError("VALIDATION_DATE", "volunteering event date is required")
	}

	return &VolunteeringEvent{
		BaseEntity:  shared.NewBaseEntity(),
		VillageID:   villageID,
		AddedBy:     addedBy,
		Title:       title,
		Description: strings.TrimSpace(description),
		Date:        date,
	}, nil
}

// Full reports whether the participant limit has been reached
func (v *VolunteeringEvent) Full(current int64) bool {
	return v.MaxParticipants > 0 && current >= int64(v.MaxParticipants)
}

// Participation records a user signing up for a volunteering event
type Participation struct {
	shared.BaseEntity
	VolunteeringEventID uuid.UUID
	UserID              uuid.UUID
}

// NewParticipation signs a user up for a volunteering event
func NewParticipation(eventID, userID uuid.UUID) *Participation {
	return &Participation{
		BaseEntity:          shared.NewBaseEntity(),
		VolunteeringEventID: eventID,
		UserID:              userID,
	}
}
