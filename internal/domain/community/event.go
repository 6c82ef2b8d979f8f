// Package community holds the village-scoped resources residents and
// leaders publish: events, alerts, complaints, volunteering events,
// visitors and emergency contacts. Every entity carries the village it
// belongs to and the user who added it; access control lives in the
// policy package, not here.
package community

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Manzp111/smartville/internal/domain/shared"
)

// EventStatus is the moderation state of a community event
type EventStatus string

const (
	EventPending   EventStatus = "PENDING"
	EventApproved  EventStatus = "APPROVED"
	EventRejected  EventStatus = "REJECTED"
	EventCancelled EventStatus = "CANCELLED"
)

// Event is a gathering announced within a village. New events start
// PENDING and wait for leader moderation.
type Event struct {
	shared.BaseEntity
	VillageID   uuid.UUID
	AddedBy     uuid.UUID
	Title       string
	Description string
	Location    string
	EventDate   time.Time
	StartTime   string
	EndTime     string
	Status      EventStatus
}

// NewEvent creates a pending event
func NewEvent(villageID, addedBy uuid.UUID, title, description string, eventDate time.Time) (*Event, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, shared.NewDomainError("VALIDATION_TITLE", "event title is required")
	}
	if villageID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_VILLAGE", "village is required")
	}
	if eventDate.IsZero() {
		return nil, shared.NewDomainError("VALIDATION_DATE", "event date is required")
	}

	return &Event{
		BaseEntity:  shared.NewBaseEntity(),
		VillageID:   villageID,
		AddedBy:     addedBy,
		Title:       title,
		Description: strings.TrimSpace(description),
		EventDate:   eventDate,
		Status:      EventPending,
	}, nil
}

// Approve moves a pending event to APPROVED
func (e *Event) Approve() error {
	return e.transition(EventApproved)
}

// Reject moves a pending event to REJECTED
func (e *Event) Reject() error {
	return e.transition(EventRejected)
}

// Cancel withdraws an event that has not been rejected yet. Both the
// author and a moderator may cancel.
func (e *Event) Cancel() error {
	if e.Status == EventRejected || e.Status == EventCancelled {
		return shared.ErrInvalidTransition
	}
	e.Status = EventCancelled
	e.UpdatedAt = time.Now()
	return nil
}

func (e *Event) transition(to EventStatus) error {
	if e.Status != EventPending {
		return shared.ErrInvalidTransition
	}
	e.Status = to
	e.UpdatedAt = time.Now()
	return nil
}

// Open reports whether the event still accepts attendance
func (e *Event) Open() bool {
	return e.Status == EventApproved && !e.EventDate.Before(time.Now().Truncate(24*time.Hour))
}

// Attendance records a user attending an event
type Attendance struct {
	shared.BaseEntity
	EventID uuid.UUID
	UserID  uuid.UUID
}

// NewAttendance links a user to an event
func NewAttendance(eventID, userID uuid.UUID) *Attendance {
	return &Attendance{
		BaseEntity: shared.NewBaseEntity(),
		EventID:    eventID,
		UserID:     userID,
	}
}
