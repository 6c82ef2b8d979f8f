// Package community implements CRUD use-cases for the village-scoped
// resources. Every read goes through the policy scope and every write
// through an authorization check before anything is touched.
package community

import (
	"time"

	"github.com/google/uuid"

	"github.com/Manzp111/smartville/internal/domain/community"
	"github.com/Manzp111/smartville/internal/domain/policy"
	"github.com/Manzp111/smartville/internal/domain/shared"
)

// CreateEventRequest announces a new event
type CreateEventRequest struct {
	VillageID   uuid.UUID `json:"village_id"`
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	EventDate   time.Time `json:"event_date" binding:"required"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
}

// UpdateEventStatusRequest moderates an event
type UpdateEventStatusRequest struct {
	Status community.EventStatus `json:"status" binding:"required"`
}

// EventResponse is the wire representation of an event
type EventResponse struct {
	ID          uuid.UUID             `json:"id"`
	VillageID   uuid.UUID             `json:"village_id"`
	AddedBy     uuid.UUID             `json:"added_by"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Location    string                `json:"location"`
	EventDate   time.Time             `json:"event_date"`
	StartTime   string                `json:"start_time,omitempty"`
	EndTime     string                `json:"end_time,omitempty"`
	Status      community.EventStatus `json:"status"`
	Attendees   int64                 `json:"attendees"`
	CreatedAt   time.Time             `json:"created_at"`
}

// CreateAlertRequest raises a community alert
type CreateAlertRequest struct {
	VillageID   uuid.UUID              `json:"village_id"`
	AlertType   string                 `json:"alert_type" binding:"required"`
	Description string                 `json:"description"`
	Urgency     community.AlertUrgency `json:"urgency"`
}

// AlertResponse is the wire representation of an alert
type AlertResponse struct {
	ID          uuid.UUID              `json:"id"`
	VillageID   uuid.UUID              `json:"village_id"`
	AddedBy     uuid.UUID              `json:"added_by"`
	AlertType   string                 `json:"alert_type"`
	Description string                 `json:"description"`
	Urgency     community.AlertUrgency `json:"urgency"`
	Status      community.AlertStatus  `json:"status"`
	CreatedAt   time.Time              `json:"created_at"`
}

// CreateComplaintRequest files a complaint
type CreateComplaintRequest struct {
	VillageID   uuid.UUID `json:"village_id"`
	Subject     string    `json:"subject" binding:"required"`
	Description string    `json:"description"`
}

// ResolveComplaintRequest closes a complaint with a note
type ResolveComplaintRequest struct {
	Resolution string `json:"resolution"`
}

// ComplaintResponse is the wire representation of a complaint
type ComplaintResponse struct {
	ID          uuid.UUID                 `json:"id"`
	VillageID   uuid.UUID                 `json:"village_id"`
	AddedBy     uuid.UUID                 `json:"added_by"`
	Subject     string                    `json:"subject"`
	Description string                    `json:"description"`
	Status      community.ComplaintStatus `json:"status"`
	Resolution  string                    `json:"resolution,omitempty"`
	ResolvedAt  *time.Time                `json:"resolved_at,omitempty"`
	CreatedAt   time.Time                 `json:"created_at"`
}

// CreateVolunteeringRequest announces a volunteering event
type CreateVolunteeringRequest struct {
	VillageID       uuid.UUID `json:"village_id"`
	Title           string    `json:"title" binding:"required"`
	Description     string    `json:"description"`
	Location        string    `json:"location"`
	Date            time.Time `json:"date" binding:"required"`
	SkillsRequired  string    `json:"skills_required"`
	MaxParticipants int       `json:"max_participants"`
}

// VolunteeringResponse is the wire representation of a volunteering event
type VolunteeringResponse struct {
	ID              uuid.UUID `json:"id"`
	VillageID       uuid.UUID `json:"village_id"`
	AddedBy         uuid.UUID `json:"added_by"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Location        string    `json:"location"`
	Date            time.Time `json:"date"`
	SkillsRequired  string    `json:"skills_required,omitempty"`
	MaxParticipants int       `json:"max_participants"`
	Participants    int64     `json:"participants"`
	CreatedAt       time.Time `json:"created_at"`
}

// RegisterVisitorRequest checks a visitor in with a resident host
type RegisterVisitorRequest struct {
	FirstName       string    `json:"first_name" binding:"required"`
	LastName        string    `json:"last_name"`
	PhoneNumber     string    `json:"phone_number"`
	HostResidencyID uuid.UUID `json:"host_residency_id" binding:"required"`
	Purpose         string    `json:"purpose"`
}

// VisitorResponse is the wire representation of a visitor
type VisitorResponse struct {
	ID              uuid.UUID  `json:"id"`
	VillageID       uuid.UUID  `json:"village_id"`
	PersonID        uuid.UUID  `json:"person_id"`
	HostResidencyID uuid.UUID  `json:"host_residency_id"`
	Purpose         string     `json:"purpose,omitempty"`
	TimeIn          time.Time  `json:"time_in"`
	TimeOut         *time.Time `json:"time_out,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// CreateContactRequest adds an emergency contact
type CreateContactRequest struct {
	VillageID   uuid.UUID `json:"village_id"`
	Name        string    `json:"name" binding:"required"`
	ServiceType string    `json:"service_type"`
	PhoneNumber string    `json:"phone_number" binding:"required"`
}

// ContactResponse is the wire representation of an emergency contact
type ContactResponse struct {
	ID          uuid.UUID `json:"id"`
	VillageID   uuid.UUID `json:"village_id"`
	AddedBy     uuid.UUID `json:"added_by"`
	Name        string    `json:"name"`
	ServiceType string    `json:"service_type,omitempty"`
	PhoneNumber string    `json:"phone_number"`
	CreatedAt   time.Time `json:"created_at"`
}

// resolveVillage picks the village a new record belongs to: admins may
// target any village explicitly, everyone else writes into the village
// of their active residency.
func resolveVillage(actor policy.Actor, requested uuid.UUID) (uuid.UUID, error) {
	if actor.Role == policy.RoleAdmin {
		if requested == uuid.Nil {
			return uuid.Nil, shared.NewDomainError("VALIDATION_VILLAGE", "Admins must specify a village")
		}
		return requested, nil
	}
	if !actor.InVillage() {
		return uuid.Nil, &policy.PermissionDenied{
			Reason: policy.DenyWrongScope,
			Detail: "an active residency is required to create content",
		}
	}
	if requested != uuid.Nil && requested != actor.VillageID {
		return uuid.Nil, &policy.PermissionDenied{
			Reason: policy.DenyWrongScope,
			Detail: "records can only be created in your own village",
		}
	}
	return actor.VillageID, nil
}

func toEventResponse(e *community.Event, attendees int64) *EventResponse {
	return &EventResponse{
		ID:          e.ID,
		VillageID:   e.VillageID,
		AddedBy:     e.AddedBy,
		Title:       e.Title,
		Description: e.Description,
		Location:    e.Location,
		EventDate:   e.EventDate,
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		Status:      e.Status,
		Attendees:   attendees,
		CreatedAt:   e.CreatedAt,
	}
}

func toAlertResponse(a *community.CommunityAlert) *AlertResponse {
	return &AlertResponse{
		ID:          a.ID,
		VillageID:   a.VillageID,
		AddedBy:     a.AddedBy,
		AlertType:   a.AlertType,
		Description: a.Description,
		Urgency:     a.Urgency,
		Status:      a.Status,
		CreatedAt:   a.CreatedAt,
	}
}

func toComplaintResponse(c *community.Complaint) *ComplaintResponse {
	return &ComplaintResponse{
		ID:          c.ID,
		VillageID:   c.VillageID,
		AddedBy:     c.AddedBy,
		Subject:     c.Subject,
		Description: c.Description,
		Status:      c.Status,
		Resolution:  c.Resolution,
		ResolvedAt:  c.ResolvedAt,
		CreatedAt:   c.CreatedAt,
	}
}

func toVolunteeringResponse(v *community.VolunteeringEvent, participants int64) *VolunteeringResponse {
	return &VolunteeringResponse{
		ID:              v.ID,
		VillageID:       v.VillageID,
		AddedBy:         v.AddedBy,
		Title:           v.Title,
		Description:     v.Description,
		Location:        v.Location,
		Date:            v.Date,
		SkillsRequired:  v.SkillsRequired,
		MaxParticipants: v.MaxParticipants,
		Participants:    participants,
		CreatedAt:       v.CreatedAt,
	}
}

func toVisitorResponse(v *community.Visitor) *VisitorResponse {
	return &VisitorResponse{
		ID:              v.ID,
		VillageID:       v.VillageID,
		PersonID:        v.PersonID,
		HostResidencyID: v.HostResidencyID,
		Purpose:         v.Purpose,
		TimeIn:          v.TimeIn,
		TimeOut:         v.TimeOut,
		CreatedAt:       v.CreatedAt,
	}
}

func toContactResponse(c *community.EmergencyContact) *ContactResponse {
	return &ContactResponse{
		ID:          c.ID,
		VillageID:   c.VillageID,
		AddedBy:     c.AddedBy,
		Name:        c.Name,
		ServiceType: c.ServiceType,
		PhoneNumber: c.PhoneNumber,
		CreatedAt:   c.CreatedAt,
	}
}
