package models

import (
	"time"

	"github.com/Manzp111/smartville/internal/domain/community"
	"github.com/google/uuid"
)

// EventModel is the persistence model for the Event domain entity.
type EventModel struct {
	BaseModel
	VillageID   uuid.UUID             `gorm:"type:uuid;not null;index"`
	AddedBy     uuid.UUID             `gorm:"type:uuid;not null;index"`
	Title       string                `gorm:"type:varchar(200);not null"`
	Description string                `gorm:"type:text"`
	Location    string                `gorm:"type:varchar(200)"`
	EventDate   time.Time             `gorm:"not null;index"`
	StartTime   string                `gorm:"type:varchar(10)"`
	EndTime     string                `gorm:"type:varchar(10)"`
	Status      community.EventStatus `gorm:"type:varchar(10);not null;default:'PENDING'"`
}

// TableName returns the table name for GORM
func (EventModel) TableName() string {
	return "events"
}

// ToDomain converts the persistence model to a domain Event entity.
func (m *EventModel) ToDomain() *community.Event {
	return &community.Event{
		BaseEntity:  m.BaseModel.ToDomain(),
		VillageID:   m.VillageID,
		AddedBy:     m.AddedBy,
		Title:       m.Title,
		Description: m.Description,
		Location:    m.Location,
		EventDate:   m.EventDate,
		StartTime:   m.StartTime,
		EndTime:     m.EndTime,
		Status:      m.Status,
	}
}

// FromDomain populates the persistence model from a domain Event entity.
func (m *EventModel) FromDomain(e *community.Event) {
	m.FromDomainBaseEntity(e.BaseEntity)
	m.VillageID = e.VillageID
	m.AddedBy = e.AddedBy
	m.Title = e.Title
	m.Description = e.Description
	m.Location = e.Location
	m.EventDate = e.EventDate
	m.StartTime = e.StartTime
	m.EndTime = e.EndTime
	m.Status = e.Status
}

// EventModelFromDomain creates a new persistence model from a domain Event entity.
func EventModelFromDomain(e *community.Event) *EventModel {
	m := &EventModel{}
	m.FromDomain(e)
	return m
}

// AttendanceModel records a user attending an event. A user attends an
// event at most once.
type AttendanceModel struct {
	BaseModel
	EventID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_attendance_event_user"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_attendance_event_user"`
}

// TableName returns the table name for GORM
func (AttendanceModel) TableName() string {
	return "event_attendances"
}

// ToDomain converts the persistence model to a domain Attendance entity.
func (m *AttendanceModel) ToDomain() *community.Attendance {
	return &community.Attendance{
		BaseEntity: m.BaseModel.ToDomain(),
		EventID:    m.EventID,
		UserID:     m.UserID,
	}
}

// FromDomain populates the persistence model from a domain Attendance entity.
func (m *AttendanceModel) FromDomain(a *community.Attendance) {
	m.FromDomainBaseEntity(a.BaseEntity)
	m.EventID = a.EventID
	m.UserID = a.UserID
}

// AlertModel is the persistence model for the CommunityAlert domain entity.
type AlertModel struct {
	BaseModel
	VillageID   uuid.UUID              `gorm:"type:uuid;not null;index"`
	AddedBy     uuid.UUID              `gorm:"type:uuid;not null;index"`
	AlertType   string                 `gorm:"type:varchar(50);not null"`
	Description string                 `gorm:"type:text"`
	Urgency     community.AlertUrgency `gorm:"type:varchar(10);not null;default:'medium'"`
	Status      community.AlertStatus  `gorm:"type:varchar(10);not null;default:'active'"`
}

// TableName returns the table name for GORM
func (AlertModel) TableName() string {
	return "community_alerts"
}

// ToDomain converts the persistence model to a domain CommunityAlert entity.
func (m *AlertModel) ToDomain() *community.CommunityAlert {
	return &community.CommunityAlert{
		BaseEntity:  m.BaseModel.ToDomain(),
		VillageID:   m.VillageID,
		AddedBy:     m.AddedBy,
		AlertType:   m.AlertType,
		Description: m.Description,
		Urgency:     m.Urgency,
		Status:      m.Status,
	}
}

// FromDomain populates the persistence model from a domain CommunityAlert entity.
func (m *AlertModel) FromDomain(a *community.CommunityAlert) {
	m.FromDomainBaseEntity(a.BaseEntity)
	m.VillageID = a.VillageID
	m.AddedBy = a.AddedBy
	m.AlertType = a.AlertType
	m.Description = a.Description
	m.Urgency = a.Urgency
	m.Status = a.Status
}

// AlertModelFromDomain creates a new persistence model from a domain CommunityAlert entity.
func AlertModelFromDomain(a *community.CommunityAlert) *AlertModel {
	m := &AlertModel{}
	m.FromDomain(a)
	return m
}

// ComplaintModel is the persistence model for the Complaint domain entity.
type ComplaintModel struct {
	BaseModel
	VillageID   uuid.UUID                 `gorm:"type:uuid;not null;index"`
	AddedBy     uuid.UUID                 `gorm:"type:uuid;not null;index"`
	Subject     string                    `gorm:"type:varchar(200);not null"`
	Description string                    `gorm:"type:text"`
	Status      community.ComplaintStatus `gorm:"type:varchar(10);not null;default:'pending'"`
	Resolution  string                    `gorm:"type:text"`
	ResolvedAt  *time.Time
}

// TableName returns the table name for GORM
func (ComplaintModel) TableName() string {
	return "complaints"
}

// ToDomain converts the persistence model to a domain Complaint entity.
func (m *ComplaintModel) ToDomain() *community.Complaint {
	return &community.Complaint{
		BaseEntity:  m.BaseModel.ToDomain(),
		VillageID:   m.VillageID,
		AddedBy:     m.AddedBy,
		Subject:     m.Subject,
		Description: m.Description,
		Status:      m.Status,
		Resolution:  m.Resolution,
		ResolvedAt:  m.ResolvedAt,
	}
}

// FromDomain populates the persistence model from a domain Complaint entity.
func (m *ComplaintModel) FromDomain(c *community.Complaint) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.VillageID = c.VillageID
	m.AddedBy = c.AddedBy
	m.Subject = c.Subject
	m.Description = c.Description
	m.Status = c.Status
	m.Resolution = c.Resolution
	m.ResolvedAt = c.ResolvedAt
}

// ComplaintModelFromDomain creates a new persistence model from a domain Complaint entity.
func ComplaintModelFromDomain(c *community.Complaint) *ComplaintModel {
	m := &ComplaintModel{}
	m.FromDomain(c)
	return m
}

// VolunteeringModel is the persistence model for the VolunteeringEvent domain entity.
type VolunteeringModel struct {
	BaseModel
	VillageID       uuid.UUID `gorm:"type:uuid;not null;index"`
	AddedBy         uuid.UUID `gorm:"type:uuid;not null;index"`
	Title           string    `gorm:"type:varchar(200);not null"`
	Description     string    `gorm:"type:text"`
	Location        string    `gorm:"type:varchar(200)"`
	Date            time.Time `gorm:"not null;index"`
	SkillsRequired  string    `gorm:"type:text"`
	MaxParticipants int       `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (VolunteeringModel) TableName() string {
	return "volunteering_events"
}

// ToDomain converts the persistence model to a domain VolunteeringEvent entity.
func (m *VolunteeringModel) ToDomain() *community.VolunteeringEvent {
	return &community.VolunteeringEvent{
		BaseEntity:      m.BaseModel.ToDomain(),
		VillageID:       m.VillageID,
		AddedBy:         m.AddedBy,
		Title:           m.Title,
		Description:     m.Description,
		Location:        m.Location,
		Date:            m.Date,
		SkillsRequired:  m.SkillsRequired,
		MaxParticipants: m.MaxParticipants,
	}
}

// FromDomain populates the persistence model from a domain VolunteeringEvent entity.
func (m *VolunteeringModel) FromDomain(v *community.VolunteeringEvent) {
	m.FromDomainBaseEntity(v.BaseEntity)
	m.VillageID = v.VillageID
	m.AddedBy = v.AddedBy
	m.Title = v.Title
	m.Description = v.Description
	m.Location = v.Location
	m.Date = v.Date
	m.SkillsRequired = v.SkillsRequired
	m.MaxParticipants = v.MaxParticipants
}

// VolunteeringModelFromDomain creates a new persistence model from a domain VolunteeringEvent entity.
func VolunteeringModelFromDomain(v *community.VolunteeringEvent) *VolunteeringModel {
	m := &VolunteeringModel{}
	m.FromDomain(v)
	return m
}

// ParticipationModel records a user signing up for a volunteering event.
// A user signs up at most once per event.
type ParticipationModel struct {
	BaseModel
	VolunteeringEventID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_participation_event_user"`
	UserID              uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_participation_event_user"`
}

// TableName returns the table name for GORM
func (ParticipationModel) TableName() string {
	return "volunteering_participations"
}

// ToDomain converts the persistence model to a domain Participation entity.
func (m *ParticipationModel) ToDomain() *community.Participation {
	return &community.Participation{
		BaseEntity:          m.BaseModel.ToDomain(),
		VolunteeringEventID: m.VolunteeringEventID,
		UserID:              m.UserID,
	}
}

// FromDomain populates the persistence model from a domain Participation entity.
func (m *ParticipationModel) FromDomain(p *community.Participation) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.VolunteeringEventID = p.VolunteeringEventID
	m.UserID = p.UserID
}

// VisitorModel is the persistence model for the Visitor domain entity.
type VisitorModel struct {
	BaseModel
	VillageID       uuid.UUID `gorm:"type:uuid;not null;index"`
	AddedBy         uuid.UUID `gorm:"type:uuid;not null;index"`
	PersonID        uuid.UUID `gorm:"type:uuid;not null;index"`
	HostResidencyID uuid.UUID `gorm:"type:uuid;not null;index"`
	Purpose         string    `gorm:"type:text"`
	TimeIn          time.Time `gorm:"not null"`
	TimeOut         *time.Time
}

// TableName returns the table name for GORM
func (VisitorModel) TableName() string {
	return "visitors"
}

// ToDomain converts the persistence model to a domain Visitor entity.
func (m *VisitorModel) ToDomain() *community.Visitor {
	return &community.Visitor{
		BaseEntity:      m.BaseModel.ToDomain(),
		VillageID:       m.VillageID,
		AddedBy:         m.AddedBy,
		PersonID:        m.PersonID,
		HostResidencyID: m.HostResidencyID,
		Purpose:         m.Purpose,
		TimeIn:          m.TimeIn,
		TimeOut:         m.TimeOut,
	}
}

// FromDomain populates the persistence model from a domain Visitor entity.
func (m *VisitorModel) FromDomain(v *community.Visitor) {
	m.FromDomainBaseEntity(v.BaseEntity)
	m.VillageID = v.VillageID
	m.AddedBy = v.AddedBy
	m.PersonID = v.PersonID
	m.HostResidencyID = v.HostResidencyID
	m.Purpose = v.Purpose
	m.TimeIn = v.TimeIn
	m.TimeOut = v.TimeOut
}

// VisitorModelFromDomain creates a new persistence model from a domain Visitor entity.
func VisitorModelFromDomain(v *community.Visitor) *VisitorModel {
	m := &VisitorModel{}
	m.FromDomain(v)
	return m
}

// ContactModel is the persistence model for the EmergencyContact domain entity.
type ContactModel struct {
	BaseModel
	VillageID   uuid.UUID `gorm:"type:uuid;not null;index"`
	AddedBy     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(200);not null"`
	ServiceType string    `gorm:"type:varchar(50);not null"`
	PhoneNumber string    `gorm:"type:varchar(50);not null"`
}

// TableName returns the table name for GORM
func (ContactModel) TableName() string {
	return "emergency_contacts"
}

// ToDomain converts the persistence model to a domain EmergencyContact entity.
func (m *ContactModel) ToDomain() *community.EmergencyContact {
	return &community.EmergencyContact{
		BaseEntity:  m.BaseModel.ToDomain(),
		VillageID:   m.VillageID,
		AddedBy:     m.AddedBy,
		Name:        m.Name,
		ServiceType: m.ServiceType,
		PhoneNumber: m.PhoneNumber,
	}
}

// FromDomain populates the persistence model from a domain EmergencyContact entity.
func (m *ContactModel) FromDomain(c *community.EmergencyContact) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.VillageID = c.VillageID
	m.AddedBy = c.AddedBy
	m.Name = c.Name
	m.ServiceType = c.ServiceType
	m.PhoneNumber = c.PhoneNumber
}

// ContactModelFromDomain creates a new persistence model from a domain EmergencyContact entity.
func ContactModelFromDomain(c *community.EmergencyContact) *ContactModel {
	m := &ContactModel{}
	m.FromDomain(c)
	return m
}
