package community

import (
	"context"

	"github.com/google/uuid"

	"github.com/Manzp111/smartville/internal/domain/policy"
	"github.com/Manzp111/smartville/internal/domain/shared"
)

// EventRepository persists community events and attendance
type EventRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Event, error)
	List(ctx context.Context, scope policy.Predicate, filter shared.Filter) ([]Event, int64, error)
	CountByVillage(ctx context.Context, villageID uuid.UUID) (int64, error)
	Save(ctx context.Context, event *Event) error
	Delete(ctx context.Context, id uuid.UUID) error
	AddAttendance(ctx context.Context, attendance *Attendance) error
	CountAttendance(ctx context.Context, eventID uuid.UUID) (int64, error)
}

// AlertRepository persists community alerts
type AlertRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CommunityAlert, error)
	List(ctx context.Context, scope policy.Predicate, filter shared.Filter) ([]CommunityAlert, int64, error)
	Save(ctx context.Context, alert *CommunityAlert) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ComplaintRepository persists complaints
type ComplaintRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Complaint, error)
	List(ctx context.Context, scope policy.Predicate, filter shared.Filter) ([]Complaint, int64, error)
	Save(ctx context.Context, complaint *Complaint) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// VolunteeringRepository persists volunteering events and participation
type VolunteeringRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*VolunteeringEvent, error)
	List(ctx context.Context, scope policy.Predicate, filter shared.Filter) ([]VolunteeringEvent, int64, error)
	Save(ctx context.Context, event *VolunteeringEvent) error
	Delete(ctx context.Context, id uuid.UUID) error
	AddParticipation(ctx context.Context, participation *Participation) error
	CountParticipation(ctx context.Context, eventID uuid.UUID) (int64, error)
}

// VisitorRepository persists visitor records
type VisitorRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Visitor, error)
	List(ctx context.Context, scope policy.Predicate, filter shared.Filter) ([]Visitor, int64, error)
	Save(ctx context.Context, visitor *Visitor) error
}

// ContactRepository persists emergency contacts
type ContactRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*EmergencyContact, error)
	List(ctx context.Context, scope policy.Predicate, filter shared.Filter) ([]EmergencyContact, int64, error)
	Save(ctx context.Context, contact *EmergencyContact) error
	Delete(ctx context.Context, id uuid.UUID) error
}
