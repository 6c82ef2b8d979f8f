package community

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Manzp111/smartville/internal/domain/shared"
)

// AlertStatus tracks whether an alert is still relevant
type AlertStatus string

const (
	AlertActive AlertStatus = "active"
	AlertClosed AlertStatus = "closed"
)

// AlertUrgency grades how fast residents should react
type AlertUrgency string

const (
	UrgencyLow    AlertUrgency = "low"
	UrgencyMedium AlertUrgency = "medium"
	UrgencyHigh   AlertUrgency = "high"
)

// CommunityAlert is a warning published to a village, such as a security
// incident or a weather hazard. Alerts stay active until closed.
type CommunityAlert struct {
	shared.BaseEntity
	VillageID   uuid.UUID
	AddedBy     uuid.UUID
	AlertType   string
	Description string
	Urgency     AlertUrgency
	Status      AlertStatus
}

// NewCommunityAlert creates an active alert
func NewCommunityAlert(villageID, addedBy uuid.UUID, alertType, description string, urgency AlertUrgency) (*CommunityAlert, error) {
	alertType = strings.TrimSpace(alertType)
	if alertType == "" {
		return nil, shared.NewDomainError("VALIDATION_ALERT_TYPE", "alert type is required")
	}
	if villageID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_VILLAGE", "village is required")
	}
	if urgency == "" {
		urgency = UrgencyMedium
	}

	return &CommunityAlert{
		BaseEntity:  shared.NewBaseEntity(),
		VillageID:   villageID,
		AddedBy:     addedBy,
		AlertType:   alertType,
		Description: strings.TrimSpace(description),
		Urgency:     urgency,
		Status:      AlertActive,
	}, nil
}

// Close marks the alert as no longer relevant
func (a *CommunityAlert) Close() error {
	if a.Status == AlertClosed {
		return shared.ErrInvalidTransition
	}
	a.Status = AlertClosed
	a.UpdatedAt = time.Now()
	return nil
}
