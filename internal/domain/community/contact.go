package community

import (
	"strings"

	"github.com/google/uuid"

	"github.com/Manzp111/smartville/internal/domain/shared"
)

// EmergencyContact is a phone number residents can reach in an emergency,
// such as the nearest clinic or police post.
type EmergencyContact struct {
	shared.BaseEntity
	VillageID   uuid.UUID
	AddedBy     uuid.UUID
	Name        string
	ServiceType string
	PhoneNumber string
}

// NewEmergencyContact creates an emergency contact
func NewEmergencyContact(villageID, addedBy uuid.UUID, name, serviceType, phoneNumber string) (*EmergencyContact, error) {
	name = strings.TrimSpace(name)
	phoneNumber = strings.TrimSpace(phoneNumber)
	if name == "" {
		return nil, shared.NewDomainError("VALIDATION_NAME", "contact name is required")
	}
	if phoneNumber == "" {
		return nil, shared.NewDomainError("VALIDATION_PHONE", "contact phone number is required")
	}
	if villageID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_VILLAGE", "village is required")
	}

	return &EmergencyContact{
		BaseEntity:  shared.NewBaseEntity(),
		VillageID:   villageID,
		AddedBy:     addedBy,
		Name:        name,
		ServiceType: strings.TrimSpace(serviceType),
		PhoneNumber: phoneNumber,
	}, nil
}
