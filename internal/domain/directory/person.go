package directory

import (
	"strings"
	"time"

	"github.com/Manzp111/smartville/internal/domain/shared"
)

// Gender of a person
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// PersonType distinguishes registered residents from one-off visitors
type PersonType string

const (
	PersonTypeResident PersonType = "resident"
	PersonTypeVisitor  PersonType = "visitor"
)

// Person holds the identity attributes of an individual known to the system.
// A person never owns more than one active residency; that invariant is
// enforced by the residency ledger, not here.
type Person struct {
	shared.BaseEntity
	shared.SoftDeletable
	FirstName        string
	LastName         string
	NationalID       *int64
	PhoneNumber      string
	Gender           Gender
	PersonType       PersonType
	RegistrationDate time.Time
}

// NewPerson creates a new person record
func NewPerson(firstName, lastName string, personType PersonType) (*Person, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" && lastName == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Person requires at least one name")
	}
	if personType == "" {
		personType = PersonTypeResident
	}
	if personType != PersonTypeResident && personType != PersonTypeVisitor {
		return nil, shared.NewDomainError("INVALID_PERSON_TYPE", "Person type must be resident or visitor")
	}

	return &Person{
		BaseEntity:       shared.NewBaseEntity(),
		FirstName:        firstName,
		LastName:         lastName,
		PersonType:       personType,
		RegistrationDate: time.Now(),
	}, nil
}

// SetNationalID sets the national id
func (p *Person) SetNationalID(id int64) error {
	if id <= 0 {
		return shared.NewDomainError("INVALID_NATIONAL_ID", "National ID must be positive")
	}
	p.NationalID = &id
	p.UpdatedAt = time.Now()
	return nil
}

// SetPhoneNumber sets the phone number
func (p *Person) SetPhoneNumber(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone != "" && len(phone) > 15 {
		return shared.NewDomainError("INVALID_PHONE", "Phone number cannot exceed 15 characters")
	}
	p.PhoneNumber = phone
	p.UpdatedAt = time.Now()
	return nil
}

// SetGender sets the gender
func (p *Person) SetGender(g Gender) error {
	if g != "" && g != GenderMale && g != GenderFemale {
		return shared.NewDomainError("INVALID_GENDER", "Gender must be male or female")
	}
	p.Gender = g
	p.UpdatedAt = time.Now()
	return nil
}

// DisplayName returns the person's full name, falling back to the ID
func (p *Person) DisplayName() string {
	name := strings.TrimSpace(p.FirstName + " " + p.LastName)
	if name == "" {
		return p.ID.String()
	}
	return name
}
