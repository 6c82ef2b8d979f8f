package directory

import (
	"regexp"
	"strings"
	"time"

	"github.com/Manzp111/smartville/internal/domain/shared"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Role of a user within the community system
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleLeader   Role = "leader"
	RoleResident Role = "resident"
)

// Password cost for bcrypt
const bcryptCost = 12

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// User is an authentication identity wrapping a Person.
// A leader additionally leads at most one village, referenced from the
// Village side (Village.LeaderID).
type User struct {
	shared.BaseEntity
	shared.SoftDeletable
	Email        string
	PasswordHash string
	Role         Role
	PersonID     *uuid.UUID
	IsActive     bool
	IsVerified   bool
}

// NewUser creates a new user with the resident role
func NewUser(email, password string) (*User, error) {
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	return &User{
		BaseEntity:   shared.NewBaseEntity(),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: hash,
		Role:         RoleResident,
		IsActive:     true,
	}, nil
}

// SetPerson links the user to a person record
func (u *User) SetPerson(personID uuid.UUID) error {
	if personID == uuid.Nil {
		return shared.NewDomainError("INVALID_PERSON_ID", "Person ID cannot be empty")
	}
	u.PersonID = &personID
	u.UpdatedAt = time.Now()
	return nil
}

// VerifyPassword verifies if the provided password matches
func (u *User) VerifyPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}

// SetPassword sets a new password
func (u *User) SetPassword(newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}
	hash, err := hashPassword(newPassword)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}
	u.PasswordHash = hash
	u.UpdatedAt = time.Now()
	return nil
}

// MarkVerified marks the user's email as verified
func (u *User) MarkVerified() {
	u.IsVerified = true
	u.UpdatedAt = time.Now()
}

// PromoteToLeader changes the user's role to leader
func (u *User) PromoteToLeader() error {
	if u.Role == RoleAdmin {
		return shared.NewDomainError("INVALID_ROLE_CHANGE", "Admins cannot be demoted to leader")
	}
	u.Role = RoleLeader
	u.UpdatedAt = time.Now()
	return nil
}

// DemoteToResident changes a leader back to a plain resident
func (u *User) DemoteToResident() error {
	if u.Role != RoleLeader {
		return shared.NewDomainError("INVALID_ROLE_CHANGE", "Only leaders can be demoted to resident")
	}
	u.Role = RoleResident
	u.UpdatedAt = time.Now()
	return nil
}

// CanLogin returns true if the user may authenticate
func (u *User) CanLogin() bool {
	return u.IsActive && u.IsVerified && !u.IsDeleted
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot be empty")
	}
	if len(password) < 8 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	if len(password) > 128 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot exceed 128 characters")
	}
	hasLetter := regexp.MustCompile(`[a-zA-Z]`).MatchString(password)
	hasNumber := regexp.MustCompile(`[0-9]`).MatchString(password)
	if !hasLetter || !hasNumber {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must contain at least one letter and one number")
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
