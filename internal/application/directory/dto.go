package directory

import (
	"time"

	"github.com/google/uuid"

	"github.com/Manzp111/smartville/internal/domain/directory"
	"github.com/Manzp111/smartville/internal/infrastructure/auth"
)

// RegisterRequest creates a new user account with its person record
type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	NationalID  *int64 `json:"national_id"`
	Gender      string `json:"gender"`
}

// LoginRequest authenticates a user by email and password
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// VerifyOTPRequest consumes a one-time code
type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required,len=6"`
}

// ResendOTPRequest asks for a fresh verification code
type ResendOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// RefreshRequest exchanges a refresh token for a new pair
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// PromoteLeaderRequest makes a user the leader of a village
type PromoteLeaderRequest struct {
	UserID    uuid.UUID `json:"user_id" binding:"required"`
	VillageID uuid.UUID `json:"village_id" binding:"required"`
}

// LocateRequest resolves coordinates to a village
type LocateRequest struct {
	Latitude  float64 `json:"latitude" binding:"required"`
	Longitude float64 `json:"longitude" binding:"required"`
}

// UserResponse is the wire representation of a user account
type UserResponse struct {
	ID         uuid.UUID  `json:"id"`
	Email      string     `json:"email"`
	Role       string     `json:"role"`
	PersonID   *uuid.UUID `json:"person_id,omitempty"`
	IsActive   bool       `json:"is_active"`
	IsVerified bool       `json:"is_verified"`
	CreatedAt  time.Time  `json:"created_at"`
}

// LoginResponse carries the token pair plus the authenticated user
type LoginResponse struct {
	User   *UserResponse   `json:"user"`
	Tokens *auth.TokenPair `json:"tokens"`
}

// VillageResponse is the wire representation of a village
type VillageResponse struct {
	ID       uuid.UUID  `json:"id"`
	Province string     `json:"province"`
	District string     `json:"district"`
	Sector   string     `json:"sector"`
	Cell     string     `json:"cell"`
	Village  string     `json:"village"`
	LeaderID *uuid.UUID `json:"leader_id,omitempty"`
}

// VillageDashboardResponse adds headline counts to a village
type VillageDashboardResponse struct {
	VillageResponse
	ApprovedResidents int64 `json:"approved_residents"`
	Events            int64 `json:"events"`
}

func toUserResponse(u *directory.User) *UserResponse {
	return &UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		Role:       string(u.Role),
		PersonID:   u.PersonID,
		IsActive:   u.IsActive,
		IsVerified: u.IsVerified,
		CreatedAt:  u.CreatedAt,
	}
}

func toVillageResponse(v *directory.Village) *VillageResponse {
	return &VillageResponse{
		ID:       v.ID,
		Province: v.Province,
		District: v.District,
		Sector:   v.Sector,
		Cell:     v.Cell,
		Village:  v.Village,
		LeaderID: v.LeaderID,
	}
}
