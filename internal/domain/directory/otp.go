package directory

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/Manzp111/smartville/internal/domain/shared"
	"github.com/google/uuid"
)

// OTPPurpose describes what an OTP code is for
type OTPPurpose string

const (
	OTPPurposeVerification OTPPurpose = "verification"
	OTPPurposeReset        OTPPurpose = "reset"
)

// OTP lifetime
const otpTTL = 30 * time.Minute

// OTP is a single-use verification code sent to a user by email
type OTP struct {
	shared.BaseEntity
	UserID  uuid.UUID
	Code    string
	Purpose OTPPurpose
	IsUsed  bool
}

// NewOTP generates a fresh six-digit code for the user
func NewOTP(userID uuid.UUID, purpose OTPPurpose) (*OTP, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER_ID", "User ID cannot be empty")
	}
	if purpose != OTPPurposeVerification && purpose != OTPPurposeReset {
		return nil, shared.NewDomainError("INVALID_OTP_PURPOSE", "OTP purpose must be verification or reset")
	}

	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return nil, err
	}

	return &OTP{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
		Code:       fmt.Sprintf("%06d", n.Int64()+100000),
		Purpose:    purpose,
	}, nil
}

// IsExpired reports whether the code is past its lifetime
func (o *OTP) IsExpired() bool {
	return time.Now().After(o.CreatedAt.Add(otpTTL))
}

// Consume marks the code as used. Fails if the code is expired or already used.
func (o *OTP) Consume() error {
	if o.IsUsed {
		return shared.NewDomainError("OTP_USED", "OTP code has already been used")
	}
	if o.IsExpired() {
		return shared.NewDomainError("OTP_EXPIRED", "OTP code has expired")
	}
	o.IsUsed = true
	o.UpdatedAt = time.Now()
	return nil
}
