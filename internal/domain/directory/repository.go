package directory

import (
	"context"

	"github.com/google/uuid"
)

// PersonRepository provides access to person records
type PersonRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Person, error)
	FindByNationalID(ctx context.Context, nationalID int64) (*Person, error)
	Save(ctx context.Context, person *Person) error
}

// UserRepository provides access to user records
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByPerson(ctx context.Context, personID uuid.UUID) (*User, error)
	FindLeaders(ctx context.Context) ([]User, error)
	Save(ctx context.Context, user *User) error
}

// VillageRepository provides access to village records.
// FindByAttrs performs the exact-tuple lookup used by join and migration.
type VillageRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Village, error)
	FindByAttrs(ctx context.Context, attrs VillageAttrs) (*Village, error)
	FindByLeader(ctx context.Context, leaderID uuid.UUID) (*Village, error)
	ListProvinces(ctx context.Context) ([]string, error)
	ListDistricts(ctx context.Context, province string) ([]string, error)
	ListSectors(ctx context.Context, province, district string) ([]string, error)
	ListCells(ctx context.Context, province, district, sector string) ([]string, error)
	ListVillages(ctx context.Context, province, district, sector, cell string) ([]Village, error)
	Save(ctx context.Context, village *Village) error
}

// OTPRepository provides access to one-time verification codes
type OTPRepository interface {
	FindActive(ctx context.Context, userID uuid.UUID, purpose OTPPurpose, code string) (*OTP, error)
	LatestForUser(ctx context.Context, userID uuid.UUID, purpose OTPPurpose) (*OTP, error)
	Save(ctx context.Context, otp *OTP) error
}
