package directory

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kirwaAttrs() VillageAttrs {
	return VillageAttrs{
		Province: "Northern",
		District: "Burera",
		Sector:   "Cyanika",
		Cell:     "Gasiza",
		Village:  "Kirwa",
	}
}

func TestNewVillage(t *testing.T) {
	village, err := NewVillage(kirwaAttrs())
	require.NoError(t, err)

	assert.Equal(t, "Kirwa", village.Village)
	assert.False(t, village.HasLeader())
	assert.Equal(t, "Kirwa, Gasiza, Cyanika, Burera, Northern", village.FullAddress())
}

func TestNewVillage_IncompleteTuple(t *testing.T) {
	attrs := kirwaAttrs()
	attrs.Cell = "  "
	_, err := NewVillage(attrs)
	assert.Error(t, err)
}

func TestVillageAttrs_Normalize(t *testing.T) {
	attrs := VillageAttrs{Province: " Northern ", District: "Burera", Sector: "Cyanika", Cell: "Gasiza", Village: " Kirwa"}
	normalized := attrs.Normalize()
	assert.Equal(t, "Northern", normalized.Province)
	assert.Equal(t, "Kirwa", normalized.Village)
}

func TestVillage_LeaderAssignment(t *testing.T) {
	village, err := NewVillage(kirwaAttrs())
	require.NoError(t, err)

	assert.Error(t, village.AssignLeader(uuid.Nil))

	leaderID := uuid.New()
	require.NoError(t, village.AssignLeader(leaderID))
	assert.True(t, village.HasLeader())
	assert.Equal(t, leaderID, *village.LeaderID)

	village.RemoveLeader()
	assert.False(t, village.HasLeader())
}

func TestNewOTP(t *testing.T) {
	otp, err := NewOTP(uuid.New(), OTPPurposeVerification)
	require.NoError(t, err)

	assert.Len(t, otp.Code, 6)
	assert.False(t, otp.IsUsed)
	assert.False(t, otp.IsExpired())
}

func TestNewOTP_Validation(t *testing.T) {
	_, err := NewOTP(uuid.Nil, OTPPurposeVerification)
	assert.Error(t, err)

	_, err = NewOTP(uuid.New(), OTPPurpose("login"))
	assert.Error(t, err)
}

func TestOTP_Consume(t *testing.T) {
	otp, err := NewOTP(uuid.New(), OTPPurposeReset)
	require.NoError(t, err)

	require.NoError(t, otp.Consume())
	assert.True(t, otp.IsUsed)

	// single use
	assert.Error(t, otp.Consume())
}
