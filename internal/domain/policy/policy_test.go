package policy

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorize_AnonymousDenied(t *testing.T) {
	err := Authorize(Anonymous(), ActionRead, Resource{Type: "event"})
	require.Error(t, err)

	var denied *PermissionDenied
	require.True(t, errors.As(err, &denied))
	assert.Equal(t, DenyNoCapability, denied.Reason)
}

func TestAuthorize_AdminAllowsEverything(t *testing.T) {
	admin := Admin(uuid.New())
	res := Resource{Type: "residency", VillageID: uuid.New(), OwnerID: uuid.New()}

	for _, action := range []Action{ActionRead, ActionCreate, ActionUpdate, ActionChangeStatus, ActionDelete} {
		assert.NoError(t, Authorize(admin, action, res), string(action))
	}
}

func TestAuthorize_LeaderOwnVillage(t *testing.T) {
	villageID := uuid.New()
	leader := Leader(uuid.New(), villageID)

	err := Authorize(leader, ActionChangeStatus, Resource{Type: "residency", VillageID: villageID})
	assert.NoError(t, err)
}

func TestAuthorize_LeaderOtherVillageIsScopeDenial(t *testing.T) {
	leader := Leader(uuid.New(), uuid.New())

	err := Authorize(leader, ActionChangeStatus, Resource{Type: "residency", VillageID: uuid.New()})
	require.Error(t, err)

	var denied *PermissionDenied
	require.True(t, errors.As(err, &denied))
	assert.Equal(t, DenyWrongScope, denied.Reason)
}

func TestAuthorize_ResidentCannotChangeStatus(t *testing.T) {
	resident := Resident(uuid.New(), uuid.New(), uuid.New())

	err := Authorize(resident, ActionChangeStatus, Resource{Type: "residency", PersonID: resident.PersonID})
	require.Error(t, err)

	var denied *PermissionDenied
	require.True(t, errors.As(err, &denied))
	assert.Equal(t, DenyNoCapability, denied.Reason)
}

func TestAuthorize_ResidentOwnRecord(t *testing.T) {
	resident := Resident(uuid.New(), uuid.New(), uuid.New())

	err := Authorize(resident, ActionUpdate, Resource{Type: "complaint", OwnerID: resident.UserID})
	assert.NoError(t, err)

	err = Authorize(resident, ActionDelete, Resource{Type: "residency", PersonID: resident.PersonID})
	assert.NoError(t, err)
}

func TestAuthorize_ResidentForeignRecordIsScopeDenial(t *testing.T) {
	resident := Resident(uuid.New(), uuid.New(), uuid.New())

	err := Authorize(resident, ActionUpdate, Resource{Type: "complaint", OwnerID: uuid.New()})
	require.Error(t, err)

	var denied *PermissionDenied
	require.True(t, errors.As(err, &denied))
	assert.Equal(t, DenyWrongScope, denied.Reason)
}

func TestAuthorize_ResidentCreateRequiresResidency(t *testing.T) {
	noVillage := Actor{Role: RoleResident, UserID: uuid.New(), PersonID: uuid.New()}

	err := Authorize(noVillage, ActionCreate, Resource{Type: "event"})
	require.Error(t, err)

	var denied *PermissionDenied
	require.True(t, errors.As(err, &denied))
	assert.Equal(t, DenyWrongScope, denied.Reason)
}

func TestAuthorize_ResidentCreateOtherVillageDenied(t *testing.T) {
	resident := Resident(uuid.New(), uuid.New(), uuid.New())

	err := Authorize(resident, ActionCreate, Resource{Type: "event", VillageID: uuid.New()})
	require.Error(t, err)
}

func TestScope_PerRole(t *testing.T) {
	villageID := uuid.New()
	userID := uuid.New()
	personID := uuid.New()

	assert.Equal(t, ScopeAll, Scope(Admin(userID), "event").Kind)

	leaderPred := Scope(Leader(userID, villageID), "event")
	assert.Equal(t, ScopeVillage, leaderPred.Kind)
	assert.Equal(t, villageID, leaderPred.VillageID)

	residentPred := Scope(Resident(userID, personID, villageID), "event")
	assert.Equal(t, ScopeOwner, residentPred.Kind)
	assert.Equal(t, userID, residentPred.UserID)
	assert.Equal(t, personID, residentPred.PersonID)

	assert.Equal(t, ScopeNone, Scope(Anonymous(), "event").Kind)
}

func TestScope_LeaderWithoutVillageSeesNothing(t *testing.T) {
	pred := Scope(Actor{Role: RoleLeader, UserID: uuid.New()}, "event")
	assert.Equal(t, ScopeNone, pred.Kind)
}
