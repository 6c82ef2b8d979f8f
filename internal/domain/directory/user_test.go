package directory

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	user, err := NewUser("Jean.Bosco@Example.COM", "password123")
	require.NoError(t, err)

	assert.Equal(t, "jean.bosco@example.com", user.Email)
	assert.Equal(t, RoleResident, user.Role)
	assert.True(t, user.IsActive)
	assert.False(t, user.IsVerified)
	assert.NotEqual(t, "password123", user.PasswordHash)
}

func TestNewUser_InvalidEmail(t *testing.T) {
	cases := []string{"", "not-an-email", "missing@tld", "@example.com"}
	for _, email := range cases {
		_, err := NewUser(email, "password123")
		assert.Error(t, err, email)
	}
}

func TestNewUser_WeakPassword(t *testing.T) {
	cases := []string{"", "short1", "onlyletters", "12345678"}
	for _, password := range cases {
		_, err := NewUser("user@example.com", password)
		assert.Error(t, err, password)
	}
}

func TestUser_VerifyPassword(t *testing.T) {
	user, err := NewUser("user@example.com", "password123")
	require.NoError(t, err)

	assert.True(t, user.VerifyPassword("password123"))
	assert.False(t, user.VerifyPassword("wrongpass1"))
}

func TestUser_SetPassword(t *testing.T) {
	user, err := NewUser("user@example.com", "password123")
	require.NoError(t, err)

	require.NoError(t, user.SetPassword("newsecret9"))
	assert.True(t, user.VerifyPassword("newsecret9"))
	assert.False(t, user.VerifyPassword("password123"))
}

func TestUser_RoleChanges(t *testing.T) {
	user, err := NewUser("leader@example.com", "password123")
	require.NoError(t, err)

	require.NoError(t, user.PromoteToLeader())
	assert.Equal(t, RoleLeader, user.Role)

	require.NoError(t, user.DemoteToResident())
	assert.Equal(t, RoleResident, user.Role)

	// residents cannot be demoted
	assert.Error(t, user.DemoteToResident())

	user.Role = RoleAdmin
	assert.Error(t, user.PromoteToLeader())
}

func TestUser_CanLogin(t *testing.T) {
	user, err := NewUser("user@example.com", "password123")
	require.NoError(t, err)

	assert.False(t, user.CanLogin())

	user.MarkVerified()
	assert.True(t, user.CanLogin())

	user.IsActive = false
	assert.False(t, user.CanLogin())

	user.IsActive = true
	user.MarkDeleted()
	assert.False(t, user.CanLogin())
}

func TestUser_SetPerson(t *testing.T) {
	user, err := NewUser("user@example.com", "password123")
	require.NoError(t, err)

	assert.Error(t, user.SetPerson(uuid.Nil))

	personID := uuid.New()
	require.NoError(t, user.SetPerson(personID))
	require.NotNil(t, user.PersonID)
	assert.Equal(t, personID, *user.PersonID)
}
