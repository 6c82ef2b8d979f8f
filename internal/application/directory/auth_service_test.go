package directory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Manzp111/smartville/internal/application/notification"
	"github.com/Manzp111/smartville/internal/domain/directory"
	"github.com/Manzp111/smartville/internal/domain/shared"
	"github.com/Manzp111/smartville/internal/infrastructure/auth"
	"github.com/Manzp111/smartville/internal/infrastructure/config"
)

func testJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-for-unit-tests-only",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: time.Hour,
		Issuer:                 "smartville-test",
	})
}

type authFixture struct {
	service    *AuthService
	users      *MockUserRepository
	persons    *MockPersonRepository
	otps       *MockOTPRepository
	dispatcher *capturingDispatcher
}

func newAuthFixture() *authFixture {
	users := new(MockUserRepository)
	persons := new(MockPersonRepository)
	otps := new(MockOTPRepository)
	dispatcher := &capturingDispatcher{}
	service := NewAuthService(users, persons, otps, testJWTService(), dispatcher, zap.NewNop())
	return &authFixture{service: service, users: users, persons: persons, otps: otps, dispatcher: dispatcher}
}

func TestRegister_CreatesUserAndSendsOTP(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	f.users.On("FindByEmail", ctx, "alice@example.com").Return(nil, shared.ErrNotFound)
	f.persons.On("Save", ctx, mock.AnythingOfType("*directory.Person")).Return(nil)
	f.users.On("Save", ctx, mock.AnythingOfType("*directory.User")).Return(nil)
	f.otps.On("Save", ctx, mock.AnythingOfType("*directory.OTP")).Return(nil)

	resp, err := f.service.Register(ctx, RegisterRequest{
		Email:     "alice@example.com",
		Password:  "password123",
		FirstName: "Alice",
		LastName:  "Uwase",
	})
	require.NoError(t, err)

	assert.Equal(t, "alice@example.com", resp.Email)
	assert.Equal(t, "resident", resp.Role)
	assert.False(t, resp.IsVerified)
	require.NotNil(t, resp.PersonID)

	jobs := f.dispatcher.Jobs()
	require.Len(t, jobs, 1)
	assert.Equal(t, notification.KindOTPCode, jobs[0].Kind)
	assert.Equal(t, "alice@example.com", jobs[0].Recipient)
	assert.Len(t, jobs[0].Data["code"], 6)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	existing, err := directory.NewUser("alice@example.com", "password123")
	require.NoError(t, err)
	f.users.On("FindByEmail", ctx, "alice@example.com").Return(existing, nil)

	_, err = f.service.Register(ctx, RegisterRequest{
		Email: "alice@example.com", Password: "password123", FirstName: "Alice",
	})
	assert.Error(t, err)
}

func TestRegister_SurvivesOTPStoreFailure(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	f.users.On("FindByEmail", ctx, "bob@example.com").Return(nil, shared.ErrNotFound)
	f.persons.On("Save", ctx, mock.AnythingOfType("*directory.Person")).Return(nil)
	f.users.On("Save", ctx, mock.AnythingOfType("*directory.User")).Return(nil)
	f.otps.On("Save", ctx, mock.AnythingOfType("*directory.OTP")).Return(assert.AnError)

	// registration succeeds even when the code could not be stored
	_, err := f.service.Register(ctx, RegisterRequest{
		Email: "bob@example.com", Password: "password123", FirstName: "Bob",
	})
	require.NoError(t, err)
	assert.Empty(t, f.dispatcher.Jobs())
}

func TestLogin_Success(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	user, err := directory.NewUser("alice@example.com", "password123")
	require.NoError(t, err)
	user.MarkVerified()
	f.users.On("FindByEmail", ctx, "alice@example.com").Return(user, nil)

	resp, err := f.service.Login(ctx, LoginRequest{Email: "alice@example.com", Password: "password123"})
	require.NoError(t, err)

	assert.Equal(t, user.ID, resp.User.ID)
	assert.NotEmpty(t, resp.Tokens.AccessToken)
	assert.NotEmpty(t, resp.Tokens.RefreshToken)
	assert.Equal(t, "Bearer", resp.Tokens.TokenType)
}

func TestLogin_WrongPassword(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	user, err := directory.NewUser("alice@example.com", "password123")
	require.NoError(t, err)
	user.MarkVerified()
	f.users.On("FindByEmail", ctx, "alice@example.com").Return(user, nil)

	_, err = f.service.Login(ctx, LoginRequest{Email: "alice@example.com", Password: "wrongpass1"})
	assert.Error(t, err)
}

func TestLogin_UnverifiedAccount(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	user, err := directory.NewUser("alice@example.com", "password123")
	require.NoError(t, err)
	f.users.On("FindByEmail", ctx, "alice@example.com").Return(user, nil)

	_, err = f.service.Login(ctx, LoginRequest{Email: "alice@example.com", Password: "password123"})
	require.Error(t, err)

	var derr *shared.DomainError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "ACCOUNT_UNVERIFIED", derr.Code)
}

func TestRefresh_RoundTrip(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	user, err := directory.NewUser("alice@example.com", "password123")
	require.NoError(t, err)
	user.MarkVerified()
	f.users.On("FindByEmail", ctx, "alice@example.com").Return(user, nil)
	f.users.On("FindByID", ctx, user.ID).Return(user, nil)

	login, err := f.service.Login(ctx, LoginRequest{Email: "alice@example.com", Password: "password123"})
	require.NoError(t, err)

	pair, err := f.service.Refresh(ctx, RefreshRequest{RefreshToken: login.Tokens.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
}

func TestRefresh_GarbageToken(t *testing.T) {
	f := newAuthFixture()

	_, err := f.service.Refresh(context.Background(), RefreshRequest{RefreshToken: "garbage"})
	assert.ErrorIs(t, err, shared.ErrUnauthorized)
}

func TestVerifyOTP(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	user, err := directory.NewUser("alice@example.com", "password123")
	require.NoError(t, err)
	otp, err := directory.NewOTP(user.ID, directory.OTPPurposeVerification)
	require.NoError(t, err)

	f.users.On("FindByEmail", ctx, "alice@example.com").Return(user, nil)
	f.otps.On("FindActive", ctx, user.ID, directory.OTPPurposeVerification, otp.Code).Return(otp, nil)
	f.otps.On("Save", ctx, otp).Return(nil)
	f.users.On("Save", ctx, user).Return(nil)

	resp, err := f.service.VerifyOTP(ctx, VerifyOTPRequest{Email: "alice@example.com", Code: otp.Code})
	require.NoError(t, err)
	assert.True(t, resp.IsVerified)
	assert.True(t, otp.IsUsed)
}

func TestVerifyOTP_WrongCode(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	user, err := directory.NewUser("alice@example.com", "password123")
	require.NoError(t, err)

	f.users.On("FindByEmail", ctx, "alice@example.com").Return(user, nil)
	f.otps.On("FindActive", ctx, user.ID, directory.OTPPurposeVerification, "000000").Return(nil, shared.ErrNotFound)

	_, err = f.service.VerifyOTP(ctx, VerifyOTPRequest{Email: "alice@example.com", Code: "000000"})
	require.Error(t, err)

	var derr *shared.DomainError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "OTP_INVALID", derr.Code)
}

func TestResendOTP_AlreadyVerified(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	user, err := directory.NewUser("alice@example.com", "password123")
	require.NoError(t, err)
	user.MarkVerified()
	f.users.On("FindByEmail", ctx, "alice@example.com").Return(user, nil)

	err = f.service.ResendOTP(ctx, ResendOTPRequest{Email: "alice@example.com"})
	assert.Error(t, err)
}
