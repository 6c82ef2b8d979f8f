// Package directory implements account and village use-cases:
// registration with email verification, login, leader management and
// village lookup.
package directory

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Manzp111/smartville/internal/application/notification"
	"github.com/Manzp111/smartville/internal/domain/directory"
	"github.com/Manzp111/smartville/internal/domain/shared"
	"github.com/Manzp111/smartville/internal/infrastructure/auth"
)

// AuthService handles registration, verification and login
type AuthService struct {
	userRepo   directory.UserRepository
	personRepo directory.PersonRepository
	otpRepo    directory.OTPRepository
	jwtService *auth.JWTService
	dispatcher notification.Dispatcher
	logger     *zap.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo directory.UserRepository,
	personRepo directory.PersonRepository,
	otpRepo directory.OTPRepository,
	jwtService *auth.JWTService,
	dispatcher notification.Dispatcher,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		personRepo: personRepo,
		otpRepo:    otpRepo,
		jwtService: jwtService,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Register creates a user with its person record and emails a
// verification code. The account cannot log in until verified.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*UserResponse, error) {
	if _, err := s.userRepo.FindByEmail(ctx, req.Email); err == nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "An account with this email already exists")
	} else if err != shared.ErrNotFound {
		return nil, err
	}

	person, err := directory.NewPerson(req.FirstName, req.LastName, directory.PersonTypeResident)
	if err != nil {
		return nil, err
	}
	if req.NationalID != nil {
		if err := person.SetNationalID(*req.NationalID); err != nil {
			return nil, err
		}
	}
	if req.PhoneNumber != "" {
		if err := person.SetPhoneNumber(req.PhoneNumber); err != nil {
			return nil, err
		}
	}
	if req.Gender != "" {
		if err := person.SetGender(directory.Gender(req.Gender)); err != nil {
			return nil, err
		}
	}

	user, err := directory.NewUser(req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	if err := user.SetPerson(person.ID); err != nil {
		return nil, err
	}

	if err := s.personRepo.Save(ctx, person); err != nil {
		return nil, err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	s.sendOTP(ctx, user, directory.OTPPurposeVerification)

	s.logger.Info("user registered", zap.String("email", user.Email))
	return toUserResponse(user), nil
}

// Login authenticates a user and returns a token pair
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}

	if !user.VerifyPassword(req.Password) {
		s.logger.Warn("invalid password attempt", zap.String("email", req.Email))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}

	if !user.CanLogin() {
		if !user.IsVerified {
			return nil, shared.NewDomainError("ACCOUNT_UNVERIFIED", "Email address has not been verified")
		}
		return nil, shared.NewDomainError("ACCOUNT_INACTIVE", "Account is not active")
	}

	tokens, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		UserID:   user.ID,
		Email:    user.Email,
		Role:     string(user.Role),
		PersonID: user.PersonID,
	})
	if err != nil {
		return nil, err
	}

	return &LoginResponse{User: toUserResponse(user), Tokens: tokens}, nil
}

// Refresh exchanges a valid refresh token for a fresh pair
func (s *AuthService) Refresh(ctx context.Context, req RefreshRequest) (*auth.TokenPair, error) {
	claims, err := s.jwtService.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, shared.ErrUnauthorized
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, shared.ErrUnauthorized
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, shared.ErrUnauthorized
	}
	if !user.CanLogin() {
		return nil, shared.ErrUnauthorized
	}

	return s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		UserID:   user.ID,
		Email:    user.Email,
		Role:     string(user.Role),
		PersonID: user.PersonID,
	})
}

// VerifyOTP consumes a verification code and marks the account verified
func (s *AuthService) VerifyOTP(ctx context.Context, req VerifyOTPRequest) (*UserResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	otp, err := s.otpRepo.FindActive(ctx, user.ID, directory.OTPPurposeVerification, req.Code)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError("OTP_INVALID", "Invalid verification code")
		}
		return nil, err
	}

	if err := otp.Consume(); err != nil {
		return nil, err
	}
	if err := s.otpRepo.Save(ctx, otp); err != nil {
		return nil, err
	}

	user.MarkVerified()
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user verified", zap.String("email", user.Email))
	return toUserResponse(user), nil
}

// ResendOTP issues a fresh verification code for an unverified account
func (s *AuthService) ResendOTP(ctx context.Context, req ResendOTPRequest) error {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return err
	}
	if user.IsVerified {
		return shared.NewDomainError("ALREADY_VERIFIED", "Account is already verified")
	}

	s.sendOTP(ctx, user, directory.OTPPurposeVerification)
	return nil
}

// sendOTP creates and dispatches a code; failures are logged, never
// surfaced, so registration does not hinge on delivery
func (s *AuthService) sendOTP(ctx context.Context, user *directory.User, purpose directory.OTPPurpose) {
	otp, err := directory.NewOTP(user.ID, purpose)
	if err != nil {
		s.logger.Error("failed to generate otp", zap.String("email", user.Email), zap.Error(err))
		return
	}
	if err := s.otpRepo.Save(ctx, otp); err != nil {
		s.logger.Error("failed to store otp", zap.String("email", user.Email), zap.Error(err))
		return
	}
	s.dispatcher.Dispatch(ctx, notification.OTPJob(user.Email, otp.Code, string(purpose)))
}
