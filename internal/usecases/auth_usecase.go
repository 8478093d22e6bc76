package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"growcore.backend/internal/domain/entities"
	domainerrors "growcore.backend/internal/domain/errors"
	"growcore.backend/internal/domain/events"
	"growcore.backend/internal/domain/repositories"
	"growcore.backend/pkg/crypto"
	"growcore.backend/pkg/jwt"
	"growcore.backend/pkg/logger"
)

// AuthUsecase handles registration, login and email verification. The
// workflow components never see credentials; they receive the user ID
// resolved from the access token.
type AuthUsecase struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.UserProfileRepository
	jwtService  *jwt.JWTService
	uow         repositories.UnitOfWork
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	profileRepo repositories.UserProfileRepository,
	jwtService *jwt.JWTService,
	uow repositories.UnitOfWork,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		jwtService:  jwtService,
		uow:         uow,
	}
}

// Register creates a user with an empty pending profile and returns tokens
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.AuthResponse, []events.Event, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	taken, err := u.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}
	if taken {
		return nil, nil, domainerrors.ErrEmailTaken
	}

	hash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, nil, err
	}

	user := &entities.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Phone:        input.Phone,
		IsActive:     true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	profile := &entities.UserProfile{
		ID:                 uuid.New(),
		UserID:             user.ID,
		VerificationStatus: entities.VerificationPending,
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.userRepo.Create(txCtx, user); err != nil {
			return err
		}
		return u.profileRepo.Save(txCtx, profile)
	})
	if err != nil {
		return nil, nil, err
	}

	pair, err := u.jwtService.GenerateTokenPair(user.ID, user.Email)
	if err != nil {
		return nil, nil, err
	}

	logger.Info(ctx, "user registered", zap.String("user_id", user.ID.String()))

	welcome := events.New(events.KindWelcome, user.ID,
		"Welcome to Grow Core Hub!",
		"Welcome to our platform! Please complete your profile to start applying for projects.")

	return &entities.AuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         toUserResponse(user, profile),
	}, []events.Event{welcome}, nil
}

// Login authenticates a user by email and password
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		// Not-found reads as bad credentials so the endpoint does not
		// leak which emails exist.
		logger.Warn(ctx, "failed login attempt", zap.String("email", email))
		return nil, domainerrors.ErrInvalidCredentials
	}
	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		logger.Warn(ctx, "failed login attempt", zap.String("email", email))
		return nil, domainerrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, domainerrors.ErrAccountDisabled
	}

	pair, err := u.jwtService.GenerateTokenPair(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	profile, err := u.profileRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		profile = nil
	}

	return &entities.AuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         toUserResponse(user, profile),
	}, nil
}

// VerifyEmail marks the account identified by the verification token as
// email-verified
func (u *AuthUsecase) VerifyEmail(ctx context.Context, token string) ([]events.Event, error) {
	claims, err := u.jwtService.ValidateToken(token)
	if err != nil {
		return nil, domainerrors.Unauthorized("invalid or expired verification token")
	}

	user, err := u.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user.EmailVerified {
		return nil, nil
	}

	user.EmailVerified = true
	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	logger.Info(ctx, "email verified", zap.String("user_id", user.ID.String()))

	evt := events.New(events.KindEmailVerified, user.ID,
		"Email Verified", "Your email has been successfully verified.")
	return []events.Event{evt}, nil
}
