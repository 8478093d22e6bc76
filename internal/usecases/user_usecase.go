package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"

	"growcore.backend/internal/domain/entities"
	domainerrors "growcore.backend/internal/domain/errors"
	"growcore.backend/internal/domain/events"
	"growcore.backend/internal/domain/repositories"
	"growcore.backend/pkg/logger"
	"growcore.backend/pkg/utils"
)

// UserUsecase handles user and profile business logic, including the
// profile-completion gate used by the application workflow.
type UserUsecase struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.UserProfileRepository
	uow         repositories.UnitOfWork
}

// NewUserUsecase creates a new user usecase
func NewUserUsecase(
	userRepo repositories.UserRepository,
	profileRepo repositories.UserProfileRepository,
	uow repositories.UnitOfWork,
) *UserUsecase {
	return &UserUsecase{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		uow:         uow,
	}
}

// GetProfile returns the caller-facing user view
func (u *UserUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*entities.UserResponse, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile, err := u.getOrInitProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user, profile), nil
}

// UpdateProfile applies a partial patch to the user's profile: valid fields
// overwrite, null fields preserve. The completion flag is recomputed from the
// merged result and persisted in the same transaction, so it can never go
// stale against the fields it derives from.
func (u *UserUsecase) UpdateProfile(ctx context.Context, userID uuid.UUID, input *entities.ProfileUpdateInput) (*entities.UserResponse, error) {
	if err := validateProfileUpdate(input); err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var profile *entities.UserProfile
	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		profile, err = u.getOrInitProfile(txCtx, userID)
		if err != nil {
			return err
		}

		if input.Phone.Valid {
			user.Phone = utils.NormalizePhone(input.Phone.String)
			if err := u.userRepo.Update(txCtx, user); err != nil {
				return err
			}
		}

		mergeProfilePatch(profile, input)
		wasComplete := profile.ProfileCompleted
		profile.ProfileCompleted = profile.IsComplete()
		if profile.ProfileCompleted != wasComplete {
			logger.Info(txCtx, "profile completion changed",
				zap.String("user_id", userID.String()),
				zap.Bool("completed", profile.ProfileCompleted))
		}

		return u.profileRepo.Save(txCtx, profile)
	})
	if err != nil {
		return nil, err
	}

	return toUserResponse(user, profile), nil
}

// IsProfileComplete reports the stored completion state for a user
func (u *UserUsecase) IsProfileComplete(ctx context.Context, userID uuid.UUID) (bool, error) {
	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if errors.Is(err, domainerrors.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return profile.ProfileCompleted, nil
}

// UpdateVerificationStatus sets the profile verification outcome and emits a
// notification event describing it.
func (u *UserUsecase) UpdateVerificationStatus(ctx context.Context, userID uuid.UUID, status entities.VerificationStatus) ([]events.Event, error) {
	profile, err := u.getOrInitProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile.VerificationStatus = status
	if err := u.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}

	var message string
	switch status {
	case entities.VerificationVerified:
		message = "Your profile has been verified successfully."
	case entities.VerificationRejected:
		message = "Your profile verification was rejected. Please update your information."
	default:
		message = "Your profile verification is pending review."
	}

	evt := events.New(events.KindVerificationUpdated, userID, "Profile Verification Update", message)
	return []events.Event{evt}, nil
}

// Deactivate marks the user account inactive. Accounts are never deleted.
func (u *UserUsecase) Deactivate(ctx context.Context, userID uuid.UUID) error {
	return u.setActive(ctx, userID, false)
}

// Activate re-enables a deactivated account
func (u *UserUsecase) Activate(ctx context.Context, userID uuid.UUID) error {
	return u.setActive(ctx, userID, true)
}

func (u *UserUsecase) setActive(ctx context.Context, userID uuid.UUID, active bool) error {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	user.IsActive = active
	if err := u.userRepo.Update(ctx, user); err != nil {
		return err
	}
	logger.Info(ctx, "user active flag updated",
		zap.String("user_id", userID.String()), zap.Bool("active", active))
	return nil
}

func (u *UserUsecase) getOrInitProfile(ctx context.Context, userID uuid.UUID) (*entities.UserProfile, error) {
	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if errors.Is(err, domainerrors.ErrNotFound) {
		return &entities.UserProfile{
			ID:                 uuid.New(),
			UserID:             userID,
			VerificationStatus: entities.VerificationPending,
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return profile, nil
}

func mergeProfilePatch(profile *entities.UserProfile, input *entities.ProfileUpdateInput) {
	if input.AadhaarNumber.Valid {
		profile.AadhaarNumber = null.StringFrom(utils.NormalizeAadhaar(input.AadhaarNumber.String))
	}
	if input.Education.Valid {
		profile.Education = null.StringFrom(utils.SanitizeInput(input.Education.String))
	}
	if input.Skills.Valid {
		profile.Skills = null.StringFrom(utils.SanitizeInput(input.Skills.String))
	}
	if input.ExperienceYears.Valid {
		profile.ExperienceYears = input.ExperienceYears
	}
}

func validateProfileUpdate(input *entities.ProfileUpdateInput) error {
	if input.Phone.Valid && !utils.IsValidPhone(input.Phone.String) {
		return domainerrors.BadRequest("invalid phone number format")
	}
	if input.AadhaarNumber.Valid && !utils.IsValidAadhaar(input.AadhaarNumber.String) {
		return domainerrors.BadRequest("identity document number must be 12 digits")
	}
	if input.Education.Valid && !utils.IsValidEducation(input.Education.String) {
		return domainerrors.BadRequest("education must be between 2 and 500 characters")
	}
	if input.Skills.Valid && utils.SanitizeInput(input.Skills.String) == "" {
		return domainerrors.BadRequest("skills must not be empty")
	}
	if input.ExperienceYears.Valid && !utils.IsValidExperienceYears(int(input.ExperienceYears.Int)) {
		return domainerrors.BadRequest("experience years must be between 0 and 50")
	}
	return nil
}

func toUserResponse(user *entities.User, profile *entities.UserProfile) *entities.UserResponse {
	resp := &entities.UserResponse{
		ID:            user.ID,
		Email:         user.Email,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		Phone:         user.Phone,
		EmailVerified: user.EmailVerified,
		CreatedAt:     user.CreatedAt,
	}
	if profile != nil {
		resp.AadhaarNumber = profile.AadhaarNumber
		resp.Education = profile.Education
		resp.Skills = profile.Skills
		resp.ExperienceYears = profile.ExperienceYears
		resp.ProfileCompleted = profile.ProfileCompleted
		resp.VerificationStatus = profile.VerificationStatus
	}
	return resp
}
