package impl

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	deliverycontext "sheshape/internal/delivery/context"
	"sheshape/internal/domain/entity"
	domainerrors "sheshape/internal/domain/errors"
	"sheshape/internal/domain/repository"
	"sheshape/internal/domain/service"
	"sheshape/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// maxPictureSize is the upload ceiling for profile pictures.
const maxPictureSize = 5 << 20 // 5 MiB

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	storage   service.FileStorage
	logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	txManager repository.TransactionManager,
	storage service.FileStorage,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		txManager: txManager,
		storage:   storage,
		logger:    logger,
	}
}

// SetupProfile runs the one-time profile setup flow. Extension records are
// only created for the sections that carry data; the user is marked completed
// at the end, which makes a second setup attempt fail.
func (srv *profileService) SetupProfile(ctx context.Context, userID uuid.UUID, input *usecase.ProfileSetupInput) (*usecase.ProfileView, error) {
	srv.logger.Info("Setting up profile", "userID", userID)

	var view *usecase.ProfileView

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		profileRepo := repoFactory.ProfileRepo()

		// 1. Find the user and enforce setup-once
		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}
		if user.ProfileCompleted {
			return errors.Wrap(domainerrors.ErrProfileAlreadyCompleted, "setup may run only once")
		}

		now := time.Now()

		// 2. Basic profile record
		profile := &entity.Profile{
			ID:          uuid.New(),
			UserID:      userID,
			FirstName:   input.FirstName,
			LastName:    input.LastName,
			DateOfBirth: input.DateOfBirth,
			Gender:      input.Gender,
			PhoneNumber: input.PhoneNumber,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if existing, err := profileRepo.FindByUserID(ctx, userID); err == nil {
			// A partial update may have created the record already.
			profile.ID = existing.ID
			profile.ProfilePictureURL = existing.ProfilePictureURL
			profile.CreatedAt = existing.CreatedAt
		} else if !errors.Is(err, repository.ErrProfileNotFound) {
			return errors.Wrap(err, "failed to find profile")
		}
		if err := profileRepo.Save(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to save profile")
		}

		// 3. Extension records, each only when the section carries data
		if input.HeightCm != nil || input.CurrentWeightKg != nil || input.TargetWeightKg != nil {
			attrs := &entity.PhysicalAttributes{
				UserID:          userID,
				HeightCm:        input.HeightCm,
				CurrentWeightKg: input.CurrentWeightKg,
				TargetWeightKg:  input.TargetWeightKg,
				UpdatedAt:       now,
			}
			if err := profileRepo.SavePhysicalAttributes(ctx, attrs); err != nil {
				return errors.Wrap(err, "failed to save physical attributes")
			}
		}

		if hasFitnessData(input) {
			fitness := &entity.FitnessProfile{
				UserID:                 userID,
				FitnessLevel:           input.FitnessLevel,
				PrimaryGoal:            input.PrimaryGoal,
				SecondaryGoals:         input.SecondaryGoals,
				PreferredActivityTypes: input.PreferredActivityTypes,
				WorkoutFrequency:       input.WorkoutFrequency,
				WorkoutDuration:        input.WorkoutDuration,
				PreferredWorkoutDays:   input.PreferredWorkoutDays,
				PreferredWorkoutTimes:  input.PreferredWorkoutTimes,
				UpdatedAt:              now,
			}
			if err := profileRepo.SaveFitnessProfile(ctx, fitness); err != nil {
				return errors.Wrap(err, "failed to save fitness profile")
			}
		}

		if hasHealthData(input) {
			health := &entity.HealthInformation{
				UserID:                userID,
				DietaryRestrictions:   input.DietaryRestrictions,
				HealthConditions:      input.HealthConditions,
				Medications:           input.Medications,
				EmergencyContactName:  input.EmergencyContactName,
				EmergencyContactPhone: input.EmergencyContactPhone,
				UpdatedAt:             now,
			}
			if err := profileRepo.SaveHealthInformation(ctx, health); err != nil {
				return errors.Wrap(err, "failed to save health information")
			}
		}

		// 4. Preferences always exist after setup, defaulted when omitted
		prefs := defaultPreferences(userID, now)
		if input.Timezone != "" {
			prefs.Timezone = input.Timezone
		}
		if input.Language != "" {
			prefs.Language = input.Language
		}
		if input.EmailNotifications != nil {
			prefs.EmailNotifications = *input.EmailNotifications
		}
		if input.PushNotifications != nil {
			prefs.PushNotifications = *input.PushNotifications
		}
		if input.PrivacyLevel != nil {
			prefs.PrivacyLevel = *input.PrivacyLevel
		}
		if err := profileRepo.SaveUserPreferences(ctx, prefs); err != nil {
			return errors.Wrap(err, "failed to save user preferences")
		}

		// 5. Mark the user completed
		user.ProfileCompleted = true
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update user")
		}

		view, err = srv.assembleView(ctx, repoFactory, user)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to set up profile")
	}

	return view, nil
}

// UpdateProfile merges the non-nil fields of the patch into the stored
// records. Records missing for a touched section are created on the fly.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.ProfileUpdateInput) (*usecase.ProfileView, error) {
	srv.logger.Info("Updating profile", "userID", userID)

	var view *usecase.ProfileView

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()

		user, err := repoFactory.UserRepo().FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		now := time.Now()

		if touchesBasicProfile(input) {
			profile, err := profileRepo.FindByUserID(ctx, userID)
			if err != nil {
				if !errors.Is(err, repository.ErrProfileNotFound) {
					return errors.Wrap(err, "failed to find profile")
				}
				profile = &entity.Profile{ID: uuid.New(), UserID: userID, CreatedAt: now}
			}

			if input.FirstName != nil {
				profile.FirstName = *input.FirstName
			}
			if input.LastName != nil {
				profile.LastName = *input.LastName
			}
			if input.DateOfBirth != nil {
				profile.DateOfBirth = input.DateOfBirth
			}
			if input.Gender != nil {
				profile.Gender = *input.Gender
			}
			if input.PhoneNumber != nil {
				profile.PhoneNumber = *input.PhoneNumber
			}
			profile.UpdatedAt = now

			if err := profileRepo.Save(ctx, profile); err != nil {
				return errors.Wrap(err, "failed to save profile")
			}
		}

		if input.HeightCm != nil || input.CurrentWeightKg != nil || input.TargetWeightKg != nil {
			attrs, err := profileRepo.FindPhysicalAttributes(ctx, userID)
			if err != nil {
				if !errors.Is(err, repository.ErrProfileNotFound) {
					return errors.Wrap(err, "failed to find physical attributes")
				}
				attrs = &entity.PhysicalAttributes{UserID: userID}
			}

			if input.HeightCm != nil {
				attrs.HeightCm = input.HeightCm
			}
			if input.CurrentWeightKg != nil {
				attrs.CurrentWeightKg = input.CurrentWeightKg
			}
			if input.TargetWeightKg != nil {
				attrs.TargetWeightKg = input.TargetWeightKg
			}
			attrs.UpdatedAt = now

			if err := profileRepo.SavePhysicalAttributes(ctx, attrs); err != nil {
				return errors.Wrap(err, "failed to save physical attributes")
			}
		}

		if touchesFitnessProfile(input) {
			fitness, err := profileRepo.FindFitnessProfile(ctx, userID)
			if err != nil {
				if !errors.Is(err, repository.ErrProfileNotFound) {
					return errors.Wrap(err, "failed to find fitness profile")
				}
				fitness = &entity.FitnessProfile{UserID: userID}
			}

			if input.FitnessLevel != nil {
				fitness.FitnessLevel = *input.FitnessLevel
			}
			if input.PrimaryGoal != nil {
				fitness.PrimaryGoal = *input.PrimaryGoal
			}
			if input.SecondaryGoals != nil {
				fitness.SecondaryGoals = input.SecondaryGoals
			}
			if input.PreferredActivityTypes != nil {
				fitness.PreferredActivityTypes = input.PreferredActivityTypes
			}
			if input.WorkoutFrequency != nil {
				fitness.WorkoutFrequency = input.WorkoutFrequency
			}
			if input.WorkoutDuration != nil {
				fitness.WorkoutDuration = input.WorkoutDuration
			}
			if input.PreferredWorkoutDays != nil {
				fitness.PreferredWorkoutDays = input.PreferredWorkoutDays
			}
			if input.PreferredWorkoutTimes != nil {
				fitness.PreferredWorkoutTimes = input.PreferredWorkoutTimes
			}
			fitness.UpdatedAt = now

			if err := profileRepo.SaveFitnessProfile(ctx, fitness); err != nil {
				return errors.Wrap(err, "failed to save fitness profile")
			}
		}

		if touchesHealthInformation(input) {
			health, err := profileRepo.FindHealthInformation(ctx, userID)
			if err != nil {
				if !errors.Is(err, repository.ErrProfileNotFound) {
					return errors.Wrap(err, "failed to find health information")
				}
				health = &entity.HealthInformation{UserID: userID}
			}

			if input.DietaryRestrictions != nil {
				health.DietaryRestrictions = input.DietaryRestrictions
			}
			if input.HealthConditions != nil {
				health.HealthConditions = input.HealthConditions
			}
			if input.Medications != nil {
				health.Medications = input.Medications
			}
			if input.EmergencyContactName != nil {
				health.EmergencyContactName = *input.EmergencyContactName
			}
			if input.EmergencyContactPhone != nil {
				health.EmergencyContactPhone = *input.EmergencyContactPhone
			}
			health.UpdatedAt = now

			if err := profileRepo.SaveHealthInformation(ctx, health); err != nil {
				return errors.Wrap(err, "failed to save health information")
			}
		}

		if touchesPreferences(input) {
			prefs, err := profileRepo.FindUserPreferences(ctx, userID)
			if err != nil {
				if !errors.Is(err, repository.ErrProfileNotFound) {
					return errors.Wrap(err, "failed to find user preferences")
				}
				prefs = defaultPreferences(userID, now)
			}

			if input.Timezone != nil {
				prefs.Timezone = *input.Timezone
			}
			if input.Language != nil {
				prefs.Language = *input.Language
			}
			if input.EmailNotifications != nil {
				prefs.EmailNotifications = *input.EmailNotifications
			}
			if input.PushNotifications != nil {
				prefs.PushNotifications = *input.PushNotifications
			}
			if input.PrivacyLevel != nil {
				prefs.PrivacyLevel = *input.PrivacyLevel
			}
			prefs.UpdatedAt = now

			if err := profileRepo.SaveUserPreferences(ctx, prefs); err != nil {
				return errors.Wrap(err, "failed to save user preferences")
			}
		}

		view, err = srv.assembleView(ctx, repoFactory, user)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	return view, nil
}

// GetProfile returns the aggregated profile view across all extension records.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*usecase.ProfileView, error) {
	srv.logger.Debug("Getting profile", "userID", userID)

	var view *usecase.ProfileView

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.UserRepo().FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		view, err = srv.assembleView(ctx, repoFactory, user)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get profile")
	}

	return view, nil
}

// GetProfileSummary returns the condensed profile card used by listings.
func (srv *profileService) GetProfileSummary(ctx context.Context, userID uuid.UUID) (*usecase.ProfileSummaryView, error) {
	srv.logger.Debug("Getting profile summary", "userID", userID)

	var summary *usecase.ProfileSummaryView

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()

		user, err := repoFactory.UserRepo().FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		summary = &usecase.ProfileSummaryView{
			UserID:           userID,
			ProfileCompleted: user.ProfileCompleted,
		}

		if profile, err := profileRepo.FindByUserID(ctx, userID); err == nil {
			summary.FirstName = profile.FirstName
			summary.LastName = profile.LastName
			summary.DateOfBirth = profile.DateOfBirth
			summary.Gender = profile.Gender
			summary.ProfilePictureURL = profile.ProfilePictureURL
		} else if !errors.Is(err, repository.ErrProfileNotFound) {
			return errors.Wrap(err, "failed to find profile")
		}

		if fitness, err := profileRepo.FindFitnessProfile(ctx, userID); err == nil {
			summary.FitnessLevel = fitness.FitnessLevel
			summary.PrimaryGoal = fitness.PrimaryGoal
		} else if !errors.Is(err, repository.ErrProfileNotFound) {
			return errors.Wrap(err, "failed to find fitness profile")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get profile summary")
	}

	return summary, nil
}

// UploadProfilePicture validates and stores a new picture, replacing the
// previous one. The old blob is removed best-effort after the record points
// at the new URL.
func (srv *profileService) UploadProfilePicture(ctx context.Context, userID uuid.UUID, upload *usecase.PictureUpload) (*usecase.PictureView, error) {
	srv.logger.Info("Uploading profile picture", "userID", userID, "filename", upload.Filename, "size", upload.Size)

	if err := validatePicture(upload); err != nil {
		return nil, err
	}

	key := pictureKey(userID, upload.Filename)
	url, err := srv.storage.Upload(ctx, key, upload.ContentType, upload.Content)
	if err != nil {
		return nil, errors.Wrap(err, "failed to upload profile picture")
	}

	var previousURL string

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()

		if _, err := repoFactory.UserRepo().FindByID(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		now := time.Now()
		profile, err := profileRepo.FindByUserID(ctx, userID)
		if err != nil {
			if !errors.Is(err, repository.ErrProfileNotFound) {
				return errors.Wrap(err, "failed to find profile")
			}
			profile = &entity.Profile{ID: uuid.New(), UserID: userID, CreatedAt: now}
		}

		previousURL = profile.ProfilePictureURL
		profile.ProfilePictureURL = url
		profile.UpdatedAt = now

		if err := profileRepo.Save(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to save profile")
		}

		return nil
	})
	if err != nil {
		// The record was not updated; drop the orphaned blob.
		if delErr := srv.storage.Delete(ctx, url); delErr != nil {
			srv.logger.Error("failed to delete orphaned picture", "url", url, "error", delErr)
		}

		return nil, errors.Wrap(err, "failed to update profile picture")
	}

	if previousURL != "" && previousURL != url {
		if err := srv.storage.Delete(ctx, previousURL); err != nil {
			srv.logger.Error("failed to delete previous picture", "url", previousURL, "error", err)
		}
	}

	return &usecase.PictureView{
		ProfilePictureURL: url,
		FileName:          upload.Filename,
		FileSize:          upload.Size,
		ContentType:       upload.ContentType,
		UploadedAt:        time.Now(),
	}, nil
}

// DeleteProfilePicture clears the stored picture URL and removes the blob.
// A profile without a picture deletes to the same state, so repeats succeed.
func (srv *profileService) DeleteProfilePicture(ctx context.Context, userID uuid.UUID) error {
	srv.logger.Info("Deleting profile picture", "userID", userID)

	var previousURL string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()

		profile, err := profileRepo.FindByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return errors.Wrap(domainerrors.ErrProfileNotFound, "profile not found")
			}

			return errors.Wrap(err, "failed to find profile")
		}

		if profile.ProfilePictureURL == "" {
			return nil
		}

		previousURL = profile.ProfilePictureURL
		profile.ProfilePictureURL = ""
		profile.UpdatedAt = time.Now()

		if err := profileRepo.Save(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to save profile")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete profile picture")
	}

	if previousURL != "" {
		if err := srv.storage.Delete(ctx, previousURL); err != nil {
			logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
			logger.Error("failed to delete picture blob", "url", previousURL, "error", err)
		}
	}

	return nil
}

// assembleView loads the profile and its extension records; missing records
// simply leave their section empty.
func (srv *profileService) assembleView(ctx context.Context, repoFactory repository.RepositoryFactory, user *entity.User) (*usecase.ProfileView, error) {
	profileRepo := repoFactory.ProfileRepo()

	view := &usecase.ProfileView{
		UserID:           user.ID,
		ProfileCompleted: user.ProfileCompleted,
	}

	if profile, err := profileRepo.FindByUserID(ctx, user.ID); err == nil {
		view.FirstName = profile.FirstName
		view.LastName = profile.LastName
		view.DateOfBirth = profile.DateOfBirth
		view.Gender = profile.Gender
		view.PhoneNumber = profile.PhoneNumber
		view.ProfilePictureURL = profile.ProfilePictureURL
		view.CreatedAt = profile.CreatedAt
		view.UpdatedAt = profile.UpdatedAt
	} else if !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, errors.Wrap(err, "failed to find profile")
	}

	if attrs, err := profileRepo.FindPhysicalAttributes(ctx, user.ID); err == nil {
		view.PhysicalAttributes = attrs
	} else if !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, errors.Wrap(err, "failed to find physical attributes")
	}

	if fitness, err := profileRepo.FindFitnessProfile(ctx, user.ID); err == nil {
		view.FitnessProfile = fitness
	} else if !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, errors.Wrap(err, "failed to find fitness profile")
	}

	if health, err := profileRepo.FindHealthInformation(ctx, user.ID); err == nil {
		view.HealthInformation = health
	} else if !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, errors.Wrap(err, "failed to find health information")
	}

	if prefs, err := profileRepo.FindUserPreferences(ctx, user.ID); err == nil {
		view.UserPreferences = prefs
	} else if !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, errors.Wrap(err, "failed to find user preferences")
	}

	return view, nil
}

// validatePicture enforces the upload rules: non-empty, an image content
// type, and at most maxPictureSize bytes.
func validatePicture(upload *usecase.PictureUpload) error {
	if upload.Size <= 0 {
		return errors.Wrap(domainerrors.ErrInvalidFile, "file is empty")
	}
	if upload.Size > maxPictureSize {
		return errors.Wrapf(domainerrors.ErrInvalidFile, "file exceeds %d bytes", maxPictureSize)
	}
	if !strings.HasPrefix(upload.ContentType, "image/") {
		return errors.Wrapf(domainerrors.ErrInvalidFile, "content type %q is not an image", upload.ContentType)
	}

	return nil
}

// pictureKey derives a collision-free blob key, keeping the original extension.
func pictureKey(userID uuid.UUID, filename string) string {
	ext := path.Ext(filename)

	return fmt.Sprintf("profiles/%s/%s%s", userID, uuid.NewString(), ext)
}

func defaultPreferences(userID uuid.UUID, now time.Time) *entity.UserPreferences {
	return &entity.UserPreferences{
		UserID:             userID,
		Timezone:           "UTC",
		Language:           "en",
		EmailNotifications: true,
		PushNotifications:  true,
		PrivacyLevel:       entity.PrivacyPrivate,
		UpdatedAt:          now,
	}
}

func hasFitnessData(input *usecase.ProfileSetupInput) bool {
	return input.FitnessLevel != "" || input.PrimaryGoal != "" ||
		len(input.SecondaryGoals) > 0 || len(input.PreferredActivityTypes) > 0 ||
		input.WorkoutFrequency != nil || input.WorkoutDuration != nil ||
		len(input.PreferredWorkoutDays) > 0 || len(input.PreferredWorkoutTimes) > 0
}

func hasHealthData(input *usecase.ProfileSetupInput) bool {
	return len(input.DietaryRestrictions) > 0 || len(input.HealthConditions) > 0 ||
		len(input.Medications) > 0 || input.EmergencyContactName != "" ||
		input.EmergencyContactPhone != ""
}

func touchesBasicProfile(input *usecase.ProfileUpdateInput) bool {
	return input.FirstName != nil || input.LastName != nil || input.DateOfBirth != nil ||
		input.Gender != nil || input.PhoneNumber != nil
}

func touchesFitnessProfile(input *usecase.ProfileUpdateInput) bool {
	return input.FitnessLevel != nil || input.PrimaryGoal != nil ||
		input.SecondaryGoals != nil || input.PreferredActivityTypes != nil ||
		input.WorkoutFrequency != nil || input.WorkoutDuration != nil ||
		input.PreferredWorkoutDays != nil || input.PreferredWorkoutTimes != nil
}

func touchesHealthInformation(input *usecase.ProfileUpdateInput) bool {
	return input.DietaryRestrictions != nil || input.HealthConditions != nil ||
		input.Medications != nil || input.EmergencyContactName != nil ||
		input.EmergencyContactPhone != nil
}

func touchesPreferences(input *usecase.ProfileUpdateInput) bool {
	return input.Timezone != nil || input.Language != nil ||
		input.EmailNotifications != nil || input.PushNotifications != nil ||
		input.PrivacyLevel != nil
}
