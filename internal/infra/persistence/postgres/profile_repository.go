package postgres

import (
	"context"

	"sheshape/internal/domain/entity"
	"sheshape/internal/domain/repository"
	"sheshape/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// profileRepository implements the repository.ProfileRepository interface.
// All Save* methods are upserts keyed by user_id so the lazily created 1:1
// extension records can be written without a prior existence check.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// FindByUserID retrieves the basic profile record for a user.
func (repo *profileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by user ID")
	}

	return toProfileDomain(&profileM), nil
}

// Save upserts the basic profile record keyed by user_id.
func (repo *profileRepository) Save(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"first_name", "last_name", "date_of_birth", "gender",
				"phone_number", "profile_picture_url", "updated_at",
			}),
		}).
		Create(profileM).Error; err != nil {
		return errors.Wrap(err, "failed to save profile")
	}

	// Propagate generated values back to the entity.
	profile.ID = profileM.ID
	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// FindPhysicalAttributes retrieves the body measurement record for a user.
func (repo *profileRepository) FindPhysicalAttributes(ctx context.Context, userID uuid.UUID) (*entity.PhysicalAttributes, error) {
	var attrsM model.PhysicalAttributesModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&attrsM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find physical attributes")
	}

	return toPhysicalAttributesDomain(&attrsM), nil
}

// SavePhysicalAttributes upserts the body measurement record.
func (repo *profileRepository) SavePhysicalAttributes(ctx context.Context, attrs *entity.PhysicalAttributes) error {
	attrsM := fromPhysicalAttributesDomain(attrs)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"height_cm", "current_weight_kg", "target_weight_kg", "updated_at",
			}),
		}).
		Create(attrsM).Error; err != nil {
		return errors.Wrap(err, "failed to save physical attributes")
	}

	attrs.UpdatedAt = attrsM.UpdatedAt

	return nil
}

// FindFitnessProfile retrieves the training habits record for a user.
func (repo *profileRepository) FindFitnessProfile(ctx context.Context, userID uuid.UUID) (*entity.FitnessProfile, error) {
	var fitnessM model.FitnessProfileModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&fitnessM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find fitness profile")
	}

	return toFitnessProfileDomain(&fitnessM), nil
}

// SaveFitnessProfile upserts the training habits record.
func (repo *profileRepository) SaveFitnessProfile(ctx context.Context, fitness *entity.FitnessProfile) error {
	fitnessM := fromFitnessProfileDomain(fitness)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"fitness_level", "primary_goal", "secondary_goals",
				"preferred_activity_types", "workout_frequency", "workout_duration",
				"preferred_workout_days", "preferred_workout_times", "updated_at",
			}),
		}).
		Create(fitnessM).Error; err != nil {
		return errors.Wrap(err, "failed to save fitness profile")
	}

	fitness.UpdatedAt = fitnessM.UpdatedAt

	return nil
}

// FindHealthInformation retrieves the medical context record for a user.
func (repo *profileRepository) FindHealthInformation(ctx context.Context, userID uuid.UUID) (*entity.HealthInformation, error) {
	var healthM model.HealthInformationModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&healthM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find health information")
	}

	return toHealthInformationDomain(&healthM), nil
}

// SaveHealthInformation upserts the medical context record.
func (repo *profileRepository) SaveHealthInformation(ctx context.Context, health *entity.HealthInformation) error {
	healthM := fromHealthInformationDomain(health)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"dietary_restrictions", "health_conditions", "medications",
				"emergency_contact_name", "emergency_contact_phone", "updated_at",
			}),
		}).
		Create(healthM).Error; err != nil {
		return errors.Wrap(err, "failed to save health information")
	}

	health.UpdatedAt = healthM.UpdatedAt

	return nil
}

// FindUserPreferences retrieves the account settings record for a user.
func (repo *profileRepository) FindUserPreferences(ctx context.Context, userID uuid.UUID) (*entity.UserPreferences, error) {
	var prefsM model.UserPreferencesModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&prefsM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find user preferences")
	}

	return toUserPreferencesDomain(&prefsM), nil
}

// SaveUserPreferences upserts the account settings record.
func (repo *profileRepository) SaveUserPreferences(ctx context.Context, prefs *entity.UserPreferences) error {
	prefsM := fromUserPreferencesDomain(prefs)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"timezone", "language", "email_notifications",
				"push_notifications", "privacy_level", "updated_at",
			}),
		}).
		Create(prefsM).Error; err != nil {
		return errors.Wrap(err, "failed to save user preferences")
	}

	prefs.UpdatedAt = prefsM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	return &entity.Profile{
		ID:                data.ID,
		UserID:            data.UserID,
		FirstName:         data.FirstName,
		LastName:          data.LastName,
		DateOfBirth:       data.DateOfBirth,
		Gender:            data.Gender,
		PhoneNumber:       data.PhoneNumber,
		ProfilePictureURL: data.ProfilePictureURL,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	if data == nil {
		return nil
	}

	return &model.ProfileModel{
		ID:                data.ID,
		UserID:            data.UserID,
		FirstName:         data.FirstName,
		LastName:          data.LastName,
		DateOfBirth:       data.DateOfBirth,
		Gender:            data.Gender,
		PhoneNumber:       data.PhoneNumber,
		ProfilePictureURL: data.ProfilePictureURL,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func toPhysicalAttributesDomain(data *model.PhysicalAttributesModel) *entity.PhysicalAttributes {
	if data == nil {
		return nil
	}

	return &entity.PhysicalAttributes{
		UserID:          data.UserID,
		HeightCm:        data.HeightCm,
		CurrentWeightKg: data.CurrentWeightKg,
		TargetWeightKg:  data.TargetWeightKg,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromPhysicalAttributesDomain(data *entity.PhysicalAttributes) *model.PhysicalAttributesModel {
	if data == nil {
		return nil
	}

	return &model.PhysicalAttributesModel{
		UserID:          data.UserID,
		HeightCm:        data.HeightCm,
		CurrentWeightKg: data.CurrentWeightKg,
		TargetWeightKg:  data.TargetWeightKg,
		UpdatedAt:       data.UpdatedAt,
	}
}

func toFitnessProfileDomain(data *model.FitnessProfileModel) *entity.FitnessProfile {
	if data == nil {
		return nil
	}

	return &entity.FitnessProfile{
		UserID:                 data.UserID,
		FitnessLevel:           data.FitnessLevel,
		PrimaryGoal:            data.PrimaryGoal,
		SecondaryGoals:         data.SecondaryGoals,
		PreferredActivityTypes: data.PreferredActivityTypes,
		WorkoutFrequency:       data.WorkoutFrequency,
		WorkoutDuration:        data.WorkoutDuration,
		PreferredWorkoutDays:   data.PreferredWorkoutDays,
		PreferredWorkoutTimes:  data.PreferredWorkoutTimes,
		UpdatedAt:              data.UpdatedAt,
	}
}

func fromFitnessProfileDomain(data *entity.FitnessProfile) *model.FitnessProfileModel {
	if data == nil {
		return nil
	}

	return &model.FitnessProfileModel{
		UserID:                 data.UserID,
		FitnessLevel:           data.FitnessLevel,
		PrimaryGoal:            data.PrimaryGoal,
		SecondaryGoals:         data.SecondaryGoals,
		PreferredActivityTypes: data.PreferredActivityTypes,
		WorkoutFrequency:       data.WorkoutFrequency,
		WorkoutDuration:        data.WorkoutDuration,
		PreferredWorkoutDays:   data.PreferredWorkoutDays,
		PreferredWorkoutTimes:  data.PreferredWorkoutTimes,
		UpdatedAt:              data.UpdatedAt,
	}
}

func toHealthInformationDomain(data *model.HealthInformationModel) *entity.HealthInformation {
	if data == nil {
		return nil
	}

	return &entity.HealthInformation{
		UserID:                data.UserID,
		DietaryRestrictions:   data.DietaryRestrictions,
		HealthConditions:      data.HealthConditions,
		Medications:           data.Medications,
		EmergencyContactName:  data.EmergencyContactName,
		EmergencyContactPhone: data.EmergencyContactPhone,
		UpdatedAt:             data.UpdatedAt,
	}
}

func fromHealthInformationDomain(data *entity.HealthInformation) *model.HealthInformationModel {
	if data == nil {
		return nil
	}

	return &model.HealthInformationModel{
		UserID:                data.UserID,
		DietaryRestrictions:   data.DietaryRestrictions,
		HealthConditions:      data.HealthConditions,
		Medications:           data.Medications,
		EmergencyContactName:  data.EmergencyContactName,
		EmergencyContactPhone: data.EmergencyContactPhone,
		UpdatedAt:             data.UpdatedAt,
	}
}

func toUserPreferencesDomain(data *model.UserPreferencesModel) *entity.UserPreferences {
	if data == nil {
		return nil
	}

	return &entity.UserPreferences{
		UserID:             data.UserID,
		Timezone:           data.Timezone,
		Language:           data.Language,
		EmailNotifications: data.EmailNotifications,
		PushNotifications:  data.PushNotifications,
		PrivacyLevel:       entity.PrivacyLevel(data.PrivacyLevel),
		UpdatedAt:          data.UpdatedAt,
	}
}

func fromUserPreferencesDomain(data *entity.UserPreferences) *model.UserPreferencesModel {
	if data == nil {
		return nil
	}

	return &model.UserPreferencesModel{
		UserID:             data.UserID,
		Timezone:           data.Timezone,
		Language:           data.Language,
		EmailNotifications: data.EmailNotifications,
		PushNotifications:  data.PushNotifications,
		PrivacyLevel:       string(data.PrivacyLevel),
		UpdatedAt:          data.UpdatedAt,
	}
}
