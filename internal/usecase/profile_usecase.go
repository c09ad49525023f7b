package usecase

import (
	"context"
	"io"
	"time"

	"sheshape/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	// SetupProfile runs the one-time profile setup flow. It fails when the
	// user already completed setup.
	SetupProfile(ctx context.Context, userID uuid.UUID, input *ProfileSetupInput) (*ProfileView, error)

	// UpdateProfile merges the non-nil fields of the patch into the stored
	// records, creating missing records on the fly.
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *ProfileUpdateInput) (*ProfileView, error)

	// GetProfile returns the aggregated profile view across all extension records.
	GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileView, error)

	// GetProfileSummary returns the condensed card used by listings.
	GetProfileSummary(ctx context.Context, userID uuid.UUID) (*ProfileSummaryView, error)

	// UploadProfilePicture validates and stores a new picture, replacing the
	// previous one.
	UploadProfilePicture(ctx context.Context, userID uuid.UUID, upload *PictureUpload) (*PictureView, error)

	// DeleteProfilePicture removes the stored picture and clears its URL.
	DeleteProfilePicture(ctx context.Context, userID uuid.UUID) error
}

// --- Input DTOs ---

// ProfileSetupInput carries the full one-time setup payload. Extension
// records are only created for the sections that contain data.
type ProfileSetupInput struct {
	FirstName   string     `json:"first_name" validate:"required"`
	LastName    string     `json:"last_name" validate:"required"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	Gender      string     `json:"gender,omitempty"`
	PhoneNumber string     `json:"phone_number,omitempty"`

	HeightCm        *decimal.Decimal `json:"height_cm,omitempty"`
	CurrentWeightKg *decimal.Decimal `json:"current_weight_kg,omitempty"`
	TargetWeightKg  *decimal.Decimal `json:"target_weight_kg,omitempty"`

	FitnessLevel           string   `json:"fitness_level,omitempty"`
	PrimaryGoal            string   `json:"primary_goal,omitempty"`
	SecondaryGoals         []string `json:"secondary_goals,omitempty"`
	PreferredActivityTypes []string `json:"preferred_activity_types,omitempty"`
	WorkoutFrequency       *int     `json:"workout_frequency,omitempty"`
	WorkoutDuration        *int     `json:"workout_duration,omitempty"`
	PreferredWorkoutDays   []string `json:"preferred_workout_days,omitempty"`
	PreferredWorkoutTimes  []string `json:"preferred_workout_times,omitempty"`

	DietaryRestrictions   []string `json:"dietary_restrictions,omitempty"`
	HealthConditions      []string `json:"health_conditions,omitempty"`
	Medications           []string `json:"medications,omitempty"`
	EmergencyContactName  string   `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string   `json:"emergency_contact_phone,omitempty"`

	Timezone           string               `json:"timezone,omitempty"`
	Language           string               `json:"language,omitempty"`
	EmailNotifications *bool                `json:"email_notifications,omitempty"`
	PushNotifications  *bool                `json:"push_notifications,omitempty"`
	PrivacyLevel       *entity.PrivacyLevel `json:"privacy_level,omitempty"`
}

// ProfileUpdateInput is a presence-aware patch: nil means "leave unchanged".
type ProfileUpdateInput struct {
	FirstName   *string    `json:"first_name,omitempty"`
	LastName    *string    `json:"last_name,omitempty"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	Gender      *string    `json:"gender,omitempty"`
	PhoneNumber *string    `json:"phone_number,omitempty"`

	HeightCm        *decimal.Decimal `json:"height_cm,omitempty"`
	CurrentWeightKg *decimal.Decimal `json:"current_weight_kg,omitempty"`
	TargetWeightKg  *decimal.Decimal `json:"target_weight_kg,omitempty"`

	FitnessLevel           *string  `json:"fitness_level,omitempty"`
	PrimaryGoal            *string  `json:"primary_goal,omitempty"`
	SecondaryGoals         []string `json:"secondary_goals,omitempty"`
	PreferredActivityTypes []string `json:"preferred_activity_types,omitempty"`
	WorkoutFrequency       *int     `json:"workout_frequency,omitempty"`
	WorkoutDuration        *int     `json:"workout_duration,omitempty"`
	PreferredWorkoutDays   []string `json:"preferred_workout_days,omitempty"`
	PreferredWorkoutTimes  []string `json:"preferred_workout_times,omitempty"`

	DietaryRestrictions   []string `json:"dietary_restrictions,omitempty"`
	HealthConditions      []string `json:"health_conditions,omitempty"`
	Medications           []string `json:"medications,omitempty"`
	EmergencyContactName  *string  `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone *string  `json:"emergency_contact_phone,omitempty"`

	Timezone           *string              `json:"timezone,omitempty"`
	Language           *string              `json:"language,omitempty"`
	EmailNotifications *bool                `json:"email_notifications,omitempty"`
	PushNotifications  *bool                `json:"push_notifications,omitempty"`
	PrivacyLevel       *entity.PrivacyLevel `json:"privacy_level,omitempty"`
}

// PictureUpload describes an incoming profile picture file.
type PictureUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// --- Output DTOs ---

// ProfileView aggregates the profile and its extension records into one
// response shape.
type ProfileView struct {
	UserID           uuid.UUID `json:"user_id"`
	ProfileCompleted bool      `json:"profile_completed"`

	FirstName         string     `json:"first_name,omitempty"`
	LastName          string     `json:"last_name,omitempty"`
	DateOfBirth       *time.Time `json:"date_of_birth,omitempty"`
	Gender            string     `json:"gender,omitempty"`
	PhoneNumber       string     `json:"phone_number,omitempty"`
	ProfilePictureURL string     `json:"profile_picture_url,omitempty"`

	PhysicalAttributes *entity.PhysicalAttributes `json:"physical_attributes,omitempty"`
	FitnessProfile     *entity.FitnessProfile     `json:"fitness_profile,omitempty"`
	HealthInformation  *entity.HealthInformation  `json:"health_information,omitempty"`
	UserPreferences    *entity.UserPreferences    `json:"user_preferences,omitempty"`

	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// ProfileSummaryView is the condensed profile card.
type ProfileSummaryView struct {
	UserID            uuid.UUID  `json:"user_id"`
	FirstName         string     `json:"first_name,omitempty"`
	LastName          string     `json:"last_name,omitempty"`
	DateOfBirth       *time.Time `json:"date_of_birth,omitempty"`
	Gender            string     `json:"gender,omitempty"`
	ProfilePictureURL string     `json:"profile_picture_url,omitempty"`
	FitnessLevel      string     `json:"fitness_level,omitempty"`
	PrimaryGoal       string     `json:"primary_goal,omitempty"`
	ProfileCompleted  bool       `json:"profile_completed"`
}

// PictureView describes a stored profile picture.
type PictureView struct {
	ProfilePictureURL string    `json:"profile_picture_url"`
	FileName          string    `json:"file_name"`
	FileSize          int64     `json:"file_size"`
	ContentType       string    `json:"content_type"`
	UploadedAt        time.Time `json:"uploaded_at"`
}
