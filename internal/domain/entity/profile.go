package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PrivacyLevel controls who may see a user's profile data.
type PrivacyLevel string

const (
	PrivacyPublic      PrivacyLevel = "PUBLIC"
	PrivacyFriendsOnly PrivacyLevel = "FRIENDS_ONLY"
	PrivacyPrivate     PrivacyLevel = "PRIVATE"
)

// Profile holds the basic demographic data of a user. It is a 1:1 extension
// of User, created lazily during profile setup or the first partial update.
type Profile struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	FirstName         string
	LastName          string
	DateOfBirth       *time.Time
	Gender            string
	PhoneNumber       string
	ProfilePictureURL string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// PhysicalAttributes is a 1:1 extension record with body measurements.
type PhysicalAttributes struct {
	UserID          uuid.UUID
	HeightCm        *decimal.Decimal
	CurrentWeightKg *decimal.Decimal
	TargetWeightKg  *decimal.Decimal
	UpdatedAt       time.Time
}

// FitnessProfile is a 1:1 extension record describing training habits and goals.
type FitnessProfile struct {
	UserID                 uuid.UUID
	FitnessLevel           string
	PrimaryGoal            string
	SecondaryGoals         []string
	PreferredActivityTypes []string
	WorkoutFrequency       *int // sessions per week
	WorkoutDuration        *int // minutes per session
	PreferredWorkoutDays   []string
	PreferredWorkoutTimes  []string
	UpdatedAt              time.Time
}

// HealthInformation is a 1:1 extension record with medical context.
type HealthInformation struct {
	UserID                uuid.UUID
	DietaryRestrictions   []string
	HealthConditions      []string
	Medications           []string
	EmergencyContactName  string
	EmergencyContactPhone string
	UpdatedAt             time.Time
}

// UserPreferences is a 1:1 extension record with account-level settings.
type UserPreferences struct {
	UserID             uuid.UUID
	Timezone           string
	Language           string
	EmailNotifications bool
	PushNotifications  bool
	PrivacyLevel       PrivacyLevel
	UpdatedAt          time.Time
}
