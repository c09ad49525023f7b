package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProfileModel mirrors the 'user_profiles' table, the basic demographic
// record created lazily during profile setup.
type ProfileModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID            uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	FirstName         string    `gorm:"type:varchar(100)"`
	LastName          string    `gorm:"type:varchar(100)"`
	DateOfBirth       *time.Time
	Gender            string `gorm:"type:varchar(20)"`
	PhoneNumber       string `gorm:"type:varchar(30)"`
	ProfilePictureURL string `gorm:"type:varchar(512)"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "user_profiles"
}

// PhysicalAttributesModel mirrors the 'physical_attributes' table. UserID
// references users.id and doubles as the primary key (1:1 extension).
type PhysicalAttributesModel struct {
	UserID          uuid.UUID        `gorm:"type:uuid;primaryKey"`
	HeightCm        *decimal.Decimal `gorm:"type:decimal(5,2)"`
	CurrentWeightKg *decimal.Decimal `gorm:"type:decimal(5,2)"`
	TargetWeightKg  *decimal.Decimal `gorm:"type:decimal(5,2)"`
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (PhysicalAttributesModel) TableName() string {
	return "physical_attributes"
}

// FitnessProfileModel mirrors the 'fitness_profiles' table. List-valued
// columns are stored as JSONB via the GORM JSON serializer.
type FitnessProfileModel struct {
	UserID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	FitnessLevel           string    `gorm:"type:varchar(30)"`
	PrimaryGoal            string    `gorm:"type:varchar(50)"`
	SecondaryGoals         []string  `gorm:"type:jsonb;serializer:json"`
	PreferredActivityTypes []string  `gorm:"type:jsonb;serializer:json"`
	WorkoutFrequency       *int
	WorkoutDuration        *int
	PreferredWorkoutDays   []string `gorm:"type:jsonb;serializer:json"`
	PreferredWorkoutTimes  []string `gorm:"type:jsonb;serializer:json"`
	UpdatedAt              time.Time
}

// TableName explicitly sets the table name for GORM.
func (FitnessProfileModel) TableName() string {
	return "fitness_profiles"
}

// HealthInformationModel mirrors the 'health_information' table.
type HealthInformationModel struct {
	UserID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	DietaryRestrictions   []string  `gorm:"type:jsonb;serializer:json"`
	HealthConditions      []string  `gorm:"type:jsonb;serializer:json"`
	Medications           []string  `gorm:"type:jsonb;serializer:json"`
	EmergencyContactName  string    `gorm:"type:varchar(100)"`
	EmergencyContactPhone string    `gorm:"type:varchar(30)"`
	UpdatedAt             time.Time
}

// TableName explicitly sets the table name for GORM.
func (HealthInformationModel) TableName() string {
	return "health_information"
}

// UserPreferencesModel mirrors the 'user_preferences' table.
type UserPreferencesModel struct {
	UserID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Timezone           string    `gorm:"type:varchar(50);not null;default:'UTC'"`
	Language           string    `gorm:"type:varchar(10);not null;default:'en'"`
	EmailNotifications bool      `gorm:"not null;default:true"`
	PushNotifications  bool      `gorm:"not null;default:true"`
	PrivacyLevel       string    `gorm:"type:varchar(20);not null;default:'PRIVATE'"`
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserPreferencesModel) TableName() string {
	return "user_preferences"
}
