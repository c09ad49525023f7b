package repository

import (
	"context"
	"errors"

	"sheshape/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when a profile record does not exist for a user.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository persists the basic Profile record and its four 1:1
// extension records. Every Find* method returns ErrProfileNotFound when the
// record has not been created yet; Save* performs an upsert keyed by user id.
type ProfileRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)
	Save(ctx context.Context, profile *entity.Profile) error

	FindPhysicalAttributes(ctx context.Context, userID uuid.UUID) (*entity.PhysicalAttributes, error)
	SavePhysicalAttributes(ctx context.Context, attrs *entity.PhysicalAttributes) error

	FindFitnessProfile(ctx context.Context, userID uuid.UUID) (*entity.FitnessProfile, error)
	SaveFitnessProfile(ctx context.Context, fitness *entity.FitnessProfile) error

	FindHealthInformation(ctx context.Context, userID uuid.UUID) (*entity.HealthInformation, error)
	SaveHealthInformation(ctx context.Context, health *entity.HealthInformation) error

	FindUserPreferences(ctx context.Context, userID uuid.UUID) (*entity.UserPreferences, error)
	SaveUserPreferences(ctx context.Context, prefs *entity.UserPreferences) error
}
