// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role classifies what a user account is allowed to do.
type Role string

const (
	RoleClient       Role = "CLIENT"
	RoleAdmin        Role = "ADMIN"
	RoleTrainer      Role = "TRAINER"
	RoleNutritionist Role = "NUTRITIONIST"
)

// User is the core identity in the system. Demographic and fitness data live
// in the lazily created profile records keyed by the user id.
type User struct {
	ID               uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email            string    // The user's primary contact email, used as a login identifier.
	Username         string    // The user's display name.
	Role             Role      // Account role; checkout and cart flows only require CLIENT.
	ProfileCompleted bool      // Set once the profile setup flow finished; setup may run only once.
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
