package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultTimezone is assigned to users who never chose one.
const DefaultTimezone = "UTC"

// User represents a registered player. Identity is owned by the external
// credential issuer; this record holds profile and onboarding state.
type User struct {
	ID                    uuid.UUID
	Email                 string
	DisplayName           string
	Timezone              string
	CharacterName         string
	OnboardingStep        int
	OnboardingCompletedAt *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}
