package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/questparty/questparty-api/internal/domain"
)

// UpdateProfileRequest defines the payload for PUT /profile.
// Absent fields are left unchanged.
type UpdateProfileRequest struct {
	DisplayName *string `json:"displayName"`
	Timezone    *string `json:"timezone"`
}

// ToUpdate converts the request into a normalized domain update.
func (r UpdateProfileRequest) ToUpdate() domain.ProfileUpdate {
	return domain.ProfileUpdate{
		DisplayName: r.DisplayName,
		Timezone:    r.Timezone,
	}.Normalize()
}

// UpdateUserRequest defines the payload for PATCH /user.
// Absent or null fields are left unchanged.
type UpdateUserRequest struct {
	CharacterName         *string    `json:"characterName"`
	OnboardingStep        *int       `json:"onboardingStep"        validate:"omitnil,gte=0,lte=10"`
	OnboardingCompletedAt *time.Time `json:"onboardingCompletedAt"`
}

// ToUpdate converts the request into a normalized domain update.
func (r UpdateUserRequest) ToUpdate() domain.UserUpdate {
	return domain.UserUpdate{
		CharacterName:         r.CharacterName,
		OnboardingStep:        r.OnboardingStep,
		OnboardingCompletedAt: r.OnboardingCompletedAt,
	}.Normalize()
}

// UserResponse is the public projection of a user.
type UserResponse struct {
	ID                    uuid.UUID  `json:"id"`
	Email                 string     `json:"email"`
	DisplayName           string     `json:"display_name"`
	Timezone              string     `json:"timezone"`
	CharacterName         string     `json:"character_name"`
	OnboardingStep        int        `json:"onboarding_step"`
	OnboardingCompletedAt *time.Time `json:"onboarding_completed_at"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

// NewUserResponse projects a domain user.
func NewUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:                    u.ID,
		Email:                 u.Email,
		DisplayName:           u.DisplayName,
		Timezone:              u.Timezone,
		CharacterName:         u.CharacterName,
		OnboardingStep:        u.OnboardingStep,
		OnboardingCompletedAt: u.OnboardingCompletedAt,
		CreatedAt:             u.CreatedAt,
		UpdatedAt:             u.UpdatedAt,
	}
}

// UserEnvelopeData wraps a user as data.user.
type UserEnvelopeData struct {
	User UserResponse `json:"user"`
}

// VictoryResponse is the public projection of a victory.
type VictoryResponse struct {
	ID           uuid.UUID `json:"id"`
	PartyID      uuid.UUID `json:"party_id"`
	MonsterName  string    `json:"monster_name"`
	MonsterLevel int       `json:"monster_level"`
	XPReward     int       `json:"xp_reward"`
	DefeatedAt   time.Time `json:"defeated_at"`
}

// NewVictoryResponse projects a domain victory.
func NewVictoryResponse(v *domain.Victory) VictoryResponse {
	return VictoryResponse{
		ID:           v.ID,
		PartyID:      v.PartyID,
		MonsterName:  v.MonsterName,
		MonsterLevel: v.MonsterLevel,
		XPReward:     v.XPReward,
		DefeatedAt:   v.DefeatedAt,
	}
}

// VictoryEnvelopeData wraps a victory as data.victory.
type VictoryEnvelopeData struct {
	Victory VictoryResponse `json:"victory"`
}

// EmailAvailability is the data of GET /auth/check-email.
type EmailAvailability struct {
	Available bool `json:"available"`
}

// LeavePartyResponse is the data of POST /parties/leave.
type LeavePartyResponse struct {
	PartyID uuid.UUID `json:"party_id"`
}

// HealthResponse is the data of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
	Cache  string `json:"cache,omitempty"`
}
