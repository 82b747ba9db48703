package domain

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestProfileUpdate_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		update  ProfileUpdate
		wantErr error
	}{
		{"empty", ProfileUpdate{}, ErrEmptyUpdate},
		{"display name only", ProfileUpdate{DisplayName: strPtr("Brave Runner")}, nil},
		{"timezone only", ProfileUpdate{Timezone: strPtr("America/New_York")}, nil},
		{"both", ProfileUpdate{DisplayName: strPtr("Ana"), Timezone: strPtr("Europe/Lisbon")}, nil},
		{"blank display name", ProfileUpdate{DisplayName: strPtr("")}, ErrValidation},
		{"long display name", ProfileUpdate{DisplayName: strPtr(strings.Repeat("x", MaxDisplayNameLength+1))}, ErrValidation},
		{"unknown timezone", ProfileUpdate{Timezone: strPtr("Mars/Olympus_Mons")}, ErrValidation},
		{"local timezone", ProfileUpdate{Timezone: strPtr("Local")}, ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.update.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, IsValidationError(err))
		})
	}
}

func TestProfileUpdate_NormalizeAndApply(t *testing.T) {
	t.Parallel()

	user := &User{DisplayName: "Old", Timezone: "UTC", CharacterName: "Knight"}
	update := ProfileUpdate{DisplayName: strPtr("  New Name  ")}.Normalize()

	require.NoError(t, update.Validate())
	update.Apply(user)

	assert.Equal(t, "New Name", user.DisplayName)
	assert.Equal(t, "UTC", user.Timezone, "unset fields must be preserved")
	assert.Equal(t, "Knight", user.CharacterName)
}

func TestProfileUpdate_WhitespaceOnlyNameRejected(t *testing.T) {
	t.Parallel()

	update := ProfileUpdate{DisplayName: strPtr("   ")}.Normalize()
	assert.ErrorIs(t, update.Validate(), ErrValidation)
}

func TestUserUpdate_Validate(t *testing.T) {
	t.Parallel()

	now := time.Now()
	tests := []struct {
		name    string
		update  UserUpdate
		wantErr error
	}{
		{"empty", UserUpdate{}, ErrEmptyUpdate},
		{"step only", UserUpdate{OnboardingStep: intPtr(3)}, nil},
		{"step zero", UserUpdate{OnboardingStep: intPtr(0)}, nil},
		{"negative step", UserUpdate{OnboardingStep: intPtr(-1)}, ErrValidation},
		{"step too large", UserUpdate{OnboardingStep: intPtr(MaxOnboardingStep + 1)}, ErrValidation},
		{"character name", UserUpdate{CharacterName: strPtr("Sir Squat")}, nil},
		{"long character name", UserUpdate{CharacterName: strPtr(strings.Repeat("y", MaxCharacterNameLength+1))}, ErrValidation},
		{"completed at", UserUpdate{OnboardingCompletedAt: &now}, nil},
		{"zero completed at", UserUpdate{OnboardingCompletedAt: &time.Time{}}, ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.update.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestUserUpdate_Apply(t *testing.T) {
	t.Parallel()

	user := &User{CharacterName: "Knight", OnboardingStep: 1, DisplayName: "Ana"}
	UserUpdate{OnboardingStep: intPtr(3)}.Apply(user)

	assert.Equal(t, 3, user.OnboardingStep)
	assert.Equal(t, "Knight", user.CharacterName)
	assert.Equal(t, "Ana", user.DisplayName)
	assert.Nil(t, user.OnboardingCompletedAt)

	done := time.Date(2026, 3, 1, 12, 0, 0, 0, time.FixedZone("x", 3600))
	UserUpdate{OnboardingCompletedAt: &done}.Normalize().Apply(user)

	require.NotNil(t, user.OnboardingCompletedAt)
	assert.Equal(t, time.UTC, user.OnboardingCompletedAt.Location())
	assert.True(t, done.Equal(*user.OnboardingCompletedAt))
}
