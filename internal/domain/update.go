package domain

import (
	"strings"
	"time"
	_ "time/tzdata" // IANA zone validation must not depend on the host's zoneinfo
	"unicode/utf8"
)

// Field limits for user-editable values.
const (
	MaxDisplayNameLength   = 50
	MaxCharacterNameLength = 30
	MaxOnboardingStep      = 10
)

// ProfileUpdate is a partial update of a user's public profile.
// A nil field is left untouched.
type ProfileUpdate struct {
	DisplayName *string
	Timezone    *string
}

// IsEmpty reports whether no field is set.
func (u ProfileUpdate) IsEmpty() bool {
	return u.DisplayName == nil && u.Timezone == nil
}

// Normalize returns a copy with surrounding whitespace trimmed from every set field.
func (u ProfileUpdate) Normalize() ProfileUpdate {
	return ProfileUpdate{
		DisplayName: trimmed(u.DisplayName),
		Timezone:    trimmed(u.Timezone),
	}
}

// Validate checks that at least one field is set and every set field is well-formed.
func (u ProfileUpdate) Validate() error {
	if u.IsEmpty() {
		return ErrEmptyUpdate
	}
	if u.DisplayName != nil {
		if err := validateName("displayName", *u.DisplayName, MaxDisplayNameLength); err != nil {
			return err
		}
	}
	if u.Timezone != nil && !IsValidTimezone(*u.Timezone) {
		return NewValidationError("timezone", "must be an IANA time zone name", ErrValidation)
	}
	return nil
}

// Apply copies every set field onto user.
func (u ProfileUpdate) Apply(user *User) {
	if u.DisplayName != nil {
		user.DisplayName = *u.DisplayName
	}
	if u.Timezone != nil {
		user.Timezone = *u.Timezone
	}
}

// UserUpdate is a partial update of a user's character and onboarding state.
// A nil field is left untouched.
type UserUpdate struct {
	CharacterName         *string
	OnboardingStep        *int
	OnboardingCompletedAt *time.Time
}

// IsEmpty reports whether no field is set.
func (u UserUpdate) IsEmpty() bool {
	return u.CharacterName == nil && u.OnboardingStep == nil && u.OnboardingCompletedAt == nil
}

// Normalize returns a copy with the character name trimmed and the
// completion timestamp converted to UTC.
func (u UserUpdate) Normalize() UserUpdate {
	out := UserUpdate{
		CharacterName:  trimmed(u.CharacterName),
		OnboardingStep: u.OnboardingStep,
	}
	if u.OnboardingCompletedAt != nil {
		t := u.OnboardingCompletedAt.UTC()
		out.OnboardingCompletedAt = &t
	}
	return out
}

// Validate checks that at least one field is set and every set field is well-formed.
func (u UserUpdate) Validate() error {
	if u.IsEmpty() {
		return ErrEmptyUpdate
	}
	if u.CharacterName != nil {
		if err := validateName("characterName", *u.CharacterName, MaxCharacterNameLength); err != nil {
			return err
		}
	}
	if u.OnboardingStep != nil && (*u.OnboardingStep < 0 || *u.OnboardingStep > MaxOnboardingStep) {
		return NewValidationError("onboardingStep", "is out of range", ErrValidation)
	}
	if u.OnboardingCompletedAt != nil && u.OnboardingCompletedAt.IsZero() {
		return NewValidationError("onboardingCompletedAt", "must be a valid timestamp", ErrValidation)
	}
	return nil
}

// Apply copies every set field onto user.
func (u UserUpdate) Apply(user *User) {
	if u.CharacterName != nil {
		user.CharacterName = *u.CharacterName
	}
	if u.OnboardingStep != nil {
		user.OnboardingStep = *u.OnboardingStep
	}
	if u.OnboardingCompletedAt != nil {
		t := *u.OnboardingCompletedAt
		user.OnboardingCompletedAt = &t
	}
}

// IsValidTimezone reports whether tz names an IANA time zone.
// "Local" is rejected because its meaning depends on the server.
func IsValidTimezone(tz string) bool {
	if tz == "" || tz == "Local" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func validateName(field, value string, maxLen int) error {
	n := utf8.RuneCountInString(value)
	if n == 0 {
		return NewValidationError(field, "cannot be empty", ErrValidation)
	}
	if n > maxLen {
		return NewValidationError(field, "is too long", ErrValidation)
	}
	return nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
