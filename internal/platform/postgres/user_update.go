package postgres

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/questparty/questparty-api/internal/domain"
)

// assignment is one column = value pair of a partial update.
type assignment struct {
	column string
	value  any
}

// updatableUserColumns is the whitelist of columns a partial user update may touch.
var updatableUserColumns = map[string]bool{
	"display_name":            true,
	"timezone":                true,
	"character_name":          true,
	"onboarding_step":         true,
	"onboarding_completed_at": true,
}

func profileAssignments(u domain.ProfileUpdate) []assignment {
	var out []assignment
	if u.DisplayName != nil {
		out = append(out, assignment{"display_name", *u.DisplayName})
	}
	if u.Timezone != nil {
		out = append(out, assignment{"timezone", *u.Timezone})
	}
	return out
}

func userAssignments(u domain.UserUpdate) []assignment {
	var out []assignment
	if u.CharacterName != nil {
		out = append(out, assignment{"character_name", *u.CharacterName})
	}
	if u.OnboardingStep != nil {
		out = append(out, assignment{"onboarding_step", *u.OnboardingStep})
	}
	if u.OnboardingCompletedAt != nil {
		out = append(out, assignment{"onboarding_completed_at", u.OnboardingCompletedAt.UTC()})
	}
	return out
}

// buildUserUpdate renders a single UPDATE ... RETURNING statement that sets
// exactly the given columns and bumps updated_at.
func buildUserUpdate(id uuid.UUID, assignments []assignment) (string, []any, error) {
	if len(assignments) == 0 {
		return "", nil, domain.ErrEmptyUpdate
	}

	sets := make([]string, 0, len(assignments)+1)
	args := make([]any, 0, len(assignments)+1)
	for _, a := range assignments {
		if !updatableUserColumns[a.column] {
			return "", nil, fmt.Errorf("column %q is not updatable", a.column)
		}
		args = append(args, a.value)
		sets = append(sets, fmt.Sprintf("%s = $%d", a.column, len(args)))
	}
	sets = append(sets, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(
		"UPDATE users SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "),
		len(args),
		userColumns,
	)
	return query, args, nil
}
