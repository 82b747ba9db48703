// Package mocks provides centralized mock implementations for testing.
//
// Each mock exposes a function field per interface method. When a function
// field is nil the mock falls back to a small in-memory implementation, so
// most handler tests only seed data and assert on the response.
//
//	users := mocks.NewMockUserStore(&domain.User{ID: id, Email: "a@example.com"})
//	users.GetByIDFn = func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
//	    return nil, errors.New("boom")
//	}
package mocks
