package mocks

import "context"

// MockPinger implements the health check's database and cache dependencies.
type MockPinger struct {
	Err error
}

// PingContext returns m.Err.
func (m *MockPinger) PingContext(ctx context.Context) error {
	return m.Err
}

// Ping returns m.Err.
func (m *MockPinger) Ping(ctx context.Context) error {
	return m.Err
}
