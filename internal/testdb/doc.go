// Package testdb provides utilities specifically for database integration
// tests: opening a connection from the environment, applying the embedded
// migrations once, isolating each test in a rolled-back transaction, and
// seeding fixture rows.
package testdb
