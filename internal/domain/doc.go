// Package domain contains the core business entities, value objects, and
// domain logic of the application: users and their onboarding state, party
// memberships and the victories parties earn by defeating monsters. It is
// independent of any specific infrastructure or delivery mechanism.
package domain
