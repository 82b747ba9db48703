// Package auth verifies and mints the bearer credentials that identify API
// callers. Verification is pure: it never consults storage, so a request is
// authenticated before any repository is touched.
package auth
