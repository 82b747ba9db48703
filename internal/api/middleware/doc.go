// Package middleware holds the HTTP middleware shared by every route:
// tracing and access logs, panic recovery and bearer authentication.
package middleware
