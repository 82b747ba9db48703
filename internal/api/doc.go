// Package api handles incoming HTTP requests: it authenticates the caller,
// validates input, performs a single repository call scoped to that caller
// and maps the outcome onto the shared response envelope.
package api
