// Package api implements the authenticated HTTP client for the recipe
// service.
//
// The client attaches session credentials through a cookie jar, refreshes
// an expired session at most once per request, and normalises the service's
// error bodies into a single *APIError type. Concurrent 401s are coalesced
// so only one refresh call is ever in flight (see Client.refreshSession).
//
// Endpoint wrappers are grouped by resource:
//   - Account session and password flows (auth.go).
//   - Recipe collection and its action sub-paths (recipes.go).
//   - Food-database lookups (ingredients.go).
//   - Profile, goals, and diet types (profile.go).
//   - Contact form (contact.go).
//
// All requests are JSON over HTTP except profile image upload, which is
// multipart/form-data. Every call accepts a context for cancellation and
// deadlines.
package api
