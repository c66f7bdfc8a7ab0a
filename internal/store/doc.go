// Package store persists the CLI's session between invocations.
//
// SessionStore is an http.CookieJar whose cookies are serialised as JSON
// and sealed at rest with an AEAD keyed by a machine-local secret. Files
// live under the user's configured home directory. All methods are
// concurrency-safe via internal locking.
package store
