// Package session implements the session oracle: the single source of truth
// for authentication state.
//
// The [Oracle] wraps the identity provider's REST surface (email/password
// accounts with refresh-token renewal) and exposes current-user lookup, an
// authenticated/unauthenticated query, and bearer tokens fetched fresh per
// call. State transitions fan out to registered watchers so the UI can
// re-evaluate route guards and regenerate the navigation fragment.
//
// The active session is persisted through a [Store] so a user stays signed
// in between invocations, mirroring the provider's local-persistence policy.
package session
