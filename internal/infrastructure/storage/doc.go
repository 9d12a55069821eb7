// Package storage implements the durable client-side storage used by the
// session layer: in-memory and file key/value backends, the backend factory,
// and SessionStore, which owns the accessToken and user keys.
package storage
