package ports

import (
	"context"
	"errors"

	"github.com/waresmart/warehouse-console/internal/core/domain"
)

// ErrKeyNotFound is returned by KeyValueStore.Get for a missing key.
var ErrKeyNotFound = errors.New("key not found")

// Durable storage keys, shared by every backend.
const (
	KeyAccessToken = "accessToken"
	KeyUser        = "user"
)

// KeyValueStore is the durable client-side storage backend.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}

// SessionStore persists the credential token and identity snapshot.
type SessionStore interface {
	// StoredIdentity returns nil without error for missing or malformed data.
	StoredIdentity(ctx context.Context) (*domain.Identity, error)
	HasValidToken(ctx context.Context) (bool, error)
	Token(ctx context.Context) (string, error)
	Persist(ctx context.Context, token string, identity domain.Identity) error
	Clear(ctx context.Context) error
}

// TokenSource supplies the bearer token for outbound requests.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}
