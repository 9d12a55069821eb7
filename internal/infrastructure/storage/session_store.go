package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/waresmart/warehouse-console/internal/core/domain"
	"github.com/waresmart/warehouse-console/internal/core/ports"
)

// SessionStore persists the credential token and identity snapshot under
// the accessToken and user keys of a KeyValueStore.
type SessionStore struct {
	kv  ports.KeyValueStore
	log zerolog.Logger
}

func NewSessionStore(kv ports.KeyValueStore, log zerolog.Logger) *SessionStore {
	return &SessionStore{kv: kv, log: log}
}

// StoredIdentity returns the persisted identity. Missing and malformed
// snapshots both yield (nil, nil); only backend failures are returned.
func (s *SessionStore) StoredIdentity(ctx context.Context) (*domain.Identity, error) {
	raw, err := s.kv.Get(ctx, ports.KeyUser)
	if errors.Is(err, ports.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read stored identity: %w", err)
	}

	identity, err := decodeIdentity(raw)
	if err != nil {
		s.log.Warn().Err(err).Msg("ignoring stored identity")
		return nil, nil
	}
	return identity, nil
}

// HasValidToken reports whether a non-empty token is stored. Expiry and
// signature are not checked.
func (s *SessionStore) HasValidToken(ctx context.Context) (bool, error) {
	token, err := s.Token(ctx)
	if err != nil {
		return false, err
	}
	return token != "", nil
}

// Token returns the stored bearer token unchanged, or "" when none is stored
// or the stored value is blank.
func (s *SessionStore) Token(ctx context.Context) (string, error) {
	token, err := s.kv.Get(ctx, ports.KeyAccessToken)
	if errors.Is(err, ports.ErrKeyNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}
	if strings.TrimSpace(token) == "" {
		return "", nil
	}
	return token, nil
}

// Persist writes the token, then the identity. There is no rollback: both
// writes are re-writes of the same login outcome.
func (s *SessionStore) Persist(ctx context.Context, token string, identity domain.Identity) error {
	data, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("encode identity: %w", err)
	}
	if err := s.kv.Set(ctx, ports.KeyAccessToken, token); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	if err := s.kv.Set(ctx, ports.KeyUser, string(data)); err != nil {
		return fmt.Errorf("persist identity: %w", err)
	}
	return nil
}

// Clear removes both keys. Both deletes are attempted even if the first fails.
func (s *SessionStore) Clear(ctx context.Context) error {
	return errors.Join(
		s.kv.Delete(ctx, ports.KeyAccessToken),
		s.kv.Delete(ctx, ports.KeyUser),
	)
}

func decodeIdentity(raw string) (*domain.Identity, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return nil, fmt.Errorf("%w: empty", domain.ErrStorageRead)
	}
	var identity domain.Identity
	if err := json.Unmarshal([]byte(raw), &identity); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageRead, err)
	}
	if identity.Username == "" {
		return nil, fmt.Errorf("%w: missing username", domain.ErrStorageRead)
	}
	return &identity, nil
}
