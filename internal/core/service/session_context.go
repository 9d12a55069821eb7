package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/waresmart/warehouse-console/internal/core/domain"
	"github.com/waresmart/warehouse-console/internal/core/ports"
	"github.com/waresmart/warehouse-console/internal/metrics"
)

// SessionContext owns the process-wide Session. One instance is built at
// start and passed explicitly to the router, handlers and CLI.
type SessionContext struct {
	store   ports.SessionStore
	gateway ports.AuthGateway
	log     zerolog.Logger

	// opMu serialises login and logout so persisted state and the in-memory
	// identity change together.
	opMu sync.Mutex

	mu       sync.RWMutex
	identity *domain.Identity
	loading  bool

	initOnce sync.Once
	ready    chan struct{}
}

func NewSessionContext(store ports.SessionStore, gateway ports.AuthGateway, log zerolog.Logger) *SessionContext {
	return &SessionContext{
		store:   store,
		gateway: gateway,
		log:     log,
		loading: true,
		ready:   make(chan struct{}),
	}
}

// Initialize performs the one-shot startup check. Errors are logged and the
// session stays anonymous. Only the first call does anything.
func (s *SessionContext) Initialize(ctx context.Context) {
	s.initOnce.Do(func() {
		identity, outcome := s.restore(ctx)

		s.mu.Lock()
		if identity != nil {
			s.identity = identity
		}
		s.loading = false
		s.mu.Unlock()

		metrics.SessionInitTotal.WithLabelValues(outcome).Inc()
		close(s.ready)
	})
}

func (s *SessionContext) restore(ctx context.Context) (*domain.Identity, string) {
	identity, err := s.store.StoredIdentity(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("session restore failed, starting anonymous")
		return nil, "failed"
	}
	hasToken, err := s.store.HasValidToken(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("session restore failed, starting anonymous")
		return nil, "failed"
	}
	if identity == nil || !hasToken {
		s.log.Debug().Bool("identity", identity != nil).Bool("token", hasToken).Msg("no stored session")
		return nil, "anonymous"
	}

	s.log.Info().Str("username", identity.Username).Msg("session restored")
	return identity, "restored"
}

// Ready is closed once Initialize has finished.
func (s *SessionContext) Ready() <-chan struct{} {
	return s.ready
}

// Session returns a snapshot of the current session.
func (s *SessionContext) Session() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := domain.Session{IsLoading: s.loading}
	if s.identity != nil {
		identity := *s.identity
		out.Identity = &identity
	}
	return out
}

// Login authenticates against the backend, persists the credentials and
// makes the identity current. On any error the session is left as it was.
func (s *SessionContext) Login(ctx context.Context, username, password string) (*domain.Identity, error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	creds, err := s.gateway.Login(ctx, username, password)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues(loginResult(err)).Inc()
		s.log.Info().Err(err).Str("username", username).Msg("login failed")
		return nil, err
	}

	if err := s.store.Persist(ctx, creds.Token, creds.Identity); err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("storage_error").Inc()
		s.log.Error().Err(err).Str("username", username).Msg("persist credentials")
		return nil, fmt.Errorf("persist session: %w", err)
	}

	identity := creds.Identity
	s.mu.Lock()
	s.identity = &identity
	s.mu.Unlock()

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("username", identity.Username).Str("role", identity.Role).Msg("login succeeded")

	out := identity
	return &out, nil
}

// Logout clears persisted credentials and drops the identity. A storage
// failure is logged; the in-memory session is anonymous either way.
func (s *SessionContext) Logout(ctx context.Context) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	if err := s.store.Clear(ctx); err != nil {
		s.log.Error().Err(err).Msg("clear stored session")
	}

	s.mu.Lock()
	prev := s.identity
	s.identity = nil
	s.mu.Unlock()

	if prev != nil {
		s.log.Info().Str("username", prev.Username).Msg("logged out")
	}
}

func loginResult(err error) string {
	var authErr *domain.AuthenticationError
	if errors.As(err, &authErr) {
		return "auth_error"
	}
	return "network_error"
}
