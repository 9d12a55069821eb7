package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/waresmart/warehouse-console/internal/core/domain"
	"github.com/waresmart/warehouse-console/internal/core/ports"
	"github.com/waresmart/warehouse-console/internal/metrics"
)

// UserService adds the mock fallback and local search to the user directory.
type UserService struct {
	dir      ports.UserDirectory
	fallback bool
	log      zerolog.Logger
}

func NewUserService(dir ports.UserDirectory, fallback bool, log zerolog.Logger) *UserService {
	return &UserService{dir: dir, fallback: fallback, log: log}
}

// List returns the users matching search. When the backend fails and
// fallback is enabled the demo users are filtered instead.
func (s *UserService) List(ctx context.Context, search string) (*ports.UserList, error) {
	users, err := s.dir.List(ctx, search)
	fromMock := false
	if err != nil {
		if !s.fallback {
			return nil, err
		}
		s.log.Warn().Err(err).Msg("user list unavailable, serving mock data")
		metrics.MockFallbacksTotal.WithLabelValues("users").Inc()
		users = MockUsers()
		fromMock = true
	}
	return &ports.UserList{Users: domain.FilterUsers(users, search), FromMock: fromMock}, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.dir.Get(ctx, id)
}

func (s *UserService) Create(ctx context.Context, in domain.UserInput) (*domain.User, error) {
	return s.dir.Create(ctx, in)
}

func (s *UserService) Update(ctx context.Context, id string, in domain.UserInput) (*domain.User, error) {
	return s.dir.Update(ctx, id, in)
}

func (s *UserService) ToggleStatus(ctx context.Context, id string) (*domain.User, error) {
	u, err := s.dir.ToggleStatus(ctx, id)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", id).Msg("user status toggled")
	return u, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.dir.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("user_id", id).Msg("user deleted")
	return nil
}
