package handler

import (
	"context"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/waresmart/warehouse-console/internal/core/domain"
	"github.com/waresmart/warehouse-console/internal/core/ports"
)

// recordingRenderer captures the last Render call instead of executing templates.
type recordingRenderer struct {
	name string
	data any
}

func (r *recordingRenderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	r.name = name
	r.data = data
	_, err := io.WriteString(w, name)
	return err
}

func newEcho() (*echo.Echo, *recordingRenderer) {
	e := echo.New()
	r := &recordingRenderer{}
	e.Renderer = r
	e.Validator = NewValidator()
	return e, r
}

type stubSessions struct {
	session  domain.Session
	loginErr error
	username string
	password string
	logouts  int
}

func (s *stubSessions) Session() domain.Session { return s.session }

func (s *stubSessions) Login(_ context.Context, username, password string) (*domain.Identity, error) {
	s.username, s.password = username, password
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	identity := &domain.Identity{Username: username, Role: domain.RoleStaff}
	s.session = domain.Session{Identity: identity}
	return identity, nil
}

func (s *stubSessions) Logout(context.Context) {
	s.logouts++
	s.session = domain.Session{}
}

type stubUserService struct {
	list    *ports.UserList
	err     error
	search  string
	toggled string
}

func (s *stubUserService) List(_ context.Context, search string) (*ports.UserList, error) {
	s.search = search
	return s.list, s.err
}

func (s *stubUserService) Get(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (s *stubUserService) Create(context.Context, domain.UserInput) (*domain.User, error) {
	return nil, s.err
}

func (s *stubUserService) Update(context.Context, string, domain.UserInput) (*domain.User, error) {
	return nil, s.err
}

func (s *stubUserService) ToggleStatus(_ context.Context, id string) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.toggled = id
	return &domain.User{ID: id}, nil
}

func (s *stubUserService) Delete(context.Context, string) error { return s.err }

type stubDashboardService struct {
	period string
	err    error
}

func (s *stubDashboardService) Overview(_ context.Context, period string) (*ports.DashboardView, error) {
	s.period = period
	if s.err != nil {
		return nil, s.err
	}
	return &ports.DashboardView{Stats: domain.DashboardStats{TotalInventory: 1}}, nil
}
