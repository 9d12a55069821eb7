package ports

import (
	"context"

	"github.com/waresmart/warehouse-console/internal/core/domain"
)

// UserDirectory is the remote user-management API.
type UserDirectory interface {
	List(ctx context.Context, search string) ([]domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, in domain.UserInput) (*domain.User, error)
	Update(ctx context.Context, id string, in domain.UserInput) (*domain.User, error)
	ToggleStatus(ctx context.Context, id string) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}

// UserList is the result of listing users, flagged when served from mock data.
type UserList struct {
	Users    []domain.User
	FromMock bool
}

// UserService wraps UserDirectory with the mock-data fallback for reads.
type UserService interface {
	List(ctx context.Context, search string) (*UserList, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, in domain.UserInput) (*domain.User, error)
	Update(ctx context.Context, id string, in domain.UserInput) (*domain.User, error)
	ToggleStatus(ctx context.Context, id string) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
