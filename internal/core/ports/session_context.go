package ports

import (
	"context"

	"github.com/waresmart/warehouse-console/internal/core/domain"
)

// SessionContext is the contract the router, handlers and CLI receive.
type SessionContext interface {
	Session() domain.Session
	Login(ctx context.Context, username, password string) (*domain.Identity, error)
	Logout(ctx context.Context)
}
