package ports

import (
	"context"

	"github.com/waresmart/warehouse-console/internal/core/domain"
)

// AuthGateway exchanges credentials for a token and canonical identity.
type AuthGateway interface {
	Login(ctx context.Context, username, password string) (*domain.Credentials, error)
}
