package ports

import (
	"context"

	"github.com/gdcworld/clinic-backoffice/internal/core/domain"
)

// AuthService authenticates staff and issues bearer tokens.
type AuthService interface {
	// Login verifies credentials and returns a signed token plus the account.
	Login(ctx context.Context, email, password string) (string, *domain.Account, error)
}
