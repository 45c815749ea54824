package ports

import (
	"context"

	"github.com/gdcworld/clinic-backoffice/internal/core/domain"
)

// AccountRepository is the only component allowed to touch the accounts table.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	// Update applies exactly the given column/value pairs. The caller is
	// responsible for whitelisting; unknown ids yield ErrAccountNotFound.
	Update(ctx context.Context, id string, fields map[string]any) (*domain.Account, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, role string) ([]domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	Count(ctx context.Context) (int64, error)
}

// RoleRepository persists the configurable role set.
type RoleRepository interface {
	List(ctx context.Context) ([]string, error)
	Create(ctx context.Context, name string) error
	Delete(ctx context.Context, name string) error
}

// IdempotencyStore remembers the outcome of create operations keyed by the
// client-supplied Idempotency-Key. Lookup returns (nil, nil) on a miss.
type IdempotencyStore interface {
	Lookup(ctx context.Context, key string) (*domain.Account, error)
	Remember(ctx context.Context, key string, account *domain.Account) error
}
