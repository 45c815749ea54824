package ports

import "context"

// RoleService is the single source of truth for valid role values.
// Implementations cache the store-backed list with an explicit TTL and fall
// back to the hardcoded default set when the store is unreachable or empty.
type RoleService interface {
	List(ctx context.Context) ([]string, error)
	Contains(ctx context.Context, role string) (bool, error)
	Create(ctx context.Context, name string) error
	Delete(ctx context.Context, name string) error
}
