package ports

import (
	"context"

	"github.com/gdcworld/clinic-backoffice/internal/core/domain"
)

// CreateAccountInput carries all data needed to create a staff account.
type CreateAccountInput struct {
	Email    string
	Password string
	Role     string
	Name     string
	Phone    string
	Status   string

	Hospital   string
	WorkStatus string
	AdminType  string
	Ward       string
	License    string
	Branch     string
	Area       string
	Position   string

	// IdempotencyKey, when non-empty, makes a retried create return the
	// previously created account instead of a duplicate-email conflict.
	IdempotencyKey string
}

// AccountPatch is a partial update; nil fields are left untouched.
// A non-empty Password is re-hashed, an empty one is ignored.
type AccountPatch struct {
	Email    *string
	Password *string
	Role     *string
	Name     *string
	Phone    *string
	Status   *string

	Hospital   *string
	WorkStatus *string
	AdminType  *string
	Ward       *string
	License    *string
	Branch     *string
	Area       *string
	Position   *string
}

// AccountService defines the role-scoped account use cases.
type AccountService interface {
	Create(ctx context.Context, input CreateAccountInput) (*domain.Account, error)
	Update(ctx context.Context, id string, patch AccountPatch) (*domain.Account, error)
	Delete(ctx context.Context, id string) error
	// List returns accounts ordered by creation time descending, optionally
	// filtered by role. An empty role returns every account.
	List(ctx context.Context, role string) ([]domain.Account, error)
}
