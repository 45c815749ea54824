package ports

import (
	"context"

	"github.com/gdcworld/clinic-backoffice/internal/core/domain"
)

// DateRange filters ledger listings; zero fields mean unbounded.
type DateRange struct {
	From string // YYYY-MM-DD inclusive
	To   string // YYYY-MM-DD inclusive
}

// CategoryService manages module-scoped tags.
type CategoryService interface {
	List(ctx context.Context, module string) ([]domain.Category, error)
	Create(ctx context.Context, module, name string) (*domain.Category, error)
	Rename(ctx context.Context, id, name string) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}

// CategoryRepository persists category tags.
type CategoryRepository interface {
	List(ctx context.Context, module string) ([]domain.Category, error)
	Create(ctx context.Context, cat *domain.Category) (*domain.Category, error)
	Rename(ctx context.Context, id, name string) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}

// ExpenseService manages the hospital-card expense ledger.
type ExpenseService interface {
	List(ctx context.Context, rng DateRange) ([]domain.Expense, error)
	Create(ctx context.Context, exp *domain.Expense) (*domain.Expense, error)
	Update(ctx context.Context, id string, fields map[string]any) (*domain.Expense, error)
	Delete(ctx context.Context, id string) error
}

// ExpenseRepository persists expense ledger rows.
type ExpenseRepository interface {
	List(ctx context.Context, rng DateRange) ([]domain.Expense, error)
	Create(ctx context.Context, exp *domain.Expense) (*domain.Expense, error)
	Update(ctx context.Context, id string, fields map[string]any) (*domain.Expense, error)
	Delete(ctx context.Context, id string) error
}

// ProcedureService manages the C-arm procedure-counting log.
type ProcedureService interface {
	List(ctx context.Context, rng DateRange) ([]domain.Procedure, error)
	Create(ctx context.Context, p *domain.Procedure) (*domain.Procedure, error)
	Update(ctx context.Context, id string, fields map[string]any) (*domain.Procedure, error)
	Delete(ctx context.Context, id string) error
}

// ProcedureRepository persists C-arm log rows.
type ProcedureRepository interface {
	List(ctx context.Context, rng DateRange) ([]domain.Procedure, error)
	Create(ctx context.Context, p *domain.Procedure) (*domain.Procedure, error)
	Update(ctx context.Context, id string, fields map[string]any) (*domain.Procedure, error)
	Delete(ctx context.Context, id string) error
}

// VisitService manages dosu visit/revenue rows and their aggregation.
type VisitService interface {
	List(ctx context.Context, rng DateRange) ([]domain.Visit, error)
	Create(ctx context.Context, v *domain.Visit) (*domain.Visit, error)
	Update(ctx context.Context, id string, fields map[string]any) (*domain.Visit, error)
	Delete(ctx context.Context, id string) error
	Summary(ctx context.Context, rng DateRange) ([]domain.VisitSummaryRow, error)
}

// VisitRepository persists dosu rows.
type VisitRepository interface {
	List(ctx context.Context, rng DateRange) ([]domain.Visit, error)
	Create(ctx context.Context, v *domain.Visit) (*domain.Visit, error)
	Update(ctx context.Context, id string, fields map[string]any) (*domain.Visit, error)
	Delete(ctx context.Context, id string) error
	Summary(ctx context.Context, rng DateRange) ([]domain.VisitSummaryRow, error)
}
