package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/gdcworld/clinic-backoffice/internal/core/domain"
	"github.com/gdcworld/clinic-backoffice/internal/core/ports"
)

// The ledger services (categories, expenses, C-arm procedures, dosu visits)
// share the same thin shape: validate, whitelist, delegate to the repository.

// whitelist drops any column not in allowed. Update payloads reach the store
// only through this filter.
func whitelist(fields map[string]any, allowed ...string) map[string]any {
	out := make(map[string]any, len(fields))
	for _, col := range allowed {
		if v, ok := fields[col]; ok {
			out[col] = v
		}
	}
	return out
}

func validDate(d string) bool {
	// YYYY-MM-DD; precise calendar validation is left to the store index.
	return len(d) == 10 && d[4] == '-' && d[7] == '-'
}

// ── Categories ───────────────────────────────────────────────────────────────

type CategoryService struct {
	repo   ports.CategoryRepository
	logger zerolog.Logger
}

func NewCategoryService(repo ports.CategoryRepository, logger zerolog.Logger) *CategoryService {
	return &CategoryService{repo: repo, logger: logger}
}

func (s *CategoryService) List(ctx context.Context, module string) ([]domain.Category, error) {
	if module == "" {
		return nil, domain.Validationf("module is required")
	}
	return s.repo.List(ctx, module)
}

func (s *CategoryService) Create(ctx context.Context, module, name string) (*domain.Category, error) {
	module = strings.TrimSpace(module)
	name = strings.TrimSpace(name)
	if module == "" || name == "" {
		return nil, domain.Validationf("module and name are required")
	}
	return s.repo.Create(ctx, &domain.Category{Module: module, Name: name})
}

func (s *CategoryService) Rename(ctx context.Context, id, name string) (*domain.Category, error) {
	name = strings.TrimSpace(name)
	if id == "" || name == "" {
		return nil, domain.Validationf("id and name are required")
	}
	return s.repo.Rename(ctx, id, name)
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.Validationf("id is required")
	}
	return s.repo.Delete(ctx, id)
}

// ── Expenses ─────────────────────────────────────────────────────────────────

type ExpenseService struct {
	repo   ports.ExpenseRepository
	logger zerolog.Logger
}

func NewExpenseService(repo ports.ExpenseRepository, logger zerolog.Logger) *ExpenseService {
	return &ExpenseService{repo: repo, logger: logger}
}

func (s *ExpenseService) List(ctx context.Context, rng ports.DateRange) ([]domain.Expense, error) {
	return s.repo.List(ctx, rng)
}

func (s *ExpenseService) Create(ctx context.Context, exp *domain.Expense) (*domain.Expense, error) {
	switch {
	case !validDate(exp.Date):
		return nil, domain.Validationf("date must be YYYY-MM-DD")
	case strings.TrimSpace(exp.Vendor) == "":
		return nil, domain.Validationf("vendor is required")
	case exp.Amount <= 0:
		return nil, domain.Validationf("amount must be positive")
	}
	created, err := s.repo.Create(ctx, exp)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("expense_id", created.ID).Int64("amount", created.Amount).Msg("expense recorded")
	return created, nil
}

func (s *ExpenseService) Update(ctx context.Context, id string, fields map[string]any) (*domain.Expense, error) {
	if id == "" {
		return nil, domain.Validationf("id is required")
	}
	return s.repo.Update(ctx, id, whitelist(fields, "date", "vendor", "category", "amount", "memo"))
}

func (s *ExpenseService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.Validationf("id is required")
	}
	return s.repo.Delete(ctx, id)
}

// ── C-arm procedures ─────────────────────────────────────────────────────────

type ProcedureService struct {
	repo   ports.ProcedureRepository
	logger zerolog.Logger
}

func NewProcedureService(repo ports.ProcedureRepository, logger zerolog.Logger) *ProcedureService {
	return &ProcedureService{repo: repo, logger: logger}
}

func (s *ProcedureService) List(ctx context.Context, rng ports.DateRange) ([]domain.Procedure, error) {
	return s.repo.List(ctx, rng)
}

func (s *ProcedureService) Create(ctx context.Context, p *domain.Procedure) (*domain.Procedure, error) {
	switch {
	case !validDate(p.Date):
		return nil, domain.Validationf("date must be YYYY-MM-DD")
	case strings.TrimSpace(p.Operator) == "":
		return nil, domain.Validationf("operator is required")
	case p.Count <= 0:
		return nil, domain.Validationf("count must be positive")
	}
	return s.repo.Create(ctx, p)
}

func (s *ProcedureService) Update(ctx context.Context, id string, fields map[string]any) (*domain.Procedure, error) {
	if id == "" {
		return nil, domain.Validationf("id is required")
	}
	return s.repo.Update(ctx, id, whitelist(fields, "date", "room", "operator", "count", "memo"))
}

func (s *ProcedureService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.Validationf("id is required")
	}
	return s.repo.Delete(ctx, id)
}

// ── Dosu visits ──────────────────────────────────────────────────────────────

type VisitService struct {
	repo   ports.VisitRepository
	logger zerolog.Logger
}

func NewVisitService(repo ports.VisitRepository, logger zerolog.Logger) *VisitService {
	return &VisitService{repo: repo, logger: logger}
}

func (s *VisitService) List(ctx context.Context, rng ports.DateRange) ([]domain.Visit, error) {
	return s.repo.List(ctx, rng)
}

func (s *VisitService) Create(ctx context.Context, v *domain.Visit) (*domain.Visit, error) {
	switch {
	case !validDate(v.Date):
		return nil, domain.Validationf("date must be YYYY-MM-DD")
	case strings.TrimSpace(v.Therapist) == "":
		return nil, domain.Validationf("therapist is required")
	case v.Patients <= 0:
		return nil, domain.Validationf("patients must be positive")
	case v.Revenue < 0:
		return nil, domain.Validationf("revenue cannot be negative")
	}
	return s.repo.Create(ctx, v)
}

func (s *VisitService) Update(ctx context.Context, id string, fields map[string]any) (*domain.Visit, error) {
	if id == "" {
		return nil, domain.Validationf("id is required")
	}
	return s.repo.Update(ctx, id, whitelist(fields, "date", "therapist", "patients", "revenue", "memo"))
}

func (s *VisitService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.Validationf("id is required")
	}
	return s.repo.Delete(ctx, id)
}

func (s *VisitService) Summary(ctx context.Context, rng ports.DateRange) ([]domain.VisitSummaryRow, error) {
	return s.repo.Summary(ctx, rng)
}
