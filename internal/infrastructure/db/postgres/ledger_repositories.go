package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gdcworld/clinic-backoffice/internal/core/domain"
	"github.com/gdcworld/clinic-backoffice/internal/core/ports"
)

// The ledger tables (expenses, C-arm procedures, dosu visits) share a shape:
// a dated row with a creator reference, listed newest-date-first and filtered
// by an inclusive date range.

func rangeScope(rng ports.DateRange) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		if rng.From != "" {
			q = q.Where("date >= ?", rng.From)
		}
		if rng.To != "" {
			q = q.Where("date <= ?", rng.To)
		}
		return q.Order("date DESC, created_at DESC")
	}
}

func touchAndUpdate(ctx context.Context, db *gorm.DB, model any, id string, fields map[string]any) error {
	if fields == nil {
		fields = map[string]any{}
	}
	fields["updated_at"] = time.Now().UTC()

	tx := db.WithContext(ctx).Model(model).Where("id = ?", id).Updates(fields)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}

func deleteByID(ctx context.Context, db *gorm.DB, model any, id string) error {
	tx := db.WithContext(ctx).Where("id = ?", id).Delete(model)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}

// ── Expenses ─────────────────────────────────────────────────────────────────

type ExpenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

type expenseRow struct {
	ID        string `gorm:"primaryKey;size:36"`
	Date      string `gorm:"index;size:10;not null"`
	Vendor    string `gorm:"not null"`
	Category  string
	Amount    int64 `gorm:"not null"`
	Memo      string
	CreatedBy string `gorm:"index;size:36"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (expenseRow) TableName() string { return "expenses" }

func (r *expenseRow) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

func (r *ExpenseRepository) List(ctx context.Context, rng ports.DateRange) ([]domain.Expense, error) {
	var rows []expenseRow
	if err := r.db.WithContext(ctx).Scopes(rangeScope(rng)).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	out := make([]domain.Expense, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

func (r *ExpenseRepository) Create(ctx context.Context, exp *domain.Expense) (*domain.Expense, error) {
	row := expenseRow{
		Date:      exp.Date,
		Vendor:    exp.Vendor,
		Category:  exp.Category,
		Amount:    exp.Amount,
		Memo:      exp.Memo,
		CreatedBy: exp.CreatedBy,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("insert expense: %w", err)
	}
	out := row.toDomain()
	return &out, nil
}

func (r *ExpenseRepository) Update(ctx context.Context, id string, fields map[string]any) (*domain.Expense, error) {
	if err := touchAndUpdate(ctx, r.db, &expenseRow{}, id, fields); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("update expense: %w", err)
	}
	var row expenseRow
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, fmt.Errorf("reload expense: %w", err)
	}
	out := row.toDomain()
	return &out, nil
}

func (r *ExpenseRepository) Delete(ctx context.Context, id string) error {
	if err := deleteByID(ctx, r.db, &expenseRow{}, id); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return err
		}
		return fmt.Errorf("delete expense: %w", err)
	}
	return nil
}

func (r expenseRow) toDomain() domain.Expense {
	return domain.Expense{
		ID:        r.ID,
		Date:      r.Date,
		Vendor:    r.Vendor,
		Category:  r.Category,
		Amount:    r.Amount,
		Memo:      r.Memo,
		CreatedBy: r.CreatedBy,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// ── C-arm procedures ─────────────────────────────────────────────────────────

type ProcedureRepository struct {
	db *gorm.DB
}

func NewProcedureRepository(db *gorm.DB) *ProcedureRepository {
	return &ProcedureRepository{db: db}
}

type procedureRow struct {
	ID        string `gorm:"primaryKey;size:36"`
	Date      string `gorm:"index;size:10;not null"`
	Room      string
	Operator  string `gorm:"not null"`
	Count     int    `gorm:"not null"`
	Memo      string
	CreatedBy string `gorm:"index;size:36"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (procedureRow) TableName() string { return "procedures" }

func (r *procedureRow) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

func (r *ProcedureRepository) List(ctx context.Context, rng ports.DateRange) ([]domain.Procedure, error) {
	var rows []procedureRow
	if err := r.db.WithContext(ctx).Scopes(rangeScope(rng)).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list procedures: %w", err)
	}
	out := make([]domain.Procedure, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

func (r *ProcedureRepository) Create(ctx context.Context, p *domain.Procedure) (*domain.Procedure, error) {
	row := procedureRow{
		Date:      p.Date,
		Room:      p.Room,
		Operator:  p.Operator,
		Count:     p.Count,
		Memo:      p.Memo,
		CreatedBy: p.CreatedBy,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("insert procedure: %w", err)
	}
	out := row.toDomain()
	return &out, nil
}

func (r *ProcedureRepository) Update(ctx context.Context, id string, fields map[string]any) (*domain.Procedure, error) {
	if err := touchAndUpdate(ctx, r.db, &procedureRow{}, id, fields); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("update procedure: %w", err)
	}
	var row procedureRow
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, fmt.Errorf("reload procedure: %w", err)
	}
	out := row.toDomain()
	return &out, nil
}

func (r *ProcedureRepository) Delete(ctx context.Context, id string) error {
	if err := deleteByID(ctx, r.db, &procedureRow{}, id); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return err
		}
		return fmt.Errorf("delete procedure: %w", err)
	}
	return nil
}

func (r procedureRow) toDomain() domain.Procedure {
	return domain.Procedure{
		ID:        r.ID,
		Date:      r.Date,
		Room:      r.Room,
		Operator:  r.Operator,
		Count:     r.Count,
		Memo:      r.Memo,
		CreatedBy: r.CreatedBy,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// ── Dosu visits ──────────────────────────────────────────────────────────────

type VisitRepository struct {
	db *gorm.DB
}

func NewVisitRepository(db *gorm.DB) *VisitRepository {
	return &VisitRepository{db: db}
}

type visitRow struct {
	ID        string `gorm:"primaryKey;size:36"`
	Date      string `gorm:"index;size:10;not null"`
	Therapist string `gorm:"index;not null"`
	Patients  int    `gorm:"not null"`
	Revenue   int64  `gorm:"not null"`
	Memo      string
	CreatedBy string `gorm:"index;size:36"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (visitRow) TableName() string { return "visits" }

func (r *visitRow) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

func (r *VisitRepository) List(ctx context.Context, rng ports.DateRange) ([]domain.Visit, error) {
	var rows []visitRow
	if err := r.db.WithContext(ctx).Scopes(rangeScope(rng)).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list visits: %w", err)
	}
	out := make([]domain.Visit, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

func (r *VisitRepository) Create(ctx context.Context, v *domain.Visit) (*domain.Visit, error) {
	row := visitRow{
		Date:      v.Date,
		Therapist: v.Therapist,
		Patients:  v.Patients,
		Revenue:   v.Revenue,
		Memo:      v.Memo,
		CreatedBy: v.CreatedBy,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("insert visit: %w", err)
	}
	out := row.toDomain()
	return &out, nil
}

func (r *VisitRepository) Update(ctx context.Context, id string, fields map[string]any) (*domain.Visit, error) {
	if err := touchAndUpdate(ctx, r.db, &visitRow{}, id, fields); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("update visit: %w", err)
	}
	var row visitRow
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, fmt.Errorf("reload visit: %w", err)
	}
	out := row.toDomain()
	return &out, nil
}

func (r *VisitRepository) Delete(ctx context.Context, id string) error {
	if err := deleteByID(ctx, r.db, &visitRow{}, id); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return err
		}
		return fmt.Errorf("delete visit: %w", err)
	}
	return nil
}

// Summary aggregates patient counts and revenue per therapist over the range.
func (r *VisitRepository) Summary(ctx context.Context, rng ports.DateRange) ([]domain.VisitSummaryRow, error) {
	q := r.db.WithContext(ctx).Model(&visitRow{}).
		Select("therapist, SUM(patients) AS patients, SUM(revenue) AS revenue").
		Group("therapist").
		Order("therapist")
	if rng.From != "" {
		q = q.Where("date >= ?", rng.From)
	}
	if rng.To != "" {
		q = q.Where("date <= ?", rng.To)
	}

	var rows []domain.VisitSummaryRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("visit summary: %w", err)
	}
	return rows, nil
}

func (r visitRow) toDomain() domain.Visit {
	return domain.Visit{
		ID:        r.ID,
		Date:      r.Date,
		Therapist: r.Therapist,
		Patients:  r.Patients,
		Revenue:   r.Revenue,
		Memo:      r.Memo,
		CreatedBy: r.CreatedBy,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
