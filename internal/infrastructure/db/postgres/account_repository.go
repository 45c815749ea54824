package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gdcworld/clinic-backoffice/internal/core/domain"
)

type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

type accountRow struct {
	ID           string `gorm:"primaryKey;size:36"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"index;not null"`
	Name         string
	Phone        string
	Status       string
	Hospital     string
	WorkStatus   string
	AdminType    string
	Ward         string
	License      string
	Branch       string
	Area         string
	Position     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (accountRow) TableName() string { return "accounts" }

func (r *accountRow) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	// Pre-check keeps the conflict deterministic; the unique index still
	// backstops concurrent creates via ErrDuplicatedKey.
	if _, err := r.FindByEmail(ctx, account.Email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, err
	}

	row := rowFromAccount(account)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert account: %w", err)
	}

	out := row.toDomain()
	return &out, nil
}

func (r *AccountRepository) Update(ctx context.Context, id string, fields map[string]any) (*domain.Account, error) {
	if fields == nil {
		fields = map[string]any{}
	}
	// Updates via a map bypasses gorm's automatic timestamp handling, and an
	// empty patch must still touch updated_at.
	fields["updated_at"] = time.Now().UTC()

	tx := r.db.WithContext(ctx).Model(&accountRow{}).Where("id = ?", id).Updates(fields)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("update account: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return nil, domain.ErrAccountNotFound
	}

	return r.FindByID(ctx, id)
}

// Delete hard-deletes the account. Deleting an id twice yields
// ErrAccountNotFound the second time; deletes are not silently idempotent.
func (r *AccountRepository) Delete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&accountRow{})
	if tx.Error != nil {
		return fmt.Errorf("delete account: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

func (r *AccountRepository) List(ctx context.Context, role string) ([]domain.Account, error) {
	q := r.db.WithContext(ctx).Model(&accountRow{}).Order("created_at DESC")
	if role != "" {
		q = q.Where("role = ?", role)
	}

	var rows []accountRow
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	accounts := make([]domain.Account, len(rows))
	for i, row := range rows {
		accounts[i] = row.toDomain()
	}
	return accounts, nil
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var row accountRow
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account by email: %w", err)
	}
	out := row.toDomain()
	return &out, nil
}

func (r *AccountRepository) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	var row accountRow
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account by id: %w", err)
	}
	out := row.toDomain()
	return &out, nil
}

func (r *AccountRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&accountRow{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count accounts: %w", err)
	}
	return n, nil
}

func rowFromAccount(a *domain.Account) accountRow {
	return accountRow{
		ID:           a.ID,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		Role:         a.Role,
		Name:         a.Name,
		Phone:        a.Phone,
		Status:       a.Status,
		Hospital:     a.Hospital,
		WorkStatus:   a.WorkStatus,
		AdminType:    a.AdminType,
		Ward:         a.Ward,
		License:      a.License,
		Branch:       a.Branch,
		Area:         a.Area,
		Position:     a.Position,
	}
}

func (r accountRow) toDomain() domain.Account {
	return domain.Account{
		ID:           r.ID,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		Role:         r.Role,
		Name:         r.Name,
		Phone:        r.Phone,
		Status:       r.Status,
		Hospital:     r.Hospital,
		WorkStatus:   r.WorkStatus,
		AdminType:    r.AdminType,
		Ward:         r.Ward,
		License:      r.License,
		Branch:       r.Branch,
		Area:         r.Area,
		Position:     r.Position,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}
