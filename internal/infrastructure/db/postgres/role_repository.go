package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/gdcworld/clinic-backoffice/internal/core/domain"
)

type RoleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

type roleRow struct {
	Name      string `gorm:"primaryKey;size:64"`
	CreatedAt time.Time
}

func (roleRow) TableName() string { return "roles" }

func (r *RoleRepository) List(ctx context.Context) ([]string, error) {
	var rows []roleRow
	if err := r.db.WithContext(ctx).Order("name").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	names := make([]string, len(rows))
	for i, row := range rows {
		names[i] = row.Name
	}
	return names, nil
}

func (r *RoleRepository) Create(ctx context.Context, name string) error {
	err := r.db.WithContext(ctx).Create(&roleRow{Name: name}).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.Validationf("role %q already exists", name)
	}
	if err != nil {
		return fmt.Errorf("create role: %w", err)
	}
	return nil
}

func (r *RoleRepository) Delete(ctx context.Context, name string) error {
	tx := r.db.WithContext(ctx).Where("name = ?", name).Delete(&roleRow{})
	if tx.Error != nil {
		return fmt.Errorf("delete role: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}

// Seed inserts the fallback role set when the table is empty so a fresh
// database starts with a usable configuration.
func (r *RoleRepository) Seed(ctx context.Context) error {
	var n int64
	if err := r.db.WithContext(ctx).Model(&roleRow{}).Count(&n).Error; err != nil {
		return fmt.Errorf("count roles: %w", err)
	}
	if n > 0 {
		return nil
	}
	rows := make([]roleRow, len(domain.FallbackRoles))
	for i, name := range domain.FallbackRoles {
		rows[i] = roleRow{Name: name}
	}
	if err := r.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return fmt.Errorf("seed roles: %w", err)
	}
	return nil
}
