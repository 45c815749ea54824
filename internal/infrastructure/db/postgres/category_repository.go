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

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

type categoryRow struct {
	ID        string `gorm:"primaryKey;size:36"`
	Module    string `gorm:"uniqueIndex:idx_categories_module_name;not null"`
	Name      string `gorm:"uniqueIndex:idx_categories_module_name;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (categoryRow) TableName() string { return "categories" }

func (r *categoryRow) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

func (r *CategoryRepository) List(ctx context.Context, module string) ([]domain.Category, error) {
	var rows []categoryRow
	if err := r.db.WithContext(ctx).Where("module = ?", module).Order("name").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	cats := make([]domain.Category, len(rows))
	for i, row := range rows {
		cats[i] = row.toDomain()
	}
	return cats, nil
}

func (r *CategoryRepository) Create(ctx context.Context, cat *domain.Category) (*domain.Category, error) {
	row := categoryRow{Module: cat.Module, Name: cat.Name}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrCategoryExists
		}
		return nil, fmt.Errorf("insert category: %w", err)
	}
	out := row.toDomain()
	return &out, nil
}

func (r *CategoryRepository) Rename(ctx context.Context, id, name string) (*domain.Category, error) {
	tx := r.db.WithContext(ctx).Model(&categoryRow{}).Where("id = ?", id).
		Updates(map[string]any{"name": name, "updated_at": time.Now().UTC()})
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrCategoryExists
		}
		return nil, fmt.Errorf("rename category: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return nil, domain.ErrRecordNotFound
	}

	var row categoryRow
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, fmt.Errorf("reload category: %w", err)
	}
	out := row.toDomain()
	return &out, nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&categoryRow{})
	if tx.Error != nil {
		return fmt.Errorf("delete category: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}

func (r categoryRow) toDomain() domain.Category {
	return domain.Category{
		ID:        r.ID,
		Module:    r.Module,
		Name:      r.Name,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
