package sqlite

import (
	"context"
	"fmt"

	"github.com/kakeibo-cloud/backend/internal/models"
)

func (s *Store) CreateCategory(ctx context.Context, category models.Category) error {
	return s.db.WithContext(ctx).Create(&category).Error
}

func (s *Store) ListCategories(ctx context.Context, customerID string) ([]models.Category, error) {
	categories := make([]models.Category, 0)

	err := s.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("category_id ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}

	return categories, nil
}

func (s *Store) UpdateCategoryName(ctx context.Context, customerID, categoryID, name string) error {
	tx := s.db.WithContext(ctx).
		Model(&models.Category{}).
		Where("customer_id = ? AND category_id = ?", customerID, categoryID).
		Update("name", name)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return fmt.Errorf("%w category matching your query", models.ErrResourceNotFound)
	}

	return nil
}

func (s *Store) DeleteCategory(ctx context.Context, customerID, categoryID string) error {
	return s.db.WithContext(ctx).
		Where("customer_id = ? AND category_id = ?", customerID, categoryID).
		Delete(&models.Category{}).Error
}
