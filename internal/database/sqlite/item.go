package sqlite

import (
	"context"
	"fmt"

	"github.com/kakeibo-cloud/backend/internal/models"
)

func (s *Store) CreateItem(ctx context.Context, item models.Item) error {
	return s.db.WithContext(ctx).Create(&item).Error
}

func (s *Store) ListItems(ctx context.Context, customerID string) ([]models.Item, error) {
	items := make([]models.Item, 0)

	err := s.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("item_id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	return items, nil
}

func (s *Store) UpdateItem(ctx context.Context, customerID, itemID string, update models.ItemUpdate) error {
	updates := map[string]any{
		"price":   update.Price,
		"updated": update.Updated,
	}

	if update.CategoryID != "" {
		updates["id"] = update.CategoryID
	}

	tx := s.db.WithContext(ctx).
		Model(&models.Item{}).
		Where("customer_id = ? AND item_id = ?", customerID, itemID).
		Updates(updates)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return fmt.Errorf("%w item matching your query", models.ErrResourceNotFound)
	}

	return nil
}

func (s *Store) DeleteItem(ctx context.Context, customerID, itemID string) error {
	return s.db.WithContext(ctx).
		Where("customer_id = ? AND item_id = ?", customerID, itemID).
		Delete(&models.Item{}).Error
}
