package sqlite

import (
	"context"

	"github.com/kakeibo-cloud/backend/internal/models"
	"gorm.io/gorm/clause"
)

// PutBudget creates the budget for the customer or replaces the existing one.
func (s *Store) PutBudget(ctx context.Context, budget models.CustomerBudget) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "customer_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"budget"}),
		}).
		Create(&budget).Error
}

func (s *Store) GetBudget(ctx context.Context, customerID string) (models.CustomerBudget, error) {
	var budget models.CustomerBudget

	err := s.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		First(&budget).Error
	if err != nil {
		return models.CustomerBudget{}, err
	}

	return budget, nil
}
