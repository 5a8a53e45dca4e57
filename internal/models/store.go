package models

import (
	"context"
)

// ItemStore persists items.
type ItemStore interface {
	CreateItem(ctx context.Context, item Item) error
	ListItems(ctx context.Context, customerID string) ([]Item, error)

	// UpdateItem returns ErrResourceNotFound if there is no item for the key.
	UpdateItem(ctx context.Context, customerID, itemID string, update ItemUpdate) error

	// DeleteItem succeeds whether or not the item exists.
	DeleteItem(ctx context.Context, customerID, itemID string) error
}

// CategoryStore persists categories.
type CategoryStore interface {
	CreateCategory(ctx context.Context, category Category) error
	ListCategories(ctx context.Context, customerID string) ([]Category, error)

	// UpdateCategoryName returns ErrResourceNotFound if there is no category for the key.
	UpdateCategoryName(ctx context.Context, customerID, categoryID, name string) error

	// DeleteCategory succeeds whether or not the category exists.
	DeleteCategory(ctx context.Context, customerID, categoryID string) error
}

// CustomerStore persists customer budgets.
type CustomerStore interface {
	PutBudget(ctx context.Context, budget CustomerBudget) error

	// GetBudget returns ErrResourceNotFound if no budget was registered.
	GetBudget(ctx context.Context, customerID string) (CustomerBudget, error)
}

// Store combines all stores the API needs.
type Store interface {
	ItemStore
	CategoryStore
	CustomerStore

	// Ping verifies that the store can be reached.
	Ping(ctx context.Context) error
}
