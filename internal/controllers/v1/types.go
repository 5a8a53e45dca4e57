package v1

import (
	"github.com/kakeibo-cloud/backend/internal/models"
	"github.com/kakeibo-cloud/backend/internal/types"
)

// QueryCustomer selects all records of a customer.
type QueryCustomer struct {
	CustomerID string `form:"customer_id" binding:"required" example:"cust-1"` // ID of the customer
}

// ItemCreate is the body of an item registration.
type ItemCreate struct {
	CustomerID string        `json:"customer_id" binding:"required" example:"cust-1"`                      // ID of the customer
	CategoryID string        `json:"id" binding:"required" example:"3b1ea324-d438-4419-882a-2fc91d71772f"` // ID of the category
	Price      *types.Amount `json:"price" binding:"required" swaggertype:"number" example:"1000"`         // Price of the item
}

// ItemUpdate is the body of an item update. The category is only
// replaced when an ID is sent.
type ItemUpdate struct {
	CustomerID string        `json:"customer_id" binding:"required" example:"cust-1"`                           // ID of the customer
	ItemID     string        `json:"item_id" binding:"required" example:"65392deb-5e92-4268-b114-297faad6cdce"` // ID of the item
	CategoryID string        `json:"id" example:"3b1ea324-d438-4419-882a-2fc91d71772f"`                         // New category of the item. Unchanged when omitted
	Price      *types.Amount `json:"price" binding:"required" swaggertype:"number" example:"2000"`              // New price of the item
}

// QueryItem selects a single item of a customer.
type QueryItem struct {
	CustomerID string `form:"customer_id" binding:"required" example:"cust-1"`                           // ID of the customer
	ItemID     string `form:"item_id" binding:"required" example:"65392deb-5e92-4268-b114-297faad6cdce"` // ID of the item
}

// CategoryCreate is the body of a category registration.
type CategoryCreate struct {
	CustomerID string `json:"customer_id" binding:"required" example:"cust-1"` // ID of the customer
	Name       string `json:"name" binding:"required" example:"食費"`            // Name of the category
}

// CategoryUpdate renames a category.
type CategoryUpdate struct {
	CustomerID string `json:"customer_id" binding:"required" example:"cust-1"`                               // ID of the customer
	CategoryID string `json:"category_id" binding:"required" example:"3b1ea324-d438-4419-882a-2fc91d71772f"` // ID of the category
	Name       string `json:"name" binding:"required" example:"外食"`                                          // New name of the category
}

// QueryCategory selects a single category of a customer.
type QueryCategory struct {
	CustomerID string `form:"customer_id" binding:"required" example:"cust-1"`                               // ID of the customer
	CategoryID string `form:"category_id" binding:"required" example:"3b1ea324-d438-4419-882a-2fc91d71772f"` // ID of the category
}

// BudgetPut sets the monthly budget of a customer.
type BudgetPut struct {
	CustomerID string        `json:"customer_id" binding:"required" example:"cust-1"`                // ID of the customer
	Budget     *types.Amount `json:"budget" binding:"required" swaggertype:"number" example:"50000"` // Monthly budget
}

// ItemCreated is the result of an item registration.
type ItemCreated struct {
	ItemID string `json:"item_id" example:"65392deb-5e92-4268-b114-297faad6cdce"` // ID of the new item
}

// CategoryCreated is the result of a category registration.
type CategoryCreated struct {
	CategoryID string `json:"category_id" example:"3b1ea324-d438-4419-882a-2fc91d71772f"` // ID of the new category
}

// Updated is the result of every update.
type Updated struct {
	Updated bool `json:"updated" example:"true"`
}

// Deleted is the result of every delete, whether the record existed or not.
type Deleted struct {
	Deleted bool `json:"deleted" example:"true"`
}

// Registered is the result of a budget registration.
type Registered struct {
	Registered bool `json:"registered" example:"true"`
}

// Budget is the monthly budget of a customer.
type Budget struct {
	Budget types.Amount `json:"budget" swaggertype:"number" example:"50000"` // Monthly budget
}

// Response types for the API documentation. Handlers write them
// with httputil.Result.
type (
	ItemCreateResponse struct {
		Result ItemCreated `json:"result"`
	}

	ItemListResponse struct {
		Result []models.Item `json:"result"`
	}

	CategoryCreateResponse struct {
		Result CategoryCreated `json:"result"`
	}

	CategoryListResponse struct {
		Result []models.Category `json:"result"`
	}

	UpdateResponse struct {
		Result Updated `json:"result"`
	}

	DeleteResponse struct {
		Result Deleted `json:"result"`
	}

	BudgetRegisterResponse struct {
		Result Registered `json:"result"`
	}

	BudgetResponse struct {
		Result Budget `json:"result"`
	}
)
