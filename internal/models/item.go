package models

import (
	"github.com/kakeibo-cloud/backend/internal/types"
)

// Item is a single expense registered by a customer.
type Item struct {
	CustomerID string       `json:"customer_id" dynamodbav:"customer_id" gorm:"primaryKey" example:"cust-1"`                       // Partition key
	ItemID     string       `json:"item_id" dynamodbav:"item_id" gorm:"primaryKey" example:"65392deb-5e92-4268-b114-297faad6cdce"` // ID of the item
	CategoryID string       `json:"id" dynamodbav:"id" gorm:"column:id" example:"3b1ea324-d438-4419-882a-2fc91d71772f"`            // ID of the category the item belongs to
	Price      types.Amount `json:"price" dynamodbav:"price" gorm:"type:DECIMAL(20,8)" swaggertype:"number" example:"1000"`        // Price of the item
	Timestamps `gorm:"embedded"`
}

// ItemUpdate contains the mutable fields of an Item.
type ItemUpdate struct {
	Price      types.Amount
	CategoryID string // Left unchanged when empty
	Updated    int64
}
