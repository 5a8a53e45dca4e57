package models

import (
	"github.com/kakeibo-cloud/backend/internal/types"
)

// CustomerBudget is the monthly budget of a customer.
//
// There is exactly one budget per customer, it is created
// and modified with the same upsert operation.
type CustomerBudget struct {
	CustomerID string       `json:"customer_id" dynamodbav:"customer_id" gorm:"primaryKey" example:"cust-1"`                   // Partition key
	Budget     types.Amount `json:"budget" dynamodbav:"budget" gorm:"type:DECIMAL(20,8)" swaggertype:"number" example:"50000"` // Budget amount
}
