package models

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Category is a spending category defined by a customer.
type Category struct {
	CustomerID string `json:"customer_id" dynamodbav:"customer_id" gorm:"primaryKey" example:"cust-1"`                               // Partition key
	CategoryID string `json:"category_id" dynamodbav:"category_id" gorm:"primaryKey" example:"3b1ea324-d438-4419-882a-2fc91d71772f"` // ID of the category
	Name       string `json:"name" dynamodbav:"name" example:"食費"`                                                                   // Name of the category
}

// NormalizeName returns the canonical form of a category name.
//
// Names are NFKC normalized so that full-width and half-width spellings
// of the same name are stored identically.
func NormalizeName(name string) string {
	return strings.TrimSpace(norm.NFKC.String(name))
}
