// Package types implements special types for the ledger backend.
package types

import (
	"errors"
	"fmt"

	ddbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned when a value cannot be parsed as a decimal amount.
var ErrInvalidAmount = errors.New("not a valid decimal number")

// Amount is a monetary value.
//
// It is stored with full decimal precision and serialized to JSON as a number,
// never as a quoted string.
type Amount struct {
	decimal.Decimal
}

// NewAmount returns an Amount for the given integer value.
func NewAmount(value int64) Amount {
	return Amount{decimal.NewFromInt(value)}
}

// NewAmountFromString parses an Amount from its decimal representation.
func NewAmountFromString(value string) (Amount, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %q", ErrInvalidAmount, value)
	}

	return Amount{d}, nil
}

// MarshalJSON implements the json.Marshaler interface.
// The output is the exact decimal text, unquoted.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// Both JSON numbers and numeric strings are accepted.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidAmount, data)
	}

	a.Decimal = d
	return nil
}

// MarshalDynamoDBAttributeValue implements the attributevalue.Marshaler interface.
// Amounts are stored as DynamoDB numbers.
func (a Amount) MarshalDynamoDBAttributeValue() (ddbtypes.AttributeValue, error) {
	return &ddbtypes.AttributeValueMemberN{Value: a.String()}, nil
}

// UnmarshalDynamoDBAttributeValue implements the attributevalue.Unmarshaler interface.
func (a *Amount) UnmarshalDynamoDBAttributeValue(av ddbtypes.AttributeValue) error {
	switch v := av.(type) {
	case *ddbtypes.AttributeValueMemberN:
		parsed, err := NewAmountFromString(v.Value)
		if err != nil {
			return err
		}
		*a = parsed
	case *ddbtypes.AttributeValueMemberS:
		parsed, err := NewAmountFromString(v.Value)
		if err != nil {
			return err
		}
		*a = parsed
	case *ddbtypes.AttributeValueMemberNULL:
		*a = Amount{}
	default:
		return fmt.Errorf("%w: unsupported attribute type %T", ErrInvalidAmount, av)
	}

	return nil
}
