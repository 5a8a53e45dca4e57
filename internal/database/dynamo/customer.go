package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/kakeibo-cloud/backend/internal/models"
)

// PutBudget sets the budget of a customer, creating the record when needed.
func (s *Store) PutBudget(ctx context.Context, budget models.CustomerBudget) error {
	expr, err := expression.NewBuilder().
		WithUpdate(expression.Set(expression.Name("budget"), expression.Value(budget.Budget))).
		Build()
	if err != nil {
		return s.wrap("build update expression", s.tables.Customers, err)
	}

	_, err = s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(s.tables.Customers),
		Key:                       key(budget.CustomerID),
		UpdateExpression:          expr.Update(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		return s.wrap("update item", s.tables.Customers, err)
	}

	return nil
}

func (s *Store) GetBudget(ctx context.Context, customerID string) (models.CustomerBudget, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tables.Customers),
		Key:       key(customerID),
	})
	if err != nil {
		return models.CustomerBudget{}, s.wrap("get item", s.tables.Customers, err)
	}

	if len(out.Item) == 0 {
		return models.CustomerBudget{}, fmt.Errorf("%w budget registered for customer: %s", models.ErrResourceNotFound, customerID)
	}

	var budget models.CustomerBudget
	if err := attributevalue.UnmarshalMap(out.Item, &budget); err != nil {
		return models.CustomerBudget{}, s.wrap("unmarshal", s.tables.Customers, err)
	}

	return budget, nil
}
