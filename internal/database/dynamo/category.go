package dynamo

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/kakeibo-cloud/backend/internal/models"
)

func (s *Store) CreateCategory(ctx context.Context, category models.Category) error {
	av, err := attributevalue.MarshalMap(category)
	if err != nil {
		return s.wrap("marshal category", s.tables.Categories, err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tables.Categories),
		Item:      av,
	})
	if err != nil {
		return s.wrap("put item", s.tables.Categories, err)
	}

	return nil
}

func (s *Store) ListCategories(ctx context.Context, customerID string) ([]models.Category, error) {
	return queryAll[models.Category](ctx, s, s.tables.Categories, customerID)
}

func (s *Store) UpdateCategoryName(ctx context.Context, customerID, categoryID, name string) error {
	expr, err := expression.NewBuilder().
		WithUpdate(expression.Set(expression.Name("name"), expression.Value(name))).
		WithCondition(expression.AttributeExists(expression.Name("category_id"))).
		Build()
	if err != nil {
		return s.wrap("build update expression", s.tables.Categories, err)
	}

	_, err = s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(s.tables.Categories),
		Key:                       key(customerID, "category_id", categoryID),
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		return s.wrap("update item", s.tables.Categories, err)
	}

	return nil
}

func (s *Store) DeleteCategory(ctx context.Context, customerID, categoryID string) error {
	_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.tables.Categories),
		Key:       key(customerID, "category_id", categoryID),
	})
	if err != nil {
		return s.wrap("delete item", s.tables.Categories, err)
	}

	return nil
}
