package dynamo

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/kakeibo-cloud/backend/internal/models"
)

func (s *Store) CreateItem(ctx context.Context, item models.Item) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return s.wrap("marshal item", s.tables.Items, err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tables.Items),
		Item:      av,
	})
	if err != nil {
		return s.wrap("put item", s.tables.Items, err)
	}

	return nil
}

func (s *Store) ListItems(ctx context.Context, customerID string) ([]models.Item, error) {
	return queryAll[models.Item](ctx, s, s.tables.Items, customerID)
}

func (s *Store) UpdateItem(ctx context.Context, customerID, itemID string, update models.ItemUpdate) error {
	set := expression.
		Set(expression.Name("price"), expression.Value(update.Price)).
		Set(expression.Name("updated"), expression.Value(update.Updated))

	if update.CategoryID != "" {
		set = set.Set(expression.Name("id"), expression.Value(update.CategoryID))
	}

	expr, err := expression.NewBuilder().
		WithUpdate(set).
		WithCondition(expression.AttributeExists(expression.Name("item_id"))).
		Build()
	if err != nil {
		return s.wrap("build update expression", s.tables.Items, err)
	}

	_, err = s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(s.tables.Items),
		Key:                       key(customerID, "item_id", itemID),
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		return s.wrap("update item", s.tables.Items, err)
	}

	return nil
}

func (s *Store) DeleteItem(ctx context.Context, customerID, itemID string) error {
	_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.tables.Items),
		Key:       key(customerID, "item_id", itemID),
	})
	if err != nil {
		return s.wrap("delete item", s.tables.Items, err)
	}

	return nil
}
