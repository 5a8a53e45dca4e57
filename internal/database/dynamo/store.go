package dynamo

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/kakeibo-cloud/backend/internal/models"
	"github.com/rs/zerolog/log"
)

// Tables holds the names of the tables for each record type.
type Tables struct {
	Items      string
	Categories string
	Customers  string
}

// Store implements models.Store on DynamoDB.
type Store struct {
	client API
	tables Tables
}

var _ models.Store = (*Store)(nil)

// NewStore creates a new DynamoDB store.
func NewStore(client API, tables Tables) *Store {
	return &Store{
		client: client,
		tables: tables,
	}
}

// Ping verifies that the item table can be described.
func (s *Store) Ping(ctx context.Context) error {
	_, err := s.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(s.tables.Items),
	})
	if err != nil {
		return s.wrap("describe table", s.tables.Items, err)
	}

	return nil
}

// wrap converts an error returned by the SDK into a store error.
//
// Failed conditions mean that the addressed record does not exist, all other
// errors are database errors.
func (s *Store) wrap(operation, table string, err error) error {
	var conditionalCheckFailed *types.ConditionalCheckFailedException
	if errors.As(err, &conditionalCheckFailed) {
		return fmt.Errorf("%w record matching your query in %s", models.ErrResourceNotFound, table)
	}

	log.Error().Str("table", table).Str("operation", operation).Msgf("%T: %v", err, err.Error())
	return fmt.Errorf("%w: %s on %s: %w", models.ErrDatabase, operation, table, err)
}

// key builds the primary key for a record.
func key(customerID string, sortKey ...string) map[string]types.AttributeValue {
	k := map[string]types.AttributeValue{
		"customer_id": &types.AttributeValueMemberS{Value: customerID},
	}

	if len(sortKey) == 2 {
		k[sortKey[0]] = &types.AttributeValueMemberS{Value: sortKey[1]}
	}

	return k
}

// queryAll returns all records of a customer in a table, following
// pagination until the last page.
func queryAll[T any](ctx context.Context, s *Store, table, customerID string) ([]T, error) {
	expr, err := expression.NewBuilder().
		WithKeyCondition(expression.Key("customer_id").Equal(expression.Value(customerID))).
		Build()
	if err != nil {
		return nil, s.wrap("build key condition", table, err)
	}

	paginator := dynamodb.NewQueryPaginator(s.client, &dynamodb.QueryInput{
		TableName:                 aws.String(table),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})

	records := make([]T, 0)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, s.wrap("query", table, err)
		}

		var batch []T
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, s.wrap("unmarshal", table, err)
		}
		records = append(records, batch...)
	}

	return records, nil
}
