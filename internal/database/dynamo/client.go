// Package dynamo implements the ledger store on Amazon DynamoDB.
//
// Every record type lives in its own table, partitioned by customer_id.
// Items and categories use their generated id as sort key.
package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/rs/zerolog/log"
)

// API is the subset of the DynamoDB client used by the store.
//
// *dynamodb.Client implements it, tests substitute a fake.
type API interface {
	dynamodb.QueryAPIClient
	dynamodb.DescribeTableAPIClient

	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

var _ API = (*dynamodb.Client)(nil)

// NewClient loads the default AWS configuration and returns a DynamoDB client.
//
// region and endpoint are optional. An endpoint is only needed for
// DynamoDB Local or other compatible services.
func NewClient(ctx context.Context, region, endpoint string) (*dynamodb.Client, error) {
	var opts []func(*config.LoadOptions) error
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}

	if endpoint != "" {
		opts = append(opts, config.WithBaseEndpoint(endpoint))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	log.Debug().Str("region", cfg.Region).Str("endpoint", endpoint).Msg("DynamoDB client initialized")

	return dynamodb.NewFromConfig(cfg), nil
}
