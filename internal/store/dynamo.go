// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// DynamoDB caps BatchWriteItem at 25 write requests per call.
const batchWriteLimit = 25

// dynamoGateway is the DynamoDB-backed implementation of [Gateway].
type dynamoGateway struct {
	db     *dynamodb.Client
	logger *logger.Logger
}

// NewDynamoGateway builds a [Gateway] talking to DynamoDB in the configured
// region. When both static credentials are present in cfg they are used;
// otherwise the SDK's default credential chain applies. A non-empty
// cfg.BaseEndpoint overrides the service endpoint, which is how local
// DynamoDB instances are reached in development.
func NewDynamoGateway(ctx context.Context, cfg config.Dynamo, logger *logger.Logger) (Gateway, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	db := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.BaseEndpoint)
		}
	})

	logger.Debug().Str("region", cfg.Region).Str("endpoint", cfg.BaseEndpoint).Msg("dynamo gateway created")
	return &dynamoGateway{db: db, logger: logger}, nil
}

func (g *dynamoGateway) Get(ctx context.Context, table string, key map[string]types.AttributeValue) (map[string]types.AttributeValue, error) {
	out, err := g.db.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key:       key,
	})
	if err != nil {
		return nil, err
	}

	return out.Item, nil
}

func (g *dynamoGateway) Query(ctx context.Context, table string, input QueryInput) ([]map[string]types.AttributeValue, error) {
	out, err := g.db.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(table),
		IndexName:                 aws.String(input.IndexName),
		KeyConditionExpression:    aws.String(input.KeyConditionExpression),
		ExpressionAttributeValues: input.ExpressionAttributeValues,
	})
	if err != nil {
		return nil, err
	}

	return out.Items, nil
}

func (g *dynamoGateway) Save(ctx context.Context, table string, item map[string]types.AttributeValue) error {
	_, err := g.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(table),
		Item:      item,
	})

	return err
}

func (g *dynamoGateway) Update(ctx context.Context, table string, input UpdateInput) error {
	in := &dynamodb.UpdateItemInput{
		TableName:                 aws.String(table),
		Key:                       input.Key,
		UpdateExpression:          aws.String(input.UpdateExpression),
		ExpressionAttributeNames:  input.ExpressionAttributeNames,
		ExpressionAttributeValues: input.ExpressionAttributeValues,
	}
	if input.ConditionExpression != "" {
		in.ConditionExpression = aws.String(input.ConditionExpression)
	}

	_, err := g.db.UpdateItem(ctx, in)
	return err
}

func (g *dynamoGateway) Delete(ctx context.Context, table string, key map[string]types.AttributeValue) error {
	_, err := g.db.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(table),
		Key:       key,
	})

	return err
}

func (g *dynamoGateway) BatchDelete(ctx context.Context, table string, keys []map[string]types.AttributeValue) error {
	for _, chunk := range chunkKeys(keys, batchWriteLimit) {
		requests := make([]types.WriteRequest, 0, len(chunk))
		for _, key := range chunk {
			requests = append(requests, types.WriteRequest{
				DeleteRequest: &types.DeleteRequest{Key: key},
			})
		}

		_, err := g.db.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{table: requests},
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// chunkKeys splits keys into slices of at most size elements, preserving
// order.
func chunkKeys(keys []map[string]types.AttributeValue, size int) [][]map[string]types.AttributeValue {
	if len(keys) == 0 {
		return nil
	}

	chunks := make([][]map[string]types.AttributeValue, 0, (len(keys)+size-1)/size)
	for size < len(keys) {
		chunks = append(chunks, keys[:size])
		keys = keys[size:]
	}

	return append(chunks, keys)
}
