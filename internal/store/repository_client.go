// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-pass-vault/internal/apperr"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// clientRepository is the DynamoDB-backed implementation of
// [ClientRepository]. It handles client account records in the clients
// table, with login lookups going through a secondary index.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of storage interactions.
type clientRepository struct {
	gateway    Gateway
	table      string
	loginIndex string
	logger     *logger.Logger
}

// NewClientRepository constructs a [ClientRepository] backed by the provided
// storage gateway.
func NewClientRepository(gateway Gateway, cfg config.Dynamo, logger *logger.Logger) ClientRepository {
	logger.Debug().Str("table", cfg.ClientsTable).Msg("creating client repository")
	return &clientRepository{
		gateway:    gateway,
		table:      cfg.ClientsTable,
		loginIndex: cfg.LoginIndex,
		logger:     logger,
	}
}

func clientKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"clientId": &types.AttributeValueMemberS{Value: id},
	}
}

// GetClientByID fetches a single client record by its identifier.
//
// Error handling:
//   - absent item → [apperr.CodeClientNotFound] (404).
//   - any gateway failure → [apperr.CodeDynamoDBDown] (503); transient and
//     permanent store failures are not distinguished.
func (r *clientRepository) GetClientByID(ctx context.Context, id string) (models.Client, error) {
	log := logger.FromContext(ctx)

	item, err := r.gateway.Get(ctx, r.table, clientKey(id))
	if err != nil {
		log.Err(err).Str("table", r.table).Str("clientId", id).Msg("error getting client by id")
		return models.Client{}, apperr.DynamoDBDown(err)
	}

	if item == nil {
		log.Warn().Str("table", r.table).Str("clientId", id).Msg("client not found")
		return models.Client{}, apperr.ClientNotFound("No client exists with id '%s'", id)
	}

	var client models.Client
	if err := attributevalue.UnmarshalMap(item, &client); err != nil {
		log.Err(err).Str("table", r.table).Str("clientId", id).Msg("error unmarshalling client item")
		return models.Client{}, apperr.DynamoDBDown(err)
	}

	log.Info().Str("table", r.table).Str("clientId", id).Msg("client fetched")
	return client, nil
}

// GetClientByLogin resolves a client through the login secondary index.
//
// The index is assumed to hold at most one record per login; uniqueness is
// the client service's responsibility, not this method's. Should the index
// ever return more than one item, the first one wins and a warning is
// logged.
//
// Error handling:
//   - zero matches (including an absent result set) → [apperr.CodeClientNotFound].
//   - any gateway failure → [apperr.CodeDynamoDBDown].
func (r *clientRepository) GetClientByLogin(ctx context.Context, login string) (models.Client, error) {
	log := logger.FromContext(ctx)

	items, err := r.gateway.Query(ctx, r.table, QueryInput{
		IndexName:              r.loginIndex,
		KeyConditionExpression: "login = :login",
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":login": &types.AttributeValueMemberS{Value: login},
		},
	})
	if err != nil {
		log.Err(err).Str("table", r.table).Str("login", login).Msg("error querying client by login")
		return models.Client{}, apperr.DynamoDBDown(err)
	}

	if len(items) == 0 {
		log.Warn().Str("table", r.table).Str("login", login).Msg("no client for login")
		return models.Client{}, apperr.ClientNotFound("No client exists with login '%s'", login)
	}

	if len(items) > 1 {
		log.Warn().Str("table", r.table).Str("login", login).Int("count", len(items)).Msg("multiple clients share one login")
	}

	var client models.Client
	if err := attributevalue.UnmarshalMap(items[0], &client); err != nil {
		log.Err(err).Str("table", r.table).Str("login", login).Msg("error unmarshalling client item")
		return models.Client{}, apperr.DynamoDBDown(err)
	}

	log.Info().Str("table", r.table).Str("login", login).Str("clientId", client.ClientID).Msg("client fetched by login")
	return client, nil
}

// CreateClient persists a new client record with a fresh identifier and
// both timestamps stamped to now, and returns the persisted record.
//
// There is no uniqueness handling here; the caller probes the login index
// first. Any gateway failure → [apperr.CodeDynamoDBDown].
func (r *clientRepository) CreateClient(ctx context.Context, data models.ClientData) (models.Client, error) {
	log := logger.FromContext(ctx)

	client := models.Client{
		ClientID: uuid.NewString(),
		Login:    data.Login,
		Password: data.Password,
		Metadata: models.NewMetadata(time.Now()),
	}

	item, err := attributevalue.MarshalMap(client)
	if err != nil {
		log.Err(err).Str("table", r.table).Msg("error marshalling client item")
		return models.Client{}, apperr.DynamoDBDown(err)
	}

	if err := r.gateway.Save(ctx, r.table, item); err != nil {
		log.Err(err).Str("table", r.table).Str("clientId", client.ClientID).Msg("error saving client")
		return models.Client{}, apperr.DynamoDBDown(err)
	}

	log.Info().Str("table", r.table).Str("clientId", client.ClientID).Msg("client created")
	return client, nil
}

// UpdateClient rewrites login, password, and metadata.updatedDate on an
// existing record, then re-reads and returns the full record.
//
// The update carries an existence condition on the key so a deleted record
// cannot be resurrected. A failed condition is not told apart from any
// other store failure; both surface as [apperr.CodeDynamoDBDown].
func (r *clientRepository) UpdateClient(ctx context.Context, id string, data models.ClientData) (models.Client, error) {
	log := logger.FromContext(ctx)

	err := r.gateway.Update(ctx, r.table, UpdateInput{
		Key:                 clientKey(id),
		UpdateExpression:    "SET #login = :login, #password = :password, #metadata.#updatedDate = :updatedDate",
		ConditionExpression: "attribute_exists(clientId)",
		ExpressionAttributeNames: map[string]string{
			"#login":       "login",
			"#password":    "password",
			"#metadata":    "metadata",
			"#updatedDate": "updatedDate",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":login":       &types.AttributeValueMemberS{Value: data.Login},
			":password":    &types.AttributeValueMemberS{Value: data.Password},
			":updatedDate": &types.AttributeValueMemberS{Value: models.Timestamp(time.Now())},
		},
	})
	if err != nil {
		log.Err(err).Str("table", r.table).Str("clientId", id).Msg("error updating client")
		return models.Client{}, apperr.DynamoDBDown(err)
	}

	log.Info().Str("table", r.table).Str("clientId", id).Msg("client updated")
	return r.GetClientByID(ctx, id)
}

// DeleteClient removes the client record by key. The delete is
// unconditional: removing an absent key succeeds, so the operation is
// idempotent-by-absence. Any gateway failure → [apperr.CodeDynamoDBDown].
func (r *clientRepository) DeleteClient(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if err := r.gateway.Delete(ctx, r.table, clientKey(id)); err != nil {
		log.Err(err).Str("table", r.table).Str("clientId", id).Msg("error deleting client")
		return apperr.DynamoDBDown(err)
	}

	log.Info().Str("table", r.table).Str("clientId", id).Msg("client deleted")
	return nil
}
