// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-pass-vault/internal/apperr"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// passwordRepository is the DynamoDB-backed implementation of
// [PasswordRepository]. Credential entries live in the passwords table;
// by-owner lookups go through a secondary index on clientId.
type passwordRepository struct {
	gateway       Gateway
	table         string
	clientIDIndex string
	logger        *logger.Logger
}

// NewPasswordRepository constructs a [PasswordRepository] backed by the
// provided storage gateway.
func NewPasswordRepository(gateway Gateway, cfg config.Dynamo, logger *logger.Logger) PasswordRepository {
	logger.Debug().Str("table", cfg.PasswordsTable).Msg("creating password repository")
	return &passwordRepository{
		gateway:       gateway,
		table:         cfg.PasswordsTable,
		clientIDIndex: cfg.ClientIDIndex,
		logger:        logger,
	}
}

func passwordKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"passwordId": &types.AttributeValueMemberS{Value: id},
	}
}

// GetPasswordByID fetches a single credential entry by its identifier.
//
// Error handling:
//   - absent item → [apperr.CodePasswordNotFound] (404).
//   - any gateway failure → [apperr.CodeDynamoDBDown] (503).
func (r *passwordRepository) GetPasswordByID(ctx context.Context, id string) (models.Password, error) {
	log := logger.FromContext(ctx)

	item, err := r.gateway.Get(ctx, r.table, passwordKey(id))
	if err != nil {
		log.Err(err).Str("table", r.table).Str("passwordId", id).Msg("error getting password by id")
		return models.Password{}, apperr.DynamoDBDown(err)
	}

	if item == nil {
		log.Warn().Str("table", r.table).Str("passwordId", id).Msg("password not found")
		return models.Password{}, apperr.PasswordNotFound("No password exists with id '%s'", id)
	}

	var password models.Password
	if err := attributevalue.UnmarshalMap(item, &password); err != nil {
		log.Err(err).Str("table", r.table).Str("passwordId", id).Msg("error unmarshalling password item")
		return models.Password{}, apperr.DynamoDBDown(err)
	}

	log.Info().Str("table", r.table).Str("passwordId", id).Msg("password fetched")
	return password, nil
}

// GetPasswordsByClientID returns every credential entry owned by clientID,
// resolved through the clientId secondary index. Unlike the client-by-login
// path this does not collapse to a single record: an owner may hold many
// entries.
//
// Error handling:
//   - empty or absent result set → [apperr.CodePasswordNotFound].
//   - any gateway failure → [apperr.CodeDynamoDBDown].
func (r *passwordRepository) GetPasswordsByClientID(ctx context.Context, clientID string) ([]models.Password, error) {
	log := logger.FromContext(ctx)

	items, err := r.gateway.Query(ctx, r.table, QueryInput{
		IndexName:              r.clientIDIndex,
		KeyConditionExpression: "clientId = :clientId",
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":clientId": &types.AttributeValueMemberS{Value: clientID},
		},
	})
	if err != nil {
		log.Err(err).Str("table", r.table).Str("clientId", clientID).Msg("error querying passwords by client id")
		return nil, apperr.DynamoDBDown(err)
	}

	if len(items) == 0 {
		log.Warn().Str("table", r.table).Str("clientId", clientID).Msg("no passwords for client")
		return nil, apperr.PasswordNotFound("No passwords exist for client '%s'", clientID)
	}

	passwords := make([]models.Password, 0, len(items))
	if err := attributevalue.UnmarshalListOfMaps(items, &passwords); err != nil {
		log.Err(err).Str("table", r.table).Str("clientId", clientID).Msg("error unmarshalling password items")
		return nil, apperr.DynamoDBDown(err)
	}

	log.Info().Str("table", r.table).Str("clientId", clientID).Int("count", len(passwords)).Msg("passwords fetched")
	return passwords, nil
}

// CreatePassword persists a new credential entry with a fresh identifier
// and both timestamps stamped to now, and returns the persisted record.
// The Value field is stored exactly as given; encryption happened at the
// service boundary.
func (r *passwordRepository) CreatePassword(ctx context.Context, data models.PasswordData) (models.Password, error) {
	log := logger.FromContext(ctx)

	password := models.Password{
		PasswordID: uuid.NewString(),
		Name:       data.Name,
		Website:    data.Website,
		Login:      data.Login,
		Value:      data.Value,
		ClientID:   data.ClientID,
		Metadata:   models.NewMetadata(time.Now()),
	}

	item, err := attributevalue.MarshalMap(password)
	if err != nil {
		log.Err(err).Str("table", r.table).Msg("error marshalling password item")
		return models.Password{}, apperr.DynamoDBDown(err)
	}

	if err := r.gateway.Save(ctx, r.table, item); err != nil {
		log.Err(err).Str("table", r.table).Str("passwordId", password.PasswordID).Msg("error saving password")
		return models.Password{}, apperr.DynamoDBDown(err)
	}

	log.Info().Str("table", r.table).Str("passwordId", password.PasswordID).Str("clientId", password.ClientID).Msg("password created")
	return password, nil
}

// UpdatePassword rewrites name, website, login, value, clientId, and
// metadata.updatedDate on an existing entry, then re-reads and returns the
// full record via [passwordRepository.GetPasswordByID].
//
// The update carries an existence condition on the key. A failed condition
// is not told apart from any other store failure; both surface as
// [apperr.CodeDynamoDBDown].
func (r *passwordRepository) UpdatePassword(ctx context.Context, id string, data models.PasswordData) (models.Password, error) {
	log := logger.FromContext(ctx)

	var website types.AttributeValue = &types.AttributeValueMemberNULL{Value: true}
	if data.Website != nil {
		website = &types.AttributeValueMemberS{Value: *data.Website}
	}

	err := r.gateway.Update(ctx, r.table, UpdateInput{
		Key:                 passwordKey(id),
		UpdateExpression:    "SET #name = :name, #website = :website, #login = :login, #value = :value, #clientId = :clientId, #metadata.#updatedDate = :updatedDate",
		ConditionExpression: "attribute_exists(passwordId)",
		ExpressionAttributeNames: map[string]string{
			"#name":        "name",
			"#website":     "website",
			"#login":       "login",
			"#value":       "value",
			"#clientId":    "clientId",
			"#metadata":    "metadata",
			"#updatedDate": "updatedDate",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":name":        &types.AttributeValueMemberS{Value: data.Name},
			":website":     website,
			":login":       &types.AttributeValueMemberS{Value: data.Login},
			":value":       &types.AttributeValueMemberS{Value: data.Value},
			":clientId":    &types.AttributeValueMemberS{Value: data.ClientID},
			":updatedDate": &types.AttributeValueMemberS{Value: models.Timestamp(time.Now())},
		},
	})
	if err != nil {
		log.Err(err).Str("table", r.table).Str("passwordId", id).Msg("error updating password")
		return models.Password{}, apperr.DynamoDBDown(err)
	}

	log.Info().Str("table", r.table).Str("passwordId", id).Msg("password updated")
	return r.GetPasswordByID(ctx, id)
}

// DeletePassword removes a single credential entry by key. Unconditional
// and idempotent-by-absence, as with client deletes.
func (r *passwordRepository) DeletePassword(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if err := r.gateway.Delete(ctx, r.table, passwordKey(id)); err != nil {
		log.Err(err).Str("table", r.table).Str("passwordId", id).Msg("error deleting password")
		return apperr.DynamoDBDown(err)
	}

	log.Info().Str("table", r.table).Str("passwordId", id).Msg("password deleted")
	return nil
}

// DeletePasswordsForClientID removes every credential entry owned by
// clientID: it resolves the owner's current set, then issues one bulk
// delete for those keys.
//
// The read and the bulk delete are two independent steps. An entry created
// for the same owner between them is not part of the batch and survives.
//
// An owner with no entries is not an error: the not-found from the read
// step is treated as an empty set and the bulk delete is skipped.
func (r *passwordRepository) DeletePasswordsForClientID(ctx context.Context, clientID string) error {
	log := logger.FromContext(ctx)

	passwords, err := r.GetPasswordsByClientID(ctx, clientID)
	if err != nil {
		if errors.Is(err, apperr.ErrPasswordNotFound) {
			log.Info().Str("table", r.table).Str("clientId", clientID).Msg("no passwords to delete")
			return nil
		}
		return err
	}

	keys := make([]map[string]types.AttributeValue, 0, len(passwords))
	for _, p := range passwords {
		keys = append(keys, passwordKey(p.PasswordID))
	}

	if err := r.gateway.BatchDelete(ctx, r.table, keys); err != nil {
		log.Err(err).Str("table", r.table).Str("clientId", clientID).Int("count", len(keys)).Msg("error bulk deleting passwords")
		return apperr.DynamoDBDown(err)
	}

	log.Info().Str("table", r.table).Str("clientId", clientID).Int("count", len(keys)).Msg("passwords bulk deleted")
	return nil
}
