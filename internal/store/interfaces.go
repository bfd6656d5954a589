package store

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Gateway is the narrow storage contract the repositories consume. It is the
// only part of DynamoDB this package depends on; everything behind it
// (consistency model, retries, wire protocol) is the store's business.
type Gateway interface {
	// Get fetches a single item by its primary key. Returns a nil item
	// (and nil error) when no item exists for the key.
	Get(ctx context.Context, table string, key map[string]types.AttributeValue) (map[string]types.AttributeValue, error)

	// Query runs a key-condition query against a secondary index and
	// returns all matching items. An empty result is not an error.
	Query(ctx context.Context, table string, input QueryInput) ([]map[string]types.AttributeValue, error)

	// Save writes the full item, replacing any existing item with the
	// same key.
	Save(ctx context.Context, table string, item map[string]types.AttributeValue) error

	// Update applies an update expression to the item at input.Key.
	// Fails when input.ConditionExpression is set and not satisfied.
	Update(ctx context.Context, table string, input UpdateInput) error

	// Delete removes the item at key. Deleting an absent key is not an
	// error.
	Delete(ctx context.Context, table string, key map[string]types.AttributeValue) error

	// BatchDelete removes every item whose key appears in keys.
	BatchDelete(ctx context.Context, table string, keys []map[string]types.AttributeValue) error
}

// QueryInput carries the parameters of a secondary-index query.
type QueryInput struct {
	IndexName                 string
	KeyConditionExpression    string
	ExpressionAttributeValues map[string]types.AttributeValue
}

// UpdateInput carries the parameters of a conditional update.
type UpdateInput struct {
	Key                       map[string]types.AttributeValue
	UpdateExpression          string
	ConditionExpression       string
	ExpressionAttributeNames  map[string]string
	ExpressionAttributeValues map[string]types.AttributeValue
}

// ClientRepository is the data-access contract for client account records.
//
// Every method classifies failures into the apperr taxonomy: a 404 kind for
// an absent item or empty index result, DynamoDBDown for any other storage
// failure. No method retries: one storage attempt per call.
type ClientRepository interface {
	GetClientByID(ctx context.Context, id string) (models.Client, error)
	GetClientByLogin(ctx context.Context, login string) (models.Client, error)
	CreateClient(ctx context.Context, data models.ClientData) (models.Client, error)
	UpdateClient(ctx context.Context, id string, data models.ClientData) (models.Client, error)
	DeleteClient(ctx context.Context, id string) error
}

// PasswordRepository is the data-access contract for stored credential
// entries, including the bulk delete-by-owner used by the cascading client
// delete.
type PasswordRepository interface {
	GetPasswordByID(ctx context.Context, id string) (models.Password, error)
	GetPasswordsByClientID(ctx context.Context, clientID string) ([]models.Password, error)
	CreatePassword(ctx context.Context, data models.PasswordData) (models.Password, error)
	UpdatePassword(ctx context.Context, id string, data models.PasswordData) (models.Password, error)
	DeletePassword(ctx context.Context, id string) error
	DeletePasswordsForClientID(ctx context.Context, clientID string) error
}
