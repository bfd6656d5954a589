package store

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// Storages bundles the repositories handed to the service layer.
type Storages struct {
	ClientRepository   ClientRepository
	PasswordRepository PasswordRepository
}

// NewStorages builds the DynamoDB gateway and wires both repositories
// on top of it.
func NewStorages(ctx context.Context, cfg config.Dynamo, logger *logger.Logger) (*Storages, error) {
	gateway, err := NewDynamoGateway(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	return &Storages{
		ClientRepository:   NewClientRepository(gateway, cfg, logger),
		PasswordRepository: NewPasswordRepository(gateway, cfg, logger),
	}, nil
}
