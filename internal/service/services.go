package service

import (
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
)

type Services struct {
	ClientService   ClientService
	PasswordService PasswordService
}

func NewServices(storages *store.Storages, encryptor crypto.Encryptor, logger *logger.Logger) *Services {
	return &Services{
		ClientService:   NewClientService(storages.ClientRepository, storages.PasswordRepository, encryptor, logger),
		PasswordService: NewPasswordService(storages.PasswordRepository, encryptor, logger),
	}
}
