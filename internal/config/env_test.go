package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_PopulatesAllSections(t *testing.T) {
	t.Setenv("APP_VERSION", "1.2.3")
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:9090")
	t.Setenv("SERVER_READ_TIMEOUT", "30s")
	t.Setenv("STORAGE_DYNAMO_REGION", "eu-central-1")
	t.Setenv("STORAGE_DYNAMO_BASE_ENDPOINT", "http://127.0.0.1:8000")
	t.Setenv("STORAGE_DYNAMO_CLIENTS_TABLE", "vault-clients")
	t.Setenv("STORAGE_DYNAMO_PASSWORDS_TABLE", "vault-passwords")
	t.Setenv("STORAGE_DYNAMO_LOGIN_INDEX", "by-login")
	t.Setenv("STORAGE_DYNAMO_CLIENT_ID_INDEX", "by-owner")
	t.Setenv("CRYPTO_MASTER_KEY", "super-secret")
	t.Setenv("CRYPTO_KEY_SALT", "stable-salt")
	t.Setenv("CONFIG", "/etc/vault/config.json")

	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))

	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "0.0.0.0:9090", cfg.Server.Address)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "eu-central-1", cfg.Storage.Dynamo.Region)
	assert.Equal(t, "http://127.0.0.1:8000", cfg.Storage.Dynamo.BaseEndpoint)
	assert.Equal(t, "vault-clients", cfg.Storage.Dynamo.ClientsTable)
	assert.Equal(t, "vault-passwords", cfg.Storage.Dynamo.PasswordsTable)
	assert.Equal(t, "by-login", cfg.Storage.Dynamo.LoginIndex)
	assert.Equal(t, "by-owner", cfg.Storage.Dynamo.ClientIDIndex)
	assert.Equal(t, "super-secret", cfg.Crypto.MasterKey)
	assert.Equal(t, "stable-salt", cfg.Crypto.KeySalt)
	assert.Equal(t, "/etc/vault/config.json", cfg.JSONFilePath)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("SERVER_READ_TIMEOUT", "not-a-duration")

	var cfg StructuredConfig
	err := parseEnv(&cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}
