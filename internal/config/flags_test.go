package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	cfg := parseFlags([]string{
		"-a", "localhost:9999",
		"-region", "eu-west-1",
		"-dynamo-endpoint", "http://127.0.0.1:8000",
		"-clients-table", "c-table",
		"-passwords-table", "p-table",
		"-login-index", "l-index",
		"-client-id-index", "o-index",
		"-master-key", "mk",
		"-key-salt", "ks",
		"-read-timeout", "20s",
		"-shutdown-timeout", "5s",
		"-c", "cfg.json",
	})

	assert.Equal(t, "localhost:9999", cfg.Server.Address)
	assert.Equal(t, "eu-west-1", cfg.Storage.Dynamo.Region)
	assert.Equal(t, "http://127.0.0.1:8000", cfg.Storage.Dynamo.BaseEndpoint)
	assert.Equal(t, "c-table", cfg.Storage.Dynamo.ClientsTable)
	assert.Equal(t, "p-table", cfg.Storage.Dynamo.PasswordsTable)
	assert.Equal(t, "l-index", cfg.Storage.Dynamo.LoginIndex)
	assert.Equal(t, "o-index", cfg.Storage.Dynamo.ClientIDIndex)
	assert.Equal(t, "mk", cfg.Crypto.MasterKey)
	assert.Equal(t, "ks", cfg.Crypto.KeySalt)
	assert.Equal(t, 20*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}

func TestParseFlags_NoFlags_LeavesZeroValues(t *testing.T) {
	cfg := parseFlags(nil)

	assert.Empty(t, cfg.Server.Address)
	assert.Empty(t, cfg.Storage.Dynamo.ClientsTable)
	assert.Zero(t, cfg.Server.ReadTimeout)
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		want    string
	}{
		{"localhost", "localhost:8080", false, "localhost:8080"},
		{"ip", "127.0.0.1:9090", false, "127.0.0.1:9090"},
		{"empty host", ":8080", false, ":8080"},
		{"missing port", "localhost", true, ""},
		{"bad port", "localhost:abc", true, ""},
		{"negative port", "localhost:-1", true, ""},
		{"bad host", "not-an-ip:8080", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.String())
		})
	}
}

func TestNetAddress_String_Unset(t *testing.T) {
	var a NetAddress
	assert.Empty(t, a.String())
}
