package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTempJSON(t, `{
		"app": {"version": "2.0.0"},
		"server": {
			"address": "localhost:8081",
			"read_timeout": "25s",
			"shutdown_timeout": "7s"
		},
		"storage": {
			"dynamo": {
				"region": "eu-north-1",
				"base_endpoint": "http://dynamo:8000",
				"clients_table": "clients-json",
				"passwords_table": "passwords-json",
				"login_index": "login-json",
				"client_id_index": "owner-json"
			}
		},
		"crypto": {"master_key": "json-key", "key_salt": "json-salt"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, "localhost:8081", cfg.Server.Address)
	assert.Equal(t, 25*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 7*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "eu-north-1", cfg.Storage.Dynamo.Region)
	assert.Equal(t, "clients-json", cfg.Storage.Dynamo.ClientsTable)
	assert.Equal(t, "json-key", cfg.Crypto.MasterKey)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("/nonexistent/config.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	path := writeTempJSON(t, `{not json`)

	_, err := parseJSON(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	var d Duration

	require.NoError(t, d.UnmarshalJSON([]byte(`"90s"`)))
	assert.Equal(t, 90*time.Second, time.Duration(d))

	require.NoError(t, d.UnmarshalJSON([]byte(`1000000000`)))
	assert.Equal(t, time.Second, time.Duration(d))

	require.Error(t, d.UnmarshalJSON([]byte(`"ninety seconds"`)))
}
