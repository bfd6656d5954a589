package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations, so operators can keep a readable config file.
type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Server struct {
		Address         string   `json:"address"`
		ReadTimeout     Duration `json:"read_timeout"`
		WriteTimeout    Duration `json:"write_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Storage struct {
		Dynamo struct {
			Region          string `json:"region"`
			BaseEndpoint    string `json:"base_endpoint"`
			AccessKeyID     string `json:"access_key_id"`
			SecretAccessKey string `json:"secret_access_key"`
			ClientsTable    string `json:"clients_table"`
			PasswordsTable  string `json:"passwords_table"`
			LoginIndex      string `json:"login_index"`
			ClientIDIndex   string `json:"client_id_index"`
		} `json:"dynamo,omitempty"`
	} `json:"storage,omitempty"`

	Crypto struct {
		MasterKey string `json:"master_key"`
		KeySalt   string `json:"key_salt"`
	} `json:"crypto,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version: jsonCfg.App.Version,
		},
		Server: Server{
			Address:         jsonCfg.Server.Address,
			ReadTimeout:     time.Duration(jsonCfg.Server.ReadTimeout),
			WriteTimeout:    time.Duration(jsonCfg.Server.WriteTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Storage: Storage{
			Dynamo: Dynamo{
				Region:          jsonCfg.Storage.Dynamo.Region,
				BaseEndpoint:    jsonCfg.Storage.Dynamo.BaseEndpoint,
				AccessKeyID:     jsonCfg.Storage.Dynamo.AccessKeyID,
				SecretAccessKey: jsonCfg.Storage.Dynamo.SecretAccessKey,
				ClientsTable:    jsonCfg.Storage.Dynamo.ClientsTable,
				PasswordsTable:  jsonCfg.Storage.Dynamo.PasswordsTable,
				LoginIndex:      jsonCfg.Storage.Dynamo.LoginIndex,
				ClientIDIndex:   jsonCfg.Storage.Dynamo.ClientIDIndex,
			},
		},
		Crypto: Crypto{
			MasterKey: jsonCfg.Crypto.MasterKey,
			KeySalt:   jsonCfg.Crypto.KeySalt,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
