// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.Address == "" {
		return ErrInvalidServerConfigs
	}

	d := cfg.Storage.Dynamo
	if d.Region == "" || d.ClientsTable == "" || d.PasswordsTable == "" ||
		d.LoginIndex == "" || d.ClientIDIndex == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Crypto.MasterKey == "" || cfg.Crypto.KeySalt == "" {
		return ErrInvalidCryptoConfigs
	}

	return nil
}
