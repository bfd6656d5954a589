// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Password is a stored credential entry owned by a single client.
// Value holds ciphertext at rest; the password service decrypts it on read
// paths only. There is no storage-level cascade from the owning client;
// the client service coordinates deletes.
type Password struct {
	// PasswordID is an opaque unique identifier generated at creation.
	PasswordID string `json:"passwordId" dynamodbav:"passwordId"`

	// Name is the human-readable display label of the entry.
	Name string `json:"name" dynamodbav:"name"`

	// Website is the optional site the credential belongs to.
	Website *string `json:"website" dynamodbav:"website"`

	// Login is the credential's username. Free text, no uniqueness rule.
	Login string `json:"login" dynamodbav:"login"`

	// Value is the secret itself: encrypted at rest, decrypted only when
	// read back out through the password service.
	Value string `json:"value" dynamodbav:"value"`

	// ClientID identifies the owning client. Looked up via a secondary
	// index for the list and bulk-delete paths.
	ClientID string `json:"clientId" dynamodbav:"clientId"`

	Metadata Metadata `json:"metadata" dynamodbav:"metadata"`
}

// PasswordData is the caller-supplied portion of a password entry, used for
// both create and update requests. ClientID is attached by the service, not
// the caller.
type PasswordData struct {
	Name     string  `json:"name"`
	Website  *string `json:"website"`
	Login    string  `json:"login"`
	Value    string  `json:"value"`
	ClientID string  `json:"clientId,omitempty"`
}

// PasswordResult is the envelope returned by single-password operations.
// Value is ciphertext when echoed straight from a create or update call,
// because those paths do not round-trip through decrypt.
type PasswordResult struct {
	Password Password `json:"password"`
}

// PasswordListResult is the envelope returned by the list path. Values are
// decrypted before the envelope is built.
type PasswordListResult struct {
	Passwords []Password `json:"passwords"`
}
