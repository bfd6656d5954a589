// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Client is an account record as persisted in the clients table.
// Password always holds the encrypted credential value: the service layer
// encrypts before the record ever reaches the repository.
type Client struct {
	// ClientID is an opaque unique identifier generated at creation.
	// Immutable for the lifetime of the record.
	ClientID string `json:"clientId" dynamodbav:"clientId"`

	// Login is unique across all clients. Uniqueness is enforced by the
	// client service via a secondary-index lookup, not by the store.
	Login string `json:"login" dynamodbav:"login"`

	// Password is the encrypted login credential. It is never decrypted in
	// the current scope and never included in API responses.
	Password string `json:"password" dynamodbav:"password"`

	Metadata Metadata `json:"metadata" dynamodbav:"metadata"`
}

// ClientData is the caller-supplied portion of a client record, used for
// both create and update requests.
type ClientData struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// ClientResponse is the presentation view of a Client. It deliberately has
// no password field: the encrypted credential never leaves the service layer.
type ClientResponse struct {
	ClientID string   `json:"clientId"`
	Login    string   `json:"login"`
	Metadata Metadata `json:"metadata"`
}

// Response converts a persisted Client into its password-free view.
func (c Client) Response() ClientResponse {
	return ClientResponse{
		ClientID: c.ClientID,
		Login:    c.Login,
		Metadata: c.Metadata,
	}
}

// ClientResult is the envelope returned by client service operations.
type ClientResult struct {
	Client ClientResponse `json:"client"`
}
