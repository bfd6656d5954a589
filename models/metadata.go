// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Metadata carries the audit timestamps attached to every stored record.
// CreatedDate is written once at creation; UpdatedDate is refreshed on every
// mutation. Both are RFC 3339 timestamps in UTC.
type Metadata struct {
	CreatedDate string `json:"createdDate" dynamodbav:"createdDate"`
	UpdatedDate string `json:"updatedDate" dynamodbav:"updatedDate"`
}

// NewMetadata returns a Metadata with both timestamps stamped to now.
func NewMetadata(now time.Time) Metadata {
	ts := now.UTC().Format(time.RFC3339)
	return Metadata{
		CreatedDate: ts,
		UpdatedDate: ts,
	}
}

// Timestamp formats now the same way NewMetadata does, for refreshing
// UpdatedDate on update paths.
func Timestamp(now time.Time) string {
	return now.UTC().Format(time.RFC3339)
}
