// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package apperr defines the single domain error kind used across the
// repositories and services. Every domain-facing failure is an *Error
// carrying the HTTP status, a code from a fixed enumeration, and a
// human-readable message; the HTTP layer maps these fields straight onto
// the transport response.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Code enumerates every error code the API can emit. The set is fixed;
// handlers and clients match on these values.
type Code string

const (
	CodeClientNotFound     Code = "ClientNotFound"
	CodePasswordNotFound   Code = "PasswordNotFound"
	CodeLoginAlreadyExists Code = "LoginAlreadyExists"
	CodeDynamoDBDown       Code = "DynamoDBDown"
	CodeNotFound           Code = "NotFound"
	CodeNotImplemented     Code = "NotImplemented"
)

// Error is the one domain error kind. Two Errors match under [errors.Is]
// when their ErrorCode values are equal, so sentinel matching works without
// comparing messages.
type Error struct {
	StatusCode int
	ErrorCode  Code
	Message    string

	// Err is the underlying cause, kept for logs only. It never reaches
	// API responses.
	Err error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.ErrorCode)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error with the same ErrorCode.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.ErrorCode == t.ErrorCode
	}
	return false
}

// Sentinels for [errors.Is] matching. Messages are empty on purpose;
// only the code participates in matching.
var (
	ErrClientNotFound     = &Error{StatusCode: http.StatusNotFound, ErrorCode: CodeClientNotFound}
	ErrPasswordNotFound   = &Error{StatusCode: http.StatusNotFound, ErrorCode: CodePasswordNotFound}
	ErrLoginAlreadyExists = &Error{StatusCode: http.StatusBadRequest, ErrorCode: CodeLoginAlreadyExists}
	ErrDynamoDBDown       = &Error{StatusCode: http.StatusServiceUnavailable, ErrorCode: CodeDynamoDBDown}
	ErrNotFound           = &Error{StatusCode: http.StatusNotFound, ErrorCode: CodeNotFound}
	ErrNotImplemented     = &Error{StatusCode: http.StatusNotImplemented, ErrorCode: CodeNotImplemented}
)

// ClientNotFound builds a 404 for an absent client record.
func ClientNotFound(format string, args ...any) *Error {
	return &Error{
		StatusCode: http.StatusNotFound,
		ErrorCode:  CodeClientNotFound,
		Message:    fmt.Sprintf(format, args...),
	}
}

// PasswordNotFound builds a 404 for an absent password entry or an empty
// by-owner result set.
func PasswordNotFound(format string, args ...any) *Error {
	return &Error{
		StatusCode: http.StatusNotFound,
		ErrorCode:  CodePasswordNotFound,
		Message:    fmt.Sprintf(format, args...),
	}
}

// LoginAlreadyExists builds the 400 returned when a create collides with an
// existing login.
func LoginAlreadyExists() *Error {
	return &Error{
		StatusCode: http.StatusBadRequest,
		ErrorCode:  CodeLoginAlreadyExists,
		Message:    "login already exists",
	}
}

// DynamoDBDown classifies any unexpected storage failure. Transient and
// permanent store errors are not distinguished: every one collapses to a
// single 503 kind, with the cause retained for logging.
func DynamoDBDown(err error) *Error {
	return &Error{
		StatusCode: http.StatusServiceUnavailable,
		ErrorCode:  CodeDynamoDBDown,
		Message:    "storage is unavailable",
		Err:        err,
	}
}

// NotFound builds a generic 404 used when a service re-labels a
// repository-level miss with its own message.
func NotFound(format string, args ...any) *Error {
	return &Error{
		StatusCode: http.StatusNotFound,
		ErrorCode:  CodeNotFound,
		Message:    fmt.Sprintf(format, args...),
	}
}

// NotImplemented builds the 501 returned by reserved handler paths.
func NotImplemented(msg string) *Error {
	return &Error{
		StatusCode: http.StatusNotImplemented,
		ErrorCode:  CodeNotImplemented,
		Message:    msg,
	}
}

// As unwraps err into an *Error if one is present anywhere in its chain.
func As(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}
