// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package httperr provides error types carrying HTTP status codes, used to
// surface non-2xx registry API responses through the call stack.
package httperr

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// maxBodyInMessage caps how much of a response body is quoted in an error.
const maxBodyInMessage = 512

// CodedError wraps an error with an HTTP status code.
// This allows errors to carry the status of a failed API call through the
// call stack, so callers can branch on the status (e.g. treating a 404 on a
// pagination link as end-of-list) without parsing error strings.
type CodedError struct {
	err  error
	code int
}

// Error implements the error interface.
func (e *CodedError) Error() string {
	return e.err.Error()
}

// Unwrap returns the underlying error for errors.Is() and errors.As() compatibility.
func (e *CodedError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code associated with this error.
func (e *CodedError) HTTPCode() int {
	return e.code
}

// WithCode wraps an error with an HTTP status code.
// If err is nil, WithCode returns nil.
func WithCode(err error, code int) error {
	if err == nil {
		return nil
	}
	return &CodedError{err: err, code: code}
}

// New creates a new error with the given message and HTTP status code.
func New(message string, code int) error {
	return &CodedError{err: errors.New(message), code: code}
}

// Code extracts the HTTP status code from an error, unwrapping the chain to
// find a CodedError. It returns 0 if the error carries no status, so that
// transport-level failures are never mistaken for a server response.
func Code(err error) int {
	var coded *CodedError
	if errors.As(err, &coded) {
		return coded.code
	}
	return 0
}

// IsStatus reports whether err carries the given HTTP status code.
func IsStatus(err error, code int) bool {
	return Code(err) == code
}

// FromResponse builds a CodedError from a non-2xx response, reading a bounded
// prefix of the body into the message. It returns nil for 2xx responses.
// The response body is consumed but not closed.
func FromResponse(op string, resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodyInMessage))
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		return New(fmt.Sprintf("%s: %s", op, resp.Status), resp.StatusCode)
	}
	return New(fmt.Sprintf("%s: %s: %s", op, resp.Status, msg), resp.StatusCode)
}
