// Laptoplens - Laptop Catalog Advisory and AI Shopping Assistant
// Copyright 2026 Ngoc V. (ngocvb)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ngocvb/laptoplens

package models

import (
	"time"
)

// APIResponse is the standardized response wrapper used by all HTTP
// endpoints. It provides a consistent structure for both successful and
// error responses, with metadata for observability.
//
// Status field values:
//   - "success": Request completed successfully, see Data field
//   - "error": Request failed, see Error field for details
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability.
type Metadata struct {
	// Timestamp is when the response was generated.
	Timestamp time.Time `json:"timestamp"`

	// QueryTimeMS is the server-side processing time in milliseconds.
	QueryTimeMS int64 `json:"query_time_ms"`
}

// APIError carries machine-readable error details in an error response.
type APIError struct {
	// Code is a stable machine-readable error code (e.g. "VALIDATION_ERROR").
	Code string `json:"code"`

	// Message is a human-readable description.
	Message string `json:"message"`

	// Details holds optional structured context for the error.
	Details map[string]interface{} `json:"details,omitempty"`
}

// NewSuccessResponse builds a success envelope around data.
func NewSuccessResponse(data interface{}, queryTime time.Duration) *APIResponse {
	return &APIResponse{
		Status: "success",
		Data:   data,
		Metadata: Metadata{
			Timestamp:   time.Now().UTC(),
			QueryTimeMS: queryTime.Milliseconds(),
		},
	}
}

// NewErrorResponse builds an error envelope.
func NewErrorResponse(code, message string, details map[string]interface{}) *APIResponse {
	return &APIResponse{
		Status: "error",
		Metadata: Metadata{
			Timestamp: time.Now().UTC(),
		},
		Error: &APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
}
