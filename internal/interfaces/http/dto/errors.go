package dto

import (
	"net/http"
	"strings"
)

// Error codes reuse the domain error codes wherever one exists, so the
// wire format matches what the services return. Transport-only failures
// get their own codes here.
const (
	// ErrCodeUnknown is used when the error type is unknown
	ErrCodeUnknown = "UNKNOWN"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "INTERNAL_ERROR"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeValidation is the base code for binding/validation failures
	ErrCodeValidation = "VALIDATION_ERROR"
	// ErrCodeUnauthorized is used when authentication is missing or invalid
	ErrCodeUnauthorized = "UNAUTHORIZED"
	// ErrCodePermissionDenied is used when the policy engine rejects an action
	ErrCodePermissionDenied = "PERMISSION_DENIED"
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "NOT_FOUND"
	// ErrCodeAlreadyExists is used when trying to create a duplicate resource
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
	// ErrCodeDuplicateResidency is used when a person already has an active residency
	ErrCodeDuplicateResidency = "DUPLICATE_RESIDENCY"
	// ErrCodeVillageNotFound is used when a village lookup resolves nothing
	ErrCodeVillageNotFound = "VILLAGE_NOT_FOUND"
	// ErrCodeInvalidTransition is used when a status change is not allowed
	ErrCodeInvalidTransition = "INVALID_TRANSITION"
	// ErrCodeTransactionFailure is used when a multi-step write was rolled back
	ErrCodeTransactionFailure = "TRANSACTION_FAILURE"
	// ErrCodeInvalidInput is used for invalid input data
	ErrCodeInvalidInput = "INVALID_INPUT"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeValidation:   http.StatusBadRequest,
	ErrCodeInvalidInput: http.StatusBadRequest,

	ErrCodeUnauthorized:     http.StatusUnauthorized,
	ErrCodePermissionDenied: http.StatusForbidden,

	ErrCodeNotFound:        http.StatusNotFound,
	ErrCodeVillageNotFound: http.StatusNotFound,

	ErrCodeAlreadyExists:      http.StatusConflict,
	ErrCodeDuplicateResidency: http.StatusConflict,

	ErrCodeInvalidTransition:  http.StatusBadRequest,
	ErrCodeTransactionFailure: http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Codes prefixed VALIDATION_ are all client errors; anything unknown
// is treated as an internal error.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, "VALIDATION_") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
