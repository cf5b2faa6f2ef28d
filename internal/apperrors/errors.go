package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidReference indicates that a referenced resource (header, client,
// particulars, GST rate, payment term) does not exist.
var ErrInvalidReference = errors.New("invalid reference")

// ErrStateConflict indicates a business-rule violation against the current
// state of a resource, e.g. editing a bill that is no longer DRAFT or
// recording a payment that exceeds the outstanding balance.
var ErrStateConflict = errors.New("operation conflicts with resource state")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the authenticated user lacks the required role.
var ErrForbidden = errors.New("forbidden")
