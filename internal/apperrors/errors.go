package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates a missing or invalid credential.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller's role lacks permission for the operation.
var ErrForbidden = errors.New("forbidden")

// ErrSubscriptionExpired indicates the tenant's subscription no longer permits writes.
var ErrSubscriptionExpired = errors.New("subscription expired")
