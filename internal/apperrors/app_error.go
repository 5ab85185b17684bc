package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a handler-facing error carrying the HTTP status, a stable
// machine code and bilingual user-facing messages. Handlers serialize it as
// {"error": Message, "code": Code} with MessageBN included when set.
type AppError struct {
	Status    int    `json:"-"`
	Code      string `json:"code"`
	Message   string `json:"error"`
	MessageBN string `json:"error_bn,omitempty"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewUnauthorizedError(msg string) *AppError {
	return &AppError{Status: http.StatusUnauthorized, Code: "UNAUTHORIZED", Message: msg}
}

func NewForbiddenError(msg string) *AppError {
	return &AppError{Status: http.StatusForbidden, Code: "FORBIDDEN", Message: msg}
}

func NewNotFoundError(msg string) *AppError {
	return &AppError{Status: http.StatusNotFound, Code: "NOT_FOUND", Message: msg}
}

func NewValidationError(msg string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Code: "VALIDATION_ERROR", Message: msg}
}

func NewConflictError(msg string) *AppError {
	return &AppError{Status: http.StatusConflict, Code: "CONFLICT", Message: msg}
}

func NewSubscriptionExpiredError() *AppError {
	return &AppError{
		Status:    http.StatusPaymentRequired,
		Code:      "SUBSCRIPTION_EXPIRED",
		Message:   "Subscription has expired. Please renew to continue.",
		MessageBN: "সাবস্ক্রিপশনের মেয়াদ শেষ হয়েছে। চালিয়ে যেতে নবায়ন করুন।",
	}
}

// NewPlanLimitError signals that an action is blocked by the tenant's plan
// quota. Carries the bilingual message computed by the plan service.
func NewPlanLimitError(msg, msgBN string) *AppError {
	return &AppError{Status: http.StatusForbidden, Code: "PLAN_LIMIT_REACHED", Message: msg, MessageBN: msgBN}
}

func NewInternalServerError(msg string) *AppError {
	return &AppError{Status: http.StatusInternalServerError, Code: "INTERNAL_ERROR", Message: msg}
}

// FromError maps a service error to an AppError, preferring an already-typed
// *AppError and falling back to the sentinel taxonomy. Unknown errors become
// a generic 500 so internals never leak to clients.
func FromError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	switch {
	case errors.Is(err, ErrNotFound):
		return NewNotFoundError("Resource not found")
	case errors.Is(err, ErrValidation):
		return NewValidationError(err.Error())
	case errors.Is(err, ErrDuplicate):
		return NewConflictError("Resource already exists")
	case errors.Is(err, ErrUnauthorized):
		return NewUnauthorizedError("Unauthorized")
	case errors.Is(err, ErrForbidden):
		return NewForbiddenError("Forbidden")
	case errors.Is(err, ErrSubscriptionExpired):
		return NewSubscriptionExpiredError()
	default:
		return NewInternalServerError("Something went wrong")
	}
}
