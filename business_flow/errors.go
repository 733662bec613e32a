package businessflow

import (
	"errors"
	"fmt"
)

// Business flow error constants
var (
	// Account-related errors
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrUsernameRequired   = errors.New("username is required")
	ErrPasswordRequired   = errors.New("password is required")
	ErrInvalidRole        = errors.New("invalid role")
	ErrSessionNotFound    = errors.New("session not found")

	// Plan-related errors
	ErrWorkspaceNotFound = errors.New("no active plan workspace, log in first")
	ErrRecordNotFound    = errors.New("record not found")
	ErrReferenceNotFound = errors.New("customer is not in the reference list")
	ErrFieldNotEditable  = errors.New("field is not editable")
	ErrInvalidFieldValue = errors.New("invalid field value")
	ErrInvalidCallCount  = errors.New("refined calls must be a non-negative number")
	ErrUnknownExportView = errors.New("unknown export view")

	// Filter errors
	ErrInvalidPage     = errors.New("page must be at least 1")
	ErrInvalidPageSize = errors.New("page size must be between 1 and 100")
)

type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func IsInvalidCredentials(err error) bool {
	return errors.Is(err, ErrInvalidCredentials)
}

func IsUsernameTaken(err error) bool {
	return errors.Is(err, ErrUsernameTaken)
}

func IsSessionNotFound(err error) bool {
	return errors.Is(err, ErrSessionNotFound)
}

func IsWorkspaceNotFound(err error) bool {
	return errors.Is(err, ErrWorkspaceNotFound)
}

func IsRecordNotFound(err error) bool {
	return errors.Is(err, ErrRecordNotFound)
}

func IsReferenceNotFound(err error) bool {
	return errors.Is(err, ErrReferenceNotFound)
}

func IsFieldNotEditable(err error) bool {
	return errors.Is(err, ErrFieldNotEditable)
}

func IsInvalidFieldValue(err error) bool {
	return errors.Is(err, ErrInvalidFieldValue) || errors.Is(err, ErrInvalidCallCount)
}

func IsInvalidPagination(err error) bool {
	return errors.Is(err, ErrInvalidPage) || errors.Is(err, ErrInvalidPageSize)
}
