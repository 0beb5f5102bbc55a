package errors

import (
	"net/http"
	"strings"

	"wander/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Resolution-related errors
	ErrProfileStoreUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"PROFILE_STORE_UNAVAILABLE",
		"個人檔案儲存服務暫時無法使用",
		"",
	)

	ErrDuplicateProfileConflict = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_PROFILE_CONFLICT",
		"此帳號同時存在使用者與商家檔案，資料完整性已受損",
		"",
	)

	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"找不到該個人檔案",
		"",
	)

	// Onboarding-related errors
	ErrProfileAlreadyExists = NewBaseError(
		http.StatusConflict,
		"PROFILE_ALREADY_EXISTS",
		"此帳號已建立個人檔案",
		"",
	)

	ErrKindNotSelected = NewBaseError(
		http.StatusBadRequest,
		"KIND_NOT_SELECTED",
		"尚未選擇帳號類型",
		"",
	)

	ErrKindImmutable = NewBaseError(
		http.StatusConflict,
		"KIND_IMMUTABLE",
		"帳號類型選定後無法變更",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"輸入資料驗證失敗",
		"",
	)

	// Authentication-related errors
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"未通過身分驗證",
		"",
	)

	ErrInvalidIDToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_ID_TOKEN",
		"無效或已過期的身分權杖",
		"",
	)

	// Directory-related errors
	ErrListingNotFound = NewBaseError(
		http.StatusNotFound,
		"LISTING_NOT_FOUND",
		"找不到該商家",
		"",
	)

	ErrInvalidVote = NewBaseError(
		http.StatusBadRequest,
		"INVALID_VOTE",
		"無效的投票選項",
		"",
	)

	// Itinerary-related errors
	ErrItineraryServiceUnavailable = NewBaseError(
		http.StatusBadGateway,
		"ITINERARY_SERVICE_UNAVAILABLE",
		"行程規劃服務暫時無法使用",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"資料庫交易失敗",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"系統內部錯誤",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"找不到該資源",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"資源衝突",
		"",
	)
)

// FieldValidationError carries the specific fields that failed validation,
// implementing the AppError interface so delivery code can surface them.
type FieldValidationError struct {
	fields []string
}

// NewFieldValidationError creates a validation error naming the offending fields
func NewFieldValidationError(fields ...string) *FieldValidationError {
	return &FieldValidationError{fields: fields}
}

// Fields returns the names of the fields that failed validation
func (e *FieldValidationError) Fields() []string {
	return e.fields
}

// Error implements the error interface
func (e *FieldValidationError) Error() string {
	return "validation failed: " + strings.Join(e.fields, ", ")
}

// HTTPCode returns the HTTP status code
func (e *FieldValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *FieldValidationError) ErrorCode() string {
	return "VALIDATION_FAILED"
}

// Message returns the user-friendly error message
func (e *FieldValidationError) Message() string {
	return "輸入資料驗證失敗"
}

// Details returns detailed error information
func (e *FieldValidationError) Details() string {
	return "invalid fields: " + strings.Join(e.fields, ", ")
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "資料庫執行失敗"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
