package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	ErrCodeBadRequest     ErrorCode = "BAD_REQUEST"
	ErrCodeValidation     ErrorCode = "VALIDATION_ERROR"
	ErrCodeMisconfigured  ErrorCode = "MISCONFIGURED"
	ErrCodeUpstreamFailed ErrorCode = "UPSTREAM_FAILED"
	ErrCodeStorage        ErrorCode = "STORAGE_ERROR"
	ErrCodeInternal       ErrorCode = "INTERNAL_ERROR"
)

type AppError struct {
	Code       ErrorCode
	Message    string
	HTTPStatus int
	Cause      error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: codeToHTTPStatus(code),
	}
}

func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: codeToHTTPStatus(code),
		Cause:      err,
	}
}

func codeToHTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeBadRequest, ErrCodeValidation, ErrCodeMisconfigured:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// As достаёт *AppError из цепочки ошибок.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func IsMisconfigured(err error) bool {
	appErr, ok := As(err)
	return ok && appErr.Code == ErrCodeMisconfigured
}

// IsUpstreamFailed в рабочем коде не используется, нужен тестам для проверки цепочки Wrap.
func IsUpstreamFailed(err error) bool {
	appErr, ok := As(err)
	return ok && appErr.Code == ErrCodeUpstreamFailed
}

func IsValidation(err error) bool {
	appErr, ok := As(err)
	return ok && appErr.Code == ErrCodeValidation
}

// Сообщения ниже уходят клиенту как есть, фронтенд показывает их пользователю.
const (
	MsgNoProvider     = "No AI provider configured."
	MsgGenerateFailed = "Failed to generate response"
	MsgInvalidBody    = "invalid request body"
	MsgInternal       = "internal server error"
)

var (
	ErrNoProvider   = New(ErrCodeMisconfigured, MsgNoProvider)
	ErrInvalidBody  = New(ErrCodeBadRequest, MsgInvalidBody)
	ErrEmptyContent = New(ErrCodeValidation, "nothing to save: proposal content is empty")
)
