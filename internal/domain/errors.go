package domain

import (
	"errors"
	"fmt"

	"ebay_pricer/pkg/errcodes"
)

// Kind классифицирует ошибку для внешних слоёв (HTTP, бот).
type Kind int

const (
	KindInternal Kind = iota
	KindInvalidArgument
	KindUnprocessable
	KindNotFound
	KindUnavailable
)

// AppError представляет доменную ошибку приложения.
type AppError struct {
	Kind    Kind
	Code    errcodes.ErrorCode
	Message string
	cause   error
}

// Error реализует интерфейс error.
func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap возвращает обёрнутую ошибку для errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.cause
}

// NewError создаёт новую доменную ошибку.
func NewError(kind Kind, code errcodes.ErrorCode, message string) *AppError {
	return &AppError{
		Kind:    kind,
		Code:    code,
		Message: message,
	}
}

// WrapError оборачивает существующую ошибку с доменным контекстом.
func WrapError(err error, kind Kind, code errcodes.ErrorCode, message string) *AppError {
	return &AppError{
		Kind:    kind,
		Code:    code,
		Message: message,
		cause:   err,
	}
}

// InvalidArgument ошибка входных данных.
func InvalidArgument(code errcodes.ErrorCode, format string, args ...any) *AppError {
	return NewError(KindInvalidArgument, code, fmt.Sprintf(format, args...))
}

// Unprocessable: данные корректны, но результат не определён.
func Unprocessable(code errcodes.ErrorCode, format string, args ...any) *AppError {
	return NewError(KindUnprocessable, code, fmt.Sprintf(format, args...))
}

// IsAppError проверяет, является ли ошибка доменной.
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// IsKind проверяет класс доменной ошибки в цепочке.
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// GetCode извлекает код ошибки, если это AppError.
func GetCode(err error) (errcodes.ErrorCode, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code, true
	}
	return "", false
}

// Description возвращает сообщение верхней доменной ошибки без причины.
func Description(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return ""
}
