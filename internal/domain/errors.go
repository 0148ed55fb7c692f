package domain

import "fmt"

const (
	CodeNotFound     = "NOT_FOUND"
	CodeValidation   = "VALIDATION"
	CodeBadRequest   = "BAD_REQUEST"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeProvider     = "PROVIDER"
)

type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Это позволяет использовать errors.Is()
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

var (
	// ErrNotFound - ресурс не найден
	ErrNotFound = &DomainError{
		Code:    CodeNotFound,
		Message: "resource not found",
	}

	// ErrValidation - тело запроса не прошло проверку
	ErrValidation = &DomainError{
		Code:    CodeValidation,
		Message: "validation failed",
	}

	// ErrBadRequest - запрос сформирован некорректно
	ErrBadRequest = &DomainError{
		Code:    CodeBadRequest,
		Message: "bad request",
	}

	// ErrUnauthorized - токен отсутствует или недействителен
	ErrUnauthorized = &DomainError{
		Code:    CodeUnauthorized,
		Message: "unauthorized",
	}

	// ErrProvider - ошибка платежного провайдера
	ErrProvider = &DomainError{
		Code:    CodeProvider,
		Message: "payment provider error",
	}
)

// NewNotFoundError создает ошибку NOT_FOUND для сущности, например "Client not found"
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

func NewValidationError(format string, args ...any) *DomainError {
	return &DomainError{
		Code:    CodeValidation,
		Message: fmt.Sprintf(format, args...),
	}
}

func NewBadRequestError(message string) *DomainError {
	return &DomainError{
		Code:    CodeBadRequest,
		Message: message,
	}
}

// NewProviderError сохраняет исходный текст ошибки провайдера: он отдается клиенту как есть
func NewProviderError(err error) *DomainError {
	return &DomainError{
		Code:    CodeProvider,
		Message: err.Error(),
		Err:     err,
	}
}
