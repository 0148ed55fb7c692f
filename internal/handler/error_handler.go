package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/bagdasarian/bizdesk/internal/domain"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		writeError(w, getStatusCode(domainErr.Code), domainErr.Message)
		return
	}

	h.logger.Error("request failed",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	writeError(w, http.StatusInternalServerError, "internal server error")
}

func getStatusCode(errorCode string) int {
	switch errorCode {
	case domain.CodeNotFound:
		return http.StatusNotFound
	case domain.CodeValidation:
		return http.StatusUnprocessableEntity
	case domain.CodeBadRequest:
		return http.StatusBadRequest
	case domain.CodeUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Detail: message})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeMessage(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, MessageResponse{Message: message})
}

// decodeJSON читает тело запроса. Синтаксическая ошибка дает BAD_REQUEST,
// значение неверного типа или формата дает VALIDATION.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return nil
	}

	var domainErr *domain.DomainError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &domainErr):
		return domainErr
	case errors.As(err, &typeErr):
		return domain.NewValidationError("invalid value for field %q", typeErr.Field)
	case errors.Is(err, io.EOF):
		return domain.NewBadRequestError("request body is required")
	default:
		return domain.NewBadRequestError(fmt.Sprintf("invalid JSON body: %v", err))
	}
}
