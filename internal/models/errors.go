package models

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifica falhas de chamadas externas.
type ErrorKind string

const (
	KindInvalidRequest ErrorKind = "invalid_request"
	KindUnauthorized   ErrorKind = "unauthorized"
	KindQuotaExceeded  ErrorKind = "quota_exceeded"
	KindNotFound       ErrorKind = "not_found"
	KindServerError    ErrorKind = "server_error"
	KindUnknown        ErrorKind = "unknown"
)

// APIError é o erro tipado construído na fronteira do transporte.
// Nenhum código downstream inspeciona campos ad hoc; a classificação
// acontece uma única vez, a partir do status HTTP.
type APIError struct {
	Kind    ErrorKind `json:"kind"`
	Status  int       `json:"status,omitempty"`
	Message string    `json:"message"`
}

func (e *APIError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s (%d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// NewAPIError cria um erro tipado com kind explícito.
func NewAPIError(kind ErrorKind, message string) *APIError {
	return &APIError{Kind: kind, Message: message}
}

// APIErrorFromStatus mapeia um status HTTP para a taxonomia de erros.
// Sem status (falhas de rede) o chamador deve usar KindUnknown.
func APIErrorFromStatus(status int, message string) *APIError {
	kind := KindUnknown
	switch {
	case status == http.StatusBadRequest:
		kind = KindInvalidRequest
	case status == http.StatusUnauthorized:
		kind = KindUnauthorized
	case status == http.StatusForbidden:
		kind = KindQuotaExceeded
	case status == http.StatusNotFound:
		kind = KindNotFound
	case status >= 500:
		kind = KindServerError
	}
	return &APIError{Kind: kind, Status: status, Message: message}
}

// KindOf extrai o kind de um erro; KindUnknown para erros não tipados.
func KindOf(err error) ErrorKind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindUnknown
}

// HTTPStatus retorna o status HTTP a devolver ao consumidor para um erro.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindInvalidRequest:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindQuotaExceeded:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindServerError:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

var (
	ErrQueryRequired = NewAPIError(KindInvalidRequest, "query é obrigatória")
)
