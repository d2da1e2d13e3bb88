package models

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAPIErrorFromStatus(t *testing.T) {
	tests := []struct {
		status int
		want   ErrorKind
	}{
		{400, KindInvalidRequest},
		{401, KindUnauthorized},
		{403, KindQuotaExceeded},
		{404, KindNotFound},
		{500, KindServerError},
		{503, KindServerError},
		{418, KindUnknown},
	}

	for _, tt := range tests {
		got := APIErrorFromStatus(tt.status, "msg")
		if got.Kind != tt.want {
			t.Errorf("APIErrorFromStatus(%d).Kind = %q, want %q", tt.status, got.Kind, tt.want)
		}
	}
}

func TestKindOf(t *testing.T) {
	apiErr := APIErrorFromStatus(401, "credenciais inválidas")

	if got := KindOf(apiErr); got != KindUnauthorized {
		t.Errorf("KindOf = %q, want %q", got, KindUnauthorized)
	}

	// O kind sobrevive a wrapping.
	wrapped := fmt.Errorf("busca falhou: %w", apiErr)
	if got := KindOf(wrapped); got != KindUnauthorized {
		t.Errorf("KindOf(wrapped) = %q, want %q", got, KindUnauthorized)
	}

	if got := KindOf(errors.New("qualquer")); got != KindUnknown {
		t.Errorf("KindOf(erro genérico) = %q, want %q", got, KindUnknown)
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{ErrQueryRequired, http.StatusBadRequest},
		{APIErrorFromStatus(401, ""), http.StatusUnauthorized},
		{APIErrorFromStatus(403, ""), http.StatusForbidden},
		{APIErrorFromStatus(404, ""), http.StatusNotFound},
		{APIErrorFromStatus(500, ""), http.StatusBadGateway},
		{errors.New("sem tipo"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := HTTPStatus(tt.err); got != tt.want {
			t.Errorf("HTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
