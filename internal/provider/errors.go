// Package provider defines the error taxonomy shared by the upstream API
// clients and the messages shown to users when an upstream call fails.
package provider

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound is returned when the availability provider has no data for a
// title (HTTP 404). Callers recover from it locally; it never aborts a batch.
var ErrNotFound = errors.New("title not found")

// ErrLookupNotConfigured is returned when a free-text search is requested but
// no lookup API key is configured. No network call is made in this case.
var ErrLookupNotConfigured = errors.New("title search not configured")

// ErrAvailabilityNotConfigured is returned when the availability API key is
// absent. Every request needs it, so this is checked before any call.
var ErrAvailabilityNotConfigured = errors.New("availability API not configured")

// Error is a non-2xx, non-404 response from an upstream provider.
// Status 0 means a transport failure or timeout, which callers treat the
// same as an upstream 5xx.
type Error struct {
	Status int
	Body   string
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("provider request failed: %s", e.Body)
	}
	return fmt.Sprintf("provider returned status %d: %s", e.Status, e.Body)
}

// HTTPStatus returns the status to surface to the API caller: the upstream
// status when there is one, 502 for transport failures.
func (e *Error) HTTPStatus() int {
	if e.Status == 0 {
		return http.StatusBadGateway
	}
	return e.Status
}

// Localize maps an upstream failure to the user-facing message shown by the
// web UI. Messages are pt-BR, matching the product's audience.
func Localize(err error) string {
	if errors.Is(err, ErrNotFound) {
		return "Título não encontrado."
	}

	var perr *Error
	if errors.As(err, &perr) {
		switch perr.Status {
		case http.StatusForbidden, http.StatusUnauthorized:
			return "Acesso negado. Verifique se a chave da API está correta e válida."
		case http.StatusTooManyRequests:
			return "Muitas requisições. Aguarde um momento antes de tentar novamente."
		case 0:
			return "Erro de rede ao consultar o provedor. Tente novamente."
		}
	}

	return "Erro ao buscar dados da API."
}
