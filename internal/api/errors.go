package api

import (
	"encoding/json"
	"errors"

	"github.com/yourorg/hceweb/internal/models"
)

// Mensajes que ve el usuario final.
const (
	SessionExpiredMessage = "Sesión expirada"
	UnknownErrorMessage   = "Error desconocido"
	GenericErrorMessage   = "Error en la solicitud"
)

// SessionExpiredError se produce ante un 401. Cuando el llamador lo recibe la
// sesión ya fue cerrada y el navegador ya fue enviado a login.
type SessionExpiredError struct{}

func (e *SessionExpiredError) Error() string {
	return SessionExpiredMessage
}

// RequestFailedError es cualquier otra respuesta no-ok.
type RequestFailedError struct {
	Status  int
	Message string
}

func (e *RequestFailedError) Error() string {
	return e.Message
}

// IsSessionExpired reporta si err (o algo que envuelve) es un SessionExpiredError.
func IsSessionExpired(err error) bool {
	var expired *SessionExpiredError
	return errors.As(err, &expired)
}

// detailMessage extrae el mensaje de un cuerpo de error {"detail": ...}.
//   - cuerpo que no es JSON          → "Error desconocido"
//   - JSON sin detail o detail falsy → "Error en la solicitud"
//   - detail string                  → el string
//   - detail lista/objeto (FastAPI)  → el JSON compacto del detail
func detailMessage(body []byte) string {
	if !json.Valid(body) {
		return UnknownErrorMessage
	}

	// JSON válido que no es objeto tampoco trae detail
	var payload models.ErrorResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return GenericErrorMessage
	}

	switch detail := payload.Detail.(type) {
	case nil:
		return GenericErrorMessage
	case string:
		if detail == "" {
			return GenericErrorMessage
		}
		return detail
	case bool:
		if !detail {
			return GenericErrorMessage
		}
	case float64:
		if detail == 0 {
			return GenericErrorMessage
		}
	}

	raw, err := json.Marshal(payload.Detail)
	if err != nil {
		return GenericErrorMessage
	}
	return string(raw)
}
