package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims son los datos que el backend HCE firma dentro del token.
type Claims struct {
	Rol       string `json:"rol"`
	IDSede    *int64 `json:"id_sede,omitempty"`
	IDUsuario int64  `json:"id_usuario"`
	jwt.RegisteredClaims
}

// ErrNoToken se retorna cuando no hay sesión que decodificar.
var ErrNoToken = errors.New("no hay token en la sesión")

// Claims decodifica el payload del token SIN verificar la firma. Sirve solo
// para mostrar información; la validez la decide el backend.
func (s *Session) Claims() (*Claims, error) {
	token, found := s.Token()
	if !found || token == "" {
		return nil, ErrNoToken
	}
	return ParseClaims(token)
}

// ParseClaims decodifica sin verificar un token con claims HCE.
func ParseClaims(raw string) (*Claims, error) {
	var claims Claims
	if _, _, err := jwt.NewParser().ParseUnverified(raw, &claims); err != nil {
		return nil, fmt.Errorf("token ilegible: %w", err)
	}
	return &claims, nil
}

// Expiry retorna el vencimiento del token o el tiempo cero si no lo trae.
func (c *Claims) Expiry() time.Time {
	if c.RegisteredClaims.ExpiresAt == nil {
		return time.Time{}
	}
	return c.RegisteredClaims.ExpiresAt.Time
}

// Expired indica si el token ya venció respecto de now.
func (c *Claims) Expired(now time.Time) bool {
	exp := c.Expiry()
	return !exp.IsZero() && now.After(exp)
}
