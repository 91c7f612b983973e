// Package storage contiene los slots persistentes del lado cliente donde vive
// la sesión HCE (token y usuario serializado).
package storage

// Claves de los slots que comparte con el flujo de login.
const (
	TokenKey = "token"
	UserKey  = "user"
)

// Store es un almacén key-value de strings con semántica de localStorage:
// Get de una clave ausente no es error, Remove de una clave ausente tampoco.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error
}
