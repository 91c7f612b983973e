// Package session implementa el acceso a la sesión HCE (token + usuario)
// sobre un storage.Store inyectable.
package session

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/yourorg/hceweb/internal/debug"
	"github.com/yourorg/hceweb/internal/models"
	"github.com/yourorg/hceweb/internal/storage"
)

// DefaultLoginPath es el destino de Logout y del guard de navegación.
const DefaultLoginPath = "/login"

// Navigator abstrae la navegación del navegador (window.location).
type Navigator interface {
	Navigate(path string)
	CurrentPath() string
}

// Session es el contexto de sesión explícito. No cachea nada: cada lectura va
// al store, igual que leer localStorage en cada acceso.
type Session struct {
	store     storage.Store
	nav       Navigator
	loginPath string
}

// New crea una sesión sobre store y nav. loginPath vacío usa "/login".
func New(store storage.Store, nav Navigator, loginPath string) *Session {
	if loginPath == "" {
		loginPath = DefaultLoginPath
	}
	return &Session{store: store, nav: nav, loginPath: loginPath}
}

// LoginPath retorna la ruta de login configurada.
func (s *Session) LoginPath() string {
	return s.loginPath
}

// Navigator retorna el navegador asociado a la sesión.
func (s *Session) Navigator() Navigator {
	return s.nav
}

// Token lee el slot "token". Un error de lectura se registra y se trata como
// token ausente.
func (s *Session) Token() (string, bool) {
	token, found, err := s.store.Get(storage.TokenKey)
	if err != nil {
		log.Printf("⚠️  [SESSION] Error leyendo token: %v", err)
		return "", false
	}
	return token, found
}

// User lee y decodifica el slot "user". Slot vacío → (nil, nil).
// Un JSON malformado se retorna como error; nunca se descarta.
func (s *Session) User() (*models.User, error) {
	raw, found, err := s.store.Get(storage.UserKey)
	if err != nil {
		return nil, fmt.Errorf("leyendo usuario: %w", err)
	}
	if !found || raw == "" {
		return nil, nil
	}
	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, fmt.Errorf("usuario guardado inválido: %w", err)
	}
	return &user, nil
}

// IsAuthenticated es true si hay un token no vacío en el store.
func (s *Session) IsAuthenticated() bool {
	token, found := s.Token()
	return found && token != ""
}

// Save guarda token y usuario, como hace el flujo de login. Los dos slots son
// independientes: no hay atomicidad entre ellos.
func (s *Session) Save(token string, user models.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("serializando usuario: %w", err)
	}
	if err := s.store.Set(storage.TokenKey, token); err != nil {
		return fmt.Errorf("guardando token: %w", err)
	}
	if err := s.store.Set(storage.UserKey, string(payload)); err != nil {
		return fmt.Errorf("guardando usuario: %w", err)
	}
	return nil
}

// SetToken guarda solo el token. El login lo usa antes de pedir /auth/me.
func (s *Session) SetToken(token string) error {
	if err := s.store.Set(storage.TokenKey, token); err != nil {
		return fmt.Errorf("guardando token: %w", err)
	}
	return nil
}

// Clear borra ambos slots sin navegar. Los errores del store se registran.
func (s *Session) Clear() {
	for _, key := range []string{storage.TokenKey, storage.UserKey} {
		if err := s.store.Remove(key); err != nil {
			log.Printf("⚠️  [SESSION] Error borrando %s: %v", key, err)
		}
	}
}

// Logout borra ambos slots y navega a la página de login. Es idempotente y
// navega siempre, aunque el borrado falle.
func (s *Session) Logout() {
	s.Clear()
	debug.LogInfo("logout", map[string]interface{}{"redirect": s.loginPath})
	s.nav.Navigate(s.loginPath)
}

// CheckAuth es el guard de navegación: redirige a login si no hay sesión y la
// ruta actual no contiene la ruta de login. Retorna true si redirigió.
func (s *Session) CheckAuth() bool {
	if s.IsAuthenticated() {
		return false
	}
	if strings.Contains(s.nav.CurrentPath(), s.loginPath) {
		return false
	}
	debug.LogInfo("redirect to login", map[string]interface{}{"from": s.nav.CurrentPath()})
	s.nav.Navigate(s.loginPath)
	return true
}
