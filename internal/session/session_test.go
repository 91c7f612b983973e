package session

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/yourorg/hceweb/internal/models"
	"github.com/yourorg/hceweb/internal/storage"
)

func newTestSession(path string) (*Session, *storage.MemoryStore, *MemoryNavigator) {
	store := storage.NewMemoryStore()
	nav := NewMemoryNavigator(path)
	return New(store, nav, ""), store, nav
}

func TestIsAuthenticatedTracksTokenSlot(t *testing.T) {
	sess, store, _ := newTestSession("/dashboard/doctor")

	if sess.IsAuthenticated() {
		t.Error("Expected unauthenticated with empty store")
	}

	store.Set(storage.TokenKey, "abc")
	if !sess.IsAuthenticated() {
		t.Error("Expected authenticated after setting token")
	}

	sess.Logout()
	if sess.IsAuthenticated() {
		t.Error("Expected unauthenticated after logout")
	}

	store.Set(storage.TokenKey, "def")
	if !sess.IsAuthenticated() {
		t.Error("Expected authenticated after setting token again")
	}

	// Un token vacío equivale a no tener sesión
	store.Set(storage.TokenKey, "")
	if sess.IsAuthenticated() {
		t.Error("Expected empty token to count as unauthenticated")
	}
}

func TestLogoutClearsBothSlotsAndRedirects(t *testing.T) {
	sess, store, nav := newTestSession("/dashboard/admin")
	store.Set(storage.TokenKey, "abc")
	store.Set(storage.UserKey, `{"username":"admin","rol":"admin"}`)

	sess.Logout()

	if store.Count() != 0 {
		t.Errorf("Expected both slots cleared, got keys %v", store.Keys())
	}
	if nav.CurrentPath() != "/login" {
		t.Errorf("Expected navigation to /login, got %q", nav.CurrentPath())
	}

	// Idempotente: una segunda llamada vuelve a navegar sin fallar
	sess.Logout()
	if got := nav.History(); len(got) != 2 || got[1] != "/login" {
		t.Errorf("Expected two navigations to /login, got %v", got)
	}
}

func TestUser(t *testing.T) {
	sess, store, _ := newTestSession("/")

	user, err := sess.User()
	if err != nil || user != nil {
		t.Fatalf("Expected (nil, nil) for empty slot, got (%v, %v)", user, err)
	}

	store.Set(storage.UserKey, `{"username":"medico1","rol":"medico","nombres":"Ana","extra":true}`)
	user, err = sess.User()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Username != "medico1" || user.Nombres != "Ana" || user.Rol != "medico" {
		t.Errorf("Unexpected user: %+v", user)
	}
}

func TestUserMalformedJSONIsReported(t *testing.T) {
	sess, store, _ := newTestSession("/")
	store.Set(storage.UserKey, `{"username":`)

	if _, err := sess.User(); err == nil {
		t.Error("Expected error for malformed user JSON")
	}
}

func TestSaveWritesBothSlots(t *testing.T) {
	sess, store, _ := newTestSession("/login")

	err := sess.Save("tok", models.User{Username: "adm1", Rol: "admisionista"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	token, _, _ := store.Get(storage.TokenKey)
	if token != "tok" {
		t.Errorf("Expected token 'tok', got %q", token)
	}
	user, err := sess.User()
	if err != nil || user == nil || user.Username != "adm1" {
		t.Errorf("Expected stored user adm1, got %+v (%v)", user, err)
	}
}

func TestCheckAuth(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		token        string
		wantRedirect bool
	}{
		{"sin sesión en dashboard", "/dashboard/doctor", "", true},
		{"sin sesión en login", "/login", "", false},
		{"sin sesión en subruta de login", "/app/login?next=x", "", false},
		{"con sesión en dashboard", "/dashboard/doctor", "abc", false},
		{"con sesión en login", "/login", "abc", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess, store, nav := newTestSession(tt.path)
			if tt.token != "" {
				store.Set(storage.TokenKey, tt.token)
			}

			redirected := sess.CheckAuth()

			if redirected != tt.wantRedirect {
				t.Errorf("Expected redirect=%v, got %v", tt.wantRedirect, redirected)
			}
			if tt.wantRedirect && nav.CurrentPath() != "/login" {
				t.Errorf("Expected /login, got %q", nav.CurrentPath())
			}
			if !tt.wantRedirect && len(nav.History()) != 0 {
				t.Errorf("Expected no navigation, got %v", nav.History())
			}
		})
	}
}

func TestCustomLoginPath(t *testing.T) {
	store := storage.NewMemoryStore()
	nav := NewMemoryNavigator("/hce/dashboard")
	sess := New(store, nav, "/hce/login")

	sess.CheckAuth()
	if nav.CurrentPath() != "/hce/login" {
		t.Errorf("Expected /hce/login, got %q", nav.CurrentPath())
	}
}

func TestClaims(t *testing.T) {
	sess, store, _ := newTestSession("/")

	if _, err := sess.Claims(); !errors.Is(err, ErrNoToken) {
		t.Errorf("Expected ErrNoToken, got %v", err)
	}

	sede := int64(2)
	exp := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Rol:       "medico",
		IDSede:    &sede,
		IDUsuario: 7,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "medico1",
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}).SignedString([]byte("cualquier-clave"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	store.Set(storage.TokenKey, signed)

	claims, err := sess.Claims()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.Subject != "medico1" || claims.Rol != "medico" || claims.IDUsuario != 7 {
		t.Errorf("Unexpected claims: %+v", claims)
	}
	if claims.IDSede == nil || *claims.IDSede != 2 {
		t.Errorf("Expected id_sede 2, got %v", claims.IDSede)
	}
	if !claims.Expiry().Equal(exp) {
		t.Errorf("Expected expiry %s, got %s", exp, claims.Expiry())
	}
	if claims.Expired(exp.Add(-time.Hour)) {
		t.Error("Expected token valid before expiry")
	}
	if !claims.Expired(exp.Add(time.Hour)) {
		t.Error("Expected token expired after expiry")
	}
}

func TestParseClaimsRejectsGarbage(t *testing.T) {
	if _, err := ParseClaims("no-es-un-jwt"); err == nil {
		t.Error("Expected error for non-JWT token")
	}
}

func TestDashboardPath(t *testing.T) {
	cases := map[string]string{
		"paciente":        "/dashboard/patient",
		"admisionista":    "/dashboard/admissions",
		"medico":          "/dashboard/doctor",
		"historificacion": "/dashboard/records",
		"admin":           "/dashboard/admin",
		"desconocido":     "/login",
	}
	for rol, want := range cases {
		if got := DashboardPath(rol); got != want {
			t.Errorf("DashboardPath(%q) = %q, want %q", rol, got, want)
		}
	}
}
