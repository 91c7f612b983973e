package sede

import (
	"context"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/yourorg/hceweb/internal/api"
	"github.com/yourorg/hceweb/internal/models"
	"github.com/yourorg/hceweb/internal/render"
	"github.com/yourorg/hceweb/internal/session"
	"github.com/yourorg/hceweb/internal/storage"
)

func TestColorFor(t *testing.T) {
	cases := map[string]string{
		"Bogotá":           "#e74c3c",
		"BOGOTÁ D.C.":      "#e74c3c",
		"Medellín":         "#3498db",
		"Santiago de Cali": "#27ae60",
		"CALI":             "#27ae60",
		"Bogota":           "", // sin tilde no coincide
		"Barranquilla":     "",
	}
	for ciudad, want := range cases {
		if got := ColorFor(ciudad); got != want {
			t.Errorf("ColorFor(%q) = %q, want %q", ciudad, got, want)
		}
	}
}

func TestColorForConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				if got := ColorFor("MEDELLÍN"); got != "#3498db" {
					t.Errorf("Expected #3498db, got %q", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestUpdateDisplay(t *testing.T) {
	doc := render.NewDocument(&render.Element{ID: BadgeID, Background: "#999999"})

	UpdateDisplay(doc, models.Sede{Nombre: "Sede Norte", Ciudad: "Medellín"})

	el, _ := doc.Element(BadgeID)
	if el.Text != "Sede Norte - Medellín" {
		t.Errorf("Unexpected badge text %q", el.Text)
	}
	if el.Background != "#3498db" {
		t.Errorf("Expected #3498db, got %q", el.Background)
	}
}

func TestUpdateDisplayKeepsColorWithoutMatch(t *testing.T) {
	doc := render.NewDocument(&render.Element{ID: BadgeID, Background: "#27ae60"})

	UpdateDisplay(doc, models.Sede{Nombre: "Sede Caribe", Ciudad: "Barranquilla"})

	el, _ := doc.Element(BadgeID)
	if el.Text != "Sede Caribe - Barranquilla" {
		t.Errorf("Unexpected badge text %q", el.Text)
	}
	if el.Background != "#27ae60" {
		t.Errorf("Expected previous color kept, got %q", el.Background)
	}
}

func TestUpdateDisplayWithoutBadge(t *testing.T) {
	doc := render.NewDocument()

	// No debe fallar ni crear el elemento
	UpdateDisplay(doc, models.Sede{Nombre: "X", Ciudad: "Cali"})
	if _, ok := doc.Element(BadgeID); ok {
		t.Error("Expected badge not to be created")
	}
}

func newLoader(t *testing.T, handler fiber.Handler) (*Loader, *render.Document, *storage.MemoryStore, *session.MemoryNavigator) {
	t.Helper()
	app := fiber.New()
	app.Get("/auth/sede", handler)
	srv := httptest.NewServer(adaptor.FiberApp(app))
	t.Cleanup(srv.Close)

	store := storage.NewMemoryStore()
	store.Set(storage.TokenKey, "tok")
	nav := session.NewMemoryNavigator("/dashboard/doctor")
	client := api.NewClient(srv.URL, session.New(store, nav, ""))

	doc := render.NewDocument(&render.Element{ID: BadgeID})
	return NewLoader(client, doc, ""), doc, store, nav
}

func TestLoad(t *testing.T) {
	var gotAuth string
	loader, doc, _, _ := newLoader(t, func(c *fiber.Ctx) error {
		gotAuth = c.Get("Authorization")
		return c.JSON(fiber.Map{"id_sede": 1, "nombre": "Sede Centro", "ciudad": "Bogotá", "direccion": "Cra 7"})
	})

	s := loader.Load(context.Background())
	if s == nil || s.Nombre != "Sede Centro" {
		t.Fatalf("Expected sede loaded, got %+v", s)
	}
	if gotAuth != "Bearer tok" {
		t.Errorf("Expected bearer header, got %q", gotAuth)
	}

	el, _ := doc.Element(BadgeID)
	if el.Text != "Sede Centro - Bogotá" || el.Background != "#e74c3c" {
		t.Errorf("Unexpected badge %+v", el)
	}
}

func TestLoadNonOKIsSilent(t *testing.T) {
	loader, doc, store, nav := newLoader(t, func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"detail": "expirado"})
	})

	if s := loader.Load(context.Background()); s != nil {
		t.Errorf("Expected nil sede, got %+v", s)
	}

	el, _ := doc.Element(BadgeID)
	if el.Text != "" {
		t.Errorf("Expected badge untouched, got %q", el.Text)
	}
	// A diferencia del wrapper, un 401 aquí no cierra sesión
	if store.Count() != 1 || len(nav.History()) != 0 {
		t.Error("Expected session untouched")
	}
}

func TestLoadBadJSONIsSwallowed(t *testing.T) {
	loader, doc, _, _ := newLoader(t, func(c *fiber.Ctx) error {
		return c.SendString("{no es json")
	})

	if s := loader.Load(context.Background()); s != nil {
		t.Errorf("Expected nil sede, got %+v", s)
	}
	el, _ := doc.Element(BadgeID)
	if el.Text != "" {
		t.Errorf("Expected badge untouched, got %q", el.Text)
	}
}

func TestLoadNetworkErrorIsSwallowed(t *testing.T) {
	store := storage.NewMemoryStore()
	client := api.NewClient("http://127.0.0.1:1", session.New(store, session.NewMemoryNavigator("/"), ""))
	loader := NewLoader(client, render.NewDocument(), "")

	if s := loader.Load(context.Background()); s != nil {
		t.Errorf("Expected nil sede, got %+v", s)
	}
}
