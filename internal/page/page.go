// ============================================================================
// Page Controller
// ============================================================================
// Secuencia de carga de una página HCE: guard de navegación y, con sesión,
// nombre de usuario + badge de sede. El trabajo asíncrono pasa por Go(), cuyo
// fallo sin manejar termina en HandleUnhandled.
// ============================================================================

package page

import (
	"context"
	"log"
	"sync"

	"github.com/yourorg/hceweb/internal/api"
	"github.com/yourorg/hceweb/internal/debug"
	"github.com/yourorg/hceweb/internal/models"
	"github.com/yourorg/hceweb/internal/render"
	"github.com/yourorg/hceweb/internal/sede"
	"github.com/yourorg/hceweb/internal/session"
)

// UserNameID es el id del elemento con el nombre del usuario
const UserNameID = "userName"

// Controller agrupa la sesión, el cliente y la superficie de render de una página
type Controller struct {
	client *api.Client
	sess   *session.Session
	r      render.Renderer
	sede   *sede.Loader

	wg sync.WaitGroup
}

// New crea el controlador. sedePath vacío usa "/auth/sede".
func New(client *api.Client, r render.Renderer, sedePath string) *Controller {
	return &Controller{
		client: client,
		sess:   client.Session(),
		r:      r,
		sede:   sede.NewLoader(client, r, sedePath),
	}
}

// CheckAuth redirige a login si no hay sesión. Retorna true si redirigió.
func (c *Controller) CheckAuth() bool {
	return c.sess.CheckAuth()
}

// UpdateUserDisplay escribe "{nombres o username} ({rol})" en #userName. Sin
// usuario guardado no hace nada; un usuario ilegible se retorna como error.
func (c *Controller) UpdateUserDisplay() error {
	user, err := c.sess.User()
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}
	c.r.SetText(UserNameID, user.Label())
	return nil
}

// LoadSedeInfo carga y pinta la sede; los fallos se registran y se descartan
func (c *Controller) LoadSedeInfo(ctx context.Context) *models.Sede {
	return c.sede.Load(ctx)
}

// UpdateSedeDisplay pinta s en el badge de sede
func (c *Controller) UpdateSedeDisplay(s models.Sede) {
	sede.UpdateDisplay(c.r, s)
}

// OnLoad corre la secuencia de carga: guard y, si hay sesión, nombre de
// usuario (síncrono) y sede (asíncrona). Wait() espera la parte asíncrona.
// Un usuario guardado ilegible corta la secuencia: la sede no se pide.
func (c *Controller) OnLoad(ctx context.Context) {
	c.CheckAuth()
	if !c.sess.IsAuthenticated() {
		return
	}

	if err := c.UpdateUserDisplay(); err != nil {
		c.HandleUnhandled(err)
		return
	}

	c.Go(ctx, func(ctx context.Context) error {
		c.LoadSedeInfo(ctx)
		return nil
	})
}

// Go ejecuta fn en una goroutine. Un error que fn no maneje llega a
// HandleUnhandled, igual que una promesa rechazada sin catch.
func (c *Controller) Go(ctx context.Context, fn func(ctx context.Context) error) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		if err := fn(ctx); err != nil {
			c.HandleUnhandled(err)
		}
	}()
}

// Wait bloquea hasta que termine todo el trabajo lanzado con Go
func (c *Controller) Wait() {
	c.wg.Wait()
}

// HandleUnhandled registra un fallo asíncrono sin manejar y cierra la sesión
// solo si es una sesión expirada. Retorna true si cerró sesión.
func (c *Controller) HandleUnhandled(err error) bool {
	if err == nil {
		return false
	}
	log.Printf("❌ [PAGE] Error sin manejar: %v", err)
	debug.LogError("Unhandled error", map[string]interface{}{"error": err.Error()})

	if !api.IsSessionExpired(err) {
		return false
	}
	c.sess.Logout()
	return true
}
