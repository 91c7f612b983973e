package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"golang.org/x/crypto/ssh/terminal"

	"github.com/yourorg/hceweb/internal/api"
	"github.com/yourorg/hceweb/internal/config"
	"github.com/yourorg/hceweb/internal/debug"
	"github.com/yourorg/hceweb/internal/format"
	"github.com/yourorg/hceweb/internal/page"
	"github.com/yourorg/hceweb/internal/render"
	"github.com/yourorg/hceweb/internal/sede"
	"github.com/yourorg/hceweb/internal/session"
	"github.com/yourorg/hceweb/internal/storage"
	"github.com/yourorg/hceweb/internal/ui"
	"github.com/yourorg/hceweb/internal/validation"
)

const (
	contentID  = "content"
	passwordID = "changePasswordForm"
)

type cli struct {
	cfg    config.Config
	reader *bufio.Reader
	client *api.Client
	sess   *session.Session
	ctrl   *page.Controller
	doc    *render.Document
	nav    *session.MemoryNavigator
	dates  *format.Formatter
	notify render.Notifier
}

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.DebugDashboard {
		debug.Enable(true)
		go func() {
			log.Printf("🐛 Dashboard de debug en :%s/debug/ws", cfg.DebugPort)
			if err := debug.NewDashboardApp().Listen(":" + cfg.DebugPort); err != nil {
				log.Printf("⚠️  Dashboard de debug detenido: %v", err)
			}
		}()
	}

	store, closer, err := storage.Open(cfg.StorageDriver, cfg.StorageDSN, "cli")
	if err != nil {
		log.Fatalf("❌ Error abriendo almacenamiento de sesión: %v", err)
	}
	defer closer.Close()

	dates, err := format.NewFormatter("es-CO", cfg.Location())
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	nav := session.NewMemoryNavigator(cfg.LoginPath)
	sess := session.New(store, nav, cfg.LoginPath)
	client := api.NewClient(cfg.BaseURL, sess,
		api.WithTimeout(cfg.RequestTimeout),
		api.WithAuthPaths(cfg.TokenPath, cfg.MePath),
	)
	doc := render.NewDocument(
		&render.Element{ID: page.UserNameID},
		&render.Element{ID: sede.BadgeID},
		&render.Element{ID: contentID},
	)

	c := &cli{
		cfg:    cfg,
		reader: bufio.NewReader(os.Stdin),
		client: client,
		sess:   sess,
		ctrl:   page.New(client, doc, cfg.SedePath),
		doc:    doc,
		nav:    nav,
		dates:  dates,
		notify: render.WriterNotifier{W: os.Stdout},
	}

	// Si quedó una sesión guardada, entrar como lo haría la página
	if sess.IsAuthenticated() {
		nav.Navigate(session.DashboardPath(c.currentRol()))
		c.ctrl.OnLoad(ctx)
		c.ctrl.Wait()
	}

	for {
		fmt.Println("==== HCE CLI ====")
		fmt.Printf("Ruta actual: %s\n", nav.CurrentPath())
		fmt.Println("1) Iniciar sesión")
		fmt.Println("2) Ver sesión")
		fmt.Println("3) Cargar sede")
		fmt.Println("4) GET autorizado")
		fmt.Println("5) Cambiar contraseña")
		fmt.Println("6) Formatear fecha")
		fmt.Println("7) Cerrar sesión")
		fmt.Println("8) Salir")
		fmt.Print("Seleccione opción: ")
		choice, err := c.reader.ReadString('\n')
		if err != nil {
			fmt.Println()
			return
		}
		switch strings.TrimSpace(choice) {
		case "1":
			c.doLogin(ctx)
		case "2":
			c.doShowSession()
		case "3":
			c.doLoadSede(ctx)
		case "4":
			c.doGet(ctx)
		case "5":
			c.doChangePassword(ctx)
		case "6":
			c.doFormatDate()
		case "7":
			c.sess.Logout()
			fmt.Println("Sesión cerrada")
		case "8":
			fmt.Println("Hasta luego")
			return
		default:
			fmt.Println("Opción inválida")
		}
		if ctx.Err() != nil {
			return
		}
		fmt.Println()
	}
}

func (c *cli) prompt(label string) string {
	fmt.Print(label)
	line, _ := c.reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func (c *cli) promptSecret(label string) string {
	fmt.Print(label)
	fd := int(os.Stdin.Fd())
	if !terminal.IsTerminal(fd) {
		return c.prompt("")
	}
	raw, err := terminal.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		log.Printf("⚠️  Error leyendo contraseña: %v", err)
		return ""
	}
	return string(raw)
}

func (c *cli) currentRol() string {
	user, err := c.sess.User()
	if err != nil || user == nil {
		return ""
	}
	return user.Rol
}

// render imprime el documento y limpia el área de contenido
func (c *cli) render() {
	if _, err := c.doc.WriteTo(os.Stdout); err != nil {
		log.Printf("⚠️  Error imprimiendo documento: %v", err)
	}
	c.doc.SetText(contentID, "")
}

// report muestra err en el área de contenido. Los errores que no maneja la
// opción llegan al handler de fallos sin manejar, que cierra sesión si expiró.
func (c *cli) report(err error) {
	var failed *api.RequestFailedError
	if errors.As(err, &failed) {
		ui.ShowError(c.doc, contentID, failed.Message)
	} else {
		ui.ShowError(c.doc, contentID, err.Error())
	}
	c.ctrl.HandleUnhandled(err)
	c.render()
}

func (c *cli) doLogin(ctx context.Context) {
	username := c.prompt("Usuario: ")
	password := c.promptSecret("Contraseña: ")

	ui.ShowLoading(c.doc, contentID)
	user, err := c.client.Login(ctx, username, password)
	if err != nil {
		c.report(err)
		return
	}

	c.nav.Navigate(session.DashboardPath(user.Rol))
	c.ctrl.OnLoad(ctx)
	c.ctrl.Wait()
	ui.ShowSuccess(c.notify, fmt.Sprintf("Bienvenido, %s", user.DisplayName()))
	c.render()
}

func (c *cli) doShowSession() {
	if !c.sess.IsAuthenticated() {
		fmt.Println("Sin sesión activa")
		return
	}

	user, err := c.sess.User()
	if err != nil {
		fmt.Println("Usuario guardado inválido:", err)
	} else if user != nil {
		fmt.Println("Usuario:", user.Label())
		if user.Email != "" {
			fmt.Println("Email:", user.Email)
		}
	}

	claims, err := c.sess.Claims()
	if err != nil {
		fmt.Println("Token no decodificable:", err)
		return
	}
	fmt.Println("Subject:", claims.Subject)
	if exp := claims.Expiry(); !exp.IsZero() {
		estado := "vigente"
		if claims.Expired(time.Now()) {
			estado = "expirado"
		}
		fmt.Printf("Expira: %s (%s)\n", c.dates.DateTime(exp), estado)
	}
}

func (c *cli) doLoadSede(ctx context.Context) {
	if c.ctrl.CheckAuth() {
		fmt.Println("Sin sesión: redirigido a", c.nav.CurrentPath())
		return
	}
	if s := c.ctrl.LoadSedeInfo(ctx); s == nil {
		fmt.Println("No se pudo cargar la sede")
	}
	c.render()
}

func (c *cli) doGet(ctx context.Context) {
	path := c.prompt("Ruta (ej. /auth/me): ")
	if path == "" {
		return
	}

	ui.ShowLoading(c.doc, contentID)
	resp, err := c.client.Request(ctx, path, nil)
	if err != nil {
		c.report(err)
		return
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		c.report(fmt.Errorf("leyendo respuesta: %w", err))
		return
	}
	c.doc.SetText(contentID, string(body))
	c.render()
}

func (c *cli) doChangePassword(ctx context.Context) {
	current := &render.Element{ID: "currentPassword", Tag: "input", Name: "current_password", Required: true}
	next := &render.Element{ID: "newPassword", Tag: "input", Name: "new_password", Required: true}
	c.doc.AddForm(passwordID, current, next)

	current.Value = c.promptSecret("Contraseña actual: ")
	next.Value = c.promptSecret("Nueva contraseña: ")

	if !validation.ValidateForm(c.doc, passwordID) {
		missing := validation.MissingFields(c.doc, passwordID)
		ui.ShowError(c.doc, contentID, "Campos requeridos: "+strings.Join(missing, ", "))
		c.render()
		return
	}

	ui.ShowLoading(c.doc, contentID)
	msg, err := c.client.ChangePassword(ctx, current.Value, next.Value)
	if err != nil {
		c.report(err)
		return
	}
	c.doc.SetText(contentID, "")
	ui.ShowSuccess(c.notify, msg)
}

func (c *cli) doFormatDate() {
	value := c.prompt("Fecha (ej. 2024-03-05 o 2024-03-05T14:30:00): ")
	fmt.Println("Fecha:      ", c.dates.FormatDate(value))
	fmt.Println("Fecha y hora:", c.dates.FormatDateTime(value))
}
