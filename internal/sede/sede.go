// Package sede carga la sede del usuario y la pinta en el badge de cabecera.
package sede

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/yourorg/hceweb/internal/api"
	"github.com/yourorg/hceweb/internal/debug"
	"github.com/yourorg/hceweb/internal/models"
	"github.com/yourorg/hceweb/internal/render"
)

// BadgeID es el id del elemento que muestra la sede
const BadgeID = "sedeBadge"

// cityColor asocia una ciudad (en minúsculas) con el color del badge.
// El orden importa: gana la primera coincidencia.
type cityColor struct {
	city  string
	color string
}

var cityColors = []cityColor{
	{"bogotá", "#e74c3c"},
	{"medellín", "#3498db"},
	{"cali", "#27ae60"},
}

// ColorFor retorna el color del badge para ciudad, o "" si no hay coincidencia
func ColorFor(ciudad string) string {
	// Un Caser no se comparte entre goroutines
	city := cases.Lower(language.Spanish).String(ciudad)
	for _, cc := range cityColors {
		if strings.Contains(city, cc.city) {
			return cc.color
		}
	}
	return ""
}

// UpdateDisplay pinta la sede en el badge: texto "{nombre} - {ciudad}" y
// color por ciudad. Sin coincidencia de ciudad el color previo se conserva.
// No hace nada si el badge no existe.
func UpdateDisplay(r render.Renderer, s models.Sede) {
	if !r.SetText(BadgeID, s.Badge()) {
		return
	}
	if color := ColorFor(s.Ciudad); color != "" {
		r.SetBackground(BadgeID, color)
	}
}

// Loader pide la sede al backend y la pinta
type Loader struct {
	client *api.Client
	path   string
	r      render.Renderer
}

// NewLoader crea un loader; path vacío usa "/auth/sede"
func NewLoader(client *api.Client, r render.Renderer, path string) *Loader {
	if path == "" {
		path = "/auth/sede"
	}
	return &Loader{client: client, path: path, r: r}
}

// Load hace un único GET a la ruta de sede con el Bearer de la sesión. Una
// respuesta no-ok se ignora en silencio (tampoco cierra sesión); un error de
// red o de decodificación se registra y se descarta. Nunca reintenta.
// Retorna la sede pintada o nil.
func (l *Loader) Load(ctx context.Context) *models.Sede {
	resp, err := l.client.Send(ctx, http.MethodGet, l.path, nil)
	if err != nil {
		logFailure(err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil
	}

	var s models.Sede
	if err := json.NewDecoder(resp.Body).Decode(&s); err != nil {
		logFailure(err)
		return nil
	}

	UpdateDisplay(l.r, s)
	return &s
}

func logFailure(err error) {
	log.Printf("Error cargando información de sede: %v", err)
	debug.LogError("Error cargando información de sede", map[string]interface{}{"error": err.Error()})
}
