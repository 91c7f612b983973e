// Package ui tiene los helpers de estado visual (cargando, error, éxito).
package ui

import (
	"html"

	"github.com/yourorg/hceweb/internal/render"
)

// LoadingHTML es el marcador que ShowLoading pone en el elemento
const LoadingHTML = `<div class="loading">Cargando...</div>`

// ShowLoading reemplaza el contenido de elementID por el marcador de carga
func ShowLoading(r render.Renderer, elementID string) bool {
	return r.SetHTML(elementID, LoadingHTML)
}

// ShowError reemplaza el contenido de elementID por el mensaje de error. El
// mensaje se escapa: suele venir del detail del backend.
func ShowError(r render.Renderer, elementID, message string) bool {
	return r.SetHTML(elementID, `<div class="error-message">`+html.EscapeString(message)+`</div>`)
}

// ShowSuccess muestra una notificación bloqueante.
// TODO: reemplazar por un toast no bloqueante cuando las páginas lo soporten.
func ShowSuccess(n render.Notifier, message string) {
	n.Notify(message)
}
