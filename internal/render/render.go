// Package render define los puertos de presentación que usan los helpers de
// página: texto y colores de elementos por id, formularios y notificaciones.
package render

// Renderer muta elementos por id. Cada método retorna false (sin hacer nada)
// si el elemento no existe.
type Renderer interface {
	SetText(id, text string) bool
	SetBackground(id, color string) bool
	SetHTML(id, html string) bool
}

// Field es un campo requerido de un formulario
type Field struct {
	FormID string
	Index  int // posición entre los campos requeridos del formulario
	ID     string
	Name   string
	Tag    string // input | select | textarea
	Value  string
}

// FormScanner da acceso a los campos requeridos de un formulario
type FormScanner interface {
	// RequiredFields retorna los campos input/select/textarea marcados como
	// requeridos, en orden de documento. found es false si no hay formulario.
	RequiredFields(formID string) (fields []Field, found bool)
	SetBorderColor(field Field, color string)
}

// Notifier muestra una notificación bloqueante al usuario
type Notifier interface {
	Notify(message string)
}
