package validation

import (
	"strings"

	"github.com/yourorg/hceweb/internal/render"
)

// Colores de borde que aplica ValidateForm (variables CSS de la hoja HCE)
const (
	InvalidBorder = "var(--danger-color)"
	ValidBorder   = "var(--border-color)"
)

// ValidateForm recorre los campos requeridos (input, select, textarea) del
// formulario formID. Los que están vacíos tras recortar espacios se marcan con
// InvalidBorder y hacen fallar la validación; el resto se limpia con
// ValidBorder. Un formulario inexistente no es válido.
func ValidateForm(forms render.FormScanner, formID string) bool {
	fields, found := forms.RequiredFields(formID)
	if !found {
		return false
	}

	valid := true
	for _, field := range fields {
		if strings.TrimSpace(field.Value) == "" {
			forms.SetBorderColor(field, InvalidBorder)
			valid = false
		} else {
			forms.SetBorderColor(field, ValidBorder)
		}
	}
	return valid
}

// MissingFields retorna los nombres de los campos requeridos vacíos, sin
// tocar la presentación.
func MissingFields(forms render.FormScanner, formID string) []string {
	fields, _ := forms.RequiredFields(formID)

	var missing []string
	for _, field := range fields {
		if strings.TrimSpace(field.Value) == "" {
			missing = append(missing, field.Name)
		}
	}
	return missing
}
