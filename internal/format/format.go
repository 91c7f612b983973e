// Package format convierte fechas a texto según las convenciones es-CO.
package format

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // America/Bogota aunque el sistema no traiga zoneinfo

	"golang.org/x/text/language"
)

// InvalidDate es lo que se muestra cuando la entrada no es una fecha
const InvalidDate = "Invalid Date"

var months = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// layouts aceptados, del más al menos específico
var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// DefaultZone es la zona del formatter por defecto
const DefaultZone = "America/Bogota"

// Formatter formatea fechas en español para una zona horaria
type Formatter struct {
	tag language.Tag
	loc *time.Location
}

// NewFormatter crea un formatter para locale (solo variantes de "es") en loc.
func NewFormatter(locale string, loc *time.Location) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("locale inválido %q: %w", locale, err)
	}
	if base, _ := tag.Base(); base.String() != "es" {
		return nil, fmt.Errorf("locale no soportado: %s", tag)
	}
	if loc == nil {
		loc = time.Local
	}
	return &Formatter{tag: tag, loc: loc}, nil
}

// Locale retorna la etiqueta BCP 47 del formatter
func (f *Formatter) Locale() string {
	return f.tag.String()
}

// Parse interpreta value. Las fechas sin zona se toman en la zona del
// formatter; las que traen offset se convierten a ella.
func (f *Formatter) Parse(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range layouts {
		t, err := time.ParseInLocation(layout, value, f.loc)
		if err == nil {
			return t.In(f.loc), true
		}
	}
	return time.Time{}, false
}

// Date formatea t como "5 de marzo de 2024"
func (f *Formatter) Date(t time.Time) string {
	t = t.In(f.loc)
	return fmt.Sprintf("%d de %s de %d", t.Day(), months[t.Month()-1], t.Year())
}

// DateTime formatea t como "5 de marzo de 2024, 02:30 p. m."
func (f *Formatter) DateTime(t time.Time) string {
	t = t.In(f.loc)

	hour := t.Hour() % 12
	if hour == 0 {
		hour = 12
	}
	period := "a. m."
	if t.Hour() >= 12 {
		period = "p. m."
	}
	return fmt.Sprintf("%s, %02d:%02d %s", f.Date(t), hour, t.Minute(), period)
}

// FormatDate formatea un string de fecha; entrada inválida → "Invalid Date"
func (f *Formatter) FormatDate(value string) string {
	t, ok := f.Parse(value)
	if !ok {
		return InvalidDate
	}
	return f.Date(t)
}

// FormatDateTime formatea un string de fecha y hora; entrada inválida → "Invalid Date"
func (f *Formatter) FormatDateTime(value string) string {
	t, ok := f.Parse(value)
	if !ok {
		return InvalidDate
	}
	return f.DateTime(t)
}

var defaultFormatter = mustDefault()

func mustDefault() *Formatter {
	loc, err := time.LoadLocation(DefaultZone)
	if err != nil {
		loc = time.Local
	}
	f, err := NewFormatter("es-CO", loc)
	if err != nil {
		panic(err)
	}
	return f
}

// FormatDate formatea con el formatter es-CO / America/Bogota.
// Una fecha sola ("2024-03-05") se toma como medianoche en Bogotá; el
// navegador la toma como medianoche UTC y en Bogotá mostraría el día anterior.
func FormatDate(value string) string {
	return defaultFormatter.FormatDate(value)
}

// FormatDateTime formatea con el formatter es-CO / America/Bogota
func FormatDateTime(value string) string {
	return defaultFormatter.FormatDateTime(value)
}
