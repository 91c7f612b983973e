package browser

import (
	"fmt"
	"log"

	"github.com/chromedp/chromedp"

	"github.com/yourorg/hceweb/internal/render"
)

// ============================================================================
// storage.Store sobre localStorage
// ============================================================================

type storageValue struct {
	Found bool   `json:"found"`
	Value string `json:"value"`
}

func (b *Browser) Get(key string) (string, bool, error) {
	var v storageValue
	if err := b.eval(storageGetJS(key), &v); err != nil {
		return "", false, fmt.Errorf("leyendo localStorage[%s]: %w", key, err)
	}
	return v.Value, v.Found, nil
}

func (b *Browser) Set(key, value string) error {
	var ok bool
	if err := b.eval(storageSetJS(key, value), &ok); err != nil {
		return fmt.Errorf("escribiendo localStorage[%s]: %w", key, err)
	}
	return nil
}

func (b *Browser) Remove(key string) error {
	var ok bool
	if err := b.eval(storageRemoveJS(key), &ok); err != nil {
		return fmt.Errorf("borrando localStorage[%s]: %w", key, err)
	}
	return nil
}

// ============================================================================
// session.Navigator
// ============================================================================

// Navigate carga baseURL+path y espera a que el documento esté listo
func (b *Browser) Navigate(path string) {
	url := b.baseURL + path
	if err := chromedp.Run(b.ctx, chromedp.Navigate(url), chromedp.WaitReady("body", chromedp.ByQuery)); err != nil {
		log.Printf("❌ [CHROME] Error navegando a %s: %v", url, err)
	}
}

func (b *Browser) CurrentPath() string {
	var path string
	if err := b.eval(currentPathJS, &path); err != nil {
		log.Printf("⚠️  [CHROME] Error leyendo ruta actual: %v", err)
		return ""
	}
	return path
}

// ============================================================================
// render.Renderer / FormScanner / Notifier
// ============================================================================

func (b *Browser) setProp(id, prop, value string) bool {
	var ok bool
	if err := b.eval(setPropJS(id, prop, value), &ok); err != nil {
		log.Printf("⚠️  [CHROME] Error actualizando #%s: %v", id, err)
		return false
	}
	return ok
}

func (b *Browser) SetText(id, text string) bool {
	return b.setProp(id, "textContent", text)
}

func (b *Browser) SetBackground(id, color string) bool {
	return b.setProp(id, "style.backgroundColor", color)
}

func (b *Browser) SetHTML(id, html string) bool {
	return b.setProp(id, "innerHTML", html)
}

type formFields struct {
	Found  bool `json:"found"`
	Fields []struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Tag   string `json:"tag"`
		Value string `json:"value"`
	} `json:"fields"`
}

func (b *Browser) RequiredFields(formID string) ([]render.Field, bool) {
	var res formFields
	if err := b.eval(requiredFieldsJS(formID), &res); err != nil {
		log.Printf("⚠️  [CHROME] Error leyendo formulario #%s: %v", formID, err)
		return nil, false
	}
	if !res.Found {
		return nil, false
	}

	fields := make([]render.Field, len(res.Fields))
	for i, f := range res.Fields {
		fields[i] = render.Field{FormID: formID, Index: i, ID: f.ID, Name: f.Name, Tag: f.Tag, Value: f.Value}
	}
	return fields, true
}

func (b *Browser) SetBorderColor(field render.Field, color string) {
	var ok bool
	if err := b.eval(borderColorJS(field.FormID, field.Index, color), &ok); err != nil {
		log.Printf("⚠️  [CHROME] Error marcando campo %d de #%s: %v", field.Index, field.FormID, err)
	}
}

// Notify muestra un alert en la página. Se lanza con setTimeout para no
// bloquear la evaluación; Open acepta el diálogo.
func (b *Browser) Notify(message string) {
	var ok bool
	if err := b.eval(alertJS(message), &ok); err != nil {
		log.Printf("⚠️  [CHROME] Error mostrando notificación: %v", err)
	}
}
