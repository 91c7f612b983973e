package render

import (
	"fmt"
	"io"
	"sort"
	"sync"
)

// Element es un nodo del documento en memoria
type Element struct {
	ID          string
	Tag         string
	Text        string
	HTML        string
	Background  string
	BorderColor string
	Name        string
	Value       string
	Required    bool
}

// Document es una superficie de render en memoria, segura para uso
// concurrente. Implementa Renderer y FormScanner.
type Document struct {
	mu       sync.RWMutex
	elements map[string]*Element
	forms    map[string][]*Element
}

// NewDocument crea un documento con los elementos dados
func NewDocument(elements ...*Element) *Document {
	d := &Document{
		elements: make(map[string]*Element),
		forms:    make(map[string][]*Element),
	}
	for _, el := range elements {
		d.Add(el)
	}
	return d
}

// Add agrega (o reemplaza) un elemento por id
func (d *Document) Add(el *Element) {
	d.mu.Lock()
	d.elements[el.ID] = el
	d.mu.Unlock()
}

// AddForm registra un formulario con sus campos en orden de documento
func (d *Document) AddForm(formID string, fields ...*Element) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.elements[formID] = &Element{ID: formID, Tag: "form"}
	d.forms[formID] = fields
	for _, field := range fields {
		if field.ID != "" {
			d.elements[field.ID] = field
		}
	}
}

// Element retorna una copia del elemento id
func (d *Document) Element(id string) (Element, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	el, ok := d.elements[id]
	if !ok {
		return Element{}, false
	}
	return *el, true
}

func (d *Document) SetText(id, text string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	el, ok := d.elements[id]
	if !ok {
		return false
	}
	el.Text = text
	el.HTML = ""
	return true
}

func (d *Document) SetBackground(id, color string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	el, ok := d.elements[id]
	if !ok {
		return false
	}
	el.Background = color
	return true
}

func (d *Document) SetHTML(id, html string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	el, ok := d.elements[id]
	if !ok {
		return false
	}
	el.HTML = html
	el.Text = ""
	return true
}

func isFormControl(tag string) bool {
	return tag == "input" || tag == "select" || tag == "textarea"
}

func (d *Document) RequiredFields(formID string) ([]Field, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	controls, ok := d.forms[formID]
	if !ok {
		return nil, false
	}

	fields := make([]Field, 0, len(controls))
	for _, el := range controls {
		if !el.Required || !isFormControl(el.Tag) {
			continue
		}
		fields = append(fields, Field{
			FormID: formID,
			Index:  len(fields),
			ID:     el.ID,
			Name:   el.Name,
			Tag:    el.Tag,
			Value:  el.Value,
		})
	}
	return fields, true
}

func (d *Document) SetBorderColor(field Field, color string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	idx := 0
	for _, el := range d.forms[field.FormID] {
		if !el.Required || !isFormControl(el.Tag) {
			continue
		}
		if idx == field.Index {
			el.BorderColor = color
			return
		}
		idx++
	}
}

// WriteTo imprime los elementos con contenido, ordenados por id
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	d.mu.RLock()
	ids := make([]string, 0, len(d.elements))
	for id := range d.elements {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var lines []string
	for _, id := range ids {
		el := d.elements[id]
		content := el.Text
		if el.HTML != "" {
			content = el.HTML
		}
		if content == "" && el.Background == "" {
			continue
		}
		line := fmt.Sprintf("#%s: %s", id, content)
		if el.Background != "" {
			line += fmt.Sprintf(" [fondo %s]", el.Background)
		}
		lines = append(lines, line)
	}
	d.mu.RUnlock()

	var total int64
	for _, line := range lines {
		n, err := fmt.Fprintln(w, line)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// WriterNotifier imprime las notificaciones en un io.Writer (terminal)
type WriterNotifier struct {
	W io.Writer
}

func (n WriterNotifier) Notify(message string) {
	fmt.Fprintf(n.W, "🔔 %s\n", message)
}
