package browser

import (
	"encoding/json"
	"fmt"
	"strings"
)

// requiredSelector son los controles que cuentan para la validación de formularios
const requiredSelector = `input[required], select[required], textarea[required]`

// jsArgs serializa cada argumento como literal JavaScript (JSON es un
// subconjunto válido), así ningún valor puede romper el script.
func jsArgs(args ...interface{}) []interface{} {
	out := make([]interface{}, len(args))
	for i, arg := range args {
		raw, err := json.Marshal(arg)
		if err != nil {
			raw = []byte("null")
		}
		out[i] = string(raw)
	}
	return out
}

// iife arma una función autoejecutable con los argumentos ya serializados
func iife(body string, args ...interface{}) string {
	return fmt.Sprintf("(function(){"+body+"})()", jsArgs(args...)...)
}

func storageGetJS(key string) string {
	return iife(`const v = window.localStorage.getItem(%s); return v === null ? {found: false, value: ""} : {found: true, value: v};`, key)
}

func storageSetJS(key, value string) string {
	return iife(`window.localStorage.setItem(%s, %s); return true;`, key, value)
}

func storageRemoveJS(key string) string {
	return iife(`window.localStorage.removeItem(%s); return true;`, key)
}

// setPropJS asigna el valor a una propiedad (ruta con puntos) del elemento id
func setPropJS(id, prop, value string) string {
	target := "el." + strings.TrimPrefix(prop, ".")
	return iife(`const el = document.getElementById(%s); if (!el) return false; `+target+` = %s; return true;`, id, value)
}

func requiredFieldsJS(formID string) string {
	return iife(`const form = document.getElementById(%s); if (!form) return {found: false, fields: []};
const fields = Array.from(form.querySelectorAll(%s)).map(function(el){
  return {id: el.id || "", name: el.name || "", tag: el.tagName.toLowerCase(), value: el.value || ""};
});
return {found: true, fields: fields};`, formID, requiredSelector)
}

func borderColorJS(formID string, index int, color string) string {
	return iife(`const form = document.getElementById(%s); if (!form) return false;
const el = form.querySelectorAll(%s)[%s]; if (!el) return false;
el.style.borderColor = %s; return true;`, formID, requiredSelector, index, color)
}

func alertJS(message string) string {
	return iife(`window.setTimeout(function(){ window.alert(%s); }, 0); return true;`, message)
}

const currentPathJS = `window.location.pathname + window.location.search`
