package debug

import (
	"log"
	"os"
	"sync/atomic"
)

var enabled atomic.Bool

func init() {
	// Leer la variable de entorno HCE_DEBUG_DASHBOARD
	if os.Getenv("HCE_DEBUG_DASHBOARD") == "true" {
		Enable(true)
	}
}

// Enable activa o desactiva el envío de eventos al dashboard
func Enable(on bool) {
	if on && !enabled.Load() {
		log.Println("🐛 Debug Dashboard habilitado")
	}
	enabled.Store(on)
}

// IsEnabled retorna si el dashboard de debugging está habilitado
func IsEnabled() bool {
	return enabled.Load()
}

// LogDebug envía un log de nivel debug al dashboard
func LogDebug(message string, metadata map[string]interface{}) {
	if !IsEnabled() {
		return
	}
	SendLog("client", "debug", message, metadata)
}

// LogInfo envía un log de nivel info al dashboard
func LogInfo(message string, metadata map[string]interface{}) {
	if !IsEnabled() {
		return
	}
	SendLog("client", "info", message, metadata)
}

// LogWarn envía un log de nivel warn al dashboard
func LogWarn(message string, metadata map[string]interface{}) {
	if !IsEnabled() {
		return
	}
	SendLog("client", "warn", message, metadata)
}

// LogError envía un log de nivel error al dashboard
func LogError(message string, metadata map[string]interface{}) {
	if !IsEnabled() {
		return
	}
	SendLog("client", "error", message, metadata)
}

// LogRequest registra una petición HTTP hecha por el cliente. El nivel se
// decide por el status, como en el middleware del servidor.
func LogRequest(method, url string, status int, durationMs int64, requestID string) {
	if !IsEnabled() {
		return
	}

	level := "info"
	if status >= 500 || status == 0 {
		level = "error"
	} else if status >= 400 {
		level = "warn"
	}

	SendLog("http", level, method+" "+url, map[string]interface{}{
		"method":      method,
		"url":         url,
		"status":      status,
		"duration_ms": durationMs,
		"request_id":  requestID,
	})
}
