package debug

import (
	"encoding/json"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// WebSocketHub reparte a los dashboards conectados los eventos del cliente
// HCE: peticiones del wrapper (LogRequest), logout y redirecciones de la
// sesión, fallos silenciosos de sede y errores sin manejar de la página.
// Los eventos son best-effort: con el buffer lleno se cuentan y se descartan.
type WebSocketHub struct {
	clients    map[*websocket.Conn]string
	broadcast  chan []byte
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	dropped    atomic.Uint64
	mu         sync.RWMutex
}

var (
	Hub *WebSocketHub
)

func init() {
	Hub = newHub()
	go Hub.run()
}

func newHub() *WebSocketHub {
	return &WebSocketHub{
		broadcast:  make(chan []byte, 256),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		clients:    make(map[*websocket.Conn]string),
	}
}

func (h *WebSocketHub) run() {
	for {
		select {
		case client := <-h.register:
			id := uuid.NewString()
			h.mu.Lock()
			h.clients[client] = id
			total := len(h.clients)
			h.mu.Unlock()
			log.Printf("🔌 Dashboard %s conectado. Total clientes: %d", id, total)

		case client := <-h.unregister:
			h.mu.Lock()
			id, ok := h.clients[client]
			if ok {
				delete(h.clients, client)
				client.Close()
			}
			total := len(h.clients)
			h.mu.Unlock()
			if ok {
				log.Printf("🔌 Dashboard %s desconectado. Total clientes: %d", id, total)
			}

		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				err := client.WriteMessage(websocket.TextMessage, message)
				if err != nil {
					log.Printf("Error enviando mensaje al dashboard: %v", err)
					client.Close()
					delete(h.clients, client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// ClientCount retorna cuántos dashboards están conectados
func (h *WebSocketHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Dropped retorna cuántos eventos se descartaron por buffer lleno
func (h *WebSocketHub) Dropped() uint64 {
	return h.dropped.Load()
}

// enqueue encola data sin bloquear al llamador (una petición HTTP, un
// logout). Retorna false si el evento se descartó.
func (h *WebSocketHub) enqueue(data []byte) bool {
	select {
	case h.broadcast <- data:
		return true
	default:
		h.dropped.Add(1)
		return false
	}
}

// HandleWebSocketFiber maneja las conexiones WebSocket de Fiber
func HandleWebSocketFiber(conn *websocket.Conn) {
	Hub.register <- conn

	defer func() {
		Hub.unregister <- conn
	}()

	// El dashboard no envía comandos; leer solo para detectar el cierre
	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			break
		}
	}
}

// LogMessage representa un mensaje de log para el dashboard
type LogMessage struct {
	Type      string                 `json:"type"`
	Source    string                 `json:"source"`
	Level     string                 `json:"level"`
	Message   string                 `json:"message"`
	Timestamp int64                  `json:"timestamp"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

func encodeLog(source, level, message string, metadata map[string]interface{}) ([]byte, error) {
	return json.Marshal(LogMessage{
		Type:      "log",
		Source:    source,
		Level:     level,
		Message:   message,
		Timestamp: time.Now().UnixMilli(),
		Metadata:  metadata,
	})
}

// SendLog envía un log al dashboard
func SendLog(source, level, message string, metadata map[string]interface{}) {
	if Hub == nil || Hub.ClientCount() == 0 {
		return // No hay clientes conectados
	}

	data, err := encodeLog(source, level, message, metadata)
	if err != nil {
		log.Printf("Error al serializar log para dashboard: %v", err)
		return
	}

	Hub.enqueue(data)
}
