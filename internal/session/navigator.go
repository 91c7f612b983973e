package session

import "sync"

// MemoryNavigator es un Navigator sin navegador real: guarda la ruta actual y
// el historial de navegaciones. Lo usan la CLI y los tests.
type MemoryNavigator struct {
	mu      sync.Mutex
	current string
	history []string
}

// NewMemoryNavigator crea un navegador posicionado en path.
func NewMemoryNavigator(path string) *MemoryNavigator {
	return &MemoryNavigator{current: path}
}

func (n *MemoryNavigator) Navigate(path string) {
	n.mu.Lock()
	n.current = path
	n.history = append(n.history, path)
	n.mu.Unlock()
}

func (n *MemoryNavigator) CurrentPath() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// History retorna una copia de las rutas navegadas, en orden.
func (n *MemoryNavigator) History() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.history...)
}
