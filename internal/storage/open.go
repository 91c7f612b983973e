package storage

import (
	"io"
	"log"

	"github.com/yourorg/hceweb/internal/db"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open crea el Store indicado por driver (memory, sqlite3 o mysql).
// El io.Closer libera la conexión de base de datos cuando la hay.
func Open(driver, dsn, namespace string) (Store, io.Closer, error) {
	if driver == "" || driver == "memory" {
		log.Println("💾 Sesión en memoria (se pierde al salir)")
		return NewMemoryStore(), nopCloser{}, nil
	}

	conn, err := db.Connect(driver, dsn)
	if err != nil {
		return nil, nil, err
	}
	if err := db.EnsureSchema(conn); err != nil {
		conn.Close()
		return nil, nil, err
	}
	log.Printf("💾 Sesión persistente en %s (namespace %q)", driver, namespace)
	return NewSQLStore(conn, namespace), conn, nil
}
