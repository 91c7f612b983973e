package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// SQLStore guarda los slots en la tabla hce_session_slots (sqlite3 o MySQL).
// El namespace separa sesiones de distintos puestos que comparten la base.
type SQLStore struct {
	db        *sqlx.DB
	namespace string
}

// NewSQLStore crea un store sobre una conexión ya migrada (ver db.EnsureSchema)
func NewSQLStore(conn *sqlx.DB, namespace string) *SQLStore {
	if namespace == "" {
		namespace = "default"
	}
	return &SQLStore{db: conn, namespace: namespace}
}

// Get lee un slot; una fila ausente no es error.
func (s *SQLStore) Get(key string) (string, bool, error) {
	var value string
	err := s.db.Get(&value, s.db.Rebind(`SELECT slot_value FROM hce_session_slots WHERE namespace = ? AND slot_key = ?`), s.namespace, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("leyendo slot %q: %w", key, err)
	}
	return value, true, nil
}

// Set reemplaza el slot dentro de una transacción (DELETE + INSERT funciona
// igual en sqlite3 y MySQL).
func (s *SQLStore) Set(key, value string) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return fmt.Errorf("iniciando transacción: %w", err)
	}
	if _, err := tx.Exec(tx.Rebind(`DELETE FROM hce_session_slots WHERE namespace = ? AND slot_key = ?`), s.namespace, key); err != nil {
		tx.Rollback()
		return fmt.Errorf("reemplazando slot %q: %w", key, err)
	}
	if _, err := tx.Exec(tx.Rebind(`INSERT INTO hce_session_slots (namespace, slot_key, slot_value) VALUES (?, ?, ?)`), s.namespace, key, value); err != nil {
		tx.Rollback()
		return fmt.Errorf("guardando slot %q: %w", key, err)
	}
	return tx.Commit()
}

// Remove borra el slot; no falla si no existe.
func (s *SQLStore) Remove(key string) error {
	if _, err := s.db.Exec(s.db.Rebind(`DELETE FROM hce_session_slots WHERE namespace = ? AND slot_key = ?`), s.namespace, key); err != nil {
		return fmt.Errorf("borrando slot %q: %w", key, err)
	}
	return nil
}
