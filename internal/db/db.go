package db

import (
	"fmt"
	"log"
	"os"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// Drivers soportados para los slots persistentes.
const (
	DriverSQLite = "sqlite3"
	DriverMySQL  = "mysql"
)

// Connect abre la base de datos de slots. Para MariaDB/MySQL sin DSN explícito
// arma el DSN con las variables DB_*.
func Connect(driver, dsn string) (*sqlx.DB, error) {
	switch driver {
	case DriverSQLite:
		if dsn == "" {
			dsn = "hce_session.db"
		}
	case DriverMySQL:
		if dsn == "" {
			dsn = mysqlDSNFromEnv()
		}
	default:
		return nil, fmt.Errorf("driver de almacenamiento no soportado: %q", driver)
	}

	conn, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("abriendo %s: %w", driver, err)
	}
	if driver == DriverSQLite {
		// sqlite no admite escritores concurrentes y ":memory:" es por conexión
		conn.SetMaxOpenConns(1)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("conectando a %s: %w", driver, err)
	}
	return conn, nil
}

func mysqlDSNFromEnv() string {
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASS")
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	name := os.Getenv("DB_NAME")
	if host == "" {
		host = "127.0.0.1"
	}
	if port == "" {
		port = "3306"
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4,utf8", user, pass, host, port, name)
}

// EnsureSchema creates the slot table if not exists.
func EnsureSchema(conn *sqlx.DB) error {
	if skip := strings.TrimSpace(os.Getenv("DB_SKIP_SCHEMA")); strings.EqualFold(skip, "true") || skip == "1" {
		log.Printf("EnsureSchema: skipped (DB_SKIP_SCHEMA=%q)", skip)
		return nil
	}

	ddl := `
		CREATE TABLE IF NOT EXISTS hce_session_slots (
			namespace TEXT NOT NULL,
			slot_key TEXT NOT NULL,
			slot_value TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (namespace, slot_key)
		);
	`
	if conn.DriverName() == DriverMySQL {
		ddl = `
		CREATE TABLE IF NOT EXISTS hce_session_slots (
			namespace VARCHAR(100) NOT NULL,
			slot_key VARCHAR(64) NOT NULL,
			slot_value TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			PRIMARY KEY (namespace, slot_key)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;
	`
	}

	if _, err := conn.Exec(ddl); err != nil {
		return fmt.Errorf("creando hce_session_slots: %w", err)
	}
	return nil
}
