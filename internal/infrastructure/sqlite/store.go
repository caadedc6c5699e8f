// Package sqlite implementa los puertos de persistencia sobre SQLite (mattn/go-sqlite3).
// Se usa en desarrollo local y en la suite de tests; en producción se usa el adaptador
// postgres con el mismo contrato.
//
// Una sola conexión abierta: SQLite admite un escritor a la vez y las transacciones se
// abren con BEGIN IMMEDIATE (_txlock=immediate), de modo que la lectura y la escritura
// de una operación del ledger no se intercalan con otra.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// currentSchemaVersion se guarda en PRAGMA user_version.
const currentSchemaVersion = 1

// Store base de datos SQLite con el esquema del libro de activos aplicado.
type Store struct {
	db *sql.DB
}

// Open abre (o crea) la base en path. ":memory:" crea una base en memoria propia de este Store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("conectar sqlite: %w", mapError(err))
	}
	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, err
	}
	if err := applySchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func dsn(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_txlock=immediate"
}

// Close cierra la conexión.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// DB devuelve el *sql.DB subyacente (pool de una conexión).
func (s *Store) DB() *sql.DB {
	return s.db
}

// Ping verifica la conexión (usado por /health).
func (s *Store) Ping(ctx context.Context) error {
	return mapError(s.db.PingContext(ctx))
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("ejecutar %q: %w", p, err)
		}
	}
	return nil
}

func applySchema(db *sql.DB) error {
	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("leer user_version: %w", err)
	}
	if version >= currentSchemaVersion {
		return nil
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("aplicar esquema: %w", err)
	}
	if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentSchemaVersion)); err != nil {
		return fmt.Errorf("fijar user_version: %w", err)
	}
	return nil
}
