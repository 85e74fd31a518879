package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed server/*.sql
var serverMigrations embed.FS

//go:embed client/*.sql
var clientMigrations embed.FS

// Server applies the server schema migrations (users, profiles,
// learning_paths) to the given SQLite database.
func Server(db *sql.DB) error {
	return up(db, serverMigrations, "server")
}

// Client applies the client local store migrations (local_users, local_kv)
// to the given SQLite database.
func Client(db *sql.DB) error {
	return up(db, clientMigrations, "client")
}

func up(db *sql.DB, fsys embed.FS, dir string) error {
	goose.SetBaseFS(fsys)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
