package sqlite

import (
	"database/sql"
	"log/slog"

	"github.com/tartampluch/go-contactbook/internal/config"
)

// schema holds the tables of the address book. Phones keep their list
// position so the order of a record's phones survives a round trip.
const schema = `
CREATE TABLE IF NOT EXISTS contacts (
    name TEXT PRIMARY KEY,
    birthday TEXT
);

CREATE TABLE IF NOT EXISTS phones (
    contact_name TEXT NOT NULL,
    position INTEGER NOT NULL,
    number TEXT NOT NULL,
    PRIMARY KEY (contact_name, position),
    FOREIGN KEY (contact_name) REFERENCES contacts(name) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_phones_contact_name ON phones(contact_name);
`

// runMigrations executes the schema. Every statement is idempotent.
func runMigrations(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return err
	}
	slog.Debug(config.MsgMigrations, config.LogKeyComponent, config.CompStorage)
	return nil
}
