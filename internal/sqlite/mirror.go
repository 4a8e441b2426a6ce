// Package sqlite mirrors the relational fixtures into an in-memory SQLite
// database and answers the join and aggregate queries in SQL.
//
// The mirror is an independent second engine: Verify runs each SQL query
// beside its Go counterpart and reports any disagreement.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/prototypes/pkg/types"
)

// Mirror is an in-memory SQLite copy of one fixture context.
type Mirror struct {
	db *sql.DB
}

// Open creates a private in-memory database, builds the schema and loads
// the mirrored collections of fx. Collections that are not loaded leave
// their tables empty.
func Open(fx *types.Fixtures) (*Mirror, error) {
	dsn := fmt.Sprintf("file:prototypes-%s?mode=memory&cache=shared", uuid.NewString())
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening mirror: %w", err)
	}
	// One connection keeps the in-memory database alive for the Mirror's
	// lifetime.
	db.SetMaxOpenConns(1)

	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("creating schema: %w", err)
		}
	}
	if fx != nil {
		if err := loadFixtures(db, fx); err != nil {
			db.Close()
			return nil, err
		}
	}
	return &Mirror{db: db}, nil
}

// Close releases the database. The mirror's contents are discarded.
func (m *Mirror) Close() error {
	if m.db == nil {
		return nil
	}
	err := m.db.Close()
	m.db = nil
	return err
}

// RowCount returns the number of rows in table.
func (m *Mirror) RowCount(table string) (int, error) {
	var n int
	// Table names come from the fixed schema, never from user input.
	if err := m.db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting %s: %w", table, err)
	}
	return n, nil
}
