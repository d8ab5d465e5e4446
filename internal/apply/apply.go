// Package apply executes generated DDL statements against a SQLite database
// and journals what has been applied so reapplication is a no-op.
package apply

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/tabledef/tabledef/pkg/ddl"
)

// journalTable is the journal's own schema, built with the same library it
// records statements for.
var journalTable = ddl.NewTable("ddl_journal",
	ddl.NewColumn("id", ddl.Text, ddl.PrimaryKey, ddl.NotNull),
	ddl.NewColumn("statement", ddl.Text, ddl.NotNull, ddl.Unique),
	ddl.NewColumn("applied_at", ddl.Integer, ddl.NotNull),
)

// Entry is one journaled statement.
type Entry struct {
	ID        string
	Statement string
	AppliedAt time.Time
}

// Applier executes DDL statements against one SQLite database.
type Applier struct {
	db *sql.DB
}

// Open opens or creates the target database and ensures the journal exists.
func Open(dbPath string) (*Applier, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("apply: failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1) // Single writer

	var count int
	err = db.QueryRow(
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?",
		journalTable.Name()).Scan(&count)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("apply: failed to inspect database: %w", err)
	}
	if count == 0 {
		if _, err := db.Exec(journalTable.CreateSQL()); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply: failed to initialize journal: %w", err)
		}
	}

	return &Applier{db: db}, nil
}

// Close closes the database connection.
func (a *Applier) Close() error {
	return a.db.Close()
}

// Apply executes each statement that is not yet journaled, inside a single
// transaction, and records it in the journal. Statements already journaled
// (matched by exact text) are skipped. Returns the number of statements
// executed.
func (a *Applier) Apply(ctx context.Context, statements []string) (int, error) {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("apply: failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	applied := 0
	for _, stmt := range statements {
		var exists int
		err := tx.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM ddl_journal WHERE statement = ?", stmt).Scan(&exists)
		if err != nil {
			return 0, fmt.Errorf("apply: failed to check journal: %w", err)
		}
		if exists > 0 {
			continue
		}

		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return 0, fmt.Errorf("apply: failed to execute %q: %w", stmt, err)
		}

		if _, err := tx.ExecContext(ctx,
			"INSERT INTO ddl_journal (id, statement, applied_at) VALUES (?, ?, ?)",
			uuid.New().String(), stmt, time.Now().Unix()); err != nil {
			return 0, fmt.Errorf("apply: failed to journal statement: %w", err)
		}
		applied++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("apply: failed to commit: %w", err)
	}
	return applied, nil
}

// ApplyTables renders and applies the CREATE TABLE statement of each table,
// in order.
func (a *Applier) ApplyTables(ctx context.Context, tables []*ddl.TableDef) (int, error) {
	statements := make([]string, len(tables))
	for i, t := range tables {
		statements[i] = t.CreateSQL()
	}
	return a.Apply(ctx, statements)
}

// Applied returns the journaled statements in application order.
func (a *Applier) Applied(ctx context.Context) ([]Entry, error) {
	rows, err := a.db.QueryContext(ctx,
		"SELECT id, statement, applied_at FROM ddl_journal ORDER BY applied_at, id")
	if err != nil {
		return nil, fmt.Errorf("apply: failed to query journal: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var appliedAt int64
		if err := rows.Scan(&e.ID, &e.Statement, &appliedAt); err != nil {
			return nil, fmt.Errorf("apply: failed to scan journal row: %w", err)
		}
		e.AppliedAt = time.Unix(appliedAt, 0)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("apply: failed to read journal: %w", err)
	}
	return entries, nil
}
