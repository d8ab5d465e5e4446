// Package integration provides end-to-end tests that run generated DDL
// against a real SQLite engine.
package integration

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/tabledef/tabledef/internal/apply"
	"github.com/tabledef/tabledef/internal/schemafile"
	"github.com/tabledef/tabledef/pkg/ddl"
)

// TestGeneratedDDLAcceptedBySQLite builds tables through the library and
// confirms SQLite accepts every generated statement verbatim.
func TestGeneratedDDLAcceptedBySQLite(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	userID := ddl.NewColumn("id", ddl.Integer, ddl.PrimaryKey, ddl.Autoincrement)
	email := ddl.NewColumn("email", ddl.Text, ddl.NotNull)
	users := ddl.NewTable("users",
		userID,
		email,
		ddl.NewColumn("display_name", ddl.Text, ddl.Default("anonymous")),
		ddl.NewColumn("created_at", ddl.DateTime, ddl.NotNull),
		ddl.NewUnique(email),
	)

	sessionUser := ddl.NewColumn("user_id", ddl.Integer, ddl.NotNull)
	sessionToken := ddl.NewColumn("token", ddl.Text, ddl.NotNull)
	sessions := ddl.NewTable("sessions",
		sessionToken,
		sessionUser,
		ddl.NewColumn("note", ddl.Text, ddl.Default("it's fine")),
		ddl.NewPrimaryKey(sessionToken),
		ddl.NewForeignKey(sessionUser, ddl.References, ddl.TableNameOf(users), userID, ddl.OnDelete, ddl.Cascade),
	)

	for _, table := range []*ddl.TableDef{users, sessions} {
		if _, err := db.Exec(table.CreateSQL()); err != nil {
			t.Fatalf("SQLite rejected %q: %v", table.CreateSQL(), err)
		}
	}

	addSQL := ddl.NewColumn("last_seen", ddl.DateTime).CreateAddSQL(ddl.TableNameOf(users))
	if _, err := db.Exec(addSQL); err != nil {
		t.Fatalf("SQLite rejected %q: %v", addSQL, err)
	}

	// The escaped DEFAULT literal must survive a round trip through the engine.
	if _, err := db.Exec("INSERT INTO sessions (token, user_id) VALUES ('tok', 1)"); err != nil {
		t.Fatalf("failed to insert row: %v", err)
	}
	var note string
	if err := db.QueryRow("SELECT note FROM sessions WHERE token = 'tok'").Scan(&note); err != nil {
		t.Fatalf("failed to read default: %v", err)
	}
	if note != "it's fine" {
		t.Errorf("default literal = %q, want %q", note, "it's fine")
	}
}

// TestSchemaFileToDatabase runs the whole pipeline: schema document →
// table definitions → applied SQLite database.
func TestSchemaFileToDatabase(t *testing.T) {
	ctx := context.Background()
	tempDir := t.TempDir()

	schemaPath := filepath.Join(tempDir, "schema.yaml")
	schema := `
tables:
  - name: accounts
    columns:
      - name: id
        type: integer
        attributes: [primary_key, not_null]
      - name: balance
        type: numeric
        default: "0"
  - name: transfers
    columns:
      - name: id
        type: integer
        attributes: [primary_key]
      - name: account_id
        type: integer
        attributes: [not_null]
    constraints:
      - foreign_key:
          column: account_id
          table: accounts
          ref_column: id
          on_delete: restrict
`
	if err := os.WriteFile(schemaPath, []byte(schema), 0644); err != nil {
		t.Fatalf("failed to write schema file: %v", err)
	}

	doc, err := schemafile.Load(schemaPath)
	if err != nil {
		t.Fatalf("failed to load schema: %v", err)
	}
	tables, err := doc.Build()
	if err != nil {
		t.Fatalf("failed to build schema: %v", err)
	}

	applier, err := apply.Open(filepath.Join(tempDir, "app.db"))
	if err != nil {
		t.Fatalf("failed to open applier: %v", err)
	}
	defer applier.Close()

	applied, err := applier.ApplyTables(ctx, tables)
	if err != nil {
		t.Fatalf("failed to apply schema: %v", err)
	}
	if applied != 2 {
		t.Errorf("applied = %d, want 2", applied)
	}

	// Second run is a no-op thanks to the journal.
	applied, err = applier.ApplyTables(ctx, tables)
	if err != nil {
		t.Fatalf("failed to reapply schema: %v", err)
	}
	if applied != 0 {
		t.Errorf("reapply applied = %d, want 0", applied)
	}
}
