package db

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestDialect_Rebind(t *testing.T) {
	q := `SELECT id FROM users WHERE username = ? AND email = ?`
	if got := SQLite.Rebind(q); got != q {
		t.Fatalf("sqlite must keep '?' placeholders, got %q", got)
	}
	want := `SELECT id FROM users WHERE username = $1 AND email = $2`
	if got := Postgres.Rebind(q); got != want {
		t.Fatalf("postgres rebind: got %q, want %q", got, want)
	}
}

func TestDialect_Valid(t *testing.T) {
	if !SQLite.Valid() || !Postgres.Valid() {
		t.Fatal("known dialects must be valid")
	}
	if Dialect("mysql").Valid() {
		t.Fatal("mysql must be rejected")
	}
}

func TestSchemaFor(t *testing.T) {
	for _, d := range []Dialect{SQLite, Postgres} {
		stmts := schemaFor(d)
		if len(stmts) != 4 {
			t.Fatalf("%s: expected 4 statements, got %d", d, len(stmts))
		}
		joined := strings.Join(stmts, "\n")
		for _, table := range []string{"roles", "users", "user_roles", "oauth2_authorization_requests"} {
			if !strings.Contains(joined, "CREATE TABLE IF NOT EXISTS "+table+" ") {
				t.Fatalf("%s: missing table %s", d, table)
			}
		}
	}
}

// Federated usernames are the whole email local part, up to 64 characters.
func TestSchemaFor_PostgresUserColumnWidths(t *testing.T) {
	joined := strings.Join(schemaFor(Postgres), "\n")
	for _, col := range []string{"username VARCHAR(64)", "email VARCHAR(254)"} {
		if !strings.Contains(joined, col) {
			t.Fatalf("postgres users table: expected %q", col)
		}
	}
	if strings.Contains(joined, "username VARCHAR(20)") {
		t.Fatal("postgres username column must fit a full email local part")
	}
}

func TestInitDB_SQLiteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	conn, err := InitDB(SQLite, path)
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	defer conn.Close()

	var n int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'user_roles'`).Scan(&n); err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if n != 1 {
		t.Fatalf("user_roles table missing")
	}

	// schema is idempotent
	conn2, err := InitDB(SQLite, path)
	if err != nil {
		t.Fatalf("second InitDB: %v", err)
	}
	_ = conn2.Close()
}

func TestInitDB_UnknownDialect(t *testing.T) {
	if _, err := InitDB(Dialect("mysql"), "x"); err == nil {
		t.Fatal("expected error for unknown dialect")
	}
}
