package rules

import (
	"strings"
	"testing"
)

func TestCheckMigrationMissingWrapper(t *testing.T) {
	warnings := CheckMigration("CREATE TABLE orders (id serial);")
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %v", warnings)
	}
	if !strings.Contains(warnings[0], "transactional wrapper") {
		t.Fatalf("unexpected warning: %s", warnings[0])
	}
}

func TestCheckMigrationUnguardedCreate(t *testing.T) {
	blob := "DO $$ BEGIN CREATE TABLE orders (id serial); END $$;"
	warnings := CheckMigration(blob)
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %v", warnings)
	}
	if !strings.Contains(warnings[0], "CREATE TABLE") {
		t.Fatalf("unexpected warning: %s", warnings[0])
	}
}

func TestCheckMigrationBlockWideGuardSuppression(t *testing.T) {
	// The guard protects a different statement, yet it silences every rule.
	blob := "DO $$ BEGIN CREATE TABLE orders (id serial); " +
		"CREATE INDEX IF NOT EXISTS idx ON orders (id); END $$;"
	warnings := CheckMigration(blob)
	if len(warnings) != 0 {
		t.Fatalf("expected block-wide suppression, got %v", warnings)
	}
}

func TestCheckMigrationAllRules(t *testing.T) {
	blob := "DO $$ BEGIN " +
		"CREATE TABLE a (id serial); " +
		"ALTER TABLE b ADD COLUMN x int; " +
		"INSERT INTO c VALUES (1); " +
		"DROP TABLE d; " +
		"END $$;"
	warnings := CheckMigration(blob)
	if len(warnings) != 4 {
		t.Fatalf("expected 4 warnings, got %v", warnings)
	}
	for i, want := range []string{"CREATE TABLE", "ALTER TABLE", "INSERT INTO", "DROP TABLE"} {
		if !strings.Contains(warnings[i], want) {
			t.Fatalf("warning %d: expected %q in %q", i, want, warnings[i])
		}
	}
}

func TestCheckMigrationCaseInsensitiveWrapper(t *testing.T) {
	blob := "do $$ begin create table t (id int); end $$;"
	warnings := CheckMigration(blob)
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %v", warnings)
	}
}

func TestCheckMigrationStripsDiffMarkers(t *testing.T) {
	blob := "+DO $$ BEGIN\n+CREATE TABLE IF NOT EXISTS t (id int);\n+END $$;"
	warnings := CheckMigration(blob)
	if len(warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", warnings)
	}
}

func TestIsMigrationPath(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{"db/migrations/0001_init.sql", true},
		{"migrations/add_column.psql", true},
		{"schema.sql", true},
		{"src/main.go", false},
		{"docs/migrations.md", false},
	}
	for _, tc := range cases {
		if got := IsMigrationPath(tc.path); got != tc.want {
			t.Fatalf("IsMigrationPath(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}
