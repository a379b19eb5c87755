package dialects

import (
	"strings"
	"testing"
)

// the persisted column counts per entity; every upsert statement must bind
// exactly this many parameters
const (
	catalogCols = 20
	schemaCols  = 16
	tableCols   = 24
)

func TestSqlitePlaceholderCounts(t *testing.T) {
	var tests = []struct {
		name string
		stmt string
		want int
	}{
		{"catalog", sqliteDialect{}.UpsertCatalog(), catalogCols},
		{"schema", sqliteDialect{}.UpsertSchema(), schemaCols},
		{"table", sqliteDialect{}.UpsertTable(), tableCols},
	}

	for _, tt := range tests {
		// Use t.Run to run each case as a subtest with a descriptive name
		t.Run(tt.name, func(t *testing.T) {
			if got := strings.Count(tt.stmt, "?"); got != tt.want {
				t.Errorf("\ngot %d placeholders, wanted %d", got, tt.want)
			}
			if !strings.HasPrefix(tt.stmt, "INSERT OR REPLACE INTO") {
				t.Errorf("\nstatement is not an insert-or-replace: %s", tt.stmt)
			}
		})
	}
}

func TestMysqlPlaceholderCounts(t *testing.T) {
	var tests = []struct {
		name string
		stmt string
		want int
	}{
		{"catalog", mysqlDialect{}.UpsertCatalog(), catalogCols},
		{"schema", mysqlDialect{}.UpsertSchema(), schemaCols},
		{"table", mysqlDialect{}.UpsertTable(), tableCols},
	}

	for _, tt := range tests {
		// Use t.Run to run each case as a subtest with a descriptive name
		t.Run(tt.name, func(t *testing.T) {
			if got := strings.Count(tt.stmt, "?"); got != tt.want {
				t.Errorf("\ngot %d placeholders, wanted %d", got, tt.want)
			}
			if !strings.HasPrefix(tt.stmt, "REPLACE INTO") {
				t.Errorf("\nstatement is not a replace: %s", tt.stmt)
			}
		})
	}
}

func TestPostgresStatements(t *testing.T) {
	var tests = []struct {
		name     string
		stmt     string
		lastBind string
		conflict string
	}{
		{"catalog", pgDialect{}.UpsertCatalog(), "$20", "ON CONFLICT (name)"},
		{"schema", pgDialect{}.UpsertSchema(), "$16", "ON CONFLICT (catalog_name, name)"},
		{"table", pgDialect{}.UpsertTable(), "$24", "ON CONFLICT (catalog_name, schema_name, name)"},
	}

	for _, tt := range tests {
		// Use t.Run to run each case as a subtest with a descriptive name
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(tt.stmt, tt.lastBind) {
				t.Errorf("\nstatement missing last bind %s", tt.lastBind)
			}
			if !strings.Contains(tt.stmt, tt.conflict) {
				t.Errorf("\nstatement missing %q", tt.conflict)
			}
			if !strings.Contains(tt.stmt, "DO UPDATE SET") {
				t.Errorf("\nstatement does not overwrite on conflict")
			}
		})
	}
}

func TestPlaceholderStyles(t *testing.T) {
	var tests = []struct {
		name string
		got  string
		want string
	}{
		{"postgres", pgDialect{}.Placeholder(3), "$3"},
		{"sqlite", sqliteDialect{}.Placeholder(3), "?"},
		{"mysql", mysqlDialect{}.Placeholder(3), "?"},
	}

	for _, tt := range tests {
		// Use t.Run to run each case as a subtest with a descriptive name
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("\ngot %q, wanted %q", tt.got, tt.want)
			}
		})
	}
}
