// Package dialects registers the supported mirror targets with the store.
// Import it for side effects from main.
package dialects

import "metamirror/internal/store"

// sqliteDialect is the default mirror target: a local SQLite file, upserts
// via INSERT OR REPLACE.
type sqliteDialect struct{}

func (sqliteDialect) UpsertCatalog() string {
	return `INSERT OR REPLACE INTO catalogs (name, owner, comment, storage_root, provider_name, share_name, enable_predictive_optimization, metastore_id, created_at, created_by, updated_at, updated_by, catalog_type, storage_location, isolation_mode, connection_name, full_name, securable_kind, securable_type, browse_only)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
}

func (sqliteDialect) UpsertSchema() string {
	return `INSERT OR REPLACE INTO schemas (name, catalog_name, owner, comment, storage_root, enable_predictive_optimization, metastore_id, full_name, storage_location, created_at, created_by, updated_at, updated_by, catalog_type, browse_only, schema_id)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
}

func (sqliteDialect) UpsertTable() string {
	return `INSERT OR REPLACE INTO tables (name, catalog_name, schema_name, table_type, data_source_format, storage_location, view_definition, sql_path, owner, comment, storage_credential_name, enable_predictive_optimization, metastore_id, full_name, data_access_configuration_id, created_at, created_by, updated_at, updated_by, deleted_at, table_id, access_point, pipeline_id, browse_only)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
}

func (sqliteDialect) Placeholder(int) string { return "?" }

func init() {
	store.Register("sqlite", sqliteDialect{})
	store.Register("sqlite3", sqliteDialect{})
}
