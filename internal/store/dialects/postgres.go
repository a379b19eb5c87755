package dialects

import (
	"fmt"

	"metamirror/internal/store"
)

// pgDialect mirrors into PostgreSQL. There is no INSERT OR REPLACE, so the
// upserts spell out ON CONFLICT ... DO UPDATE with every non-key column
// overwritten from EXCLUDED.
type pgDialect struct{}

func (pgDialect) UpsertCatalog() string {
	return `INSERT INTO catalogs (name, owner, comment, storage_root, provider_name, share_name, enable_predictive_optimization, metastore_id, created_at, created_by, updated_at, updated_by, catalog_type, storage_location, isolation_mode, connection_name, full_name, securable_kind, securable_type, browse_only)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
	ON CONFLICT (name) DO UPDATE SET
		owner = EXCLUDED.owner,
		comment = EXCLUDED.comment,
		storage_root = EXCLUDED.storage_root,
		provider_name = EXCLUDED.provider_name,
		share_name = EXCLUDED.share_name,
		enable_predictive_optimization = EXCLUDED.enable_predictive_optimization,
		metastore_id = EXCLUDED.metastore_id,
		created_at = EXCLUDED.created_at,
		created_by = EXCLUDED.created_by,
		updated_at = EXCLUDED.updated_at,
		updated_by = EXCLUDED.updated_by,
		catalog_type = EXCLUDED.catalog_type,
		storage_location = EXCLUDED.storage_location,
		isolation_mode = EXCLUDED.isolation_mode,
		connection_name = EXCLUDED.connection_name,
		full_name = EXCLUDED.full_name,
		securable_kind = EXCLUDED.securable_kind,
		securable_type = EXCLUDED.securable_type,
		browse_only = EXCLUDED.browse_only`
}

func (pgDialect) UpsertSchema() string {
	return `INSERT INTO schemas (name, catalog_name, owner, comment, storage_root, enable_predictive_optimization, metastore_id, full_name, storage_location, created_at, created_by, updated_at, updated_by, catalog_type, browse_only, schema_id)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	ON CONFLICT (catalog_name, name) DO UPDATE SET
		owner = EXCLUDED.owner,
		comment = EXCLUDED.comment,
		storage_root = EXCLUDED.storage_root,
		enable_predictive_optimization = EXCLUDED.enable_predictive_optimization,
		metastore_id = EXCLUDED.metastore_id,
		full_name = EXCLUDED.full_name,
		storage_location = EXCLUDED.storage_location,
		created_at = EXCLUDED.created_at,
		created_by = EXCLUDED.created_by,
		updated_at = EXCLUDED.updated_at,
		updated_by = EXCLUDED.updated_by,
		catalog_type = EXCLUDED.catalog_type,
		browse_only = EXCLUDED.browse_only,
		schema_id = EXCLUDED.schema_id`
}

func (pgDialect) UpsertTable() string {
	return `INSERT INTO tables (name, catalog_name, schema_name, table_type, data_source_format, storage_location, view_definition, sql_path, owner, comment, storage_credential_name, enable_predictive_optimization, metastore_id, full_name, data_access_configuration_id, created_at, created_by, updated_at, updated_by, deleted_at, table_id, access_point, pipeline_id, browse_only)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)
	ON CONFLICT (catalog_name, schema_name, name) DO UPDATE SET
		table_type = EXCLUDED.table_type,
		data_source_format = EXCLUDED.data_source_format,
		storage_location = EXCLUDED.storage_location,
		view_definition = EXCLUDED.view_definition,
		sql_path = EXCLUDED.sql_path,
		owner = EXCLUDED.owner,
		comment = EXCLUDED.comment,
		storage_credential_name = EXCLUDED.storage_credential_name,
		enable_predictive_optimization = EXCLUDED.enable_predictive_optimization,
		metastore_id = EXCLUDED.metastore_id,
		full_name = EXCLUDED.full_name,
		data_access_configuration_id = EXCLUDED.data_access_configuration_id,
		created_at = EXCLUDED.created_at,
		created_by = EXCLUDED.created_by,
		updated_at = EXCLUDED.updated_at,
		updated_by = EXCLUDED.updated_by,
		deleted_at = EXCLUDED.deleted_at,
		table_id = EXCLUDED.table_id,
		access_point = EXCLUDED.access_point,
		pipeline_id = EXCLUDED.pipeline_id,
		browse_only = EXCLUDED.browse_only`
}

func (pgDialect) Placeholder(n int) string { return fmt.Sprintf("$%d", n) }

func init() {
	store.Register("postgres", pgDialect{})
	store.Register("postgresql", pgDialect{})
}
