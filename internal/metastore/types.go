// Package metastore talks to the remote metastore REST API: an
// authenticated transport, first-page listing of catalogs, schemas and
// tables, and the exclusion rule deciding which catalogs get mirrored.
package metastore

import "encoding/json"

// CatalogList is the wire shape of the catalogs listing.
type CatalogList struct {
	Catalogs []Catalog `json:"catalogs"`
}

// SchemaList is the wire shape of the schemas listing. The upstream API
// returns null instead of an empty array, so the slice may be nil.
type SchemaList struct {
	Schemas []Schema `json:"schemas"`
}

// TableList is the wire shape of the tables listing. Same null caveat as
// SchemaList.
type TableList struct {
	Tables []Table `json:"tables"`
}

// Catalog is the top level of the metastore hierarchy. The struct decodes
// a superset of what ends up in the mirror: the nested payloads at the
// bottom are accepted by the decoder but dropped at persistence, see
// store.catalogArgs.
type Catalog struct {
	Name                         string  `json:"name"`
	Owner                        string  `json:"owner"`
	Comment                      *string `json:"comment,omitempty"`
	StorageRoot                  *string `json:"storage_root,omitempty"`
	ProviderName                 *string `json:"provider_name,omitempty"`
	ShareName                    *string `json:"share_name,omitempty"`
	EnablePredictiveOptimization *string `json:"enable_predictive_optimization,omitempty"`
	MetastoreID                  string  `json:"metastore_id"`
	CreatedAt                    int64   `json:"created_at"`
	CreatedBy                    string  `json:"created_by"`
	UpdatedAt                    *int64  `json:"updated_at,omitempty"`
	UpdatedBy                    *string `json:"updated_by,omitempty"`
	CatalogType                  string  `json:"catalog_type"`
	StorageLocation              *string `json:"storage_location,omitempty"`
	IsolationMode                *string `json:"isolation_mode,omitempty"`
	ConnectionName               *string `json:"connection_name,omitempty"`
	FullName                     string  `json:"full_name"`
	SecurableKind                *string `json:"securable_kind,omitempty"`
	SecurableType                *string `json:"securable_type,omitempty"`
	BrowseOnly                   *bool   `json:"browse_only,omitempty"`

	// nested payloads, decoded but never persisted
	Properties                          map[string]string `json:"properties,omitempty"`
	Options                             map[string]string `json:"options,omitempty"`
	ProvisioningInfo                    json.RawMessage   `json:"provisioning_info,omitempty"`
	EffectivePredictiveOptimizationFlag json.RawMessage   `json:"effective_predictive_optimization_flag,omitempty"`
}

// Schema is the middle level; identity is (catalog_name, name).
type Schema struct {
	Name                         string  `json:"name"`
	CatalogName                  string  `json:"catalog_name"`
	Owner                        string  `json:"owner"`
	Comment                      *string `json:"comment,omitempty"`
	StorageRoot                  *string `json:"storage_root,omitempty"`
	EnablePredictiveOptimization *string `json:"enable_predictive_optimization,omitempty"`
	MetastoreID                  string  `json:"metastore_id"`
	FullName                     string  `json:"full_name"`
	StorageLocation              *string `json:"storage_location,omitempty"`
	CreatedAt                    int64   `json:"created_at"`
	CreatedBy                    string  `json:"created_by"`
	UpdatedAt                    *int64  `json:"updated_at,omitempty"`
	UpdatedBy                    *string `json:"updated_by,omitempty"`
	CatalogType                  *string `json:"catalog_type,omitempty"`
	BrowseOnly                   *bool   `json:"browse_only,omitempty"`
	SchemaID                     string  `json:"schema_id"`

	// nested payloads, decoded but never persisted
	Properties                          map[string]string `json:"properties,omitempty"`
	EffectivePredictiveOptimizationFlag json.RawMessage   `json:"effective_predictive_optimization_flag,omitempty"`
}

// Table is the leaf level; identity is (catalog_name, schema_name, name).
// DeletedAt is a soft-delete marker carried through to the mirror but not
// acted on by the sync.
type Table struct {
	Name                         string  `json:"name"`
	CatalogName                  string  `json:"catalog_name"`
	SchemaName                   string  `json:"schema_name"`
	TableType                    string  `json:"table_type"`
	DataSourceFormat             *string `json:"data_source_format,omitempty"`
	StorageLocation              *string `json:"storage_location,omitempty"` // full path to table
	ViewDefinition               *string `json:"view_definition,omitempty"`
	SQLPath                      *string `json:"sql_path,omitempty"`
	Owner                        string  `json:"owner"`
	Comment                      *string `json:"comment,omitempty"`
	StorageCredentialName        *string `json:"storage_credential_name,omitempty"`
	EnablePredictiveOptimization *string `json:"enable_predictive_optimization,omitempty"`
	MetastoreID                  *string `json:"metastore_id,omitempty"`
	FullName                     string  `json:"full_name"`
	DataAccessConfigurationID    *string `json:"data_access_configuration_id,omitempty"`
	CreatedAt                    int64   `json:"created_at"`
	CreatedBy                    string  `json:"created_by"`
	UpdatedAt                    *int64  `json:"updated_at,omitempty"`
	UpdatedBy                    *string `json:"updated_by,omitempty"`
	DeletedAt                    *int64  `json:"deleted_at,omitempty"`
	TableID                      string  `json:"table_id"`
	AccessPoint                  *string `json:"access_point,omitempty"`
	PipelineID                   *string `json:"pipeline_id,omitempty"`
	BrowseOnly                   *bool   `json:"browse_only,omitempty"`

	// nested payloads, decoded but never persisted
	Columns                             json.RawMessage   `json:"columns,omitempty"`
	Dependencies                        json.RawMessage   `json:"dependencies,omitempty"`
	Properties                          map[string]string `json:"properties,omitempty"`
	TableConstraints                    json.RawMessage   `json:"table_constraints,omitempty"`
	RowFilter                           json.RawMessage   `json:"row_filter,omitempty"`
	DeltaRuntimePropertiesKvpairs       json.RawMessage   `json:"delta_runtime_properties_kvpairs,omitempty"`
	EffectivePredictiveOptimizationFlag json.RawMessage   `json:"effective_predictive_optimization_flag,omitempty"`
}
