package store

import (
	"context"
	"fmt"

	"metamirror/internal/logger"
	"metamirror/internal/metastore"
)

// PersistenceError reports a rejected write, naming the record it failed
// on. Records written before it stay committed; writes are row-by-row, not
// wrapped in a collection-level transaction, so callers must treat a
// failed Write* call as partially applied.
type PersistenceError struct {
	Entity string
	Key    string
	Err    error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist %s %s: %v", e.Entity, e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// WriteCatalogs upserts every includable catalog in the collection. The
// exclusion rule is re-applied here as a second line of defense behind the
// traversal's own filtering.
func (s *Store) WriteCatalogs(ctx context.Context, catalogs metastore.CatalogList) error {
	for _, catalog := range catalogs.Catalogs {
		if !metastore.IncludeCatalog(catalog) {
			continue
		}
		if _, err := s.db.ExecContext(ctx, s.dialect.UpsertCatalog(), catalogArgs(catalog)...); err != nil {
			logger.Error("write catalog %s: %v", catalog.Name, err)
			return &PersistenceError{Entity: "catalog", Key: catalog.Name, Err: err}
		}
	}
	return nil
}

// WriteSchemas upserts every schema in the collection.
func (s *Store) WriteSchemas(ctx context.Context, schemas metastore.SchemaList) error {
	for _, schema := range schemas.Schemas {
		logger.Info("catalog %s | schema %s", schema.CatalogName, schema.Name)
		if _, err := s.db.ExecContext(ctx, s.dialect.UpsertSchema(), schemaArgs(schema)...); err != nil {
			logger.Error("write schema %s: %v", schema.FullName, err)
			return &PersistenceError{Entity: "schema", Key: schema.FullName, Err: err}
		}
	}
	return nil
}

// WriteTables upserts every table in the collection.
func (s *Store) WriteTables(ctx context.Context, tables metastore.TableList) error {
	for _, table := range tables.Tables {
		logger.Debug("catalog %s | schema %s | table %s", table.CatalogName, table.SchemaName, table.Name)
		if _, err := s.db.ExecContext(ctx, s.dialect.UpsertTable(), tableArgs(table)...); err != nil {
			logger.Error("write table %s: %v", table.FullName, err)
			return &PersistenceError{Entity: "table", Key: table.FullName, Err: err}
		}
	}
	return nil
}

// SearchCatalogs returns mirrored catalog names, optionally filtered by a
// substring match. Read-only; not part of the sync hot path.
func (s *Store) SearchCatalogs(ctx context.Context, term string) ([]string, error) {
	qry := "SELECT name FROM catalogs"
	var args []any
	if term != "" {
		qry += " WHERE name LIKE " + s.dialect.Placeholder(1)
		args = append(args, "%"+term+"%")
	}
	qry += " ORDER BY name"

	rows, err := s.db.QueryContext(ctx, qry, args...)
	if err != nil {
		return nil, fmt.Errorf("search catalogs: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan catalog name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// The args functions below are the projection point: a wire record carries
// nested payloads (properties, provisioning info, columns, constraints)
// that are dropped here, and only the flat column set survives. Bind order
// matches the dialect upsert statements exactly.

func catalogArgs(c metastore.Catalog) []any {
	return []any{
		c.Name,
		c.Owner,
		c.Comment,
		c.StorageRoot,
		c.ProviderName,
		c.ShareName,
		c.EnablePredictiveOptimization,
		c.MetastoreID,
		c.CreatedAt,
		c.CreatedBy,
		c.UpdatedAt,
		c.UpdatedBy,
		c.CatalogType,
		c.StorageLocation,
		c.IsolationMode,
		c.ConnectionName,
		c.FullName,
		c.SecurableKind,
		c.SecurableType,
		c.BrowseOnly,
	}
}

func schemaArgs(sc metastore.Schema) []any {
	return []any{
		sc.Name,
		sc.CatalogName,
		sc.Owner,
		sc.Comment,
		sc.StorageRoot,
		sc.EnablePredictiveOptimization,
		sc.MetastoreID,
		sc.FullName,
		sc.StorageLocation,
		sc.CreatedAt,
		sc.CreatedBy,
		sc.UpdatedAt,
		sc.UpdatedBy,
		sc.CatalogType,
		sc.BrowseOnly,
		sc.SchemaID,
	}
}

func tableArgs(t metastore.Table) []any {
	return []any{
		t.Name,
		t.CatalogName,
		t.SchemaName,
		t.TableType,
		t.DataSourceFormat,
		t.StorageLocation,
		t.ViewDefinition,
		t.SQLPath,
		t.Owner,
		t.Comment,
		t.StorageCredentialName,
		t.EnablePredictiveOptimization,
		t.MetastoreID,
		t.FullName,
		t.DataAccessConfigurationID,
		t.CreatedAt,
		t.CreatedBy,
		t.UpdatedAt,
		t.UpdatedBy,
		t.DeletedAt,
		t.TableID,
		t.AccessPoint,
		t.PipelineID,
		t.BrowseOnly,
	}
}
