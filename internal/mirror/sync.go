// Package mirror walks the catalog → schema → table tree top-down and
// hands each fetched collection to the store. Traversal is depth-first,
// left-to-right, strictly sequential; children of an excluded catalog are
// never fetched.
package mirror

import (
	"context"

	"metamirror/internal/logger"
	"metamirror/internal/metastore"
)

// Fetcher is the slice of the metastore API the syncer needs.
type Fetcher interface {
	ListCatalogs(ctx context.Context) (metastore.CatalogList, error)
	ListSchemas(ctx context.Context, catalogName string, maxResults int) (metastore.SchemaList, error)
	ListTables(ctx context.Context, catalogName, schemaName string, maxResults int) (metastore.TableList, error)
}

// Writer persists fetched collections into the mirror.
type Writer interface {
	WriteCatalogs(ctx context.Context, catalogs metastore.CatalogList) error
	WriteSchemas(ctx context.Context, schemas metastore.SchemaList) error
	WriteTables(ctx context.Context, tables metastore.TableList) error
}

// Syncer runs the three sync phases. Each phase is independently
// restartable and fails fast: the first fetch, decode or persistence error
// aborts the whole phase.
type Syncer struct {
	fetch Fetcher
	store Writer
	pacer Pacer
}

// NewSyncer wires a syncer. A nil pacer disables pacing.
func NewSyncer(fetch Fetcher, store Writer, pacer Pacer) *Syncer {
	if pacer == nil {
		pacer = NoPacer()
	}
	return &Syncer{fetch: fetch, store: store, pacer: pacer}
}

// SyncCatalogs mirrors the catalog level. The writer re-applies the
// exclusion rule before persisting.
func (s *Syncer) SyncCatalogs(ctx context.Context) error {
	logger.Info("getting catalogs")
	catalogs, err := s.fetch.ListCatalogs(ctx)
	if err != nil {
		return err
	}
	return s.store.WriteCatalogs(ctx, catalogs)
}

// SyncAllSchemas mirrors the schema level for every included catalog,
// pausing between catalogs to bound the request rate.
func (s *Syncer) SyncAllSchemas(ctx context.Context) error {
	catalogs, err := s.fetch.ListCatalogs(ctx)
	if err != nil {
		return err
	}
	logger.Info("getting schemas")
	for _, catalog := range catalogs.Catalogs {
		if !metastore.IncludeCatalog(catalog) {
			continue
		}
		schemas, err := s.fetch.ListSchemas(ctx, catalog.Name, 0)
		if err != nil {
			return err
		}
		if err := s.store.WriteSchemas(ctx, schemas); err != nil {
			return err
		}
		if err := s.pacer.Pause(ctx); err != nil {
			return err
		}
	}
	return nil
}

// SyncAllTables mirrors the table level: catalogs, then schemas per
// catalog, then tables per schema, writing only non-empty collections.
// No pacing here; only the schema phase paces.
func (s *Syncer) SyncAllTables(ctx context.Context) error {
	catalogs, err := s.fetch.ListCatalogs(ctx)
	if err != nil {
		return err
	}
	total := len(catalogs.Catalogs)
	for i, catalog := range catalogs.Catalogs {
		logger.Info("catalog %d of %d", i+1, total)
		if !metastore.IncludeCatalog(catalog) {
			continue
		}
		schemas, err := s.fetch.ListSchemas(ctx, catalog.Name, 0)
		if err != nil {
			return err
		}
		for _, schema := range schemas.Schemas {
			logger.Info("getting tables for %s.%s", schema.CatalogName, schema.Name)
			tables, err := s.fetch.ListTables(ctx, catalog.Name, schema.Name, 0)
			if err != nil {
				return err
			}
			if len(tables.Tables) == 0 {
				continue
			}
			logger.Info("tables in %s.%s: %d", schema.CatalogName, schema.Name, len(tables.Tables))
			if err := s.store.WriteTables(ctx, tables); err != nil {
				return err
			}
		}
	}
	return nil
}
