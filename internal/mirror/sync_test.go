package mirror

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"metamirror/internal/metastore"
)

// fakeFetcher serves canned collections and records every call in order.
type fakeFetcher struct {
	catalogs metastore.CatalogList
	schemas  map[string]metastore.SchemaList
	tables   map[string]metastore.TableList
	failOn   string
	calls    []string
}

func (f *fakeFetcher) ListCatalogs(ctx context.Context) (metastore.CatalogList, error) {
	f.calls = append(f.calls, "catalogs")
	if f.failOn == "catalogs" {
		return metastore.CatalogList{}, errors.New("boom")
	}
	return f.catalogs, nil
}

func (f *fakeFetcher) ListSchemas(ctx context.Context, catalogName string, maxResults int) (metastore.SchemaList, error) {
	call := "schemas:" + catalogName
	f.calls = append(f.calls, call)
	if f.failOn == call {
		return metastore.SchemaList{}, errors.New("boom")
	}
	return f.schemas[catalogName], nil
}

func (f *fakeFetcher) ListTables(ctx context.Context, catalogName, schemaName string, maxResults int) (metastore.TableList, error) {
	call := fmt.Sprintf("tables:%s.%s", catalogName, schemaName)
	f.calls = append(f.calls, call)
	if f.failOn == call {
		return metastore.TableList{}, errors.New("boom")
	}
	return f.tables[catalogName+"."+schemaName], nil
}

// fakeWriter records writes; it can fail on the nth write of a kind.
type fakeWriter struct {
	writes []string
	failOn string
}

func (w *fakeWriter) WriteCatalogs(ctx context.Context, catalogs metastore.CatalogList) error {
	w.writes = append(w.writes, "catalogs")
	if w.failOn == "catalogs" {
		return errors.New("write boom")
	}
	return nil
}

func (w *fakeWriter) WriteSchemas(ctx context.Context, schemas metastore.SchemaList) error {
	var names string
	for _, s := range schemas.Schemas {
		names += s.CatalogName + "." + s.Name + ";"
	}
	w.writes = append(w.writes, "schemas:"+names)
	if w.failOn == "schemas" {
		return errors.New("write boom")
	}
	return nil
}

func (w *fakeWriter) WriteTables(ctx context.Context, tables metastore.TableList) error {
	w.writes = append(w.writes, fmt.Sprintf("tables:%d", len(tables.Tables)))
	if w.failOn == "tables" {
		return errors.New("write boom")
	}
	return nil
}

// countingPacer records pauses instead of sleeping.
type countingPacer struct {
	pauses int
}

func (p *countingPacer) Pause(ctx context.Context) error {
	p.pauses++
	return nil
}

func cat(name, ctype string) metastore.Catalog {
	return metastore.Catalog{Name: name, CatalogType: ctype, FullName: name}
}

func sch(catalog, name string) metastore.Schema {
	return metastore.Schema{Name: name, CatalogName: catalog, FullName: catalog + "." + name}
}

func tbl(catalog, schema, name string) metastore.Table {
	return metastore.Table{
		Name:        name,
		CatalogName: catalog,
		SchemaName:  schema,
		FullName:    fmt.Sprintf("%s.%s.%s", catalog, schema, name),
	}
}

func TestSyncCatalogsFailFast(t *testing.T) {
	fetch := &fakeFetcher{failOn: "catalogs"}
	write := &fakeWriter{}
	s := NewSyncer(fetch, write, nil)

	if err := s.SyncCatalogs(context.Background()); err == nil {
		t.Fatalf("\nexpected an error, did not receive one")
	}
	if len(write.writes) != 0 {
		t.Errorf("\ngot writes %v after a failed fetch, wanted none", write.writes)
	}
}

func TestSyncAllTablesSkipsExcluded(t *testing.T) {
	fetch := &fakeFetcher{
		catalogs: metastore.CatalogList{Catalogs: []metastore.Catalog{
			cat("a", "MANAGED_CATALOG"),
			cat("b", "DELTASHARING_CATALOG"),
			cat("__databricks_internal", "MANAGED_CATALOG"),
		}},
		schemas: map[string]metastore.SchemaList{
			"a": {Schemas: []metastore.Schema{sch("a", "s1")}},
			"b": {Schemas: []metastore.Schema{sch("b", "s1")}},
		},
		tables: map[string]metastore.TableList{
			"a.s1": {Tables: []metastore.Table{tbl("a", "s1", "t1")}},
		},
	}
	write := &fakeWriter{}
	s := NewSyncer(fetch, write, nil)

	if err := s.SyncAllTables(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"catalogs", "schemas:a", "tables:a.s1"}
	if len(fetch.calls) != len(want) {
		t.Fatalf("\ngot calls %v, wanted %v", fetch.calls, want)
	}
	for i := range want {
		if fetch.calls[i] != want[i] {
			t.Errorf("\ngot call %q at %d, wanted %q", fetch.calls[i], i, want[i])
		}
	}
}

func TestSyncAllTablesSkipsEmptyCollections(t *testing.T) {
	fetch := &fakeFetcher{
		catalogs: metastore.CatalogList{Catalogs: []metastore.Catalog{cat("a", "MANAGED_CATALOG")}},
		schemas: map[string]metastore.SchemaList{
			"a": {Schemas: []metastore.Schema{sch("a", "empty"), sch("a", "full")}},
		},
		tables: map[string]metastore.TableList{
			"a.full": {Tables: []metastore.Table{tbl("a", "full", "t1"), tbl("a", "full", "t2")}},
		},
	}
	write := &fakeWriter{}
	s := NewSyncer(fetch, write, nil)

	if err := s.SyncAllTables(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(write.writes) != 1 || write.writes[0] != "tables:2" {
		t.Errorf("\ngot writes %v, wanted a single tables:2 write", write.writes)
	}
}

func TestSyncAllSchemasPacesBetweenCatalogs(t *testing.T) {
	fetch := &fakeFetcher{
		catalogs: metastore.CatalogList{Catalogs: []metastore.Catalog{
			cat("a", "MANAGED_CATALOG"),
			cat("b", "DELTASHARING_CATALOG"),
			cat("c", "MANAGED_CATALOG"),
		}},
		schemas: map[string]metastore.SchemaList{
			"a": {Schemas: []metastore.Schema{sch("a", "s1")}},
			"c": {Schemas: []metastore.Schema{sch("c", "s1")}},
		},
	}
	write := &fakeWriter{}
	pacer := &countingPacer{}
	s := NewSyncer(fetch, write, pacer)

	if err := s.SyncAllSchemas(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// one pause per included catalog, none for the excluded one
	if pacer.pauses != 2 {
		t.Errorf("\ngot %d pauses, wanted 2", pacer.pauses)
	}
	if len(write.writes) != 2 {
		t.Errorf("\ngot writes %v, wanted 2 schema writes", write.writes)
	}
}

func TestSyncAllSchemasAbortsOnWriteError(t *testing.T) {
	fetch := &fakeFetcher{
		catalogs: metastore.CatalogList{Catalogs: []metastore.Catalog{
			cat("a", "MANAGED_CATALOG"),
			cat("b", "MANAGED_CATALOG"),
		}},
		schemas: map[string]metastore.SchemaList{
			"a": {Schemas: []metastore.Schema{sch("a", "s1")}},
			"b": {Schemas: []metastore.Schema{sch("b", "s1")}},
		},
	}
	write := &fakeWriter{failOn: "schemas"}
	s := NewSyncer(fetch, write, nil)

	if err := s.SyncAllSchemas(context.Background()); err == nil {
		t.Fatalf("\nexpected an error, did not receive one")
	}
	// the run stops at the first catalog; b is never fetched
	for _, call := range fetch.calls {
		if call == "schemas:b" {
			t.Errorf("\nschemas for b fetched after an aborting write error")
		}
	}
}

func TestFixedPacer(t *testing.T) {
	p := FixedPacer(20 * time.Millisecond)

	start := time.Now()
	if err := p.Pause(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Errorf("\npause returned after %v, wanted at least 20ms", elapsed)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := FixedPacer(time.Hour).Pause(ctx); err == nil {
		t.Errorf("\nexpected a context error, did not receive one")
	}
}
