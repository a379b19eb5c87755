package metastore

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"metamirror/internal/logger"
)

const basePath = "/api/2.1/unity-catalog"

// FetchFunc issues an authenticated GET and returns the raw body.
// Client.Fetch satisfies it; tests substitute stubs.
type FetchFunc func(ctx context.Context, url string) ([]byte, error)

// Fetcher retrieves one page of each listing resource. The upstream API is
// paginated, but only the first page is fetched per call; truncation is
// accepted, not followed.
type Fetcher struct {
	host  string
	fetch FetchFunc
}

// NewFetcher creates a Fetcher for the given workspace host.
func NewFetcher(host string, fetch FetchFunc) *Fetcher {
	return &Fetcher{host: host, fetch: fetch}
}

// baseURL assumes https unless the host already carries a scheme
// (httptest servers do).
func (f *Fetcher) baseURL() string {
	if strings.Contains(f.host, "://") {
		return f.host + basePath
	}
	return "https://" + f.host + basePath
}

// ListCatalogs lists all catalogs in the metastore.
// https://docs.databricks.com/api/workspace/catalogs/list
func (f *Fetcher) ListCatalogs(ctx context.Context) (CatalogList, error) {
	u := f.baseURL() + "/catalogs"

	body, err := f.fetch(ctx, u)
	if err != nil {
		return CatalogList{}, err
	}

	var catalogs CatalogList
	if err := json.Unmarshal(body, &catalogs); err != nil {
		logger.Error("decode catalogs response: %v", err)
		return CatalogList{}, &DecodeError{Resource: "catalogs", Err: err}
	}
	return catalogs, nil
}

// ListSchemas lists schemas for a given catalog. maxResults <= 0 means no
// page-size hint.
// https://docs.databricks.com/api/workspace/schemas/list
func (f *Fetcher) ListSchemas(ctx context.Context, catalogName string, maxResults int) (SchemaList, error) {
	q := url.Values{}
	q.Set("catalog_name", catalogName)
	if maxResults > 0 {
		q.Set("max_results", strconv.Itoa(maxResults))
	}
	u := f.baseURL() + "/schemas?" + q.Encode()

	body, err := f.fetch(ctx, u)
	if err != nil {
		return SchemaList{}, err
	}

	var schemas SchemaList
	if err := json.Unmarshal(body, &schemas); err != nil {
		logger.Error("decode schemas response for catalog %s: %v", catalogName, err)
		return SchemaList{}, &DecodeError{Resource: "schemas", Err: err}
	}
	return schemas, nil
}

// ListTables lists tables for a given catalog and schema. maxResults <= 0
// means no page-size hint.
// https://docs.databricks.com/api/workspace/tables/list
func (f *Fetcher) ListTables(ctx context.Context, catalogName, schemaName string, maxResults int) (TableList, error) {
	q := url.Values{}
	q.Set("catalog_name", catalogName)
	q.Set("schema_name", schemaName)
	if maxResults > 0 {
		q.Set("max_results", strconv.Itoa(maxResults))
	}
	u := f.baseURL() + "/tables?" + q.Encode()

	body, err := f.fetch(ctx, u)
	if err != nil {
		return TableList{}, err
	}

	var tables TableList
	if err := json.Unmarshal(body, &tables); err != nil {
		logger.Error("decode tables response for %s.%s: %v", catalogName, schemaName, err)
		return TableList{}, &DecodeError{Resource: "tables", Err: err}
	}
	return tables, nil
}

// GetTable fetches a single table by its three-part full name.
// https://docs.databricks.com/api/workspace/tables/get
func (f *Fetcher) GetTable(ctx context.Context, fullName string) (*Table, error) {
	u := fmt.Sprintf("%s/tables/%s", f.baseURL(), url.PathEscape(fullName))

	body, err := f.fetch(ctx, u)
	if err != nil {
		return nil, err
	}

	var table Table
	if err := json.Unmarshal(body, &table); err != nil {
		logger.Error("decode table response for %s: %v", fullName, err)
		return nil, &DecodeError{Resource: "table", Err: err}
	}
	return &table, nil
}
