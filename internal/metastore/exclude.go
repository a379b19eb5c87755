package metastore

// Catalog names that never take part in the mirror: the workspace-internal
// system catalog and a leftover test catalog.
const (
	internalCatalogName = "__databricks_internal"
	legacyTestCatalog   = "adrian_hive_test"
)

// deltaSharingType marks cross-account sharing catalogs, which carry no
// locally useful storage metadata.
const deltaSharingType = "DELTASHARING_CATALOG"

// IncludeCatalog reports whether a catalog (and, transitively, its schemas
// and tables) is mirrored. Unknown catalog types are included, so new
// upstream types stay visible instead of silently disappearing.
func IncludeCatalog(c Catalog) bool {
	if c.CatalogType == deltaSharingType {
		return false
	}
	switch c.Name {
	case internalCatalogName, legacyTestCatalog:
		return false
	}
	return true
}
