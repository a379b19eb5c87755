package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "metamirror/internal/store/dialects"

	"metamirror/internal/logger"
	"metamirror/internal/metastore"
	"metamirror/internal/mirror"
	"metamirror/internal/store"
	"metamirror/pkg/config"
)

func main() {
	// flags
	cfgPath := flag.String("config", filepath.Join(".", "configs", "metamirror.yaml"), "path to config YAML")
	hostFlag := flag.String("host", "", "workspace host override")
	driverFlag := flag.String("driver", "", "mirror db driver override (sqlite,postgres,mysql)")
	dsnFlag := flag.String("dsn", "", "mirror dsn override")
	migrationsFlag := flag.String("migrations", "", "migrations dir override")
	timeout := flag.Int("timeout", 10, "db connect timeout seconds")
	pacing := flag.Int("pacing", 0, "seconds between per-catalog schema fetches (overrides config)")
	search := flag.Bool("search", false, "print mirrored catalog names and exit instead of syncing")
	term := flag.String("term", "", "substring filter for -search")
	getTable := flag.String("get-table", "", "fetch one table by full name, print it as JSON and exit")
	flag.Parse()

	// attempt to load config file (optional)
	var appCfg config.AppConfig
	if c, err := config.LoadFile(*cfgPath); err == nil {
		appCfg = c
	} else {
		logger.Error("error reading config file: %v", err)
	}

	// CLI and environment overrides; the token never travels via flag
	if *hostFlag != "" {
		appCfg.Workspace.Host = *hostFlag
	}
	if token := os.Getenv("METASTORE_TOKEN"); token != "" {
		appCfg.Workspace.Token = token
	}
	if *driverFlag != "" && *dsnFlag != "" {
		appCfg.Database.Type = *driverFlag
		appCfg.Database.DSN = *dsnFlag
	}
	if *migrationsFlag != "" {
		appCfg.Sync.MigrationsPath = *migrationsFlag
	}
	if *pacing > 0 {
		appCfg.Sync.PacingSeconds = *pacing
	}
	if appCfg.Sync.MigrationsPath == "" {
		appCfg.Sync.MigrationsPath = filepath.Join(".", "migrations")
	}
	if appCfg.Sync.PacingSeconds == 0 {
		appCfg.Sync.PacingSeconds = 1
	}

	driver, dsn, err := config.BuildDriverAndDSN(appCfg.Database)
	if err != nil {
		logger.Fatal("build dsn: %v", err)
	}

	st, err := store.Open(driver, dsn, *timeout)
	if err != nil {
		logger.Fatal("open mirror store: %v", err)
	}
	defer st.Close()
	if err := st.Migrate(appCfg.Sync.MigrationsPath); err != nil {
		logger.Fatal("run migrations: %v", err)
	}

	ctx := context.Background()

	// read-only query path, no workspace credentials needed
	if *search {
		names, err := st.SearchCatalogs(ctx, *term)
		if err != nil {
			logger.Fatal("search catalogs: %v", err)
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return
	}

	if appCfg.Workspace.Host == "" {
		logger.Fatal("workspace host is required (config or -host)")
	}
	if appCfg.Workspace.Token == "" {
		logger.Fatal("workspace token is required (METASTORE_TOKEN)")
	}

	client := metastore.NewClient(metastore.ClientConfig{Token: appCfg.Workspace.Token})
	fetcher := metastore.NewFetcher(appCfg.Workspace.Host, client.Fetch)

	if *getTable != "" {
		table, err := fetcher.GetTable(ctx, *getTable)
		if err != nil {
			logger.Fatal("get table %s: %v", *getTable, err)
		}
		out, err := json.MarshalIndent(table, "", "  ")
		if err != nil {
			logger.Fatal("encode table: %v", err)
		}
		fmt.Println(string(out))
		return
	}

	pacer := mirror.FixedPacer(time.Duration(appCfg.Sync.PacingSeconds) * time.Second)
	syncer := mirror.NewSyncer(fetcher, st, pacer)

	// each phase runs independently; a failed phase does not stop the next
	if err := syncer.SyncCatalogs(ctx); err != nil {
		logger.Error("catalog sync: %v", err)
	}
	if err := syncer.SyncAllSchemas(ctx); err != nil {
		logger.Error("schema sync: %v", err)
	}
	if err := syncer.SyncAllTables(ctx); err != nil {
		logger.Error("table sync: %v", err)
	}
}
