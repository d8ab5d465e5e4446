// Package main implements the tabledef command. It loads a declarative
// schema document, prints the generated CREATE TABLE statements, and can
// apply them to a SQLite database.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/tabledef/tabledef/internal/apply"
	"github.com/tabledef/tabledef/internal/config"
	"github.com/tabledef/tabledef/internal/schemafile"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	var (
		configFile  string
		schemaPath  string
		dbPath      string
		showVersion bool
	)

	flag.StringVar(&configFile, "config", "", "Path to configuration file (YAML or JSON)")
	flag.StringVar(&schemaPath, "schema", "", "Path to schema document (YAML or JSON)")
	flag.StringVar(&dbPath, "db", "", "SQLite database to apply the statements to")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "tabledef - Typed SQL DDL generation for SQLite\n\n")
		fmt.Fprintf(os.Stderr, "Usage: tabledef [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  tabledef --schema schema.yaml\n")
		fmt.Fprintf(os.Stderr, "  tabledef --schema schema.yaml --db app.db\n")
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  TABLEDEF_SCHEMA   Path to schema document\n")
		fmt.Fprintf(os.Stderr, "  TABLEDEF_DB       SQLite database to apply to\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("tabledef %s (%s)\n", version, commit)
		os.Exit(0)
	}

	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.LoadFromFile(configFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}
	config.LoadFromEnv(cfg)
	if schemaPath != "" {
		cfg.SchemaPath = schemaPath
	}
	if dbPath != "" {
		cfg.DatabasePath = dbPath
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	doc, err := schemafile.Load(cfg.SchemaPath)
	if err != nil {
		log.Fatalf("Failed to load schema: %v", err)
	}
	tables, err := doc.Build()
	if err != nil {
		log.Fatalf("Failed to build schema: %v", err)
	}

	for _, table := range tables {
		fmt.Printf("%s;\n", table.CreateSQL())
	}

	if cfg.DatabasePath == "" {
		return
	}

	applier, err := apply.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer applier.Close()

	applied, err := applier.ApplyTables(context.Background(), tables)
	if err != nil {
		log.Fatalf("Failed to apply schema: %v", err)
	}
	log.Printf("tabledef: applied %d of %d statements to %s", applied, len(tables), cfg.DatabasePath)
}
