package cmd

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"mysql2pg/internal/config"
	"mysql2pg/internal/db"
	"mysql2pg/internal/dialect"
	"mysql2pg/internal/engine"
	"mysql2pg/internal/schema"
	"mysql2pg/internal/typemap"

	"github.com/gosuri/uiprogress"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	source, err := openDB("mysql", cfg.Source.MySQLDSN())
	if err != nil {
		return fmt.Errorf("failed to connect to source MySQL: %w", err)
	}
	defer source.Close()

	target, err := openDB("postgres", cfg.Target.PostgresDSN())
	if err != nil {
		return fmt.Errorf("failed to connect to target PostgreSQL: %w", err)
	}
	defer target.Close()

	srcDialect := dialect.ForDriver("mysql")
	tgtDialect := dialect.ForDriver("postgres")

	srcInspector := schema.NewInspector(db.Conn{DB: source}, srcDialect, cfg.Source.Database)
	tgtInspector := schema.NewInspector(db.Conn{DB: target}, tgtDialect, "")

	sourceTables, err := srcInspector.ListTables()
	if err != nil {
		return err
	}
	targetTables, err := tgtInspector.ListTables()
	if err != nil {
		return err
	}

	diff := schema.Diff(sourceTables, targetTables)
	printComparison(len(sourceTables), diff)

	// Without any flag this is a dry run: report only, no DDL, no rows.
	apply := recreate || truncate || cmd.Flags().Changed("chunk-size")
	if !apply {
		fmt.Println("Dry run: no changes made. Pass --recreate, --truncate or --chunk-size to migrate.")
		return nil
	}

	chunk := viper.GetInt("settings.chunk_size")
	mapper := typemap.New(func(sourceType string) {
		log.Printf("Warning: unsupported MySQL type '%s', defaulting to %s", sourceType, typemap.Fallback)
	})

	uiprogress.Start()
	bars := make(map[string]*uiprogress.Bar)
	progress := func(table string, copied, total int64) {
		bar, ok := bars[table]
		if !ok {
			bar = uiprogress.AddBar(int(total)).AppendCompleted()
			bar.PrependFunc(func(b *uiprogress.Bar) string {
				return fmt.Sprintf("%-20s %d/%d rows", table, b.Current(), total)
			})
			bars[table] = bar
		}
		bar.Set(int(copied))
	}

	copier, err := engine.NewCopier(db.Conn{DB: source}, db.Conn{DB: target}, srcDialect, tgtDialect, chunk, progress)
	if err != nil {
		return err
	}
	provisioner := engine.NewProvisioner(db.Conn{DB: target}, tgtDialect, mapper)
	orch := engine.NewOrchestrator(srcInspector, tgtInspector, provisioner, copier, recreate, truncate)

	start := time.Now()
	summary, err := orch.Run()
	uiprogress.Stop()
	if err != nil {
		return err
	}

	printSummary(summary, time.Since(start))

	if summary.Failed() {
		return fmt.Errorf("%d table(s) failed", len(summary.Failures()))
	}
	return nil
}

func openDB(driver, dsn string) (*sql.DB, error) {
	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, err
	}
	return conn, nil
}

func printComparison(sourceCount int, diff schema.DiffResult) {
	fmt.Println("--- Database Schema Comparison ---")
	fmt.Printf("Found %d tables in the source MySQL database.\n", sourceCount)

	if len(diff.Present) > 0 {
		fmt.Println("\nTables that already exist in the target PostgreSQL database:")
		for _, table := range diff.Present {
			fmt.Printf("  - %s\n", table)
		}
	}
	if len(diff.Missing) > 0 {
		fmt.Println("\nTables that are missing in the target PostgreSQL database:")
		for _, table := range diff.Missing {
			fmt.Printf("  - %s\n", table)
		}
	}
	fmt.Println("----------------------------------")
}

func printSummary(summary *engine.Summary, elapsed time.Duration) {
	fmt.Println("\n📊 Migration Summary:")
	for i, r := range summary.Results {
		icon := "✓"
		detail := fmt.Sprintf("%d rows", r.Rows)
		switch r.Status {
		case engine.StatusFailed:
			icon = "!"
			detail = fmt.Sprintf("%d rows before failure", r.Rows)
		case engine.StatusSkipped:
			detail = "skipped"
		}
		fmt.Printf("[%s] [%02d/%02d] %-20s : %s (%s)\n",
			icon, i+1, len(summary.Results), r.Table, detail, r.Decision)
		if r.Err != nil {
			fmt.Printf("    └ Error: %v\n", r.Err)
		}
	}
	fmt.Println("--------------------------------------------------")
	fmt.Printf("Tables: %d created, %d recreated, %d truncated, %d skipped, %d failed\n",
		summary.Created, summary.Recreated, summary.Truncated, summary.Skipped, len(summary.Failures()))
	fmt.Printf("Total rows copied: %d\n", summary.RowsCopied)
	log.Printf("Migration Done! Time Elapsed: %s", elapsed)
}
