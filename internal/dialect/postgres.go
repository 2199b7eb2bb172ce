package dialect

import (
	"fmt"
	"strings"
)

type PostgresDialect struct{}

func (d *PostgresDialect) TablesQuery() string {
	// use $1 placeholder
	return `SELECT TABLE_NAME FROM information_schema.TABLES WHERE TABLE_SCHEMA = $1 AND TABLE_TYPE = 'BASE TABLE'`
}

func (d *PostgresDialect) ColumnsQuery() string {
	return `SELECT
    c.column_name,
    c.data_type,
    c.udt_name,
    c.is_nullable,
    (SELECT 'PRI' FROM information_schema.table_constraints tc
     JOIN information_schema.key_column_usage kcu ON tc.constraint_name = kcu.constraint_name
     WHERE tc.constraint_type = 'PRIMARY KEY'
     AND kcu.table_schema = c.table_schema AND kcu.table_name = c.table_name AND kcu.column_name = c.column_name LIMIT 1) AS COLUMN_KEY,
    c.column_default
FROM information_schema.columns c
WHERE c.table_schema = $1 AND c.table_name = $2
ORDER BY c.ordinal_position`
}

func (d *PostgresDialect) TableExistsQuery() string {
	return `SELECT COUNT(*) FROM information_schema.TABLES WHERE TABLE_SCHEMA = $1 AND TABLE_NAME = $2`
}

func (d *PostgresDialect) QuoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func (d *PostgresDialect) Placeholder(index int) string {
	return fmt.Sprintf("$%d", index+1)
}

func (d *PostgresDialect) SchemaName(configured string) string {
	if configured == "" {
		return "public"
	}
	return configured
}

func (d *PostgresDialect) CountQuery(table string) string {
	return fmt.Sprintf("SELECT COUNT(*) FROM %s", d.QuoteIdent(table))
}

func (d *PostgresDialect) SelectQuery(table string, cols []string, orderBy []string) string {
	quoted := QuoteAll(cols, d.QuoteIdent)
	query := fmt.Sprintf("SELECT %s FROM %s", strings.Join(quoted, ", "), d.QuoteIdent(table))
	if len(orderBy) > 0 {
		query += " ORDER BY " + strings.Join(QuoteAll(orderBy, d.QuoteIdent), ", ")
	}
	return query
}

func (d *PostgresDialect) InsertQuery(table string, cols []string, rows int) string {
	// Generate placeholders ($1, $2, ...) across all value rows
	vals := GenerateValueRows(rows, len(cols), d.Placeholder)
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES %s",
		d.QuoteIdent(table), strings.Join(QuoteAll(cols, d.QuoteIdent), ", "), vals)
}

func (d *PostgresDialect) CreateTableQuery(table string, columnDefs []string) string {
	return fmt.Sprintf("CREATE TABLE %s (%s)", d.QuoteIdent(table), strings.Join(columnDefs, ", "))
}

func (d *PostgresDialect) DropTableQuery(table string) string {
	return fmt.Sprintf("DROP TABLE %s CASCADE", d.QuoteIdent(table))
}

func (d *PostgresDialect) TruncateQuery(table string) string {
	return fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", d.QuoteIdent(table))
}
