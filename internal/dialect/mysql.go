package dialect

import (
	"fmt"
	"strings"
)

type MysqlDialect struct{}

func (d *MysqlDialect) TablesQuery() string {
	return `SELECT TABLE_NAME FROM information_schema.TABLES WHERE TABLE_SCHEMA = ? AND TABLE_TYPE = 'BASE TABLE'`
}

func (d *MysqlDialect) ColumnsQuery() string {
	return `SELECT COLUMN_NAME, DATA_TYPE, COLUMN_TYPE, IS_NULLABLE, COLUMN_KEY, EXTRA FROM information_schema.COLUMNS WHERE TABLE_SCHEMA = ? AND TABLE_NAME = ? ORDER BY ORDINAL_POSITION`
}

func (d *MysqlDialect) TableExistsQuery() string {
	return `SELECT COUNT(*) FROM information_schema.TABLES WHERE TABLE_SCHEMA = ? AND TABLE_NAME = ?`
}

func (d *MysqlDialect) QuoteIdent(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

func (d *MysqlDialect) Placeholder(index int) string {
	return "?"
}

func (d *MysqlDialect) SchemaName(configured string) string {
	return configured
}

func (d *MysqlDialect) CountQuery(table string) string {
	return fmt.Sprintf("SELECT COUNT(*) FROM %s", d.QuoteIdent(table))
}

func (d *MysqlDialect) SelectQuery(table string, cols []string, orderBy []string) string {
	quoted := QuoteAll(cols, d.QuoteIdent)
	query := fmt.Sprintf("SELECT %s FROM %s", strings.Join(quoted, ", "), d.QuoteIdent(table))
	if len(orderBy) > 0 {
		query += " ORDER BY " + strings.Join(QuoteAll(orderBy, d.QuoteIdent), ", ")
	}
	return query
}

func (d *MysqlDialect) InsertQuery(table string, cols []string, rows int) string {
	vals := GenerateValueRows(rows, len(cols), d.Placeholder)
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES %s",
		d.QuoteIdent(table), strings.Join(QuoteAll(cols, d.QuoteIdent), ", "), vals)
}

func (d *MysqlDialect) CreateTableQuery(table string, columnDefs []string) string {
	return fmt.Sprintf("CREATE TABLE %s (%s)", d.QuoteIdent(table), strings.Join(columnDefs, ", "))
}

func (d *MysqlDialect) DropTableQuery(table string) string {
	return fmt.Sprintf("DROP TABLE %s", d.QuoteIdent(table))
}

func (d *MysqlDialect) TruncateQuery(table string) string {
	return fmt.Sprintf("TRUNCATE TABLE %s", d.QuoteIdent(table))
}
