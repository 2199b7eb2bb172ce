package schema

import (
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"mysql2pg/internal/db"
	"mysql2pg/internal/dialect"
)

// ErrTableNotFound is returned by Describe when the table has vanished
// between listing and inspection.
var ErrTableNotFound = errors.New("table not found")

// Inspector reads catalog metadata from one database.
type Inspector struct {
	conn   db.Querier
	d      dialect.Dialect
	schema string
}

func NewInspector(conn db.Querier, d dialect.Dialect, schemaName string) *Inspector {
	return &Inspector{conn: conn, d: d, schema: d.SchemaName(schemaName)}
}

// ListTables returns the base table names of the schema, sorted
// lexicographically so that repeated runs report in the same order.
func (in *Inspector) ListTables() ([]string, error) {
	rows, err := in.conn.Query(in.d.TablesQuery(), in.schema)
	if err != nil {
		return nil, fmt.Errorf("failed to query tables: %w", err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %w", err)
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tables: %w", err)
	}

	sort.Strings(tables)
	return tables, nil
}

// Describe fetches the ordered column definitions of one table.
func (in *Inspector) Describe(table string) (*Table, error) {
	rows, err := in.conn.Query(in.d.ColumnsQuery(), in.schema, table)
	if err != nil {
		return nil, fmt.Errorf("failed to query columns of %s: %w", table, err)
	}
	defer rows.Close()

	t := &Table{Name: table}
	for rows.Next() {
		var name, dType, cType, isNull, cKey, extra sql.NullString
		if err := rows.Scan(&name, &dType, &cType, &isNull, &cKey, &extra); err != nil {
			return nil, fmt.Errorf("failed to scan column (table: %s): %w", table, err)
		}
		if !name.Valid {
			continue
		}

		extraLower := strings.ToLower(extra.String)
		t.Columns = append(t.Columns, &Column{
			Name:         name.String,
			DataType:     strings.ToLower(dType.String),
			ColumnType:   strings.ToLower(cType.String),
			IsNullable:   strings.EqualFold(isNull.String, "YES"),
			IsPrimaryKey: strings.Contains(cKey.String, "PRI"),
			IsAutoInc: strings.Contains(extraLower, "auto_increment") ||
				strings.Contains(extraLower, "nextval"),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating columns of %s: %w", table, err)
	}

	if len(t.Columns) == 0 {
		return nil, fmt.Errorf("%s: %w", table, ErrTableNotFound)
	}
	return t, nil
}

// TableExists reports whether the table is present in the schema.
func (in *Inspector) TableExists(table string) (bool, error) {
	rows, err := in.conn.Query(in.d.TableExistsQuery(), in.schema, table)
	if err != nil {
		return false, fmt.Errorf("failed to check existence of %s: %w", table, err)
	}
	defer rows.Close()

	var count int
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return false, fmt.Errorf("failed to scan existence of %s: %w", table, err)
		}
	}
	return count > 0, rows.Err()
}
