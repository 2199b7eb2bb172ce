package schema

// Column describes one source column as reported by the catalog.
type Column struct {
	Name         string
	DataType     string // bare type name, e.g. "varchar"
	ColumnType   string // full vendor type with qualifiers, e.g. "varchar(120)"
	IsNullable   bool
	IsPrimaryKey bool
	IsAutoInc    bool
}

// Table is a named, ordered column list. Column order is significant:
// it drives both the generated CREATE statement and the value tuples
// during copy.
type Table struct {
	Name    string
	Columns []*Column
}

// ColumnNames returns the column names in declaration order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// PrimaryKeyColumns returns the names of primary-key columns, in
// declaration order.
func (t *Table) PrimaryKeyColumns() []string {
	var keys []string
	for _, c := range t.Columns {
		if c.IsPrimaryKey {
			keys = append(keys, c.Name)
		}
	}
	return keys
}
