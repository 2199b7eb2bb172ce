package dialect

// Dialect abstracts engine-specific SQL generation.
type Dialect interface {
	// Metadata Queries (Schema Introspection)
	TablesQuery() string
	ColumnsQuery() string
	TableExistsQuery() string

	// Identifier / placeholder rendering
	QuoteIdent(name string) string
	Placeholder(index int) string // Returns ?, $1, ...
	SchemaName(configured string) string

	// Query Generation
	CountQuery(table string) string
	SelectQuery(table string, cols []string, orderBy []string) string
	InsertQuery(table string, cols []string, rows int) string
	CreateTableQuery(table string, columnDefs []string) string
	DropTableQuery(table string) string
	TruncateQuery(table string) string
}
