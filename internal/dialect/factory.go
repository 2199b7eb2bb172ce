package dialect

// ForDriver returns the appropriate Dialect implementation based on driver name.
func ForDriver(driver string) Dialect {
	switch driver {
	case "postgres":
		return &PostgresDialect{}
	default: // mysql
		return &MysqlDialect{}
	}
}

// Ensure interface implementation
var _ Dialect = (*MysqlDialect)(nil)
var _ Dialect = (*PostgresDialect)(nil)
