// Package typemap translates MySQL column types into PostgreSQL column
// types. The rules live in an explicit table keyed by the base type name
// so new mappings are one line, not another branch.
package typemap

import (
	"fmt"
	"strconv"
	"strings"

	"mysql2pg/internal/schema"
)

// Fallback is the target type used for source types with no rule.
const Fallback = "text"

// WarnFunc receives one notice per column whose type had no rule.
type WarnFunc func(sourceType string)

// convertFunc builds the target type from the parsed source type.
// args is the raw qualifier list ("10,2" for decimal(10,2)), unsigned
// reports a trailing "unsigned" modifier.
type convertFunc func(args string, unsigned bool) string

func fixed(target string) convertFunc {
	return func(string, bool) string { return target }
}

// withArgs preserves the length/precision qualifiers on the target type.
func withArgs(target string) convertFunc {
	return func(args string, _ bool) string {
		if args == "" {
			return target
		}
		return fmt.Sprintf("%s(%s)", target, args)
	}
}

// widen maps an integer type, stepping up one width for unsigned
// columns since PostgreSQL has no unsigned integers.
func widen(signed, unsigned string) convertFunc {
	return func(_ string, uns bool) string {
		if uns {
			return unsigned
		}
		return signed
	}
}

var rules = map[string]convertFunc{
	"tinyint": func(args string, uns bool) string {
		if args == "1" {
			return "boolean"
		}
		return "smallint"
	},
	"smallint":  widen("smallint", "integer"),
	"mediumint": fixed("integer"),
	"int":       widen("integer", "bigint"),
	"integer":   widen("integer", "bigint"),
	"bigint":    widen("bigint", "numeric(20)"),

	"decimal": withArgs("numeric"),
	"numeric": withArgs("numeric"),
	"dec":     withArgs("numeric"),
	"fixed":   withArgs("numeric"),

	"float":  fixed("real"),
	"double": fixed("double precision"),
	"real":   fixed("double precision"),

	"bit": func(args string, _ bool) string {
		if args == "" || args == "1" {
			return "boolean"
		}
		return fmt.Sprintf("bit varying(%s)", args)
	},
	"bool":    fixed("boolean"),
	"boolean": fixed("boolean"),

	"char":    withArgs("char"),
	"varchar": withArgs("varchar"),

	"tinytext":   fixed("text"),
	"text":       fixed("text"),
	"mediumtext": fixed("text"),
	"longtext":   fixed("text"),

	"binary":     fixed("bytea"),
	"varbinary":  fixed("bytea"),
	"tinyblob":   fixed("bytea"),
	"blob":       fixed("bytea"),
	"mediumblob": fixed("bytea"),
	"longblob":   fixed("bytea"),

	"enum": fixed("text"),
	"set":  fixed("text"),

	"json": fixed("jsonb"),
	"year": fixed("smallint"),

	"date":     fixed("date"),
	"time":     withArgs("time"),
	"datetime": withArgs("timestamp"),
	"timestamp": func(args string, _ bool) string {
		if args == "" {
			return "timestamp with time zone"
		}
		return fmt.Sprintf("timestamp(%s) with time zone", args)
	},
}

// serials maps the target integer type to its auto-increment form,
// a best-effort stand-in for MySQL AUTO_INCREMENT.
var serials = map[string]string{
	"smallint": "smallserial",
	"integer":  "serial",
	"bigint":   "bigserial",
}

// Mapper converts source types, reporting unmapped ones through warn.
type Mapper struct {
	warn WarnFunc
}

func New(warn WarnFunc) *Mapper {
	return &Mapper{warn: warn}
}

// Map translates one raw vendor type, e.g. "varchar(120)" or
// "int(11) unsigned". Unknown types fall back to text with exactly one
// warning; mapping never fails.
func (m *Mapper) Map(columnType string) string {
	base, args, unsigned := parse(columnType)

	conv, ok := rules[base]
	if !ok {
		if m.warn != nil {
			m.warn(columnType)
		}
		return Fallback
	}
	return conv(args, unsigned)
}

// MapColumn translates a column, upgrading auto-increment integers to
// their serial form.
func (m *Mapper) MapColumn(col *schema.Column) string {
	target := m.Map(col.ColumnType)
	if col.IsAutoInc {
		if serial, ok := serials[target]; ok {
			return serial
		}
	}
	return target
}

// BitWidth returns the declared width of a bit column, or 0 when the
// column is not a bit type. A bare "bit" means bit(1) in MySQL.
func BitWidth(columnType string) int {
	base, args, _ := parse(columnType)
	if base != "bit" {
		return 0
	}
	if args == "" {
		return 1
	}
	n, err := strconv.Atoi(args)
	if err != nil {
		return 1
	}
	return n
}

// IsBinary reports whether the source type carries raw bytes that must
// not be coerced to string on the way into bytea.
func IsBinary(columnType string) bool {
	base, _, _ := parse(columnType)
	switch base {
	case "binary", "varbinary", "tinyblob", "blob", "mediumblob", "longblob":
		return true
	}
	return false
}

// parse splits "decimal(10,2) unsigned" into ("decimal", "10,2", true).
func parse(columnType string) (base, args string, unsigned bool) {
	t := strings.ToLower(strings.TrimSpace(columnType))
	unsigned = strings.Contains(t, "unsigned")

	if i := strings.IndexByte(t, '('); i >= 0 {
		base = t[:i]
		if j := strings.IndexByte(t[i:], ')'); j > 0 {
			args = t[i+1 : i+j]
		}
	} else {
		base = t
		if k := strings.IndexByte(base, ' '); k >= 0 {
			base = base[:k]
		}
	}
	base = strings.TrimSpace(base)

	// integer display widths like int(11) are presentation only
	switch base {
	case "tinyint", "bit":
		// width is meaningful (tinyint(1), bit(1) map to boolean)
	case "smallint", "mediumint", "int", "integer", "bigint", "year":
		args = ""
	}
	return base, args, unsigned
}
