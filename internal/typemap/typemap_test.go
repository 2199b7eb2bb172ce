package typemap_test

import (
	"testing"

	"mysql2pg/internal/schema"
	"mysql2pg/internal/typemap"
)

func TestMapRecognizedTypes(t *testing.T) {
	cases := []struct {
		source string
		want   string
	}{
		{"tinyint(1)", "boolean"},
		{"tinyint(4)", "smallint"},
		{"smallint(6)", "smallint"},
		{"smallint(5) unsigned", "integer"},
		{"mediumint(9)", "integer"},
		{"int(11)", "integer"},
		{"int(10) unsigned", "bigint"},
		{"integer", "integer"},
		{"bigint(20)", "bigint"},
		{"bigint(20) unsigned", "numeric(20)"},
		{"decimal(10,2)", "numeric(10,2)"},
		{"numeric(8,3)", "numeric(8,3)"},
		{"decimal", "numeric"},
		{"float", "real"},
		{"double", "double precision"},
		{"double precision", "double precision"},
		{"bit(1)", "boolean"},
		{"bit(8)", "bit varying(8)"},
		{"char(2)", "char(2)"},
		{"varchar(120)", "varchar(120)"},
		{"tinytext", "text"},
		{"text", "text"},
		{"mediumtext", "text"},
		{"longtext", "text"},
		{"binary(16)", "bytea"},
		{"varbinary(32)", "bytea"},
		{"tinyblob", "bytea"},
		{"blob", "bytea"},
		{"mediumblob", "bytea"},
		{"longblob", "bytea"},
		{"enum('a','b')", "text"},
		{"set('x','y')", "text"},
		{"json", "jsonb"},
		{"year(4)", "smallint"},
		{"date", "date"},
		{"time", "time"},
		{"time(6)", "time(6)"},
		{"datetime", "timestamp"},
		{"datetime(6)", "timestamp(6)"},
		{"timestamp", "timestamp with time zone"},
		{"timestamp(3)", "timestamp(3) with time zone"},
		{"VARCHAR(50)", "varchar(50)"},
	}

	m := typemap.New(func(sourceType string) {
		t.Errorf("unexpected warning for %q", sourceType)
	})

	for _, c := range cases {
		got := m.Map(c.source)
		if got == "" {
			t.Errorf("Map(%q) returned empty type", c.source)
		}
		if got != c.want {
			t.Errorf("Map(%q) = %q, want %q", c.source, got, c.want)
		}
	}
}

func TestMapUnknownTypeFallsBack(t *testing.T) {
	var warnings []string
	m := typemap.New(func(sourceType string) {
		warnings = append(warnings, sourceType)
	})

	got := m.Map("geometrycollection")
	if got != typemap.Fallback {
		t.Errorf("expected fallback %q, got %q", typemap.Fallback, got)
	}
	if len(warnings) != 1 {
		t.Fatalf("expected exactly one warning, got %d", len(warnings))
	}
	if warnings[0] != "geometrycollection" {
		t.Errorf("warning carries %q, want the raw source type", warnings[0])
	}
}

func TestMapUnknownTypeNilWarnFunc(t *testing.T) {
	m := typemap.New(nil)
	if got := m.Map("point"); got != typemap.Fallback {
		t.Errorf("expected fallback %q, got %q", typemap.Fallback, got)
	}
}

func TestMapColumnAutoIncrement(t *testing.T) {
	m := typemap.New(nil)

	cases := []struct {
		col  *schema.Column
		want string
	}{
		{&schema.Column{Name: "id", ColumnType: "int(11)", IsAutoInc: true}, "serial"},
		{&schema.Column{Name: "id", ColumnType: "bigint(20)", IsAutoInc: true}, "bigserial"},
		{&schema.Column{Name: "id", ColumnType: "smallint(6)", IsAutoInc: true}, "smallserial"},
		{&schema.Column{Name: "id", ColumnType: "int(11)", IsAutoInc: false}, "integer"},
		// auto_increment on a non-integer type keeps the plain mapping
		{&schema.Column{Name: "v", ColumnType: "varchar(10)", IsAutoInc: true}, "varchar(10)"},
	}
	for _, c := range cases {
		if got := m.MapColumn(c.col); got != c.want {
			t.Errorf("MapColumn(%q, autoinc=%v) = %q, want %q", c.col.ColumnType, c.col.IsAutoInc, got, c.want)
		}
	}
}

func TestBitWidth(t *testing.T) {
	cases := []struct {
		source string
		want   int
	}{
		{"bit(1)", 1},
		{"bit(8)", 8},
		{"bit(12)", 12},
		{"bit", 1},
		{"tinyint(1)", 0},
		{"varbinary(8)", 0},
		{"varchar(50)", 0},
	}
	for _, c := range cases {
		if got := typemap.BitWidth(c.source); got != c.want {
			t.Errorf("BitWidth(%q) = %d, want %d", c.source, got, c.want)
		}
	}
}

func TestIsBinary(t *testing.T) {
	binary := []string{"binary(16)", "varbinary(255)", "tinyblob", "blob", "mediumblob", "longblob"}
	for _, ct := range binary {
		if !typemap.IsBinary(ct) {
			t.Errorf("IsBinary(%q) = false, want true", ct)
		}
	}
	text := []string{"varchar(50)", "text", "char(2)", "json", "int(11)"}
	for _, ct := range text {
		if typemap.IsBinary(ct) {
			t.Errorf("IsBinary(%q) = true, want false", ct)
		}
	}
}
