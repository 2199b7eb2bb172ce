package engine_test

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"strings"

	"mysql2pg/internal/db"
)

// fakeRows replays canned result sets through the db.Rows interface.
type fakeRows struct {
	data [][]any
	idx  int
}

func (r *fakeRows) Next() bool {
	if r.idx >= len(r.data) {
		return false
	}
	r.idx++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.data[r.idx-1]
	if len(dest) != len(row) {
		return fmt.Errorf("scan: %d destinations for %d values", len(dest), len(row))
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *any:
			*p = row[i]
		case *int64:
			*p = row[i].(int64)
		default:
			return fmt.Errorf("scan: unsupported destination %T", d)
		}
	}
	return nil
}

func (r *fakeRows) Err() error   { return nil }
func (r *fakeRows) Close() error { return nil }

// fakeSource serves per-table row sets for both the COUNT query and the
// row scan. Tables are matched by their backtick-quoted name.
type fakeSource struct {
	rowsByTable map[string][][]any
	queries     []string
}

func (s *fakeSource) Query(query string, args ...any) (db.Rows, error) {
	s.queries = append(s.queries, query)
	for name, rows := range s.rowsByTable {
		if !strings.Contains(query, "`"+name+"`") {
			continue
		}
		if strings.HasPrefix(query, "SELECT COUNT(*)") {
			return &fakeRows{data: [][]any{{int64(len(rows))}}}, nil
		}
		return &fakeRows{data: rows}, nil
	}
	return &fakeRows{}, nil
}

// fakeExecer records writes and can be scripted to fail. errFor is
// consulted per call; a nil return means success.
type fakeExecer struct {
	queries []string
	argRows [][]any
	errFor  func(query string, call int) error
	calls   int
}

func (e *fakeExecer) Exec(query string, args ...any) (sql.Result, error) {
	e.calls++
	e.queries = append(e.queries, query)
	e.argRows = append(e.argRows, args)
	if e.errFor != nil {
		if err := e.errFor(query, e.calls); err != nil {
			return nil, err
		}
	}
	return driver.RowsAffected(int64(len(args))), nil
}

func (e *fakeExecer) inserts() []string {
	var ins []string
	for _, q := range e.queries {
		if strings.HasPrefix(q, "INSERT") {
			ins = append(ins, q)
		}
	}
	return ins
}
