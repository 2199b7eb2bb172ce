package engine

import (
	"fmt"
	"strings"

	"mysql2pg/internal/db"
	"mysql2pg/internal/dialect"
	"mysql2pg/internal/schema"
	"mysql2pg/internal/typemap"
)

// Progress receives one update after every chunk write. total is the
// source row count taken before the copy started; copied is cumulative
// for the current table.
type Progress func(table string, copied, total int64)

// writeRetries bounds the attempts for one chunk write. Only transient
// connection errors are retried.
const writeRetries = 3

// Copier streams rows from source to target in fixed-size chunks.
type Copier struct {
	source   db.Querier
	target   db.Execer
	src      dialect.Dialect
	tgt      dialect.Dialect
	chunk    int
	progress Progress
}

func NewCopier(source db.Querier, target db.Execer, src, tgt dialect.Dialect, chunkSize int, progress Progress) (*Copier, error) {
	if chunkSize < 1 {
		return nil, fmt.Errorf("chunk size must be at least 1, got %d", chunkSize)
	}
	return &Copier{
		source:   source,
		target:   target,
		src:      src,
		tgt:      tgt,
		chunk:    chunkSize,
		progress: progress,
	}, nil
}

// Copy transfers every row of the table and returns the cumulative row
// count, which is exact even when the copy aborts mid-table. A single
// ordered scan feeds the chunks so the source is read once, without
// LIMIT/OFFSET re-queries.
func (c *Copier) Copy(t *schema.Table) (int64, error) {
	total, err := c.countRows(t.Name)
	if err != nil {
		return 0, err
	}
	if total == 0 {
		return 0, nil
	}

	cols := t.ColumnNames()
	rows, err := c.source.Query(c.src.SelectQuery(t.Name, cols, t.PrimaryKeyColumns()))
	if err != nil {
		return 0, fmt.Errorf("failed to read rows of %s: %w", t.Name, err)
	}
	defer rows.Close()

	var copied int64
	batch := make([][]any, 0, c.chunk)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := c.writeChunk(t.Name, cols, batch); err != nil {
			return err
		}
		copied += int64(len(batch))
		batch = batch[:0]
		if c.progress != nil {
			c.progress(t.Name, copied, total)
		}
		return nil
	}

	for rows.Next() {
		vals, err := scanRow(rows, t)
		if err != nil {
			return copied, err
		}
		batch = append(batch, vals)
		if len(batch) == c.chunk {
			if err := flush(); err != nil {
				return copied, err
			}
		}
	}
	if err := rows.Err(); err != nil {
		return copied, fmt.Errorf("error iterating rows of %s: %w", t.Name, err)
	}
	if err := flush(); err != nil {
		return copied, err
	}
	return copied, nil
}

func (c *Copier) countRows(table string) (int64, error) {
	rows, err := c.source.Query(c.src.CountQuery(table))
	if err != nil {
		return 0, fmt.Errorf("failed to count rows of %s: %w", table, err)
	}
	defer rows.Close()

	var total int64
	if rows.Next() {
		if err := rows.Scan(&total); err != nil {
			return 0, fmt.Errorf("failed to scan row count of %s: %w", table, err)
		}
	}
	return total, rows.Err()
}

// writeChunk inserts one batch as a single multi-row statement,
// retrying transient failures a bounded number of times.
func (c *Copier) writeChunk(table string, cols []string, batch [][]any) error {
	query := c.tgt.InsertQuery(table, cols, len(batch))
	args := make([]any, 0, len(batch)*len(cols))
	for _, row := range batch {
		args = append(args, row...)
	}

	var err error
	for attempt := 1; attempt <= writeRetries; attempt++ {
		if _, err = c.target.Exec(query, args...); err == nil {
			return nil
		}
		if !IsTransient(err) {
			break
		}
	}
	return fmt.Errorf("chunk write failed for %s: %w", table, err)
}

// scanRow reads one source row into the table's column order. The MySQL
// driver hands most values back as []byte; those are passed to the
// target as strings unless the column is genuinely binary, so text
// columns do not arrive as bytea. Bit columns come back binary-encoded
// and are rewritten as boolean / bit-string values the target types
// generated for them can parse.
func scanRow(rows db.Rows, t *schema.Table) ([]any, error) {
	vals := make([]any, len(t.Columns))
	ptrs := make([]any, len(t.Columns))
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	if err := rows.Scan(ptrs...); err != nil {
		return nil, fmt.Errorf("failed to scan row of %s: %w", t.Name, err)
	}

	for i, col := range t.Columns {
		b, ok := vals[i].([]byte)
		if !ok {
			continue
		}
		switch width := typemap.BitWidth(col.ColumnType); {
		case typemap.IsBinary(col.ColumnType):
			// raw bytes go to bytea untouched
		case width == 1:
			vals[i] = anyBitSet(b)
		case width > 1:
			vals[i] = bitString(b, width)
		default:
			vals[i] = string(b)
		}
	}
	return vals, nil
}

func anyBitSet(b []byte) bool {
	for _, by := range b {
		if by != 0 {
			return true
		}
	}
	return false
}

// bitString renders MySQL's big-endian bit value as the '0'/'1' literal
// PostgreSQL expects for bit varying, padded to the declared width.
func bitString(b []byte, width int) string {
	var sb strings.Builder
	for _, by := range b {
		fmt.Fprintf(&sb, "%08b", by)
	}
	s := sb.String()
	if len(s) > width {
		s = s[len(s)-width:]
	}
	if len(s) < width {
		s = strings.Repeat("0", width-len(s)) + s
	}
	return s
}
