package engine

import (
	"fmt"
	"strings"

	"mysql2pg/internal/db"
	"mysql2pg/internal/dialect"
	"mysql2pg/internal/schema"
	"mysql2pg/internal/typemap"
)

// Provisioner readies target tables for loading: it resolves the
// per-table decision and executes the matching DDL/DML.
type Provisioner struct {
	target db.Execer
	d      dialect.Dialect
	mapper *typemap.Mapper
}

func NewProvisioner(target db.Execer, d dialect.Dialect, mapper *typemap.Mapper) *Provisioner {
	return &Provisioner{target: target, d: d, mapper: mapper}
}

// Provision applies the decision for one table. A DDL failure is fatal
// for that table only; the caller moves on to the next one.
func (p *Provisioner) Provision(t *schema.Table, existsInTarget, recreate, truncate bool) (Decision, error) {
	dec := Decide(existsInTarget, recreate, truncate)

	switch dec {
	case DecisionSkip:
		return dec, nil

	case DecisionTruncate:
		if _, err := p.target.Exec(p.d.TruncateQuery(t.Name)); err != nil {
			return dec, fmt.Errorf("failed to truncate %s: %w", t.Name, err)
		}

	case DecisionRecreate:
		if _, err := p.target.Exec(p.d.DropTableQuery(t.Name)); err != nil {
			return dec, fmt.Errorf("failed to drop %s: %w", t.Name, err)
		}
		if err := p.createTable(t); err != nil {
			return dec, err
		}

	case DecisionCreate:
		if err := p.createTable(t); err != nil {
			return dec, err
		}
	}
	return dec, nil
}

// createTable builds the CREATE statement column by column, preserving
// the source column order.
func (p *Provisioner) createTable(t *schema.Table) error {
	defs := make([]string, 0, len(t.Columns)+1)
	for _, col := range t.Columns {
		def := p.d.QuoteIdent(col.Name) + " " + p.mapper.MapColumn(col)
		if !col.IsNullable {
			def += " NOT NULL"
		}
		defs = append(defs, def)
	}
	if pks := t.PrimaryKeyColumns(); len(pks) > 0 {
		defs = append(defs, fmt.Sprintf("PRIMARY KEY (%s)",
			strings.Join(dialect.QuoteAll(pks, p.d.QuoteIdent), ", ")))
	}

	if _, err := p.target.Exec(p.d.CreateTableQuery(t.Name, defs)); err != nil {
		return fmt.Errorf("failed to create %s: %w", t.Name, err)
	}
	return nil
}
