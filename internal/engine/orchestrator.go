package engine

import (
	"log"

	"mysql2pg/internal/schema"
)

// TableStatus is the terminal state of one table's migration.
type TableStatus string

const (
	StatusSkipped TableStatus = "SKIPPED"
	StatusCopied  TableStatus = "COPIED"
	StatusFailed  TableStatus = "FAILED"
)

// TableResult records the outcome for one table.
type TableResult struct {
	Table    string
	Decision Decision
	Status   TableStatus
	Rows     int64 // cumulative rows written, exact even on failure
	Err      error
}

// Summary aggregates a whole run.
type Summary struct {
	Skipped    int
	Created    int
	Recreated  int
	Truncated  int
	RowsCopied int64
	Results    []TableResult
}

// Failures returns the failed tables in run order.
func (s *Summary) Failures() []TableResult {
	var failed []TableResult
	for _, r := range s.Results {
		if r.Status == StatusFailed {
			failed = append(failed, r)
		}
	}
	return failed
}

// Failed reports whether any table ended in StatusFailed.
func (s *Summary) Failed() bool {
	return len(s.Failures()) > 0
}

// Catalog is the slice of schema.Inspector the orchestrator needs,
// kept as an interface so runs can be driven against fakes.
type Catalog interface {
	ListTables() ([]string, error)
	Describe(table string) (*schema.Table, error)
	TableExists(table string) (bool, error)
}

// Orchestrator runs the full pipeline per table: inspect, decide,
// provision, copy. One table's failure never aborts the run.
type Orchestrator struct {
	source      Catalog
	target      Catalog
	provisioner *Provisioner
	copier      *Copier
	recreate    bool
	truncate    bool
}

func NewOrchestrator(source, target Catalog, p *Provisioner, c *Copier, recreate, truncate bool) *Orchestrator {
	return &Orchestrator{
		source:      source,
		target:      target,
		provisioner: p,
		copier:      c,
		recreate:    recreate,
		truncate:    truncate,
	}
}

// Run processes every source table in lexicographic order and returns
// the aggregated summary. The returned error covers run-level failures
// only (source catalog unreachable); per-table errors land in the
// summary instead.
func (o *Orchestrator) Run() (*Summary, error) {
	tables, err := o.source.ListTables()
	if err != nil {
		return nil, err
	}

	summary := &Summary{}
	for _, name := range tables {
		res := o.migrateTable(name)

		switch res.Status {
		case StatusSkipped:
			summary.Skipped++
		case StatusCopied:
			switch res.Decision {
			case DecisionCreate:
				summary.Created++
			case DecisionRecreate:
				summary.Recreated++
			case DecisionTruncate:
				summary.Truncated++
			}
		case StatusFailed:
			log.Printf("Table %s failed: %v (continuing...)", name, res.Err)
		}
		summary.RowsCopied += res.Rows
		summary.Results = append(summary.Results, res)
	}
	return summary, nil
}

func (o *Orchestrator) migrateTable(name string) TableResult {
	res := TableResult{Table: name}

	t, err := o.source.Describe(name)
	if err != nil {
		res.Status = StatusFailed
		res.Err = err
		return res
	}

	exists, err := o.target.TableExists(name)
	if err != nil {
		res.Status = StatusFailed
		res.Err = err
		return res
	}

	res.Decision, err = o.provisioner.Provision(t, exists, o.recreate, o.truncate)
	if err != nil {
		res.Status = StatusFailed
		res.Err = err
		return res
	}
	if res.Decision == DecisionSkip {
		res.Status = StatusSkipped
		return res
	}
	log.Printf("Table %s: %s", name, res.Decision)

	res.Rows, err = o.copier.Copy(t)
	if err != nil {
		// partial rows stay in res.Rows so the summary can surface them
		res.Status = StatusFailed
		res.Err = err
		return res
	}
	res.Status = StatusCopied
	return res
}
