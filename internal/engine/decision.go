package engine

// Decision is the per-table provisioning outcome. Exactly one decision
// is made per table per run.
type Decision int

const (
	DecisionSkip Decision = iota
	DecisionTruncate
	DecisionRecreate
	DecisionCreate
)

func (d Decision) String() string {
	switch d {
	case DecisionSkip:
		return "skip"
	case DecisionTruncate:
		return "truncate"
	case DecisionRecreate:
		return "recreate"
	case DecisionCreate:
		return "create"
	}
	return "unknown"
}

// Decide resolves the provisioning decision for one table. A table
// missing from the target is always created; for existing tables
// recreate wins over truncate, and with neither flag the table is
// left untouched.
func Decide(existsInTarget, recreate, truncate bool) Decision {
	switch {
	case !existsInTarget:
		return DecisionCreate
	case recreate:
		return DecisionRecreate
	case truncate:
		return DecisionTruncate
	default:
		return DecisionSkip
	}
}
