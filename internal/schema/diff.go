package schema

import "sort"

// DiffResult splits the source table set by presence in the target.
type DiffResult struct {
	Missing []string // in source, not in target
	Present []string // in both
}

// Diff partitions sourceNames against targetNames. Pure set logic, no
// catalog access; both result slices come back sorted.
func Diff(sourceNames, targetNames []string) DiffResult {
	inTarget := make(map[string]bool, len(targetNames))
	for _, name := range targetNames {
		inTarget[name] = true
	}

	var res DiffResult
	for _, name := range sourceNames {
		if inTarget[name] {
			res.Present = append(res.Present, name)
		} else {
			res.Missing = append(res.Missing, name)
		}
	}
	sort.Strings(res.Missing)
	sort.Strings(res.Present)
	return res
}
