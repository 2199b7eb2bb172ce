package dialect

import (
	"strings"
)

// GenerateValueRows renders the VALUES clause placeholders for a batched
// insert of `rows` tuples of `cols` columns each. Placeholder indexes run
// across the whole statement, so $1..$n dialects stay valid.
func GenerateValueRows(rows, cols int, placeholderFunc func(int) string) string {
	tuples := make([]string, rows)
	idx := 0
	for r := 0; r < rows; r++ {
		placeholders := make([]string, cols)
		for c := 0; c < cols; c++ {
			placeholders[c] = placeholderFunc(idx)
			idx++
		}
		tuples[r] = "(" + strings.Join(placeholders, ", ") + ")"
	}
	return strings.Join(tuples, ", ")
}

// QuoteAll applies an identifier quoting function to every name.
func QuoteAll(names []string, quote func(string) string) []string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = quote(n)
	}
	return quoted
}
