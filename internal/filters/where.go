package filters

import "strings"

// Where accumulates AND-ed SQL predicates written with `?` placeholders.
// Callers rebind the final query for their driver.
type Where struct {
	clauses []string
	args    []any
}

// Add appends a predicate and its arguments.
func (w *Where) Add(clause string, args ...any) {
	w.clauses = append(w.clauses, clause)
	w.args = append(w.args, args...)
}

// SQL renders " WHERE a AND b", or an empty string when nothing was added.
func (w *Where) SQL() string {
	if len(w.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.clauses, " AND ")
}

// Args returns the accumulated placeholder arguments in order.
func (w *Where) Args() []any {
	return w.args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Contains builds an ILIKE pattern matching v as a literal substring.
func Contains(v string) string {
	return "%" + likeEscaper.Replace(v) + "%"
}

// StartsWith builds a LIKE pattern matching values that begin with v.
func StartsWith(v string) string {
	return likeEscaper.Replace(v) + "%"
}
