package filters

import (
	"net/url"
	"strings"
)

// OrderingParam is the query parameter holding a comma-separated ordering list.
const OrderingParam = "ordering"

// OrderField is one ordering term; Name is the public field name.
type OrderField struct {
	Name string
	Desc bool
}

// Ordering is an ordered list of terms.
type Ordering []OrderField

// ParseOrdering reads "a,-b" style ordering and keeps only fields present in
// allowed. Unknown or repeated fields are ignored.
func ParseOrdering(q url.Values, allowed map[string]string) Ordering {
	var out Ordering
	seen := make(map[string]bool)
	for _, raw := range q[OrderingParam] {
		for _, term := range strings.Split(raw, ",") {
			term = strings.TrimSpace(term)
			desc := strings.HasPrefix(term, "-")
			name := strings.TrimPrefix(term, "-")
			if _, ok := allowed[name]; !ok || seen[name] {
				continue
			}
			seen[name] = true
			out = append(out, OrderField{Name: name, Desc: desc})
		}
	}
	return out
}

// SQL renders " ORDER BY ..." using the column mapping, falling back to def
// when the ordering is empty. tiebreak is always appended for a stable order.
func (o Ordering) SQL(columns map[string]string, def Ordering, tiebreak string) string {
	if len(o) == 0 {
		o = def
	}
	terms := make([]string, 0, len(o)+1)
	for _, f := range o {
		col, ok := columns[f.Name]
		if !ok {
			continue
		}
		if f.Desc {
			terms = append(terms, col+" DESC")
		} else {
			terms = append(terms, col+" ASC")
		}
	}
	terms = append(terms, tiebreak)
	return " ORDER BY " + strings.Join(terms, ", ")
}
