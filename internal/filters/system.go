package filters

import (
	"net/url"
	"strings"
)

// SystemColumns maps orderable system fields to SQL columns.
// Queries alias hydroponic_systems as s and users as u.
var SystemColumns = map[string]string{
	"name":  "s.name",
	"owner": "u.username",
	"slug":  "s.slug",
}

var defaultSystemOrdering = Ordering{{Name: "name"}}

// SystemFilter holds the user-supplied filters of the systems list.
type SystemFilter struct {
	Name          string // case-insensitive substring of the name
	OwnerUsername string // case-insensitive exact owner username
	Slug          string // case-insensitive exact slug
	Ordering      Ordering
}

// ParseSystemFilter reads name, owner__username, slug and ordering.
func ParseSystemFilter(q url.Values) (SystemFilter, error) {
	return SystemFilter{
		Name:          first(q, "name", "name__icontains"),
		OwnerUsername: first(q, "owner__username", "owner__username__iexact"),
		Slug:          first(q, "slug", "slug__iexact"),
		Ordering:      ParseOrdering(q, SystemColumns),
	}, nil
}

// Apply adds the filter predicates to w.
func (f SystemFilter) Apply(w *Where) {
	if f.Name != "" {
		w.Add(`s.name ILIKE ?`, Contains(f.Name))
	}
	if f.OwnerUsername != "" {
		w.Add(`LOWER(u.username) = LOWER(?)`, f.OwnerUsername)
	}
	if f.Slug != "" {
		w.Add(`LOWER(s.slug) = LOWER(?)`, f.Slug)
	}
}

// OrderBy renders the ORDER BY clause, defaulting to name ascending.
func (f SystemFilter) OrderBy() string {
	return f.Ordering.SQL(SystemColumns, defaultSystemOrdering, "s.system_id ASC")
}

// first returns the first non-empty value among the given parameter names.
func first(q url.Values, names ...string) string {
	for _, name := range names {
		if v := strings.TrimSpace(q.Get(name)); v != "" {
			return v
		}
	}
	return ""
}
