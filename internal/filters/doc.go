// Package filters turns list-endpoint query parameters into typed filters and
// renders them as SQL predicates and ORDER BY clauses.
//
// Filters never decide row visibility: repositories always add the owner
// predicate first, and these predicates are ANDed onto it.
package filters
