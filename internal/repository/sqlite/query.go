package sqlite

import "strings"

// queryBuilder accumulates optional predicates over a base SELECT and
// renders them as a single WHERE clause joined with AND, keeping every
// variable value as a bound parameter.
type queryBuilder struct {
	base  string
	conds []string
	args  []any
	order string
}

func newQuery(base string) *queryBuilder {
	return &queryBuilder{base: base}
}

func (q *queryBuilder) where(expr string, args ...any) *queryBuilder {
	q.conds = append(q.conds, expr)
	q.args = append(q.args, args...)
	return q
}

func (q *queryBuilder) orderBy(clause string) *queryBuilder {
	q.order = clause
	return q
}

func (q *queryBuilder) build() (string, []any) {
	var sb strings.Builder
	sb.WriteString(q.base)
	if len(q.conds) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(q.conds, " AND "))
	}
	if q.order != "" {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(q.order)
	}
	return sb.String(), q.args
}
