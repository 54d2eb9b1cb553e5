package db

import "strings"

// Where builds a conjunctive predicate with positional args. Values are never
// interpolated into the clause text; args line up with the order clauses were
// appended.
type Where struct {
	clauses []string
	args    []any
}

// Eq appends an exact-match constraint.
func (w *Where) Eq(column string, value any) *Where {
	w.clauses = append(w.clauses, column+" = ?")
	w.args = append(w.args, value)
	return w
}

// Search appends a case-insensitive substring match over the given columns,
// OR-combined inside one parenthesized group.
func (w *Where) Search(term string, columns ...string) *Where {
	if len(columns) == 0 {
		return w
	}
	parts := make([]string, len(columns))
	like := "%" + term + "%"
	for i, col := range columns {
		parts[i] = col + " LIKE ?"
		w.args = append(w.args, like)
	}
	w.clauses = append(w.clauses, "("+strings.Join(parts, " OR ")+")")
	return w
}

// Clause returns the predicate text. With no constraints it returns an
// always-true clause so the base query stays syntactically complete.
func (w *Where) Clause() string {
	if len(w.clauses) == 0 {
		return "1=1"
	}
	return strings.Join(w.clauses, " AND ")
}

func (w *Where) Args() []any {
	return w.args
}
