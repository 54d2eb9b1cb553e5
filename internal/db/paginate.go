package db

import (
	"database/sql"

	"medsales/internal/domain"
)

// Queryer is the narrow read interface the pagination helper needs.
type Queryer interface {
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

// Count returns the number of rows in table matching the predicate.
func Count(q Queryer, table string, where *Where) (int, error) {
	var total int
	err := q.QueryRow(`SELECT COUNT(*) FROM `+table+` WHERE `+where.Clause(), where.Args()...).Scan(&total)
	if err != nil {
		return 0, Translate(table, err)
	}
	return total, nil
}

// PaginatedQuery runs the count-then-slice pair for one page of table.
// Both round trips use the identical predicate and args; if the count fails
// the slice query never runs. orderBy is a fixed server-side expression and
// must never come from user input. The caller owns closing the returned rows.
func PaginatedQuery(q Queryer, table, columns string, where *Where, orderBy string, req domain.PageRequest) (*sql.Rows, domain.PageMeta, error) {
	total, err := Count(q, table, where)
	if err != nil {
		return nil, domain.PageMeta{}, err
	}

	meta := domain.BuildPageMeta(req, total)

	query := `SELECT ` + columns + ` FROM ` + table +
		` WHERE ` + where.Clause() +
		` ORDER BY ` + orderBy +
		` LIMIT ? OFFSET ?`
	args := append(append([]any{}, where.Args()...), req.PageSize, req.Offset())

	rows, err := q.Query(query, args...)
	if err != nil {
		return nil, domain.PageMeta{}, Translate(table, err)
	}
	return rows, meta, nil
}
