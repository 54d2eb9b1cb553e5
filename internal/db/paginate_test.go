package db

import (
	"errors"
	"testing"

	"medsales/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPaginatedQueryCountThenSlice(t *testing.T) {
	dbc, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer dbc.Close()

	w := &Where{}
	w.Eq("status", "active")
	req := domain.NewPageRequest(2, 10)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM products WHERE status = \?`).
		WithArgs("active").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(25))
	mock.ExpectQuery(`SELECT id FROM products WHERE status = \? ORDER BY id DESC LIMIT \? OFFSET \?`).
		WithArgs("active", 10, 10).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2))

	rows, meta, err := PaginatedQuery(dbc, "products", "id", w, "id DESC", req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rows.Close()

	if meta.Total != 25 || meta.TotalPages != 3 || !meta.HasNext || !meta.HasPrev {
		t.Fatalf("meta = %+v", meta)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPaginatedQueryCountFailureStopsSlice(t *testing.T) {
	dbc, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer dbc.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM products`).
		WillReturnError(errors.New("connection lost"))

	_, _, err = PaginatedQuery(dbc, "products", "id", &Where{}, "id DESC", domain.NewPageRequest(1, 20))
	if err == nil {
		t.Fatalf("expected error from failed count")
	}
	if !domain.IsStore(err) {
		t.Fatalf("expected store error, got %v", err)
	}
	// No slice query was registered; any attempt would fail ExpectationsWereMet.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPaginatedQueryEmptyWhere(t *testing.T) {
	dbc, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer dbc.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM uploads WHERE 1=1`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT id FROM uploads WHERE 1=1 ORDER BY id DESC LIMIT \? OFFSET \?`).
		WithArgs(20, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	rows, meta, err := PaginatedQuery(dbc, "uploads", "id", &Where{}, "id DESC", domain.NewPageRequest(1, 20))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rows.Close()

	if meta.Total != 0 || meta.TotalPages != 0 || meta.HasNext || meta.HasPrev {
		t.Fatalf("meta = %+v", meta)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
