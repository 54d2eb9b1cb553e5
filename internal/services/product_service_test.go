package services

import (
	"testing"
	"time"

	"medsales/internal/domain"
	"medsales/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
)

var productTestColumns = []string{
	"id", "slug", "name", "summary", "description", "price", "category",
	"images", "specs", "featured", "status", "created_at", "updated_at",
}

func productRow(id int64, slug, name string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(productTestColumns).
		AddRow(id, slug, name, "summary", "description", 199.99, "monitors",
			`["https://cdn.example/a.jpg"]`, `{"weight":"2kg"}`, true, "active", now, now)
}

func newProductService(t *testing.T) (ProductService, sqlmock.Sqlmock, func()) {
	t.Helper()
	dbc, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	svc := ProductService{Repo: repositories.ProductRepository{DB: dbc}}
	return svc, mock, func() { dbc.Close() }
}

func TestProductCreateAssignsSlug(t *testing.T) {
	svc, mock, done := newProductService(t)
	defer done()

	mock.ExpectQuery(`SELECT id FROM products WHERE slug = \? AND id <> \? LIMIT 1`).
		WithArgs("heart-monitor-x1", 0).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec(`INSERT INTO products`).
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectQuery(`SELECT .+ FROM products WHERE id = \?`).
		WithArgs(int64(7)).
		WillReturnRows(productRow(7, "heart-monitor-x1", "Heart Monitor X1"))

	p, err := svc.Create(ProductInput{Name: "Heart Monitor X1"})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if p.Slug != "heart-monitor-x1" {
		t.Fatalf("slug = %q", p.Slug)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestProductCreateConflictOnTakenSlug(t *testing.T) {
	svc, mock, done := newProductService(t)
	defer done()

	mock.ExpectQuery(`SELECT id FROM products WHERE slug = \? AND id <> \? LIMIT 1`).
		WithArgs("heart-monitor-x1", 0).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

	_, err := svc.Create(ProductInput{Name: "heart monitor x1!!"})
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestProductCreateDuplicateEntryRace(t *testing.T) {
	svc, mock, done := newProductService(t)
	defer done()

	// Pre-check sees nothing, but a concurrent writer commits first and the
	// unique index rejects the insert.
	mock.ExpectQuery(`SELECT id FROM products WHERE slug = \?`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec(`INSERT INTO products`).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

	_, err := svc.Create(ProductInput{Name: "Heart Monitor X1"})
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict from unique index, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestProductCreateRejectsEmptySlug(t *testing.T) {
	svc, _, done := newProductService(t)
	defer done()

	_, err := svc.Create(ProductInput{Name: "!!!"})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestProductUpdateSameNameKeepsSlug(t *testing.T) {
	svc, mock, done := newProductService(t)
	defer done()

	name := "Heart Monitor X1"
	mock.ExpectQuery(`SELECT .+ FROM products WHERE id = \?`).
		WithArgs(int64(1)).
		WillReturnRows(productRow(1, "heart-monitor-x1", name))
	// No slug lookup, no slug column in the update.
	mock.ExpectExec(`UPDATE products SET name = \?, updated_at = NOW\(\) WHERE id = \?`).
		WithArgs(name, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT .+ FROM products WHERE id = \?`).
		WithArgs(int64(1)).
		WillReturnRows(productRow(1, "heart-monitor-x1", name))

	p, err := svc.Update(1, ProductUpdate{Name: &name})
	if err != nil {
		t.Fatalf("update error: %v", err)
	}
	if p.Slug != "heart-monitor-x1" {
		t.Fatalf("slug changed: %q", p.Slug)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestProductUpdateRenameCollisionExcludesOwnRow(t *testing.T) {
	svc, mock, done := newProductService(t)
	defer done()

	mock.ExpectQuery(`SELECT .+ FROM products WHERE id = \?`).
		WithArgs(int64(1)).
		WillReturnRows(productRow(1, "old-name", "Old Name"))
	mock.ExpectQuery(`SELECT id FROM products WHERE slug = \? AND id <> \? LIMIT 1`).
		WithArgs("heart-monitor-x1", int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))

	name := "Heart Monitor X1"
	_, err := svc.Update(1, ProductUpdate{Name: &name})
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestProductUpdateRenameToOwnSlugAllowed(t *testing.T) {
	svc, mock, done := newProductService(t)
	defer done()

	// Casing change: slug stays identical, and the collision check must skip
	// the product's own row.
	mock.ExpectQuery(`SELECT .+ FROM products WHERE id = \?`).
		WithArgs(int64(1)).
		WillReturnRows(productRow(1, "heart-monitor-x1", "Heart Monitor X1"))
	mock.ExpectQuery(`SELECT id FROM products WHERE slug = \? AND id <> \? LIMIT 1`).
		WithArgs("heart-monitor-x1", int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec(`UPDATE products SET slug = \?, name = \?, updated_at = NOW\(\) WHERE id = \?`).
		WithArgs("heart-monitor-x1", "HEART MONITOR X1", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT .+ FROM products WHERE id = \?`).
		WithArgs(int64(1)).
		WillReturnRows(productRow(1, "heart-monitor-x1", "HEART MONITOR X1"))

	name := "HEART MONITOR X1"
	if _, err := svc.Update(1, ProductUpdate{Name: &name}); err != nil {
		t.Fatalf("update error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestProductGetNotFound(t *testing.T) {
	svc, mock, done := newProductService(t)
	defer done()

	mock.ExpectQuery(`SELECT .+ FROM products WHERE slug = \? AND status = \?`).
		WithArgs("missing", "active").
		WillReturnRows(sqlmock.NewRows(productTestColumns))

	_, err := svc.Get("missing")
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}
