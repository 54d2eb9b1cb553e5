package services

import (
	"testing"
	"time"

	"medsales/internal/domain"
	"medsales/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

var postTestColumns = []string{
	"id", "slug", "title", "summary", "content", "author", "featured", "status", "created_at", "updated_at",
}

func postRow(id int64, slug, title, author, status string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(postTestColumns).
		AddRow(id, slug, title, "summary", "content", author, false, status, now, now)
}

func TestPostCreateDefaults(t *testing.T) {
	dbc, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer dbc.Close()
	svc := PostService{Repo: repositories.PostRepository{DB: dbc}}

	mock.ExpectQuery(`SELECT id FROM posts WHERE slug = \?`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec(`INSERT INTO posts`).
		WithArgs("new-monitor-line", "New Monitor Line", "", "", "Admin", false, "published").
		WillReturnResult(sqlmock.NewResult(4, 1))
	mock.ExpectQuery(`SELECT .+ FROM posts WHERE id = \?`).
		WithArgs(int64(4)).
		WillReturnRows(postRow(4, "new-monitor-line", "New Monitor Line", "Admin", "published"))

	p, err := svc.Create(PostInput{Title: "New Monitor Line"})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if p.Author != "Admin" || p.Status != "published" {
		t.Fatalf("defaults not applied: %+v", p)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPostCreateConflict(t *testing.T) {
	dbc, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer dbc.Close()
	svc := PostService{Repo: repositories.PostRepository{DB: dbc}}

	mock.ExpectQuery(`SELECT id FROM posts WHERE slug = \?`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))

	_, err = svc.Create(PostInput{Title: "New Monitor Line"})
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
}
