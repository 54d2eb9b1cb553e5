package repositories

import (
	"database/sql"
	"strconv"
	"strings"

	"medsales/internal/db"
	"medsales/internal/domain"
	"medsales/internal/domain/models"
)

const (
	postColumns = "id, slug, title, summary, content, author, featured, status, created_at, updated_at"
	postOrder   = "featured DESC, created_at DESC, id DESC"
)

// PostRepository wraps DB access for the posts table.
type PostRepository struct {
	DB *sql.DB
}

func (r PostRepository) db() *sql.DB { return sharedDB(r.DB) }

func scanPost(row rowScanner) (models.Post, error) {
	var p models.Post
	err := row.Scan(
		&p.ID, &p.Slug, &p.Title, &p.Summary, &p.Content,
		&p.Author, &p.Featured, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func (r PostRepository) List(where *db.Where, req domain.PageRequest) ([]models.Post, domain.PageMeta, error) {
	rows, meta, err := db.PaginatedQuery(r.db(), "posts", postColumns, where, postOrder, req)
	if err != nil {
		return nil, meta, err
	}
	defer rows.Close()

	list := []models.Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, meta, db.Translate("posts", err)
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, meta, db.Translate("posts", err)
	}
	return list, meta, nil
}

// GetByRef looks a post up by numeric id or slug, optionally status-narrowed.
func (r PostRepository) GetByRef(ref, status string) (models.Post, error) {
	field := "slug"
	if _, err := strconv.ParseInt(ref, 10, 64); err == nil {
		field = "id"
	}
	query := `SELECT ` + postColumns + ` FROM posts WHERE ` + field + ` = ?`
	args := []any{ref}
	if status != "" {
		query += ` AND status = ?`
		args = append(args, status)
	}
	p, err := scanPost(r.db().QueryRow(query, args...))
	if err != nil {
		return p, db.Translate("post", err)
	}
	return p, nil
}

func (r PostRepository) GetByID(id int64) (models.Post, error) {
	p, err := scanPost(r.db().QueryRow(`SELECT `+postColumns+` FROM posts WHERE id = ?`, id))
	if err != nil {
		return p, db.Translate("post", err)
	}
	return p, nil
}

func (r PostRepository) SlugTaken(slug string, excludeID int64) (bool, error) {
	var id int64
	err := r.db().QueryRow(`SELECT id FROM posts WHERE slug = ? AND id <> ? LIMIT 1`, slug, excludeID).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, db.Translate("posts", err)
	}
	return true, nil
}

func (r PostRepository) Insert(p models.Post) (int64, error) {
	res, err := r.db().Exec(`
        INSERT INTO posts (slug, title, summary, content, author, featured, status, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, NOW(), NOW())
    `, p.Slug, p.Title, p.Summary, p.Content, p.Author, p.Featured, p.Status)
	if err != nil {
		return 0, db.Translate("post", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, db.Translate("post", err)
	}
	return id, nil
}

// PostPatch carries only the columns to change.
type PostPatch struct {
	Slug     *string
	Title    *string
	Summary  *string
	Content  *string
	Author   *string
	Featured *bool
	Status   *string
}

func (r PostRepository) Update(id int64, patch PostPatch) error {
	sets := []string{}
	args := []any{}

	if patch.Slug != nil {
		sets = append(sets, "slug = ?")
		args = append(args, *patch.Slug)
	}
	if patch.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *patch.Title)
	}
	if patch.Summary != nil {
		sets = append(sets, "summary = ?")
		args = append(args, *patch.Summary)
	}
	if patch.Content != nil {
		sets = append(sets, "content = ?")
		args = append(args, *patch.Content)
	}
	if patch.Author != nil {
		sets = append(sets, "author = ?")
		args = append(args, *patch.Author)
	}
	if patch.Featured != nil {
		sets = append(sets, "featured = ?")
		args = append(args, *patch.Featured)
	}
	if patch.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, *patch.Status)
	}

	if len(sets) == 0 {
		return nil
	}
	sets = append(sets, "updated_at = NOW()")
	args = append(args, id)

	_, err := r.db().Exec(`UPDATE posts SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	return db.Translate("post", err)
}

func (r PostRepository) Delete(id int64) error {
	_, err := r.db().Exec(`DELETE FROM posts WHERE id = ?`, id)
	return db.Translate("post", err)
}
