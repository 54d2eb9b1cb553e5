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
	productColumns = "id, slug, name, summary, description, price, category, images, specs, featured, status, created_at, updated_at"
	productOrder   = "featured DESC, created_at DESC, id DESC"
)

// ProductRepository wraps DB access for the products table.
type ProductRepository struct {
	DB *sql.DB
}

func (r ProductRepository) db() *sql.DB { return sharedDB(r.DB) }

func scanProduct(row rowScanner) (models.Product, error) {
	var p models.Product
	var images, specs sql.NullString
	err := row.Scan(
		&p.ID, &p.Slug, &p.Name, &p.Summary, &p.Description,
		&p.Price, &p.Category, &images, &specs,
		&p.Featured, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return p, err
	}
	p.Images = decodeStringList(images.String)
	p.Specs = decodeStringMap(specs.String)
	return p, nil
}

// List returns one page of products under the given predicate.
func (r ProductRepository) List(where *db.Where, req domain.PageRequest) ([]models.Product, domain.PageMeta, error) {
	rows, meta, err := db.PaginatedQuery(r.db(), "products", productColumns, where, productOrder, req)
	if err != nil {
		return nil, meta, err
	}
	defer rows.Close()

	list := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, meta, db.Translate("products", err)
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, meta, db.Translate("products", err)
	}
	return list, meta, nil
}

// ListAll returns every product matching the predicate, catalog order.
func (r ProductRepository) ListAll(where *db.Where) ([]models.Product, error) {
	rows, err := r.db().Query(
		`SELECT `+productColumns+` FROM products WHERE `+where.Clause()+` ORDER BY `+productOrder,
		where.Args()...,
	)
	if err != nil {
		return nil, db.Translate("products", err)
	}
	defer rows.Close()

	list := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, db.Translate("products", err)
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, db.Translate("products", err)
	}
	return list, nil
}

// GetByRef looks a product up by numeric id or slug. A non-empty status
// narrows the lookup (public detail pages only see active products).
func (r ProductRepository) GetByRef(ref, status string) (models.Product, error) {
	field := "slug"
	if _, err := strconv.ParseInt(ref, 10, 64); err == nil {
		field = "id"
	}
	query := `SELECT ` + productColumns + ` FROM products WHERE ` + field + ` = ?`
	args := []any{ref}
	if status != "" {
		query += ` AND status = ?`
		args = append(args, status)
	}
	p, err := scanProduct(r.db().QueryRow(query, args...))
	if err != nil {
		return p, db.Translate("product", err)
	}
	return p, nil
}

func (r ProductRepository) GetByID(id int64) (models.Product, error) {
	p, err := scanProduct(r.db().QueryRow(`SELECT `+productColumns+` FROM products WHERE id = ?`, id))
	if err != nil {
		return p, db.Translate("product", err)
	}
	return p, nil
}

// SlugTaken reports whether another product already owns the slug.
// excludeID skips the entity's own row on rename checks; 0 excludes nothing.
func (r ProductRepository) SlugTaken(slug string, excludeID int64) (bool, error) {
	var id int64
	err := r.db().QueryRow(`SELECT id FROM products WHERE slug = ? AND id <> ? LIMIT 1`, slug, excludeID).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, db.Translate("products", err)
	}
	return true, nil
}

func (r ProductRepository) Insert(p models.Product) (int64, error) {
	res, err := r.db().Exec(`
        INSERT INTO products (slug, name, summary, description, price, category, images, specs, featured, status, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())
    `, p.Slug, p.Name, p.Summary, p.Description, p.Price, p.Category,
		encodeJSON(p.Images), encodeJSON(p.Specs), p.Featured, p.Status)
	if err != nil {
		return 0, db.Translate("product", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, db.Translate("product", err)
	}
	return id, nil
}

// ProductPatch carries only the columns to change; nil pointers and unset
// flags leave existing data intact.
type ProductPatch struct {
	Slug        *string
	Name        *string
	Summary     *string
	Description *string
	Price       *float64
	Category    *string
	Images      []string
	ImagesSet   bool
	Specs       map[string]string
	SpecsSet    bool
	Featured    *bool
	Status      *string
}

func (r ProductRepository) Update(id int64, patch ProductPatch) error {
	sets := []string{}
	args := []any{}

	if patch.Slug != nil {
		sets = append(sets, "slug = ?")
		args = append(args, *patch.Slug)
	}
	if patch.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *patch.Name)
	}
	if patch.Summary != nil {
		sets = append(sets, "summary = ?")
		args = append(args, *patch.Summary)
	}
	if patch.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *patch.Description)
	}
	if patch.Price != nil {
		sets = append(sets, "price = ?")
		args = append(args, *patch.Price)
	}
	if patch.Category != nil {
		sets = append(sets, "category = ?")
		args = append(args, *patch.Category)
	}
	if patch.ImagesSet {
		sets = append(sets, "images = ?")
		args = append(args, encodeJSON(patch.Images))
	}
	if patch.SpecsSet {
		sets = append(sets, "specs = ?")
		args = append(args, encodeJSON(patch.Specs))
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

	_, err := r.db().Exec(`UPDATE products SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	return db.Translate("product", err)
}

func (r ProductRepository) Delete(id int64) error {
	_, err := r.db().Exec(`DELETE FROM products WHERE id = ?`, id)
	return db.Translate("product", err)
}
