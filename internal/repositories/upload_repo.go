package repositories

import (
	"database/sql"

	"medsales/internal/db"
	"medsales/internal/domain"
	"medsales/internal/domain/models"
)

const (
	uploadColumns = "id, filename, original_name, content_type, size, url, created_at"
	uploadOrder   = "created_at DESC, id DESC"
)

// UploadRepository wraps DB access for upload metadata rows.
type UploadRepository struct {
	DB *sql.DB
}

func (r UploadRepository) db() *sql.DB { return sharedDB(r.DB) }

func scanUpload(row rowScanner) (models.Upload, error) {
	var u models.Upload
	err := row.Scan(&u.ID, &u.Filename, &u.OriginalName, &u.ContentType, &u.Size, &u.URL, &u.CreatedAt)
	return u, err
}

func (r UploadRepository) List(req domain.PageRequest) ([]models.Upload, domain.PageMeta, error) {
	rows, meta, err := db.PaginatedQuery(r.db(), "uploads", uploadColumns, &db.Where{}, uploadOrder, req)
	if err != nil {
		return nil, meta, err
	}
	defer rows.Close()

	list := []models.Upload{}
	for rows.Next() {
		u, err := scanUpload(rows)
		if err != nil {
			return nil, meta, db.Translate("uploads", err)
		}
		list = append(list, u)
	}
	if err := rows.Err(); err != nil {
		return nil, meta, db.Translate("uploads", err)
	}
	return list, meta, nil
}

func (r UploadRepository) GetByID(id int64) (models.Upload, error) {
	u, err := scanUpload(r.db().QueryRow(`SELECT `+uploadColumns+` FROM uploads WHERE id = ?`, id))
	if err != nil {
		return u, db.Translate("upload", err)
	}
	return u, nil
}

func (r UploadRepository) Insert(u models.Upload) (int64, error) {
	res, err := r.db().Exec(`
        INSERT INTO uploads (filename, original_name, content_type, size, url, created_at)
        VALUES (?, ?, ?, ?, ?, NOW())
    `, u.Filename, u.OriginalName, u.ContentType, u.Size, u.URL)
	if err != nil {
		return 0, db.Translate("upload", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, db.Translate("upload", err)
	}
	return id, nil
}

func (r UploadRepository) Delete(id int64) error {
	_, err := r.db().Exec(`DELETE FROM uploads WHERE id = ?`, id)
	return db.Translate("upload", err)
}
