package repositories

import (
	"database/sql"

	"medsales/internal/db"
	"medsales/internal/domain/models"
)

// UserRepository wraps DB access for admin accounts.
type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB { return sharedDB(r.DB) }

func (r UserRepository) GetByUsername(username string) (models.User, error) {
	var u models.User
	err := r.db().QueryRow(`
        SELECT id, username, password_hash, role, created_at
        FROM users WHERE username = ?
    `, username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err != nil {
		return u, db.Translate("user", err)
	}
	return u, nil
}
