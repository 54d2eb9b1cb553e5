package repositories

import (
	"database/sql"
	"strings"

	"medsales/internal/db"
	"medsales/internal/domain/models"
)

// SettingRepository wraps DB access for site_settings rows.
type SettingRepository struct {
	DB *sql.DB
}

func (r SettingRepository) db() *sql.DB { return sharedDB(r.DB) }

// List returns settings, optionally restricted to the given keys.
func (r SettingRepository) List(keys []string) ([]models.Setting, error) {
	query := `SELECT setting_key, setting_value, COALESCE(description, '') FROM site_settings`
	args := []any{}
	if len(keys) > 0 {
		placeholders := strings.TrimSuffix(strings.Repeat("?,", len(keys)), ",")
		query += ` WHERE setting_key IN (` + placeholders + `)`
		for _, k := range keys {
			args = append(args, k)
		}
	}

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, db.Translate("site_settings", err)
	}
	defer rows.Close()

	list := []models.Setting{}
	for rows.Next() {
		var s models.Setting
		if err := rows.Scan(&s.Key, &s.Value, &s.Description); err != nil {
			return nil, db.Translate("site_settings", err)
		}
		list = append(list, s)
	}
	if err := rows.Err(); err != nil {
		return nil, db.Translate("site_settings", err)
	}
	return list, nil
}

func (r SettingRepository) Get(key string) (models.Setting, error) {
	var s models.Setting
	err := r.db().QueryRow(`
        SELECT setting_key, setting_value, COALESCE(description, '')
        FROM site_settings WHERE setting_key = ?
    `, key).Scan(&s.Key, &s.Value, &s.Description)
	if err != nil {
		return s, db.Translate("setting", err)
	}
	return s, nil
}

// Upsert writes a setting atomically via the unique key index. A nil
// description keeps whatever description the row already has.
func (r SettingRepository) Upsert(key, value string, description *string) error {
	var desc any
	if description != nil {
		desc = *description
	}
	_, err := r.db().Exec(`
        INSERT INTO site_settings (setting_key, setting_value, description, updated_at)
        VALUES (?, ?, ?, NOW())
        ON DUPLICATE KEY UPDATE
            setting_value = VALUES(setting_value),
            description = COALESCE(VALUES(description), description),
            updated_at = NOW()
    `, key, value, desc)
	return db.Translate("setting", err)
}
