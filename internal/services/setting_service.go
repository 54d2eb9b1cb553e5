package services

import (
	"fmt"

	"medsales/internal/domain"
	"medsales/internal/domain/models"
	"medsales/internal/repositories"
	"medsales/internal/utils"
)

// SettingService reads and writes site configuration entries.
type SettingService struct {
	Repo      repositories.SettingRepository
	RequestID string
}

// SettingView is the per-key payload in the settings map response.
type SettingView struct {
	Value       string `json:"value"`
	Description string `json:"description"`
}

// GetAll returns settings as a key-indexed map, optionally key-filtered.
func (s SettingService) GetAll(keys []string) (map[string]SettingView, error) {
	list, err := s.Repo.List(keys)
	if err != nil {
		return nil, err
	}
	out := map[string]SettingView{}
	for _, entry := range list {
		out[entry.Key] = SettingView{Value: entry.Value, Description: entry.Description}
	}
	return out, nil
}

func (s SettingService) Get(key string) (models.Setting, error) {
	return s.Repo.Get(key)
}

// Set upserts one setting and returns the stored row.
func (s SettingService) Set(key string, value *string, description *string) (models.Setting, error) {
	if value == nil {
		return models.Setting{}, domain.ValidationError{Field: "value", Msg: "setting value is required"}
	}
	if err := s.Repo.Upsert(key, *value, description); err != nil {
		return models.Setting{}, err
	}
	utils.LogEvent(s.RequestID, "settings", "set", "key="+key)
	return s.Repo.Get(key)
}

// SetMany upserts a batch of settings; the first failure stops the batch.
func (s SettingService) SetMany(settings map[string]string) ([]models.Setting, error) {
	if len(settings) == 0 {
		return nil, domain.ValidationError{Field: "settings", Msg: "settings object is required"}
	}
	updated := []models.Setting{}
	for key, value := range settings {
		if err := s.Repo.Upsert(key, value, nil); err != nil {
			return nil, err
		}
		updated = append(updated, models.Setting{Key: key, Value: value})
	}
	utils.LogEvent(s.RequestID, "settings", "set_many", fmt.Sprintf("count=%d", len(updated)))
	return updated, nil
}
