package models

import "time"

// Setting is one site configuration entry keyed by Key.
type Setting struct {
	ID          int64     `json:"-"`
	Key         string    `json:"key"`
	Value       string    `json:"value"`
	Description string    `json:"description"`
	UpdatedAt   time.Time `json:"-"`
}
